package header_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/headercommenter/header"
	"go.jacobcolvin.com/headercommenter/stringtest"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input string
		width int
		want  []string
	}{
		"single short word": {
			input: "word",
			width: 80,
			want:  []string{"// word"},
		},
		"wraps on word boundaries": {
			input: "This is a test of wrapping long description text across multiple lines for the header",
			width: 40,
			want: []string{
				"// This is a test of wrapping long",
				"// description text across multiple",
				"// lines for the header",
			},
		},
		"blank line is a bare marker": {
			input: "First.\n\nSecond.",
			width: 80,
			want:  []string{"// First.", "//", "// Second."},
		},
		"blank comment line is a bare marker": {
			input: "//",
			width: 80,
			want:  []string{"//"},
		},
		"strips one existing marker": {
			input: "//   already a comment",
			width: 80,
			want:  []string{"// already a comment"},
		},
		"keeps leading whitespace": {
			input: "  // indented text here",
			width: 15,
			want:  []string{"  // indented", "  // text here"},
		},
		"leading whitespace on blank lines": {
			input: "\t",
			width: 80,
			want:  []string{"\t//"},
		},
		"does not carry a partial line across input lines": {
			input: "one\ntwo",
			width: 80,
			want:  []string{"// one", "// two"},
		},
		"long word is not split": {
			input: "a supercalifragilisticexpialidocious b",
			width: 12,
			want: []string{
				"// a",
				"// supercalifragilisticexpialidocious",
				"// b",
			},
		},
		"tiny width still packs one word per line": {
			input: "x y z",
			width: 1,
			want:  []string{"// x", "// y", "// z"},
		},
		"collapses runs of spaces": {
			input: "a    b\t\tc",
			width: 80,
			want:  []string{"// a b c"},
		},
		"measures runes not bytes": {
			input: "ééééé ééééé",
			width: 15,
			want:  []string{"// ééééé ééééé"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, header.Wrap(tc.input, tc.width))
		})
	}
}

func TestWrapString(t *testing.T) {
	t.Parallel()

	got := header.WrapString("Hello world.\n\nBye.", 80)
	assert.Equal(t, stringtest.Commented("Hello world.", "", "Bye."), got)
}

func TestWrapStyleWidth(t *testing.T) {
	t.Parallel()

	s := header.DefaultStyle()
	s.Width = 0

	// Zero width on a Style means the default of 80.
	long := strings.Repeat("word ", 30)
	for _, line := range s.Wrap(long) {
		assert.LessOrEqual(t, len(line), header.DefaultWidth)
		assert.Greater(t, len(line), 60)
	}
}

func TestWrapWidthLaw(t *testing.T) {
	t.Parallel()

	text := stringtest.JoinLF(
		"Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor",
		"incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis",
		"",
		"  nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat.",
		"Pneumonoultramicroscopicsilicovolcanoconiosis is long.",
	)

	for _, width := range []int{10, 20, 33, 40, 61, 80, 100} {
		for _, line := range header.Wrap(text, width) {
			trimmed := strings.TrimSpace(line)
			if trimmed == "//" {
				assert.NotEqual(t, "// ", line)
				continue
			}

			assert.True(t, strings.HasPrefix(trimmed, "// "), "line %q", line)

			words := strings.Fields(strings.TrimPrefix(trimmed, "//"))
			if len(words) == 1 {
				continue
			}

			assert.LessOrEqual(t, utf8.RuneCountInString(line), width, "width %d line %q", width, line)
		}
	}
}

func TestWrapKeepsWords(t *testing.T) {
	t.Parallel()

	text := "The quick brown fox jumps over the lazy dog. Pack my box with five dozen liquor jugs."

	var got []string
	for _, line := range header.Wrap(text, 24) {
		got = append(got, strings.Fields(strings.TrimPrefix(line, "//"))...)
	}

	assert.Equal(t, strings.Fields(text), got)
}
