package stringtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/headercommenter/stringtest"
)

func TestJoin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\nb\nc", stringtest.JoinLF("a", "b", "c"))
	assert.Equal(t, "a\r\nb", stringtest.JoinCRLF("a", "b"))
	assert.Empty(t, stringtest.JoinLF())
}

func TestCommented(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input []string
		want  string
	}{
		"single line": {
			input: []string{"AUTHORS"},
			want:  "// AUTHORS",
		},
		"blank line has no trailing space": {
			input: []string{"a", "", "b"},
			want:  "// a\n//\n// b",
		},
		"indented bullet": {
			input: []string{"  - point"},
			want:  "//   - point",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, stringtest.Commented(tc.input...))
		})
	}
}

func TestInput(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"empty string": {
			input: "",
			want:  "",
		},
		"single line with both newlines": {
			input: "\nhello\n",
			want:  "hello",
		},
		"common indent spaces": {
			input: `
    line1
    line2`,
			want: "line1\nline2",
		},
		"common indent tabs": {
			input: "\n\tline1\n\tline2",
			want:  "line1\nline2",
		},
		"varying indent": {
			input: `
    line1
      indented
    line3`,
			want: "line1\n  indented\nline3",
		},
		"whitespace-only lines become empty": {
			input: "\n    line1\n    \n    line3",
			want:  "line1\n\nline3",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, stringtest.Input(tc.input))
		})
	}
}
