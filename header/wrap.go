package header

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Wrap reflows text into comment lines no wider than width, using the
// default marker. See [Style.Wrap].
func Wrap(text string, width int) []string {
	s := DefaultStyle()
	s.Width = width

	return s.Wrap(text)
}

// WrapString is [Wrap] with the lines joined by line breaks.
func WrapString(text string, width int) string {
	return strings.Join(Wrap(text, width), "\n")
}

// Wrap reflows text into comment lines no wider than the style's width.
//
// Each input line is handled on its own: leading whitespace is kept on every
// output line derived from it, one comment marker is stripped if present, and
// the remaining words are packed greedily into lines of the form
// "<indent><marker> <words>". A word longer than the budget gets a line of
// its own and is never split. An input line with no content becomes a bare
// marker line with no trailing space.
func (s Style) Wrap(text string) []string {
	marker := s.marker()
	width := s.width()

	var out []string

	for line := range strings.SplitSeq(text, "\n") {
		stripped := strings.TrimLeftFunc(line, unicode.IsSpace)
		indent := line[:len(line)-len(stripped)]

		content := strings.TrimSpace(strings.TrimPrefix(stripped, marker))
		if content == "" {
			out = append(out, indent+marker)
			continue
		}

		// Room left for words once the indent and "<marker> " are written.
		budget := width - utf8.RuneCountInString(indent) - utf8.RuneCountInString(marker) - 1

		var (
			buf    strings.Builder
			bufLen int
		)

		flush := func() {
			out = append(out, indent+marker+" "+strings.TrimSpace(buf.String()))
			buf.Reset()

			bufLen = 0
		}

		for _, word := range strings.Fields(content) {
			n := utf8.RuneCountInString(word)
			if bufLen > 0 && bufLen+n+1 > budget {
				flush()
			}

			buf.WriteString(word)
			buf.WriteByte(' ')

			bufLen += n + 1
		}

		if bufLen > 0 {
			flush()
		}
	}

	return out
}
