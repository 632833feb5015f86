package header

import (
	"strconv"
	"strings"
)

// Split separates text into its header block and body with the default
// style. See [Style.Split].
func Split(text string) (string, string) {
	return DefaultStyle().Split(text)
}

// Split separates text at the first line containing the copyright marker.
//
// The header is everything up to and including that line. The body is the
// rest with leading and trailing blank lines removed. Without a copyright
// line the header is empty and the whole text is the body. Line endings in
// the result are always LF.
func (s Style) Split(text string) (string, string) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	marker := s.copyrightMarker()

	end := 0
	for i, line := range lines {
		if strings.Contains(line, marker) {
			end = i + 1
			break
		}
	}

	return strings.Join(lines[:end], "\n"), strings.Join(trimBlank(lines[end:]), "\n")
}

// Combine joins a header and a body with exactly one blank line between
// them. An empty body leaves the header followed by a single line break.
func Combine(header, body string) string {
	if body == "" {
		return header + "\n"
	}

	return header + "\n\n" + body
}

func trimBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// CopyrightYear returns the year written after the copyright marker in
// header, if any.
func (s Style) CopyrightYear(header string) (int, bool) {
	marker := s.copyrightMarker()

	for line := range strings.SplitSeq(header, "\n") {
		_, after, found := strings.Cut(line, marker)
		if !found {
			continue
		}

		fields := strings.Fields(after)
		if len(fields) == 0 {
			return 0, false
		}

		year, err := strconv.Atoi(strings.TrimSuffix(fields[0], ","))
		if err != nil {
			return 0, false
		}

		return year, true
	}

	return 0, false
}
