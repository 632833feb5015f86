package header

import (
	"strconv"
	"strings"
)

// Render writes rec as a header block with the default style. See
// [Style.Render].
func Render(rec *Record, filename string, year int) string {
	return DefaultStyle().Render(rec, filename, year)
}

// Render writes rec as a header block.
//
// The output always has the same shape: title, filename, the wrapped
// description between bare marker lines, the AUTHORS section, and the
// copyright line. Empty fields render as empty segments. The result has no
// trailing line break.
func (s Style) Render(rec *Record, filename string, year int) string {
	m := s.marker()

	if filename == "" {
		filename = s.placeholder()
	}

	var b strings.Builder

	line := func(parts ...string) {
		b.WriteString(m)

		for _, p := range parts {
			b.WriteString(p)
		}

		b.WriteByte('\n')
	}

	line(" ", rec.TeamName, " [", rec.Website, "]")
	line(" ", filename)
	line()

	desc := strings.TrimSpace(rec.DescriptionText())
	if desc != "" {
		for _, l := range s.Wrap(desc) {
			b.WriteString(l)
			b.WriteByte('\n')
		}
	}

	line()
	line(" ", AuthorsMarker)

	for _, a := range rec.Authors {
		line(" [", strings.TrimSpace(a.Percent), "%] ", strings.TrimSpace(a.Name),
			" (", strings.TrimSpace(a.Email), s.at(), s.Domain, ")")

		for _, p := range a.Points {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}

			line("   - ", p)
		}
	}

	line()
	b.WriteString(m)
	b.WriteString(" ")
	b.WriteString(s.copyrightMarker())
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(year))
	b.WriteString(" ")
	b.WriteString(s.Organization)
	b.WriteString(", All rights reserved.")

	return b.String()
}
