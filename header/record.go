package header

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrNoAuthors indicates a record without any author entry.
	ErrNoAuthors = errors.New("header has no authors")
	// ErrCopyrightInText indicates a field containing the copyright marker,
	// which would end the header early when the file is read back.
	ErrCopyrightInText = errors.New("copyright marker inside header text")
	// ErrInvalidPercent indicates a contribution percentage that is not a
	// number in [0, 100].
	ErrInvalidPercent = errors.New("invalid contribution percentage")
)

// Record is the structured form of a header comment block.
type Record struct {
	TeamName string `json:"team"    yaml:"team"`
	Website  string `json:"website" yaml:"website"`
	// Description holds unwrapped logical lines. Wrapping happens on render.
	Description []string `json:"description" yaml:"description"`
	Authors     []Author `json:"authors"     yaml:"authors"`
}

// Author is one entry of the AUTHORS section.
type Author struct {
	// Percent is kept as the text found in the header, without a "%" suffix.
	Percent string `json:"percent" yaml:"percent"`
	Name    string `json:"name"    yaml:"name"`
	// Email is the local part only; the domain comes from [Style.Domain].
	Email  string   `json:"email"  yaml:"email"`
	Points []string `json:"points" yaml:"points"`
}

// NewRecord returns an empty [Record] with a single blank [Author], the
// minimum a well-formed header needs.
func NewRecord() *Record {
	return &Record{Authors: []Author{{}}}
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	c := &Record{
		TeamName:    r.TeamName,
		Website:     r.Website,
		Description: slices.Clone(r.Description),
		Authors:     make([]Author, len(r.Authors)),
	}
	for i, a := range r.Authors {
		a.Points = slices.Clone(a.Points)
		c.Authors[i] = a
	}

	return c
}

// DescriptionText joins the description lines with line breaks.
func (r *Record) DescriptionText() string {
	return strings.Join(r.Description, "\n")
}

// SetDescriptionText splits text on line breaks into [Record.Description],
// dropping leading and trailing blank lines.
func (r *Record) SetDescriptionText(text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(strings.TrimSpace(text), "\n")

	r.Description = r.Description[:0]
	for _, line := range lines {
		r.Description = append(r.Description, strings.TrimSpace(line))
	}

	if len(r.Description) == 1 && r.Description[0] == "" {
		r.Description = nil
	}
}

// Validate reports whether r can be rendered into a header that reads back
// as the same record. Use [Record.Lint] for advisory checks.
func (r *Record) Validate(s Style) error {
	if len(r.Authors) == 0 {
		return ErrNoAuthors
	}

	marker := s.copyrightMarker()

	fields := []string{r.TeamName, r.Website}
	fields = append(fields, r.Description...)

	for _, a := range r.Authors {
		fields = append(fields, a.Name, a.Email, a.Percent)
		fields = append(fields, a.Points...)
	}

	for _, f := range fields {
		if strings.Contains(f, marker) {
			return fmt.Errorf("%w: %q", ErrCopyrightInText, f)
		}
	}

	return nil
}

// PercentValue parses [Author.Percent] as a number in [0, 100]. A trailing
// "%" is accepted.
func (a Author) PercentValue() (float64, error) {
	text := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(a.Percent), "%"))

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPercent, a.Percent)
	}

	if v < 0 || v > 100 {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidPercent, a.Percent)
	}

	return v, nil
}
