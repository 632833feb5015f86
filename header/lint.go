package header

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrPercentSum indicates author percentages that do not add up to 100.
	ErrPercentSum = errors.New("contribution percentages do not sum to 100")
	// ErrMissingField indicates an author field left blank.
	ErrMissingField = errors.New("missing field")
)

// Issue is an advisory problem found by [Record.Lint].
type Issue struct {
	Err error
	// Field names the offending field, e.g. "authors[1].percent".
	Field string
}

// Error implements error.
func (i Issue) Error() string {
	if i.Field == "" {
		return i.Err.Error()
	}

	return fmt.Sprintf("%s: %v", i.Field, i.Err)
}

// Unwrap returns the underlying error.
func (i Issue) Unwrap() error {
	return i.Err
}

// Lint reports advisory problems with r. Percentages are free text in the
// header format, so none of these stop a record from being rendered.
func (r *Record) Lint(s Style) []Issue {
	var issues []Issue

	err := r.Validate(s)
	if err != nil {
		issues = append(issues, Issue{Err: err})
	}

	var (
		sum     float64
		numeric = true
	)

	for i, a := range r.Authors {
		field := func(name string) string {
			return fmt.Sprintf("authors[%d].%s", i, name)
		}

		v, err := a.PercentValue()
		if err != nil {
			numeric = false

			issues = append(issues, Issue{Field: field("percent"), Err: err})
		}

		sum += v

		if a.Name == "" {
			issues = append(issues, Issue{Field: field("name"), Err: ErrMissingField})
		}

		if a.Email == "" {
			issues = append(issues, Issue{Field: field("email"), Err: ErrMissingField})
		}
	}

	if numeric && len(r.Authors) > 0 && math.Abs(sum-100) > 0.01 {
		issues = append(issues, Issue{
			Field: "authors",
			Err:   fmt.Errorf("%w: got %g", ErrPercentSum, sum),
		})
	}

	return issues
}
