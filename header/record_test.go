package header_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/headercommenter/header"
)

func TestNewRecord(t *testing.T) {
	t.Parallel()

	rec := header.NewRecord()
	require.Len(t, rec.Authors, 1)
	require.NoError(t, rec.Validate(header.DefaultStyle()))
}

func TestRecordClone(t *testing.T) {
	t.Parallel()

	rec := &header.Record{
		TeamName:    "T",
		Description: []string{"a"},
		Authors:     []header.Author{{Name: "A", Points: []string{"p"}}},
	}

	c := rec.Clone()
	c.Description[0] = "changed"
	c.Authors[0].Points[0] = "changed"
	c.Authors[0].Name = "changed"

	assert.Equal(t, "a", rec.Description[0])
	assert.Equal(t, "p", rec.Authors[0].Points[0])
	assert.Equal(t, "A", rec.Authors[0].Name)
}

func TestSetDescriptionText(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  []string
	}{
		"empty":            {input: "  \n ", want: nil},
		"single line":      {input: "Hello.", want: []string{"Hello."}},
		"trims each line":  {input: "\n a \r\n\n b \n", want: []string{"a", "", "b"}},
		"keeps line order": {input: "one\ntwo\nthree", want: []string{"one", "two", "three"}},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rec := &header.Record{Description: []string{"old"}}
			rec.SetDescriptionText(tc.input)
			assert.Equal(t, tc.want, rec.Description)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		rec     *header.Record
		wantErr error
	}{
		"valid": {
			rec: &header.Record{Authors: []header.Author{{Name: "A"}}},
		},
		"no authors": {
			rec:     &header.Record{},
			wantErr: header.ErrNoAuthors,
		},
		"copyright marker in description": {
			rec: &header.Record{
				Description: []string{"Copyright (c) someone else"},
				Authors:     []header.Author{{Name: "A"}},
			},
			wantErr: header.ErrCopyrightInText,
		},
		"copyright marker in a point": {
			rec: &header.Record{
				Authors: []header.Author{{Name: "A", Points: []string{"wrote Copyright (c) line"}}},
			},
			wantErr: header.ErrCopyrightInText,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := tc.rec.Validate(header.DefaultStyle())
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPercentValue(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input   string
		want    float64
		wantErr bool
	}{
		"integer":      {input: "50", want: 50},
		"with percent": {input: " 33.5% ", want: 33.5},
		"zero":         {input: "0", want: 0},
		"text":         {input: "half", wantErr: true},
		"empty":        {input: "", wantErr: true},
		"over 100":     {input: "101", wantErr: true},
		"negative":     {input: "-1", wantErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := header.Author{Percent: tc.input}.PercentValue()
			if tc.wantErr {
				require.ErrorIs(t, err, header.ErrInvalidPercent)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 0.0001)
		})
	}
}

func TestLint(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		rec        *header.Record
		wantErrs   []error
		wantFields []string
	}{
		"clean": {
			rec: &header.Record{Authors: []header.Author{
				{Percent: "60", Name: "A", Email: "a"},
				{Percent: "40%", Name: "B", Email: "b"},
			}},
		},
		"no authors": {
			rec:        &header.Record{},
			wantErrs:   []error{header.ErrNoAuthors},
			wantFields: []string{""},
		},
		"bad sum": {
			rec: &header.Record{Authors: []header.Author{
				{Percent: "60", Name: "A", Email: "a"},
				{Percent: "60", Name: "B", Email: "b"},
			}},
			wantErrs:   []error{header.ErrPercentSum},
			wantFields: []string{"authors"},
		},
		"non-numeric percent skips the sum check": {
			rec: &header.Record{Authors: []header.Author{
				{Percent: "lots", Name: "A", Email: "a"},
			}},
			wantErrs:   []error{header.ErrInvalidPercent},
			wantFields: []string{"authors[0].percent"},
		},
		"missing fields": {
			rec: &header.Record{Authors: []header.Author{
				{Percent: "100"},
			}},
			wantErrs:   []error{header.ErrMissingField, header.ErrMissingField},
			wantFields: []string{"authors[0].name", "authors[0].email"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			issues := tc.rec.Lint(header.DefaultStyle())
			require.Len(t, issues, len(tc.wantErrs))

			for i, want := range tc.wantErrs {
				require.ErrorIs(t, issues[i], want)
				assert.Equal(t, tc.wantFields[i], issues[i].Field)
			}
		})
	}
}
