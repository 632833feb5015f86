package editor

import (
	"path/filepath"
	"time"

	"go.jacobcolvin.com/headercommenter/header"
)

// Result is the outcome of [Format] or [Init] for one file.
type Result struct {
	Path        string
	Old         string
	New         string
	Diagnostics header.Diagnostics
	doc         Document
	// NoHeader is set when the file has no header block.
	NoHeader bool
}

// Changed reports whether the new content differs from the old.
func (r Result) Changed() bool {
	return r.Old != r.New
}

// Write stores the new content in place, keeping the file's encoding.
func (r Result) Write() error {
	doc := r.doc
	doc.Text = r.New

	return WriteFile(r.Path, doc)
}

// Format regenerates the header of the file at path in memory. The copyright
// year stays as written unless year is positive; a header without a year
// gets the current one. A header without authors gets one blank author, as
// [Session.Open] does. Files without a header are returned unchanged with
// [Result.NoHeader] set.
func Format(path string, style header.Style, year int) (Result, error) {
	doc, err := ReadFile(path)
	if err != nil {
		return Result{}, err
	}

	res := Result{Path: path, Old: doc.Text, New: doc.Text, doc: doc}

	head, body := style.Split(doc.Text)
	if head == "" {
		res.NoHeader = true

		return res, nil
	}

	rec, diags := style.Parse(head)
	res.Diagnostics = diags

	if len(rec.Authors) == 0 {
		rec.Authors = []header.Author{{}}
	}

	if year <= 0 {
		y, ok := style.CopyrightYear(head)
		if !ok {
			y = time.Now().Year()
		}

		year = y
	}

	res.New = compose(style.Render(rec, filepath.Base(path), year), body)

	return res, nil
}

// Template returns the record written by [Init].
func Template() *header.Record {
	author := func() header.Author {
		return header.Author{
			Percent: "50",
			Name:    "First Last",
			Email:   "first.l",
			Points:  []string{"Contribution description point"},
		}
	}

	return &header.Record{
		TeamName: "Team Name",
		Website:  "website",
		Description: []string{
			"Description goes here, will automatically wrap at 80 characters when " +
				"displaying in the editor. You can use multiple lines for the description.",
		},
		Authors: []header.Author{author(), author()},
	}
}

// Init prepends the [Template] header to the file at path in memory.
// [Result.NoHeader] reports that the file had no header before; files that
// already have one are returned unchanged.
func Init(path string, style header.Style, year int) (Result, error) {
	doc, err := ReadFile(path)
	if err != nil {
		return Result{}, err
	}

	res := Result{Path: path, Old: doc.Text, New: doc.Text, doc: doc}

	head, body := style.Split(doc.Text)
	if head != "" {
		return res, nil
	}

	if year <= 0 {
		year = time.Now().Year()
	}

	res.NoHeader = true
	res.New = compose(style.Render(Template(), filepath.Base(path), year), body)

	return res, nil
}
