package editor

import (
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"go.jacobcolvin.com/headercommenter/header"
)

// Session holds the header of the open file and the edits made to it.
//
// The zero file state has a fresh [header.NewRecord], so the form can be
// filled before any file is opened; [Session.Save] then fails with
// [ErrNoFile]. Opening a file replaces the record. A failed open leaves the
// session unchanged.
type Session struct {
	now   func() time.Time
	rec   *header.Record
	path  string
	body  string
	diags header.Diagnostics
	doc   Document
	style header.Style
	year  int
}

// Option configures a [Session].
type Option func(*Session)

// NewSession creates a [Session] with the given options.
func NewSession(opts ...Option) *Session {
	s := &Session{
		style: header.DefaultStyle(),
		now:   time.Now,
		rec:   header.NewRecord(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithStyle sets the header style used to parse and render.
func WithStyle(style header.Style) Option {
	return func(s *Session) {
		s.style = style
	}
}

// WithYear fixes the copyright year. Zero uses the current year.
func WithYear(year int) Option {
	return func(s *Session) {
		s.year = year
	}
}

// WithClock sets the time source for the copyright year.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// Open reads path and parses its header into the session record.
func (s *Session) Open(path string) error {
	doc, err := ReadFile(path)
	if err != nil {
		return err
	}

	head, body := s.style.Split(doc.Text)
	rec, diags := s.style.Parse(head)

	if len(rec.Authors) == 0 {
		rec.Authors = []header.Author{{}}
	}

	s.path = path
	s.doc = doc
	s.body = body
	s.rec = rec
	s.diags = diags

	slog.Debug("opened file",
		slog.String("path", path),
		slog.Bool("header", head != ""),
		slog.Int("diagnostics", len(diags)),
	)

	return nil
}

// Path returns the open file, or "" when none is open.
func (s *Session) Path() string {
	return s.path
}

// Record returns a copy of the current record.
func (s *Session) Record() *header.Record {
	return s.rec.Clone()
}

// Diagnostics returns the parse diagnostics of the open file.
func (s *Session) Diagnostics() header.Diagnostics {
	return s.diags
}

// Lint returns advisory issues with the current record.
func (s *Session) Lint() []header.Issue {
	return s.rec.Lint(s.style)
}

// Preview renders the current record as a header block.
func (s *Session) Preview() string {
	name := ""
	if s.path != "" {
		name = filepath.Base(s.path)
	}

	return s.style.Render(s.rec, name, s.renderYear())
}

// Save writes the rendered header followed by the original body to the open
// file. Records failing [header.Record.Validate] are not written.
func (s *Session) Save() error {
	if s.path == "" {
		return ErrNoFile
	}

	err := s.rec.Validate(s.style)
	if err != nil {
		return err
	}

	doc := s.doc
	doc.Text = compose(s.Preview(), s.body)

	err = WriteFile(s.path, doc)
	if err != nil {
		return err
	}

	s.doc = doc

	slog.Info("saved header", slog.String("path", s.path))

	return nil
}

// SetTeam sets the team name.
func (s *Session) SetTeam(name string) {
	s.rec.TeamName = strings.TrimSpace(name)
}

// SetWebsite sets the team website.
func (s *Session) SetWebsite(site string) {
	s.rec.Website = strings.TrimSpace(site)
}

// SetDescription replaces the description with text, one logical line per
// line of text.
func (s *Session) SetDescription(text string) {
	s.rec.SetDescriptionText(text)
}

// AddAuthor appends an author with one empty contribution point and returns
// its index.
func (s *Session) AddAuthor() int {
	s.rec.Authors = append(s.rec.Authors, header.Author{Points: []string{""}})

	return len(s.rec.Authors) - 1
}

// SetAuthor replaces author i. It reports whether i exists.
func (s *Session) SetAuthor(i int, a header.Author) bool {
	if i < 0 || i >= len(s.rec.Authors) {
		return false
	}

	a.Points = append([]string(nil), a.Points...)
	s.rec.Authors[i] = a

	return true
}

// RemoveAuthor removes author i unless it is the only one. It reports
// whether an author was removed.
func (s *Session) RemoveAuthor(i int) bool {
	if len(s.rec.Authors) <= 1 || i < 0 || i >= len(s.rec.Authors) {
		return false
	}

	s.rec.Authors = append(s.rec.Authors[:i], s.rec.Authors[i+1:]...)

	return true
}

// AddPoint appends an empty contribution point to author i and returns its
// index, or -1 when the author does not exist.
func (s *Session) AddPoint(author int) int {
	if author < 0 || author >= len(s.rec.Authors) {
		return -1
	}

	a := &s.rec.Authors[author]
	a.Points = append(a.Points, "")

	return len(a.Points) - 1
}

// SetPoint sets contribution point i of an author. It reports whether the
// point exists.
func (s *Session) SetPoint(author, i int, text string) bool {
	if author < 0 || author >= len(s.rec.Authors) {
		return false
	}

	a := &s.rec.Authors[author]
	if i < 0 || i >= len(a.Points) {
		return false
	}

	a.Points[i] = strings.TrimSpace(text)

	return true
}

// RemovePoint removes contribution point i of an author unless it is the
// author's only point. It reports whether a point was removed.
func (s *Session) RemovePoint(author, i int) bool {
	if author < 0 || author >= len(s.rec.Authors) {
		return false
	}

	a := &s.rec.Authors[author]
	if len(a.Points) <= 1 || i < 0 || i >= len(a.Points) {
		return false
	}

	a.Points = append(a.Points[:i], a.Points[i+1:]...)

	return true
}

// Replace swaps in a copy of rec, keeping at least one author.
func (s *Session) Replace(rec *header.Record) {
	c := rec.Clone()
	if len(c.Authors) == 0 {
		c.Authors = []header.Author{{}}
	}

	s.rec = c
}

func (s *Session) renderYear() int {
	if s.year > 0 {
		return s.year
	}

	return s.now().Year()
}

// compose joins a rendered header and a body into file text ending in a line
// break.
func compose(head, body string) string {
	text := header.Combine(head, body)
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	return text
}
