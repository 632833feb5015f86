package header

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

var (
	// ErrMalformedAuthor indicates an author line that does not match
	// "[<percent>%] <name> (<email>@<domain>)".
	ErrMalformedAuthor = errors.New("malformed author line")
	// ErrOrphanPoint indicates a contribution point with no author to attach
	// it to.
	ErrOrphanPoint = errors.New("contribution point without author")
)

// Diagnostic describes a header line the parser skipped.
type Diagnostic struct {
	Err  error
	Text string
	// Line is 1-based.
	Line int
}

// Error implements error.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("line %d: %v", d.Line, d.Err)
}

// Unwrap returns the underlying error.
func (d Diagnostic) Unwrap() error {
	return d.Err
}

// Diagnostics is the list of issues found while parsing one header.
type Diagnostics []Diagnostic

// Err joins all diagnostics into one error, or returns nil.
func (ds Diagnostics) Err() error {
	errs := make([]error, 0, len(ds))
	for _, d := range ds {
		errs = append(errs, d)
	}

	return errors.Join(errs...)
}

// Parse reads a header block with the default style. See [Style.Parse].
func Parse(text string) (*Record, Diagnostics) {
	return DefaultStyle().Parse(text)
}

// Parse reads a header block into a [Record].
//
// Parsing is best-effort and never fails: lines that cannot be understood are
// skipped and reported as [Diagnostics], so callers can always show whatever
// was recovered. Lines that do not start with the comment marker are ignored.
//
// The returned record may have no authors; callers that need an editable
// record should add a blank one.
func (s Style) Parse(text string) (*Record, Diagnostics) {
	p := parser{
		marker: s.marker(),
		rec:    &Record{},
		active: -1,
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	for i, line := range strings.Split(text, "\n") {
		p.line(i+1, strings.TrimSpace(line))
	}

	// A header cut off before AUTHORS still keeps its description.
	if p.collecting {
		p.endDescription()
	}

	for _, d := range p.diags {
		slog.Debug("skipped header line",
			slog.Int("line", d.Line),
			slog.String("text", d.Text),
			slog.Any("err", d.Err),
		)
	}

	return p.rec, p.diags
}

type parser struct {
	rec    *Record
	marker string
	// sentence holds description text not yet known to be complete.
	sentence   string
	diags      Diagnostics
	active     int
	seenTitle  bool
	seenAuthor bool
	collecting bool
	described  bool
}

func (p *parser) line(n int, line string) {
	if !strings.HasPrefix(line, p.marker) {
		return
	}

	content := strings.TrimSpace(line[len(p.marker):])

	switch {
	case !p.seenTitle && !p.collecting && !p.described && !p.seenAuthor && isTitle(content):
		p.seenTitle = true
		p.rec.TeamName, p.rec.Website = splitTitle(content)

	case content == "" && !p.collecting && !p.described && !p.seenAuthor:
		p.collecting = true

	case content == AuthorsMarker:
		if p.collecting {
			p.endDescription()
		}

		p.described = true

	case p.collecting:
		p.collect(content)

	case strings.HasPrefix(content, "["):
		p.seenAuthor = true

		a, err := parseAuthor(content)
		if err != nil {
			p.skip(n, line, err)

			return
		}

		p.rec.Authors = append(p.rec.Authors, a)
		p.active = len(p.rec.Authors) - 1

	case strings.HasPrefix(content, "-"):
		if p.active < 0 {
			if p.seenAuthor {
				p.skip(n, line, ErrOrphanPoint)
			}

			return
		}

		a := &p.rec.Authors[p.active]
		a.Points = append(a.Points, strings.TrimSpace(content[1:]))
	}
}

func (p *parser) skip(n int, line string, err error) {
	p.diags = append(p.diags, Diagnostic{Line: n, Text: line, Err: err})
}

// collect merges soft-wrapped description lines back into sentences. A line
// continues the pending sentence unless that sentence already ends with
// terminal punctuation. A blank line ends the pending sentence.
func (p *parser) collect(content string) {
	switch {
	case content == "":
		p.flushSentence()
	case p.sentence == "":
		p.sentence = content
	case endsSentence(p.sentence):
		p.flushSentence()
		p.sentence = content
	default:
		p.sentence += " " + content
	}
}

func (p *parser) flushSentence() {
	if p.sentence != "" {
		p.rec.Description = append(p.rec.Description, strings.TrimSpace(p.sentence))
	}

	p.sentence = ""
}

func (p *parser) endDescription() {
	p.flushSentence()

	for len(p.rec.Description) > 0 && p.rec.Description[len(p.rec.Description)-1] == "" {
		p.rec.Description = p.rec.Description[:len(p.rec.Description)-1]
	}

	p.collecting = false
	p.described = true
}

func endsSentence(s string) bool {
	switch s[len(s)-1] {
	case '.', '!', '?':
		return true
	}

	return false
}

func isTitle(content string) bool {
	return strings.Contains(content, "[") &&
		strings.Contains(content, "]") &&
		!strings.HasPrefix(content, "[")
}

// splitTitle splits "<team> [<website>]" into its parts.
func splitTitle(content string) (string, string) {
	team, rest, _ := strings.Cut(content, "[")
	website, _, _ := strings.Cut(rest, "]")

	return strings.TrimSpace(team), strings.TrimSpace(website)
}

// parseAuthor parses "[<percent>%] <name> (<email>@<domain>)".
func parseAuthor(content string) (Author, error) {
	percent, rest, ok := strings.Cut(content[1:], "]")
	if !ok {
		return Author{}, fmt.Errorf("%w: missing %q", ErrMalformedAuthor, "]")
	}

	name, addr, ok := strings.Cut(rest, "(")
	if !ok {
		return Author{}, fmt.Errorf("%w: missing %q", ErrMalformedAuthor, "(")
	}

	local, _, found := strings.Cut(addr, "@")
	if !found {
		local, _, _ = strings.Cut(addr, ")")
	}

	return Author{
		Percent: strings.ReplaceAll(strings.TrimSpace(percent), "%", ""),
		Name:    strings.TrimSpace(name),
		Email:   strings.ReplaceAll(strings.TrimSpace(local), `\`, ""),
	}, nil
}
