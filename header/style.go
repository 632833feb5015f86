package header

// Default template parameters. See [DefaultStyle].
const (
	DefaultMarker          = "//"
	DefaultWidth           = 80
	DefaultDomain          = "digipen.edu"
	DefaultOrganization    = "DigiPen"
	DefaultCopyrightMarker = "Copyright (c)"
	DefaultPlaceholder     = "filename.ext"

	// AuthorsMarker is the content of the line that opens the author list.
	AuthorsMarker = "AUTHORS"
)

// Style holds the fixed parameters of the header template.
//
// The zero value is not useful; start from [DefaultStyle] and override fields,
// or build one from CLI flags with [Config.NewStyle].
type Style struct {
	// Marker is the line comment prefix written on every header line.
	Marker string
	// Domain is appended to each author's email local part on render.
	Domain string
	// Organization is the copyright holder on the last header line.
	Organization string
	// CopyrightMarker is the substring that ends the header block.
	CopyrightMarker string
	// Placeholder is rendered in place of an empty filename.
	Placeholder string
	// Width is the wrap width. Zero means [DefaultWidth].
	Width int
	// EscapeAt renders the email separator as `\@` so that Doxygen does not
	// treat it as a command.
	EscapeAt bool
}

// DefaultStyle returns the [Style] used by the package-level functions.
func DefaultStyle() Style {
	return Style{
		Marker:          DefaultMarker,
		Domain:          DefaultDomain,
		Organization:    DefaultOrganization,
		CopyrightMarker: DefaultCopyrightMarker,
		Placeholder:     DefaultPlaceholder,
		Width:           DefaultWidth,
	}
}

func (s Style) width() int {
	if s.Width == 0 {
		return DefaultWidth
	}

	return s.Width
}

func (s Style) marker() string {
	if s.Marker == "" {
		return DefaultMarker
	}

	return s.Marker
}

func (s Style) copyrightMarker() string {
	if s.CopyrightMarker == "" {
		return DefaultCopyrightMarker
	}

	return s.CopyrightMarker
}

func (s Style) placeholder() string {
	if s.Placeholder == "" {
		return DefaultPlaceholder
	}

	return s.Placeholder
}

func (s Style) at() string {
	if s.EscapeAt {
		return `\@`
	}

	return "@"
}
