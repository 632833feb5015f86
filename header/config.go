package header

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrInvalidOption indicates an invalid style option value.
var ErrInvalidOption = errors.New("invalid option")

// Flags holds CLI flag names for header style configuration, allowing callers
// to customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Width        string
	Domain       string
	Organization string
	EscapeAt     string
	Year         string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds CLI flag values for the header template.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewStyle] to build a [Style].
type Config struct {
	Flags        Flags
	Domain       string
	Organization string
	Width        int
	// Year is the copyright year. Zero means the current year.
	Year     int
	EscapeAt bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Width:        "width",
		Domain:       "domain",
		Organization: "organization",
		EscapeAt:     "escape-at",
		Year:         "year",
	}

	return f.NewConfig()
}

// RegisterFlags adds header style flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.IntVarP(&c.Width, c.Flags.Width, "w", DefaultWidth,
		"wrap width for the description, including the comment prefix")
	flags.StringVar(&c.Domain, c.Flags.Domain, DefaultDomain,
		"email domain appended to each author")
	flags.StringVar(&c.Organization, c.Flags.Organization, DefaultOrganization,
		"copyright holder")
	flags.BoolVar(&c.EscapeAt, c.Flags.EscapeAt, false,
		`write author emails as name\@domain for Doxygen`)
	flags.IntVar(&c.Year, c.Flags.Year, 0,
		"copyright year (0 = current year)")
}

// RegisterCompletions registers shell completions for header style flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Width,
		cobra.FixedCompletions([]string{"72", "80", "100", "120"}, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Width, err)
	}

	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, flag := range []string{c.Flags.Domain, c.Flags.Organization, c.Flags.Year} {
		regErr := cmd.RegisterFlagCompletionFunc(flag, noFileComp)
		if regErr != nil {
			return fmt.Errorf("registering %s completion: %w", flag, regErr)
		}
	}

	return nil
}

// NewStyle creates a [Style] from this [Config].
func (c *Config) NewStyle() (Style, error) {
	if c.Width < 0 {
		return Style{}, fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidOption, c.Flags.Width, c.Width)
	}

	s := DefaultStyle()
	s.Domain = c.Domain
	s.Organization = c.Organization
	s.EscapeAt = c.EscapeAt

	if c.Width > 0 {
		s.Width = c.Width
	}

	return s, nil
}

// RenderYear returns the year to render given the current time.
func (c *Config) RenderYear(now time.Time) int {
	if c.Year > 0 {
		return c.Year
	}

	return now.Year()
}
