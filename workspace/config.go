package workspace

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for workspace configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Extensions string
	StateFile  string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds CLI flag values for directory listing and the remembered
// directory.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags].
type Config struct {
	Flags      Flags
	StateFile  string
	Extensions []string
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Extensions: "ext",
		StateFile:  "state-file",
	}

	return f.NewConfig()
}

// RegisterFlags adds workspace flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringSliceVar(&c.Extensions, c.Flags.Extensions, DefaultExtensions,
		"file extensions to list (case-insensitive)")
	flags.StringVar(&c.StateFile, c.Flags.StateFile, DefaultStatePath(),
		"file remembering the last opened directory (empty to disable)")
}

// RegisterCompletions registers shell completions for workspace flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Extensions,
		cobra.FixedCompletions(DefaultExtensions, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Extensions, err)
	}

	return nil
}

// NewLister creates a [Lister] for the configured extensions.
func (c *Config) NewLister() *Lister {
	return NewLister(c.Extensions...)
}

// NewLastDir creates a [LastDir] for the configured state file.
func (c *Config) NewLastDir() LastDir {
	return LastDir{Path: c.StateFile}
}
