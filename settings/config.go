package settings

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for settings configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Path string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds the CLI flag value naming the settings file.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.Load] once flags are parsed.
type Config struct {
	Flags Flags
	Path  string
}

// NewConfig returns a new [Config] with the default flag name "config".
func NewConfig() *Config {
	f := Flags{
		Path: "config",
	}

	return f.NewConfig()
}

// RegisterFlags adds the settings flag to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Path, c.Flags.Path, "",
		"settings file (default .headercommenter.yaml, or config.yaml in the user config directory)")
}

// RegisterCompletions registers shell completions for the settings flag on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.MarkFlagFilename(c.Flags.Path, "yaml", "yml", "toml", "json")
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Path, err)
	}

	return nil
}

// Resolve returns the settings file to load: the configured path, or the
// first file found by [Find] from the working directory and the user config
// directory. It returns "" when there is none.
func (c *Config) Resolve() string {
	if c.Path != "" {
		return c.Path
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}

	userDir, err := os.UserConfigDir()
	if err == nil {
		userDir = filepath.Join(userDir, "headercommenter")
	}

	return Find(wd, userDir)
}

// Load loads the settings file named by [Config.Resolve]. Without one it
// returns an empty [File].
func (c *Config) Load() (*File, error) {
	path := c.Resolve()
	if path == "" {
		return &File{}, nil
	}

	f, err := Load(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("loaded settings", slog.String("path", path))

	return f, nil
}
