package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

var (
	// ErrLoad indicates the settings file could not be read or decoded.
	ErrLoad = errors.New("load settings")

	// ErrUnknownFormat indicates a settings file extension with no decoder.
	ErrUnknownFormat = errors.New("unknown settings format")
)

// ProjectNames are the settings file names looked up in a project directory,
// in order of preference.
var ProjectNames = []string{
	".headercommenter.yaml",
	".headercommenter.yml",
	".headercommenter.toml",
}

// UserNames are the settings file names looked up in the user config
// directory (below "headercommenter").
var UserNames = []string{
	"config.yaml",
	"config.yml",
	"config.toml",
}

// File is the decoded settings file. Zero values mean "not set".
type File struct {
	EscapeAt     *bool    `json:"escape-at,omitempty"     toml:"escape-at,omitempty"     yaml:"escape-at,omitempty"     jsonschema:"write author emails as name\\@domain for Doxygen"`
	Domain       string   `json:"domain,omitempty"        toml:"domain,omitempty"        yaml:"domain,omitempty"        jsonschema:"email domain appended to each author"`
	Organization string   `json:"organization,omitempty"  toml:"organization,omitempty"  yaml:"organization,omitempty"  jsonschema:"copyright holder"`
	StateFile    string   `json:"state-file,omitempty"    toml:"state-file,omitempty"    yaml:"state-file,omitempty"    jsonschema:"file remembering the last opened directory"`
	LogLevel     string   `json:"log-level,omitempty"     toml:"log-level,omitempty"     yaml:"log-level,omitempty"     jsonschema:"log level: error, warn, info or debug"`
	LogFormat    string   `json:"log-format,omitempty"    toml:"log-format,omitempty"    yaml:"log-format,omitempty"    jsonschema:"log format: json, logfmt or text"`
	Extensions   []string `json:"extensions,omitempty"    toml:"extensions,omitempty"    yaml:"extensions,omitempty"    jsonschema:"file extensions to list"`
	Width        int      `json:"width,omitempty"         toml:"width,omitempty"         yaml:"width,omitempty"         jsonschema:"wrap width for the description, including the comment prefix"`
}

// Load reads and decodes the settings file at path.
func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	return Decode(b, filepath.Ext(path))
}

// Decode decodes settings in the format named by ext (".yaml", ".toml", ...).
func Decode(b []byte, ext string) (*File, error) {
	f := &File{}

	switch strings.ToLower(ext) {
	case ".yaml", ".yml", ".json":
		err := yaml.UnmarshalWithOptions(b, f, yaml.Strict())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoad, err)
		}

	case ".toml":
		md, err := toml.Decode(string(b), f)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoad, err)
		}

		if keys := md.Undecoded(); len(keys) > 0 {
			names := make([]string, 0, len(keys))
			for _, k := range keys {
				names = append(names, k.String())
			}

			return nil, fmt.Errorf("%w: unknown keys: %s", ErrLoad, strings.Join(names, ", "))
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	return f, nil
}

// Find returns the first existing settings file among the project names in
// projectDir and the user names in userDir. Empty directories are skipped.
// It returns "" when there is none.
func Find(projectDir, userDir string) string {
	lookups := []struct {
		dir   string
		names []string
	}{
		{dir: projectDir, names: ProjectNames},
		{dir: userDir, names: UserNames},
	}

	for _, l := range lookups {
		if l.dir == "" {
			continue
		}

		for _, name := range l.names {
			path := filepath.Join(l.dir, name)

			info, err := os.Stat(path)
			if err == nil && info.Mode().IsRegular() {
				return path
			}
		}
	}

	return ""
}
