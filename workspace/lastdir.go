package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrState indicates the last-directory file could not be read or written.
var ErrState = errors.New("last directory state")

// LastDir remembers the most recently opened directory in a single-line text
// file.
type LastDir struct {
	// Path is the state file. Empty disables persistence.
	Path string
}

// DefaultStatePath returns the state file location under the user config
// directory, or "" when it cannot be determined.
func DefaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "headercommenter", "last-directory")
}

// Load returns the remembered directory. A missing state file yields "" and
// no error.
func (l LastDir) Load() (string, error) {
	if l.Path == "" {
		return "", nil
	}

	b, err := os.ReadFile(l.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrState, err)
	}

	line, _, _ := strings.Cut(string(b), "\n")

	return strings.TrimSpace(line), nil
}

// Save records dir as the last opened directory, creating the state file's
// parent directory when needed.
func (l LastDir) Save(dir string) error {
	if l.Path == "" {
		return nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrState, err)
	}

	err = os.MkdirAll(filepath.Dir(l.Path), 0o755)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrState, err)
	}

	err = os.WriteFile(l.Path, []byte(abs+"\n"), 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrState, err)
	}

	return nil
}
