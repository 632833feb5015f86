package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// ErrList indicates a directory that could not be listed.
var ErrList = errors.New("list directory")

// DefaultExtensions are the C and C++ source and header suffixes that carry a
// header comment.
var DefaultExtensions = []string{".h", ".hpp", ".c", ".cpp", ".inl"}

// Entry is one listed file.
type Entry struct {
	// Path is the file path as reachable from the working directory.
	Path string
	// Rel is Path relative to the listed root, using the OS separator.
	Rel string
}

// Lister finds source files below a directory.
//
// Create instances with [NewLister] or [Config.NewLister].
type Lister struct {
	exts []string
}

// NewLister creates a [Lister] matching the given extensions, compared
// case-insensitively. With no extensions, [DefaultExtensions] are used.
func NewLister(exts ...string) *Lister {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	l := &Lister{exts: make([]string, 0, len(exts))}
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}

		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		l.exts = append(l.exts, ext)
	}

	return l
}

// Extensions returns the normalized extensions the [Lister] matches.
func (l *Lister) Extensions() []string {
	return slices.Clone(l.exts)
}

// Match reports whether path has one of the listed extensions.
func (l *Lister) Match(path string) bool {
	return slices.Contains(l.exts, strings.ToLower(filepath.Ext(path)))
}

// List walks root and returns every matching file, ordered by relative path.
// An empty result is not an error.
func (l *Lister) List(root string) ([]Entry, error) {
	var entries []Entry

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !l.Match(path) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		entries = append(entries, Entry{Path: path, Rel: rel})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrList, err)
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Rel, b.Rel)
	})

	return entries, nil
}
