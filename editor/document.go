package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrRead indicates a file could not be read.
	ErrRead = errors.New("read file")
	// ErrWrite indicates a file could not be written.
	ErrWrite = errors.New("write file")
	// ErrEncoding indicates file content that is not valid UTF-8.
	ErrEncoding = errors.New("file is not valid UTF-8")
	// ErrNoFile indicates an operation that needs an open file.
	ErrNoFile = errors.New("no file open")
)

// Document is the text of a file with its line endings normalized to LF.
// BOM and CRLF record how the file was encoded so it can be written back the
// same way.
type Document struct {
	Text string
	BOM  bool
	CRLF bool
}

// ReadFile reads the whole file at path into a [Document].
func ReadFile(path string) (Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrRead, err)
	}

	doc, err := Decode(b)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}

	return doc, nil
}

// Decode converts raw file content into a [Document].
func Decode(b []byte) (Document, error) {
	if !utf8.Valid(b) {
		return Document{}, ErrEncoding
	}

	text, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), b)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrEncoding, err)
	}

	s := string(text)

	// Mixed files are written back with whichever ending most lines use.
	crlf := strings.Count(s, "\r\n")

	return Document{
		Text: strings.ReplaceAll(s, "\r\n", "\n"),
		BOM:  len(text) < len(b),
		CRLF: crlf > 0 && crlf >= strings.Count(s, "\n")-crlf,
	}, nil
}

// Encode converts d back into file content.
func (d Document) Encode() ([]byte, error) {
	text := d.Text
	if d.CRLF {
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}

	if !d.BOM {
		return []byte(text), nil
	}

	b, _, err := transform.Bytes(unicode.UTF8BOM.NewEncoder(), []byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}

	return b, nil
}

// WriteFile replaces the file at path with d. An existing file keeps its
// permissions.
func WriteFile(path string, d Document) error {
	b, err := d.Encode()
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}

	mode := fs.FileMode(0o644)

	info, err := os.Stat(path)
	if err == nil {
		mode = info.Mode().Perm()
	}

	err = os.WriteFile(path, b, mode)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return nil
}
