package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/goccy/go-yaml"

	"go.jacobcolvin.com/headercommenter/header"
)

// ErrForm indicates a form that could not be encoded, edited or decoded.
var ErrForm = errors.New("header form")

// DefaultEditor runs when neither VISUAL nor EDITOR is set.
const DefaultEditor = "vi"

const formPreamble = `# Edit the header, then save and quit.
# Percent is free text; email is the part before the "@".
# Lines starting with "#" are ignored.
`

// EncodeForm writes rec as a YAML form.
func EncodeForm(rec *header.Record) ([]byte, error) {
	b, err := yaml.MarshalWithOptions(rec,
		yaml.IndentSequence(true),
		yaml.UseLiteralStyleIfMultiline(true),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrForm, err)
	}

	return append([]byte(formPreamble), b...), nil
}

// DecodeForm reads a YAML form written by [EncodeForm]. Unknown keys are
// rejected.
func DecodeForm(b []byte) (*header.Record, error) {
	rec := &header.Record{}

	err := yaml.UnmarshalWithOptions(b, rec, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrForm, err)
	}

	return rec, nil
}

// EditorCommand returns the user's editor command line from VISUAL or
// EDITOR, falling back to [DefaultEditor].
func EditorCommand() string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return v
		}
	}

	return DefaultEditor
}

// Form is a record written to a temporary file for editing.
//
// Create instances with [NewForm], run [Form.Command], then [Form.Read] the
// result and [Form.Close] the form.
type Form struct {
	Path string
}

// NewForm writes rec to a new temporary YAML file.
func NewForm(rec *header.Record) (*Form, error) {
	b, err := EncodeForm(rec)
	if err != nil {
		return nil, err
	}

	f, err := os.CreateTemp("", "headercommenter-*.yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrForm, err)
	}

	_, err = f.Write(b)
	closeErr := f.Close()

	err = errors.Join(err, closeErr)
	if err != nil {
		//nolint:errcheck // Already returning the write error.
		os.Remove(f.Name())

		return nil, fmt.Errorf("%w: %w", ErrForm, err)
	}

	return &Form{Path: f.Name()}, nil
}

// Command returns the editor command line applied to the form file. The
// editor string is split on whitespace, so flags such as "code --wait" work.
func (f *Form) Command(ctx context.Context, editor string) *exec.Cmd {
	args := strings.Fields(editor)
	if len(args) == 0 {
		args = []string{DefaultEditor}
	}

	args = append(args, f.Path)

	//nolint:gosec // Running the user's own editor is the point.
	return exec.CommandContext(ctx, args[0], args[1:]...)
}

// Read decodes the form file.
func (f *Form) Read() (*header.Record, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrForm, err)
	}

	return DecodeForm(b)
}

// Close removes the form file.
func (f *Form) Close() error {
	err := os.Remove(f.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrForm, err)
	}

	return nil
}

// EditForm opens rec in editor attached to the given terminal streams and
// returns the edited record.
func EditForm(ctx context.Context, rec *header.Record, editor string, stdin io.Reader, stdout, stderr io.Writer) (*header.Record, error) {
	f, err := NewForm(rec)
	if err != nil {
		return nil, err
	}

	defer func() {
		//nolint:errcheck // Best-effort cleanup of the temporary form.
		f.Close()
	}()

	cmd := f.Command(ctx, editor)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err = cmd.Run()
	if err != nil {
		return nil, fmt.Errorf("%w: running %s: %w", ErrForm, editor, err)
	}

	return f.Read()
}
