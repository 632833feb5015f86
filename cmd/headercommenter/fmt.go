package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/headercommenter/editor"
	"go.jacobcolvin.com/headercommenter/header"
)

var (
	addedColor   = color.New(color.FgGreen)
	removedColor = color.New(color.FgRed)
	pathColor    = color.New(color.Bold)
	issueColor   = color.New(color.FgYellow)
)

func newFmtCommand(a *app) *cobra.Command {
	var diffMode, listMode bool

	cmd := &cobra.Command{
		Use:   "fmt <file|dir> ...",
		Short: "Regenerate headers in place",
		Long: `fmt parses each header and writes it back in canonical form: the description
is rewrapped, author lines are normalized, and the copyright year is kept
unless --year is set. Directories are searched for files with a listed
extension; files without a header are skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.format(cmd.OutOrStdout(), cmd.ErrOrStderr(), args, diffMode, listMode)
		},
	}

	cmd.Flags().BoolVarP(&diffMode, "diff", "d", false, "diff mode: show changes without writing")
	cmd.Flags().BoolVarP(&listMode, "list", "l", false, "list mode: only list files that would change")

	return cmd
}

func (a *app) format(out, errOut io.Writer, args []string, diffMode, listMode bool) error {
	style, err := a.style()
	if err != nil {
		return err
	}

	files, err := a.collectFiles(args)
	if err != nil {
		return err
	}

	failed := 0

	for _, path := range files {
		res, err := editor.Format(path, style, a.header.Year)
		if err != nil {
			fmt.Fprintf(errOut, "%s: %v\n", path, err)

			failed++

			continue
		}

		logDiagnostics(path, res.Diagnostics)

		if res.NoHeader {
			slog.Debug("no header", slog.String("path", path))

			continue
		}

		if !res.Changed() {
			continue
		}

		switch {
		case diffMode:
			printDiff(out, path, res.Old, res.New)
		case listMode:
			fmt.Fprintln(out, path)
		default:
			err = res.Write()
			if err != nil {
				fmt.Fprintf(errOut, "%s: %v\n", path, err)

				failed++
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d", ErrFailed, failed)
	}

	return nil
}

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file|dir> ...",
		Short: "Report missing, malformed or unformatted headers",
		Long: `check reports files without a header, header lines that could not be parsed,
advisory problems such as percentages that do not add up to 100, and headers
that fmt would change. It exits with status 1 when anything is reported.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.check(cmd.OutOrStdout(), args)
		},
	}
}

func (a *app) check(out io.Writer, args []string) error {
	style, err := a.style()
	if err != nil {
		return err
	}

	files, err := a.collectFiles(args)
	if err != nil {
		return err
	}

	total := 0

	for _, path := range files {
		issues := a.fileIssues(path, style)
		if len(issues) == 0 {
			continue
		}

		total += len(issues)

		for _, issue := range issues {
			fmt.Fprintf(out, "%s: %s\n", pathColor.Sprint(path), issueColor.Sprint(issue))
		}
	}

	if total > 0 {
		return fmt.Errorf("%w: %d", ErrIssues, total)
	}

	return nil
}

func (a *app) fileIssues(path string, style header.Style) []string {
	res, err := editor.Format(path, style, a.header.Year)
	if err != nil {
		return []string{err.Error()}
	}

	if res.NoHeader {
		return []string{"no header"}
	}

	var issues []string

	for _, d := range res.Diagnostics {
		issues = append(issues, d.Error())
	}

	s, err := a.session()
	if err != nil {
		return append(issues, err.Error())
	}

	err = s.Open(path)
	if err != nil {
		return append(issues, err.Error())
	}

	for _, issue := range s.Lint() {
		issues = append(issues, issue.Error())
	}

	if res.Changed() {
		issues = append(issues, "not formatted")
	}

	return issues
}

// collectFiles expands directories into the files the lister matches. Files
// named directly are kept whatever their extension.
func (a *app) collectFiles(args []string) ([]string, error) {
	lister := a.workspace.NewLister()

	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, arg)

			continue
		}

		entries, err := lister.List(arg)
		if err != nil {
			return nil, err
		}

		for _, e := range entries {
			files = append(files, e.Path)
		}
	}

	return files, nil
}

// printDiff writes a line diff of a and b. It looks a few lines ahead for a
// match, which is enough for header rewrites.
func printDiff(w io.Writer, path, a, b string) {
	fmt.Fprintf(w, "--- %s\n+++ %s\n", path, path)

	aLines := strings.Split(a, "\n")
	bLines := strings.Split(b, "\n")

	removed := func(line string) {
		removedColor.Fprintf(w, "-%s\n", line)
	}

	added := func(line string) {
		addedColor.Fprintf(w, "+%s\n", line)
	}

	ai, bi := 0, 0
	for ai < len(aLines) || bi < len(bLines) {
		switch {
		case ai >= len(aLines):
			added(bLines[bi])

			bi++

		case bi >= len(bLines):
			removed(aLines[ai])

			ai++

		case aLines[ai] == bLines[bi]:
			fmt.Fprintf(w, " %s\n", aLines[ai])

			ai++
			bi++

		default:
			found := false
			for lookahead := 1; lookahead < 5 && ai+lookahead < len(aLines); lookahead++ {
				if aLines[ai+lookahead] == bLines[bi] {
					for j := range lookahead {
						removed(aLines[ai+j])
					}

					ai += lookahead
					found = true

					break
				}
			}

			if !found {
				for lookahead := 1; lookahead < 5 && bi+lookahead < len(bLines); lookahead++ {
					if bLines[bi+lookahead] == aLines[ai] {
						for j := range lookahead {
							added(bLines[bi+j])
						}

						bi += lookahead
						found = true

						break
					}
				}
			}

			if !found {
				removed(aLines[ai])
				added(bLines[bi])

				ai++
				bi++
			}
		}
	}
}
