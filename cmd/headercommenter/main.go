// Command headercommenter edits the structured header comments of C and C++
// source files.
//
// Every header has the same shape: a title line with the team name and
// website, the file name, a description wrapped at 80 columns, an AUTHORS
// section with contribution percentages and bullet points, and a copyright
// line that ends the header.
//
// # Usage
//
//	headercommenter [flags] <command> [args]
//
// # Commands
//
//	list [dir]              list source files (--tree for a tree)
//	show <file>             print the parsed header (-o yaml|json)
//	render <file>           print the regenerated header
//	fmt <file|dir> ...      regenerate headers in place (-d diff, -l list)
//	check <file|dir> ...    report header problems
//	init <file> ...         add a template header to files without one
//	edit <file>             edit a header as YAML in $EDITOR
//	wrap                    wrap standard input as comment lines
//	schema                  print the settings file JSON Schema
//	tui [dir]               browse and edit headers interactively
//	version                 print build information
//
// Options may also be set in a settings file; see the schema command.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/headercommenter/editor"
	"go.jacobcolvin.com/headercommenter/header"
	"go.jacobcolvin.com/headercommenter/log"
	"go.jacobcolvin.com/headercommenter/settings"
	"go.jacobcolvin.com/headercommenter/workspace"
)

var (
	// ErrIssues indicates that check found problems.
	ErrIssues = errors.New("headers have issues")
	// ErrFailed indicates files that could not be processed.
	ErrFailed = errors.New("some files could not be processed")
)

func main() {
	err := newRootCommand(newApp()).Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// app holds the configuration shared by all commands.
type app struct {
	log       *log.Config
	header    *header.Config
	workspace *workspace.Config
	settings  *settings.Config
}

func newApp() *app {
	return &app{
		log:       log.NewConfig(),
		header:    header.NewConfig(),
		workspace: workspace.NewConfig(),
		settings:  settings.NewConfig(),
	}
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "headercommenter",
		Short: "Edit the header comments of C and C++ source files",
		Long: `headercommenter reads, edits and regenerates the structured header comment at
the top of C and C++ source files: team, website, description, authors with
contribution percentages and points, and the copyright line.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Flags(), cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	a.log.RegisterFlags(flags)
	a.header.RegisterFlags(flags)
	a.workspace.RegisterFlags(flags)
	a.settings.RegisterFlags(flags)

	for _, register := range []func(*cobra.Command) error{
		a.log.RegisterCompletions,
		a.header.RegisterCompletions,
		a.workspace.RegisterCompletions,
		a.settings.RegisterCompletions,
	} {
		err := register(rootCmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
		}
	}

	rootCmd.AddCommand(
		newListCommand(a),
		newShowCommand(a),
		newRenderCommand(a),
		newFmtCommand(a),
		newCheckCommand(a),
		newInitCommand(a),
		newEditCommand(a),
		newWrapCommand(a),
		newSchemaCommand(),
		newTUICommand(a),
		newVersionCommand(),
	)

	return rootCmd
}

// setup applies the settings file and installs the default logger.
func (a *app) setup(flags *pflag.FlagSet, logOut io.Writer) error {
	f, err := a.settings.Load()
	if err != nil {
		return err
	}

	f.Apply(flags, settings.Targets{
		Header:    a.header,
		Workspace: a.workspace,
		Log:       a.log,
	})

	return a.setLogger(logOut)
}

func (a *app) setLogger(w io.Writer) error {
	handler, err := a.log.NewHandler(w)
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(handler))

	return nil
}

func (a *app) style() (header.Style, error) {
	return a.header.NewStyle()
}

func (a *app) session() (*editor.Session, error) {
	style, err := a.style()
	if err != nil {
		return nil, err
	}

	return editor.NewSession(editor.WithStyle(style), editor.WithYear(a.header.Year)), nil
}
