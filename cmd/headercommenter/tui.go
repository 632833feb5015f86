package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.jacobcolvin.com/headercommenter/editor"
	"go.jacobcolvin.com/headercommenter/log"
	"go.jacobcolvin.com/headercommenter/tui"
	"go.jacobcolvin.com/headercommenter/workspace"
)

// ErrNotTerminal indicates the browser was started without a terminal.
var ErrNotTerminal = errors.New("tui needs an interactive terminal")

func newTUICommand(a *app) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "tui [dir]",
		Short: "Browse and edit headers interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(cmd.InOrStdin()) || !isTerminal(cmd.OutOrStdout()) {
				return ErrNotTerminal
			}

			dir, err := a.listDir(args)
			if err != nil {
				return err
			}

			session, err := a.session()
			if err != nil {
				return err
			}

			// Log lines would corrupt the screen; show them in the status bar.
			tail := log.NewTail(0)

			err = a.setLogger(tail)
			if err != nil {
				return err
			}

			opts := []tui.Option{
				tui.WithTail(tail),
				tui.WithLastDir(a.workspace.NewLastDir()),
				tui.WithEditor(editor.EditorCommand()),
			}

			if watch {
				w, err := workspace.NewWatcher(dir)
				if err != nil {
					return err
				}

				defer func() {
					//nolint:errcheck // Nothing to do about a failed close on exit.
					w.Close()
				}()

				opts = append(opts, tui.WithWatcher(w))
			}

			return tui.Run(cmd.Context(), tui.New(dir, session, a.workspace.NewLister(), opts...))
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "reload the listing when files are added or removed")

	return cmd
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}
