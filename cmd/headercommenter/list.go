package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/headercommenter/workspace"
)

func newListCommand(a *app) *cobra.Command {
	var tree bool

	cmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "List source files (defaults to the last listed directory)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := a.listDir(args)
			if err != nil {
				return err
			}

			return a.list(cmd.OutOrStdout(), dir, tree)
		},
	}

	cmd.Flags().BoolVar(&tree, "tree", false, "print files as a directory tree")

	return cmd
}

// listDir returns the directory argument, falling back to the remembered
// directory and then the working directory.
func (a *app) listDir(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	dir, err := a.workspace.NewLastDir().Load()
	if err != nil {
		return "", err
	}

	if dir == "" {
		return ".", nil
	}

	return dir, nil
}

func (a *app) list(w io.Writer, dir string, tree bool) error {
	entries, err := a.workspace.NewLister().List(dir)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		slog.Info("no matching files", slog.String("dir", dir))

		return nil
	}

	if tree {
		for _, row := range workspace.BuildTree(entries).Flatten() {
			name := row.Name
			if row.IsDir() {
				name += "/"
			}

			fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", row.Depth), name)
		}
	} else {
		for _, e := range entries {
			fmt.Fprintln(w, filepath.ToSlash(e.Rel))
		}
	}

	err = a.workspace.NewLastDir().Save(dir)
	if err != nil {
		slog.Warn("remember directory", slog.Any("err", err))
	}

	return nil
}
