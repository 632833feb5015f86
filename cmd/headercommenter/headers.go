package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/headercommenter/editor"
	"go.jacobcolvin.com/headercommenter/header"
)

// ErrOutputFormat indicates an unknown show output format.
var ErrOutputFormat = errors.New("unknown output format")

func newShowCommand(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print the parsed header of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(args[0])
			if err != nil {
				return err
			}

			var out []byte

			switch output {
			case "yaml":
				out, err = yaml.MarshalWithOptions(s.Record(), yaml.IndentSequence(true))
			case "json":
				out, err = json.MarshalIndent(s.Record(), "", "  ")
				out = append(out, '\n')
			default:
				return fmt.Errorf("%w: %q", ErrOutputFormat, output)
			}

			if err != nil {
				return fmt.Errorf("encoding header: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format, one of: yaml, json")

	err := cmd.RegisterFlagCompletionFunc("output",
		cobra.FixedCompletions([]string{"yaml", "json"}, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		slog.Debug("register output completion", slog.Any("err", err))
	}

	return cmd
}

func newRenderCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render <file>",
		Short: "Print the header a file would get when saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), s.Preview())

			return nil
		},
	}
}

func newEditCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <file>",
		Short: "Edit a header as YAML in $EDITOR and save it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(args[0])
			if err != nil {
				return err
			}

			rec, err := editor.EditForm(cmd.Context(), s.Record(), editor.EditorCommand(),
				cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			s.Replace(rec)

			return s.Save()
		},
	}
}

func newInitCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init <file> ...",
		Short: "Add the template header to files that have none",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := a.style()
			if err != nil {
				return err
			}

			failed := 0

			for _, path := range args {
				res, err := editor.Init(path, style, a.header.Year)
				if err == nil && res.NoHeader {
					err = res.Write()
				}

				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)

					failed++

					continue
				}

				if !res.NoHeader {
					slog.Info("file already has a header", slog.String("path", path))

					continue
				}

				fmt.Fprintln(cmd.OutOrStdout(), path)
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d", ErrFailed, failed)
			}

			return nil
		},
	}
}

// open starts a session on path and logs its parse diagnostics.
func (a *app) open(path string) (*editor.Session, error) {
	s, err := a.session()
	if err != nil {
		return nil, err
	}

	err = s.Open(path)
	if err != nil {
		return nil, err
	}

	logDiagnostics(path, s.Diagnostics())

	return s, nil
}

func logDiagnostics(path string, diags header.Diagnostics) {
	for _, d := range diags {
		slog.Warn("skipped header line",
			slog.String("path", path),
			slog.Int("line", d.Line),
			slog.String("text", d.Text),
			slog.Any("err", d.Err),
		)
	}
}
