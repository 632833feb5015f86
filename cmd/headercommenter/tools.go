package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/headercommenter/settings"
	"go.jacobcolvin.com/headercommenter/version"
)

func newWrapCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "wrap",
		Short: "Wrap standard input as comment lines",
		Long: `wrap reads text from standard input and prints it as comment lines no wider
than --width. Leading whitespace and an existing comment marker are kept, and
blank lines become bare markers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			style, err := a.style()
			if err != nil {
				return err
			}

			b, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			text := strings.TrimSuffix(strings.ReplaceAll(string(b), "\r\n", "\n"), "\n")
			if text == "" {
				return nil
			}

			for _, line := range style.Wrap(text) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}

			return nil
		},
	}
}

func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := settings.Schema()
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(b)

			return err
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return version.Get().Print(cmd.OutOrStdout(), cmd.Root().Name())
		},
	}
}
