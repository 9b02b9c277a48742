package main

import (
	"github.com/aretw0/cmdform/internal/cli"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe [path]",
	Short: "Print the help and inputs of a command path",
	Long: `Resolves a slash separated command path (e.g. "cli/db/migrate") and prints
every command along it with its help text and inputs. Output is rendered for
the terminal when stdout is one, plain Markdown otherwise.

Example:
  cmdform describe --tree cli.yaml cli/db/migrate`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}
		return cli.Describe(cmd.Context(), cmd.OutOrStdout(), engine, pathArg(engine, args))
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
