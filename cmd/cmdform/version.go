package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/cmdform"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cmdform",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cmdform version %s\n", strings.TrimSpace(cmdform.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
