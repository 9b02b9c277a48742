package main

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/cmdform/internal/dto"
	"github.com/aretw0/cmdform/internal/presentation/graph"
	"github.com/aretw0/cmdform/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the command tree",
	Long: `Prints the command tree as an indented listing (text), a Mermaid flowchart
(mermaid) or JSON (json). --highlight marks a resolved path on the Mermaid
chart.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		showHidden, _ := cmd.Flags().GetBool("hidden")
		highlight, _ := cmd.Flags().GetString("highlight")

		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		switch format {
		case "text":
			tui.PrintTree(out, engine.Root(), showHidden)
		case "mermaid":
			var overlay *graph.GraphOverlay
			if highlight != "" {
				if _, err := engine.Resolve(cmd.Context(), highlight); err != nil {
					return err
				}
				overlay = &graph.GraphOverlay{Path: highlight}
			}
			fmt.Fprint(out, graph.GenerateMermaid(engine.Root(), overlay))
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(dto.NewTreeNode(nil, engine.Root()))
		default:
			return fmt.Errorf("unknown format %q: supported formats are text, mermaid and json", format)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)

	treeCmd.Flags().StringP("format", "f", "text", "Output format: text, mermaid or json")
	treeCmd.Flags().Bool("hidden", false, "Include hidden commands (text format)")
	treeCmd.Flags().String("highlight", "", "Command path to highlight (mermaid format)")
}
