package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aretw0/cmdform"
	"github.com/aretw0/cmdform/pkg/adapters/openapi"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var openapiCmd = &cobra.Command{
	Use:   "openapi",
	Short: "Export the command tree as an OpenAPI document",
	Long: `Writes an OpenAPI 3 document with one POST operation per command path. The
multipart form request body of each operation lists the command's inputs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		title, _ := cmd.Flags().GetString("title")
		version, _ := cmd.Flags().GetString("api-version")

		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}
		if version == "" {
			version = strings.TrimSpace(cmdform.Version)
		}

		doc, err := openapi.Build(engine.Root(), title, version)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch format {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		case "yaml":
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(doc)
		}
		return fmt.Errorf("unknown format %q: supported formats are json and yaml", format)
	},
}

func init() {
	rootCmd.AddCommand(openapiCmd)

	openapiCmd.Flags().StringP("format", "f", "json", "Output format: json or yaml")
	openapiCmd.Flags().String("title", "", "Document title (defaults to the root command name)")
	openapiCmd.Flags().String("api-version", "", "Document version (defaults to the cmdform version)")
}
