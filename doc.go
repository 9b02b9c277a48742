/*
Package cmdform serves a tree of command-line command definitions as web forms.

A command tree (name, help text, parameters, sub-commands) is built once at
startup, from Go code, a YAML/JSON file or a live cobra command, and is
read-only afterwards. Each request resolves a slash separated path such as
"cli/db/migrate" into the chain of commands from the root to the leaf, and
builds one form level per command: help text converted to HTML and one field
descriptor per parameter.

# Key Features

  - Path resolution with precise "not found" errors listing the valid names.
  - Help text to HTML with preformatted blocks ("\b" marker lines) and escaping.
  - Request-scoped render options; the shared tree is never mutated.
  - Adapters for HTTP (chi), MCP, OpenAPI export and page caching (memory, Redis).

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/cmdform"
		"github.com/aretw0/cmdform/pkg/domain"
		"github.com/aretw0/cmdform/pkg/dsl"
	)

	func main() {
		root, err := dsl.Group("cli").
			Help("Project tooling.").
			Command("build", func(c *dsl.CommandBuilder) {
				c.Help("Build the project.").Option("out", domain.TypePath, "--out", "-o")
			}).
			Build()
		if err != nil {
			log.Fatal(err)
		}

		eng, err := cmdform.New(root)
		if err != nil {
			log.Fatal(err)
		}

		form, err := eng.Form(context.Background(), "cli/build", domain.WebRenderOptions())
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(form.Command().Name)
	}
*/
package cmdform
