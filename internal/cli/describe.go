package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/cmdform/internal/presentation/tui"
	"github.com/aretw0/cmdform/pkg/domain"
	"github.com/aretw0/cmdform/pkg/helptext"
	"github.com/aretw0/cmdform/pkg/ports"
)

// Describe writes the form of path to w as Markdown. Terminals get it rendered
// through glamour.
func Describe(ctx context.Context, w io.Writer, engine ports.FormEngine, path string) error {
	form, err := engine.Form(ctx, path, domain.WebRenderOptions())
	if err != nil {
		return err
	}

	out, err := tui.NewRenderer(w)(DescribeMarkdown(form))
	if err != nil {
		return fmt.Errorf("failed to render help: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// DescribeMarkdown renders a form as a Markdown document: one section per
// level with its help and a table of its inputs, then the leaf's
// sub-commands.
func DescribeMarkdown(form *domain.Form) string {
	var sb strings.Builder

	names := make([]string, len(form.Levels))
	for i, level := range form.Levels {
		names[i] = level.Command.Name
	}
	fmt.Fprintf(&sb, "# %s\n", strings.Join(names, " "))

	for _, level := range form.Levels {
		fmt.Fprintf(&sb, "\n## %s\n", level.Command.Name)
		if help := helptext.ToMarkdown(level.Command.Help); help != "" {
			sb.WriteString("\n" + help + "\n")
		}
		if len(level.Fields) == 0 {
			continue
		}

		sb.WriteString("\n| Input | Type | Required | Default | Help |\n")
		sb.WriteString("| --- | --- | --- | --- | --- |\n")
		for _, f := range level.Fields {
			name := f.Label
			if len(f.Opts) > 0 {
				name = strings.Join(f.Opts, ", ")
			}
			typ := f.Type
			if len(f.Choices) > 0 {
				typ = strings.Join(f.Choices, " / ")
			}
			required := ""
			if f.Required {
				required = "yes"
			}
			fmt.Fprintf(&sb, "| `%s` | %s | %s | %s | %s |\n",
				name, cell(typ), required, cell(f.Default), cell(f.Help))
		}
	}

	if leaf := form.Command(); leaf != nil && leaf.IsGroup() {
		sb.WriteString("\n## Commands\n\n")
		for _, child := range leaf.Commands {
			if child.Hidden {
				continue
			}
			fmt.Fprintf(&sb, "- `%s`", child.Name)
			if child.Short != "" {
				sb.WriteString(" " + child.Short)
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// cell makes s safe for a single Markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}
