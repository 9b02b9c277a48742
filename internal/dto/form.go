package dto

import (
	"strings"

	"github.com/aretw0/cmdform/pkg/domain"
)

// FormResponse is the JSON shape of a form, shared by the HTTP and MCP adapters.
type FormResponse struct {
	Path   string          `json:"path"`
	Levels []LevelResponse `json:"levels"`
}

// LevelResponse is one command of a FormResponse. Sub-commands are listed by
// name only.
type LevelResponse struct {
	Name     string         `json:"name"`
	Short    string         `json:"short,omitempty"`
	HelpHTML string         `json:"help_html"`
	Fields   []domain.Field `json:"fields"`
	Commands []string       `json:"commands,omitempty"`
}

// NewFormResponse maps a domain form to its JSON shape.
func NewFormResponse(form *domain.Form) FormResponse {
	resp := FormResponse{Path: form.Path, Levels: make([]LevelResponse, 0, len(form.Levels))}
	for _, level := range form.Levels {
		resp.Levels = append(resp.Levels, LevelResponse{
			Name:     level.Command.Name,
			Short:    level.Command.Short,
			HelpHTML: level.HelpHTML,
			Fields:   level.Fields,
			Commands: level.Command.ListCommands(),
		})
	}
	return resp
}

// TreeNode is the JSON view of a command subtree. Hidden commands are left
// out.
type TreeNode struct {
	Name     string     `json:"name"`
	Short    string     `json:"short,omitempty"`
	Path     string     `json:"path"`
	Params   int        `json:"params"`
	Commands []TreeNode `json:"commands,omitempty"`
}

// NewTreeNode builds the view of cmd below the given parent path.
func NewTreeNode(parent []string, cmd *domain.Command) TreeNode {
	path := append(append([]string(nil), parent...), cmd.Name)
	n := TreeNode{
		Name:   cmd.Name,
		Short:  cmd.Short,
		Path:   strings.Join(path, "/"),
		Params: len(cmd.Params),
	}
	for _, child := range cmd.Commands {
		if child.Hidden {
			continue
		}
		n.Commands = append(n.Commands, NewTreeNode(path, child))
	}
	return n
}
