package http

import (
	"html/template"
	"strings"

	"github.com/aretw0/cmdform/internal/dto"
	"github.com/aretw0/cmdform/pkg/domain"
)

type indexPage struct {
	Title string
	Root  *domain.Command
	Tree  dto.TreeNode
}

type crumb struct {
	Name  string
	Short string
	Path  string
}

type levelView struct {
	Name   string
	Help   template.HTML
	Fields []domain.Field
}

type formPage struct {
	Title    string
	Command  string
	Action   string
	Crumbs   []crumb
	Levels   []levelView
	Children []crumb
}

func (s *Server) newFormPage(form *domain.Form) formPage {
	page := formPage{
		Title:   s.title + " - " + form.Path,
		Command: form.Command().Name,
	}
	if s.action != "" {
		page.Action = s.action + "/" + form.Path
	}

	var names []string
	for _, level := range form.Levels {
		names = append(names, level.Command.Name)
		page.Crumbs = append(page.Crumbs, crumb{Name: level.Command.Name, Path: strings.Join(names, "/")})
		page.Levels = append(page.Levels, levelView{
			Name: level.Command.Name,
			// Help HTML is escaped by helptext.ToHTML except inside marked
			// preformatted blocks, which are passed through as authored.
			Help:   template.HTML(level.HelpHTML),
			Fields: level.Fields,
		})
	}

	for _, child := range form.Command().Commands {
		if child.Hidden {
			continue
		}
		page.Children = append(page.Children, crumb{
			Name:  child.Name,
			Short: child.Short,
			Path:  form.Path + "/" + child.Name,
		})
	}
	return page
}
