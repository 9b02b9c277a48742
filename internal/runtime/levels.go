package runtime

import (
	"github.com/aretw0/cmdform/pkg/domain"
	"github.com/aretw0/cmdform/pkg/fields"
	"github.com/aretw0/cmdform/pkg/helptext"
)

// BuildLevels converts a chain into rendering levels. Help HTML is computed
// per call and not stored on the commands.
func BuildLevels(r *fields.Registry, chain domain.PathChain, opts domain.RenderOptions) []domain.Level {
	levels := make([]domain.Level, 0, len(chain))
	for i, link := range chain {
		levels = append(levels, domain.Level{
			Command:  link.Command,
			HelpHTML: helptext.ToHTML(link.Command.Help),
			Fields:   fields.Extract(r, link.Scope, i, opts),
		})
	}
	return levels
}
