package file

import (
	"strings"

	"github.com/aretw0/cmdform/pkg/domain"
)

// CommandSpec is the on-disk shape of a command.
// It uses "mapstructure" tags to match the YAML/JSON keys.
type CommandSpec struct {
	Name       string        `json:"name" mapstructure:"name"`
	Short      string        `json:"short" mapstructure:"short"`
	Help       string        `json:"help" mapstructure:"help"`
	Hidden     bool          `json:"hidden" mapstructure:"hidden"`
	HelpOption bool          `json:"help_option" mapstructure:"help_option"`
	Params     []ParamSpec   `json:"params" mapstructure:"params"`
	Commands   []CommandSpec `json:"commands" mapstructure:"commands"`
}

// ParamSpec is the on-disk shape of a parameter.
type ParamSpec struct {
	Name     string   `json:"name" mapstructure:"name"`
	Kind     string   `json:"kind" mapstructure:"kind"`
	Type     string   `json:"type" mapstructure:"type"`
	Opts     []string `json:"opts" mapstructure:"opts"`
	Help     string   `json:"help" mapstructure:"help"`
	Required bool     `json:"required" mapstructure:"required"`
	Default  any      `json:"default" mapstructure:"default"`
	Choices  []string `json:"choices" mapstructure:"choices"`
	Multiple bool     `json:"multiple" mapstructure:"multiple"`
	Nargs    int      `json:"nargs" mapstructure:"nargs"`
	IsFlag   bool     `json:"is_flag" mapstructure:"is_flag"`
	Hidden   bool     `json:"hidden" mapstructure:"hidden"`
}

// literalMarker lets tree files spell the preformatted marker as the two
// characters `\b`, since block scalars cannot hold a backspace.
const literalMarker = `\b`

func (s CommandSpec) toDomain() *domain.Command {
	cmd := &domain.Command{
		Name:          s.Name,
		Short:         s.Short,
		Help:          normalizeMarkers(s.Help),
		Hidden:        s.Hidden,
		AddHelpOption: s.HelpOption,
	}
	for _, p := range s.Params {
		cmd.Params = append(cmd.Params, p.toDomain())
	}
	for _, child := range s.Commands {
		cmd.Commands = append(cmd.Commands, child.toDomain())
	}
	return cmd
}

func (p ParamSpec) toDomain() domain.Param {
	kind := domain.ParamKind(p.Kind)
	if kind == "" {
		kind = domain.ParamOption
	}
	typeName := p.Type
	if typeName == "" {
		switch {
		case p.IsFlag:
			typeName = domain.TypeBool
		case len(p.Choices) > 0:
			typeName = domain.TypeChoice
		default:
			typeName = domain.TypeString
		}
	}
	return domain.Param{
		Name:     p.Name,
		Kind:     kind,
		Type:     typeName,
		Opts:     p.Opts,
		Help:     p.Help,
		Required: p.Required,
		Default:  p.Default,
		Choices:  p.Choices,
		Multiple: p.Multiple,
		Nargs:    p.Nargs,
		IsFlag:   p.IsFlag,
		Hidden:   p.Hidden,
	}
}

func normalizeMarkers(help string) string {
	if !strings.Contains(help, literalMarker) {
		return help
	}
	lines := strings.Split(help, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == literalMarker {
			lines[i] = domain.PreformattedMarker
		}
	}
	return strings.Join(lines, "\n")
}
