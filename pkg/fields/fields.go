// Package fields builds form field descriptors from command parameters.
package fields

import (
	"fmt"
	"strings"

	"github.com/aretw0/cmdform/pkg/domain"
)

// helpParam is the implicit --help option of commands with AddHelpOption.
var helpParam = domain.Param{
	Name:   "help",
	Kind:   domain.ParamOption,
	Type:   domain.TypeBool,
	Opts:   []string{"--help"},
	Help:   "Show this message and exit.",
	IsFlag: true,
}

// Params returns the parameters of cmd that a form shows, in order.
func Params(cmd *domain.Command, opts domain.RenderOptions) []domain.Param {
	params := make([]domain.Param, 0, len(cmd.Params)+1)
	for _, p := range cmd.Params {
		if p.Hidden {
			continue
		}
		params = append(params, p)
	}
	if cmd.AddHelpOption && !opts.SuppressHelpOption {
		params = append(params, helpParam)
	}
	return params
}

// Extract builds the fields of the command bound to scope.
// commandIndex is the position of the command in its path chain.
func Extract(r *Registry, scope *domain.Scope, commandIndex int, opts domain.RenderOptions) []domain.Field {
	if r == nil {
		r = DefaultRegistry()
	}
	params := Params(scope.Command, opts)
	out := make([]domain.Field, 0, len(params))
	for i, p := range params {
		out = append(out, build(r, p, commandIndex, i))
	}
	return out
}

func build(r *Registry, p domain.Param, commandIndex, paramIndex int) domain.Field {
	kind := p.Kind
	if kind == "" {
		kind = domain.ParamOption
	}
	typeName := p.Type
	if typeName == "" {
		typeName = domain.TypeString
	}

	f := domain.Field{
		Name:         fmt.Sprintf("%d.%d.%s.%s.%s", commandIndex, paramIndex, kind, typeName, p.Name),
		Param:        p.Name,
		Label:        label(p),
		Kind:         kind,
		Type:         typeName,
		Help:         p.Help,
		Opts:         append([]string(nil), p.Opts...),
		Required:     p.Required,
		Default:      formatDefault(p.Default),
		Multiple:     p.Multiple || p.Nargs < 0 || p.Nargs > 1,
		CommandIndex: commandIndex,
		ParamIndex:   paramIndex,
	}
	r.Apply(p, &f)
	return f
}

// label prefers the longest option spelling ("--output" over "-o").
func label(p domain.Param) string {
	best := ""
	for _, o := range p.Opts {
		if len(o) > len(best) {
			best = o
		}
	}
	if best != "" {
		return best
	}
	return strings.ReplaceAll(p.Name, "_", " ")
}

func formatDefault(v any) string {
	switch d := v.(type) {
	case nil:
		return ""
	case string:
		return d
	case []string:
		return strings.Join(d, ",")
	case []any:
		parts := make([]string, len(d))
		for i, e := range d {
			parts[i] = fmt.Sprint(e)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(d)
	}
}
