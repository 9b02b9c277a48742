package cobra

import (
	"context"
	"strconv"
	"strings"

	"github.com/aretw0/cmdform/pkg/domain"
	backend "github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Loader implements ports.TreeLoader over a live cobra command tree.
type Loader struct {
	root *backend.Command
	skip map[string]bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithSkip excludes sub-commands by name, in addition to "help" and "completion".
func WithSkip(names ...string) Option {
	return func(l *Loader) {
		for _, n := range names {
			l.skip[n] = true
		}
	}
}

// NewLoader creates a loader for the tree rooted at root.
func NewLoader(root *backend.Command, opts ...Option) *Loader {
	l := &Loader{
		root: root,
		skip: map[string]bool{"help": true, "completion": true},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadTree converts the cobra tree and validates it.
func (l *Loader) LoadTree(_ context.Context) (*domain.Command, error) {
	root := l.convert(l.root)
	if err := domain.Validate(root); err != nil {
		return nil, err
	}
	return root, nil
}

// FromCommand converts a cobra tree with the default options.
func FromCommand(root *backend.Command) (*domain.Command, error) {
	return NewLoader(root).LoadTree(context.Background())
}

func (l *Loader) convert(c *backend.Command) *domain.Command {
	cmd := &domain.Command{
		Name:          c.Name(),
		Short:         c.Short,
		Help:          helpText(c),
		Hidden:        c.Hidden,
		AddHelpOption: true,
	}

	cmd.Params = append(cmd.Params, arguments(c.Use)...)
	c.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "help" {
			return
		}
		cmd.Params = append(cmd.Params, flagParam(f))
	})

	for _, child := range c.Commands() {
		if l.skip[child.Name()] || !child.IsAvailableCommand() {
			continue
		}
		cmd.Commands = append(cmd.Commands, l.convert(child))
	}
	return cmd
}

// helpText prefers Long over Short and appends Example as a preformatted
// block.
func helpText(c *backend.Command) string {
	help := c.Long
	if help == "" {
		help = c.Short
	}
	if ex := strings.TrimRight(c.Example, "\n"); ex != "" {
		if help != "" {
			help += "\n\n"
		}
		help += "Examples:\n" + domain.PreformattedMarker + "\n" + ex
	}
	return help
}

// arguments derives positional arguments from the Use line:
// "<name>" and bare words are required, "[name]" is optional and a trailing
// "..." accepts several values.
func arguments(use string) []domain.Param {
	fields := strings.Fields(use)
	if len(fields) < 2 {
		return nil
	}
	var params []domain.Param
	for _, tok := range fields[1:] {
		optional := strings.HasPrefix(tok, "[")
		name := strings.Trim(tok, "[]<>")
		multiple := strings.HasSuffix(name, "...")
		name = strings.Trim(strings.TrimSuffix(name, "..."), "[]<>")
		if name == "" || strings.HasPrefix(name, "-") || strings.EqualFold(name, "flags") {
			continue
		}
		p := domain.Param{
			Name:     name,
			Kind:     domain.ParamArgument,
			Type:     domain.TypeString,
			Required: !optional,
			Nargs:    1,
			Multiple: multiple,
		}
		if multiple {
			p.Nargs = -1
		}
		params = append(params, p)
	}
	return params
}

func flagParam(f *pflag.Flag) domain.Param {
	p := domain.Param{
		Name:     f.Name,
		Kind:     domain.ParamOption,
		Opts:     []string{"--" + f.Name},
		Help:     f.Usage,
		Hidden:   f.Hidden,
		Required: isRequired(f),
	}
	if f.Shorthand != "" {
		p.Opts = append(p.Opts, "-"+f.Shorthand)
	}

	valueType := f.Value.Type()
	if elem, ok := strings.CutSuffix(valueType, "Slice"); ok {
		valueType, p.Multiple = elem, true
	} else if elem, ok := strings.CutSuffix(valueType, "Array"); ok {
		valueType, p.Multiple = elem, true
	}

	switch valueType {
	case "bool":
		p.Type, p.IsFlag = domain.TypeBool, true
		if v, err := strconv.ParseBool(f.DefValue); err == nil {
			p.Default = v
		}
		return p
	case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64", "count":
		p.Type = domain.TypeInt
	case "float32", "float64":
		p.Type = domain.TypeFloat
	case "duration":
		p.Type = domain.TypeDuration
	default:
		p.Type = domain.TypeString
	}

	def := f.DefValue
	if p.Multiple {
		def = strings.Trim(def, "[]")
	}
	if def != "" {
		p.Default = def
	}
	return p
}

func isRequired(f *pflag.Flag) bool {
	vals, ok := f.Annotations[backend.BashCompOneRequiredFlag]
	return ok && len(vals) > 0 && vals[0] == "true"
}
