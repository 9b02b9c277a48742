package dsl

import (
	"fmt"

	"github.com/aretw0/cmdform/pkg/domain"
)

// CommandBuilder provides a fluent API for configuring a command and its
// sub-commands.
type CommandBuilder struct {
	cmd      domain.Command
	children []*CommandBuilder
}

// Group starts a new command tree rooted at name.
func Group(name string) *CommandBuilder {
	return &CommandBuilder{cmd: domain.Command{Name: name}}
}

// Help sets the help text. Lines equal to domain.PreformattedMarker open
// preformatted blocks.
func (b *CommandBuilder) Help(text string) *CommandBuilder {
	b.cmd.Help = text
	return b
}

// Short sets the one-line summary.
func (b *CommandBuilder) Short(text string) *CommandBuilder {
	b.cmd.Short = text
	return b
}

// Hidden hides the command from listings.
func (b *CommandBuilder) Hidden() *CommandBuilder {
	b.cmd.Hidden = true
	return b
}

// HelpOption declares that the command accepts an implicit --help.
func (b *CommandBuilder) HelpOption() *CommandBuilder {
	b.cmd.AddHelpOption = true
	return b
}

// Param appends a fully specified parameter.
func (b *CommandBuilder) Param(p domain.Param) *CommandBuilder {
	b.cmd.Params = append(b.cmd.Params, p)
	return b
}

// Option appends an option of the given type with its command-line spellings.
func (b *CommandBuilder) Option(name, typeName string, opts ...string) *CommandBuilder {
	return b.Param(domain.Param{
		Name: name,
		Kind: domain.ParamOption,
		Type: typeName,
		Opts: opts,
	})
}

// Flag appends a boolean flag.
func (b *CommandBuilder) Flag(name string, opts ...string) *CommandBuilder {
	return b.Param(domain.Param{
		Name:   name,
		Kind:   domain.ParamOption,
		Type:   domain.TypeBool,
		Opts:   opts,
		IsFlag: true,
	})
}

// Choice appends an option restricted to choices.
func (b *CommandBuilder) Choice(name string, choices []string, opts ...string) *CommandBuilder {
	return b.Param(domain.Param{
		Name:    name,
		Kind:    domain.ParamOption,
		Type:    domain.TypeChoice,
		Opts:    opts,
		Choices: choices,
	})
}

// Argument appends a required positional argument.
func (b *CommandBuilder) Argument(name, typeName string) *CommandBuilder {
	return b.Param(domain.Param{
		Name:     name,
		Kind:     domain.ParamArgument,
		Type:     typeName,
		Required: true,
		Nargs:    1,
	})
}

// Required marks the last added parameter as required.
func (b *CommandBuilder) Required() *CommandBuilder {
	if p := b.last(); p != nil {
		p.Required = true
	}
	return b
}

// Default sets the default value of the last added parameter.
func (b *CommandBuilder) Default(v any) *CommandBuilder {
	if p := b.last(); p != nil {
		p.Default = v
	}
	return b
}

// Describe sets the help of the last added parameter.
func (b *CommandBuilder) Describe(help string) *CommandBuilder {
	if p := b.last(); p != nil {
		p.Help = help
	}
	return b
}

// Command adds a sub-command configured by fn.
// If a sub-command with the same name exists, fn configures the existing one.
func (b *CommandBuilder) Command(name string, fn func(*CommandBuilder)) *CommandBuilder {
	for _, child := range b.children {
		if child.cmd.Name == name {
			if fn != nil {
				fn(child)
			}
			return b
		}
	}
	child := Group(name)
	if fn != nil {
		fn(child)
	}
	b.children = append(b.children, child)
	return b
}

// Build compiles the builder into a validated command tree.
func (b *CommandBuilder) Build() (*domain.Command, error) {
	root := b.build()
	if err := domain.Validate(root); err != nil {
		return nil, fmt.Errorf("failed to build command tree: %w", err)
	}
	return root, nil
}

// MustBuild is like Build but panics on error. Intended for static trees.
func (b *CommandBuilder) MustBuild() *domain.Command {
	root, err := b.Build()
	if err != nil {
		panic(err)
	}
	return root
}

func (b *CommandBuilder) build() *domain.Command {
	cmd := b.cmd
	cmd.Params = append([]domain.Param(nil), b.cmd.Params...)
	cmd.Commands = nil
	for _, child := range b.children {
		cmd.Commands = append(cmd.Commands, child.build())
	}
	return &cmd
}

func (b *CommandBuilder) last() *domain.Param {
	if len(b.cmd.Params) == 0 {
		return nil
	}
	return &b.cmd.Params[len(b.cmd.Params)-1]
}
