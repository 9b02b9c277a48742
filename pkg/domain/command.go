package domain

import "sort"

// Command is a named command definition.
// A command without children is a leaf command; one with children is a group.
type Command struct {
	Name string `json:"name" yaml:"name"`

	// Short is the one-line summary shown in listings.
	Short string `json:"short,omitempty" yaml:"short,omitempty"`

	// Help is the raw help text. Lines equal to PreformattedMarker open a
	// preformatted block that runs until the next blank line.
	Help string `json:"help,omitempty" yaml:"help,omitempty"`

	// Params holds the declared parameters in declaration order.
	Params []Param `json:"params,omitempty" yaml:"params,omitempty"`

	// Commands holds the sub-commands in declaration order.
	Commands []*Command `json:"commands,omitempty" yaml:"commands,omitempty"`

	Hidden bool `json:"hidden,omitempty" yaml:"hidden,omitempty"`

	// AddHelpOption reports whether the command implicitly accepts --help.
	AddHelpOption bool `json:"add_help_option,omitempty" yaml:"add_help_option,omitempty"`
}

// PreformattedMarker is the help text line that opens a preformatted block.
const PreformattedMarker = "\b"

// IsGroup reports whether the command has sub-commands.
func (c *Command) IsGroup() bool {
	return len(c.Commands) > 0
}

// Lookup returns the direct child with the given name.
func (c *Command) Lookup(name string) (*Command, bool) {
	for _, child := range c.Commands {
		if child.Name == name {
			return child, true
		}
	}
	return nil, false
}

// ListCommands returns the names of the direct children, sorted.
func (c *Command) ListCommands() []string {
	names := make([]string, 0, len(c.Commands))
	for _, child := range c.Commands {
		names = append(names, child.Name)
	}
	sort.Strings(names)
	return names
}

// Walk visits c and its descendants depth-first, parents before children.
// path holds the names from the root down to the visited command.
// Returning false from fn skips the children of that command.
func (c *Command) Walk(fn func(path []string, cmd *Command) bool) {
	c.walk(nil, fn)
}

func (c *Command) walk(prefix []string, fn func([]string, *Command) bool) {
	path := make([]string, len(prefix)+1)
	copy(path, prefix)
	path[len(prefix)] = c.Name
	if !fn(path, c) {
		return
	}
	for _, child := range c.Commands {
		child.walk(path, fn)
	}
}
