package domain

import "strings"

// Scope is the resolution context of one command.
// Scopes are created per resolution and never mutated afterwards.
type Scope struct {
	Command *Command
	Parent  *Scope // nil at the root
	Depth   int
}

// NewScope creates a scope for cmd below parent.
func NewScope(cmd *Command, parent *Scope) *Scope {
	s := &Scope{Command: cmd, Parent: parent}
	if parent != nil {
		s.Depth = parent.Depth + 1
	}
	return s
}

// CommandPath returns the space separated command names from the root down
// to this scope, as a shell user would type them.
func (s *Scope) CommandPath() string {
	names := make([]string, s.Depth+1)
	for cur := s; cur != nil; cur = cur.Parent {
		names[cur.Depth] = cur.Command.Name
	}
	return strings.Join(names, " ")
}

// Link pairs a command with the scope it was resolved in.
type Link struct {
	Scope   *Scope
	Command *Command
}

// PathChain is the ordered result of resolving a path, root first.
type PathChain []Link

// Leaf returns the last link of the chain.
func (c PathChain) Leaf() Link {
	return c[len(c)-1]
}

// Names returns the command names along the chain.
func (c PathChain) Names() []string {
	names := make([]string, len(c))
	for i, l := range c {
		names[i] = l.Command.Name
	}
	return names
}

// Path returns the slash separated path of the chain.
func (c PathChain) Path() string {
	return strings.Join(c.Names(), "/")
}
