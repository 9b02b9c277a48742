package domain

import (
	"fmt"
	"strings"
)

// Validate checks that every command has a usable name and that sibling
// names are unique. Path segments map to names, so "/" is rejected.
func Validate(root *Command) error {
	if root == nil {
		return fmt.Errorf("%w: nil root", ErrInvalidTree)
	}
	var err error
	root.Walk(func(path []string, cmd *Command) bool {
		if err != nil {
			return false
		}
		if err = validateName(path, cmd.Name); err != nil {
			return false
		}
		seen := make(map[string]struct{}, len(cmd.Commands))
		for _, child := range cmd.Commands {
			if child == nil {
				err = fmt.Errorf("%w: nil sub-command under %q", ErrInvalidTree, strings.Join(path, "/"))
				return false
			}
			if _, dup := seen[child.Name]; dup {
				err = fmt.Errorf("%w: duplicate sub-command %q under %q", ErrInvalidTree, child.Name, strings.Join(path, "/"))
				return false
			}
			seen[child.Name] = struct{}{}
		}
		return true
	})
	return err
}

func validateName(path []string, name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty command name at %q", ErrInvalidTree, strings.Join(path, "/"))
	case strings.Contains(name, "/"):
		return fmt.Errorf("%w: command name %q contains '/'", ErrInvalidTree, name)
	}
	return nil
}
