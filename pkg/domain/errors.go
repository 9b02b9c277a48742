package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCommandNotFound is matched by every path resolution failure.
var ErrCommandNotFound = errors.New("command not found")

// ErrInvalidTree is returned when a command tree breaks its invariants.
var ErrInvalidTree = errors.New("invalid command tree")

// CommandNotFoundError reports a path segment without a matching command.
type CommandNotFoundError struct {
	Path         string   // the full path that was resolved
	Segment      string   // the segment that did not match
	Root         string   // the root command name
	Valid        []string // the valid names at the failing level
	RootMismatch bool     // the first segment is not the root name
}

func (e *CommandNotFoundError) Error() string {
	if e.RootMismatch {
		return fmt.Sprintf("failed to find root command %q, there is a root command named %q", e.Segment, e.Root)
	}
	return fmt.Sprintf("failed to find command for path %q: command %q not found, must be one of [%s]",
		e.Path, e.Segment, strings.Join(e.Valid, ", "))
}

// Is makes errors.Is(err, ErrCommandNotFound) hold.
func (e *CommandNotFoundError) Is(target error) bool {
	return target == ErrCommandNotFound
}
