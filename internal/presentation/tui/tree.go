package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/cmdform/pkg/domain"
	"github.com/muesli/termenv"
)

// PrintTree writes an indented listing of the command tree to w. Groups are
// bold, leaves are colored, and the short description follows each name.
// Hidden commands are skipped unless showHidden is set.
func PrintTree(w io.Writer, root *domain.Command, showHidden bool) {
	out := termenv.NewOutput(w)
	group := out.Color("#a78bfa")
	leaf := out.Color("#34d399")

	root.Walk(func(path []string, cmd *domain.Command) bool {
		if cmd.Hidden && !showHidden {
			return false
		}

		name := out.String(cmd.Name)
		if cmd.IsGroup() {
			name = name.Foreground(group).Bold()
		} else {
			name = name.Foreground(leaf)
		}

		line := strings.Repeat("  ", len(path)-1) + name.String()
		if cmd.Short != "" {
			line += "  " + out.String(cmd.Short).Faint().String()
		}
		fmt.Fprintln(w, line)
		return true
	})
}
