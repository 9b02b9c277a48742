package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/cmdform/pkg/domain"
)

// GraphOverlay marks a resolved path on the graph.
type GraphOverlay struct {
	// Path is the slash separated path of the visited commands, root first.
	Path string
}

// GenerateMermaid produces a Mermaid flowchart of the command tree.
// Node shapes follow the command kind:
// - Root: ((Circle))
// - Group: [[Subroutine]]
// - Leaf: [Rectangle]
// Hidden commands are drawn with a dotted edge. When an overlay is given, the
// commands along its path are styled as visited and the last one as current.
func GenerateMermaid(root *domain.Command, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	root.Walk(func(path []string, cmd *domain.Command) bool {
		id := nodeID(path)

		opener, closer := "[", "]"
		switch {
		case len(path) == 1:
			opener, closer = "((", "))"
		case cmd.IsGroup():
			opener, closer = "[[", "]]"
		}

		label := strings.ReplaceAll(cmd.Name, "\"", "'")
		if cmd.Short != "" {
			label += " <br/> " + strings.ReplaceAll(cmd.Short, "\"", "'")
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, label, closer))

		for _, child := range cmd.Commands {
			arrow := "-->"
			if child.Hidden {
				arrow = "-.->"
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", id, arrow, nodeID(append(path, child.Name))))
		}
		return true
	})

	if overlay != nil && overlay.Path != "" {
		segments := strings.Split(overlay.Path, "/")
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		for i := 1; i < len(segments); i++ {
			sb.WriteString(fmt.Sprintf("    class %s visited;\n", nodeID(segments[:i])))
		}
		sb.WriteString(fmt.Sprintf("    class %s current;\n", nodeID(segments)))
	}

	return sb.String()
}

// nodeID derives a Mermaid-safe identifier from a command path.
func nodeID(path []string) string {
	s := strings.Join(path, "__")
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, s)
}
