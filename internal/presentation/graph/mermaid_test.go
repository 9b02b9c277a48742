package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/cmdform/internal/presentation/graph"
	"github.com/aretw0/cmdform/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func tree() *domain.Command {
	return &domain.Command{
		Name: "cli",
		Commands: []*domain.Command{
			{Name: "db", Short: "Database \"ops\"", Commands: []*domain.Command{
				{Name: "migrate"},
				{Name: "dump-all"},
			}},
			{Name: "debug", Hidden: true},
		},
	}
}

func TestGenerateMermaid(t *testing.T) {
	out := graph.GenerateMermaid(tree(), nil)

	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	for _, want := range []string{
		`cli(("cli"))`,
		`cli__db[["db <br/> Database 'ops'"]]`,
		`cli__db__migrate["migrate"]`,
		`cli__db__dump_all["dump-all"]`,
		"cli --> cli__db",
		"cli__db --> cli__db__dump_all",
		"cli -.-> cli__debug",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "classDef")
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	out := graph.GenerateMermaid(tree(), &graph.GraphOverlay{Path: "cli/db/migrate"})

	assert.Contains(t, out, "classDef visited")
	assert.Contains(t, out, "class cli visited;")
	assert.Contains(t, out, "class cli__db visited;")
	assert.Contains(t, out, "class cli__db__migrate current;")
}
