package tui_test

import (
	"bytes"
	"testing"

	"github.com/aretw0/cmdform/internal/presentation/tui"
	"github.com/aretw0/cmdform/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() *domain.Command {
	return &domain.Command{
		Name:  "cli",
		Short: "Tooling",
		Commands: []*domain.Command{
			{Name: "build", Short: "Compile"},
			{Name: "db", Commands: []*domain.Command{
				{Name: "migrate"},
			}},
			{Name: "debug", Hidden: true},
		},
	}
}

func TestPrintTree(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintTree(&buf, sampleTree(), false)

	// Not a terminal: no escape sequences.
	assert.Equal(t, "cli  Tooling\n  build  Compile\n  db\n    migrate\n", buf.String())
}

func TestPrintTree_ShowHidden(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintTree(&buf, sampleTree(), true)

	assert.Contains(t, buf.String(), "  debug\n")
}

func TestNewRenderer_NotATerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, tui.IsTerminal(&buf))

	render := tui.NewRenderer(&buf)
	out, err := render("# cli\n\nhello")
	require.NoError(t, err)
	assert.Equal(t, "# cli\n\nhello", out)
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, "1.2.3\n")

	assert.Contains(t, buf.String(), "v1.2.3")
}
