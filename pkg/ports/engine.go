package ports

import (
	"context"

	"github.com/aretw0/cmdform/pkg/domain"
)

// FormEngine is the interface used by adapters (HTTP, MCP) to turn command
// paths into forms.
type FormEngine interface {
	// Root returns the shared, read-only command tree.
	Root() *domain.Command

	// Resolve returns the chain of commands for a slash separated path.
	// Returns an error matching domain.ErrCommandNotFound for unknown paths.
	Resolve(ctx context.Context, path string) (domain.PathChain, error)

	// Form resolves path and builds the per-level rendering structure.
	Form(ctx context.Context, path string, opts domain.RenderOptions) (*domain.Form, error)
}
