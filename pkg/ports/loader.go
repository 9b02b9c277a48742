package ports

import (
	"context"

	"github.com/aretw0/cmdform/pkg/domain"
)

// TreeLoader defines how a command tree is obtained at startup.
// This allows the tree source (file, cobra, code) to be decoupled.
type TreeLoader interface {
	// LoadTree returns a validated command tree.
	LoadTree(ctx context.Context) (*domain.Command, error)
}

// TreeLoaderFunc adapts a function to TreeLoader.
type TreeLoaderFunc func(ctx context.Context) (*domain.Command, error)

func (f TreeLoaderFunc) LoadTree(ctx context.Context) (*domain.Command, error) {
	return f(ctx)
}
