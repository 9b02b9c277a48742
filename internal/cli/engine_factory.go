package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/cmdform"
	cobraAdapter "github.com/aretw0/cmdform/pkg/adapters/cobra"
	"github.com/aretw0/cmdform/pkg/adapters/file"
	"github.com/aretw0/cmdform/pkg/domain"
	"github.com/aretw0/cmdform/pkg/ports"
	"github.com/spf13/cobra"
)

// ErrNoTree is returned when neither a tree file nor the CLI's own tree is
// selected.
var ErrNoTree = errors.New("no command tree: set --tree or --self")

// EngineOptions selects the tree source and the observability hooks of an
// engine.
type EngineOptions struct {
	TreeFile string
	// Self serves the given cobra tree instead of a file.
	Self  *cobra.Command
	Hooks domain.LifecycleHooks
}

// CreateEngine loads the selected command tree and initializes an engine
// with standard CLI conventions.
func CreateEngine(ctx context.Context, opts EngineOptions, logger *slog.Logger) (*cmdform.Engine, error) {
	loader, err := treeLoader(opts)
	if err != nil {
		return nil, err
	}

	engine, err := cmdform.Load(ctx, loader,
		cmdform.WithLogger(logger),
		cmdform.WithLifecycleHooks(opts.Hooks),
	)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}

func treeLoader(opts EngineOptions) (ports.TreeLoader, error) {
	switch {
	case opts.Self != nil && opts.TreeFile != "":
		return nil, errors.New("--tree and --self cannot be used together")
	case opts.Self != nil:
		return cobraAdapter.NewLoader(opts.Self), nil
	case opts.TreeFile != "":
		return file.NewLoader(opts.TreeFile), nil
	}
	return nil, ErrNoTree
}
