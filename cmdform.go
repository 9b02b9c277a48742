package cmdform

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/cmdform/internal/runtime"
	"github.com/aretw0/cmdform/pkg/domain"
	"github.com/aretw0/cmdform/pkg/fields"
	"github.com/aretw0/cmdform/pkg/ports"
)

// Engine is the high-level entry point for the cmdform library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime  *runtime.Engine
	root     *domain.Command
	hooks    domain.LifecycleHooks
	registry *fields.Registry
	logger   *slog.Logger
}

// Ensure Engine implements the adapter port.
var _ ports.FormEngine = (*Engine)(nil)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
// Hooks from repeated options are all called, in registration order.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = domain.ComposeHooks(e.hooks, hooks)
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithFieldRegistry replaces the default widget registry.
func WithFieldRegistry(r *fields.Registry) Option {
	return func(e *Engine) {
		e.registry = r
	}
}

// New initializes an Engine over a command tree.
// The tree is validated and must be treated as read-only afterwards.
func New(root *domain.Command, opts ...Option) (*Engine, error) {
	if err := domain.Validate(root); err != nil {
		return nil, err
	}

	eng := &Engine{root: root}
	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime)
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	eng.logger = eng.logger.With("tree", root.Name)

	eng.runtime = runtime.NewEngine(root,
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithFieldRegistry(eng.registry),
	)
	return eng, nil
}

// Load initializes an Engine from a TreeLoader.
func Load(ctx context.Context, loader ports.TreeLoader, opts ...Option) (*Engine, error) {
	root, err := loader.LoadTree(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load command tree: %w", err)
	}
	return New(root, opts...)
}

// Root returns the command tree served by the engine.
func (e *Engine) Root() *domain.Command {
	return e.root
}

// Resolve returns the (scope, command) chain for a slash separated path.
func (e *Engine) Resolve(ctx context.Context, path string) (domain.PathChain, error) {
	return e.runtime.Resolve(ctx, path)
}

// Form resolves path and builds the rendering structure for every level.
func (e *Engine) Form(ctx context.Context, path string, opts domain.RenderOptions) (*domain.Form, error) {
	return e.runtime.Form(ctx, path, opts)
}
