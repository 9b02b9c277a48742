package runtime

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/cmdform/pkg/domain"
	"github.com/aretw0/cmdform/pkg/fields"
	"github.com/aretw0/cmdform/pkg/resolver"
)

// Engine resolves command paths against a read-only tree and builds forms.
type Engine struct {
	root     *domain.Command
	registry *fields.Registry
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithFieldRegistry sets the widget registry used for field extraction.
func WithFieldRegistry(r *fields.Registry) EngineOption {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// NewEngine creates an engine over root. The tree must not be modified
// afterwards.
func NewEngine(root *domain.Command, opts ...EngineOption) *Engine {
	e := &Engine{
		root:     root,
		registry: fields.DefaultRegistry(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Root returns the command tree.
func (e *Engine) Root() *domain.Command {
	return e.root
}

// Resolve returns the path chain for path.
func (e *Engine) Resolve(ctx context.Context, path string) (domain.PathChain, error) {
	chain, err := resolver.Resolve(e.root, path)
	if err != nil {
		var nf *domain.CommandNotFoundError
		if errors.As(err, &nf) {
			e.logger.Debug("Command path not found", "path", path, "segment", nf.Segment)
			if e.hooks.OnNotFound != nil {
				e.hooks.OnNotFound(ctx, &domain.NotFoundEvent{
					Timestamp: time.Now(),
					Path:      path,
					Segment:   nf.Segment,
				})
			}
		}
		return nil, err
	}

	e.logger.Debug("Command path resolved", "path", path, "depth", len(chain))
	if e.hooks.OnResolve != nil {
		e.hooks.OnResolve(ctx, &domain.ResolveEvent{
			Timestamp: time.Now(),
			Path:      path,
			Depth:     len(chain),
			Leaf:      chain.Leaf().Command.Name,
		})
	}
	return chain, nil
}

// Form resolves path and builds one level per command in the chain.
func (e *Engine) Form(ctx context.Context, path string, opts domain.RenderOptions) (*domain.Form, error) {
	chain, err := e.Resolve(ctx, path)
	if err != nil {
		return nil, err
	}
	return &domain.Form{
		Path:   path,
		Levels: BuildLevels(e.registry, chain, opts),
	}, nil
}
