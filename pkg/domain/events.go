package domain

import (
	"context"
	"time"
)

// ResolveEvent is emitted after a path resolved to a chain.
type ResolveEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
	Depth     int       `json:"depth"`
	Leaf      string    `json:"leaf"`
}

// NotFoundEvent is emitted when a path does not resolve.
type NotFoundEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
	Segment   string    `json:"segment"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnResolve  func(context.Context, *ResolveEvent)
	OnNotFound func(context.Context, *NotFoundEvent)
}

// ComposeHooks returns hooks that call every non-nil callback of hs in order.
func ComposeHooks(hs ...LifecycleHooks) LifecycleHooks {
	var out LifecycleHooks
	for _, h := range hs {
		if h.OnResolve != nil {
			prev, next := out.OnResolve, h.OnResolve
			out.OnResolve = func(ctx context.Context, e *ResolveEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				next(ctx, e)
			}
		}
		if h.OnNotFound != nil {
			prev, next := out.OnNotFound, h.OnNotFound
			out.OnNotFound = func(ctx context.Context, e *NotFoundEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				next(ctx, e)
			}
		}
	}
	return out
}
