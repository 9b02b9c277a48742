package ports

import "context"

// PageCache stores rendered pages keyed by request path.
// The command tree is read-only, so a page only changes when the process
// restarts; entries may still expire by TTL.
type PageCache interface {
	// Get returns the cached page and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a page.
	Set(ctx context.Context, key string, page []byte) error
}
