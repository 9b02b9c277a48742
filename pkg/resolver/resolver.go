// Package resolver turns slash separated command paths into chains of
// commands and scopes.
package resolver

import (
	"strings"

	"github.com/aretw0/cmdform/pkg/domain"
)

// Separator splits path segments.
const Separator = "/"

// Resolve walks root along path ("root/group/leaf") and returns one link per
// segment, root first. Each segment is looked up among the children of the
// previous command only.
//
// A failure is always a *domain.CommandNotFoundError.
func Resolve(root *domain.Command, path string) (domain.PathChain, error) {
	segments := strings.Split(path, Separator)

	if root == nil || segments[0] != root.Name {
		rootName := ""
		if root != nil {
			rootName = root.Name
		}
		return nil, &domain.CommandNotFoundError{
			Path:         path,
			Segment:      segments[0],
			Root:         rootName,
			RootMismatch: true,
		}
	}

	scope := domain.NewScope(root, nil)
	chain := make(domain.PathChain, 0, len(segments))
	chain = append(chain, domain.Link{Scope: scope, Command: root})

	current := root
	for _, name := range segments[1:] {
		next, ok := current.Lookup(name)
		if !ok {
			return nil, &domain.CommandNotFoundError{
				Path:    path,
				Segment: name,
				Root:    root.Name,
				Valid:   current.ListCommands(),
			}
		}
		scope = domain.NewScope(next, scope)
		current = next
		chain = append(chain, domain.Link{Scope: scope, Command: next})
	}

	return chain, nil
}
