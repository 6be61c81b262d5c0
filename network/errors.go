// errors.go re-exports the AdjacencyStore taxonomy at the facade boundary
// (external callers should never need to import graph directly) and adds
// ErrTypeMismatch, which this package's Go API never itself returns —
// carried only so dynamically-typed bindings built on top of Facade have
// a sentinel to raise when a caller passes a non-network value where a
// network handle is expected, matching the taxonomy in the spec's error
// handling design.

package network

import (
	"errors"

	"github.com/rcannood/incgraph/graph"
)

var (
	// ErrInvalidNodeCount indicates n < 1 at construction.
	ErrInvalidNodeCount = graph.ErrInvalidNodeCount

	// ErrInvalidNodeID indicates an id outside [1,N], or i == j where distinct ids are required.
	ErrInvalidNodeID = graph.ErrInvalidNodeID

	// ErrInvalidInput indicates a malformed edge list.
	ErrInvalidInput = graph.ErrInvalidInput

	// ErrTypeMismatch is unused by this package's own API; see doc comment above.
	ErrTypeMismatch = errors.New("network: value is not a network")
)
