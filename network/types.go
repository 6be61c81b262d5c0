package network

import (
	"go.uber.org/zap"

	"github.com/rcannood/incgraph/graph"
	"github.com/rcannood/incgraph/internal/xlog"
)

// Facade wraps an AdjacencyStore with 1-based↔0-based id translation and
// structured logging. It is the only stateful handle applications hold;
// it holds no locks and is not safe for concurrent mutation.
type Facade struct {
	store *graph.AdjacencyStore
	log   *zap.Logger
}

// Option configures a Facade at construction time.
type Option func(*Facade)

// WithLogger attaches a zap logger; the default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(f *Facade) {
		if l != nil {
			f.log = l
		}
	}
}

// New allocates an empty Facade over n externally-numbered nodes [1,n].
func New(n int, opts ...Option) (*Facade, error) {
	store, err := graph.New(n)
	if err != nil {
		return nil, err
	}
	f := &Facade{store: store, log: xlog.Nop()}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// NewFromEdges allocates a Facade sized to the highest node id appearing
// in edges (1-based), then loads edges via SetNetwork.
func NewFromEdges(edges [][2]int, opts ...Option) (*Facade, error) {
	n := maxID(edges)
	f, err := New(n, opts...)
	if err != nil {
		return nil, err
	}
	if err := f.SetNetwork(edges); err != nil {
		return nil, err
	}
	return f, nil
}

func maxID(edges [][2]int) int {
	n := 1
	for _, e := range edges {
		if e[0] > n {
			n = e[0]
		}
		if e[1] > n {
			n = e[1]
		}
	}
	return n
}

// N returns the fixed node count.
func (f *Facade) N() int { return f.store.N() }
