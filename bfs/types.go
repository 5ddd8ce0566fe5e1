// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by Result.PathTo for a node the search never reached.
	ErrNotReached = errors.New("bfs: node not reached")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by BFS.
type Option[K comparable] func(*Options[K])

// Options holds parameters and callbacks to customize BFS execution.
type Options[K comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id K, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor K) bool

	err error
}

// DefaultOptions returns background context, no depth limit, no filtering
// and a no-op OnVisit.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		Ctx:            context.Background(),
		OnVisit:        func(K, int) error { return nil },
		FilterNeighbor: func(_, _ K) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[K comparable](ctx context.Context) Option[K] {
	return func(o *Options[K]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[K comparable](fn func(id K, depth int) error) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth[K comparable](d int) Option[K] {
	return func(o *Options[K]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips the edge curr→neighbor when fn returns false.
func WithFilterNeighbor[K comparable](fn func(curr, neighbor K) bool) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal.
type Result[K comparable] struct {
	Start  K
	Order  []K
	Depth  map[K]int
	Parent map[K]K
}

// PathTo reconstructs the fewest-hops path from Start to dest.
// Returns ErrNotReached if dest was not reached.
func (r *Result[K]) PathTo(dest K) ([]K, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	path := make([]K, d+1)
	cur := dest
	for i := d; i > 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}
	path[0] = r.Start

	return path, nil
}
