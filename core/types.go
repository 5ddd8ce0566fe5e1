// File: types.go
// Role: Graph, node and Edge types, sentinel errors, construction options.
package core

import (
	"errors"

	"github.com/katalvlaran/campusroute/hashmap"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidNode indicates a nil node value of a pointer, channel or interface type.
	ErrInvalidNode = errors.New("core: invalid node value")

	// ErrUnknownNode indicates an operation referenced a node absent from the graph.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrUnknownEdge indicates an operation referenced a directed edge that does not exist.
	ErrUnknownEdge = errors.New("core: unknown edge")

	// ErrInvalidWeight indicates a negative or non-finite edge weight.
	ErrInvalidWeight = errors.New("core: invalid edge weight")
)

// Edge is a directed, weighted connection From→To.
type Edge[K comparable] struct {
	// From is the source node value.
	From K

	// To is the successor node value; it always names a node in the index.
	To K

	// Weight is the finite, non-negative traversal cost.
	Weight float64
}

// node is the arena record for one graph node.
type node[K comparable] struct {
	value K
	out   []Edge[K] // outgoing edges in insertion order
}

// graphSettings collects construction-time parameters.
type graphSettings struct {
	capacity int
}

// GraphOption configures a Graph before creation.
type GraphOption func(*graphSettings)

// WithNodeCapacity sizes the initial bucket array of the node index.
// Panics with hashmap.ErrBadCapacity if n ≤ 0.
func WithNodeCapacity(n int) GraphOption {
	return func(s *graphSettings) {
		if n <= 0 {
			panic(hashmap.ErrBadCapacity)
		}
		s.capacity = n
	}
}

// Graph is a directed weighted graph keyed by node value.
type Graph[K comparable] struct {
	nodes     *hashmap.Map[K, *node[K]] // node index: value → record
	order     []K                       // node values in insertion order
	edgeCount int
}

// NewGraph creates an empty Graph whose node index uses hashmap.DefaultHasher.
// Complexity: O(capacity).
func NewGraph[K comparable](opts ...GraphOption) *Graph[K] {
	return NewGraphWithHasher[K](nil, opts...)
}

// NewGraphWithHasher creates an empty Graph whose node index hashes with h
// (nil selects hashmap.DefaultHasher).
func NewGraphWithHasher[K comparable](h hashmap.Hasher[K], opts ...GraphOption) *Graph[K] {
	s := graphSettings{capacity: hashmap.DefaultCapacity}
	for _, opt := range opts {
		opt(&s)
	}

	return &Graph[K]{
		nodes: hashmap.NewWithHasher[K, *node[K]](h, hashmap.WithCapacity(s.capacity)),
	}
}
