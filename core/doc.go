// Package core provides Graph, the directed weighted graph that backs every
// shortest-path query in campusroute.
//
// The Graph G = (V,E) is stored as an arena:
//
//   - a node index (hashmap.Map) from the node value to its node record;
//   - each node record owns an ordered slice of outgoing edges;
//   - an edge refers to its successor by key, never by pointer, so cycles
//     such as A→B, B→A need no shared ownership.
//
// Invariants:
//
//   - Every edge successor is present in the node index. InsertEdge refuses
//     unknown endpoints and RemoveNode drops every edge that points at the
//     removed node.
//   - At most one edge per ordered (from, to) pair. Re-inserting the pair
//     overwrites its weight.
//   - Weights are finite and ≥ 0.
//   - Nodes() reports values in insertion order.
//
// Node re-insertion is a silent no-op (reported through the existed flag of
// InsertNode) whereas edge re-insertion updates the weight.
//
// Operations:
//
//	InsertNode(v) (existed bool, err error)   // O(1) avg
//	InsertEdge(from, to, w) error             // O(deg(from))
//	RemoveEdge(from, to) error                // O(deg(from))
//	RemoveNode(v) error                       // O(V + E)
//	EdgeWeight(from, to) (float64, error)     // O(deg(from))
//	ContainsNode(v) bool                      // O(1) avg
//	Neighbors(v) ([]Edge[K], error)           // O(deg(v)), returns a copy
//	Nodes() []K, Edges() []Edge[K]            // O(V), O(V + E)
//	NodeCount() int, EdgeCount() int          // O(1)
//
// Errors:
//
//	ErrInvalidNode   – node value is nil (pointer, channel or interface K)
//	ErrUnknownNode   – node is absent from the graph
//	ErrUnknownEdge   – no directed edge from→to
//	ErrInvalidWeight – weight is negative, NaN or ±Inf
//
// Concurrency: Graph performs no locking. Readers may share an unmodified
// Graph; every mutation must be serialised by the owner (see route.Service).
package core
