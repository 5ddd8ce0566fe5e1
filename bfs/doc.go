// Package bfs provides breadth-first search over a core.Graph, returning
// hop counts, parent links and visit order from a start node.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node,
//     following directed edges only and ignoring weights.
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  node → hops from start
//   - Parent: node → predecessor in the BFS tree
//   - Hooks: OnVisit (may abort with an error).
//   - Edge filtering via WithFilterNeighbor; depth cap via WithMaxDepth.
//
// Why
//
//   - Reachability ("where can I walk to from here?") in O(V + E).
//   - Fewest-stops routes, independent of walking time.
//
// Determinism
//
//	Neighbors are enqueued in the insertion order of each outgoing list, so
//	the visit sequence is reproducible for a given construction order.
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - core.ErrUnknownNode  if the start node does not exist.
//   - ErrOptionViolation   for an invalid Option (e.g. negative MaxDepth).
//   - ctx.Err()            if the context is cancelled mid-search.
//   - Wrapped errors returned by OnVisit.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
