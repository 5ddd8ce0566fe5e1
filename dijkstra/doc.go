// Package dijkstra answers single-pair shortest-path queries over a
// core.Graph whose edge weights are finite and non-negative.
//
// Overview:
//
//   - Each query builds a fresh search tree of records (node, cumulative
//     cost, predecessor record) rooted at the start node, and discards it
//     on return. Nothing is cached between queries.
//   - A min-heap (container/heap) orders records by cumulative cost. Ties
//     are broken arbitrarily.
//   - Stale entries are handled lazily: a node may be pushed once per
//     incoming edge, only its first extraction settles it, and later
//     extractions are dropped by a settled-set check. There is no
//     decrease-key.
//   - The search stops as soon as the target is settled.
//
// Because weights are non-negative, extracted costs never decrease during a
// query, so the first settlement of a node carries its true distance.
//
// API:
//
//	ShortestPath(g, start, end)      (Path[K], error) // nodes and cost from one search
//	ShortestPathNodes(g, start, end) ([]K, error)     // start … end inclusive
//	ShortestPathCost(g, start, end)  (float64, error) // sum of edge weights on that path
//
// start == end yields the singleton path [start] with cost 0 without
// searching, even if start has a self-loop.
//
// Errors:
//
//   - ErrNilGraph:         g is nil.
//   - core.ErrUnknownNode: start or end is not a node of g (checked before searching).
//   - ErrNoPath:           both nodes exist but end is unreachable from start.
//
// Complexity:
//
//   - Time:  O((V + E) log E) worst case; each edge pushes at most one record.
//   - Space: O(V + E) for the settled set, the heap and the search tree.
//
// Thread safety:
//
//	Queries only read g and may run concurrently with each other. They must
//	not overlap with any mutation of g; there is no cancellation.
package dijkstra
