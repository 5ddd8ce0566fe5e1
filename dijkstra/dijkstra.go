package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/campusroute/core"
)

// ShortestPath returns the node sequence and total cost of a minimum-cost
// directed path from start to end in g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and end must be nodes of g (core.ErrUnknownNode).
//
// start == end returns Path{Nodes: [start], Cost: 0} without searching.
// If end cannot be reached, ErrNoPath is returned.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
func ShortestPath[K comparable](g *core.Graph[K], start, end K) (Path[K], error) {
	rec, err := search(g, start, end)
	if err != nil {
		return Path[K]{}, err
	}

	return Path[K]{Nodes: rec.unwind(), Cost: rec.cost}, nil
}

// ShortestPathNodes returns the node values on a shortest path from start to
// end, both inclusive. Failure modes are those of ShortestPath.
func ShortestPathNodes[K comparable](g *core.Graph[K], start, end K) ([]K, error) {
	rec, err := search(g, start, end)
	if err != nil {
		return nil, err
	}

	return rec.unwind(), nil
}

// ShortestPathCost returns the total weight of the path ShortestPathNodes
// would return. It is 0 when start == end.
func ShortestPathCost[K comparable](g *core.Graph[K], start, end K) (float64, error) {
	rec, err := search(g, start, end)
	if err != nil {
		return 0, err
	}

	return rec.cost, nil
}

// search validates the endpoints and runs one query, returning the terminal
// record of the shortest path.
func search[K comparable](g *core.Graph[K], start, end K) (*searchRecord[K], error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Validate both endpoints; an unknown node is not the same as "no path".
	if !g.ContainsNode(start) {
		return nil, fmt.Errorf("%w: start %v", core.ErrUnknownNode, start)
	}
	if !g.ContainsNode(end) {
		return nil, fmt.Errorf("%w: end %v", core.ErrUnknownNode, end)
	}

	// 3) Trivial query: reaching oneself costs nothing.
	if start == end {
		return &searchRecord[K]{node: start}, nil
	}

	r := &runner[K]{
		g:       g,
		target:  end,
		settled: make(map[K]struct{}, g.NodeCount()),
		pq:      make(recordPQ[K], 0, g.NodeCount()),
	}
	r.init(start)

	return r.process(start)
}

// runner holds the mutable state of a single query.
type runner[K comparable] struct {
	g        *core.Graph[K]   // read-only during the query
	target   K                // node whose settlement ends the search
	settled  map[K]struct{}   // nodes whose distance is final
	pq       recordPQ[K]      // frontier, may hold stale records
	onSettle func(K, float64) // optional observer, nil outside tests
}

// init seeds the frontier with the start record at cost 0.
func (r *runner[K]) init(start K) {
	heap.Init(&r.pq)
	heap.Push(&r.pq, &searchRecord[K]{node: start, cost: 0})
}

// process is the main loop. It pops the cheapest record, drops it if its
// node is already settled, settles it otherwise, and either returns it (if it
// is the target) or pushes one record per outgoing edge.
func (r *runner[K]) process(start K) (*searchRecord[K], error) {
	for r.pq.Len() > 0 {
		rec := heap.Pop(&r.pq).(*searchRecord[K])

		// Stale entry: a cheaper record for this node was settled earlier.
		if _, done := r.settled[rec.node]; done {
			continue
		}
		r.settled[rec.node] = struct{}{}
		if r.onSettle != nil {
			r.onSettle(rec.node, rec.cost)
		}

		if rec.node == r.target {
			return rec, nil
		}

		if err := r.expand(rec); err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: %v→%v", ErrNoPath, start, r.target)
}

// expand pushes a candidate record for every outgoing edge of rec.node whose
// successor is not yet settled.
func (r *runner[K]) expand(rec *searchRecord[K]) error {
	err := r.g.VisitNeighbors(rec.node, func(e core.Edge[K]) bool {
		if _, done := r.settled[e.To]; done {
			return true
		}
		heap.Push(&r.pq, &searchRecord[K]{
			node: e.To,
			cost: rec.cost + e.Weight,
			pred: rec,
		})

		return true
	})
	if err != nil {
		return fmt.Errorf("dijkstra: failed to expand %v: %w", rec.node, err)
	}

	return nil
}
