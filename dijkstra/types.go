// File: types.go
// Role: sentinel errors, Path result type and the search-record heap.
package dijkstra

import "errors"

// Sentinel errors returned by the shortest-path functions.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoPath indicates that both endpoints exist but no directed path joins them.
	ErrNoPath = errors.New("dijkstra: no path between nodes")
)

// Path is the result of one query: the node values from start to end
// inclusive and the total weight along them.
type Path[K comparable] struct {
	Nodes []K
	Cost  float64
}

// searchRecord links a reached node to its cumulative cost and to the
// record it was reached from (nil for the start record).
type searchRecord[K comparable] struct {
	node K
	cost float64
	pred *searchRecord[K]
}

// unwind walks the predecessor chain back to the start and returns the
// node values in start→end order.
func (r *searchRecord[K]) unwind() []K {
	n := 0
	for cur := r; cur != nil; cur = cur.pred {
		n++
	}
	nodes := make([]K, n)
	for cur := r; cur != nil; cur = cur.pred {
		n--
		nodes[n] = cur.node
	}

	return nodes
}

// recordPQ is a min-heap of *searchRecord ordered by cost ascending.
// Duplicates per node are allowed; see runner.process.
type recordPQ[K comparable] []*searchRecord[K]

// Len returns the number of items in the heap.
func (pq recordPQ[K]) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq recordPQ[K]) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq recordPQ[K]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a *searchRecord[K].
func (pq *recordPQ[K]) Push(x any) { *pq = append(*pq, x.(*searchRecord[K])) }

// Pop is called by heap.Pop and removes the last element.
func (pq *recordPQ[K]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
