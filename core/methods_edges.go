// File: methods_edges.go
// Role: edge lifecycle & queries: InsertEdge/RemoveEdge/EdgeWeight/Neighbors/Edges/EdgeCount.
// Determinism:
//   - Neighbors() keeps insertion order of the source's outgoing list.
//   - Edges() walks nodes in insertion order, then each outgoing list in order.
package core

import (
	"fmt"
	"math"
)

// InsertEdge creates or updates the directed edge from→to.
//
// Steps:
//  1. Validate weight: finite and ≥ 0 (ErrInvalidWeight).
//  2. Resolve both endpoints in the node index (ErrUnknownNode); nodes are never created here.
//  3. If from→to exists, overwrite its weight; otherwise append to from's outgoing list.
//
// Complexity: O(deg(from)).
func (g *Graph[K]) InsertEdge(from, to K, weight float64) error {
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %v→%v weight=%v", ErrInvalidWeight, from, to, weight)
	}
	src, err := g.lookup(from)
	if err != nil {
		return err
	}
	if !g.nodes.ContainsKey(to) {
		return fmt.Errorf("%w: %v", ErrUnknownNode, to)
	}

	for i := range src.out {
		if src.out[i].To == to {
			src.out[i].Weight = weight
			return nil
		}
	}
	src.out = append(src.out, Edge[K]{From: from, To: to, Weight: weight})
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the directed edge from→to.
// Returns ErrUnknownNode if from is absent, ErrUnknownEdge if the edge is absent.
// Complexity: O(deg(from)).
func (g *Graph[K]) RemoveEdge(from, to K) error {
	src, err := g.lookup(from)
	if err != nil {
		return err
	}
	for i := range src.out {
		if src.out[i].To != to {
			continue
		}
		copy(src.out[i:], src.out[i+1:])
		src.out[len(src.out)-1] = Edge[K]{}
		src.out = src.out[:len(src.out)-1]
		g.edgeCount--

		return nil
	}

	return fmt.Errorf("%w: %v→%v", ErrUnknownEdge, from, to)
}

// EdgeWeight returns the weight of the directed edge from→to.
// Returns ErrUnknownNode if from is absent, ErrUnknownEdge if the edge is absent.
// Complexity: O(deg(from)).
func (g *Graph[K]) EdgeWeight(from, to K) (float64, error) {
	src, err := g.lookup(from)
	if err != nil {
		return 0, err
	}
	for _, e := range src.out {
		if e.To == to {
			return e.Weight, nil
		}
	}

	return 0, fmt.Errorf("%w: %v→%v", ErrUnknownEdge, from, to)
}

// HasEdge reports whether the directed edge from→to exists.
func (g *Graph[K]) HasEdge(from, to K) bool {
	_, err := g.EdgeWeight(from, to)
	return err == nil
}

// Neighbors returns a copy of the outgoing edges of v in insertion order.
// Returns ErrUnknownNode if v is absent.
func (g *Graph[K]) Neighbors(v K) ([]Edge[K], error) {
	n, err := g.lookup(v)
	if err != nil {
		return nil, err
	}
	out := make([]Edge[K], len(n.out))
	copy(out, n.out)

	return out, nil
}

// Edges returns every edge, grouped by source in node insertion order.
// Complexity: O(V + E).
func (g *Graph[K]) Edges() []Edge[K] {
	out := make([]Edge[K], 0, g.edgeCount)
	for _, v := range g.order {
		n, _ := g.nodes.Get(v)
		out = append(out, n.out...)
	}

	return out
}

// EdgeCount returns the number of directed edges.
func (g *Graph[K]) EdgeCount() int { return g.edgeCount }

// VisitNeighbors calls fn for each outgoing edge of v in insertion order,
// stopping early when fn returns false. Unlike Neighbors it does not copy;
// fn must not mutate g. Returns ErrUnknownNode if v is absent.
func (g *Graph[K]) VisitNeighbors(v K, fn func(e Edge[K]) bool) error {
	n, err := g.lookup(v)
	if err != nil {
		return err
	}
	for _, e := range n.out {
		if !fn(e) {
			break
		}
	}

	return nil
}
