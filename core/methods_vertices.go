// File: methods_vertices.go
// Role: node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns values in insertion order.
package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/campusroute/hashmap"
)

// InsertNode registers value as a node with no outgoing edges.
//
// Implementation:
//   - Stage 1: If the node index already holds value, report existed=true and change nothing.
//   - Stage 2: Otherwise allocate the record, store it in the index and append to the insertion order.
//
// Returns:
//   - existed: true iff value was already a node (not an error).
//   - err: ErrInvalidNode if value is nil (pointer, channel or interface K).
//
// Complexity: O(1) average.
func (g *Graph[K]) InsertNode(value K) (bool, error) {
	if g.nodes.ContainsKey(value) {
		return true, nil
	}
	if err := g.nodes.Put(value, &node[K]{value: value}); err != nil {
		if errors.Is(err, hashmap.ErrInvalidKey) {
			return false, fmt.Errorf("%w: %v", ErrInvalidNode, value)
		}

		return false, fmt.Errorf("core: insert node %v: %w", value, err)
	}
	g.order = append(g.order, value)

	return false, nil
}

// ContainsNode reports whether value is a node of g.
// Complexity: O(1) average.
func (g *Graph[K]) ContainsNode(value K) bool {
	return g.nodes.ContainsKey(value)
}

// RemoveNode detaches value and every edge that has it as source or successor.
//
// Implementation:
//   - Stage 1: Remove the record from the node index (ErrUnknownNode if absent).
//   - Stage 2: Drop its outgoing edges from the edge count.
//   - Stage 3: Scan every remaining node and drop edges whose successor is value.
//   - Stage 4: Remove value from the insertion order.
//
// Complexity: O(V + E).
func (g *Graph[K]) RemoveNode(value K) error {
	removed, err := g.nodes.Remove(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownNode, value)
	}
	g.edgeCount -= len(removed.out)

	g.nodes.Range(func(_ K, n *node[K]) bool {
		kept := n.out[:0]
		for _, e := range n.out {
			if e.To == value {
				g.edgeCount--
				continue
			}
			kept = append(kept, e)
		}
		clear(n.out[len(kept):])
		n.out = kept

		return true
	})

	for i, v := range g.order {
		if v == value {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	return nil
}

// Nodes returns every node value in insertion order. The slice is a copy.
// Complexity: O(V).
func (g *Graph[K]) Nodes() []K {
	out := make([]K, len(g.order))
	copy(out, g.order)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph[K]) NodeCount() int { return g.nodes.Size() }

// lookup returns the record for value or ErrUnknownNode.
func (g *Graph[K]) lookup(value K) (*node[K], error) {
	n, err := g.nodes.Get(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownNode, value)
	}

	return n, nil
}
