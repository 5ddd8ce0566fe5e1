// Package core_test contains shared fixtures for core tests.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusroute/core"
)

// Common node values used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeE = "E"

	NodeMissing = "Z"
)

// campusEdges is the bidirectional five-node fixture (A–E).
var campusEdges = []core.Edge[string]{
	{From: NodeA, To: NodeB, Weight: 15}, {From: NodeB, To: NodeA, Weight: 15},
	{From: NodeA, To: NodeC, Weight: 1}, {From: NodeC, To: NodeA, Weight: 1},
	{From: NodeA, To: NodeD, Weight: 4}, {From: NodeD, To: NodeA, Weight: 4},
	{From: NodeB, To: NodeD, Weight: 2}, {From: NodeD, To: NodeB, Weight: 2},
	{From: NodeB, To: NodeE, Weight: 1}, {From: NodeE, To: NodeB, Weight: 1},
	{From: NodeC, To: NodeE, Weight: 10}, {From: NodeE, To: NodeC, Weight: 10},
	{From: NodeD, To: NodeE, Weight: 10}, {From: NodeE, To: NodeD, Weight: 10},
}

// buildGraph inserts both endpoints of every edge, then the edge itself.
func buildGraph(t *testing.T, edges []core.Edge[string]) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string]()
	for _, e := range edges {
		_, err := g.InsertNode(e.From)
		require.NoError(t, err)
		_, err = g.InsertNode(e.To)
		require.NoError(t, err)
		require.NoError(t, g.InsertEdge(e.From, e.To, e.Weight))
	}

	return g
}
