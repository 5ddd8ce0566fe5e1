package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/campusroute/core"
)

// GraphSuite covers node/edge lifecycle on a string-keyed Graph.
type GraphSuite struct {
	suite.Suite
	g *core.Graph[string]
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph[string]()
}

func (s *GraphSuite) TestInsertNodeIdempotent() {
	require := require.New(s.T())
	existed, err := s.g.InsertNode(NodeA)
	require.NoError(err)
	require.False(existed)

	existed, err = s.g.InsertNode(NodeA)
	require.NoError(err)
	require.True(existed, "second insert reports the node already existed")
	require.Equal(1, s.g.NodeCount())
	require.True(s.g.ContainsNode(NodeA))
	require.False(s.g.ContainsNode(NodeMissing))
}

func (s *GraphSuite) TestInsertNodeZeroValue() {
	existed, err := s.g.InsertNode("")
	require.NoError(s.T(), err)
	require.False(s.T(), existed)
	require.True(s.T(), s.g.ContainsNode(""))
}

func TestInsertNodeNil(t *testing.T) {
	type place struct{ name string }
	g := core.NewGraph[*place]()
	_, err := g.InsertNode(nil)
	require.ErrorIs(t, err, core.ErrInvalidNode)
	require.Zero(t, g.NodeCount())

	_, err = g.InsertNode(&place{"gym"})
	require.NoError(t, err)
	require.Equal(t, 1, g.NodeCount())
}

func (s *GraphSuite) TestNodesInsertionOrder() {
	for _, v := range []string{"Union", "Library", "Gym", "Library"} {
		_, err := s.g.InsertNode(v)
		require.NoError(s.T(), err)
	}
	require.Equal(s.T(), []string{"Union", "Library", "Gym"}, s.g.Nodes())
}

func (s *GraphSuite) TestInsertEdgeRequiresNodes() {
	require := require.New(s.T())
	_, _ = s.g.InsertNode(NodeA)

	require.ErrorIs(s.g.InsertEdge(NodeA, NodeB, 1), core.ErrUnknownNode)
	require.ErrorIs(s.g.InsertEdge(NodeB, NodeA, 1), core.ErrUnknownNode)
	require.False(s.g.ContainsNode(NodeB), "InsertEdge never creates nodes")
	require.Zero(s.g.EdgeCount())
}

func (s *GraphSuite) TestInsertEdgeRejectsBadWeights() {
	require := require.New(s.T())
	_, _ = s.g.InsertNode(NodeA)
	_, _ = s.g.InsertNode(NodeB)
	for _, w := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		require.ErrorIs(s.g.InsertEdge(NodeA, NodeB, w), core.ErrInvalidWeight, "weight %v", w)
	}
	require.NoError(s.g.InsertEdge(NodeA, NodeB, 0), "zero is a valid weight")
}

func (s *GraphSuite) TestInsertEdgeOverwritesWeight() {
	require := require.New(s.T())
	_, _ = s.g.InsertNode(NodeA)
	_, _ = s.g.InsertNode(NodeB)
	require.NoError(s.g.InsertEdge(NodeA, NodeB, 3))
	require.NoError(s.g.InsertEdge(NodeA, NodeB, 7))

	w, err := s.g.EdgeWeight(NodeA, NodeB)
	require.NoError(err)
	require.Equal(7.0, w)
	require.Equal(1, s.g.EdgeCount(), "re-insert updates, never duplicates")
	require.False(s.g.HasEdge(NodeB, NodeA), "edges are directed")
}

func (s *GraphSuite) TestEdgeWeightErrors() {
	require := require.New(s.T())
	_, _ = s.g.InsertNode(NodeA)
	_, _ = s.g.InsertNode(NodeB)

	_, err := s.g.EdgeWeight(NodeA, NodeB)
	require.ErrorIs(err, core.ErrUnknownEdge)
	_, err = s.g.EdgeWeight(NodeMissing, NodeA)
	require.ErrorIs(err, core.ErrUnknownNode)
}

func (s *GraphSuite) TestSelfLoop() {
	require := require.New(s.T())
	_, _ = s.g.InsertNode(NodeA)
	require.NoError(s.g.InsertEdge(NodeA, NodeA, 2))
	require.True(s.g.HasEdge(NodeA, NodeA))
	require.Equal(1, s.g.EdgeCount())

	require.NoError(s.g.RemoveNode(NodeA))
	require.Zero(s.g.EdgeCount())
}

func (s *GraphSuite) TestRemoveEdge() {
	require := require.New(s.T())
	s.g = buildGraph(s.T(), campusEdges)
	before := s.g.EdgeCount()

	require.NoError(s.g.RemoveEdge(NodeC, NodeE))
	require.False(s.g.HasEdge(NodeC, NodeE))
	require.True(s.g.HasEdge(NodeE, NodeC), "reverse edge untouched")
	require.Equal(before-1, s.g.EdgeCount())

	require.ErrorIs(s.g.RemoveEdge(NodeC, NodeE), core.ErrUnknownEdge)
	require.ErrorIs(s.g.RemoveEdge(NodeMissing, NodeE), core.ErrUnknownNode)
}

func (s *GraphSuite) TestRemoveNodeDropsIncidentEdges() {
	require := require.New(s.T())
	s.g = buildGraph(s.T(), campusEdges)
	require.Equal(5, s.g.NodeCount())
	require.Equal(14, s.g.EdgeCount())

	// B has 3 outgoing and 3 incoming edges.
	require.NoError(s.g.RemoveNode(NodeB))
	require.False(s.g.ContainsNode(NodeB))
	require.Equal(4, s.g.NodeCount())
	require.Equal(8, s.g.EdgeCount())
	require.Equal([]string{NodeA, NodeC, NodeD, NodeE}, s.g.Nodes())
	for _, e := range s.g.Edges() {
		require.NotEqual(NodeB, e.From)
		require.NotEqual(NodeB, e.To)
	}

	require.ErrorIs(s.g.RemoveNode(NodeB), core.ErrUnknownNode)
}

func (s *GraphSuite) TestNeighborsOrderAndCopy() {
	require := require.New(s.T())
	s.g = buildGraph(s.T(), campusEdges)

	nbrs, err := s.g.Neighbors(NodeA)
	require.NoError(err)
	require.Equal([]core.Edge[string]{
		{From: NodeA, To: NodeB, Weight: 15},
		{From: NodeA, To: NodeC, Weight: 1},
		{From: NodeA, To: NodeD, Weight: 4},
	}, nbrs)

	nbrs[0].Weight = 99
	w, _ := s.g.EdgeWeight(NodeA, NodeB)
	require.Equal(15.0, w, "Neighbors returns a copy")

	_, err = s.g.Neighbors(NodeMissing)
	require.ErrorIs(err, core.ErrUnknownNode)
}

func (s *GraphSuite) TestVisitNeighborsStopsEarly() {
	require := require.New(s.T())
	s.g = buildGraph(s.T(), campusEdges)
	var seen []string
	require.NoError(s.g.VisitNeighbors(NodeA, func(e core.Edge[string]) bool {
		seen = append(seen, e.To)
		return len(seen) < 2
	}))
	require.Equal([]string{NodeB, NodeC}, seen)
	require.ErrorIs(s.g.VisitNeighbors(NodeMissing, func(core.Edge[string]) bool { return true }), core.ErrUnknownNode)
}

func (s *GraphSuite) TestEdgesGroupedBySource() {
	s.g = buildGraph(s.T(), campusEdges)
	edges := s.g.Edges()
	require.Len(s.T(), edges, 14)
	require.Equal(s.T(), NodeA, edges[0].From)
	require.Equal(s.T(), NodeE, edges[len(edges)-1].From)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestIntegerKeysAndNodeCapacity(t *testing.T) {
	g := core.NewGraph[int](core.WithNodeCapacity(2))
	for i := 1; i <= 50; i++ {
		_, err := g.InsertNode(i)
		require.NoError(t, err)
		if i > 1 {
			require.NoError(t, g.InsertEdge(i-1, i, float64(i)))
		}
	}
	require.Equal(t, 50, g.NodeCount())
	require.Equal(t, 49, g.EdgeCount())
	w, err := g.EdgeWeight(49, 50)
	require.NoError(t, err)
	require.Equal(t, 50.0, w)
}

func TestWithNodeCapacityPanics(t *testing.T) {
	require.Panics(t, func() { core.NewGraph[string](core.WithNodeCapacity(-1)) })
}
