package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/campusroute/core"
)

// BenchmarkInsertEdge measures appending edges out of a single hub node.
func BenchmarkInsertEdge(b *testing.B) {
	g := core.NewGraph[string]()
	_, _ = g.InsertNode("Root")
	ids := make([]string, 1000)
	for i := range ids {
		ids[i] = fmt.Sprintf("N%d", i)
		_, _ = g.InsertNode(ids[i])
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Cycling through 1000 targets mixes appends and weight overwrites.
		_ = g.InsertEdge("Root", ids[i%len(ids)], float64(i))
	}
}

// BenchmarkInsertNode measures node index growth.
func BenchmarkInsertNode(b *testing.B) {
	g := core.NewGraph[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.InsertNode(i + 1)
	}
}
