package dfs_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// BenchmarkSearch_Reference runs corner-to-corner on the 20×20 reference grid.
func BenchmarkSearch_Reference(b *testing.B) {
	g, err := gridgraph.NewGrid(gridgraph.DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}
	start, end := g.Corners()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.Search(g, start, end)
	}
}

// BenchmarkSearch_Open50 runs corner-to-corner on an open 50×50 grid.
func BenchmarkSearch_Open50(b *testing.B) {
	g := buildGrid(b, 50)
	start, end := g.Corners()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.Search(g, start, end)
	}
}
