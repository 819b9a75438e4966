package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/manhattan/dijkstra"
	"github.com/katalvlaran/manhattan/geometry"
)

// BenchmarkSolve_Lattice30 measures one full run on a 30×30 lattice.
// The graph is built once; each iteration allocates its own label store.
func BenchmarkSolve_Lattice30(b *testing.B) {
	g, err := geometry.Lattice(30, 30, geometry.WithSeed(1), geometry.WithUniformWeight(1, 50))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Solve(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_Manhattan1 measures the 3×3 reference geometry.
func BenchmarkSolve_Manhattan1(b *testing.B) {
	g := geometry.Manhattan1()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Solve(g); err != nil {
			b.Fatal(err)
		}
	}
}
