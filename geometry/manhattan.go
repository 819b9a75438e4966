package geometry

import (
	"fmt"

	"github.com/katalvlaran/manhattan/grid"
)

// Manhattan1 returns the 3×3 reference geometry:
//
//	a - 2 - b - 3 - c
//	|       |       |
//	1       2       1
//	|       |       |
//	d - 1 - e - 1 - f
//	|               |
//	2               4
//	|               |
//	g - 1 - h - 2 - i
//
// Root is a, destination is i. The shortest route is a, d, g, h, i (6).
// The historical drawing of this grid reused the names "a" and "b" for e and
// f to show that nodes are compared by identity; here every name is unique
// so Find and Describe stay unambiguous.
func Manhattan1() *grid.Graph {
	b := grid.NewBuilder()
	n := b.AddNodes("a", "b", "c", "d", "e", "f", "g", "h", "i")
	a, bb, c, d, e, f, g, h, i := n[0], n[1], n[2], n[3], n[4], n[5], n[6], n[7], n[8]

	b.Street(a, bb, 2).Street(bb, c, 3).
		Street(d, e, 1).Street(e, f, 1).
		Street(g, h, 1).Street(h, i, 2)
	b.Avenue(a, d, 1).Avenue(bb, e, 2).Avenue(c, f, 1).
		Avenue(d, g, 2).Avenue(f, i, 4)

	return mustBuild("Manhattan1", b.Root(a).Destination(i))
}

// Manhattan2 returns the 11-node reference geometry:
//
//	a - 2 - b - 3 - c - 1 - j
//	|       |       |       |
//	1       2       1       |
//	|       |       |       |
//	d - 1 - e - 1 - f       1
//	|               |       |
//	2               4       |
//	|               |       |
//	g - 1 - h - 2 - i - 2 - k
//
// Root is a, destination is k. The shortest route is a, b, c, j, k (7).
// As in Manhattan1, e and f carry their own names instead of repeating "a"
// and "b".
func Manhattan2() *grid.Graph {
	b := grid.NewBuilder()
	n := b.AddNodes("a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k")
	a, bb, c, d, e, f, g, h, i, j, k := n[0], n[1], n[2], n[3], n[4], n[5], n[6], n[7], n[8], n[9], n[10]

	b.Street(a, bb, 2).Street(bb, c, 3).Street(c, j, 1).
		Street(d, e, 1).Street(e, f, 1).
		Street(g, h, 1).Street(h, i, 2).Street(i, k, 2)
	b.Avenue(a, d, 1).Avenue(bb, e, 2).Avenue(c, f, 1).
		Avenue(d, g, 2).Avenue(f, i, 4).Avenue(j, k, 1)

	return mustBuild("Manhattan2", b.Root(a).Destination(k))
}

// mustBuild builds a fixed description. Failure is a bug in this package.
func mustBuild(name string, b *grid.Builder) *grid.Graph {
	g, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("geometry: %s: %v", name, err))
	}

	return g
}

// Find returns the first node named name in graph order.
func Find(g *grid.Graph, name string) (*grid.Node, bool) {
	for _, n := range g.Nodes() {
		if n.Name() == name {
			return n, true
		}
	}

	return nil, false
}
