package geometry

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/manhattan/grid"
	"github.com/katalvlaran/manhattan/role"
)

// Describe renders path with the weight of every hop, e.g.
// "a - 1 - d - 2 - g". Hops without a direct edge render as "inf".
func Describe(g *grid.Graph, path grid.Path) string {
	oracle := role.GraphOracle(g)
	var sb strings.Builder
	for i, n := range path {
		if i > 0 {
			w := oracle.DistanceBetween(path[i-1], n)
			sb.WriteString(" - ")
			if w >= grid.Infinity {
				sb.WriteString("inf")
			} else {
				sb.WriteString(strconv.FormatInt(w, 10))
			}
			sb.WriteString(" - ")
		}
		sb.WriteString(n.Name())
	}

	return sb.String()
}
