package geometry_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/manhattan/geometry"
	"github.com/katalvlaran/manhattan/grid"
)

const cornerYAML = `
nodes: [a, b, c, d]
root: a
destination: d
streets:
  - {from: a, to: b, weight: 2}
  - {from: c, to: d, weight: 1}
avenues:
  - {from: a, to: c, weight: 1}
  - {from: b, to: d, weight: 4}
`

func TestDecode(t *testing.T) {
	g, err := geometry.Decode(strings.NewReader(cornerYAML))
	require.NoError(t, err)

	assert.Equal(t, 4, g.Len())
	assert.Equal(t, "a", g.Root().Name())
	assert.Equal(t, "d", g.Destination().Name())

	a, c := node(t, g, "a"), node(t, g, "c")
	assert.Same(t, c, g.SouthOf(a))
	w, err := g.Weight(a, c)
	require.NoError(t, err)
	assert.Equal(t, int64(1), w)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"Empty", ``, geometry.ErrDescription},
		{"Malformed", `nodes: [a`, geometry.ErrDescription},
		{"UnknownField", "nodes: [a]\nroot: a\ndestination: a\nbridges: []\n", geometry.ErrDescription},
		{"NoNodes", "root: a\ndestination: a\n", geometry.ErrDescription},
		{"Duplicate", "nodes: [a, a]\nroot: a\ndestination: a\n", geometry.ErrDescription},
		{"EmptyName", "nodes: [a, '']\nroot: a\ndestination: a\n", geometry.ErrDescription},
		{"UnknownRoot", "nodes: [a]\nroot: z\ndestination: a\n", geometry.ErrDescription},
		{"UnknownLink", "nodes: [a, b]\nroot: a\ndestination: b\nstreets: [{from: a, to: x, weight: 1}]\n", geometry.ErrDescription},
		{"BadWeight", "nodes: [a, b]\nroot: a\ndestination: b\nstreets: [{from: a, to: b, weight: 0}]\n", grid.ErrBadWeight},
		{"SecondEast", "nodes: [a, b, c]\nroot: a\ndestination: c\nstreets: [{from: a, to: b, weight: 1}, {from: a, to: c, weight: 1}]\n", grid.ErrNeighborTaken},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := geometry.Parse([]byte(tc.doc))
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, geometry.ErrDescription)
		})
	}
}
