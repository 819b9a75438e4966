package label_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/manhattan/grid"
	"github.com/katalvlaran/manhattan/label"
)

// line builds a - 1 - b - 1 - c with root a and destination c.
func line(t *testing.T) (*grid.Graph, []*grid.Node) {
	t.Helper()
	b := grid.NewBuilder()
	n := b.AddNodes("a", "b", "c")
	g, err := b.Street(n[0], n[1], 1).Street(n[1], n[2], 1).Root(n[0]).Destination(n[2]).Build()
	require.NoError(t, err)

	return g, n
}

func TestNew_Initialize(t *testing.T) {
	g, n := line(t)
	s, err := label.New(g, n[0])
	require.NoError(t, err)

	assert.Same(t, g, s.Graph())
	assert.Same(t, n[0], s.Origin())
	assert.Equal(t, int64(0), s.DistanceOf(n[0]))
	assert.True(t, s.Visited(n[0]), "origin is settled immediately")
	assert.False(t, s.InFrontier(n[0]))

	for _, v := range n[1:] {
		assert.Equal(t, grid.Infinity, s.DistanceOf(v))
		assert.False(t, s.Visited(v))
		_, ok := s.Predecessor(v)
		assert.False(t, ok)
	}
	assert.Equal(t, 2, s.FrontierLen())
	assert.Equal(t, []*grid.Node{n[1], n[2]}, s.Frontier())
}

func TestNew_InvalidOrigin(t *testing.T) {
	g, _ := line(t)
	other, _ := line(t)

	_, err := label.New(g, nil)
	assert.ErrorIs(t, err, grid.ErrNilNode)

	_, err = label.New(g, other.Root())
	assert.ErrorIs(t, err, grid.ErrNodeNotFound)
}

func TestRelabel_StrictlyLess(t *testing.T) {
	g, n := line(t)
	s, err := label.New(g, n[0])
	require.NoError(t, err)

	assert.True(t, s.Relabel(n[1], 5))
	assert.Equal(t, int64(5), s.DistanceOf(n[1]))

	assert.False(t, s.Relabel(n[1], 5), "ties never relabel")
	assert.False(t, s.Relabel(n[1], 9), "larger candidates are ignored")
	assert.Equal(t, int64(5), s.DistanceOf(n[1]))

	assert.True(t, s.Relabel(n[1], 3))
	assert.Equal(t, int64(3), s.DistanceOf(n[1]))
}

func TestRelabel_Monotonic(t *testing.T) {
	g, n := line(t)
	s, err := label.New(g, n[0])
	require.NoError(t, err)

	prev := s.DistanceOf(n[2])
	for _, d := range []int64{40, 50, 12, 12, 30, 7, 8, 1} {
		s.Relabel(n[2], d)
		cur := s.DistanceOf(n[2])
		assert.LessOrEqual(t, cur, prev)
		prev = cur
	}
	assert.Equal(t, int64(1), s.DistanceOf(n[2]))
}

func TestRelabel_VisitedIsFinal(t *testing.T) {
	g, n := line(t)
	s, err := label.New(g, n[0])
	require.NoError(t, err)

	require.True(t, s.Relabel(n[1], 4))
	s.MarkVisited(n[1])
	assert.False(t, s.Relabel(n[1], 1))
	assert.Equal(t, int64(4), s.DistanceOf(n[1]))
	assert.False(t, s.Relabel(n[0], 0))
}

func TestLinkAndLabel(t *testing.T) {
	g, n := line(t)
	s, err := label.New(g, n[0])
	require.NoError(t, err)

	require.True(t, s.Relabel(n[1], 1))
	s.Link(n[1], n[0])

	p, ok := s.Predecessor(n[1])
	require.True(t, ok)
	assert.Same(t, n[0], p)

	assert.Equal(t, label.Label{Distance: 1, Visited: false, Predecessor: n[0]}, s.Label(n[1]))
	_, ok = s.Predecessor(n[0])
	assert.False(t, ok, "origin has no predecessor")
}

func TestMarkVisited_Idempotent(t *testing.T) {
	g, n := line(t)
	s, err := label.New(g, n[0])
	require.NoError(t, err)

	s.MarkVisited(n[2])
	s.MarkVisited(n[2])
	s.MarkVisited(n[0])
	assert.Equal(t, 1, s.FrontierLen())
	assert.Equal(t, []*grid.Node{n[1]}, s.Frontier())
}

func TestStore_ForeignNodePanics(t *testing.T) {
	g, n := line(t)
	other, _ := line(t)
	s, err := label.New(g, n[0])
	require.NoError(t, err)

	assert.PanicsWithValue(t, "label: grid: node not found in graph: a", func() {
		s.DistanceOf(other.Root())
	})
	assert.Panics(t, func() { s.Relabel(nil, 1) })
	assert.Panics(t, func() { s.Link(n[1], other.Root()) })
}

func TestStores_AreIndependent(t *testing.T) {
	g, n := line(t)
	s1, err := label.New(g, n[0])
	require.NoError(t, err)
	s2, err := label.New(g, n[1])
	require.NoError(t, err)

	s1.Relabel(n[2], 2)
	assert.Equal(t, grid.Infinity, s2.DistanceOf(n[2]))
	assert.True(t, s2.InFrontier(n[0]))
	assert.Equal(t, int64(0), s2.DistanceOf(n[1]))
}
