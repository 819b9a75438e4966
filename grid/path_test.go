package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/manhattan/grid"
)

func TestPath_Helpers(t *testing.T) {
	_, n := square(t)
	p := grid.Path{n[0], n[1], n[3]}

	assert.Equal(t, 3, p.Len())
	assert.Same(t, n[0], p.Origin())
	assert.Same(t, n[3], p.Destination())
	assert.Equal(t, []string{"a", "b", "d"}, p.Names())
	assert.Equal(t, "a -> b -> d", p.String())

	r := p.Reversed()
	assert.Equal(t, grid.Path{n[3], n[1], n[0]}, r)
	assert.Same(t, n[0], p[0], "Reversed must not modify the receiver")
}

func TestPath_Empty(t *testing.T) {
	var p grid.Path
	assert.Nil(t, p.Origin())
	assert.Nil(t, p.Destination())
	assert.Equal(t, "", p.String())
	assert.Empty(t, p.Reversed())
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "east", grid.East.String())
	assert.Equal(t, "south", grid.South.String())
	assert.Equal(t, "unknown", grid.Direction(7).String())
}
