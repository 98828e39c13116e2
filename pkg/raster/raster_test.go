package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/treecanvas/pkg/errors"
	"github.com/matzehuels/treecanvas/pkg/geom"
	"github.com/matzehuels/treecanvas/pkg/tree"
)

func exactFit(trees ...tree.Tree) *Buffer {
	var size geom.Vector2
	for _, t := range trees {
		size = geom.Max(size, t.RequiredCanvasSize())
	}
	return Rasterize(trees, size, DefaultStyle())
}

func TestNewFillsBackground(t *testing.T) {
	b := New(geom.Vec(3, 2), '.')
	assert.Equal(t, geom.Vec(3, 2), b.Size())
	assert.Equal(t, []string{"...", "..."}, b.Rows())
}

func TestNewEmpty(t *testing.T) {
	for _, size := range []geom.Vector2{{}, geom.Vec(0, 4), geom.Vec(4, 0), geom.Vec(-1, 3)} {
		b := New(size, '.')
		assert.Equal(t, 0, b.Width())
		assert.Equal(t, 0, b.Height())
		assert.Empty(t, b.Rows())
		assert.Equal(t, "", b.String())
	}
}

func TestRasterizeSingleTree(t *testing.T) {
	b := exactFit(tree.New(2, 0, 3, 2))
	assert.Equal(t, []string{
		"..*..",
		".***.",
		"*****",
		"..*..",
		"..*..",
	}, b.Rows())
}

func TestRasterizeNarrowTree(t *testing.T) {
	b := exactFit(tree.New(1, 0, 2, 3))
	assert.Equal(t, []string{".*.", "***", ".*.", ".*.", ".*."}, b.Rows())
}

func TestRasterizeCrownOnly(t *testing.T) {
	b := exactFit(tree.New(0, 0, 1, 0))
	assert.Equal(t, []string{"*"}, b.Rows())
}

func TestRasterizeOffsetTree(t *testing.T) {
	b := exactFit(tree.FromInput(3, 3, 2, 1))
	assert.Equal(t, []string{
		"....",
		"....",
		"..*.",
		".***",
		"..*.",
	}, b.Rows())
}

func TestRasterizeCrownSymmetry(t *testing.T) {
	tr := tree.New(6, 1, 7, 0)
	b := exactFit(tr)
	for r := 0; r < tr.CrownHeight; r++ {
		row := b.Row(tr.Position.Y + r)
		for d := 0; d <= r; d++ {
			assert.Equal(t, byte('*'), row[tr.Position.X-d], "row %d left %d", r, d)
			assert.Equal(t, byte('*'), row[tr.Position.X+d], "row %d right %d", r, d)
		}
		if tr.Position.X-r-1 >= 0 {
			assert.Equal(t, byte('.'), row[tr.Position.X-r-1])
		}
	}
}

func TestDrawTreeLastWriteWins(t *testing.T) {
	first := tree.New(2, 0, 3, 2)
	second := tree.New(3, 1, 2, 1)
	size := geom.Max(first.RequiredCanvasSize(), second.RequiredCanvasSize())

	b := New(size, '.')
	b.DrawTree(first, 'a')
	b.DrawTree(second, 'b')

	assert.Equal(t, []string{
		"..a..",
		".aab.",
		"aabbb",
		"..ab.",
		"..a..",
	}, b.Rows())

	b = New(size, '.')
	b.DrawTree(second, 'b')
	b.DrawTree(first, 'a')
	assert.Equal(t, byte('a'), b.At(3, 1))
	assert.Equal(t, byte('a'), b.At(4, 2))
	assert.Equal(t, byte('b'), b.At(3, 3))
}

func TestRasterizeStyle(t *testing.T) {
	b := Rasterize([]tree.Tree{tree.New(1, 0, 2, 0)}, geom.Vec(3, 2), Style{Background: ' ', Glyph: '#'})
	assert.Equal(t, " # \n###\n", b.String())
}

func TestSetOutOfBoundsPanics(t *testing.T) {
	b := New(geom.Vec(2, 2), '.')

	for _, p := range []geom.Vector2{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 2, Y: 0}, {X: 0, Y: 2}} {
		func() {
			defer func() {
				r := recover()
				require.NotNil(t, r, "expected panic at %v", p)
				err, ok := r.(error)
				require.True(t, ok)
				assert.True(t, errors.Is(err, errors.ErrCodeInternal))
			}()
			b.Set(p.X, p.Y, '*')
		}()
	}
}

func TestDrawUnvalidatedTreePanics(t *testing.T) {
	b := New(geom.Vec(3, 3), '.')
	assert.Panics(t, func() { b.DrawTree(tree.New(0, 0, 2, 0), '*') })
}
