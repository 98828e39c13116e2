package raster

import (
	"github.com/matzehuels/treecanvas/pkg/geom"
	"github.com/matzehuels/treecanvas/pkg/tree"
)

// Default glyphs.
const (
	DefaultBackground byte = '.'
	DefaultGlyph      byte = '*'
)

// Style selects the glyphs used by Rasterize.
type Style struct {
	Background byte
	Glyph      byte
}

// DefaultStyle returns the '.' background and '*' tree glyph.
func DefaultStyle() Style {
	return Style{Background: DefaultBackground, Glyph: DefaultGlyph}
}

// DrawTree writes t into b. The crown is an apex-up triangle whose row r
// spans X-r..X+r; the trunk is column X below the crown.
func (b *Buffer) DrawTree(t tree.Tree, glyph byte) {
	x, y := t.Position.X, t.Position.Y

	for r := 0; r < t.CrownHeight; r++ {
		for cx := x - r; cx <= x+r; cx++ {
			b.Set(cx, y+r, glyph)
		}
	}

	trunkTop := y + t.CrownHeight
	for r := 0; r < t.TrunkHeight; r++ {
		b.Set(x, trunkTop+r, glyph)
	}
}

// Rasterize allocates a size canvas filled with the background glyph and
// draws trees in order. Overlapping cells keep the glyph of the last tree
// drawn there.
func Rasterize(trees []tree.Tree, size geom.Vector2, style Style) *Buffer {
	b := New(size, style.Background)
	for _, t := range trees {
		b.DrawTree(t, style.Glyph)
	}
	return b
}
