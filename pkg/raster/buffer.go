// Package raster draws trees into a fixed-size character buffer.
//
// A [Buffer] stores one byte per cell in row-major order: the cell at column
// x, row y lives at index y*width + x. Rows are meant to be emitted top to
// bottom and each row left to right, which is exactly the backing order.
package raster

import (
	"strings"

	"github.com/matzehuels/treecanvas/pkg/errors"
	"github.com/matzehuels/treecanvas/pkg/geom"
)

// Buffer is a width × height grid of glyphs.
type Buffer struct {
	w, h  int
	cells []byte
}

// New allocates a buffer of the given size filled with background.
// A size with a non-positive component yields an empty buffer.
func New(size geom.Vector2, background byte) *Buffer {
	if size.Empty() {
		return &Buffer{}
	}
	b := &Buffer{w: size.X, h: size.Y, cells: make([]byte, size.X*size.Y)}
	b.Fill(background)
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() geom.Vector2 { return geom.Vec(b.w, b.h) }

// Width returns the number of columns.
func (b *Buffer) Width() int { return b.w }

// Height returns the number of rows.
func (b *Buffer) Height() int { return b.h }

// Fill sets every cell to glyph.
func (b *Buffer) Fill(glyph byte) {
	for i := range b.cells {
		b.cells[i] = glyph
	}
}

// InBounds reports whether (x, y) addresses a cell.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.w && y >= 0 && y < b.h
}

// At returns the glyph at (x, y). It panics if the cell is out of bounds.
func (b *Buffer) At(x, y int) byte {
	return b.cells[b.index(x, y)]
}

// Set writes glyph at (x, y).
//
// Callers only draw validated trees into a canvas sized for them, so an
// out-of-bounds write is a defect and panics with an INTERNAL_ERROR.
func (b *Buffer) Set(x, y int, glyph byte) {
	b.cells[b.index(x, y)] = glyph
}

func (b *Buffer) index(x, y int) int {
	if !b.InBounds(x, y) {
		panic(errors.New(errors.ErrCodeInternal,
			"cell (%d,%d) outside %dx%d canvas", x, y, b.w, b.h))
	}
	return y*b.w + x
}

// Row returns row y as a string.
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.h {
		panic(errors.New(errors.ErrCodeInternal, "row %d outside %dx%d canvas", y, b.w, b.h))
	}
	return string(b.cells[y*b.w : (y+1)*b.w])
}

// Rows returns every row, top to bottom.
func (b *Buffer) Rows() []string {
	rows := make([]string, b.h)
	for y := range rows {
		rows[y] = b.Row(y)
	}
	return rows
}

// String joins the rows with newlines, terminating each row.
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow(b.h * (b.w + 1))
	for y := 0; y < b.h; y++ {
		sb.Write(b.cells[y*b.w : (y+1)*b.w])
		sb.WriteByte('\n')
	}
	return sb.String()
}
