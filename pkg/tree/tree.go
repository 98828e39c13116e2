package tree

import (
	"math"

	"github.com/matzehuels/treecanvas/pkg/errors"
	"github.com/matzehuels/treecanvas/pkg/geom"
)

// Tree is an immutable description of one tree on the canvas.
type Tree struct {
	Position    geom.Vector2 `json:"position" toml:"position"`
	CrownHeight int          `json:"crown_height" toml:"crown_height"`
	TrunkHeight int          `json:"trunk_height" toml:"trunk_height"`
}

// New returns a tree whose apex is at the 0-based position (x, y).
func New(x, y, crown, trunk int) Tree {
	return Tree{Position: geom.Vec(x, y), CrownHeight: crown, TrunkHeight: trunk}
}

// FromInput converts 1-based user coordinates into a Tree. Callers must
// reject x or y below 1 first; math.MinInt would wrap on the shift.
func FromInput(x, y, crown, trunk int) Tree {
	return New(x-1, y-1, crown, trunk)
}

// RequiredCanvasSize returns the exclusive bottom-right corner the tree
// reaches: one past its rightmost crown column and one past its last trunk row.
func (t Tree) RequiredCanvasSize() geom.Vector2 {
	xMax := t.Position.X + (t.CrownHeight - 1)
	yMax := t.Position.Y + (t.CrownHeight - 1) + t.TrunkHeight
	return geom.Vec(xMax+1, yMax+1)
}

// Left returns the leftmost column of the crown's base row.
func (t Tree) Left() int {
	return t.Position.X - (t.CrownHeight - 1)
}

// IsValid reports whether the tree can be drawn without negative buffer
// indices and within its own RequiredCanvasSize, and whether that size is
// representable as an int.
func (t Tree) IsValid() bool {
	return t.Validate() == nil
}

// Validate is IsValid with a reason.
func (t Tree) Validate() error {
	switch {
	case t.CrownHeight < 1:
		return errors.New(errors.ErrCodeInvalidCoordinates,
			"crown height must be at least 1 (got %d)", t.CrownHeight)
	case t.TrunkHeight < 0:
		return errors.New(errors.ErrCodeInvalidCoordinates,
			"trunk height cannot be negative (got %d)", t.TrunkHeight)
	case t.Position.Y < 0:
		return errors.New(errors.ErrCodeInvalidCoordinates,
			"apex row %d is above the canvas", t.Position.Y)
	case t.Position.X < t.CrownHeight-1:
		return errors.New(errors.ErrCodeInvalidCoordinates,
			"crown of height %d at column %d reaches left of the canvas", t.CrownHeight, t.Position.X)
	case t.CrownHeight > math.MaxInt-t.Position.X:
		return errors.New(errors.ErrCodeInvalidCoordinates,
			"crown of height %d at column %d overflows the canvas width", t.CrownHeight, t.Position.X)
	case t.CrownHeight > math.MaxInt-t.Position.Y,
		t.TrunkHeight > math.MaxInt-t.Position.Y-t.CrownHeight:
		return errors.New(errors.ErrCodeInvalidCoordinates,
			"tree at row %d overflows the canvas height", t.Position.Y)
	}
	return nil
}
