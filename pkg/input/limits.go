package input

import (
	"github.com/matzehuels/treecanvas/pkg/errors"
	"github.com/matzehuels/treecanvas/pkg/tree"
)

// Limits caps the canvas a single tree may demand. Zero means unlimited.
type Limits struct {
	MaxWidth  int
	MaxHeight int
}

// Check returns a CANVAS_TOO_LARGE error when t needs more room than l allows.
// Each term is bounded before summing, so huge inputs cannot overflow.
func (l Limits) Check(t tree.Tree) error {
	p := t.Position
	if l.MaxWidth > 0 {
		if p.X >= l.MaxWidth || t.CrownHeight > l.MaxWidth || t.RequiredCanvasSize().X > l.MaxWidth {
			return l.tooLarge("width", l.MaxWidth)
		}
	}
	if l.MaxHeight > 0 {
		if p.Y >= l.MaxHeight || t.CrownHeight > l.MaxHeight || t.TrunkHeight > l.MaxHeight ||
			t.RequiredCanvasSize().Y > l.MaxHeight {
			return l.tooLarge("height", l.MaxHeight)
		}
	}
	return nil
}

func (l Limits) tooLarge(dim string, limit int) error {
	return errors.Wrap(errors.ErrCodeCanvasTooLarge,
		errors.New(errors.ErrCodeCanvasTooLarge, "canvas %s limit is %d", dim, limit), MsgTooLarge)
}
