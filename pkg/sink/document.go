package sink

import (
	"github.com/matzehuels/treecanvas/pkg/raster"
	"github.com/matzehuels/treecanvas/pkg/tree"
)

// Document is the serializable form of a rendered canvas.
type Document struct {
	Width      int         `json:"width" toml:"width"`
	Height     int         `json:"height" toml:"height"`
	Background string      `json:"background" toml:"background"`
	Glyph      string      `json:"glyph" toml:"glyph"`
	Trees      []tree.Tree `json:"trees" toml:"trees"`
	Rows       []string    `json:"rows" toml:"rows"`
}

// NewDocument captures buf and the trees drawn into it.
func NewDocument(buf *raster.Buffer, trees []tree.Tree, style raster.Style) Document {
	if trees == nil {
		trees = []tree.Tree{}
	}
	return Document{
		Width:      buf.Width(),
		Height:     buf.Height(),
		Background: string(style.Background),
		Glyph:      string(style.Glyph),
		Trees:      trees,
		Rows:       buf.Rows(),
	}
}
