package sink

import "github.com/matzehuels/treecanvas/pkg/raster"

// Text returns the grid with every row terminated by a newline.
// An empty canvas renders as no bytes.
func Text(buf *raster.Buffer) []byte {
	return []byte(buf.String())
}
