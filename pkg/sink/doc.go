// Package sink encodes a rasterized canvas for output.
//
// [Text] produces the plain grid that is shown on the console. [JSON] and
// [TOML] produce a [Document] describing the canvas, its glyphs, the trees
// drawn on it and the rendered rows, for tools that consume treecanvas
// output on a pipe.
//
//	buf := raster.Rasterize(trees, size, style)
//	doc := sink.NewDocument(buf, trees, style)
//	data, err := sink.JSON(doc)
package sink
