package sink

import (
	"encoding/json"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/treecanvas/pkg/geom"
	"github.com/matzehuels/treecanvas/pkg/raster"
	"github.com/matzehuels/treecanvas/pkg/tree"
)

func testDocument() Document {
	trees := []tree.Tree{tree.New(1, 0, 2, 1)}
	buf := raster.Rasterize(trees, geom.Vec(3, 3), raster.DefaultStyle())
	return NewDocument(buf, trees, raster.DefaultStyle())
}

func TestText(t *testing.T) {
	buf := raster.Rasterize([]tree.Tree{tree.New(1, 0, 2, 1)}, geom.Vec(3, 3), raster.DefaultStyle())
	assert.Equal(t, ".*.\n***\n.*.\n", string(Text(buf)))
}

func TestTextEmpty(t *testing.T) {
	assert.Empty(t, Text(raster.New(geom.Vector2{}, '.')))
}

func TestNewDocument(t *testing.T) {
	doc := testDocument()
	assert.Equal(t, 3, doc.Width)
	assert.Equal(t, 3, doc.Height)
	assert.Equal(t, ".", doc.Background)
	assert.Equal(t, "*", doc.Glyph)
	assert.Equal(t, []string{".*.", "***", ".*."}, doc.Rows)
	require.Len(t, doc.Trees, 1)
}

func TestNewDocumentNoTrees(t *testing.T) {
	doc := NewDocument(raster.New(geom.Vector2{}, '.'), nil, raster.DefaultStyle())
	assert.NotNil(t, doc.Trees)
	assert.Empty(t, doc.Rows)
}

func TestJSON(t *testing.T) {
	data, err := JSON(testDocument())
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.EqualValues(t, 3, got["width"])
	assert.EqualValues(t, 3, got["height"])
	assert.Equal(t, []any{".*.", "***", ".*."}, got["rows"])

	trees := got["trees"].([]any)
	require.Len(t, trees, 1)
	first := trees[0].(map[string]any)
	assert.EqualValues(t, 2, first["crown_height"])
	assert.Equal(t, map[string]any{"x": float64(1), "y": float64(0)}, first["position"])
	assert.Equal(t, byte('\n'), data[len(data)-1])
}

func TestTOML(t *testing.T) {
	data, err := TOML(testDocument())
	require.NoError(t, err)

	var got Document
	_, err = toml.Decode(string(data), &got)
	require.NoError(t, err)
	assert.Equal(t, testDocument(), got)
	assert.Contains(t, string(data), "[[trees]]")
}
