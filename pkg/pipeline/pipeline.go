// Package pipeline provides the read → rasterize → render pipeline for
// treecanvas.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Read: Parse tree lines from an input stream and size the canvas
//  2. Rasterize: Draw the accepted trees into a character buffer
//  3. Render: Encode the buffer as text, JSON or TOML
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{Format: pipeline.FormatText}
//	result, err := runner.Execute(ctx, os.Stdin, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(result.Output)
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/treecanvas/pkg/errors"
	"github.com/matzehuels/treecanvas/pkg/geom"
	"github.com/matzehuels/treecanvas/pkg/input"
	"github.com/matzehuels/treecanvas/pkg/raster"
	"github.com/matzehuels/treecanvas/pkg/tree"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultBackground is the glyph for empty canvas cells.
	DefaultBackground = "."

	// DefaultGlyph is the glyph for crown and trunk cells.
	DefaultGlyph = "*"

	// DefaultMaxWidth is the CLI's cap on the canvas width a single tree may
	// demand. Options leave the canvas unlimited when MaxWidth is 0.
	DefaultMaxWidth = 1024

	// DefaultMaxHeight is the CLI's cap on the canvas height a single tree may demand.
	DefaultMaxHeight = 1024

	// DefaultFormat is the default output format.
	DefaultFormat = FormatText
)

// Format constants for output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatTOML = "toml"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
	FormatTOML: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
type Options struct {
	// Read options
	MaxWidth  int `json:"max_width,omitempty"`  // per-tree canvas width cap, 0 = unlimited
	MaxHeight int `json:"max_height,omitempty"` // per-tree canvas height cap, 0 = unlimited

	// Rasterize options
	Background string `json:"background,omitempty"`
	Glyph      string `json:"glyph,omitempty"`

	// Render options
	Format string `json:"format,omitempty"`

	// Runtime options (not serialized)
	Logger   *log.Logger           `json:"-"`
	OnReject func(input.Rejection) `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Trees are the accepted trees in input order.
	Trees []tree.Tree

	// Canvas is the size of the rendered grid.
	Canvas geom.Vector2

	// Buffer is the rasterized canvas.
	Buffer *raster.Buffer

	// Output is the encoded canvas in the requested format.
	Output []byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Lines         int
	Accepted      int
	Rejected      int
	ReadTime      time.Duration
	RasterizeTime time.Duration
	RenderTime    time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidOutputFormat,
			"invalid format: %q (must be one of: text, json, toml)", format)
	}
	return nil
}

// ParseFormat normalizes a user-supplied format name.
// An empty string selects DefaultFormat.
func ParseFormat(s string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(s))
	if f == "" {
		return DefaultFormat, nil
	}
	if f == "txt" {
		f = FormatText
	}
	return f, ValidateFormat(f)
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks every field and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForRead(); err != nil {
		return err
	}
	if err := o.ValidateForRasterize(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForRead checks the canvas limits.
func (o *Options) ValidateForRead() error {
	if err := errors.ValidateLimit("max width", o.MaxWidth); err != nil {
		return err
	}
	if err := errors.ValidateLimit("max height", o.MaxHeight); err != nil {
		return err
	}
	o.setLogger()
	return nil
}

// ValidateForRasterize checks glyphs and sets rasterize defaults.
func (o *Options) ValidateForRasterize() error {
	if o.Background == "" {
		o.Background = DefaultBackground
	}
	if o.Glyph == "" {
		o.Glyph = DefaultGlyph
	}
	if err := errors.ValidateGlyph("background", o.Background); err != nil {
		return err
	}
	if err := errors.ValidateGlyph("tree", o.Glyph); err != nil {
		return err
	}
	o.setLogger()
	return nil
}

// ValidateForRender checks the output format and sets render defaults.
func (o *Options) ValidateForRender() error {
	f, err := ParseFormat(o.Format)
	if err != nil {
		return err
	}
	o.Format = f
	o.setLogger()
	return nil
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Limits returns the per-tree canvas limits.
func (o *Options) Limits() input.Limits {
	return input.Limits{MaxWidth: o.MaxWidth, MaxHeight: o.MaxHeight}
}

// Style returns the glyphs to rasterize with. Call after validation.
func (o *Options) Style() raster.Style {
	s := raster.DefaultStyle()
	if o.Background != "" {
		s.Background = o.Background[0]
	}
	if o.Glyph != "" {
		s.Glyph = o.Glyph[0]
	}
	return s
}

// IsText returns true if the output is the plain grid.
func (o *Options) IsText() bool {
	return o.Format == "" || o.Format == FormatText
}
