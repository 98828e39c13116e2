package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/treecanvas/pkg/errors"
	"github.com/matzehuels/treecanvas/pkg/geom"
	"github.com/matzehuels/treecanvas/pkg/input"
	"github.com/matzehuels/treecanvas/pkg/observability"
	"github.com/matzehuels/treecanvas/pkg/raster"
	"github.com/matzehuels/treecanvas/pkg/sink"
	"github.com/matzehuels/treecanvas/pkg/tree"
)

// Runner executes the pipeline stages.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results, so one Runner can serve any number of runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete read → rasterize → render pipeline.
func (r *Runner) Execute(ctx context.Context, in io.Reader, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	hooks := observability.Pipeline()
	result := &Result{}

	onReject := opts.OnReject
	opts.OnReject = func(rej input.Rejection) {
		hooks.OnLineRejected(ctx, rej.Line, string(errors.GetCode(rej.Err)))
		if onReject != nil {
			onReject(rej)
		}
	}

	// Stage 1: Read
	hooks.OnReadStart(ctx)
	readStart := time.Now()
	read, err := r.Read(ctx, in, opts)
	hooks.OnReadComplete(ctx, len(read.Trees), read.Rejected, time.Since(readStart), err)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	result.Trees = read.Trees
	result.Canvas = read.Canvas
	result.Stats.ReadTime = time.Since(readStart)
	result.Stats.Lines = read.Lines
	result.Stats.Accepted = len(read.Trees)
	result.Stats.Rejected = read.Rejected

	r.Logger.Info("read trees",
		"accepted", result.Stats.Accepted,
		"rejected", result.Stats.Rejected,
		"canvas", read.Canvas,
		"duration", result.Stats.ReadTime)

	// Stage 2: Rasterize
	rasterStart := time.Now()
	result.Buffer = r.Rasterize(read.Trees, read.Canvas, opts)
	result.Stats.RasterizeTime = time.Since(rasterStart)
	hooks.OnRasterizeComplete(ctx, result.Buffer.Width(), result.Buffer.Height(), result.Stats.RasterizeTime)

	r.Logger.Info("rasterized canvas",
		"width", result.Buffer.Width(),
		"height", result.Buffer.Height(),
		"duration", result.Stats.RasterizeTime)

	// Stage 3: Render
	hooks.OnRenderStart(ctx, opts.Format)
	renderStart := time.Now()
	out, err := r.Render(result.Buffer, read.Trees, opts)
	hooks.OnRenderComplete(ctx, opts.Format, len(out), time.Since(renderStart), err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Output = out
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered output",
		"format", opts.Format,
		"bytes", len(out),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Read consumes tree lines from in until an empty line or end of stream.
func (r *Runner) Read(ctx context.Context, in io.Reader, opts Options) (input.Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRead(); err != nil {
		return input.Result{}, err
	}

	reader := input.NewReader(in, input.Options{
		Limits:   opts.Limits(),
		OnReject: opts.OnReject,
		Logger:   opts.Logger,
	})
	return reader.Read(ctx)
}

// Rasterize draws trees into a canvas of the given size. Trees must have been
// accepted by Read; anything else is a programming error and panics.
func (r *Runner) Rasterize(trees []tree.Tree, canvas geom.Vector2, opts Options) *raster.Buffer {
	r.applyLogger(&opts)
	style := opts.Style()
	opts.Logger.Debug("rasterizing", "trees", len(trees), "canvas", canvas,
		"background", string(style.Background), "glyph", string(style.Glyph))
	return raster.Rasterize(trees, canvas, style)
}

// Render encodes buf in opts.Format.
func (r *Runner) Render(buf *raster.Buffer, trees []tree.Tree, opts Options) ([]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	switch opts.Format {
	case FormatJSON:
		return sink.JSON(sink.NewDocument(buf, trees, opts.Style()))
	case FormatTOML:
		return sink.TOML(sink.NewDocument(buf, trees, opts.Style()))
	default:
		return sink.Text(buf), nil
	}
}

// applyLogger uses the runner's logger if opts doesn't have one.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
