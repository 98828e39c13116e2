package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treecanvas/pkg/errors"
	"github.com/matzehuels/treecanvas/pkg/input"
	"github.com/matzehuels/treecanvas/pkg/pipeline"
)

// drawOpts holds the command-line flags for drawing.
type drawOpts struct {
	format     string // output format: text, json, toml
	background string // glyph for empty cells
	glyph      string // glyph for tree cells
	maxWidth   int    // per-tree canvas width cap, 0 for unlimited
	maxHeight  int    // per-tree canvas height cap, 0 for unlimited
	noWait     bool   // skip the key press wait
	quiet      bool   // suppress the input hint
}

func defaultDrawOpts() *drawOpts {
	return &drawOpts{
		format:     pipeline.DefaultFormat,
		background: pipeline.DefaultBackground,
		glyph:      pipeline.DefaultGlyph,
		maxWidth:   pipeline.DefaultMaxWidth,
		maxHeight:  pipeline.DefaultMaxHeight,
	}
}

func bindDrawFlags(cmd *cobra.Command, opts *drawOpts) {
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text (default), json, toml")
	cmd.Flags().StringVar(&opts.background, "background", opts.background, "glyph for empty canvas cells")
	cmd.Flags().StringVar(&opts.glyph, "glyph", opts.glyph, "glyph for crown and trunk cells")
	cmd.Flags().IntVar(&opts.maxWidth, "max-width", opts.maxWidth, "largest canvas width a tree may need (0 = unlimited)")
	cmd.Flags().IntVar(&opts.maxHeight, "max-height", opts.maxHeight, "largest canvas height a tree may need (0 = unlimited)")
	cmd.Flags().BoolVar(&opts.noWait, "no-wait", false, "print the canvas and exit without waiting for a key")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "do not print the input hint")
}

// pipelineOptions converts flags into validated pipeline options. The glyph
// flags are checked before defaults apply, so an explicit empty value fails.
func (o *drawOpts) pipelineOptions() (pipeline.Options, error) {
	if err := errors.ValidateGlyph("background", o.background); err != nil {
		return pipeline.Options{}, err
	}
	if err := errors.ValidateGlyph("tree", o.glyph); err != nil {
		return pipeline.Options{}, err
	}
	format, err := pipeline.ParseFormat(o.format)
	if err != nil {
		return pipeline.Options{}, err
	}
	opts := pipeline.Options{
		MaxWidth:   o.maxWidth,
		MaxHeight:  o.maxHeight,
		Background: o.background,
		Glyph:      o.glyph,
		Format:     format,
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return pipeline.Options{}, err
	}
	return opts, nil
}

// runDraw reads trees from c.In, draws them and shows the result.
func (c *CLI) runDraw(ctx context.Context, o *drawOpts) error {
	logger := loggerFromContext(ctx)

	opts, err := o.pipelineOptions()
	if err != nil {
		return err
	}
	opts.Logger = logger

	// Machine-readable output owns stdout; keep messages off it.
	msgs := newPrinter(c.Out)
	if !opts.IsText() {
		msgs = newPrinter(c.Err)
	}
	opts.OnReject = func(rej input.Rejection) {
		msgs.printError("%s", errors.UserMessage(rej.Err))
	}

	if !o.quiet && isTerminal(c.In) {
		msgs.printInfo("%s", inputHint)
	}

	prog := newProgress(logger)
	res, err := pipeline.NewRunner(logger).Execute(ctx, c.In, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Drew %d trees on a %dx%d canvas", res.Stats.Accepted, res.Canvas.X, res.Canvas.Y))

	if res.Stats.Accepted == 0 {
		newPrinter(c.Err).printWarning("No trees to draw")
	}

	return c.show(ctx, res, opts, o.noWait)
}
