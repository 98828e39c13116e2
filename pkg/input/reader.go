package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/treecanvas/pkg/geom"
	"github.com/matzehuels/treecanvas/pkg/tree"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Rejection describes one skipped input line.
type Rejection struct {
	Line int    // 1-based line number
	Text string // raw line without the trailing newline
	Err  error  // coded error from pkg/errors
}

// Options configures a Reader.
type Options struct {
	Limits Limits

	// OnReject is called for every skipped line. Nil discards rejections.
	OnReject func(Rejection)

	Logger *log.Logger
}

// Result is the outcome of an input pass.
type Result struct {
	Trees    []tree.Tree  // accepted trees in input order
	Canvas   geom.Vector2 // smallest size containing every accepted tree
	Lines    int          // lines consumed, including the terminating empty line
	Rejected int
}

// Accept appends t and grows the canvas to fit it.
func (r *Result) Accept(t tree.Tree) {
	r.Trees = append(r.Trees, t)
	r.Canvas = geom.Max(r.Canvas, t.RequiredCanvasSize())
}

// Reader reads trees from a text stream.
type Reader struct {
	scanner *bufio.Scanner
	opts    Options
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader, opts Options) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxLineBytes)
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Reader{scanner: s, opts: opts}
}

// Read consumes lines until an empty line or end of stream. Bad lines are
// reported and skipped; only I/O failures and context cancellation return
// an error.
func (r *Reader) Read(ctx context.Context) (Result, error) {
	var res Result

	for r.scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Lines++
		line := strings.TrimSuffix(r.scanner.Text(), "\r")
		if line == "" {
			r.opts.Logger.Debug("end of input", "line", res.Lines)
			return res, nil
		}

		t, err := Parse(line)
		if err == nil {
			err = r.opts.Limits.Check(t)
		}
		if err != nil {
			res.Rejected++
			r.reject(Rejection{Line: res.Lines, Text: line, Err: err})
			continue
		}

		res.Accept(t)
		r.opts.Logger.Debug("accepted tree",
			"line", res.Lines,
			"position", t.Position,
			"crown", t.CrownHeight,
			"trunk", t.TrunkHeight,
			"canvas", res.Canvas)
	}

	if err := r.scanner.Err(); err != nil {
		return res, fmt.Errorf("read line %d: %w", res.Lines+1, err)
	}
	r.opts.Logger.Debug("end of stream", "lines", res.Lines)
	return res, nil
}

func (r *Reader) reject(rej Rejection) {
	r.opts.Logger.Debug("rejected line", "line", rej.Line, "text", rej.Text, "err", rej.Err)
	if r.opts.OnReject != nil {
		r.opts.OnReject(rej)
	}
}
