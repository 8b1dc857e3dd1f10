// Package tuibox provides the renderer consuming canvas print directives.
package tuibox

import (
	"io"
	"os"
)

// Options configures a Renderer. Zero width/height auto-detect from the
// terminal (falling back to 80x24); nil Output defaults to stdout.
type Options struct {
	Width  int
	Height int
	Output io.Writer
}

// Renderer turns a canvas session's print directives into ANSI output.
//
// It holds two cell buffers: the frame currently on screen and the one
// being built. Each Render draws the ops into the next buffer, diffs it
// against the current one, and writes only the changed runs. The first
// frame is painted in full.
type Renderer struct {
	width, height int
	output        io.Writer
	current       *CellBuffer
	next          *CellBuffer
	isFirstRender bool
}

// NewRenderer creates a renderer from options.
func NewRenderer(opts Options) *Renderer {
	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	width, height := opts.Width, opts.Height
	if width == 0 || height == 0 {
		if tw, th, err := GetSize(Stdout()); err == nil {
			if width == 0 {
				width = tw
			}
			if height == 0 {
				height = th
			}
		}
	}
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	return &Renderer{
		width:         width,
		height:        height,
		output:        output,
		current:       NewCellBuffer(width, height),
		next:          NewCellBuffer(width, height),
		isFirstRender: true,
	}
}

// Size returns the renderer's grid size.
func (r *Renderer) Size() Size {
	return Size{Width: r.width, Height: r.height}
}

// Render draws one frame's print directives and flushes the difference
// from the previous frame to the output. An unchanged frame writes
// nothing.
func (r *Renderer) Render(ops []PrintOp) error {
	r.next.Clear()
	for _, op := range ops {
		r.next.WriteString(op.Pos.X, op.Pos.Y, op.Text, op.Style)
	}

	var runs []CellRun
	if r.isFirstRender {
		runs = FullRuns(r.next)
		r.isFirstRender = false
	} else {
		runs = DiffRuns(r.current, r.next)
	}

	if len(runs) > 0 {
		if _, err := io.WriteString(r.output, RunsToAnsi(runs)); err != nil {
			return err
		}
	}

	// Swap buffers; next frame draws over the old current.
	r.current, r.next = r.next, r.current
	return nil
}

// RenderCanvas is a convenience that flushes a canvas's recorded ops.
// The canvas session must already have been closed with End.
func (r *Renderer) RenderCanvas(c *Canvas) error {
	return r.Render(c.Ops())
}

// Resize replaces both buffers with freshly sized ones and forces the
// next frame to paint in full. Driven by the caller's resize events.
func (r *Renderer) Resize(size Size) {
	r.width = size.Width
	r.height = size.Height
	r.current = NewCellBuffer(size.Width, size.Height)
	r.next = NewCellBuffer(size.Width, size.Height)
	r.isFirstRender = true
}
