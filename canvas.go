// Package tuibox provides the Canvas layout stack machine.
package tuibox

import "github.com/mattn/go-runewidth"

// PrintOp is one print directive: where a text fragment goes and in
// what resolved style. The renderer consumes the session's ops after
// End; emission of actual escape sequences happens there, not here.
type PrintOp struct {
	Pos   Position
	Style Style
	Text  string
}

// Canvas is the layout stack machine. A caller drives it through one
// balanced Start ... StartLayout* ... Print* ... EndLayout* ... End
// sequence per render pass; the stack must be empty again when the pass
// ends.
//
// The stack is an owned slice indexed by position. A Canvas is not
// synchronized: it belongs to exactly one render pass at a time.
type Canvas struct {
	stack      []Layout
	stylesheet *Stylesheet
	ops        []PrintOp
}

// NewCanvas creates a canvas backed by the given stylesheet. A nil
// stylesheet is replaced with an empty one.
func NewCanvas(stylesheet *Stylesheet) *Canvas {
	if stylesheet == nil {
		stylesheet = NewStylesheet()
	}
	return &Canvas{stylesheet: stylesheet}
}

// Stylesheet returns the canvas's stylesheet.
func (c *Canvas) Stylesheet() *Stylesheet {
	return c.stylesheet
}

// Depth returns the current nesting depth.
func (c *Canvas) Depth() int {
	return len(c.stack)
}

// top returns the innermost open layout. Callers must check depth first.
func (c *Canvas) top() *Layout {
	return &c.stack[len(c.stack)-1]
}

// Top returns a copy of the innermost open layout, if any.
func (c *Canvas) Top() (Layout, bool) {
	if len(c.stack) == 0 {
		return Layout{}, false
	}
	return c.stack[len(c.stack)-1], true
}

// Ops returns the print directives recorded since the last Start.
func (c *Canvas) Ops() []PrintOp {
	return c.ops
}

// Start opens a root session covering the physical canvas. It fails
// with MismatchedStart if a previous session is still open.
func (c *Canvas) Start(origin Position, canvasSize Size) error {
	if len(c.stack) != 0 {
		return newLayoutError(MismatchedStart, len(c.stack),
			"start called while a session is already open (depth %d)", len(c.stack))
	}
	c.ops = c.ops[:0]
	c.stack = append(c.stack, newRootLayout(origin, canvasSize))
	return nil
}

// StartLayout opens a nested box inside the innermost open layout.
//
// The new box's bounds resolve from the parent's bounds and the
// requested percentages; its origin is the parent's current layout
// cursor. Styles registered under the given ids are cascaded in order,
// least specific first, into the box's resolved style. Fails with
// MismatchedStart if no session is open.
func (c *Canvas) StartLayout(id string, dir Direction, requested RequestedSizePercent, styleIDs ...string) error {
	if len(c.stack) == 0 {
		return newLayoutError(MismatchedStart, 0,
			"start_layout %q called before start", id)
	}
	style, _ := c.stylesheet.ResolveStyles(styleIDs...)
	c.stack = append(c.stack, newChildLayout(id, dir, requested, c.top(), style))
	return nil
}

// Print records one print directive per fragment at the innermost
// layout's content cursor, advancing the cursor along the box's own
// flow direction: one row per fragment when vertical, the fragment's
// glyph width when horizontal. Fails with MismatchedStart if no session
// is open.
func (c *Canvas) Print(fragments ...string) error {
	if len(c.stack) == 0 {
		return newLayoutError(MismatchedStart, 0, "print called before start")
	}
	layout := c.top()
	for _, fragment := range fragments {
		c.ops = append(c.ops, PrintOp{
			Pos:   layout.ContentCursor,
			Style: layout.Style,
			Text:  fragment,
		})
		layout.advanceContentCursor(runewidth.StringWidth(fragment))
	}
	return nil
}

// EndLayout closes the innermost nested box and folds its resolved
// bounds into the parent's layout cursor, displaced along the parent's
// flow direction. Popping the root must go through End, so fewer than
// two open layouts fail with LayoutStackUnderflow.
func (c *Canvas) EndLayout() error {
	if len(c.stack) < 2 {
		return newLayoutError(LayoutStackUnderflow, len(c.stack),
			"end_layout would pop the root (depth %d)", len(c.stack))
	}
	popped := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.top().advanceLayoutCursor(popped.Bounds)
	return nil
}

// End closes the session. Exactly one layout (the root) must remain,
// otherwise the caller forgot an EndLayout and End fails with
// MismatchedEnd reporting the remaining depth.
func (c *Canvas) End() error {
	if len(c.stack) != 1 {
		return newLayoutError(MismatchedEnd, len(c.stack),
			"end called with %d layouts still open", len(c.stack))
	}
	c.stack = c.stack[:0]
	return nil
}

// Reset discards any open session and recorded ops. Intended for
// recovery after a layout error aborted a render pass, since a
// partially unwound stack would corrupt the next pass.
func (c *Canvas) Reset() {
	c.stack = c.stack[:0]
	c.ops = c.ops[:0]
}
