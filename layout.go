// Package tuibox provides the nested box-model layout engine for terminal UI.
package tuibox

import "fmt"

// Direction specifies the flow axis of a box: how its children are
// placed within it, and how its own printed content advances.
type Direction string

const (
	Horizontal Direction = "horizontal"
	Vertical   Direction = "vertical"
)

// Layout is one rectangular region of the terminal grid.
//
// Origin and Bounds are resolved once at creation (from the parent's
// layout cursor and bounds); the two cursors mutate while the layout is
// the top of the canvas stack. LayoutCursor tracks where the next
// sibling box will be placed, ContentCursor where the next printed
// fragment will be placed.
type Layout struct {
	ID        string
	Dir       Direction
	Origin    Position
	Bounds    Size
	Requested RequestedSizePercent

	LayoutCursor  Position
	ContentCursor Position

	// Style is the box's resolved style, cascaded from the stylesheet
	// ids given at StartLayout time. Zero value when none were given.
	Style Style
}

// newRootLayout creates the root layout for a canvas session. The
// physical canvas size is the base case: no resolution happens.
func newRootLayout(origin Position, canvasSize Size) Layout {
	return Layout{
		ID:            "root",
		Dir:           Horizontal,
		Origin:        origin,
		Bounds:        canvasSize,
		Requested:     FullSize,
		LayoutCursor:  origin,
		ContentCursor: origin,
	}
}

// newChildLayout creates a nested layout. Bounds resolve against the
// parent's bounds; the origin is the parent's current layout cursor, so
// siblings flow along the parent's direction instead of stacking at the
// parent's origin.
func newChildLayout(id string, dir Direction, requested RequestedSizePercent, parent *Layout, style Style) Layout {
	origin := parent.LayoutCursor
	bounds := requested.ResolveSize(parent.Bounds)

	// Margin insets where content starts; it does not change the box's
	// bounds or where siblings are placed.
	content := origin
	if m := style.MarginOr(0); m > 0 {
		content = content.Add(Size{Width: m, Height: m})
	}

	return Layout{
		ID:            id,
		Dir:           dir,
		Origin:        origin,
		Bounds:        bounds,
		Requested:     requested,
		LayoutCursor:  origin,
		ContentCursor: content,
		Style:         style,
	}
}

// advanceLayoutCursor moves the layout cursor past a just-closed child
// box, displaced along this layout's own direction.
func (l *Layout) advanceLayoutCursor(child Size) {
	if l.Dir == Horizontal {
		l.LayoutCursor = l.LayoutCursor.AddX(child.Width)
	} else {
		l.LayoutCursor = l.LayoutCursor.AddY(child.Height)
	}
}

// advanceContentCursor moves the content cursor past a printed fragment.
// Vertical flow advances one row per fragment; horizontal flow advances
// by the fragment's glyph width.
func (l *Layout) advanceContentCursor(fragmentWidth int) {
	if l.Dir == Horizontal {
		l.ContentCursor = l.ContentCursor.AddX(fragmentWidth)
	} else {
		l.ContentCursor = l.ContentCursor.AddY(1)
	}
}

// String returns a compact debug form of the layout.
func (l *Layout) String() string {
	return fmt.Sprintf("%s[%s] origin=%s bounds=%s layout=%s content=%s",
		l.ID, l.Dir, l.Origin, l.Bounds, l.LayoutCursor, l.ContentCursor)
}
