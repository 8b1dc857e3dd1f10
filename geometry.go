// Package tuibox provides geometry primitives for the character grid.
package tuibox

import "fmt"

// Position is an absolute character-grid coordinate.
// The origin (0, 0) is the top-left corner of the canvas.
type Position struct {
	X int
	Y int
}

// Add returns the position translated by a size.
func (p Position) Add(s Size) Position {
	return Position{X: p.X + s.Width, Y: p.Y + s.Height}
}

// AddX returns the position moved right by dx columns.
func (p Position) AddX(dx int) Position {
	return Position{X: p.X + dx, Y: p.Y}
}

// AddY returns the position moved down by dy rows.
func (p Position) AddY(dy int) Position {
	return Position{X: p.X, Y: p.Y + dy}
}

// String returns the position as "(x, y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Size is an absolute character-grid extent. Both dimensions are
// non-negative; arithmetic that could underflow must be guarded by the
// caller (see Contains).
type Size struct {
	Width  int
	Height int
}

// Contains returns true if the other size fits inside this one.
// Callers use this as the underflow guard before subtracting extents.
func (s Size) Contains(other Size) bool {
	return other.Width <= s.Width && other.Height <= s.Height
}

// IsZero returns true if either dimension is zero.
func (s Size) IsZero() bool {
	return s.Width == 0 || s.Height == 0
}

// String returns the size as "width x height".
func (s Size) String() string {
	return fmt.Sprintf("%d x %d", s.Width, s.Height)
}

// Percent is a bounded integer percentage in [0, 100], validated at
// construction. The zero value is 0%.
type Percent struct {
	value int
}

// NewPercent validates and wraps a raw integer percentage.
// Values outside [0, 100] fail with InvalidLayoutSizePercentage.
func NewPercent(raw int) (Percent, error) {
	if raw < 0 || raw > 100 {
		return Percent{}, newLayoutError(InvalidLayoutSizePercentage, 0,
			"invalid layout size percentage: %d (must be in [0, 100])", raw)
	}
	return Percent{value: raw}, nil
}

// MustPercent is NewPercent for literals; it panics on invalid input.
func MustPercent(raw int) Percent {
	p, err := NewPercent(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// Value returns the raw percentage.
func (p Percent) Value() int {
	return p.value
}

// Of resolves the percentage against a base length using integer
// truncation, so descendant extents can never round up past their
// parent's resolved extent.
func (p Percent) Of(base int) int {
	return p.value * base / 100
}

// String returns the percentage as "n%".
func (p Percent) String() string {
	return fmt.Sprintf("%d%%", p.value)
}

// RequestedSizePercent is a caller's requested box size, as a percentage
// of the parent's resolved bounds per dimension.
type RequestedSizePercent struct {
	Width  Percent
	Height Percent
}

// NewRequestedSizePercent validates a width/height percentage pair.
// If either value is out of range the error reports both, so a bad
// literal is diagnosable without re-running.
func NewRequestedSizePercent(width, height int) (RequestedSizePercent, error) {
	w, werr := NewPercent(width)
	h, herr := NewPercent(height)
	if werr != nil || herr != nil {
		return RequestedSizePercent{}, newLayoutError(InvalidLayoutSizePercentage, 0,
			"invalid layout size percentage pair: width=%d, height=%d (each must be in [0, 100])",
			width, height)
	}
	return RequestedSizePercent{Width: w, Height: h}, nil
}

// MustRequestedSizePercent is NewRequestedSizePercent for literals; it
// panics on invalid input.
func MustRequestedSizePercent(width, height int) RequestedSizePercent {
	r, err := NewRequestedSizePercent(width, height)
	if err != nil {
		panic(err)
	}
	return r
}

// FullSize is the 100% x 100% request used for root layouts.
var FullSize = RequestedSizePercent{
	Width:  Percent{value: 100},
	Height: Percent{value: 100},
}

// ResolveSize applies the requested percentages to a base size,
// dimension by dimension.
func (r RequestedSizePercent) ResolveSize(base Size) Size {
	return Size{
		Width:  r.Width.Of(base.Width),
		Height: r.Height.Of(base.Height),
	}
}

// String returns the pair as "w% x h%".
func (r RequestedSizePercent) String() string {
	return fmt.Sprintf("%s x %s", r.Width, r.Height)
}
