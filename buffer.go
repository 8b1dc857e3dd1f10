// Package tuibox provides the cell buffer backing the renderer.
package tuibox

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// CellBuffer is a fixed-size 2D grid of cells representing the terminal
// screen. This is the unit the frame differ works on.
type CellBuffer struct {
	width, height int
	cells         []Cell
}

// NewCellBuffer creates a new buffer filled with empty cells.
func NewCellBuffer(width, height int) *CellBuffer {
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = EmptyCell
	}
	return &CellBuffer{
		width:  width,
		height: height,
		cells:  cells,
	}
}

func (b *CellBuffer) index(x, y int) int {
	return y*b.width + x
}

func (b *CellBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Width returns the buffer width.
func (b *CellBuffer) Width() int { return b.width }

// Height returns the buffer height.
func (b *CellBuffer) Height() int { return b.height }

// Get returns the cell at (x, y), or EmptyCell if out of bounds.
func (b *CellBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return EmptyCell
	}
	return b.cells[b.index(x, y)]
}

// Set sets the cell at (x, y). Does nothing if out of bounds.
func (b *CellBuffer) Set(x, y int, c Cell) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[b.index(x, y)] = c
}

// SetChar sets a character with style at (x, y).
func (b *CellBuffer) SetChar(x, y int, char rune, style Style) {
	b.Set(x, y, NewCell(char, style))
}

// SetCharCascade sets a character, cascading the new style over the
// cell's existing one so earlier background fills show through text
// drawn on top of them.
func (b *CellBuffer) SetCharCascade(x, y int, char rune, style Style) {
	if !b.inBounds(x, y) {
		return
	}
	existing := b.Get(x, y)
	b.Set(x, y, NewCell(char, Cascade(existing.Style, style)))
}

// WriteString writes a string starting at (x, y), going right, advancing
// by glyph width. Text is clipped at the buffer edge. Returns the column
// after the last written glyph.
func (b *CellBuffer) WriteString(x, y int, text string, style Style) int {
	col := x
	if y < 0 || y >= b.height {
		return col
	}
	for _, char := range text {
		if col >= b.width {
			break
		}
		if col >= 0 {
			b.SetCharCascade(col, y, char, style)
		}
		col += runewidth.RuneWidth(char)
	}
	return col
}

// Clear resets the entire buffer to empty cells.
func (b *CellBuffer) Clear() {
	for i := range b.cells {
		b.cells[i] = EmptyCell
	}
}

// ToDebugString returns the buffer's characters row by row, for tests
// and debugging.
func (b *CellBuffer) ToDebugString() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < b.width; x++ {
			sb.WriteRune(b.Get(x, y).Char)
		}
	}
	return sb.String()
}
