// Package tuibox provides ANSI escape code generation for terminal output.
package tuibox

import (
	"strconv"
	"strings"
)

const (
	ESC = "\x1b"
	CSI = ESC + "["
)

// Pre-computed ANSI escape sequences
const (
	csiStr    = "\x1b["
	resetStr  = "\x1b[0m"
	boldStr   = "\x1b[1m"
	italicStr = "\x1b[3m"
	underStr  = "\x1b[4m"
)

// MoveCursor returns the ANSI code to move the cursor to (x, y).
// ANSI uses 1-based coordinates.
func MoveCursor(x, y int) string {
	return csiStr + strconv.Itoa(y+1) + ";" + strconv.Itoa(x+1) + "H"
}

// HideCursor returns the ANSI code to hide the cursor.
func HideCursor() string {
	return CSI + "?25l"
}

// ShowCursor returns the ANSI code to show the cursor.
func ShowCursor() string {
	return CSI + "?25h"
}

// ClearScreen returns the ANSI code to clear the screen.
func ClearScreen() string {
	return CSI + "2J" + CSI + "H"
}

// EnterAltScreen returns the ANSI code to switch to the alternate screen.
func EnterAltScreen() string {
	return CSI + "?1049h"
}

// ExitAltScreen returns the ANSI code to switch back from the alternate screen.
func ExitAltScreen() string {
	return CSI + "?1049l"
}

// Foreground color ANSI codes indexed by Color
var fgCodes = [...]string{
	ColorNone:    "",
	ColorDefault: "\x1b[39m",
	ColorBlack:   "\x1b[30m",
	ColorRed:     "\x1b[31m",
	ColorGreen:   "\x1b[32m",
	ColorYellow:  "\x1b[33m",
	ColorBlue:    "\x1b[34m",
	ColorMagenta: "\x1b[35m",
	ColorCyan:    "\x1b[36m",
	ColorWhite:   "\x1b[37m",
}

// Background color ANSI codes indexed by Color
var bgCodes = [...]string{
	ColorNone:    "",
	ColorDefault: "\x1b[49m",
	ColorBlack:   "\x1b[40m",
	ColorRed:     "\x1b[41m",
	ColorGreen:   "\x1b[42m",
	ColorYellow:  "\x1b[43m",
	ColorBlue:    "\x1b[44m",
	ColorMagenta: "\x1b[45m",
	ColorCyan:    "\x1b[46m",
	ColorWhite:   "\x1b[47m",
}

// ColorToAnsi converts a Color to ANSI escape code.
func ColorToAnsi(color Color, rgb *RGB, isFg bool) string {
	// RGB takes precedence
	if rgb != nil {
		if isFg {
			return csiStr + "38;2;" + strconv.Itoa(int(rgb.R)) + ";" + strconv.Itoa(int(rgb.G)) + ";" + strconv.Itoa(int(rgb.B)) + "m"
		}
		return csiStr + "48;2;" + strconv.Itoa(int(rgb.R)) + ";" + strconv.Itoa(int(rgb.G)) + ";" + strconv.Itoa(int(rgb.B)) + "m"
	}

	if int(color) < len(fgCodes) {
		if isFg {
			return fgCodes[color]
		}
		return bgCodes[color]
	}
	return ""
}

// StyleToAnsi generates ANSI codes for a style, writing directly to builder.
func StyleToAnsi(style *Style, sb *strings.Builder) {
	attrs := style.Attrs()
	if attrs&AttrBold != 0 {
		sb.WriteString(boldStr)
	}
	if attrs&AttrItalic != 0 {
		sb.WriteString(italicStr)
	}
	if attrs&AttrUnderline != 0 {
		sb.WriteString(underStr)
	}
	if style.HasColor() {
		sb.WriteString(ColorToAnsi(style.Color, style.ColorRGB, true))
	}
	if style.HasBackground() {
		sb.WriteString(ColorToAnsi(style.Background, style.BackgroundRGB, false))
	}
}

// CellRun represents a run of consecutive changed cells on one row.
type CellRun struct {
	X     int
	Y     int
	Cells []Cell
}

// RunToAnsi renders a run of cells to ANSI, writing directly to builder.
// A reset + style sequence is emitted only when the style changes
// between consecutive cells.
func RunToAnsi(run CellRun, sb *strings.Builder) {
	sb.WriteString(MoveCursor(run.X, run.Y))

	var currentStyle *Style
	for i := range run.Cells {
		c := &run.Cells[i]
		if currentStyle == nil || !currentStyle.Equal(c.Style) {
			sb.WriteString(resetStr)
			StyleToAnsi(&c.Style, sb)
			currentStyle = &c.Style
		}
		sb.WriteRune(c.Char)
	}
}

// RunsToAnsi renders all runs to a single ANSI string, ending with a
// reset so stray attributes never leak past the frame.
func RunsToAnsi(runs []CellRun) string {
	if len(runs) == 0 {
		return ""
	}

	var sb strings.Builder
	totalCells := 0
	for _, run := range runs {
		totalCells += len(run.Cells)
	}
	sb.Grow(totalCells * 20)

	for _, run := range runs {
		RunToAnsi(run, &sb)
	}
	sb.WriteString(resetStr)
	return sb.String()
}
