// Package tuibox provides the Cell type representing a terminal "pixel".
// Each Cell holds a character and its resolved styling attributes.
package tuibox

// Color represents terminal colors using a compact uint8 representation.
// Values 0-9 are named colors. RGB colors use a separate type.
type Color uint8

const (
	ColorNone    Color = iota // No color set (transparent)
	ColorDefault              // Terminal default
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// NameToColor converts a string color name to Color
var NameToColor = map[string]Color{
	"default": ColorDefault,
	"black":   ColorBlack,
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
}

// RGB represents a 24-bit true color.
// When used, the paired Color field should be left as ColorNone.
type RGB struct {
	R, G, B uint8
}

func rgbEqual(a, b *RGB) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.R == b.R && a.G == b.G && a.B == b.B
}

// Cell represents a single "pixel" in the terminal.
type Cell struct {
	Char  rune
	Style Style
}

// EmptyCell is a Cell with a space character and no styling.
var EmptyCell = Cell{Char: ' '}

// NewCell creates a new Cell with the given character and style.
func NewCell(char rune, style Style) Cell {
	return Cell{Char: char, Style: style}
}

// Equal returns true if two Cells are identical.
func (a Cell) Equal(b Cell) bool {
	if a.Char != b.Char {
		return false
	}
	return a.Style.Equal(b.Style)
}
