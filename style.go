// Package tuibox provides the cascading style model.
package tuibox

// Attr is a bitflag summary of a style's boolean attributes, used for
// cheap comparison in the render hot path.
type Attr uint8

const (
	// AttrNone represents no text attributes.
	AttrNone Attr = 0
	// AttrBold makes text bold/bright.
	AttrBold Attr = 1 << iota
	// AttrItalic makes text italic.
	AttrItalic
	// AttrUnderline underlines the text.
	AttrUnderline
)

// Style holds the visual attributes of a box or text fragment.
//
// A Style is either authored once (given an ID and registered in a
// Stylesheet) or produced transiently by Cascade, in which case it has an
// empty ID and Computed set. The Attr summary is cached lazily; code that
// writes fields directly instead of going through the Set* methods must
// call Invalidate afterwards.
type Style struct {
	ID string

	Bold      bool
	Italic    bool
	Underline bool

	Color         Color
	Background    Color
	ColorRGB      *RGB
	BackgroundRGB *RGB

	// Margin insets the box's content cursor on both axes.
	// nil means "not set" and lets a base style's margin through Cascade.
	Margin *int

	// Computed is true once the style was produced by Cascade rather
	// than authored directly.
	Computed bool

	attrs *Attr // lazy bitflag cache, nil until first read
}

// EmptyStyle is a Style with no attributes set.
var EmptyStyle = Style{}

// Attrs returns the bitflag summary of the boolean attributes,
// computing and caching it on first read.
func (s *Style) Attrs() Attr {
	if s.attrs != nil {
		return *s.attrs
	}
	a := s.computeAttrs()
	s.attrs = &a
	return a
}

func (s *Style) computeAttrs() Attr {
	a := AttrNone
	if s.Bold {
		a |= AttrBold
	}
	if s.Italic {
		a |= AttrItalic
	}
	if s.Underline {
		a |= AttrUnderline
	}
	return a
}

// Invalidate drops the cached attribute summary. Required after writing
// exported fields directly.
func (s *Style) Invalidate() {
	s.attrs = nil
}

// SetBold sets the bold flag and invalidates the attribute cache.
func (s *Style) SetBold(v bool) {
	s.Bold = v
	s.attrs = nil
}

// SetItalic sets the italic flag and invalidates the attribute cache.
func (s *Style) SetItalic(v bool) {
	s.Italic = v
	s.attrs = nil
}

// SetUnderline sets the underline flag and invalidates the attribute cache.
func (s *Style) SetUnderline(v bool) {
	s.Underline = v
	s.attrs = nil
}

// SetMargin sets the margin and invalidates the attribute cache.
func (s *Style) SetMargin(n int) {
	m := n
	s.Margin = &m
	s.attrs = nil
}

// HasColor returns true if the style has a foreground color set.
func (s Style) HasColor() bool {
	return s.Color != ColorNone || s.ColorRGB != nil
}

// HasBackground returns true if the style has a background color set.
func (s Style) HasBackground() bool {
	return s.Background != ColorNone || s.BackgroundRGB != nil
}

// MarginOr returns the margin, or def when unset.
func (s Style) MarginOr(def int) int {
	if s.Margin == nil {
		return def
	}
	return *s.Margin
}

// Equal returns true if two Styles carry the same visual attributes.
// The ID, Computed flag, and attribute cache are ignored.
func (a Style) Equal(b Style) bool {
	if a.Color != b.Color || a.Background != b.Background {
		return false
	}
	if a.Bold != b.Bold || a.Italic != b.Italic || a.Underline != b.Underline {
		return false
	}
	if !rgbEqual(a.ColorRGB, b.ColorRGB) {
		return false
	}
	if !rgbEqual(a.BackgroundRGB, b.BackgroundRGB) {
		return false
	}
	if (a.Margin == nil) != (b.Margin == nil) {
		return false
	}
	if a.Margin != nil && *a.Margin != *b.Margin {
		return false
	}
	return true
}

// Cascade combines two styles, with override winning per-attribute.
//
// Optional attributes (colors, margin) take override's value when set,
// else base's. Boolean flags only turn on: there is no "unset" state for
// them, so a flag set by either input stays set. The result is a
// computed style (empty ID, Computed true) and its attribute summary is
// recomputed eagerly, since cascading is the hot path before render.
//
// Cascade is associative but not commutative; callers must cascade in
// least-specific-first order (stylesheet default, then box style, then
// inline style).
func Cascade(base, override Style) Style {
	result := base
	result.ID = ""
	result.Computed = true

	if override.HasColor() {
		result.Color = override.Color
		result.ColorRGB = override.ColorRGB
	}
	if override.HasBackground() {
		result.Background = override.Background
		result.BackgroundRGB = override.BackgroundRGB
	}
	if override.Margin != nil {
		m := *override.Margin
		result.Margin = &m
	}
	if override.Bold {
		result.Bold = true
	}
	if override.Italic {
		result.Italic = true
	}
	if override.Underline {
		result.Underline = true
	}

	a := result.computeAttrs()
	result.attrs = &a
	return result
}
