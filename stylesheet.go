// Package tuibox provides the Stylesheet registry.
package tuibox

// Stylesheet maps style ids to authored styles. Ids are unique;
// insertion order is irrelevant.
type Stylesheet struct {
	styles map[string]Style
}

// NewStylesheet creates an empty stylesheet.
func NewStylesheet() *Stylesheet {
	return &Stylesheet{styles: make(map[string]Style)}
}

// AddStyle registers an authored style under its ID. A style without an
// ID fails with EmptyStyleID; a style whose ID is already registered
// fails with DuplicateStyleID.
func (ss *Stylesheet) AddStyle(style Style) error {
	if style.ID == "" {
		return newLayoutError(EmptyStyleID, 0, "cannot add style with empty id")
	}
	if _, exists := ss.styles[style.ID]; exists {
		return newLayoutError(DuplicateStyleID, 0, "style id already registered: %q", style.ID)
	}
	ss.styles[style.ID] = style
	return nil
}

// AddStyles registers several styles, stopping at the first failure.
func (ss *Stylesheet) AddStyles(styles ...Style) error {
	for _, style := range styles {
		if err := ss.AddStyle(style); err != nil {
			return err
		}
	}
	return nil
}

// GetStyleByID looks up a style. A missing id is a normal outcome, not
// an error.
func (ss *Stylesheet) GetStyleByID(id string) (Style, bool) {
	style, ok := ss.styles[id]
	return style, ok
}

// ResolveStyles cascades the styles registered under the given ids, in
// order, least specific first. Unknown ids are skipped.
func (ss *Stylesheet) ResolveStyles(ids ...string) (Style, bool) {
	var resolved Style
	found := false
	for _, id := range ids {
		style, ok := ss.styles[id]
		if !ok {
			continue
		}
		if !found {
			resolved = style
			found = true
			continue
		}
		resolved = Cascade(resolved, style)
	}
	return resolved, found
}

// Len returns the number of registered styles.
func (ss *Stylesheet) Len() int {
	return len(ss.styles)
}
