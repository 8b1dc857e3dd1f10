// Package tuibox provides the typed error taxonomy for layout operations.
package tuibox

import "fmt"

// LayoutErrorKind identifies the class of layout failure.
type LayoutErrorKind int

const (
	// InvalidLayoutSizePercentage reports a requested percentage outside [0, 100].
	InvalidLayoutSizePercentage LayoutErrorKind = iota
	// MismatchedStart reports Start while a session is open, or a nested
	// operation (StartLayout, Print) while no session is open.
	MismatchedStart
	// MismatchedEnd reports End while more than one layout remains on the stack.
	MismatchedEnd
	// LayoutStackUnderflow reports EndLayout when it would pop the root.
	LayoutStackUnderflow
	// EmptyStyleID reports a style registered without an id.
	EmptyStyleID
	// DuplicateStyleID reports a style id registered twice.
	DuplicateStyleID
)

var layoutErrorKindNames = [...]string{
	InvalidLayoutSizePercentage: "invalid layout size percentage",
	MismatchedStart:             "mismatched start",
	MismatchedEnd:               "mismatched end",
	LayoutStackUnderflow:        "layout stack underflow",
	EmptyStyleID:                "empty style id",
	DuplicateStyleID:            "duplicate style id",
}

// String returns the kind's human-readable name.
func (k LayoutErrorKind) String() string {
	if int(k) < len(layoutErrorKindNames) {
		return layoutErrorKindNames[k]
	}
	return "unknown layout error"
}

// LayoutError is the error type returned by every fallible layout
// operation. Depth is the stack depth at the time of failure, for the
// kinds where it aids diagnosis.
type LayoutError struct {
	Kind  LayoutErrorKind
	Depth int
	Msg   string
}

// Error implements the error interface.
func (e *LayoutError) Error() string {
	return e.Msg
}

// Is reports kind equality, so callers can match with
// errors.Is(err, &LayoutError{Kind: MismatchedEnd}).
func (e *LayoutError) Is(target error) bool {
	t, ok := target.(*LayoutError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// newLayoutError creates a LayoutError with a formatted message.
func newLayoutError(kind LayoutErrorKind, depth int, format string, args ...any) *LayoutError {
	return &LayoutError{
		Kind:  kind,
		Depth: depth,
		Msg:   fmt.Sprintf(format, args...),
	}
}

// IsLayoutError returns the LayoutError and true if err is one.
func IsLayoutError(err error) (*LayoutError, bool) {
	le, ok := err.(*LayoutError)
	return le, ok
}
