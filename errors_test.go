package tuibox

import (
	"errors"
	"testing"
)

func TestLayoutErrorKindString(t *testing.T) {
	tests := []struct {
		kind     LayoutErrorKind
		expected string
	}{
		{InvalidLayoutSizePercentage, "invalid layout size percentage"},
		{MismatchedStart, "mismatched start"},
		{MismatchedEnd, "mismatched end"},
		{LayoutStackUnderflow, "layout stack underflow"},
		{EmptyStyleID, "empty style id"},
		{DuplicateStyleID, "duplicate style id"},
		{LayoutErrorKind(99), "unknown layout error"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
	}
}

func TestLayoutErrorIs(t *testing.T) {
	err := newLayoutError(MismatchedEnd, 3, "end called with %d layouts still open", 3)

	if !errors.Is(err, &LayoutError{Kind: MismatchedEnd}) {
		t.Error("expected kind match")
	}
	if errors.Is(err, &LayoutError{Kind: MismatchedStart}) {
		t.Error("different kinds must not match")
	}
	if errors.Is(err, errors.New("other")) {
		t.Error("foreign errors must not match")
	}

	var le *LayoutError
	if !errors.As(err, &le) {
		t.Fatal("expected errors.As to extract LayoutError")
	}
	if le.Depth != 3 {
		t.Errorf("expected depth 3, got %d", le.Depth)
	}
}
