package tuibox

import (
	"errors"
	"strings"
	"testing"
)

func TestCanvasExampleScenario(t *testing.T) {
	c := NewCanvas(nil)

	if err := c.Start(Position{}, Size{Width: 500, Height: 500}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := c.StartLayout("container", Horizontal, MustRequestedSizePercent(100, 100)); err != nil {
		t.Fatalf("start container: %v", err)
	}
	if err := c.StartLayout("col1", Vertical, MustRequestedSizePercent(50, 100)); err != nil {
		t.Fatalf("start col1: %v", err)
	}
	if err := c.Print("Hello"); err != nil {
		t.Fatalf("print: %v", err)
	}
	if err := c.EndLayout(); err != nil {
		t.Fatalf("end col1: %v", err)
	}

	if err := c.StartLayout("col2", Vertical, MustRequestedSizePercent(50, 100)); err != nil {
		t.Fatalf("start col2: %v", err)
	}
	col2, ok := c.Top()
	if !ok {
		t.Fatal("expected an open layout")
	}
	if col2.Origin != (Position{X: 250, Y: 0}) {
		t.Errorf("expected col2 origin (250, 0), got %v", col2.Origin)
	}
	if col2.Bounds != (Size{Width: 250, Height: 500}) {
		t.Errorf("expected col2 bounds 250x500, got %v", col2.Bounds)
	}

	if err := c.EndLayout(); err != nil {
		t.Fatalf("end col2: %v", err)
	}
	if err := c.EndLayout(); err != nil {
		t.Fatalf("end container: %v", err)
	}
	if err := c.End(); err != nil {
		t.Fatalf("end: %v", err)
	}
	if c.Depth() != 0 {
		t.Errorf("expected empty stack after end, depth %d", c.Depth())
	}

	ops := c.Ops()
	if len(ops) != 1 {
		t.Fatalf("expected 1 print op, got %d", len(ops))
	}
	if ops[0].Text != "Hello" || ops[0].Pos != (Position{X: 0, Y: 0}) {
		t.Errorf("unexpected op: %+v", ops[0])
	}
}

func TestSiblingPlacement(t *testing.T) {
	// Horizontal root of width 100: second 50% child starts where the
	// first one ends.
	c := NewCanvas(nil)
	if err := c.Start(Position{}, Size{Width: 100, Height: 10}); err != nil {
		t.Fatal(err)
	}

	if err := c.StartLayout("a", Vertical, MustRequestedSizePercent(50, 100)); err != nil {
		t.Fatal(err)
	}
	first, _ := c.Top()
	if err := c.EndLayout(); err != nil {
		t.Fatal(err)
	}

	if err := c.StartLayout("b", Vertical, MustRequestedSizePercent(50, 100)); err != nil {
		t.Fatal(err)
	}
	second, _ := c.Top()

	expected := first.Origin.X + first.Bounds.Width
	if second.Origin.X != expected {
		t.Errorf("expected second child at x=%d, got %d", expected, second.Origin.X)
	}
	if second.Origin.X != 50 {
		t.Errorf("expected second child at x=50, got %d", second.Origin.X)
	}
}

func TestVerticalSiblingPlacement(t *testing.T) {
	c := NewCanvas(nil)
	if err := c.Start(Position{}, Size{Width: 80, Height: 40}); err != nil {
		t.Fatal(err)
	}
	if err := c.StartLayout("rows", Vertical, MustRequestedSizePercent(100, 100)); err != nil {
		t.Fatal(err)
	}

	if err := c.StartLayout("top", Horizontal, MustRequestedSizePercent(100, 25)); err != nil {
		t.Fatal(err)
	}
	if err := c.EndLayout(); err != nil {
		t.Fatal(err)
	}
	if err := c.StartLayout("bottom", Horizontal, MustRequestedSizePercent(100, 75)); err != nil {
		t.Fatal(err)
	}
	bottom, _ := c.Top()
	if bottom.Origin != (Position{X: 0, Y: 10}) {
		t.Errorf("expected bottom origin (0, 10), got %v", bottom.Origin)
	}
	if bottom.Bounds != (Size{Width: 80, Height: 30}) {
		t.Errorf("expected bottom bounds 80x30, got %v", bottom.Bounds)
	}
}

func TestBalancedNestingRoundTrip(t *testing.T) {
	c := NewCanvas(nil)
	if err := c.Start(Position{}, Size{Width: 100, Height: 100}); err != nil {
		t.Fatal(err)
	}
	before := c.Depth()

	full := MustRequestedSizePercent(100, 100)
	for _, id := range []string{"a", "b", "c"} {
		if err := c.StartLayout(id, Vertical, full); err != nil {
			t.Fatalf("start %s: %v", id, err)
		}
	}
	for i := 0; i < 3; i++ {
		if err := c.EndLayout(); err != nil {
			t.Fatalf("end %d: %v", i, err)
		}
	}

	if c.Depth() != before {
		t.Errorf("expected depth %d after balanced sequence, got %d", before, c.Depth())
	}
}

func TestCanvasErrors(t *testing.T) {
	full := MustRequestedSizePercent(100, 100)

	tests := []struct {
		name string
		run  func(c *Canvas) error
		kind LayoutErrorKind
	}{
		{
			name: "start while open",
			run: func(c *Canvas) error {
				c.Start(Position{}, Size{Width: 10, Height: 10})
				return c.Start(Position{}, Size{Width: 10, Height: 10})
			},
			kind: MismatchedStart,
		},
		{
			name: "start_layout before start",
			run: func(c *Canvas) error {
				return c.StartLayout("orphan", Vertical, full)
			},
			kind: MismatchedStart,
		},
		{
			name: "print before start",
			run: func(c *Canvas) error {
				return c.Print("hello")
			},
			kind: MismatchedStart,
		},
		{
			name: "end_layout on root",
			run: func(c *Canvas) error {
				c.Start(Position{}, Size{Width: 10, Height: 10})
				return c.EndLayout()
			},
			kind: LayoutStackUnderflow,
		},
		{
			name: "end_layout on empty stack",
			run: func(c *Canvas) error {
				return c.EndLayout()
			},
			kind: LayoutStackUnderflow,
		},
		{
			name: "end with open layout",
			run: func(c *Canvas) error {
				c.Start(Position{}, Size{Width: 10, Height: 10})
				c.StartLayout("open", Vertical, full)
				return c.End()
			},
			kind: MismatchedEnd,
		},
		{
			name: "end on empty stack",
			run: func(c *Canvas) error {
				return c.End()
			},
			kind: MismatchedEnd,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run(NewCanvas(nil))
			if err == nil {
				t.Fatal("expected error, got none")
			}
			if !errors.Is(err, &LayoutError{Kind: tt.kind}) {
				t.Errorf("expected kind %v, got %v", tt.kind, err)
			}
		})
	}
}

func TestMismatchedEndReportsDepth(t *testing.T) {
	c := NewCanvas(nil)
	c.Start(Position{}, Size{Width: 10, Height: 10})
	c.StartLayout("a", Vertical, MustRequestedSizePercent(100, 100))
	c.StartLayout("b", Vertical, MustRequestedSizePercent(100, 100))

	err := c.End()
	le, ok := IsLayoutError(err)
	if !ok {
		t.Fatalf("expected LayoutError, got %T", err)
	}
	if le.Depth != 3 {
		t.Errorf("expected depth 3 in error, got %d", le.Depth)
	}
	if !strings.Contains(le.Error(), "3") {
		t.Errorf("expected depth in message, got %q", le.Error())
	}
}

func TestPrintAdvancesVertically(t *testing.T) {
	c := NewCanvas(nil)
	c.Start(Position{}, Size{Width: 80, Height: 24})
	c.StartLayout("list", Vertical, MustRequestedSizePercent(100, 100))

	c.Print("one", "two", "three")

	top, _ := c.Top()
	if top.ContentCursor != (Position{X: 0, Y: 3}) {
		t.Errorf("expected content cursor (0, 3), got %v", top.ContentCursor)
	}

	ops := c.Ops()
	if len(ops) != 3 {
		t.Fatalf("expected 3 ops, got %d", len(ops))
	}
	for i, op := range ops {
		if op.Pos != (Position{X: 0, Y: i}) {
			t.Errorf("op %d: expected position (0, %d), got %v", i, i, op.Pos)
		}
	}
}

func TestPrintAdvancesHorizontally(t *testing.T) {
	c := NewCanvas(nil)
	c.Start(Position{}, Size{Width: 80, Height: 24})
	c.StartLayout("row", Horizontal, MustRequestedSizePercent(100, 100))

	// "世界" occupies two columns per glyph
	c.Print("ab", "世界", "c")

	ops := c.Ops()
	if len(ops) != 3 {
		t.Fatalf("expected 3 ops, got %d", len(ops))
	}
	if ops[1].Pos != (Position{X: 2, Y: 0}) {
		t.Errorf("expected second op at (2, 0), got %v", ops[1].Pos)
	}
	if ops[2].Pos != (Position{X: 6, Y: 0}) {
		t.Errorf("expected third op at (6, 0), got %v", ops[2].Pos)
	}
}

func TestStartLayoutResolvesStyles(t *testing.T) {
	ss := NewStylesheet()
	if err := ss.AddStyles(
		Style{ID: "base", Color: ColorRed},
		Style{ID: "emphasis", Bold: true},
	); err != nil {
		t.Fatal(err)
	}

	c := NewCanvas(ss)
	c.Start(Position{}, Size{Width: 80, Height: 24})
	c.StartLayout("panel", Vertical, MustRequestedSizePercent(100, 100), "base", "emphasis")
	c.Print("styled")

	ops := c.Ops()
	if len(ops) != 1 {
		t.Fatalf("expected 1 op, got %d", len(ops))
	}
	if ops[0].Style.Color != ColorRed || !ops[0].Style.Bold {
		t.Errorf("expected cascaded red+bold style, got %+v", ops[0].Style)
	}
	if !ops[0].Style.Computed {
		t.Error("expected cascaded style to be marked computed")
	}
}

func TestMarginInsetsContentCursor(t *testing.T) {
	ss := NewStylesheet()
	margin := Style{ID: "padded"}
	margin.SetMargin(2)
	if err := ss.AddStyle(margin); err != nil {
		t.Fatal(err)
	}

	c := NewCanvas(ss)
	c.Start(Position{}, Size{Width: 80, Height: 24})
	c.StartLayout("panel", Vertical, MustRequestedSizePercent(100, 100), "padded")

	top, _ := c.Top()
	if top.ContentCursor != (Position{X: 2, Y: 2}) {
		t.Errorf("expected content cursor (2, 2), got %v", top.ContentCursor)
	}
	// Sibling placement is unaffected by margin
	if top.LayoutCursor != top.Origin {
		t.Errorf("expected layout cursor at origin, got %v", top.LayoutCursor)
	}
}

func TestNestedBoundsFitParent(t *testing.T) {
	// Floor rounding: descendants never exceed the parent's extent.
	c := NewCanvas(nil)
	c.Start(Position{}, Size{Width: 99, Height: 33})
	c.StartLayout("outer", Horizontal, MustRequestedSizePercent(100, 100))

	parent, _ := c.Top()
	widths := 0
	for _, pct := range []int{33, 33, 33} {
		if err := c.StartLayout("col", Vertical, MustRequestedSizePercent(pct, 100)); err != nil {
			t.Fatal(err)
		}
		child, _ := c.Top()
		if !parent.Bounds.Contains(child.Bounds) {
			t.Errorf("child bounds %v exceed parent %v", child.Bounds, parent.Bounds)
		}
		widths += child.Bounds.Width
		if err := c.EndLayout(); err != nil {
			t.Fatal(err)
		}
	}
	if widths > parent.Bounds.Width {
		t.Errorf("children total width %d exceeds parent %d", widths, parent.Bounds.Width)
	}
}

func TestCanvasReset(t *testing.T) {
	c := NewCanvas(nil)
	c.Start(Position{}, Size{Width: 10, Height: 10})
	c.StartLayout("a", Vertical, MustRequestedSizePercent(100, 100))
	c.Print("text")

	c.Reset()
	if c.Depth() != 0 {
		t.Errorf("expected empty stack after reset, depth %d", c.Depth())
	}
	if len(c.Ops()) != 0 {
		t.Errorf("expected no ops after reset, got %d", len(c.Ops()))
	}
	if err := c.Start(Position{}, Size{Width: 10, Height: 10}); err != nil {
		t.Errorf("start after reset should succeed, got %v", err)
	}
}

func TestSprintStack(t *testing.T) {
	c := NewCanvas(nil)

	if got := SprintStack(c); !strings.Contains(got, "empty") {
		t.Errorf("expected empty-stack marker, got %q", got)
	}

	c.Start(Position{}, Size{Width: 100, Height: 50})
	c.StartLayout("sidebar", Vertical, MustRequestedSizePercent(30, 100))

	got := SprintStack(c)
	if !strings.Contains(got, "root") || !strings.Contains(got, "sidebar") {
		t.Errorf("expected root and sidebar in dump, got %q", got)
	}
}
