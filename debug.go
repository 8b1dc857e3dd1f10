package tuibox

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DebugStack prints the canvas's live layout stack to stdout for debugging.
func DebugStack(c *Canvas) {
	FprintStack(os.Stdout, c)
}

// SprintStack returns the canvas's layout stack as a string for debugging.
func SprintStack(c *Canvas) string {
	var sb strings.Builder
	FprintStack(&sb, c)
	return sb.String()
}

// FprintStack writes the layout stack to the given writer, outermost
// first, one indented line per open layout.
func FprintStack(w io.Writer, c *Canvas) {
	if len(c.stack) == 0 {
		fmt.Fprintln(w, "<empty stack>")
		return
	}
	for depth := range c.stack {
		indent := strings.Repeat("  ", depth)
		fmt.Fprintf(w, "%s%s\n", indent, c.stack[depth].String())
	}
}
