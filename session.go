// Package tuibox provides the terminal session lifecycle.
package tuibox

import (
	"fmt"
	"io"
	"os"
)

// Session owns the terminal for a sequence of render passes: raw mode,
// alternate screen, hidden cursor, and stdout/stderr capture, all
// restored by Close. The caller drives one balanced Start...End canvas
// cycle per frame and flushes it with Flush.
type Session struct {
	canvas   *Canvas
	renderer *Renderer
	capture  *LogCapture
	state    *State
	out      *os.File
	closed   bool
}

// NewSession prepares the terminal and returns a ready session. It
// fails if stdout is not a terminal.
func NewSession(stylesheet *Stylesheet) (*Session, error) {
	if !IsTerminal(Stdout()) {
		return nil, fmt.Errorf("stdout is not a terminal")
	}

	// Keep a handle on the real terminal before capture redirects os.Stdout.
	out := os.Stdout

	state, err := MakeRaw(Stdin())
	if err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}

	capture := NewLogCapture(0)
	if err := capture.Start(); err != nil {
		Restore(Stdin(), state)
		return nil, err
	}

	io.WriteString(out, EnterAltScreen())
	io.WriteString(out, HideCursor())
	io.WriteString(out, ClearScreen())

	return &Session{
		canvas:   NewCanvas(stylesheet),
		renderer: NewRenderer(Options{Output: out}),
		capture:  capture,
		state:    state,
		out:      out,
	}, nil
}

// Canvas returns the session's canvas.
func (s *Session) Canvas() *Canvas {
	return s.canvas
}

// Size returns the current physical terminal size, refreshed from the
// terminal on every call so resize events are picked up at the next
// frame.
func (s *Session) Size() Size {
	w, h, err := GetSize(int(s.out.Fd()))
	if err != nil {
		return s.renderer.Size()
	}
	size := Size{Width: w, Height: h}
	if size != s.renderer.Size() {
		s.renderer.Resize(size)
	}
	return size
}

// Flush renders the canvas's recorded ops for the frame the caller just
// closed with End.
func (s *Session) Flush() error {
	return s.renderer.RenderCanvas(s.canvas)
}

// Close restores the terminal and replays any captured log lines to
// stderr, where they are visible again.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	io.WriteString(s.out, ShowCursor())
	io.WriteString(s.out, ExitAltScreen())

	s.capture.Stop()
	err := Restore(Stdin(), s.state)
	s.capture.Replay(os.Stderr)
	return err
}
