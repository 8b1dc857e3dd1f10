// Package tuibox provides log capture for terminal sessions.
package tuibox

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// LogMessage is one line captured from stdout or stderr while a
// terminal session owned the screen.
type LogMessage struct {
	Timestamp time.Time
	Stream    string // "stdout" or "stderr"
	Message   string
}

// LogCapture redirects stdout and stderr to pipes for the duration of a
// raw-mode session, so stray prints (including stdlib log output) don't
// corrupt the character grid. Captured lines are buffered and can be
// replayed once the terminal is restored.
type LogCapture struct {
	mu          sync.Mutex
	messages    []LogMessage
	maxMessages int

	// Original stdout/stderr for restoration
	origStdout *os.File
	origStderr *os.File

	// Pipes for capturing
	stdoutReader *os.File
	stdoutWriter *os.File
	stderrReader *os.File
	stderrWriter *os.File

	wg      sync.WaitGroup
	started bool
}

// NewLogCapture creates a log capture buffering at most maxMessages
// lines (oldest dropped first). Non-positive means 1000.
func NewLogCapture(maxMessages int) *LogCapture {
	if maxMessages <= 0 {
		maxMessages = 1000
	}
	return &LogCapture{maxMessages: maxMessages}
}

// Start begins capturing stdout and stderr.
func (lc *LogCapture) Start() error {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	if lc.started {
		return nil
	}

	stdoutReader, stdoutWriter, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("failed to create stdout pipe: %w", err)
	}
	stderrReader, stderrWriter, err := os.Pipe()
	if err != nil {
		stdoutReader.Close()
		stdoutWriter.Close()
		return fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	lc.origStdout = os.Stdout
	lc.origStderr = os.Stderr
	lc.stdoutReader = stdoutReader
	lc.stdoutWriter = stdoutWriter
	lc.stderrReader = stderrReader
	lc.stderrWriter = stderrWriter

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	lc.wg.Add(2)
	go lc.readLoop(stdoutReader, "stdout")
	go lc.readLoop(stderrReader, "stderr")

	lc.started = true
	return nil
}

func (lc *LogCapture) readLoop(r *os.File, stream string) {
	defer lc.wg.Done()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lc.append(LogMessage{
			Timestamp: time.Now(),
			Stream:    stream,
			Message:   scanner.Text(),
		})
	}
}

func (lc *LogCapture) append(msg LogMessage) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	lc.messages = append(lc.messages, msg)
	if len(lc.messages) > lc.maxMessages {
		lc.messages = lc.messages[len(lc.messages)-lc.maxMessages:]
	}
}

// Stop restores stdout/stderr and drains the pipes.
func (lc *LogCapture) Stop() {
	lc.mu.Lock()
	if !lc.started {
		lc.mu.Unlock()
		return
	}
	os.Stdout = lc.origStdout
	os.Stderr = lc.origStderr
	lc.stdoutWriter.Close()
	lc.stderrWriter.Close()
	lc.started = false
	lc.mu.Unlock()

	// Readers hit EOF once the writers close.
	lc.wg.Wait()
	lc.stdoutReader.Close()
	lc.stderrReader.Close()
}

// Messages returns a copy of the captured lines.
func (lc *LogCapture) Messages() []LogMessage {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	out := make([]LogMessage, len(lc.messages))
	copy(out, lc.messages)
	return out
}

// Replay writes the captured lines to w, in capture order.
func (lc *LogCapture) Replay(w io.Writer) error {
	for _, msg := range lc.Messages() {
		if _, err := fmt.Fprintf(w, "[%s] %s\n", msg.Stream, msg.Message); err != nil {
			return err
		}
	}
	return nil
}
