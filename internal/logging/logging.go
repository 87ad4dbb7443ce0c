// Package logging is the small leveled logger shared by the display stack.
// Every line names the component that wrote it, so one debug file can hold
// output from the renderer, the display devices and the app lifecycle.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Logger takes printf-style messages tagged with a component name such as
// "render" or "display".
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Discard drops every message.
type Discard struct{}

func (Discard) Infof(string, string, ...interface{})  {}
func (Discard) Errorf(string, string, ...interface{}) {}

// Writer prints one line per message:
//
//	2006-01-02T15:04:05Z07:00 ERROR render: flush failed
type Writer struct {
	mu  sync.Mutex
	out io.Writer
	now func() time.Time
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out, now: time.Now}
}

// OpenFile appends to the file at path, creating it if needed.
func OpenFile(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", path, err)
	}
	return NewWriter(f), nil
}

// Close closes the underlying output if it is closable.
func (w *Writer) Close() error {
	if c, ok := w.out.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (w *Writer) Infof(component string, format string, args ...interface{}) {
	w.line("INFO", component, format, args)
}

func (w *Writer) Errorf(component string, format string, args ...interface{}) {
	w.line("ERROR", component, format, args)
}

func (w *Writer) line(level, component, format string, args []interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	// Logging is best effort; a full disk must not take the screen down.
	_, _ = fmt.Fprintf(w.out, "%s %s %s: %s\n", w.now().Format(time.RFC3339), level, component, fmt.Sprintf(format, args...))
}
