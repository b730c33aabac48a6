// Package display provides the output-sink capability for interact
// containers: somewhere to render an invocation's result and to clear
// previous output before the next one.
package display

import (
	"fmt"
	"io"
	"sync"
)

// Surface receives the output of target-function invocations.
//
// Implementations are driven from the host's single event-processing
// goroutine; they do not need to be safe for concurrent use, though the
// ones in this package are.
type Surface interface {
	// Render displays a value.
	Render(v any)
	// Clear discards previously rendered output.
	Clear()
}

// Writer is a Surface that prints rendered values to an io.Writer, one per
// line. Clear is a no-op: a byte stream cannot take output back.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter creates a Surface over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Render prints v followed by a newline.
func (s *Writer) Render(v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.w, v)
}

// Clear does nothing.
func (s *Writer) Clear() {}

// Recorder is a Surface that records every Render and Clear call. It is
// the test double used throughout this module's tests.
type Recorder struct {
	mu       sync.Mutex
	rendered []any
	clears   int
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Render records v.
func (r *Recorder) Render(v any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rendered = append(r.rendered, v)
}

// Clear increments the clear count and discards recorded values.
func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clears++
	r.rendered = nil
}

// Rendered returns a copy of the values rendered since the last Clear.
func (r *Recorder) Rendered() []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]any(nil), r.rendered...)
}

// Last returns the most recently rendered value, or nil.
func (r *Recorder) Last() any {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.rendered) == 0 {
		return nil
	}
	return r.rendered[len(r.rendered)-1]
}

// Clears returns how many times Clear has been called.
func (r *Recorder) Clears() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clears
}
