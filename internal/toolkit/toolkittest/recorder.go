// Package toolkittest provides a recording Provider for tests.
package toolkittest

import (
	"context"
	"sync"

	"github.com/nao1215/stepwait/internal/report"
	"github.com/nao1215/stepwait/internal/toolkit"
)

// Output is one SetOutput call.
type Output struct {
	Name  string
	Value string
}

// Recorder is a toolkit.SummaryProvider that records every call.
// Inputs are served from the Inputs map; a missing key yields "".
type Recorder struct {
	mu sync.Mutex

	Inputs map[string]string

	// FlushErr is returned by Flush when set.
	FlushErr error

	debugs    []string
	outputs   []Output
	failures  []string
	summaries [][]report.Entry
}

// NewRecorder returns a Recorder serving inputs.
func NewRecorder(inputs map[string]string) *Recorder {
	return &Recorder{Inputs: inputs}
}

// GetInput implements toolkit.Provider.
func (r *Recorder) GetInput(name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Inputs[name]
}

// Debug implements toolkit.Provider.
func (r *Recorder) Debug(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.debugs = append(r.debugs, msg)
}

// SetOutput implements toolkit.Provider.
func (r *Recorder) SetOutput(name, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outputs = append(r.outputs, Output{Name: name, Value: value})
}

// Fail implements toolkit.Provider.
func (r *Recorder) Fail(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, msg)
}

// Flush implements report.Sink by keeping a copy of the entries.
func (r *Recorder) Flush(_ context.Context, s *report.Summary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.summaries = append(r.summaries, s.Entries())
	return r.FlushErr
}

// Debugs returns the debug messages in call order.
func (r *Recorder) Debugs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.debugs...)
}

// Outputs returns the SetOutput calls in order.
func (r *Recorder) Outputs() []Output {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Output(nil), r.outputs...)
}

// Failures returns the Fail messages in order.
func (r *Recorder) Failures() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.failures...)
}

// Summaries returns the entries of every flushed summary.
func (r *Recorder) Summaries() [][]report.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]report.Entry(nil), r.summaries...)
}

var _ toolkit.SummaryProvider = (*Recorder)(nil)
