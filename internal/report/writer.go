package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriterSink writes the rendered summary to an io.Writer.
type WriterSink struct {
	output   io.Writer
	renderer *MarkdownRenderer
}

// NewWriterSink creates a sink that writes markdown to output.
func NewWriterSink(output io.Writer) *WriterSink {
	return &WriterSink{
		output:   output,
		renderer: NewMarkdownRenderer(),
	}
}

// Flush renders s and writes it to the output.
func (w *WriterSink) Flush(_ context.Context, s *Summary) error {
	text, err := w.renderer.Render(s)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w.output, text); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

// FileSink appends the rendered summary to a file, creating the file and
// its parent directories when needed. Appending matches how the runner
// treats the step summary file when several steps write to it.
type FileSink struct {
	path string
}

// NewFileSink creates a sink that appends to path.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Flush renders s and appends it to the file.
func (f *FileSink) Flush(ctx context.Context, s *Summary) (err error) {
	if dir := filepath.Dir(f.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create summary directory: %w", err)
		}
	}

	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600) //nolint:gosec // path comes from the user or the runner
	if err != nil {
		return fmt.Errorf("failed to open summary file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close summary file: %w", cerr)
		}
	}()

	return NewWriterSink(file).Flush(ctx, s)
}
