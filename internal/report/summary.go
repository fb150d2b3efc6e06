package report

import (
	"context"
)

// Sink receives a finished summary.
type Sink interface {
	// Flush publishes the summary. It is called at most once per summary.
	Flush(ctx context.Context, s *Summary) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, s *Summary) error

// Flush calls f(ctx, s).
func (f SinkFunc) Flush(ctx context.Context, s *Summary) error {
	return f(ctx, s)
}

// Summary is an ordered list of entries built with chained Add calls and
// published with Write.
//
//	err := report.NewSummary(sink).
//		AddHeading("Results", report.H2).
//		AddLink("Details", "https://example.com").
//		Write(ctx)
type Summary struct {
	entries []Entry
	sink    Sink
	written bool
}

// NewSummary creates an empty summary that flushes to sink.
func NewSummary(sink Sink) *Summary {
	return &Summary{
		entries: make([]Entry, 0),
		sink:    sink,
	}
}

// AddHeading appends a heading.
func (s *Summary) AddHeading(text string, level HeadingLevel) *Summary {
	s.entries = append(s.entries, Entry{
		Kind:  EntryHeading,
		Text:  text,
		Level: level.clamp(),
	})
	return s
}

// AddImage appends an image.
func (s *Summary) AddImage(src, alt string, opts ImageOptions) *Summary {
	s.entries = append(s.entries, Entry{
		Kind:  EntryImage,
		Src:   src,
		Alt:   alt,
		Image: opts,
	})
	return s
}

// AddTable appends a table. rows is row-major; a first row made only of
// header cells becomes the table header. The rows are copied.
func (s *Summary) AddTable(rows [][]Cell) *Summary {
	copied := make([][]Cell, len(rows))
	for i, row := range rows {
		copied[i] = append([]Cell(nil), row...)
	}
	s.entries = append(s.entries, Entry{
		Kind: EntryTable,
		Rows: copied,
	})
	return s
}

// AddLink appends a link.
func (s *Summary) AddLink(text, href string) *Summary {
	s.entries = append(s.entries, Entry{
		Kind: EntryLink,
		Text: text,
		Href: href,
	})
	return s
}

// Entries returns a copy of the entries in insertion order.
func (s *Summary) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// Written reports whether the summary has been flushed.
func (s *Summary) Written() bool {
	return s.written
}

// Write flushes the summary to its sink. A summary can be written once;
// later calls return ErrAlreadyWritten. A failed flush still counts as the
// single attempt.
func (s *Summary) Write(ctx context.Context) error {
	if s.written {
		return ErrAlreadyWritten
	}
	if s.sink == nil {
		return ErrNoSink
	}
	s.written = true
	return s.sink.Flush(ctx, s)
}

// Markdown renders the summary with the default MarkdownRenderer.
func (s *Summary) Markdown() (string, error) {
	return NewMarkdownRenderer().Render(s)
}
