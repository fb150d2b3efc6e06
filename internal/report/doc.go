// Package report builds the job summary that a run publishes.
//
// A Summary accumulates presentation entries (heading, image, table, link)
// in the order they are added and is flushed exactly once through a Sink.
// Sinks decide where the summary goes: the GitHub step summary file, a
// local file, or a terminal. MarkdownRenderer turns the entries into
// GitHub Flavored Markdown with the nao1215/markdown builder.
//
// Keeping the entries separate from their rendering means a Sink can
// inspect what was added without parsing markdown, which is how the
// runner tests observe the summary.
package report
