package report

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/nao1215/markdown"
)

// MarkdownRenderer renders a Summary as GitHub Flavored Markdown.
// Headings, tables and links use the nao1215/markdown builder. Images are
// emitted as an inline <img> tag because markdown image syntax cannot carry
// a display size.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns the markdown text for s.
func (r *MarkdownRenderer) Render(s *Summary) (string, error) {
	md := markdown.NewMarkdown(io.Discard)

	for _, e := range s.entries {
		switch e.Kind {
		case EntryHeading:
			r.writeHeading(md, e)
		case EntryImage:
			md.PlainText(imageTag(e))
		case EntryTable:
			r.writeTable(md, e.Rows)
		case EntryLink:
			md.PlainText(markdown.Link(e.Text, e.Href))
		default:
			return "", fmt.Errorf("unsupported summary entry kind %q", e.Kind)
		}
		md.PlainText("")
	}

	if err := md.Build(); err != nil {
		return "", fmt.Errorf("failed to render summary: %w", err)
	}
	return md.String(), nil
}

// writeHeading writes a heading at the entry level.
func (r *MarkdownRenderer) writeHeading(md *markdown.Markdown, e Entry) {
	switch e.Level.clamp() {
	case H1:
		md.H1(e.Text)
	case H2:
		md.H2(e.Text)
	case H3:
		md.H3(e.Text)
	case H4:
		md.H4(e.Text)
	case H5:
		md.H5(e.Text)
	default:
		md.H6(e.Text)
	}
}

// writeTable writes rows as a markdown table. The first row becomes the
// header when all its cells are header cells; otherwise the header is left
// blank. Short rows are padded so every row has the same width.
func (r *MarkdownRenderer) writeTable(md *markdown.Markdown, rows [][]Cell) {
	if len(rows) == 0 {
		return
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	if width == 0 {
		return
	}

	header := make([]string, width)
	body := rows
	if isHeaderRow(rows[0]) {
		for i, c := range rows[0] {
			header[i] = escapeCell(c.Data)
		}
		body = rows[1:]
	}

	tableRows := make([][]string, 0, len(body))
	for _, row := range body {
		cells := make([]string, width)
		for i, c := range row {
			cells[i] = escapeCell(c.Data)
		}
		tableRows = append(tableRows, cells)
	}

	md.Table(markdown.TableSet{
		Header: header,
		Rows:   tableRows,
	})
}

// isHeaderRow reports whether every cell in row is a header cell.
func isHeaderRow(row []Cell) bool {
	if len(row) == 0 {
		return false
	}
	for _, c := range row {
		if !c.Header {
			return false
		}
	}
	return true
}

// escapeCell keeps cell text from breaking the table layout.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", "<br>")
}

// imageTag renders an image entry as an HTML img element.
func imageTag(e Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<img src="%s" alt="%s"`, html.EscapeString(e.Src), html.EscapeString(e.Alt))
	if e.Image.Width != "" {
		fmt.Fprintf(&b, ` width="%s"`, html.EscapeString(e.Image.Width))
	}
	if e.Image.Height != "" {
		fmt.Fprintf(&b, ` height="%s"`, html.EscapeString(e.Image.Height))
	}
	b.WriteString(">")
	return b.String()
}
