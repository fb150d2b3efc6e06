package report

import "strconv"

// EntryKind identifies the type of a summary entry.
type EntryKind int

const (
	// EntryHeading is a section heading.
	EntryHeading EntryKind = iota
	// EntryImage is an image with optional display size.
	EntryImage
	// EntryTable is a row-major table.
	EntryTable
	// EntryLink is a hyperlink.
	EntryLink
)

// String returns the entry kind name.
func (k EntryKind) String() string {
	switch k {
	case EntryHeading:
		return "heading"
	case EntryImage:
		return "image"
	case EntryTable:
		return "table"
	case EntryLink:
		return "link"
	default:
		return "unknown"
	}
}

// HeadingLevel is the level of a heading, 1 through 6.
type HeadingLevel int

// Heading levels.
const (
	H1 HeadingLevel = iota + 1
	H2
	H3
	H4
	H5
	H6
)

// String returns the HTML tag name of the level, e.g. "h2".
func (l HeadingLevel) String() string {
	return "h" + strconv.Itoa(int(l.clamp()))
}

// clamp maps out-of-range levels to the nearest valid one.
func (l HeadingLevel) clamp() HeadingLevel {
	switch {
	case l < H1:
		return H1
	case l > H6:
		return H6
	default:
		return l
	}
}

// ImageOptions sets the display size of an image.
// Empty fields leave the dimension to the renderer.
type ImageOptions struct {
	Width  string
	Height string
}

// Cell is a single table cell.
type Cell struct {
	// Data is the cell text.
	Data string
	// Header marks the cell as a column header.
	Header bool
}

// TextCell returns a data cell.
func TextCell(data string) Cell {
	return Cell{Data: data}
}

// HeaderCell returns a header cell.
func HeaderCell(data string) Cell {
	return Cell{Data: data, Header: true}
}

// Row builds a row of data cells.
func Row(data ...string) []Cell {
	row := make([]Cell, len(data))
	for i, d := range data {
		row[i] = TextCell(d)
	}
	return row
}

// HeaderRow builds a row of header cells.
func HeaderRow(data ...string) []Cell {
	row := make([]Cell, len(data))
	for i, d := range data {
		row[i] = HeaderCell(d)
	}
	return row
}

// Entry is one item in a summary. Which fields are set depends on Kind.
type Entry struct {
	Kind EntryKind

	// Text is the heading text or the link label.
	Text string

	// Level is set for headings.
	Level HeadingLevel

	// Src, Alt and Image are set for images.
	Src   string
	Alt   string
	Image ImageOptions

	// Rows is set for tables.
	Rows [][]Cell

	// Href is set for links.
	Href string
}
