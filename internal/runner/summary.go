package runner

import "github.com/nao1215/stepwait/internal/report"

// Fixed job summary content.
const (
	SummaryTitle    = "Advanced Job Summary"
	SummaryImageURL = "https://octodex.github.com/images/droidtocat.png"
	SummaryImageAlt = "Droidtocat"
	SummaryLinkText = "My custom link"
	SummaryLinkURL  = "https://writeabout.net"
)

// SummaryImageSize is the display size of the summary image.
var SummaryImageSize = report.ImageOptions{Width: "64", Height: "64"}

// SummaryTable returns the file results table, header row first.
func SummaryTable() [][]report.Cell {
	return [][]report.Cell{
		report.HeaderRow("File", "Result"),
		report.Row("foo.js", "Pass ✅"),
		report.Row("bar.js", "Fail ❌"),
		report.Row("test.js", "Pass ✅"),
	}
}

// BuildJobSummary adds the heading, image, table and link, in that order.
func BuildJobSummary(s *report.Summary) *report.Summary {
	return s.
		AddHeading(SummaryTitle, report.H2).
		AddImage(SummaryImageURL, SummaryImageAlt, SummaryImageSize).
		AddTable(SummaryTable()).
		AddLink(SummaryLinkText, SummaryLinkURL)
}
