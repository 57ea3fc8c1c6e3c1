package reports

import "io"

// Font styles accepted by Document.SetFont
const (
	StyleNormal = ""
	StyleBold   = "B"
	StyleItalic = "I"
)

// DefaultFontFamily is the core font used for every report
const DefaultFontFamily = "helvetica"

// Document is the drawing surface a report is laid out on. Coordinates are
// millimetres from the top-left corner of the current page.
type Document interface {
	AddPage()
	SetFont(family, style string, size float64)
	SetFontStyle(style string)
	SetFontSize(size float64)
	SetTextColor(r, g, b int)
	SetDrawColor(r, g, b int)
	Text(x, y float64, text string)
	Line(x1, y1, x2, y2 float64)
	PageWidth() float64
	Output(w io.Writer) error
}

// DocumentFactory creates an empty document with its first page added
type DocumentFactory func() Document
