package reports

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"
)

// PDFDocument draws on an A4 portrait page through gofpdf
type PDFDocument struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	family string
	style  string
	size   float64
}

// NewPDFDocument creates an A4 document with one page and the default font selected
func NewPDFDocument() Document {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Expense Report", true)
	pdf.SetCreator("Expense Tracker", true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	d := &PDFDocument{
		pdf: pdf,
		// core fonts are cp1252 encoded; the euro sign needs translating and
		// runes outside cp1252 are drawn as '.'
		tr: pdf.UnicodeTranslatorFromDescriptor(""),
	}
	d.SetFont(DefaultFontFamily, StyleNormal, 16)

	return d
}

func (d *PDFDocument) AddPage() {
	d.pdf.AddPage()
}

func (d *PDFDocument) SetFont(family, style string, size float64) {
	d.family, d.style, d.size = family, style, size
	d.pdf.SetFont(family, style, size)
}

func (d *PDFDocument) SetFontStyle(style string) {
	d.SetFont(d.family, style, d.size)
}

func (d *PDFDocument) SetFontSize(size float64) {
	d.size = size
	d.pdf.SetFontSize(size)
}

func (d *PDFDocument) SetTextColor(r, g, b int) {
	d.pdf.SetTextColor(r, g, b)
}

func (d *PDFDocument) SetDrawColor(r, g, b int) {
	d.pdf.SetDrawColor(r, g, b)
}

func (d *PDFDocument) Text(x, y float64, text string) {
	d.pdf.Text(x, y, d.tr(text))
}

func (d *PDFDocument) Line(x1, y1, x2, y2 float64) {
	d.pdf.Line(x1, y1, x2, y2)
}

func (d *PDFDocument) PageWidth() float64 {
	w, _ := d.pdf.GetPageSize()
	return w
}

// Output writes the finished PDF to w
func (d *PDFDocument) Output(w io.Writer) error {
	if err := d.pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}
