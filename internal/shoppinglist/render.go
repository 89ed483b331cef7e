package shoppinglist

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-pdf/fpdf"
)

const (
	DefaultTitle = "Shopping list"

	utf8Family = "body"
	lineHeight = 8
)

var columnWidths = [4]float64{12, 108, 35, 35}

// Renderer writes shopping lists as PDF or plain text. Without a FontPath
// the PDF uses the core Helvetica font, which only covers Latin-1.
type Renderer struct {
	FontPath string
	Title    string
}

func (r Renderer) title() string {
	if r.Title == "" {
		return DefaultTitle
	}
	return r.Title
}

// RenderPDF writes an A4 document with a numbered table of items to w.
func (r Renderer) RenderPDF(w io.Writer, items []Item) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(r.title(), true)
	pdf.SetCreator("foodgram", true)

	family, translate := "Helvetica", pdf.UnicodeTranslatorFromDescriptor("")
	if r.FontPath != "" {
		pdf.AddUTF8Font(utf8Family, "", r.FontPath)
		family, translate = utf8Family, func(s string) string { return s }
	}

	pdf.AddPage()
	pdf.SetFont(family, "", 18)
	pdf.CellFormat(0, 12, translate(r.title()), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(family, "", 11)
	pdf.SetFillColor(235, 235, 235)
	for i, header := range []string{"#", "Ingredient", "Amount", "Unit"} {
		pdf.CellFormat(columnWidths[i], lineHeight, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	for i, item := range items {
		pdf.CellFormat(columnWidths[0], lineHeight, strconv.Itoa(i+1), "1", 0, "R", false, 0, "")
		pdf.CellFormat(columnWidths[1], lineHeight, translate(item.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(columnWidths[2], lineHeight, strconv.FormatInt(item.TotalAmount, 10), "1", 0, "R", false, 0, "")
		pdf.CellFormat(columnWidths[3], lineHeight, translate(item.MeasurementUnit), "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
	if len(items) == 0 {
		pdf.CellFormat(0, lineHeight, "The shopping cart is empty.", "", 1, "L", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}
	return nil
}

// RenderText writes one "name (unit): amount" line per item.
func (r Renderer) RenderText(w io.Writer, items []Item) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", r.title()); err != nil {
		return err
	}
	for i, item := range items {
		if _, err := fmt.Fprintf(w, "%d. %s (%s): %d\n", i+1, item.Name, item.MeasurementUnit, item.TotalAmount); err != nil {
			return err
		}
	}
	return nil
}
