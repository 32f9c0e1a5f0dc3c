package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/andriansah/cv-audit/internal/model"
)

var pdfColors = map[string][3]int{
	colorBlack:  {0, 0, 0},
	colorPurple: {128, 0, 128},
	colorGreen:  {0, 128, 0},
	colorRed:    {255, 0, 0},
}

// Export draws the result into a letter-size PDF and returns its bytes.
// Any failure comes back as model.ErrExportFailed; the caller downgrades
// to "no download" instead of crashing.
func Export(result *model.AnalysisResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("%w: no result to export", model.ErrExportFailed)
	}

	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetFont("Helvetica", "", 10)
	// Core fonts are cp1252; this maps UTF-8 input (bullets included).
	translate := doc.UnicodeTranslatorFromDescriptor("")

	// GetStringWidth measures with the current font; the wrapped analysis
	// paragraph is the only measured text and is always Helvetica 10.
	measure := func(s string) float64 { return doc.GetStringWidth(s) }

	lines, _ := Layout(exportView(result), measure)

	page := 0
	for _, line := range lines {
		for page < line.Page {
			doc.AddPage()
			page++
		}
		rgb := pdfColors[line.Color]
		doc.SetTextColor(rgb[0], rgb[1], rgb[2])
		doc.SetFont("Helvetica", line.Style, line.Size)
		doc.Text(line.X, line.Y, translate(line.Text))
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrExportFailed, err)
	}
	return buf.Bytes(), nil
}
