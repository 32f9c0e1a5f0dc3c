package util

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"

	"github.com/andriansah/cv-audit/internal/model"
)

// minUsableChars is the threshold below which the primary extraction is
// considered degenerate and the fallback parser is tried instead.
const minUsableChars = 5

type pdfExtractor func(data []byte) (string, error)

// ExtractText pulls plain text from a PDF byte stream. MuPDF is tried
// first; if its trimmed output has fewer than minUsableChars characters
// the document is re-parsed with a second library that uses different
// text-layout heuristics. When both parsers fail, whatever text was
// accumulated (possibly empty) is returned together with
// model.ErrExtractionFailed so the caller can decide how loudly to
// complain. Extraction never aborts an analysis run.
func ExtractText(data []byte) (string, error) {
	return extractText(data, extractWithMuPDF, extractWithLayout)
}

func extractText(data []byte, primary, fallback pdfExtractor) (string, error) {
	text, perr := primary(data)
	if perr == nil && len(strings.TrimSpace(text)) >= minUsableChars {
		return text, nil
	}

	alt, ferr := fallback(data)
	if ferr == nil {
		text = alt
	}

	if len(strings.TrimSpace(text)) < minUsableChars {
		return text, fmt.Errorf("%w: primary: %v, fallback: %v", model.ErrExtractionFailed, perr, ferr)
	}
	return text, nil
}

func extractWithMuPDF(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var fullText strings.Builder
	var lastErr error
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			lastErr = fmt.Errorf("page %d: %w", n+1, err)
			log.Println(lastErr)
			continue
		}
		fullText.WriteString(pageText)
	}

	if fullText.Len() == 0 && lastErr != nil {
		return "", lastErr
	}
	return fullText.String(), nil
}

func extractWithLayout(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var fullText strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		fullText.WriteString(pageText)
	}
	return fullText.String(), nil
}

// CleanJSON strips the markdown code fences some models wrap around JSON
// replies even when asked not to.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}
