package report

// The pagination engine is kept free of any drawing surface: Layout
// produces positioned lines, pdf.go draws them. The only thing it needs
// from the renderer is a way to measure rendered string width.

import (
	"fmt"
	"strings"

	"github.com/andriansah/cv-audit/internal/model"
)

const (
	colorBlack  = "black"
	colorPurple = "purple"
	colorGreen  = "green"
	colorRed    = "red"
)

const (
	pageWidth  = 612.0 // US letter, points
	pageHeight = 792.0

	marginX   = 50.0
	topMargin = 50.0

	rowHeight  = 15.0
	wrapBudget = 500.0 // max rendered width of a wrapped analysis line

	// Space that must remain below the cursor before starting, in order:
	// one more row, a section heading, the analysis block.
	rowReserve      = 50.0
	sectionReserve  = 100.0
	analysisReserve = 200.0
)

// Measurer reports the rendered width of a string in page units.
type Measurer func(s string) float64

// TextLine is one positioned piece of text. Y runs from the top of the
// page to the baseline.
type TextLine struct {
	Page  int
	X, Y  float64
	Text  string
	Style string // "B" for bold, "" for regular
	Size  float64
	Color string
}

// cursor tracks the vertical draw position on the current page.
type cursor struct {
	page int
	y    float64
}

func (c *cursor) advance(h float64) { c.y += h }

// needsBreak reports whether fewer than reserve points remain below the
// cursor on this page.
func (c *cursor) needsBreak(reserve float64) bool {
	return c.y > pageHeight-reserve
}

func (c *cursor) pageBreak() {
	c.page++
	c.y = topMargin
}

// ExportView is the single flattened shape the exporter consumes, built
// per mode so the layout code never reaches into mode-specific fields.
type ExportView struct {
	Title   string
	Score   string // "82%" for fit score, empty otherwise
	Verdict string
	Matched []string
	Missing []string
	Note    string
}

// exportView flattens one canonical result shape into the export layout.
// Each mode maps explicitly; there is no guessing across field names.
func exportView(result *model.AnalysisResult) ExportView {
	switch result.Mode {
	case model.ModeFitScore:
		data := result.FitScore
		if data == nil {
			data = &model.FitScoreResult{}
		}
		return ExportView{
			Title:   "FIT SCORE",
			Score:   fmt.Sprintf("%d%%", data.Score),
			Verdict: data.Verdict,
			Matched: data.Match,
			Missing: data.Missing,
			Note:    data.Analysis,
		}
	case model.ModeScan:
		data := result.Scan
		if data == nil {
			data = &model.ScanResult{}
		}
		return ExportView{
			Title:   "JD COMPARISON",
			Matched: data.Strengths,
			Missing: data.Weaknesses,
			Note:    data.Summary,
		}
	case model.ModeSkillGap:
		data := result.SkillGap
		if data == nil {
			data = &model.SkillGapResult{}
		}
		return ExportView{
			Title:   "SKILL AUDIT",
			Matched: data.Improvement,
			Missing: data.CriticalMissing,
			Note:    strings.Join(data.Recommendations, " "),
		}
	}
	return ExportView{Title: strings.ToUpper(string(result.Mode))}
}

type layouter struct {
	cur     cursor
	lines   []TextLine
	measure Measurer
}

func (l *layouter) text(x float64, text, style string, size float64, color string) {
	l.lines = append(l.lines, TextLine{
		Page:  l.cur.page,
		X:     x,
		Y:     l.cur.y,
		Text:  text,
		Style: style,
		Size:  size,
		Color: color,
	})
}

// Layout lays the view out onto letter pages and returns the positioned
// lines plus the number of pages used.
func Layout(view ExportView, measure Measurer) ([]TextLine, int) {
	l := &layouter{cur: cursor{page: 1, y: topMargin}, measure: measure}

	// Report header.
	l.text(marginX, "CV.AUDIT", "B", 24, colorBlack)
	l.cur.advance(20)
	l.text(marginX, "Automated AI Analysis Report", "", 10, colorBlack)
	l.cur.advance(50)

	// Score header (fit score) or mode headline.
	if view.Score != "" {
		l.text(marginX, view.Score, "B", 40, colorBlack)
		verdict := view.Verdict
		if verdict == "" {
			verdict = "N/A"
		}
		saved := l.cur.y
		l.cur.y = saved - 10
		l.text(180, "VERDICT: "+verdict, "B", 14, colorPurple)
		l.cur.y = saved
	} else {
		l.text(marginX, view.Title, "B", 18, colorBlack)
	}
	l.cur.advance(60)

	l.section("MATCHED / STRENGTHS", view.Matched, colorGreen)
	l.section("MISSING / GAPS", view.Missing, colorRed)

	note := view.Note
	if note == "" {
		note = "No detail provided."
	}
	if l.cur.needsBreak(analysisReserve) {
		l.cur.pageBreak()
	}
	l.text(marginX, "ANALYSIS NOTE", "B", 12, colorBlack)
	l.cur.advance(25)
	l.paragraph(note)

	return l.lines, l.cur.page
}

// section writes a heading followed by one bulleted row per item. The
// cursor resets to the top margin of a fresh page whenever the remaining
// space drops below the relevant reserve.
func (l *layouter) section(title string, items []string, color string) {
	if l.cur.needsBreak(sectionReserve) {
		l.cur.pageBreak()
	}
	l.text(marginX, title, "B", 12, colorBlack)
	l.cur.advance(20)

	for _, item := range items {
		if l.cur.needsBreak(rowReserve) {
			l.cur.pageBreak()
		}
		l.text(marginX+10, "• "+item, "", 10, color)
		l.cur.advance(rowHeight)
	}
	l.cur.advance(20)
}

// paragraph word-wraps the note: words are appended while the rendered
// line width stays under wrapBudget, otherwise the line is flushed and
// wrapping continues on the next one.
func (l *layouter) paragraph(text string) {
	flush := func(line string) {
		if l.cur.needsBreak(rowReserve) {
			l.cur.pageBreak()
		}
		l.text(marginX, line, "", 10, colorBlack)
		l.cur.advance(rowHeight)
	}

	line := ""
	for _, word := range strings.Fields(text) {
		if l.measure(line+word) < wrapBudget {
			line += word + " "
		} else {
			flush(line)
			line = word + " "
		}
	}
	if strings.TrimSpace(line) != "" {
		flush(line)
	}
}
