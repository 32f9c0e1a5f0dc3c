// Package report turns a stored analysis result into the two consumer
// shapes: the on-screen display tree and the downloadable PDF.
package report

import (
	"fmt"

	"github.com/andriansah/cv-audit/internal/model"
)

type SectionKind string

const (
	KindMatched   SectionKind = "matched"
	KindMissing   SectionKind = "missing"
	KindPartial   SectionKind = "partial"
	KindRecommend SectionKind = "recommend"
	KindText      SectionKind = "text"
)

// Report is the display tree handed to the UI layer. It carries labeled
// sections only; styling is the consumer's problem.
type Report struct {
	Mode     model.AnalysisMode `json:"mode"`
	Header   Header             `json:"header"`
	Sections []Section          `json:"sections"`
}

type Header struct {
	Title   string `json:"title"`
	Score   string `json:"score,omitempty"`
	Verdict string `json:"verdict,omitempty"`
}

type Section struct {
	Title     string      `json:"title"`
	Kind      SectionKind `json:"kind"`
	Rows      []string    `json:"rows"`
	Body      string      `json:"body,omitempty"`
	FullWidth bool        `json:"full_width"`
}

// Render maps a result into its per-mode display tree. It is pure: the
// same result always yields the same tree, and fields the model omitted
// come out as empty sections, never as errors.
func Render(result *model.AnalysisResult) (*Report, error) {
	if result == nil {
		return nil, model.ErrNoResult
	}

	switch result.Mode {
	case model.ModeFitScore:
		return renderFitScore(result), nil
	case model.ModeScan:
		return renderScan(result), nil
	case model.ModeSkillGap:
		return renderSkillGap(result), nil
	}
	return nil, fmt.Errorf("mode %q has no report layout", result.Mode)
}

func renderFitScore(result *model.AnalysisResult) *Report {
	data := result.FitScore
	if data == nil {
		data = &model.FitScoreResult{}
	}
	return &Report{
		Mode: result.Mode,
		Header: Header{
			Title:   "FIT SCORE",
			Score:   fmt.Sprintf("%d%%", data.Score),
			Verdict: data.Verdict,
		},
		Sections: []Section{
			{Title: "MATCHED SKILLS", Kind: KindMatched, Rows: rows(data.Match)},
			{Title: "MISSING SKILLS", Kind: KindMissing, Rows: rows(data.Missing)},
			{Title: "TECHNICAL ANALYSIS", Kind: KindText, Rows: rows(nil), Body: data.Analysis, FullWidth: true},
		},
	}
}

func renderScan(result *model.AnalysisResult) *Report {
	data := result.Scan
	if data == nil {
		data = &model.ScanResult{}
	}
	return &Report{
		Mode:   result.Mode,
		Header: Header{Title: "JD COMPARISON"},
		Sections: []Section{
			{Title: "SUMMARY", Kind: KindText, Rows: rows(nil), Body: data.Summary, FullWidth: true},
			{Title: "REQUIREMENTS MET", Kind: KindMatched, Rows: rows(data.Strengths)},
			{Title: "REQUIREMENTS FAILED", Kind: KindMissing, Rows: rows(data.Weaknesses)},
		},
	}
}

func renderSkillGap(result *model.AnalysisResult) *Report {
	data := result.SkillGap
	if data == nil {
		data = &model.SkillGapResult{}
	}
	return &Report{
		Mode:   result.Mode,
		Header: Header{Title: "SKILL AUDIT"},
		Sections: []Section{
			{Title: "CRITICAL GAPS", Kind: KindMissing, Rows: rows(data.CriticalMissing)},
			{Title: "PARTIAL MATCH", Kind: KindPartial, Rows: rows(data.Improvement)},
			{Title: "PROJECTS TO BUILD", Kind: KindRecommend, Rows: rows(data.Recommendations), FullWidth: true},
		},
	}
}

func rows(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
