package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andriansah/cv-audit/internal/model"
)

func fitScoreResult() *model.AnalysisResult {
	return &model.AnalysisResult{
		Mode: model.ModeFitScore,
		FitScore: &model.FitScoreResult{
			Score:    82,
			Verdict:  "Strong Fit",
			Match:    []string{"Python"},
			Missing:  []string{"Go"},
			Analysis: "Good",
		},
	}
}

func sectionByTitle(t *testing.T, tree *Report, title string) Section {
	t.Helper()
	for _, s := range tree.Sections {
		if s.Title == title {
			return s
		}
	}
	t.Fatalf("no section %q in %+v", title, tree.Sections)
	return Section{}
}

func TestRenderFitScore(t *testing.T) {
	tree, err := Render(fitScoreResult())
	require.NoError(t, err)

	assert.Equal(t, "82%", tree.Header.Score)
	assert.Equal(t, "Strong Fit", tree.Header.Verdict)
	assert.Equal(t, []string{"Python"}, sectionByTitle(t, tree, "MATCHED SKILLS").Rows)
	assert.Equal(t, []string{"Go"}, sectionByTitle(t, tree, "MISSING SKILLS").Rows)

	analysis := sectionByTitle(t, tree, "TECHNICAL ANALYSIS")
	assert.Equal(t, "Good", analysis.Body)
	assert.True(t, analysis.FullWidth)
}

func TestRenderScanMissingFieldsYieldEmptyColumns(t *testing.T) {
	tree, err := Render(&model.AnalysisResult{
		Mode: model.ModeScan,
		Scan: &model.ScanResult{Summary: "Solid backend profile"},
	})
	require.NoError(t, err)

	assert.Equal(t, "JD COMPARISON", tree.Header.Title)
	assert.Equal(t, "Solid backend profile", sectionByTitle(t, tree, "SUMMARY").Body)

	met := sectionByTitle(t, tree, "REQUIREMENTS MET")
	failed := sectionByTitle(t, tree, "REQUIREMENTS FAILED")
	assert.NotNil(t, met.Rows)
	assert.Empty(t, met.Rows)
	assert.NotNil(t, failed.Rows)
	assert.Empty(t, failed.Rows)
}

func TestRenderSkillGapLayout(t *testing.T) {
	tree, err := Render(&model.AnalysisResult{
		Mode: model.ModeSkillGap,
		SkillGap: &model.SkillGapResult{
			CriticalMissing: []string{"Kubernetes"},
			Improvement:     []string{"SQL tuning"},
			Recommendations: []string{"Build a cluster operator"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "SKILL AUDIT", tree.Header.Title)
	assert.Equal(t, []string{"Kubernetes"}, sectionByTitle(t, tree, "CRITICAL GAPS").Rows)
	assert.Equal(t, []string{"SQL tuning"}, sectionByTitle(t, tree, "PARTIAL MATCH").Rows)

	projects := sectionByTitle(t, tree, "PROJECTS TO BUILD")
	assert.Equal(t, []string{"Build a cluster operator"}, projects.Rows)
	assert.True(t, projects.FullWidth)
}

func TestRenderIsIdempotent(t *testing.T) {
	result := fitScoreResult()

	first, err := Render(result)
	require.NoError(t, err)
	second, err := Render(result)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderNilAndInterviewResults(t *testing.T) {
	_, err := Render(nil)
	assert.ErrorIs(t, err, model.ErrNoResult)

	_, err = Render(&model.AnalysisResult{Mode: model.ModeInterview})
	assert.Error(t, err)
}

func TestRenderToleratesMissingShape(t *testing.T) {
	// Mode set but shape pointer nil; must come out as empty sections,
	// not a panic.
	tree, err := Render(&model.AnalysisResult{Mode: model.ModeFitScore})
	require.NoError(t, err)
	assert.Equal(t, "0%", tree.Header.Score)
	assert.Empty(t, sectionByTitle(t, tree, "MATCHED SKILLS").Rows)
}
