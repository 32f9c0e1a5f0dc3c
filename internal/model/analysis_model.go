package model

import "fmt"

type AnalysisMode string

const (
	ModeScan      AnalysisMode = "scan"
	ModeSkillGap  AnalysisMode = "gap"
	ModeFitScore  AnalysisMode = "fit"
	ModeInterview AnalysisMode = "interview"
)

func ParseAnalysisMode(s string) (AnalysisMode, error) {
	switch AnalysisMode(s) {
	case ModeScan, ModeSkillGap, ModeFitScore, ModeInterview:
		return AnalysisMode(s), nil
	}
	return "", fmt.Errorf("unknown analysis mode %q", s)
}

// Structured reports whether the mode expects a JSON reply from the model.
// Interview mode exchanges free text instead.
func (m AnalysisMode) Structured() bool {
	return m == ModeScan || m == ModeSkillGap || m == ModeFitScore
}

type FitScoreResult struct {
	Score    int      `json:"score"`
	Verdict  string   `json:"verdict"`
	Match    []string `json:"match"`
	Missing  []string `json:"missing"`
	Analysis string   `json:"analysis"`
}

type ScanResult struct {
	Summary    string   `json:"summary"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
}

type SkillGapResult struct {
	CriticalMissing []string `json:"critical_missing"`
	Improvement     []string `json:"improvement"`
	Recommendations []string `json:"recommendations"`
}

// AnalysisResult is the canonical parsed reply for one analysis run.
// Exactly one of the shape pointers is populated, matching Mode.
type AnalysisResult struct {
	Mode     AnalysisMode    `json:"mode"`
	FitScore *FitScoreResult `json:"fit_score,omitempty"`
	Scan     *ScanResult     `json:"scan,omitempty"`
	SkillGap *SkillGapResult `json:"skill_gap,omitempty"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
