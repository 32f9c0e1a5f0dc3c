package service

import "fmt"

// SystemInstruction pins down the two inputs so the model never mixes
// them up.
const SystemInstruction = "You are a specialized CV Parser. You will be provided with a JD (Requirements) and a CANDIDATE (Resume). Never confuse the two."

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildFitScorePrompt asks for a 0-100 compatibility rating with matched
// and missing items plus a narrative analysis.
func (pb *PromptBuilder) BuildFitScorePrompt(jobDescription, candidateText string) string {
	return fmt.Sprintf(`Compare <CANDIDATE> against <JOB_REQUIREMENTS>.

<JOB_REQUIREMENTS>
%s
</JOB_REQUIREMENTS>

<CANDIDATE>
%s
</CANDIDATE>

Task: Identify how well the CANDIDATE matches the JOB.
JSON format: { "score": int, "verdict": "str", "match": ["str"], "missing": ["str"], "analysis": "str" }`,
		jobDescription, candidateText)
}

// BuildSkillGapPrompt asks which job requirements the candidate lacks.
func (pb *PromptBuilder) BuildSkillGapPrompt(jobDescription, candidateText string) string {
	return fmt.Sprintf(`Skill Gap Analysis.
What key skills are in <JOB_REQUIREMENTS> but MISSING in <CANDIDATE>?

<JOB_REQUIREMENTS>
%s
</JOB_REQUIREMENTS>

<CANDIDATE>
%s
</CANDIDATE>

JSON format: { "critical_missing": ["str"], "improvement": ["str"], "recommendations": ["str"] }`,
		jobDescription, candidateText)
}

// BuildScanPrompt asks for a strengths/weaknesses audit of the resume
// against the job description.
func (pb *PromptBuilder) BuildScanPrompt(jobDescription, candidateText string) string {
	return fmt.Sprintf(`Audit the Candidate's Resume Quality in relation to the JD.

<JOB_REQUIREMENTS>
%s
</JOB_REQUIREMENTS>

<CANDIDATE>
%s
</CANDIDATE>

JSON format: { "summary": "str", "strengths": ["str"], "weaknesses": ["str"] }
Guidelines:
- Strengths: What parts of the CANDIDATE resume align perfectly?
- Weaknesses: Where does the CANDIDATE fail to meet the bar?
- Summary: Hiring recommendation.`,
		jobDescription, candidateText)
}

// BuildInterviewKickoff opens an interview session based on the job
// description alone.
func (pb *PromptBuilder) BuildInterviewKickoff(jobDescription string) string {
	return fmt.Sprintf("Interview me for the role described below. Ask your first question.\n\n%s", jobDescription)
}

// BuildInterviewTurn embeds a single user answer plus the job description;
// each turn is a standalone prompt, no transcript is resent.
func (pb *PromptBuilder) BuildInterviewTurn(userInput, jobDescription string) string {
	return fmt.Sprintf("Interview me: %s\nContext:\n%s", userInput, jobDescription)
}
