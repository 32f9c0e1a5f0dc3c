package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/andriansah/cv-audit/internal/model"
	"github.com/andriansah/cv-audit/internal/repository"
	"github.com/andriansah/cv-audit/internal/service"
	"github.com/andriansah/cv-audit/internal/util"
)

type AnalysisUsecase struct {
	sessions *repository.SessionRepository
	llm      service.ModelService
	prompts  *service.PromptBuilder
}

func NewAnalysisUsecase(sessions *repository.SessionRepository, llm service.ModelService) *AnalysisUsecase {
	return &AnalysisUsecase{
		sessions: sessions,
		llm:      llm,
		prompts:  service.NewPromptBuilder(),
	}
}

// Run performs one analysis: validate, extract text, prompt the model,
// parse the reply into the mode's canonical shape and store it on the
// session. Re-running a mode overwrites its previous result.
//
// Interview mode only handles the opening turn here; subsequent turns go
// through Chat.
func (uc *AnalysisUsecase) Run(ctx context.Context, session *model.Session, mode model.AnalysisMode, document []byte, jobDescription string) (*model.AnalysisResult, error) {
	if len(document) == 0 {
		return nil, model.ErrDocumentRequired
	}

	if mode == model.ModeInterview && len(session.Chat) > 0 {
		// Interview already running, nothing to re-trigger.
		session.Mode = mode
		return nil, nil
	}

	if strings.TrimSpace(jobDescription) == "" {
		return nil, model.ErrJobDescriptionRequired
	}

	candidateText, err := util.ExtractText(document)
	if err != nil {
		// Degraded input, not a failure: the model will simply report a
		// poor match for an empty candidate.
		log.Printf("extraction degraded: %v", err)
	}

	if mode == model.ModeInterview {
		reply := uc.llm.Complete(ctx, []model.ChatMessage{
			{Role: model.RoleUser, Content: uc.prompts.BuildInterviewKickoff(jobDescription)},
		}, false)
		session.Mode = mode
		session.AppendTurn(model.RoleAssistant, reply)
		return nil, nil
	}

	var prompt string
	switch mode {
	case model.ModeFitScore:
		prompt = uc.prompts.BuildFitScorePrompt(jobDescription, candidateText)
	case model.ModeSkillGap:
		prompt = uc.prompts.BuildSkillGapPrompt(jobDescription, candidateText)
	case model.ModeScan:
		prompt = uc.prompts.BuildScanPrompt(jobDescription, candidateText)
	default:
		return nil, fmt.Errorf("unknown analysis mode %q", mode)
	}

	raw := uc.llm.Complete(ctx, []model.ChatMessage{
		{Role: model.RoleSystem, Content: service.SystemInstruction},
		{Role: model.RoleUser, Content: prompt},
	}, true)

	result, err := parseResult(mode, raw)
	if err != nil {
		return nil, err
	}

	session.Mode = mode
	session.Results[mode] = result
	session.UpdatedAt = time.Now()
	return result, nil
}

// Chat appends one interview exchange: the user's answer, then the
// model's free-text reply. History is append-only.
func (uc *AnalysisUsecase) Chat(ctx context.Context, session *model.Session, userInput, jobDescription string) []model.ChatMessage {
	session.AppendTurn(model.RoleUser, userInput)

	reply := uc.llm.Complete(ctx, []model.ChatMessage{
		{Role: model.RoleUser, Content: uc.prompts.BuildInterviewTurn(userInput, jobDescription)},
	}, false)
	session.AppendTurn(model.RoleAssistant, reply)
	return session.Chat
}

// parseResult decodes a structured reply into the canonical shape for the
// mode. Fields the model omitted decode to zero values; a payload that is
// not valid JSON is a malformed response, never a partial result.
func parseResult(mode model.AnalysisMode, raw string) (*model.AnalysisResult, error) {
	clean := util.CleanJSON(raw)
	if !gjson.Valid(clean) {
		return nil, fmt.Errorf("%w: %.120s", model.ErrMalformedResponse, raw)
	}

	result := &model.AnalysisResult{Mode: mode}
	var target any
	switch mode {
	case model.ModeFitScore:
		result.FitScore = &model.FitScoreResult{}
		target = result.FitScore
	case model.ModeSkillGap:
		result.SkillGap = &model.SkillGapResult{}
		target = result.SkillGap
	case model.ModeScan:
		result.Scan = &model.ScanResult{}
		target = result.Scan
	default:
		return nil, fmt.Errorf("mode %q has no structured result", mode)
	}

	if err := json.Unmarshal([]byte(clean), target); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedResponse, err)
	}
	return result, nil
}
