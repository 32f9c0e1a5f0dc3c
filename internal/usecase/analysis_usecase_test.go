package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andriansah/cv-audit/internal/model"
	"github.com/andriansah/cv-audit/internal/repository"
)

// fakeModel records every call and replays canned replies.
type fakeModel struct {
	replies  []string
	calls    int
	messages [][]model.ChatMessage
	flags    []bool
}

func (f *fakeModel) Complete(_ context.Context, messages []model.ChatMessage, structured bool) string {
	f.messages = append(f.messages, messages)
	f.flags = append(f.flags, structured)
	reply := "{}"
	if f.calls < len(f.replies) {
		reply = f.replies[f.calls]
	}
	f.calls++
	return reply
}

func newTestUsecase(replies ...string) (*AnalysisUsecase, *fakeModel, *model.Session) {
	sessions := repository.NewSessionRepository()
	llm := &fakeModel{replies: replies}
	return NewAnalysisUsecase(sessions, llm), llm, sessions.Create()
}

// The bytes never parse as a PDF; extraction degrades to empty candidate
// text, which must not stop the run.
var document = []byte("%PDF-garbage")

const jd = "Senior Go engineer, Postgres, Kubernetes"

func TestRunRequiresDocument(t *testing.T) {
	uc, llm, session := newTestUsecase()

	for _, mode := range []model.AnalysisMode{model.ModeScan, model.ModeSkillGap, model.ModeFitScore, model.ModeInterview} {
		_, err := uc.Run(context.Background(), session, mode, nil, jd)
		assert.ErrorIs(t, err, model.ErrDocumentRequired, "mode %s", mode)
	}
	assert.Zero(t, llm.calls, "validation failures must not reach the model")
}

func TestRunRequiresJobDescription(t *testing.T) {
	uc, llm, session := newTestUsecase()

	for _, mode := range []model.AnalysisMode{model.ModeScan, model.ModeSkillGap, model.ModeFitScore, model.ModeInterview} {
		_, err := uc.Run(context.Background(), session, mode, document, "   ")
		assert.ErrorIs(t, err, model.ErrJobDescriptionRequired, "mode %s", mode)
	}
	assert.Zero(t, llm.calls, "validation failures must not reach the model")
}

func TestRunFitScoreParsesAndStoresResult(t *testing.T) {
	uc, llm, session := newTestUsecase(`{"score":82,"verdict":"Strong Fit","match":["Python"],"missing":["Go"],"analysis":"Good"}`)

	result, err := uc.Run(context.Background(), session, model.ModeFitScore, document, jd)
	require.NoError(t, err)
	require.NotNil(t, result.FitScore)

	assert.Equal(t, 82, result.FitScore.Score)
	assert.Equal(t, "Strong Fit", result.FitScore.Verdict)
	assert.Equal(t, []string{"Python"}, result.FitScore.Match)
	assert.Equal(t, []string{"Go"}, result.FitScore.Missing)

	assert.Same(t, result, session.Results[model.ModeFitScore])
	assert.Equal(t, model.ModeFitScore, session.Mode)

	require.Equal(t, 1, llm.calls)
	assert.True(t, llm.flags[0], "structured modes request JSON output")
	require.Len(t, llm.messages[0], 2)
	assert.Equal(t, model.RoleSystem, llm.messages[0][0].Role)
	assert.Contains(t, llm.messages[0][1].Content, jd)
}

func TestRunMissingFieldsDecodeToZeroValues(t *testing.T) {
	uc, _, session := newTestUsecase(`{"summary":"Decent"}`)

	result, err := uc.Run(context.Background(), session, model.ModeScan, document, jd)
	require.NoError(t, err)
	require.NotNil(t, result.Scan)

	assert.Equal(t, "Decent", result.Scan.Summary)
	assert.Empty(t, result.Scan.Strengths)
	assert.Empty(t, result.Scan.Weaknesses)
}

func TestRunMalformedReplyIsSurfacedNotStored(t *testing.T) {
	uc, _, session := newTestUsecase(`I would rate this resume quite highly because`)

	_, err := uc.Run(context.Background(), session, model.ModeSkillGap, document, jd)
	assert.ErrorIs(t, err, model.ErrMalformedResponse)
	assert.Nil(t, session.Results[model.ModeSkillGap])
}

func TestRunFencedReplyIsAccepted(t *testing.T) {
	uc, _, session := newTestUsecase("```json\n{\"critical_missing\":[\"Rust\"]}\n```")

	result, err := uc.Run(context.Background(), session, model.ModeSkillGap, document, jd)
	require.NoError(t, err)
	assert.Equal(t, []string{"Rust"}, result.SkillGap.CriticalMissing)
}

func TestRunOverwritesPreviousResultForMode(t *testing.T) {
	uc, _, session := newTestUsecase(
		`{"score":40,"verdict":"Weak Fit"}`,
		`{"score":90,"verdict":"Strong Fit"}`,
	)

	_, err := uc.Run(context.Background(), session, model.ModeFitScore, document, jd)
	require.NoError(t, err)
	_, err = uc.Run(context.Background(), session, model.ModeFitScore, document, jd)
	require.NoError(t, err)

	assert.Equal(t, 90, session.Results[model.ModeFitScore].FitScore.Score)
}

func TestRunInterviewKickoffAppendsFirstTurnOnce(t *testing.T) {
	uc, llm, session := newTestUsecase("What drew you to this role?")

	result, err := uc.Run(context.Background(), session, model.ModeInterview, document, jd)
	require.NoError(t, err)
	assert.Nil(t, result, "interview mode produces turns, not structured results")

	require.Len(t, session.Chat, 1)
	assert.Equal(t, model.RoleAssistant, session.Chat[0].Role)
	assert.Equal(t, "What drew you to this role?", session.Chat[0].Content)
	assert.False(t, llm.flags[0], "interview turns are free text")

	// Re-triggering with a running interview is a no-op, even without a
	// job description.
	_, err = uc.Run(context.Background(), session, model.ModeInterview, document, "")
	require.NoError(t, err)
	assert.Len(t, session.Chat, 1)
	assert.Equal(t, 1, llm.calls)
}

func TestChatHistoryIsAppendOnly(t *testing.T) {
	uc, _, session := newTestUsecase("q1", "a1", "a2", "a3")

	_, err := uc.Run(context.Background(), session, model.ModeInterview, document, jd)
	require.NoError(t, err)

	snapshot := func() []model.ChatMessage {
		return append([]model.ChatMessage(nil), session.Chat...)
	}

	before := snapshot()
	for i, answer := range []string{"I built a billing service", "In Go", "With Postgres"} {
		chat := uc.Chat(context.Background(), session, answer, jd)

		require.Len(t, chat, len(before)+2, "each turn appends user + assistant")
		assert.Equal(t, before, chat[:len(before)], "earlier turns unchanged after turn %d", i+1)
		assert.Equal(t, model.RoleUser, chat[len(chat)-2].Role)
		assert.Equal(t, answer, chat[len(chat)-2].Content)
		assert.Equal(t, model.RoleAssistant, chat[len(chat)-1].Role)
		before = snapshot()
	}
}

func TestChatPromptEmbedsInputAndJobDescription(t *testing.T) {
	uc, llm, session := newTestUsecase("a1")

	uc.Chat(context.Background(), session, "my answer", jd)

	require.Equal(t, 1, llm.calls)
	prompt := llm.messages[0][0].Content
	assert.True(t, strings.Contains(prompt, "my answer") && strings.Contains(prompt, jd),
		"turn prompt must embed both the user input and the job description")
}
