package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnalysisMode(t *testing.T) {
	for _, s := range []string{"scan", "gap", "fit", "interview"} {
		mode, err := ParseAnalysisMode(s)
		require.NoError(t, err)
		assert.Equal(t, AnalysisMode(s), mode)
	}

	_, err := ParseAnalysisMode("roast")
	assert.Error(t, err)
}

func TestModeStructured(t *testing.T) {
	assert.True(t, ModeScan.Structured())
	assert.True(t, ModeSkillGap.Structured())
	assert.True(t, ModeFitScore.Structured())
	assert.False(t, ModeInterview.Structured())
}

func TestSessionAppendTurn(t *testing.T) {
	s := &Session{}
	s.AppendTurn(RoleUser, "hello")
	s.AppendTurn(RoleAssistant, "hi")

	require.Len(t, s.Chat, 2)
	assert.Equal(t, ChatMessage{Role: RoleUser, Content: "hello"}, s.Chat[0])
	assert.Equal(t, ChatMessage{Role: RoleAssistant, Content: "hi"}, s.Chat[1])
}
