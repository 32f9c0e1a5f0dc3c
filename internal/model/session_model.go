package model

import (
	"time"

	"github.com/google/uuid"
)

// Session holds everything scoped to one UI session: the last selected
// mode, the stored result per mode, and the interview history. It lives
// in memory only and is gone after a restart.
type Session struct {
	ID        uuid.UUID                        `json:"id"`
	Mode      AnalysisMode                     `json:"mode,omitempty"`
	Results   map[AnalysisMode]*AnalysisResult `json:"-"`
	Chat      []ChatMessage                    `json:"chat,omitempty"`
	CreatedAt time.Time                        `json:"created_at"`
	UpdatedAt time.Time                        `json:"updated_at"`
}

// Current returns the result for the session's active mode, nil if that
// mode has not produced one yet.
func (s *Session) Current() *AnalysisResult {
	return s.Results[s.Mode]
}

// AppendTurn grows the interview history. Turns are never edited or
// removed within a session.
func (s *Session) AppendTurn(role, content string) {
	s.Chat = append(s.Chat, ChatMessage{Role: role, Content: content})
	s.UpdatedAt = time.Now()
}
