package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/andriansah/cv-audit/internal/model"
)

// SessionRepository keeps sessions in memory. Results are explicitly not
// persisted; everything here is gone after a restart. The mutex guards
// the map, individual sessions are only mutated by the interaction that
// owns them.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*model.Session
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[uuid.UUID]*model.Session)}
}

func (r *SessionRepository) Create() *model.Session {
	now := time.Now()
	session := &model.Session{
		ID:        uuid.New(),
		Results:   make(map[model.AnalysisMode]*model.AnalysisResult),
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()
	return session
}

func (r *SessionRepository) Find(id uuid.UUID) (*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

func (r *SessionRepository) Delete(id uuid.UUID) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}
