package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process session store used in tests and when running
// without redis. Sessions never expire.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]int)}
}

func (s *MemoryStore) Create(_ context.Context, userID int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sessionID := uuid.NewString()
	s.sessions[sessionID] = userID
	return sessionID, nil
}

func (s *MemoryStore) UserID(_ context.Context, sessionID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID, ok := s.sessions[sessionID]
	if !ok {
		return 0, ErrNoSession
	}
	return userID, nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
