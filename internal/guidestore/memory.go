package guidestore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/studivo/studivo-backend/internal/types"
)

type memoryStore struct {
	mu     sync.RWMutex
	guides map[uuid.UUID]types.ExecutionGuide
}

// NewMemoryStore is the single-process default when no redis is configured.
func NewMemoryStore() Store {
	return &memoryStore{guides: map[uuid.UUID]types.ExecutionGuide{}}
}

func (s *memoryStore) Get(_ context.Context, sessionID uuid.UUID) (types.ExecutionGuide, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.guides[sessionID]
	return g, ok, nil
}

func (s *memoryStore) GetAll(_ context.Context) (map[uuid.UUID]types.ExecutionGuide, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[uuid.UUID]types.ExecutionGuide, len(s.guides))
	for id, g := range s.guides {
		out[id] = g
	}
	return out, nil
}

func (s *memoryStore) Set(_ context.Context, guide types.ExecutionGuide) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guides[guide.SessionID] = guide
	return nil
}

func (s *memoryStore) SetMany(_ context.Context, guides []types.ExecutionGuide) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range guides {
		s.guides[g.SessionID] = g
	}
	return nil
}

func (s *memoryStore) Delete(_ context.Context, sessionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.guides, sessionID)
	return nil
}

func (s *memoryStore) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guides = map[uuid.UUID]types.ExecutionGuide{}
	return nil
}

func (s *memoryStore) Close() error { return nil }
