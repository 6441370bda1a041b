package flash

import (
	"context"
	"sync"
	"time"

	"github.com/GoArmGo/fyyur/internal/core/ports"
)

type memoryEntry struct {
	flashes []ports.Flash
	expires time.Time
}

// MemoryStore — хранилище уведомлений в памяти процесса.
// Используется, когда REDIS_URL не задан.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Push(_ context.Context, sessionID string, f ports.Flash) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpired()
	e := s.entries[sessionID]
	e.flashes = append(e.flashes, f)
	e.expires = s.now().Add(s.ttl)
	s.entries[sessionID] = e
	return nil
}

func (s *MemoryStore) Pop(_ context.Context, sessionID string) ([]ports.Flash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[sessionID]
	delete(s.entries, sessionID)
	if !ok || s.now().After(e.expires) {
		return []ports.Flash{}, nil
	}
	return e.flashes, nil
}

func (s *MemoryStore) evictExpired() {
	now := s.now()
	for id, e := range s.entries {
		if now.After(e.expires) {
			delete(s.entries, id)
		}
	}
}
