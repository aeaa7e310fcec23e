// Package session keeps the dataset built by one page load so that later
// filter and sort requests from that page re-derive it without refetching
// quotes. Entries expire after a TTL.
package session

import (
	"context"
	"sync"
	"time"

	"fortune-dashboard/models"

	"github.com/google/uuid"
	"github.com/yanun0323/errors"
)

type Store interface {
	Put(ctx context.Context, companies []models.Company) (string, error)
	// Get reports false for unknown or expired ids.
	Get(ctx context.Context, id string) ([]models.Company, bool, error)
	Close() error
}

var ErrUnknownStore = errors.New("session: unknown store")

type entry struct {
	companies []models.Company
	expires   time.Time
}

type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Put(_ context.Context, companies []models.Company) (string, error) {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, e := range s.entries {
		if !now.Before(e.expires) {
			delete(s.entries, k)
		}
	}
	s.entries[id] = entry{companies: companies, expires: now.Add(s.ttl)}
	return id, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) ([]models.Company, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, false, nil
	}
	if !s.now().Before(e.expires) {
		delete(s.entries, id)
		return nil, false, nil
	}
	return e.companies, true, nil
}

// Len is the number of live and not yet swept entries.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *MemoryStore) Close() error { return nil }
