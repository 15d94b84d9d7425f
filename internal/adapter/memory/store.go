// Package memory implements the advocate store in process memory. It backs
// local runs without PostgreSQL and evaluates the same search rule in Go.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/advocates-backend/internal/domain"
)

// Store keeps advocates ordered by ID.
type Store struct {
	mu   sync.RWMutex
	rows []domain.Advocate
	now  func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Find returns up to limit advocates matching filter after skipping offset.
func (s *Store) Find(ctx context.Context, filter domain.SearchFilter, limit, offset int) ([]domain.Advocate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Advocate{}
	skipped := 0
	for _, a := range s.rows {
		if len(out) >= limit {
			break
		}
		if !filter.Match(a) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		out = append(out, clone(a))
	}
	return out, nil
}

// Count returns the number of advocates matching filter.
func (s *Store) Count(ctx context.Context, filter domain.SearchFilter) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, a := range s.rows {
		if filter.Match(a) {
			n++
		}
	}
	return n, nil
}

// ReplaceAll swaps the whole dataset atomically and returns the number of
// stored records. IDs restart at 1.
func (s *Store) ReplaceAll(ctx context.Context, list []domain.Advocate) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	now := s.now().UTC()
	rows := make([]domain.Advocate, len(list))
	for i, a := range list {
		a.ID = int64(i + 1)
		a.CreatedAt = now
		rows[i] = clone(a)
	}

	s.mu.Lock()
	s.rows = rows
	s.mu.Unlock()

	return len(rows), nil
}

// Ping always succeeds.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func clone(a domain.Advocate) domain.Advocate {
	a.Specialties = a.NormalizeSpecialties()
	return a
}
