// Package seeder loads the advocate dataset, validates it and replaces the
// stored directory with it.
package seeder

import (
	"context"

	"github.com/heartmarshall/advocates-backend/internal/domain"
)

// AdvocateWriter replaces the stored directory in one step.
// Implemented by postgres advocate.Repo and memory.Store.
type AdvocateWriter interface {
	ReplaceAll(ctx context.Context, list []domain.Advocate) (int, error)
}
