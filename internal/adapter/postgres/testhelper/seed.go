package testhelper

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/advocates-backend/internal/domain"
)

// tableMu serialises tests that assert on whole-table totals, since every
// test in the process shares one container.
var tableMu sync.Mutex

// LockAdvocates takes tableMu until the test finishes and truncates the
// advocates table.
func LockAdvocates(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	tableMu.Lock()
	t.Cleanup(tableMu.Unlock)

	if _, err := pool.Exec(context.Background(), `TRUNCATE advocates RESTART IDENTITY`); err != nil {
		t.Fatalf("testhelper: truncate advocates: %v", err)
	}
}

// SeedAdvocate inserts a into the advocates table and returns it with ID and
// CreatedAt filled in.
func SeedAdvocate(t *testing.T, pool *pgxpool.Pool, a domain.Advocate) domain.Advocate {
	t.Helper()

	specialties, err := json.Marshal(a.NormalizeSpecialties())
	if err != nil {
		t.Fatalf("testhelper: marshal specialties: %v", err)
	}

	err = pool.QueryRow(context.Background(),
		`INSERT INTO advocates (first_name, last_name, city, degree, specialties, years_of_experience, phone_number)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		a.FirstName, a.LastName, a.City, a.Degree, specialties, a.YearsOfExperience, a.PhoneNumber,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedAdvocate insert: %v", err)
	}

	return a
}

// SeedAdvocates inserts every record in order.
func SeedAdvocates(t *testing.T, pool *pgxpool.Pool, list []domain.Advocate) []domain.Advocate {
	t.Helper()
	out := make([]domain.Advocate, len(list))
	for i, a := range list {
		out[i] = SeedAdvocate(t, pool, a)
	}
	return out
}
