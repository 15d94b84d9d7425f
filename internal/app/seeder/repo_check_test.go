package seeder_test

import (
	"github.com/heartmarshall/advocates-backend/internal/adapter/memory"
	"github.com/heartmarshall/advocates-backend/internal/adapter/postgres/advocate"
	"github.com/heartmarshall/advocates-backend/internal/app/seeder"
)

// Compile-time checks: both stores must satisfy AdvocateWriter.
var (
	_ seeder.AdvocateWriter = (*advocate.Repo)(nil)
	_ seeder.AdvocateWriter = (*memory.Store)(nil)
)
