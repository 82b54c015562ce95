package server

import (
	"github.com/google/uuid"

	"github.com/agroempleo/candidate-search/internal/profile"
	"github.com/agroempleo/candidate-search/internal/roles"
	"github.com/agroempleo/candidate-search/internal/store"
)

// testJWTSecret signs caller tokens in tests.
const testJWTSecret = "test-secret"

// newTestServer builds a server over an in-memory store.
func newTestServer(profiles ...profile.Profile) (*Server, *store.Memory) {
	mem := store.NewMemory()
	for _, p := range profiles {
		mem.Add(p)
	}
	s := New(Options{
		Port:      0,
		Store:     mem,
		JWTSecret: testJWTSecret,
	})
	return s, mem
}

// testWorker builds a worker profile fixture.
func testWorker(name, province string, years int, attrs profile.WorkerAttrs) profile.Profile {
	return profile.Profile{
		ID:              uuid.New(),
		Role:            roles.Worker,
		AccountID:       uuid.New(),
		FullName:        name,
		Province:        province,
		Phone:           "+34 600 123 456",
		YearsExperience: years,
		Worker:          &attrs,
	}
}
