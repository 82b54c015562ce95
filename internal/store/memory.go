package store

import (
	"context"
	"sync"

	"github.com/agroempleo/candidate-search/internal/profile"
	"github.com/agroempleo/candidate-search/internal/roles"
	"github.com/agroempleo/candidate-search/internal/search"
)

// Memory is an in-memory profile store. It evaluates predicates directly
// against profile values and backs tests and local development.
type Memory struct {
	mu       sync.RWMutex
	byRole   map[roles.Role][]profile.Profile
	failures map[roles.Role]error
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		byRole:   make(map[roles.Role][]profile.Profile),
		failures: make(map[roles.Role]error),
	}
}

// Add inserts a profile into its role's collection.
func (m *Memory) Add(p profile.Profile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byRole[p.Role] = append(m.byRole[p.Role], p)
}

// FailRole makes subsequent queries for a role return err, simulating an
// unavailable backend. A nil err clears the failure.
func (m *Memory) FailRole(role roles.Role, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.failures, role)
		return
	}
	m.failures[role] = err
}

// FindByRole returns every profile of the role matching the predicate.
func (m *Memory) FindByRole(ctx context.Context, role roles.Role, pred search.Predicate) ([]profile.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.failures[role]; err != nil {
		return nil, err
	}

	var out []profile.Profile
	for _, p := range m.byRole[role] {
		if pred.Matches(&p) {
			out = append(out, p)
		}
	}
	return out, nil
}
