package store

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroempleo/candidate-search/internal/profile"
	"github.com/agroempleo/candidate-search/internal/roles"
)

func TestMemory_FindByRole(t *testing.T) {
	m := NewMemory()
	m.Add(profile.Profile{
		ID:   uuid.New(),
		Role: roles.Worker,
		Worker: &profile.WorkerAttrs{
			Crops: []string{"olive", "strawberry"},
		},
	})
	m.Add(profile.Profile{
		ID:     uuid.New(),
		Role:   roles.Worker,
		Worker: &profile.WorkerAttrs{Crops: []string{"citrus"}},
	})

	pred := predicateFor(t, roles.Worker, url.Values{
		"roles": {"worker"},
		"crops": {"strawberry,almond"},
	})

	matches, err := m.FindByRole(context.Background(), roles.Worker, pred)
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestMemory_RolesAreDisjoint(t *testing.T) {
	m := NewMemory()
	m.Add(profile.Profile{ID: uuid.New(), Role: roles.Worker, Worker: &profile.WorkerAttrs{}})

	pred := predicateFor(t, roles.Foreman, url.Values{"roles": {"foreman"}})
	matches, err := m.FindByRole(context.Background(), roles.Foreman, pred)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMemory_FailRole(t *testing.T) {
	m := NewMemory()
	boom := errors.New("boom")
	m.FailRole(roles.Worker, boom)

	pred := predicateFor(t, roles.Worker, url.Values{"roles": {"worker"}})
	_, err := m.FindByRole(context.Background(), roles.Worker, pred)
	assert.ErrorIs(t, err, boom)

	m.FailRole(roles.Worker, nil)
	_, err = m.FindByRole(context.Background(), roles.Worker, pred)
	assert.NoError(t, err)
}

func TestMemory_CancelledContext(t *testing.T) {
	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pred := predicateFor(t, roles.Worker, url.Values{"roles": {"worker"}})
	_, err := m.FindByRole(ctx, roles.Worker, pred)
	assert.ErrorIs(t, err, context.Canceled)
}
