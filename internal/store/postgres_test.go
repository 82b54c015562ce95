package store

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroempleo/candidate-search/internal/roles"
	"github.com/agroempleo/candidate-search/internal/search"
)

func predicateFor(t *testing.T, role roles.Role, values url.Values) search.Predicate {
	t.Helper()
	req, err := (&search.Normalizer{}).Normalize(values)
	require.NoError(t, err)
	return search.BuildPredicate(role, req)
}

func TestBuildQuery_MatchAll(t *testing.T) {
	pred := predicateFor(t, roles.Worker, url.Values{"roles": {"worker"}})

	query, args, err := buildQuery(roles.Worker, pred)
	require.NoError(t, err)

	assert.NotContains(t, query, "WHERE", "empty predicate selects the whole table")
	assert.Empty(t, args)
	assert.Contains(t, query, "FROM worker_profiles")
}

func TestBuildQuery_AllClauseKinds(t *testing.T) {
	pred := predicateFor(t, roles.Foreman, url.Values{
		"roles":     {"foreman"},
		"crops":     {"Olive,Citrus"},
		"crew_size": {"10-40"},
		"has_van":   {"true"},
		"province":  {"Jaén"},
		"q":         {"lópez"},
	})

	query, args, err := buildQuery(roles.Foreman, pred)
	require.NoError(t, err)

	assert.Contains(t, query, "FROM foreman_profiles")
	assert.Contains(t, query, "crops && $1")
	assert.Contains(t, query, "crew_size >= $2")
	assert.Contains(t, query, "crew_size <= $3")
	assert.Contains(t, query, "has_van = $4")
	assert.Contains(t, query, "province = $5")
	assert.Contains(t, query, "(full_name ILIKE $6 OR city ILIKE $6)")

	require.Len(t, args, 6)
	assert.Equal(t, []string{"olive", "citrus"}, args[0], "set values lowercased to match storage")
	assert.Equal(t, 10, args[1])
	assert.Equal(t, 40, args[2])
	assert.Equal(t, true, args[3])
	assert.Equal(t, "Jaén", args[4])
	assert.Equal(t, "%lópez%", args[5])
}

func TestBuildQuery_ExperienceMapsToColumn(t *testing.T) {
	pred := predicateFor(t, roles.Worker, url.Values{
		"roles":      {"worker"},
		"experience": {"5-"},
	})

	query, args, err := buildQuery(roles.Worker, pred)
	require.NoError(t, err)

	assert.Contains(t, query, "years_experience >= $1")
	assert.Equal(t, []any{5}, args)
}

func TestBuildQuery_EqualsIsCaseInsensitive(t *testing.T) {
	pred := predicateFor(t, roles.Supervisor, url.Values{
		"roles":       {"supervisor"},
		"phyto_level": {"Qualified"},
	})

	query, args, err := buildQuery(roles.Supervisor, pred)
	require.NoError(t, err)

	assert.Contains(t, query, "LOWER(phyto_level) = LOWER($1)")
	assert.Equal(t, []any{"Qualified"}, args)
}

func TestBuildQuery_CityClause(t *testing.T) {
	pred := predicateFor(t, roles.Worker, url.Values{
		"roles":    {"worker"},
		"province": {"Huelva"},
		"city":     {"Lepe"},
	})

	query, args, err := buildQuery(roles.Worker, pred)
	require.NoError(t, err)

	assert.Contains(t, query, "province = $1")
	assert.Contains(t, query, "LOWER(city) = LOWER($2)")
	assert.Equal(t, []any{"Huelva", "Lepe"}, args)
}

func TestBuildQuery_UnknownRole(t *testing.T) {
	_, _, err := buildQuery("picker", search.Predicate{Role: "picker"})
	assert.Error(t, err)
}

func TestRoleTables_CoverEveryRole(t *testing.T) {
	for _, role := range roles.All() {
		assert.Contains(t, roleTables, role)
		assert.Contains(t, roleColumns, role)
	}
}
