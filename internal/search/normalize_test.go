package search

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroempleo/candidate-search/internal/roles"
)

func normalize(t *testing.T, values url.Values) *Request {
	t.Helper()
	req, err := (&Normalizer{}).Normalize(values)
	require.NoError(t, err)
	return req
}

func TestNormalize_Defaults(t *testing.T) {
	req := normalize(t, url.Values{})

	assert.Equal(t, roles.All(), req.Roles, "empty scope defaults to all roles")
	assert.Equal(t, 1, req.Page)
	assert.Empty(t, req.TextQuery)
	assert.Empty(t, req.Province)
	for _, role := range req.Roles {
		assert.Empty(t, req.FiltersFor(role))
	}
}

func TestNormalize_RoleScope(t *testing.T) {
	req := normalize(t, url.Values{"roles": {"worker, foreman ,worker"}})
	assert.Equal(t, []roles.Role{roles.Worker, roles.Foreman}, req.Roles, "deduplicated, order kept")
}

func TestNormalize_UnknownRole(t *testing.T) {
	_, err := (&Normalizer{}).Normalize(url.Values{"roles": {"worker,picker"}})
	var badReq *ErrBadRequest
	require.ErrorAs(t, err, &badReq)
	assert.Equal(t, "roles", badReq.Field)
}

func TestNormalize_Page(t *testing.T) {
	tests := []struct {
		name    string
		page    string
		want    int
		wantErr bool
	}{
		{"missing defaults to 1", "", 1, false},
		{"explicit", "3", 3, false},
		{"zero", "0", 0, true},
		{"negative", "-2", 0, true},
		{"garbage", "two", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			if tt.page != "" {
				values.Set("page", tt.page)
			}
			req, err := (&Normalizer{}).Normalize(values)
			if tt.wantErr {
				var badReq *ErrBadRequest
				assert.ErrorAs(t, err, &badReq)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Page)
		})
	}
}

func TestNormalize_ProvinceValidation(t *testing.T) {
	req := normalize(t, url.Values{
		"province": {"huelva"},
		"city":     {"Lepe"},
	})
	assert.Equal(t, "Huelva", req.Province, "province resolves to canonical form")
	assert.Equal(t, "Lepe", req.City)

	// An unrecognized province drops the whole location filter, city included.
	req = normalize(t, url.Values{
		"province": {"Atlantis"},
		"city":     {"Lepe"},
	})
	assert.Empty(t, req.Province)
	assert.Empty(t, req.City)
}

func TestNormalize_Coercion(t *testing.T) {
	req := normalize(t, url.Values{
		"roles":       {"worker"},
		"crops":       {"olive, strawberry ,"},
		"has_vehicle": {"true"},
		"experience":  {"5-10"},
	})

	filters := req.FiltersFor(roles.Worker)
	require.Len(t, filters, 3)

	assert.Equal(t, []string{"olive", "strawberry"}, filters["crops"].Set)
	assert.True(t, filters["has_vehicle"].Bool)
	require.NotNil(t, filters["experience"].Min)
	require.NotNil(t, filters["experience"].Max)
	assert.Equal(t, 5, *filters["experience"].Min)
	assert.Equal(t, 10, *filters["experience"].Max)
}

func TestNormalize_BooleanFalseIsKept(t *testing.T) {
	req := normalize(t, url.Values{
		"roles":       {"worker"},
		"has_vehicle": {"false"},
	})
	fv, ok := req.FiltersFor(roles.Worker)["has_vehicle"]
	require.True(t, ok, "filtering on false is distinct from not filtering")
	assert.False(t, fv.Bool)
}

func TestNormalize_RangeForms(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		min  *int
		max  *int
		kept bool
	}{
		{"closed", "5-10", ptr(5), ptr(10), true},
		{"open max", "5-", ptr(5), nil, true},
		{"open min", "-10", nil, ptr(10), true},
		{"bare minimum", "5", ptr(5), nil, true},
		{"inverted", "10-5", nil, nil, false},
		{"out of declared bounds", "65-", nil, nil, false},
		{"garbage", "five", nil, nil, false},
		{"dash only", "-", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := normalize(t, url.Values{
				"roles":      {"worker"},
				"experience": {tt.raw},
			})
			fv, ok := req.FiltersFor(roles.Worker)["experience"]
			require.Equal(t, tt.kept, ok)
			if !tt.kept {
				return
			}
			assert.Equal(t, tt.min, fv.Min)
			assert.Equal(t, tt.max, fv.Max)
		})
	}
}

// A filter field that belongs to another role is silently dropped; the query
// for the scoped role proceeds unaffected.
func TestNormalize_ForeignFieldDropped(t *testing.T) {
	req := normalize(t, url.Values{
		"roles":     {"worker"},
		"crew_size": {"5-20"},
		"crops":     {"olive"},
	})

	filters := req.FiltersFor(roles.Worker)
	assert.NotContains(t, filters, "crew_size")
	assert.Contains(t, filters, "crops")
}

// The same field name can survive for one role in scope and be dropped for
// another.
func TestNormalize_PerRoleScoping(t *testing.T) {
	req := normalize(t, url.Values{
		"roles":     {"worker,foreman"},
		"crew_size": {"5-20"},
	})

	assert.NotContains(t, req.FiltersFor(roles.Worker), "crew_size")
	assert.Contains(t, req.FiltersFor(roles.Foreman), "crew_size")
}

func TestNormalize_BadCoercionDropped(t *testing.T) {
	req := normalize(t, url.Values{
		"roles":       {"worker"},
		"has_vehicle": {"yes"},
		"crops":       {" , ,"},
	})
	assert.Empty(t, req.FiltersFor(roles.Worker), "uncoercible values drop, never error")
}

func ptr(v int) *int { return &v }
