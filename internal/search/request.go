// Package search implements the multi-role candidate search engine: filter
// normalization, predicate building, query fan-out, ranking, and projection.
package search

import (
	"github.com/agroempleo/candidate-search/internal/roles"
)

// PageSize is the fixed number of items per result page.
const PageSize = 20

// Reserved query keys that are not filter fields.
const (
	keyRoles    = "roles"
	keyQuery    = "q"
	keyProvince = "province"
	keyCity     = "city"
	keyPage     = "page"
)

// FilterValue is one coerced constraint. Which member is meaningful depends
// on Kind.
type FilterValue struct {
	Kind roles.Kind
	Str  string   // Equals
	Bool bool     // Boolean
	Min  *int     // Range lower bound, nil = open
	Max  *int     // Range upper bound, nil = open
	Set  []string // SetIntersects
}

// Request is a fully normalized search request. Every field is well-typed for
// its declared kind and the role scope is never empty.
type Request struct {
	Roles     []roles.Role
	TextQuery string
	Province  string
	City      string
	// Filters maps role -> field name -> constraint. Only fields the registry
	// marks filterable for that role survive normalization.
	Filters map[roles.Role]map[string]FilterValue
	Page    int
}

// FiltersFor returns the surviving constraints for one role. May be empty,
// which means match-all for that role.
func (r *Request) FiltersFor(role roles.Role) map[string]FilterValue {
	return r.Filters[role]
}
