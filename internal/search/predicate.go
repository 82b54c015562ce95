package search

import (
	"strings"

	"github.com/agroempleo/candidate-search/internal/profile"
	"github.com/agroempleo/candidate-search/internal/roles"
)

// Clause is one AND-combined match condition on a single field.
type Clause struct {
	Field string
	Spec  roles.FieldSpec
	Value FilterValue
}

// Predicate is the full set of conditions issued against one role's
// collection. All clauses combine with AND; location and free-text scope are
// additional AND conditions on top of the field clauses. A predicate with no
// conditions matches every profile of its role.
type Predicate struct {
	Role     roles.Role
	Clauses  []Clause
	Province string
	City     string
	Text     string
}

// BuildPredicate emits the predicate for one role of a normalized request.
// Field order follows the registry so predicates are deterministic.
func BuildPredicate(role roles.Role, req *Request) Predicate {
	pred := Predicate{
		Role:     role,
		Province: req.Province,
		City:     req.City,
		Text:     req.TextQuery,
	}
	filters := req.FiltersFor(role)
	for _, spec := range roles.FieldsFor(role) {
		fv, ok := filters[spec.Name]
		if !ok {
			continue
		}
		pred.Clauses = append(pred.Clauses, Clause{Field: spec.Name, Spec: spec, Value: fv})
	}
	return pred
}

// Matches evaluates the predicate against a profile in memory. This is the
// reference semantics; the postgres store translates the same predicate to
// SQL.
func (p Predicate) Matches(prof *profile.Profile) bool {
	if prof.Role != p.Role {
		return false
	}
	if p.Province != "" && !strings.EqualFold(prof.Province, p.Province) {
		return false
	}
	if p.City != "" && !strings.EqualFold(prof.City, p.City) {
		return false
	}
	if p.Text != "" && !matchesText(prof, p.Text) {
		return false
	}
	for _, c := range p.Clauses {
		if !c.matches(prof) {
			return false
		}
	}
	return true
}

// matchesText is a case-insensitive substring match on name or city.
func matchesText(prof *profile.Profile, text string) bool {
	needle := strings.ToLower(text)
	return strings.Contains(strings.ToLower(prof.FullName), needle) ||
		strings.Contains(strings.ToLower(prof.City), needle)
}

func (c Clause) matches(prof *profile.Profile) bool {
	value, ok := prof.FieldValue(c.Field)
	if !ok {
		return false
	}

	switch c.Value.Kind {
	case roles.Equals:
		s, ok := value.(string)
		return ok && strings.EqualFold(s, c.Value.Str)

	case roles.Boolean:
		b, ok := value.(bool)
		return ok && b == c.Value.Bool

	case roles.Range:
		n, ok := value.(int)
		if !ok {
			return false
		}
		if c.Value.Min != nil && n < *c.Value.Min {
			return false
		}
		if c.Value.Max != nil && n > *c.Value.Max {
			return false
		}
		return true

	case roles.SetIntersects:
		set, ok := value.([]string)
		if !ok {
			return false
		}
		return intersects(set, c.Value.Set)
	}
	return false
}

// intersects reports whether the stored set shares at least one element with
// the requested set, case-insensitively.
func intersects(stored, requested []string) bool {
	for _, want := range requested {
		for _, have := range stored {
			if strings.EqualFold(have, want) {
				return true
			}
		}
	}
	return false
}
