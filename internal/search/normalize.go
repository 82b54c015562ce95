package search

import (
	"log"
	"net/url"
	"strconv"
	"strings"

	"github.com/agroempleo/candidate-search/internal/geo"
	"github.com/agroempleo/candidate-search/internal/roles"
)

// Normalizer turns a raw key/value bag from the wire into a validated,
// role-scoped Request. Malformed filter fields are dropped, not rejected:
// search UIs compose filters incrementally and partial state is routine.
type Normalizer struct {
	// Verbose enables debug logging of dropped filter fields.
	Verbose bool
}

// Normalize validates and coerces a raw request. The only errors are
// structural: a bad page number or an unknown role tag in scope.
func (n *Normalizer) Normalize(values url.Values) (*Request, error) {
	page, err := parsePage(values.Get(keyPage))
	if err != nil {
		return nil, err
	}

	scope, err := parseRoleScope(values.Get(keyRoles))
	if err != nil {
		return nil, err
	}

	req := &Request{
		Roles:     scope,
		TextQuery: strings.TrimSpace(values.Get(keyQuery)),
		Filters:   make(map[roles.Role]map[string]FilterValue),
		Page:      page,
	}

	// An unrecognized province means no location filter at all; a city is
	// only meaningful inside a valid province.
	if prov, ok := geo.Canonical(values.Get(keyProvince)); ok {
		req.Province = prov
		req.City = strings.TrimSpace(values.Get(keyCity))
	} else if raw := strings.TrimSpace(values.Get(keyProvince)); raw != "" {
		n.debugf("dropping unrecognized province %q", raw)
	}

	for _, role := range scope {
		fields := make(map[string]FilterValue)
		for key, vals := range values {
			if isReserved(key) || len(vals) == 0 {
				continue
			}
			spec, ok := roles.Lookup(role, key)
			if !ok {
				n.debugf("dropping filter %q: not filterable for role %s", key, role)
				continue
			}
			fv, ok := coerce(spec, vals[0])
			if !ok {
				n.debugf("dropping filter %q for role %s: cannot coerce %q", key, role, vals[0])
				continue
			}
			fields[key] = fv
		}
		req.Filters[role] = fields
	}

	return req, nil
}

func (n *Normalizer) debugf(format string, args ...any) {
	if n.Verbose {
		log.Printf("[normalize] "+format, args...)
	}
}

func isReserved(key string) bool {
	switch key {
	case keyRoles, keyQuery, keyProvince, keyCity, keyPage:
		return true
	}
	return false
}

// parsePage accepts a 1-based page index. Missing means page 1.
func parsePage(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ErrBadRequest{Field: keyPage, Message: "must be an integer"}
	}
	if page < 1 {
		return 0, &ErrBadRequest{Field: keyPage, Message: "must be at least 1"}
	}
	return page, nil
}

// parseRoleScope parses a comma-joined role list. Empty means all roles.
func parseRoleScope(raw string) ([]roles.Role, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return roles.All(), nil
	}
	var scope []roles.Role
	seen := make(map[roles.Role]bool)
	for _, part := range strings.Split(raw, ",") {
		tag := roles.Role(strings.ToLower(strings.TrimSpace(part)))
		if tag == "" {
			continue
		}
		if !roles.Valid(tag) {
			return nil, &ErrBadRequest{Field: keyRoles, Message: "unknown role " + string(tag)}
		}
		if !seen[tag] {
			seen[tag] = true
			scope = append(scope, tag)
		}
	}
	if len(scope) == 0 {
		return roles.All(), nil
	}
	return scope, nil
}

// coerce converts a raw string into a FilterValue of the field's kind.
// The second return is false when the value cannot be coerced.
func coerce(spec roles.FieldSpec, raw string) (FilterValue, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return FilterValue{}, false
	}

	switch spec.Kind {
	case roles.Equals:
		return FilterValue{Kind: spec.Kind, Str: raw}, true

	case roles.Boolean:
		switch strings.ToLower(raw) {
		case "true":
			return FilterValue{Kind: spec.Kind, Bool: true}, true
		case "false":
			return FilterValue{Kind: spec.Kind, Bool: false}, true
		}
		return FilterValue{}, false

	case roles.Range:
		return coerceRange(spec, raw)

	case roles.SetIntersects:
		var set []string
		for _, part := range strings.Split(raw, ",") {
			if v := strings.TrimSpace(part); v != "" {
				set = append(set, v)
			}
		}
		if len(set) == 0 {
			return FilterValue{}, false
		}
		return FilterValue{Kind: spec.Kind, Set: set}, true
	}
	return FilterValue{}, false
}

// coerceRange accepts "min-max", "min-", "-max", or a bare "min".
// Bounds outside the field's declared range drop the whole filter.
func coerceRange(spec roles.FieldSpec, raw string) (FilterValue, bool) {
	fv := FilterValue{Kind: spec.Kind}

	lo, hi, found := strings.Cut(raw, "-")
	lo, hi = strings.TrimSpace(lo), strings.TrimSpace(hi)
	if !found {
		hi = ""
	}

	if lo != "" {
		v, err := strconv.Atoi(lo)
		if err != nil || v < spec.Min || v > spec.Max {
			return FilterValue{}, false
		}
		fv.Min = &v
	}
	if hi != "" {
		v, err := strconv.Atoi(hi)
		if err != nil || v < spec.Min || v > spec.Max {
			return FilterValue{}, false
		}
		fv.Max = &v
	}
	if fv.Min == nil && fv.Max == nil {
		return FilterValue{}, false
	}
	if fv.Min != nil && fv.Max != nil && *fv.Min > *fv.Max {
		return FilterValue{}, false
	}
	return fv, true
}
