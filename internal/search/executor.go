package search

import (
	"context"
	"log"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agroempleo/candidate-search/internal/profile"
	"github.com/agroempleo/candidate-search/internal/roles"
)

// DefaultQueryTimeout bounds each per-role store query.
const DefaultQueryTimeout = 3 * time.Second

// Store is the read-only contract the engine issues predicates against.
// Each role maps to an independent collection.
type Store interface {
	FindByRole(ctx context.Context, role roles.Role, pred Predicate) ([]profile.Profile, error)
}

// Result is one search response page.
type Result struct {
	Total   int    `json:"total"`
	Items   []Item `json:"items"`
	Page    int    `json:"page"`
	Partial bool   `json:"partial"`
}

// Executor fans a normalized request out over the roles in scope, merges and
// ranks the matches, and projects one page of results.
type Executor struct {
	store   Store
	timeout time.Duration
}

// NewExecutor builds an executor over a store. A non-positive timeout falls
// back to DefaultQueryTimeout.
func NewExecutor(store Store, timeout time.Duration) *Executor {
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}
	return &Executor{store: store, timeout: timeout}
}

// Execute runs the search. Per-role failures degrade to a partial result;
// only total failure is surfaced as an error.
func (e *Executor) Execute(ctx context.Context, req *Request, caller CallerContext) (*Result, error) {
	matches := make([][]profile.Profile, len(req.Roles))
	errs := make([]error, len(req.Roles))

	// The per-role queries touch disjoint collections and never mutate, so
	// they run concurrently. Goroutines record their own failure instead of
	// returning it: one slow or broken role must not cancel the rest.
	g, gctx := errgroup.WithContext(ctx)
	for i, role := range req.Roles {
		i, role := i, role
		pred := BuildPredicate(role, req)
		g.Go(func() error {
			qctx, cancel := context.WithTimeout(gctx, e.timeout)
			defer cancel()
			profiles, err := e.store.FindByRole(qctx, role, pred)
			if err != nil {
				log.Printf("[search] warning: role %s query failed: %v", role, err)
				errs[i] = err
				return nil
			}
			matches[i] = profiles
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	if failed == len(req.Roles) {
		return nil, &ErrSearchUnavailable{Failed: failed}
	}

	var merged []profile.Profile
	for _, ps := range matches {
		merged = append(merged, ps...)
	}
	sortProfiles(merged)

	result := &Result{
		Total:   len(merged),
		Page:    req.Page,
		Items:   []Item{},
		Partial: failed > 0,
	}

	start := PageSize * (req.Page - 1)
	if start < len(merged) {
		end := min(start+PageSize, len(merged))
		for _, p := range merged[start:end] {
			result.Items = append(result.Items, Project(&p, caller))
		}
	}

	return result, nil
}

// sortProfiles orders candidates by experience descending, then name
// ascending, then id ascending. The id tiebreak keeps pagination stable
// across repeated calls.
func sortProfiles(profiles []profile.Profile) {
	slices.SortStableFunc(profiles, func(a, b profile.Profile) int {
		if a.YearsExperience != b.YearsExperience {
			return b.YearsExperience - a.YearsExperience
		}
		if c := strings.Compare(strings.ToLower(a.FullName), strings.ToLower(b.FullName)); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
}
