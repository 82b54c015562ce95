package search

import "fmt"

// ErrBadRequest indicates a structurally invalid request: a bad page number
// or an unknown role tag in scope. Field-level filter problems are never
// errors; they are dropped during normalization.
type ErrBadRequest struct {
	Field   string
	Message string
}

func (e *ErrBadRequest) Error() string {
	return fmt.Sprintf("invalid request: %s - %s", e.Field, e.Message)
}

// ErrSearchUnavailable indicates that every per-role query failed, so no
// partial response is meaningful. Retryable.
type ErrSearchUnavailable struct {
	Failed int
}

func (e *ErrSearchUnavailable) Error() string {
	return fmt.Sprintf("search unavailable: all %d role queries failed", e.Failed)
}
