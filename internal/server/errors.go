package server

import (
	"net/http"

	"github.com/agroempleo/candidate-search/internal/search"
)

// HTTPStatus returns the appropriate HTTP status code for an engine error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *search.ErrBadRequest:
		return http.StatusBadRequest
	case *search.ErrSearchUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
