package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/agroempleo/candidate-search/internal/cache"
	"github.com/agroempleo/candidate-search/internal/search"
)

// handleSearch runs a search from query-string parameters: flattened
// comma-joined sets, "true"/"false" booleans, "min-max" ranges.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	caller := s.callerContext(r)

	req, err := s.normalizer.Normalize(r.URL.Query())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.runSearch(r.Context(), w, req, caller)
}

// SearchRequestBody is the JSON form of a search request. Filter values use
// the same flattened string encoding as the query string; all coercion stays
// in the normalizer.
type SearchRequestBody struct {
	Roles    []string          `json:"roles" validate:"omitempty,dive,oneof=worker foreman supervisor operator engineer"`
	Query    string            `json:"q"`
	Province string            `json:"province"`
	City     string            `json:"city"`
	Filters  map[string]string `json:"filters"`
	Page     int               `json:"page" validate:"omitempty,gte=1"`
}

// Validate validates the SearchRequestBody using the validator.
func (b *SearchRequestBody) Validate() error {
	validate := validator.New()
	return validate.Struct(b)
}

// values flattens the body into the bag shape the normalizer consumes.
func (b *SearchRequestBody) values() url.Values {
	values := url.Values{}
	if len(b.Roles) > 0 {
		values.Set("roles", strings.Join(b.Roles, ","))
	}
	if b.Query != "" {
		values.Set("q", b.Query)
	}
	if b.Province != "" {
		values.Set("province", b.Province)
	}
	if b.City != "" {
		values.Set("city", b.City)
	}
	if b.Page > 0 {
		values.Set("page", strconv.Itoa(b.Page))
	}
	for key, val := range b.Filters {
		values.Set(key, val)
	}
	return values
}

// handleSearchPost runs a search from a JSON body.
func (s *Server) handleSearchPost(w http.ResponseWriter, r *http.Request) {
	caller := s.callerContext(r)

	var body SearchRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	if err := body.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid search request: "+err.Error())
		return
	}

	req, err := s.normalizer.Normalize(body.values())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.runSearch(r.Context(), w, req, caller)
}

// runSearch consults the cache, executes on miss, and writes the response.
func (s *Server) runSearch(ctx context.Context, w http.ResponseWriter, req *search.Request, caller search.CallerContext) {
	key := cache.Key(req, caller)
	if result := s.cache.Get(ctx, key); result != nil {
		s.jsonResponse(w, http.StatusOK, result)
		return
	}

	result, err := s.executor.Execute(ctx, req, caller)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.cache.Set(ctx, key, result)
	s.jsonResponse(w, http.StatusOK, result)
}
