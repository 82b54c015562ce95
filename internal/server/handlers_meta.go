package server

import (
	"net/http"

	"github.com/agroempleo/candidate-search/internal/geo"
	"github.com/agroempleo/candidate-search/internal/roles"
)

// RoleSchema describes one role's filterable fields for filter-form rendering.
type RoleSchema struct {
	Role   roles.Role        `json:"role"`
	Fields []roles.FieldSpec `json:"fields"`
}

// handleRoles dumps the role schema registry.
func (s *Server) handleRoles(w http.ResponseWriter, _ *http.Request) {
	schemas := make([]RoleSchema, 0, len(roles.All()))
	for _, role := range roles.All() {
		schemas = append(schemas, RoleSchema{Role: role, Fields: roles.FieldsFor(role)})
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"roles": schemas})
}

// handleProvinces returns the closed province list.
func (s *Server) handleProvinces(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"provinces": geo.Provinces})
}
