package server

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/agroempleo/candidate-search/internal/search"
)

// callerClaims are the claims the external auth service issues. The engine
// only reads them; it never mints tokens.
type callerClaims struct {
	AccountID string `json:"account_id"`
	// ContactsAuthorized is set by the application service once the caller
	// has an engagement that permits contact disclosure.
	ContactsAuthorized bool `json:"contacts_authorized"`
	jwt.RegisteredClaims
}

// callerContext derives the caller's authorization level from a bearer
// token. Any parse or validation problem yields the unauthorized view, never
// an error: authentication enforcement is an external collaborator's job.
func (s *Server) callerContext(r *http.Request) search.CallerContext {
	if s.jwtSecret == "" {
		return search.CallerContext{}
	}

	header := r.Header.Get("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return search.CallerContext{}
	}

	claims := &callerClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return search.CallerContext{}
	}

	ctx := search.CallerContext{Authorized: claims.ContactsAuthorized}
	if id, err := uuid.Parse(claims.AccountID); err == nil {
		ctx.AccountID = id
	}
	return ctx
}
