package search

import (
	"github.com/google/uuid"

	"github.com/agroempleo/candidate-search/internal/profile"
	"github.com/agroempleo/candidate-search/internal/roles"
)

// CallerContext carries the authorization level of the searching account.
// Authentication itself happens outside the engine; this is the trusted flag
// it hands over.
type CallerContext struct {
	AccountID uuid.UUID
	// Authorized is true when the caller already has an engagement with the
	// profile pool that permits contact disclosure (accepted application,
	// admin tooling). Phone numbers are withheld otherwise.
	Authorized bool
}

// Item is a role-tagged search result projection. It exposes only fields
// relevant to result display; direct-contact data appears only for
// authorized callers or the profile owner.
type Item struct {
	ID              uuid.UUID  `json:"id"`
	Role            roles.Role `json:"role"`
	FullName        string     `json:"full_name"`
	Province        string     `json:"province,omitempty"`
	City            string     `json:"city,omitempty"`
	Bio             string     `json:"bio,omitempty"`
	YearsExperience int        `json:"years_experience"`
	Phone           string     `json:"phone,omitempty"`

	Worker     *profile.WorkerAttrs     `json:"worker,omitempty"`
	Foreman    *profile.ForemanAttrs    `json:"foreman,omitempty"`
	Supervisor *profile.SupervisorAttrs `json:"supervisor,omitempty"`
	Operator   *profile.OperatorAttrs   `json:"operator,omitempty"`
	Engineer   *profile.EngineerAttrs   `json:"engineer,omitempty"`
}

// Project maps a stored profile to its search-result shape.
func Project(p *profile.Profile, caller CallerContext) Item {
	item := Item{
		ID:              p.ID,
		Role:            p.Role,
		FullName:        p.FullName,
		Province:        p.Province,
		City:            p.City,
		Bio:             p.Bio,
		YearsExperience: p.YearsExperience,
	}

	if caller.Authorized || (caller.AccountID != uuid.Nil && caller.AccountID == p.AccountID) {
		item.Phone = p.Phone
	}

	// Only the payload owned by the profile's role is projected.
	switch p.Role {
	case roles.Worker:
		item.Worker = p.Worker
	case roles.Foreman:
		item.Foreman = p.Foreman
	case roles.Supervisor:
		item.Supervisor = p.Supervisor
	case roles.Operator:
		item.Operator = p.Operator
	case roles.Engineer:
		item.Engineer = p.Engineer
	}

	return item
}
