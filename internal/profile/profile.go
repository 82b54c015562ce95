// Package profile defines the worker profile model: a shared base record plus
// one role-specific payload, discriminated by an explicit role tag.
package profile

import (
	"github.com/google/uuid"

	"github.com/agroempleo/candidate-search/internal/roles"
)

// Profile is one stored worker profile. Exactly one of the role payloads is
// populated, the one matching Role; payloads for other roles are ignored.
type Profile struct {
	ID        uuid.UUID  `json:"id"`
	Role      roles.Role `json:"role"`
	AccountID uuid.UUID  `json:"account_id"`

	FullName        string `json:"full_name"`
	Province        string `json:"province,omitempty"`
	City            string `json:"city,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Bio             string `json:"bio,omitempty"`
	ImageURL        string `json:"image_url,omitempty"`
	YearsExperience int    `json:"years_experience"`

	Worker     *WorkerAttrs     `json:"worker,omitempty"`
	Foreman    *ForemanAttrs    `json:"foreman,omitempty"`
	Supervisor *SupervisorAttrs `json:"supervisor,omitempty"`
	Operator   *OperatorAttrs   `json:"operator,omitempty"`
	Engineer   *EngineerAttrs   `json:"engineer,omitempty"`
}

// WorkerAttrs holds the general-worker payload.
type WorkerAttrs struct {
	Crops           []string `json:"crops,omitempty"`
	Tools           []string `json:"tools,omitempty"`
	HasVehicle      bool     `json:"has_vehicle"`
	CanRelocate     bool     `json:"can_relocate"`
	FoodHandlerCert bool     `json:"food_handler_cert"`
	AvailableSeason bool     `json:"available_season"`
}

// ForemanAttrs holds the crew-foreman payload.
type ForemanAttrs struct {
	Crops         []string `json:"crops,omitempty"`
	WorkProvinces []string `json:"work_provinces,omitempty"`
	CrewSize      int      `json:"crew_size"`
	HasVan        bool     `json:"has_van"`
	CanTravel     bool     `json:"can_travel"`
}

// SupervisorAttrs holds the field-supervisor payload.
type SupervisorAttrs struct {
	Specialties     []string `json:"specialties,omitempty"`
	Crops           []string `json:"crops,omitempty"`
	PhytoLevel      string   `json:"phyto_level,omitempty"`
	CanDriveTractor bool     `json:"can_drive_tractor"`
	HasVehicle      bool     `json:"has_vehicle"`
}

// OperatorAttrs holds the machinery-operator payload.
type OperatorAttrs struct {
	Machinery    []string `json:"machinery,omitempty"`
	LicenseB     bool     `json:"license_b"`
	LicenseC     bool     `json:"license_c"`
	CanRelocate  bool     `json:"can_relocate"`
	NeedsLodging bool     `json:"needs_lodging"`
}

// EngineerAttrs holds the agronomy-engineer payload.
type EngineerAttrs struct {
	Specialties      []string `json:"specialties,omitempty"`
	Services         []string `json:"services,omitempty"`
	CollegiateNumber string   `json:"collegiate_number,omitempty"`
	CanTravel        bool     `json:"can_travel"`
	AvailableSeason  bool     `json:"available_season"`
}

// FieldValue returns the value of a filterable field by its registry name,
// consulting only the payload owned by the profile's role. The second return
// is false when the field does not apply to this profile.
func (p *Profile) FieldValue(name string) (any, bool) {
	if name == "experience" {
		return p.YearsExperience, true
	}
	switch p.Role {
	case roles.Worker:
		if p.Worker == nil {
			return nil, false
		}
		switch name {
		case "crops":
			return p.Worker.Crops, true
		case "tools":
			return p.Worker.Tools, true
		case "has_vehicle":
			return p.Worker.HasVehicle, true
		case "can_relocate":
			return p.Worker.CanRelocate, true
		case "food_handler_cert":
			return p.Worker.FoodHandlerCert, true
		case "available_season":
			return p.Worker.AvailableSeason, true
		}
	case roles.Foreman:
		if p.Foreman == nil {
			return nil, false
		}
		switch name {
		case "crops":
			return p.Foreman.Crops, true
		case "work_provinces":
			return p.Foreman.WorkProvinces, true
		case "crew_size":
			return p.Foreman.CrewSize, true
		case "has_van":
			return p.Foreman.HasVan, true
		case "can_travel":
			return p.Foreman.CanTravel, true
		}
	case roles.Supervisor:
		if p.Supervisor == nil {
			return nil, false
		}
		switch name {
		case "specialties":
			return p.Supervisor.Specialties, true
		case "crops":
			return p.Supervisor.Crops, true
		case "phyto_level":
			return p.Supervisor.PhytoLevel, true
		case "can_drive_tractor":
			return p.Supervisor.CanDriveTractor, true
		case "has_vehicle":
			return p.Supervisor.HasVehicle, true
		}
	case roles.Operator:
		if p.Operator == nil {
			return nil, false
		}
		switch name {
		case "machinery":
			return p.Operator.Machinery, true
		case "license_b":
			return p.Operator.LicenseB, true
		case "license_c":
			return p.Operator.LicenseC, true
		case "can_relocate":
			return p.Operator.CanRelocate, true
		case "needs_lodging":
			return p.Operator.NeedsLodging, true
		}
	case roles.Engineer:
		if p.Engineer == nil {
			return nil, false
		}
		switch name {
		case "specialties":
			return p.Engineer.Specialties, true
		case "services":
			return p.Engineer.Services, true
		case "collegiate_number":
			return p.Engineer.CollegiateNumber, true
		case "can_travel":
			return p.Engineer.CanTravel, true
		case "available_season":
			return p.Engineer.AvailableSeason, true
		}
	}
	return nil, false
}
