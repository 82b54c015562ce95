// Package roles defines the five worker-role schemas and the static registry
// of which attributes each role exposes to search filtering.
package roles

// Role identifies one of the five worker-profile categories.
type Role string

const (
	Worker     Role = "worker"
	Foreman    Role = "foreman"
	Supervisor Role = "supervisor"
	Operator   Role = "operator"
	Engineer   Role = "engineer"
)

// All returns every known role in registry order.
func All() []Role {
	return []Role{Worker, Foreman, Supervisor, Operator, Engineer}
}

// Valid reports whether r is a known role tag.
func Valid(r Role) bool {
	_, ok := fieldsByRole[r]
	return ok
}

// Kind describes how a filterable field is matched.
type Kind int

const (
	// Equals matches the stored value exactly.
	Equals Kind = iota
	// Boolean matches the stored flag exactly; an absent filter means "don't care".
	Boolean
	// Range matches a numeric attribute against inclusive bounds.
	Range
	// SetIntersects matches when the stored set shares at least one element
	// with the requested set.
	SetIntersects
)

// String returns the kind name used in API metadata.
func (k Kind) String() string {
	switch k {
	case Equals:
		return "equals"
	case Boolean:
		return "boolean"
	case Range:
		return "range"
	case SetIntersects:
		return "set_intersects"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the kind as its name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// FieldSpec describes one filterable attribute of a role.
type FieldSpec struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
	// Min and Max bound Range fields, inclusive. Zero for other kinds.
	Min int `json:"min,omitempty"`
	Max int `json:"max,omitempty"`
}

// experienceField is shared by all roles and maps to the common
// years_experience attribute.
var experienceField = FieldSpec{Name: "experience", Kind: Range, Min: 0, Max: 60}

var fieldsByRole = map[Role][]FieldSpec{
	Worker: {
		experienceField,
		{Name: "crops", Kind: SetIntersects},
		{Name: "tools", Kind: SetIntersects},
		{Name: "has_vehicle", Kind: Boolean},
		{Name: "can_relocate", Kind: Boolean},
		{Name: "food_handler_cert", Kind: Boolean},
		{Name: "available_season", Kind: Boolean},
	},
	Foreman: {
		experienceField,
		{Name: "crops", Kind: SetIntersects},
		{Name: "work_provinces", Kind: SetIntersects},
		{Name: "crew_size", Kind: Range, Min: 1, Max: 200},
		{Name: "has_van", Kind: Boolean},
		{Name: "can_travel", Kind: Boolean},
	},
	Supervisor: {
		experienceField,
		{Name: "specialties", Kind: SetIntersects},
		{Name: "crops", Kind: SetIntersects},
		{Name: "phyto_level", Kind: Equals},
		{Name: "can_drive_tractor", Kind: Boolean},
		{Name: "has_vehicle", Kind: Boolean},
	},
	Operator: {
		experienceField,
		{Name: "machinery", Kind: SetIntersects},
		{Name: "license_b", Kind: Boolean},
		{Name: "license_c", Kind: Boolean},
		{Name: "can_relocate", Kind: Boolean},
		{Name: "needs_lodging", Kind: Boolean},
	},
	Engineer: {
		experienceField,
		{Name: "specialties", Kind: SetIntersects},
		{Name: "services", Kind: SetIntersects},
		{Name: "collegiate_number", Kind: Equals},
		{Name: "can_travel", Kind: Boolean},
		{Name: "available_season", Kind: Boolean},
	},
}

// PhytoLevels are the accepted values for the supervisor phyto_level field.
var PhytoLevels = []string{"basic", "qualified", "fumigator"}

// FieldsFor returns the ordered filterable fields for a role.
// Unknown roles yield nil.
func FieldsFor(r Role) []FieldSpec {
	return fieldsByRole[r]
}

// Lookup returns the spec for a role's field, if it is filterable.
func Lookup(r Role, name string) (FieldSpec, bool) {
	for _, f := range fieldsByRole[r] {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// IsFilterable reports whether name is a filterable field of role r.
func IsFilterable(r Role, name string) bool {
	_, ok := Lookup(r, name)
	return ok
}
