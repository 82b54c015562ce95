// Package store provides the persisted profile collections the search engine
// reads from: one postgres table per worker role, plus an in-memory
// implementation of the same contract.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agroempleo/candidate-search/internal/profile"
	"github.com/agroempleo/candidate-search/internal/roles"
	"github.com/agroempleo/candidate-search/internal/search"
)

// DB wraps a postgres connection pool over the five profile tables.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

var roleTables = map[roles.Role]string{
	roles.Worker:     "worker_profiles",
	roles.Foreman:    "foreman_profiles",
	roles.Supervisor: "supervisor_profiles",
	roles.Operator:   "operator_profiles",
	roles.Engineer:   "engineer_profiles",
}

// baseColumns are shared by every profile table, in scan order.
const baseColumns = "id, account_id, full_name, province, city, phone, bio, image_url, years_experience"

var roleColumns = map[roles.Role]string{
	roles.Worker:     "crops, tools, has_vehicle, can_relocate, food_handler_cert, available_season",
	roles.Foreman:    "crops, work_provinces, crew_size, has_van, can_travel",
	roles.Supervisor: "specialties, crops, phyto_level, can_drive_tractor, has_vehicle",
	roles.Operator:   "machinery, license_b, license_c, can_relocate, needs_lodging",
	roles.Engineer:   "specialties, services, collegiate_number, can_travel, available_season",
}

// FindByRole runs a predicate against one role's table and returns every
// match. Pagination happens in the executor, which needs the full match set
// for an accurate total.
func (db *DB) FindByRole(ctx context.Context, role roles.Role, pred search.Predicate) ([]profile.Profile, error) {
	query, args, err := buildQuery(role, pred)
	if err != nil {
		return nil, err
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", roleTables[role], err)
	}
	defer rows.Close()

	var profiles []profile.Profile
	for rows.Next() {
		p, err := scanProfile(role, rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", roleTables[role], err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s rows: %w", roleTables[role], err)
	}
	return profiles, nil
}

// fieldColumn maps a registry field name to its column.
func fieldColumn(name string) string {
	if name == "experience" {
		return "years_experience"
	}
	return name
}

// buildQuery translates a predicate into one SELECT over the role's table.
// Set-valued columns are text[] and use the && overlap operator; set values
// are stored lowercase, so requested values are lowercased to match.
func buildQuery(role roles.Role, pred search.Predicate) (string, []any, error) {
	table, ok := roleTables[role]
	if !ok {
		return "", nil, fmt.Errorf("unknown role %q", role)
	}

	var conditions []string
	var args []any
	argNum := 1

	add := func(cond string, vals ...any) {
		conditions = append(conditions, cond)
		args = append(args, vals...)
		argNum += len(vals)
	}

	for _, c := range pred.Clauses {
		col := fieldColumn(c.Field)
		switch c.Value.Kind {
		case roles.Equals:
			add(fmt.Sprintf("LOWER(%s) = LOWER($%d)", col, argNum), c.Value.Str)
		case roles.Boolean:
			add(fmt.Sprintf("%s = $%d", col, argNum), c.Value.Bool)
		case roles.Range:
			if c.Value.Min != nil {
				add(fmt.Sprintf("%s >= $%d", col, argNum), *c.Value.Min)
			}
			if c.Value.Max != nil {
				add(fmt.Sprintf("%s <= $%d", col, argNum), *c.Value.Max)
			}
		case roles.SetIntersects:
			add(fmt.Sprintf("%s && $%d", col, argNum), lowered(c.Value.Set))
		}
	}

	if pred.Province != "" {
		add(fmt.Sprintf("province = $%d", argNum), pred.Province)
	}
	if pred.City != "" {
		add(fmt.Sprintf("LOWER(city) = LOWER($%d)", argNum), pred.City)
	}
	if pred.Text != "" {
		add(fmt.Sprintf("(full_name ILIKE $%d OR city ILIKE $%d)", argNum, argNum),
			"%"+pred.Text+"%")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf("SELECT %s, %s FROM %s%s",
		baseColumns, roleColumns[role], table, whereClause)
	return query, args, nil
}

func lowered(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}

// rowScanner is the subset of pgx.Rows the scan helpers need.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(role roles.Role, row rowScanner) (profile.Profile, error) {
	var p profile.Profile
	p.Role = role
	base := []any{
		&p.ID, &p.AccountID, &p.FullName, &p.Province, &p.City,
		&p.Phone, &p.Bio, &p.ImageURL, &p.YearsExperience,
	}

	switch role {
	case roles.Worker:
		a := &profile.WorkerAttrs{}
		p.Worker = a
		return p, row.Scan(append(base,
			&a.Crops, &a.Tools, &a.HasVehicle, &a.CanRelocate,
			&a.FoodHandlerCert, &a.AvailableSeason)...)
	case roles.Foreman:
		a := &profile.ForemanAttrs{}
		p.Foreman = a
		return p, row.Scan(append(base,
			&a.Crops, &a.WorkProvinces, &a.CrewSize, &a.HasVan, &a.CanTravel)...)
	case roles.Supervisor:
		a := &profile.SupervisorAttrs{}
		p.Supervisor = a
		return p, row.Scan(append(base,
			&a.Specialties, &a.Crops, &a.PhytoLevel, &a.CanDriveTractor,
			&a.HasVehicle)...)
	case roles.Operator:
		a := &profile.OperatorAttrs{}
		p.Operator = a
		return p, row.Scan(append(base,
			&a.Machinery, &a.LicenseB, &a.LicenseC, &a.CanRelocate,
			&a.NeedsLodging)...)
	case roles.Engineer:
		a := &profile.EngineerAttrs{}
		p.Engineer = a
		return p, row.Scan(append(base,
			&a.Specialties, &a.Services, &a.CollegiateNumber, &a.CanTravel,
			&a.AvailableSeason)...)
	}
	return p, fmt.Errorf("unknown role %q", role)
}
