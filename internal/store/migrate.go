package store

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// Migrate applies the profile table DDL. Statements are idempotent.
func Migrate(ctx context.Context, databaseURL string) error {
	db, err := Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
