package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agroempleo/candidate-search/internal/config"
	"github.com/agroempleo/candidate-search/internal/store"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the profile table schema",
	Long:  `Apply the DDL for the five per-role profile tables. Idempotent.`,
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := store.Migrate(ctx, cfg.DatabaseURL); err != nil {
		return err
	}
	fmt.Println("Schema applied")
	return nil
}
