package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/agroempleo/candidate-search/internal/cache"
	"github.com/agroempleo/candidate-search/internal/config"
	"github.com/agroempleo/candidate-search/internal/server"
	"github.com/agroempleo/candidate-search/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the search API server",
	Long:  `Start an HTTP server that exposes the candidate search endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	var resultCache *cache.Cache
	if cfg.RedisURL != "" {
		resultCache, err = cache.New(ctx, cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			// The cache is an optimization; the engine runs without it.
			log.Printf("Warning: result cache disabled: %v", err)
		}
	}

	srv := server.New(server.Options{
		Port:         cfg.Port,
		Store:        db,
		Cache:        resultCache,
		QueryTimeout: cfg.QueryTimeout,
		JWTSecret:    cfg.JWTSecret,
		Verbose:      cfg.Verbose,
	})
	srv.OnClose(db.Close)
	srv.OnClose(func() { _ = resultCache.Close() })

	return srv.Start()
}
