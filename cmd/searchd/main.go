// searchd is the candidate search service for the agricultural job
// marketplace: it matches company-side filter requests against the five
// worker-role profile collections.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "searchd",
	Short: "Multi-role candidate search service",
	Long:  `searchd serves the candidate search and filtering API over the worker, foreman, supervisor, operator, and engineer profile collections.`,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
