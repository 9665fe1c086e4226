// Package main provides the entry point for the termsmith CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "termsmith",
	Short: "Legal document drafting pipeline",
	Long:  "Termsmith drafts Terms of Service and Privacy Policy documents from product descriptions or stored company profiles, grounded in a retrieval corpus of reference policies, and validates the output against a compliance checklist.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
