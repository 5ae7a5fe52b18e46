// Package main provides the entry point for the resume-optimizer command-line client.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_optimizer",
	Short: "Resume Optimizer command-line client",
	Long:  "Resume Optimizer is a client for the resume-optimizer backend: account access, resume template upload and preview, AI-assisted skill extraction, and categorized skill management.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
