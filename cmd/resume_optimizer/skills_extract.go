package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/skills"
	"github.com/spf13/cobra"
)

var skillsExtractCmd = &cobra.Command{
	Use:   "extract <resume-file>",
	Short: "Extract skills from a resume",
	Long:  "Uploads a resume (PDF or .tex) to the extraction service and prints the identified skills grouped by category. Use 'skills save --extract' to persist them.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillsExtract,
}

func init() {
	skillsCmd.AddCommand(skillsExtractCmd)
}

func runSkillsExtract(cmd *cobra.Command, args []string) error {
	path := args[0]
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".pdf" && ext != ".tex" {
		return fmt.Errorf("unsupported resume type %q (expected .pdf or .tex)", ext)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open resume file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	client, store, err := newClient()
	if err != nil {
		return err
	}

	results, err := client.ExtractSkills(cmd.Context(), filepath.Base(path), file)
	if err != nil {
		return authError(store, fmt.Errorf("extraction failed: %w", err))
	}

	// Feed the response through a scratch ledger so the output reflects the
	// same classification and dedup the save path applies.
	ledger := skills.NewLedger()
	added, skipped, err := skills.ImportExtraction(ledger, results)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Extracted %d skills (%d duplicate or malformed entries skipped)\n", added, skipped)
	printSnapshot(cmd.OutOrStdout(), ledger.Snapshot())
	return nil
}
