package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-optimizer/internal/schemas"
	"github.com/jonathan/resume-optimizer/internal/skills"
	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/spf13/cobra"
)

var skillsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write persisted skills to a JSON file",
	RunE:  runSkillsExport,
}

var skillsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge skills from a JSON file and persist the result",
	Long:  "Validates the file against the skills schema, merges its entries into the persisted skills (existing entries win, imported entries arrive unrated), and batch-saves the result.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillsImport,
}

var skillsExportOut string

func init() {
	skillsExportCmd.Flags().StringVarP(&skillsExportOut, "out", "o", "skills.json", "Path to write the skills file")

	skillsCmd.AddCommand(skillsExportCmd)
	skillsCmd.AddCommand(skillsImportCmd)
}

func runSkillsExport(cmd *cobra.Command, _ []string) error {
	client, store, err := newClient()
	if err != nil {
		return err
	}

	ledger, err := fetchLedger(cmd.Context(), client)
	if err != nil {
		return authError(store, err)
	}

	file := schemas.SkillsFile{}
	snap := ledger.Snapshot()
	for _, cat := range skills.Categories {
		for _, rec := range snap.ForCategory(cat) {
			file.Skills = append(file.Skills, schemas.SkillEntry{
				Name:     rec.Name,
				Category: string(rec.Category),
				Rating:   rec.Rating,
			})
		}
	}
	if len(file.Skills) == 0 {
		return fmt.Errorf("no persisted skills to export")
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode skills file: %w", err)
	}
	if err := os.WriteFile(skillsExportOut, data, 0644); err != nil {
		return fmt.Errorf("failed to write skills file %s: %w", skillsExportOut, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d skills to %s\n", len(file.Skills), skillsExportOut)
	return nil
}

func runSkillsImport(cmd *cobra.Command, args []string) error {
	client, store, err := newClient()
	if err != nil {
		return err
	}

	ledger, err := fetchLedger(cmd.Context(), client)
	if err != nil {
		return authError(store, err)
	}

	if err := importFileInto(cmd, ledger, args[0]); err != nil {
		return err
	}

	if !ledger.Dirty() {
		fmt.Fprintln(cmd.OutOrStdout(), "All entries already present; nothing to save.")
		return nil
	}

	saved, err := client.SaveSkillsBatch(cmd.Context(), ledger.ToWirePayload())
	if err != nil {
		return authError(store, fmt.Errorf("batch save failed, no skills were persisted: %w", err))
	}
	ledger.ApplySaveResult(saved)

	printSnapshot(cmd.OutOrStdout(), ledger.Snapshot())
	return nil
}

// importFileInto validates a skills file and merges its entries into the
// ledger through the same additive path extraction results take.
func importFileInto(cmd *cobra.Command, ledger *skills.Ledger, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read skills file %s: %w", path, err)
	}

	file, err := schemas.ParseSkillsFile(data)
	if err != nil {
		return err
	}

	results := make([]types.ExtractedSkill, 0, len(file.Skills))
	for _, entry := range file.Skills {
		results = append(results, types.ExtractedSkill{Name: entry.Name, Category: entry.Category})
	}

	added, skipped, err := skills.ImportExtraction(ledger, results)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d skills from %s (%d skipped)\n", added, path, skipped)
	return nil
}
