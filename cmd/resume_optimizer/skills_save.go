package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/api"
	"github.com/jonathan/resume-optimizer/internal/session"
	"github.com/jonathan/resume-optimizer/internal/skills"
	"github.com/spf13/cobra"
)

var skillsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Edit skills and persist all categories in one batch",
	Long: `Fetches the persisted skills, applies the requested edits locally, and
flushes all three categories back in a single batch save. The server's response
is the canonical state after a successful save; on failure the local edits are
discarded and nothing is persisted.

Edits are applied in order: renames, sets, removals, then imports. A set on an
existing skill updates its rating; a rename that collides with another skill
supersedes the collided entry.`,
	RunE: runSkillsSave,
}

var (
	skillsSaveSets    []string
	skillsSaveRenames []string
	skillsSaveRemoves []string
	skillsSaveExtract string
	skillsSaveImport  string
	skillsSaveDryRun  bool
)

func init() {
	skillsSaveCmd.Flags().StringArrayVar(&skillsSaveSets, "set", nil, "Add or update a skill as category:name:rating (repeatable)")
	skillsSaveCmd.Flags().StringArrayVar(&skillsSaveRenames, "rename", nil, "Rename a skill as category:old>new:rating (repeatable)")
	skillsSaveCmd.Flags().StringArrayVar(&skillsSaveRemoves, "remove", nil, "Remove a skill as category:name (repeatable)")
	skillsSaveCmd.Flags().StringVar(&skillsSaveExtract, "extract", "", "Resume file to run skill extraction on before saving")
	skillsSaveCmd.Flags().StringVar(&skillsSaveImport, "import-file", "", "Skills JSON file to merge before saving")
	skillsSaveCmd.Flags().BoolVar(&skillsSaveDryRun, "dry-run", false, "Show the resulting skills without persisting")

	skillsCmd.AddCommand(skillsSaveCmd)
}

func runSkillsSave(cmd *cobra.Command, _ []string) error {
	client, store, err := newClient()
	if err != nil {
		return err
	}

	ledger, err := fetchLedger(cmd.Context(), client)
	if err != nil {
		return authError(store, err)
	}

	for _, spec := range skillsSaveRenames {
		cat, oldName, newName, rating, err := parseRenameSpec(spec)
		if err != nil {
			return err
		}
		if _, ok := ledger.Rename(cat, oldName, newName, rating); !ok {
			fmt.Fprintf(cmd.OutOrStdout(), "Skipping rename of %s:%s: no such skill\n", cat, oldName)
		}
	}

	for _, spec := range skillsSaveSets {
		cat, name, rating, err := parseSkillSpec(spec)
		if err != nil {
			return err
		}
		ledger.Upsert(cat, name, rating)
	}

	for _, spec := range skillsSaveRemoves {
		cat, name, err := parseCategoryName(spec)
		if err != nil {
			return err
		}
		if !ledger.Remove(cat, name) {
			fmt.Fprintf(cmd.OutOrStdout(), "Skipping removal of %s:%s: no such skill\n", cat, name)
		}
	}

	if skillsSaveExtract != "" {
		if err := extractInto(cmd, client, store, ledger, skillsSaveExtract); err != nil {
			return err
		}
	}

	if skillsSaveImport != "" {
		if err := importFileInto(cmd, ledger, skillsSaveImport); err != nil {
			return err
		}
	}

	if !ledger.Dirty() {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to save.")
		printSnapshot(cmd.OutOrStdout(), ledger.Snapshot())
		return nil
	}

	if skillsSaveDryRun {
		fmt.Fprintln(cmd.OutOrStdout(), "Dry run; the following state was not persisted:")
		printSnapshot(cmd.OutOrStdout(), ledger.Snapshot())
		return nil
	}

	saved, err := client.SaveSkillsBatch(cmd.Context(), ledger.ToWirePayload())
	if err != nil {
		// The batch is all-or-nothing: the server kept its previous state and
		// this process exits, so the local edits are simply not persisted.
		return authError(store, fmt.Errorf("batch save failed, no skills were persisted: %w", err))
	}
	ledger.ApplySaveResult(saved)

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %d skills\n", ledger.Len())
	printSnapshot(cmd.OutOrStdout(), ledger.Snapshot())
	return nil
}

func extractInto(cmd *cobra.Command, client *api.Client, store *session.Store, ledger *skills.Ledger, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".pdf" && ext != ".tex" {
		return fmt.Errorf("unsupported resume type %q (expected .pdf or .tex)", ext)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open resume file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	results, err := client.ExtractSkills(cmd.Context(), filepath.Base(path), file)
	if err != nil {
		return authError(store, fmt.Errorf("extraction failed: %w", err))
	}

	added, skipped, err := skills.ImportExtraction(ledger, results)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d extracted skills (%d skipped)\n", added, skipped)
	return nil
}

// parseRenameSpec parses "category:old>new:rating", e.g. "technical:Pyton>Python:7".
func parseRenameSpec(spec string) (skills.Category, string, string, int, error) {
	catIdx := strings.Index(spec, ":")
	ratingIdx := strings.LastIndex(spec, ":")
	if catIdx < 0 || catIdx == ratingIdx {
		return "", "", "", 0, fmt.Errorf("invalid rename spec %q (expected category:old>new:rating)", spec)
	}

	cat, err := skills.ParseCategory(spec[:catIdx])
	if err != nil {
		return "", "", "", 0, err
	}

	names := spec[catIdx+1 : ratingIdx]
	sep := strings.Index(names, ">")
	if sep < 0 {
		return "", "", "", 0, fmt.Errorf("invalid rename spec %q: missing '>' between old and new name", spec)
	}
	oldName := strings.TrimSpace(names[:sep])
	newName := strings.TrimSpace(names[sep+1:])
	if oldName == "" || newName == "" {
		return "", "", "", 0, fmt.Errorf("invalid rename spec %q: empty name", spec)
	}

	rating, err := strconv.Atoi(spec[ratingIdx+1:])
	if err != nil || rating < 0 || rating > 10 {
		return "", "", "", 0, fmt.Errorf("invalid rename spec %q: rating must be an integer in [0,10]", spec)
	}

	return cat, oldName, newName, rating, nil
}
