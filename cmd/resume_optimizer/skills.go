package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/api"
	"github.com/jonathan/resume-optimizer/internal/skills"
	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Manage categorized skills",
	Long:  "Search, extract, edit, and persist skills. Skills are grouped into three categories (technical, soft, hard) and deduplicated case-insensitively within each category.",
}

func init() {
	rootCmd.AddCommand(skillsCmd)
}

// fetchLedger loads the server's persisted skills into a fresh ledger.
// This is the authoritative baseline every skill command starts from.
func fetchLedger(ctx context.Context, client *api.Client) (*skills.Ledger, error) {
	saved, err := client.MySkills(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch persisted skills: %w", err)
	}

	ledger := skills.NewLedger()
	ledger.Load(skills.RecordsFromUserSkills(saved))
	return ledger, nil
}

var categoryTitles = map[skills.Category]string{
	skills.CategoryTechnical: "Technical Skills",
	skills.CategorySoft:      "Soft Skills",
	skills.CategoryHard:      "Hard Skills",
}

func printSnapshot(w io.Writer, snap skills.Snapshot) {
	for _, cat := range skills.Categories {
		records := snap.ForCategory(cat)
		fmt.Fprintf(w, "%s (%d)\n", categoryTitles[cat], len(records))
		for _, rec := range records {
			if rec.Provenance == skills.ProvenanceImported {
				fmt.Fprintf(w, "  %-30s unrated (imported)\n", rec.Name)
				continue
			}
			fmt.Fprintf(w, "  %-30s %d/10\n", rec.Name, rec.Rating)
		}
	}
}

// parseSkillSpec parses "category:name:rating", e.g. "technical:Go:9".
// The rating is the segment after the last colon, so names containing colons
// survive.
func parseSkillSpec(spec string) (skills.Category, string, int, error) {
	first := strings.Index(spec, ":")
	last := strings.LastIndex(spec, ":")
	if first < 0 || first == last {
		return "", "", 0, fmt.Errorf("invalid skill spec %q (expected category:name:rating)", spec)
	}

	cat, err := skills.ParseCategory(spec[:first])
	if err != nil {
		return "", "", 0, err
	}

	name := strings.TrimSpace(spec[first+1 : last])
	if name == "" {
		return "", "", 0, fmt.Errorf("invalid skill spec %q: empty name", spec)
	}

	rating, err := strconv.Atoi(spec[last+1:])
	if err != nil || rating < 0 || rating > 10 {
		return "", "", 0, fmt.Errorf("invalid skill spec %q: rating must be an integer in [0,10]", spec)
	}

	return cat, name, rating, nil
}

// parseCategoryName parses "category:name", e.g. "hard:SQL".
func parseCategoryName(spec string) (skills.Category, string, error) {
	idx := strings.Index(spec, ":")
	if idx < 0 {
		return "", "", fmt.Errorf("invalid skill reference %q (expected category:name)", spec)
	}

	cat, err := skills.ParseCategory(spec[:idx])
	if err != nil {
		return "", "", err
	}

	name := strings.TrimSpace(spec[idx+1:])
	if name == "" {
		return "", "", fmt.Errorf("invalid skill reference %q: empty name", spec)
	}
	return cat, name, nil
}
