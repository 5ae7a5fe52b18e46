package main

import (
	"fmt"

	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/spf13/cobra"
)

var skillsAddCmd = &cobra.Command{
	Use:   "add <category:name:rating>",
	Short: "Persist a single skill",
	Long:  "Saves one skill immediately via the single-skill endpoint, e.g. 'skills add technical:Go:9'. For editing several skills at once, use 'skills save'.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillsAdd,
}

func init() {
	skillsCmd.AddCommand(skillsAddCmd)
}

func runSkillsAdd(cmd *cobra.Command, args []string) error {
	cat, name, rating, err := parseSkillSpec(args[0])
	if err != nil {
		return err
	}

	client, store, err := newClient()
	if err != nil {
		return err
	}

	saved, err := client.AddSkill(cmd.Context(), types.SingleSkillCreate{
		Name:     name,
		Rating:   rating,
		Category: string(cat),
	})
	if err != nil {
		return authError(store, fmt.Errorf("failed to save skill: %w", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s) rated %d/10\n", saved.Skill.Name, cat, saved.Rating)
	return nil
}
