package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var skillsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the skill catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillsSearch,
}

func init() {
	skillsCmd.AddCommand(skillsSearchCmd)
}

func runSkillsSearch(cmd *cobra.Command, args []string) error {
	client, store, err := newClient()
	if err != nil {
		return err
	}

	results, err := client.SearchSkills(cmd.Context(), args[0])
	if err != nil {
		return authError(store, fmt.Errorf("skill search failed: %w", err))
	}

	if len(results) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No matching skills.")
		return nil
	}
	for _, res := range results {
		if res.Category != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%-30s %s\n", res.Name, res.Category)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Name)
	}
	return nil
}
