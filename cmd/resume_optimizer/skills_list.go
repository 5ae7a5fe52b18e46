package main

import (
	"github.com/spf13/cobra"
)

var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List persisted skills by category",
	RunE:  runSkillsList,
}

func init() {
	skillsCmd.AddCommand(skillsListCmd)
}

func runSkillsList(cmd *cobra.Command, _ []string) error {
	client, store, err := newClient()
	if err != nil {
		return err
	}

	ledger, err := fetchLedger(cmd.Context(), client)
	if err != nil {
		return authError(store, err)
	}

	printSnapshot(cmd.OutOrStdout(), ledger.Snapshot())
	return nil
}
