package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently authenticated user",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	client, store, err := newClient()
	if err != nil {
		return err
	}

	user, err := client.CurrentUser(cmd.Context())
	if err != nil {
		return authError(store, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Email:     %s\n", user.Email)
	if user.FullName != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Name:      %s\n", user.FullName)
	}
	if user.GithubUsername != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "GitHub:    %s\n", user.GithubUsername)
	}
	if store.ExpiresSoon(10 * time.Minute) {
		fmt.Fprintln(cmd.OutOrStdout(), "Warning: session expires soon, consider logging in again.")
	}
	return nil
}
