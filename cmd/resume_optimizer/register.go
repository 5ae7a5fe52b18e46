package main

import (
	"fmt"

	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE:  runRegister,
}

var (
	registerEmail    string
	registerPassword string
	registerFullName string
	registerGithub   string
)

func init() {
	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "Account email (required)")
	registerCmd.Flags().StringVarP(&registerPassword, "password", "p", "", "Account password, minimum 8 characters (required)")
	registerCmd.Flags().StringVar(&registerFullName, "full-name", "", "Full name")
	registerCmd.Flags().StringVar(&registerGithub, "github", "", "GitHub username")

	for _, flag := range []string{"email", "password"} {
		if err := registerCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, _ []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	user, err := client.Register(cmd.Context(), types.RegisterRequest{
		Email:          registerEmail,
		Password:       registerPassword,
		FullName:       registerFullName,
		GithubUsername: registerGithub,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Account created for %s\n", user.Email)
	fmt.Fprintln(cmd.OutOrStdout(), "Run 'resume_optimizer login' to start a session.")
	return nil
}
