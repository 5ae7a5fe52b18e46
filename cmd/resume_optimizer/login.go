package main

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and store a session token",
	Long:  "Exchanges credentials for a bearer token and stores it for subsequent commands. The password is read from the --password flag or prompted interactively.",
	RunE:  runLogin,
}

var (
	loginUsername string
	loginPassword string
)

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Account email (required)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password (prompted if omitted)")

	if err := loginCmd.MarkFlagRequired("username"); err != nil {
		panic(fmt.Sprintf("failed to mark username flag as required: %v", err))
	}

	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	client, store, err := newClient()
	if err != nil {
		return err
	}

	password := loginPassword
	if password == "" {
		fmt.Fprint(cmd.OutOrStdout(), "Password: ")
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	token, err := client.Login(cmd.Context(), types.LoginRequest{Username: loginUsername, Password: password})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := store.Save(token.AccessToken); err != nil {
		return fmt.Errorf("login succeeded but token could not be stored: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", loginUsername)
	if exp, ok := store.ExpiresAt(); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "Session valid until %s\n", exp.Format(time.RFC1123))
	}
	return nil
}
