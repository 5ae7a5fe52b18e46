package main

import (
	"fmt"
	"time"

	"github.com/jonathan/resume-optimizer/internal/api"
	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a summary of the account, template, and skills",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	client, store, err := newClient()
	if err != nil {
		return err
	}

	var (
		user  *types.User
		saved []types.UserSkill
		exps  []types.WorkExperience
	)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		user, err = client.CurrentUser(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		saved, err = client.MySkills(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		exps, err = client.ListExperiences(ctx)
		// A profile without experiences yet is not an error worth failing
		// the whole summary for.
		if err != nil && api.IsNotFound(err) {
			return nil
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return authError(store, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Account:     %s\n", user.Email)
	fmt.Fprintf(out, "Skills:      %d persisted\n", len(saved))
	fmt.Fprintf(out, "Experience:  %d entries\n", len(exps))
	if exp, ok := store.ExpiresAt(); ok {
		fmt.Fprintf(out, "Session:     valid until %s\n", exp.Format(time.RFC1123))
	}
	return nil
}
