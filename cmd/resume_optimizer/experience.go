package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/spf13/cobra"
)

var experienceCmd = &cobra.Command{
	Use:   "experience",
	Short: "Manage work experience entries",
}

var experienceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a work experience entry",
	RunE:  runExperienceAdd,
}

var experienceUpdateCmd = &cobra.Command{
	Use:   "update <experience-id>",
	Short: "Update a work experience entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runExperienceUpdate,
}

var experienceDeleteCmd = &cobra.Command{
	Use:   "delete <experience-id>",
	Short: "Delete a work experience entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runExperienceDelete,
}

var experienceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List work experience entries",
	RunE:  runExperienceList,
}

var (
	experienceCompany     string
	experiencePosition    string
	experienceLocation    string
	experienceStart       string
	experienceEnd         string
	experienceDescription string
)

func addExperienceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&experienceCompany, "company", "", "Company name (required)")
	cmd.Flags().StringVar(&experiencePosition, "position", "", "Position title (required)")
	cmd.Flags().StringVar(&experienceLocation, "location", "", "Location (required)")
	cmd.Flags().StringVar(&experienceStart, "start", "", "Start date as YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&experienceEnd, "end", "", "End date as YYYY-MM-DD (omit for current role)")
	cmd.Flags().StringVar(&experienceDescription, "description", "", "Role description (required)")

	for _, flag := range []string{"company", "position", "location", "start", "description"} {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}
}

func init() {
	addExperienceFlags(experienceAddCmd)
	addExperienceFlags(experienceUpdateCmd)

	experienceCmd.AddCommand(experienceAddCmd)
	experienceCmd.AddCommand(experienceUpdateCmd)
	experienceCmd.AddCommand(experienceDeleteCmd)
	experienceCmd.AddCommand(experienceListCmd)
	rootCmd.AddCommand(experienceCmd)
}

func experienceFromFlags() (types.WorkExperienceCreate, error) {
	start, err := time.Parse("2006-01-02", experienceStart)
	if err != nil {
		return types.WorkExperienceCreate{}, fmt.Errorf("invalid start date %q (expected YYYY-MM-DD): %w", experienceStart, err)
	}

	req := types.WorkExperienceCreate{
		CompanyName: experienceCompany,
		Position:    experiencePosition,
		Location:    experienceLocation,
		StartDate:   start,
		Description: experienceDescription,
	}
	if experienceEnd != "" {
		end, err := time.Parse("2006-01-02", experienceEnd)
		if err != nil {
			return types.WorkExperienceCreate{}, fmt.Errorf("invalid end date %q (expected YYYY-MM-DD): %w", experienceEnd, err)
		}
		req.EndDate = &end
	}
	return req, nil
}

func runExperienceAdd(cmd *cobra.Command, _ []string) error {
	req, err := experienceFromFlags()
	if err != nil {
		return err
	}

	client, store, err := newClient()
	if err != nil {
		return err
	}

	exp, err := client.AddExperience(cmd.Context(), req)
	if err != nil {
		return authError(store, fmt.Errorf("failed to add experience: %w", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s at %s (%s)\n", exp.Position, exp.CompanyName, exp.ID)
	return nil
}

func runExperienceUpdate(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid experience ID %q: %w", args[0], err)
	}

	req, err := experienceFromFlags()
	if err != nil {
		return err
	}

	client, store, err := newClient()
	if err != nil {
		return err
	}

	exp, err := client.UpdateExperience(cmd.Context(), id, req)
	if err != nil {
		return authError(store, fmt.Errorf("failed to update experience: %w", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s at %s\n", exp.Position, exp.CompanyName)
	return nil
}

func runExperienceDelete(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid experience ID %q: %w", args[0], err)
	}

	client, store, err := newClient()
	if err != nil {
		return err
	}

	if err := client.DeleteExperience(cmd.Context(), id); err != nil {
		return authError(store, fmt.Errorf("failed to delete experience: %w", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted experience %s\n", id)
	return nil
}

func runExperienceList(cmd *cobra.Command, _ []string) error {
	client, store, err := newClient()
	if err != nil {
		return err
	}

	exps, err := client.ListExperiences(cmd.Context())
	if err != nil {
		return authError(store, fmt.Errorf("failed to list experiences: %w", err))
	}

	if len(exps) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No work experience entries.")
		return nil
	}
	for _, exp := range exps {
		end := "present"
		if exp.EndDate != nil {
			end = exp.EndDate.Format("2006-01")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s at %s, %s (%s to %s)\n",
			exp.ID, exp.Position, exp.CompanyName, exp.Location,
			exp.StartDate.Format("2006-01"), end)
	}
	return nil
}
