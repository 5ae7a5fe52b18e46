package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage the resume template",
}

var templateUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a resume template (PDF or .tex)",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateUpload,
}

var templatePreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Download the rendered PDF preview",
	RunE:  runTemplatePreview,
}

var templateFinalizeCmd = &cobra.Command{
	Use:   "finalize",
	Short: "Publish the template and print its public URLs",
	RunE:  runTemplateFinalize,
}

var templateDeleteCmd = &cobra.Command{
	Use:   "delete <template-id>",
	Short: "Delete a template and its published resources",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateDelete,
}

var (
	templatePreviewUniqueID string
	templatePreviewOut      string
)

func init() {
	templatePreviewCmd.Flags().StringVar(&templatePreviewUniqueID, "unique-id", "", "Template unique ID (required)")
	templatePreviewCmd.Flags().StringVarP(&templatePreviewOut, "out", "o", "preview.pdf", "Path to write the PDF preview")

	if err := templatePreviewCmd.MarkFlagRequired("unique-id"); err != nil {
		panic(fmt.Sprintf("failed to mark unique-id flag as required: %v", err))
	}

	templateCmd.AddCommand(templateUploadCmd)
	templateCmd.AddCommand(templatePreviewCmd)
	templateCmd.AddCommand(templateFinalizeCmd)
	templateCmd.AddCommand(templateDeleteCmd)
	rootCmd.AddCommand(templateCmd)
}

func runTemplateUpload(cmd *cobra.Command, args []string) error {
	path := args[0]
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".pdf" && ext != ".tex" {
		return fmt.Errorf("unsupported template type %q (expected .pdf or .tex)", ext)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open template file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	client, store, err := newClient()
	if err != nil {
		return err
	}

	tmpl, err := client.UploadTemplate(cmd.Context(), filepath.Base(path), file)
	if err != nil {
		return authError(store, fmt.Errorf("template upload failed: %w", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Uploaded template %s (unique ID %s)\n", tmpl.ID, tmpl.UniqueID)
	return nil
}

func runTemplatePreview(cmd *cobra.Command, _ []string) error {
	client, store, err := newClient()
	if err != nil {
		return err
	}

	pdf, err := client.PreviewTemplate(cmd.Context(), templatePreviewUniqueID)
	if err != nil {
		return authError(store, fmt.Errorf("preview failed: %w", err))
	}

	if err := os.WriteFile(templatePreviewOut, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write preview to %s: %w", templatePreviewOut, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d bytes to %s\n", len(pdf), templatePreviewOut)
	return nil
}

func runTemplateFinalize(cmd *cobra.Command, _ []string) error {
	client, store, err := newClient()
	if err != nil {
		return err
	}

	tmpl, err := client.FinalizeTemplate(cmd.Context())
	if err != nil {
		return authError(store, fmt.Errorf("finalize failed: %w", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Template %s finalized\n", tmpl.ID)
	if tmpl.TexURL != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "TeX: %s\n", *tmpl.TexURL)
	}
	if tmpl.PdfURL != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "PDF: %s\n", *tmpl.PdfURL)
	}
	return nil
}

func runTemplateDelete(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid template ID %q: %w", args[0], err)
	}

	client, store, err := newClient()
	if err != nil {
		return err
	}

	if err := client.DeleteTemplate(cmd.Context(), id); err != nil {
		return authError(store, fmt.Errorf("delete failed: %w", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted template %s\n", id)
	return nil
}
