package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-dossier/internal/observability"
)

var extractCmd = &cobra.Command{
	Use:   "extract <resume-file>",
	Short: "Extract a structured dossier from a resume",
	Long:  "Extract a structured competency dossier from a resume file (PDF, DOCX, TXT or HTML) and output it as JSON.",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

var extractOut string

func init() {
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "Output file for the dossier JSON (default: stdout)")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	client, err := newLLMClient(cmd.Context(), &cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.LLMTimeout())
	defer cancel()

	extractor := newExtractor(client, &cfg)
	dossier, err := extractor.FromFile(ctx, filepath.Base(path), "", data)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintDossier(dossier)
	}

	out, err := json.MarshalIndent(dossier, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dossier: %w", err)
	}
	out = append(out, '\n')

	return writeOutput(extractOut, out)
}
