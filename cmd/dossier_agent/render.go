package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-dossier/internal/rendering"
	"github.com/jonathan/cv-dossier/internal/schemas"
	"github.com/jonathan/cv-dossier/internal/types"
)

var renderPDFCmd = &cobra.Command{
	Use:   "render-pdf <dossier.json>",
	Short: "Render a dossier JSON file to a PDF document",
	Args:  cobra.ExactArgs(1),
	RunE:  runRenderPDF,
}

var renderDeckCmd = &cobra.Command{
	Use:   "render-deck <dossier.json>",
	Short: "Render a dossier JSON file to a 16:9 slide deck",
	Args:  cobra.ExactArgs(1),
	RunE:  runRenderDeck,
}

var (
	renderPDFOut  string
	renderDeckOut string
)

func init() {
	renderPDFCmd.Flags().StringVarP(&renderPDFOut, "out", "o", "dossier.pdf", "Output file for the artifact")
	renderDeckCmd.Flags().StringVarP(&renderDeckOut, "out", "o", "dossier-deck.pdf", "Output file for the artifact")

	rootCmd.AddCommand(renderPDFCmd)
	rootCmd.AddCommand(renderDeckCmd)
}

func runRenderPDF(cmd *cobra.Command, args []string) error {
	return runRender(cmd, args[0], renderPDFOut, rendering.PDF)
}

func runRenderDeck(cmd *cobra.Command, args []string) error {
	return runRender(cmd, args[0], renderDeckOut, rendering.Deck)
}

func runRender(cmd *cobra.Command, path, outPath string, render func(context.Context, *types.Dossier) ([]byte, error)) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read dossier file: %w", err)
	}

	dossier, err := schemas.ValidateDossier(raw)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RenderTimeoutDuration())
	defer cancel()

	artifact, err := render(ctx, dossier)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, artifact, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	fmt.Fprintf(os.Stdout, "Wrote %s (%d bytes)\n", outPath, len(artifact))
	return nil
}
