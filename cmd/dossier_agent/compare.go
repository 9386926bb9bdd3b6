package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-dossier/internal/comparison"
	"github.com/jonathan/cv-dossier/internal/observability"
)

var compareCmd = &cobra.Command{
	Use:   "compare <candidate-file>...",
	Short: "Rank candidate resumes against a mission document",
	Long:  "Score each candidate resume against a mission document and output the ranked comparison results as JSON.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCompare,
}

var (
	compareMission string
	compareOut     string
)

func init() {
	compareCmd.Flags().StringVarP(&compareMission, "mission", "m", "", "Path to the mission/requirements document (required)")
	compareCmd.Flags().StringVarP(&compareOut, "out", "o", "", "Output file for the comparison JSON (default: stdout)")

	_ = compareCmd.MarkFlagRequired("mission")

	rootCmd.AddCommand(compareCmd)
}

func readInputFile(path string) (comparison.InputFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return comparison.InputFile{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return comparison.InputFile{
		Filename: filepath.Base(path),
		Data:     data,
	}, nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	mission, err := readInputFile(compareMission)
	if err != nil {
		return err
	}

	candidates := make([]comparison.InputFile, 0, len(args))
	for _, path := range args {
		candidate, err := readInputFile(path)
		if err != nil {
			return err
		}
		candidates = append(candidates, candidate)
	}

	client, err := newLLMClient(cmd.Context(), &cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	// One scoring call per candidate, so the deadline scales with N.
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.LLMTimeout()*time.Duration(len(candidates)))
	defer cancel()

	comparator := newComparator(client, &cfg)
	outcome, err := comparator.Compare(ctx, candidates, mission)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintComparison(outcome)
	}

	out, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal comparison results: %w", err)
	}
	out = append(out, '\n')

	return writeOutput(compareOut, out)
}
