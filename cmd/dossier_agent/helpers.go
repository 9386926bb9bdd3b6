package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/cv-dossier/internal/comparison"
	"github.com/jonathan/cv-dossier/internal/config"
	"github.com/jonathan/cv-dossier/internal/extraction"
	"github.com/jonathan/cv-dossier/internal/llm"
)

// loadConfig builds the effective configuration: config file values first,
// then flags and environment on top, then package defaults for the rest.
func loadConfig() (config.Config, error) {
	var fileCfg config.Config
	if flagConfig != "" {
		loaded, err := config.LoadConfig(flagConfig)
		if err != nil {
			return config.Config{}, err
		}
		fileCfg = *loaded
	}

	flagCfg := config.Config{
		APIKey:  flagAPIKey,
		Verbose: flagVerbose,
	}

	merged := flagCfg.MergeWithDefaults(fileCfg)
	if merged.APIKey == "" {
		merged.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	merged.Verbose = merged.Verbose || fileCfg.Verbose

	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}

	return merged, nil
}

// llmConfig translates config file model overrides into an llm.Config.
func llmConfig(cfg *config.Config) *llm.Config {
	modelCfg := llm.DefaultConfig()
	for tier, model := range cfg.ModelOverrides {
		modelCfg = modelCfg.WithModel(llm.ModelTier(tier), model)
	}
	return modelCfg
}

// newLLMClient builds the Gemini client from the effective configuration.
func newLLMClient(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("an API key is required: set --api-key, the config file, or GEMINI_API_KEY")
	}
	return llm.NewClient(ctx, llmConfig(cfg), cfg.APIKey)
}

// newExtractor wires an extractor with the configured limits.
func newExtractor(client llm.Client, cfg *config.Config) *extraction.Extractor {
	return extraction.NewExtractor(client,
		extraction.WithMinChars(cfg.MinTextChars),
		extraction.WithMaxBytes(cfg.MaxUploadBytes),
	)
}

// newComparator wires a comparator with the configured limits.
func newComparator(client llm.Client, cfg *config.Config) *comparison.Comparator {
	return comparison.NewComparator(client,
		comparison.WithMaxBytes(cfg.MaxUploadBytes),
	)
}

// writeOutput writes data to the given path, or stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
