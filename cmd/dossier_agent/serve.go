package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-dossier/internal/logger"
	"github.com/jonathan/cv-dossier/internal/rendering"
	"github.com/jonathan/cv-dossier/internal/server"
	"github.com/jonathan/cv-dossier/internal/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for dossier extraction, candidate comparison, and artifact generation.`,
	RunE:  runServe,
}

var servePort int

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, else 8080)")
	rootCmd.AddCommand(serveCmd)
}

// artifactRenderer adapts the rendering package to the server's interface.
type artifactRenderer struct{}

func (artifactRenderer) PDF(ctx context.Context, d *types.Dossier) ([]byte, error) {
	return rendering.PDF(ctx, d)
}

func (artifactRenderer) Deck(ctx context.Context, d *types.Dossier) ([]byte, error) {
	return rendering.Deck(ctx, d)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	log, err := logger.New(true, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	client, err := newLLMClient(cmd.Context(), &cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	srv, err := server.New(server.Config{
		Port:           cfg.Port,
		MaxUploadBytes: cfg.MaxUploadBytes,
		LLMTimeout:     cfg.LLMTimeout(),
		RenderTimeout:  cfg.RenderTimeoutDuration(),
		Logger:         log,
		Extractor:      newExtractor(client, &cfg),
		Comparator:     newComparator(client, &cfg),
		Renderer:       artifactRenderer{},
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
