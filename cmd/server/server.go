package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/sheetforge/sheet-api/internal/config"
	"github.com/sheetforge/sheet-api/internal/documents"
	"github.com/sheetforge/sheet-api/internal/handlers/httpapi"
	"github.com/sheetforge/sheet-api/internal/orchestrators/sheet"
	"github.com/sheetforge/sheet-api/internal/pkg/idgen"
	redisclient "github.com/sheetforge/sheet-api/internal/redis"
	characterrepo "github.com/sheetforge/sheet-api/internal/repositories/character"
)

// serverConfig is loaded from the environment
type serverConfig struct {
	HTTPPort  int    `env:"SHEET_API_HTTP_PORT" envDefault:"8080"`
	RedisAddr string `env:"SHEET_API_REDIS_ADDR" envDefault:"localhost:6379"`
	DocsDir   string `env:"SHEET_API_DOCS_DIR" envDefault:"./configdocs"`
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the sheet API HTTP server backed by Redis and a configuration document directory.`,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	var cfg serverConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	client, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	if err := redisclient.Ping(ctx, client); err != nil {
		return fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
	}

	fetcher, err := documents.NewFileFetcher(os.DirFS(cfg.DocsDir))
	if err != nil {
		return fmt.Errorf("failed to create document fetcher: %w", err)
	}

	configManager, err := config.NewManager(&config.Config{Fetcher: fetcher})
	if err != nil {
		return fmt.Errorf("failed to create config manager: %w", err)
	}

	repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	if err != nil {
		return fmt.Errorf("failed to create character repository: %w", err)
	}

	orchestrator, err := sheet.New(&sheet.Config{
		ConfigManager: configManager,
		CharacterRepo: repo,
		IDGenerator:   idgen.NewUUID("char"),
	})
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	handler, err := httpapi.NewHandler(&httpapi.Config{SheetService: orchestrator})
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	// Load eagerly so document problems surface at startup. Validation
	// failures are not fatal: the server still runs and reports them on
	// the config endpoints while the documents get fixed.
	if _, validationErrs := configManager.LoadAll(ctx); len(validationErrs) > 0 {
		slog.Warn("configuration failed validation",
			"error_count", len(validationErrs),
			"report", config.FormatErrors(validationErrs))
	}

	mux := http.NewServeMux()
	handler.Register(mux)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "port", cfg.HTTPPort, "docs_dir", cfg.DocsDir)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down http server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed, forcing close", "error", err)
			_ = srv.Close()
		}
		return nil
	case err := <-errChan:
		return err
	}
}
