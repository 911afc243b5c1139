package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"pokecard/internal/jobs"
	"pokecard/internal/metrics"
	"pokecard/internal/pages"
	"pokecard/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the lookup web server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides SERVER_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.ServerAddr = serveAddr
	}

	logger := newLogger(cfg, os.Stderr)
	slog.SetDefault(logger)
	logger.Info("starting pokecard", "env", cfg.Env, "catalog", cfg.CatalogBaseURL)

	if cfg.MetricsEnabled {
		metrics.Init(prometheus.DefaultRegisterer)
	}

	client, err := newCatalogClient(cfg)
	if err != nil {
		return err
	}

	storage, err := server.NewLimiterStorage(cfg.RedisURL)
	if err != nil {
		return err
	}
	if storage != nil {
		defer storage.Close()
		log.Println("Rate limiter using Redis storage")
	}

	registry := pages.NewRegistry(client, cfg, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start background page janitor
	janitor := jobs.NewPageJanitor(registry, cfg.JanitorInterval, cfg.PageTTL)
	go janitor.Start(ctx)

	srv := server.New(cfg, storage)
	srv.RegisterRoutes(registry, client)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		return err
	}
	log.Println("Server exited")
	return nil
}
