// Package main is the entry point for the lookup server and terminal client.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pokecard/internal/catalog"
	"pokecard/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "pokecard",
	Short: "Pokémon lookup card",
	Long:  `pokecard looks up a Pokémon by name or number and shows its card, in the browser or in the terminal.`,
	// Errors are reported once by main.
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
}

// loadConfig reads the environment, applies the optional YAML file and
// validates the result.
func loadConfig() (*config.Config, error) {
	cfg := config.Load()

	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	yamlCfg.Apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger returns a text logger in development and JSON elsewhere.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}
	if cfg.IsDev() {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newCatalogClient(cfg *config.Config) (catalog.Client, error) {
	client, err := catalog.New(&catalog.Config{BaseURL: cfg.CatalogBaseURL})
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog client: %w", err)
	}
	return client, nil
}
