package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/xhad/wikidef/pkg/config"
	"github.com/xhad/wikidef/pkg/extractor"
	"github.com/xhad/wikidef/pkg/logger"
	"github.com/xhad/wikidef/pkg/lookup"
	"github.com/xhad/wikidef/pkg/scraper"
)

var (
	configPath string
	logLevel   string
	logFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "wikidef",
	Short: "Look up Russian word definitions on Wiktionary",
	Long: `wikidef fetches a word's Wiktionary page, extracts up to ten
definitions with usage examples, and serves them as JSON or prints them.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text, json")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

type app struct {
	config *config.Config
	log    *slog.Logger
	lookup *lookup.Service
}

// newApp loads configuration, applies flag overrides and wires the lookup
// pipeline. rateLimit < 0 keeps the configured value.
func newApp(rateLimit float64) (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
	if rateLimit >= 0 {
		cfg.Scraper.RateLimit = rateLimit
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		joined := make([]error, len(errs))
		for i, e := range errs {
			joined[i] = e
		}
		return nil, fmt.Errorf("invalid configuration: %w", errors.Join(joined...))
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	s, err := scraper.NewWithConfig(scraper.ScraperConfig{
		BaseURL:   cfg.Scraper.BaseURL,
		UserAgent: cfg.Scraper.UserAgent,
		Timeout:   cfg.Scraper.Timeout,
		RateLimit: cfg.Scraper.RateLimit,
		Logger:    log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize scraper: %w", err)
	}

	return &app{
		config: cfg,
		log:    log,
		lookup: lookup.New(s, extractor.New(log), log),
	}, nil
}
