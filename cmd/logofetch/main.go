package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/rickgao/coin-logos/internal/api"
	"github.com/rickgao/coin-logos/internal/config"
	"github.com/rickgao/coin-logos/internal/downloader"
	"github.com/rickgao/coin-logos/internal/logo"
	"github.com/rickgao/coin-logos/internal/logx"
	"github.com/rickgao/coin-logos/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Set up structured logging
	runID := uuid.New()
	logger := logx.New(os.Stdout, cfg.Log.Level, cfg.Log.Format).With("run_id", runID)

	logger.Info("starting logofetch",
		"version", version.Version,
		"commit", version.Commit,
		"output_dir", cfg.Output.Dir,
		"max_conns", cfg.HTTP.MaxConns,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	store, err := logo.NewStore(cfg.Output.Dir)
	if err != nil {
		logger.Error("failed to prepare output directory", "error", err)
		os.Exit(1)
	}

	// One pooled client serves the listings and every logo download.
	client := api.NewClient(
		cfg.Sources.SpotURL,
		cfg.Sources.FuturesURL,
		api.WithHTTPClient(api.NewHTTPClient(cfg.HTTP.Timeout, cfg.HTTP.MaxConns)),
		api.WithUserAgent(cfg.HTTP.UserAgent),
		api.WithLogger(logger),
	)

	proc := logo.NewProcessor(client, store, cfg.Output.Size, logger)

	d := downloader.New(downloader.Config{
		Concurrency: cfg.HTTP.MaxConns,
		RunID:       runID,
	}, client, proc, logger)

	summary := d.Run(ctx)

	logger.Info("logofetch finished",
		"saved", summary.Saved,
		"failed", summary.Failed,
		"duration", summary.Duration,
	)
}
