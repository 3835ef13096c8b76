package downloader

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/rickgao/coin-logos/internal/logo"
	"github.com/rickgao/coin-logos/internal/model"
)

// Source provides the spot and futures listings.
type Source interface {
	FetchSpotAssets(ctx context.Context) ([]model.AssetRecord, error)
	FetchFuturesBaseAssets(ctx context.Context) ([]string, error)
}

// LogoProcessor materializes the logo of a single symbol.
type LogoProcessor interface {
	Process(ctx context.Context, symbol, logoURL string) logo.Outcome
}

// Config holds downloader configuration.
type Config struct {
	Concurrency int       // Max in-flight logo tasks (default: 50)
	RunID       uuid.UUID // Identifies the run in logs and the summary
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Concurrency: 50,
	}
}

// Summary reports the outcome of a run.
type Summary struct {
	RunID    uuid.UUID
	Symbols  int // Distinct symbols in the catalog
	NoLogo   int // Symbols without a logo reference
	Saved    int64
	Skipped  int64
	Missing  int64
	Failed   int64
	Canceled int64 // Tasks that never started because the run was canceled
	Duration time.Duration
}

// Downloader runs the fetch, merge and download pipeline.
type Downloader struct {
	cfg    Config
	source Source
	proc   LogoProcessor
	logger *slog.Logger
}

// New creates a new Downloader.
func New(cfg Config, source Source, proc LogoProcessor, logger *slog.Logger) *Downloader {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = DefaultConfig().Concurrency
	}
	if cfg.RunID == uuid.Nil {
		cfg.RunID = uuid.New()
	}
	return &Downloader{
		cfg:    cfg,
		source: source,
		proc:   proc,
		logger: logger,
	}
}

// Run performs one full fetch, merge and download cycle.
func (d *Downloader) Run(ctx context.Context) Summary {
	catalog := d.LoadCatalog(ctx)

	d.logger.Info("catalog ready, downloading",
		"symbols", catalog.Len(),
		"with_logo", len(catalog.WithLogo()),
		"spot", catalog.SpotCount(),
		"futures", catalog.FuturesOnlyCount(),
	)

	return d.Download(ctx, catalog)
}

// LoadCatalog fetches both listings concurrently and merges them.
// A source that fails contributes an empty list.
func (d *Downloader) LoadCatalog(ctx context.Context) model.Catalog {
	var (
		spot    []model.AssetRecord
		futures []string
		g       errgroup.Group
	)

	g.Go(func() error {
		assets, err := d.source.FetchSpotAssets(ctx)
		if err != nil {
			d.logger.Warn("failed to fetch source", "source", "spot", "err", err)
			return nil
		}
		spot = assets
		return nil
	})

	g.Go(func() error {
		bases, err := d.source.FetchFuturesBaseAssets(ctx)
		if err != nil {
			d.logger.Warn("failed to fetch source", "source", "futures", "err", err)
			return nil
		}
		futures = bases
		return nil
	})

	// Both goroutines always return nil.
	_ = g.Wait()

	return model.Merge(spot, futures)
}

// Download processes every catalog entry that has a logo reference and
// blocks until all of them have finished.
func (d *Downloader) Download(ctx context.Context, catalog model.Catalog) Summary {
	start := time.Now()

	records := catalog.WithLogo()

	for _, group := range catalog.NormalizationClashes() {
		d.logger.Warn("symbols differ only by unicode normalization, files may collide on normalizing filesystems",
			"symbols", group,
		)
	}
	sum := Summary{
		RunID:   d.cfg.RunID,
		Symbols: catalog.Len(),
		NoLogo:  catalog.Len() - len(records),
	}

	// Semaphore for bounded concurrency.
	sem := semaphore.NewWeighted(int64(d.cfg.Concurrency))
	var wg sync.WaitGroup
	var saved, skipped, missing, failed, canceled atomic.Int64

	for _, rec := range records {
		wg.Add(1)
		go func(rec model.AssetRecord) {
			defer wg.Done()

			if err := sem.Acquire(ctx, 1); err != nil {
				canceled.Add(1)
				return
			}
			defer sem.Release(1)

			switch d.proc.Process(ctx, rec.Symbol, rec.LogoURL) {
			case logo.OutcomeSaved:
				saved.Add(1)
			case logo.OutcomeSkipped:
				skipped.Add(1)
			case logo.OutcomeMissing:
				missing.Add(1)
			default:
				failed.Add(1)
			}
		}(rec)
	}

	wg.Wait()

	sum.Saved = saved.Load()
	sum.Skipped = skipped.Load()
	sum.Missing = missing.Load()
	sum.Failed = failed.Load()
	sum.Canceled = canceled.Load()
	sum.Duration = time.Since(start)

	d.logger.Info("download complete",
		"symbols", sum.Symbols,
		"no_logo", sum.NoLogo,
		"saved", sum.Saved,
		"skipped", sum.Skipped,
		"missing", sum.Missing,
		"failed", sum.Failed,
		"canceled", sum.Canceled,
		"duration", sum.Duration,
	)

	return sum
}
