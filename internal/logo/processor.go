package logo

import (
	"context"
	"log/slog"

	"github.com/rickgao/coin-logos/internal/api"
)

// Outcome is the result of processing a single symbol.
type Outcome int

const (
	OutcomeSaved   Outcome = iota // Logo downloaded and written
	OutcomeSkipped                // Artifact already on disk
	OutcomeMissing                // Logo endpoint returned a non-success status
	OutcomeFailed                 // Network, decode or write error
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSaved:
		return "saved"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeMissing:
		return "missing"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Getter fetches a URL and returns the full body.
// Non-success statuses must be reported as *api.APIError.
type Getter interface {
	Get(ctx context.Context, rawURL string) ([]byte, error)
}

// Processor downloads, normalizes and stores a single logo.
type Processor struct {
	getter Getter
	store  *Store
	size   int
	logger *slog.Logger
}

// NewProcessor creates a Processor writing size×size thumbnails into store.
func NewProcessor(getter Getter, store *Store, size int, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if size <= 0 {
		size = DefaultSize
	}
	return &Processor{
		getter: getter,
		store:  store,
		size:   size,
		logger: logger,
	}
}

// Process materializes the logo for symbol. It never returns an error:
// every failure is logged and contained to this symbol.
func (p *Processor) Process(ctx context.Context, symbol, logoURL string) Outcome {
	if p.store.Exists(symbol) {
		p.logger.Info("logo already exists, skipping", "symbol", symbol)
		return OutcomeSkipped
	}

	data, err := p.getter.Get(ctx, logoURL)
	if err != nil {
		if api.IsStatus(err) {
			p.logger.Debug("logo not available", "symbol", symbol, "url", logoURL, "err", err)
			return OutcomeMissing
		}
		p.logger.Warn("failed to save logo", "symbol", symbol, "err", err)
		return OutcomeFailed
	}

	img, err := Normalize(data, p.size)
	if err != nil {
		p.logger.Warn("failed to save logo", "symbol", symbol, "err", err)
		return OutcomeFailed
	}

	encoded, err := EncodePNG(img)
	if err != nil {
		p.logger.Warn("failed to save logo", "symbol", symbol, "err", err)
		return OutcomeFailed
	}

	if err := p.store.Write(symbol, encoded); err != nil {
		p.logger.Warn("failed to save logo", "symbol", symbol, "err", err)
		return OutcomeFailed
	}

	p.logger.Info("logo saved", "symbol", symbol)
	return OutcomeSaved
}
