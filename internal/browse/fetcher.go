package browse

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/pokedex/internal/domain"
)

// Source serves catalog pages. Implemented by the pokedex SDK client.
type Source interface {
	ListPokemons(ctx context.Context, page, limit int) ([]domain.Pokemon, error)
}

// Fetcher runs one fetch cycle against a Source.
type Fetcher struct {
	src     Source
	timeout time.Duration
	logger  *zap.Logger
}

// NewFetcher creates a Fetcher. timeout <= 0 means no per-request deadline.
func NewFetcher(src Source, timeout time.Duration, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{src: src, timeout: timeout, logger: logger}
}

// Fetch requests one page and reports the outcome. It never panics on a
// failing source: transport and decode failures are logged and returned in
// PageResult.Err for the session to swallow.
func (f *Fetcher) Fetch(ctx context.Context, req FetchRequest) PageResult {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	start := time.Now()
	items, err := f.src.ListPokemons(ctx, req.Page, req.Limit)
	res := PageResult{Session: req.Session, Page: req.Page, Items: items, Err: err}

	switch {
	case errors.Is(err, context.Canceled):
		f.logger.Debug("page fetch canceled", zap.Int("page", req.Page))
	case err != nil:
		res.Items = nil
		f.logger.Error("failed to fetch page",
			zap.Int("page", req.Page),
			zap.Duration("latency", time.Since(start)),
			zap.Error(err),
		)
	default:
		f.logger.Debug("page fetched",
			zap.Int("page", req.Page),
			zap.Int("items", len(items)),
			zap.Duration("latency", time.Since(start)),
		)
	}
	return res
}
