package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/pokedex/internal/domain"
	"github.com/kailas-cloud/pokedex/internal/domain/page"
	"github.com/kailas-cloud/pokedex/internal/logger"
	"github.com/kailas-cloud/pokedex/internal/metrics"
)

const (
	defaultLimit       = 20
	defaultMaxLimit    = 100
	defaultConcurrency = 8
)

// Service proxies one page of the upstream catalog and reshapes it into domain items.
type Service struct {
	upstream     Upstream
	defaultLimit int
	maxLimit     int
	concurrency  int
}

// New creates a catalog service.
func New(upstream Upstream) *Service {
	return &Service{
		upstream:     upstream,
		defaultLimit: defaultLimit,
		maxLimit:     defaultMaxLimit,
		concurrency:  defaultConcurrency,
	}
}

// WithPagination sets the default and maximum page sizes.
func (s *Service) WithPagination(defaultSize, maxSize int) *Service {
	if defaultSize > 0 {
		s.defaultLimit = defaultSize
	}
	if maxSize > 0 {
		s.maxLimit = maxSize
	}
	return s
}

// WithConcurrency bounds parallel detail requests per page. 1 means sequential.
func (s *Service) WithConcurrency(n int) *Service {
	if n > 0 {
		s.concurrency = n
	}
	return s
}

// DefaultLimit returns the page size used when the caller omits one.
func (s *Service) DefaultLimit() int { return s.defaultLimit }

// Page returns the items of the given 1-based page, in upstream listing order.
// limit <= 0 selects the default page size. A page past the end yields an empty slice.
func (s *Service) Page(ctx context.Context, number, limit int) ([]domain.Pokemon, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	req, err := page.New(number, limit, s.maxLimit)
	if err != nil {
		return nil, err
	}

	ctx, log := logger.With(ctx, zap.Int("page", req.Number()), zap.Int("limit", req.Limit()))

	refs, err := s.upstream.List(ctx, req.Offset(), req.Limit())
	if err != nil {
		return nil, fmt.Errorf("list offset %d: %w", req.Offset(), err)
	}

	items := make([]domain.Pokemon, len(refs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, ref := range refs {
		g.Go(func() error {
			p, err := s.upstream.Detail(gctx, ref.URL)
			if err != nil {
				return fmt.Errorf("detail %q: %w", ref.Name, err)
			}
			items[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	metrics.CatalogItemsServed.Add(float64(len(items)))
	log.Debug("catalog page resolved", zap.Int("items", len(items)))

	return items, nil
}
