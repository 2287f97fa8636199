package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/kailas-cloud/pokedex/internal/domain"
	"github.com/kailas-cloud/pokedex/internal/metrics"
)

const (
	endpointList   = "list"
	endpointDetail = "detail"
)

// Client talks to the public catalog API (PokeAPI v2).
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// Config holds the upstream client settings.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Logger    *zap.Logger
}

// NewClient creates an upstream catalog client.
func NewClient(cfg *Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	rc := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		rc.SetTimeout(cfg.Timeout)
	}
	if cfg.UserAgent != "" {
		rc.SetHeader("User-Agent", cfg.UserAgent)
	}

	return &Client{http: rc, logger: logger}
}

// List returns limit named entries starting at offset, in upstream order.
func (c *Client) List(ctx context.Context, offset, limit int) ([]Ref, error) {
	var out listResponse
	err := c.get(ctx, endpointList, "/pokemon", map[string]string{
		"offset": strconv.Itoa(offset),
		"limit":  strconv.Itoa(limit),
	}, &out)
	if err != nil {
		return nil, err
	}

	refs := make([]Ref, len(out.Results))
	for i, r := range out.Results {
		refs[i] = Ref{Name: r.Name, URL: r.URL}
	}
	return refs, nil
}

// Detail resolves one listed entry into the reshaped domain item.
// url is the absolute detail URL returned by List.
func (c *Client) Detail(ctx context.Context, url string) (domain.Pokemon, error) {
	var out detailResponse
	if err := c.get(ctx, endpointDetail, url, nil, &out); err != nil {
		return domain.Pokemon{}, err
	}
	if out.Name == "" {
		metrics.UpstreamErrorsTotal.WithLabelValues(endpointDetail, "decode").Inc()
		return domain.Pokemon{}, fmt.Errorf("detail %s: missing name: %w", url, domain.ErrUpstreamDecode)
	}
	return out.toDomain(), nil
}

// HealthCheck verifies upstream availability with a one-item listing.
func (c *Client) HealthCheck(ctx context.Context) error {
	if _, err := c.List(ctx, 0, 1); err != nil {
		return fmt.Errorf("list probe: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint, url string, query map[string]string, out any) error {
	start := time.Now()

	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	resp, err := req.Get(url)

	metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		metrics.UpstreamErrorsTotal.WithLabelValues(endpoint, "transport").Inc()
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("%s request: %w", endpoint, err)
		}
		c.logger.Warn("upstream request failed", zap.String("endpoint", endpoint), zap.Error(err))
		return fmt.Errorf("%s request: %w: %w", endpoint, domain.ErrUpstream, err)
	}

	if resp.IsError() {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		metrics.UpstreamErrorsTotal.WithLabelValues(endpoint, "status").Inc()
		c.logger.Warn("upstream returned error status",
			zap.String("endpoint", endpoint),
			zap.String("url", resp.Request.URL),
			zap.Int("status", resp.StatusCode()),
		)
		return fmt.Errorf("%s: status %d: %w", endpoint, resp.StatusCode(), domain.ErrUpstream)
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		metrics.UpstreamErrorsTotal.WithLabelValues(endpoint, "decode").Inc()
		return fmt.Errorf("%s: decode body: %w: %w", endpoint, domain.ErrUpstreamDecode, err)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "success").Inc()
	return nil
}
