package pokedex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "pokedex-sdk/1.0"
	pokemonsPath     = "/api/pokemons"
	healthPath       = "/health"
)

// Client is the pokedex API entry point.
type Client struct {
	http *resty.Client
	obs  *observer
}

// New creates a Client for the API rooted at baseURL (scheme://host[:port]).
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("pokedex: base URL must be absolute http(s), got %q", baseURL)
	}

	cfg := &clientConfig{
		timeout:   defaultTimeout,
		userAgent: defaultUserAgent,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	var rc *resty.Client
	if cfg.httpClient != nil {
		rc = resty.NewWithClient(cfg.httpClient)
	} else {
		rc = resty.New()
	}
	rc.SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", cfg.userAgent)
	if cfg.timeout > 0 {
		rc.SetTimeout(cfg.timeout)
	}

	return &Client{http: rc, obs: obs}, nil
}

// ListPokemons fetches one page of the catalog. page starts at 1; limit <= 0
// lets the server choose its default. An empty slice means the page is past the end.
func (c *Client) ListPokemons(ctx context.Context, page, limit int) (items []Pokemon, err error) {
	start := time.Now()
	defer func() { c.obs.observe("list_pokemons", start, err) }()

	if page < 1 {
		return nil, fmt.Errorf("pokedex: page must be >= 1, got %d", page)
	}

	query := map[string]string{"page": strconv.Itoa(page)}
	if limit > 0 {
		query["limit"] = strconv.Itoa(limit)
	}

	body, err := c.get(ctx, pokemonsPath, query)
	if err != nil {
		return nil, err
	}

	if err = json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("%w: page %d: %w", ErrDecode, page, err)
	}
	if items == nil {
		// JSON null is not an array.
		return nil, fmt.Errorf("%w: page %d: null body", ErrDecode, page)
	}
	return items, nil
}

// Health fetches the server health report. A degraded server answers 503 with
// a valid body; that is returned without error.
func (c *Client) Health(ctx context.Context) (status HealthStatus, err error) {
	start := time.Now()
	defer func() { c.obs.observe("health", start, err) }()

	body, err := c.get(ctx, healthPath, nil)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == 503 {
		body, err = []byte(apiErr.Message), nil
	}
	if err != nil {
		return HealthStatus{}, err
	}

	if err = json.Unmarshal(body, &status); err != nil {
		return HealthStatus{}, fmt.Errorf("%w: health: %w", ErrDecode, err)
	}
	return status, nil
}

func (c *Client) get(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetch, path, err)
	}
	if resp.IsError() {
		return nil, newAPIError(resp.StatusCode(), resp.Body())
	}
	return resp.Body(), nil
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	var parsed struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Code != "" {
		apiErr.Code = parsed.Code
		apiErr.Message = parsed.Message
		return apiErr
	}
	apiErr.Message = string(body)
	return apiErr
}
