package config

import (
	"strings"
	"testing"
)

func validConfig() Config {
	cfg := Config{HTTP: HTTPConfig{Port: 8000}}
	cfg.ApplyDefaults()
	return cfg
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_InvalidUpstreamURL(t *testing.T) {
	tests := []string{"pokeapi.co/api/v2", "ftp://pokeapi.co", "://bad"}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			cfg := validConfig()
			cfg.Upstream.BaseURL = raw

			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected error for %q", raw)
			}
			if !strings.HasPrefix(err.Error(), "upstream.base_url") {
				t.Errorf("unexpected error message: %q", err.Error())
			}
		})
	}
}

func TestValidate_DefaultLimitAboveMax(t *testing.T) {
	cfg := validConfig()
	cfg.Catalog.DefaultLimit = 200

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error when default_limit exceeds max_limit")
	}

	expected := "catalog.default_limit (200) must not exceed catalog.max_limit (100)"
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_BrowserPageSizeAboveMax(t *testing.T) {
	cfg := validConfig()
	cfg.Browser.PageSize = 101

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when browser page size exceeds max_limit")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.Port != 8000 {
		t.Errorf("expected port 8000, got %d", cfg.HTTP.Port)
	}
	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected read timeout 10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Upstream.BaseURL != "https://pokeapi.co/api/v2" {
		t.Errorf("unexpected upstream base url %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.Concurrency != 8 {
		t.Errorf("expected concurrency 8, got %d", cfg.Upstream.Concurrency)
	}
	if cfg.Catalog.DefaultLimit != 20 {
		t.Errorf("expected default limit 20, got %d", cfg.Catalog.DefaultLimit)
	}
	if cfg.Catalog.MaxLimit != 100 {
		t.Errorf("expected max limit 100, got %d", cfg.Catalog.MaxLimit)
	}
	if cfg.Browser.PageSize != 20 {
		t.Errorf("expected browser page size 20, got %d", cfg.Browser.PageSize)
	}
	if cfg.Browser.CarouselIntervalMs != 3000 {
		t.Errorf("expected carousel interval 3000ms, got %d", cfg.Browser.CarouselIntervalMs)
	}
	if cfg.Browser.ScrollMargin == nil || *cfg.Browser.ScrollMargin != 2 {
		t.Errorf("expected scroll margin 2, got %v", cfg.Browser.ScrollMargin)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		Upstream: UpstreamConfig{BaseURL: "http://localhost:9000", Concurrency: 2},
		Catalog:  CatalogConfig{DefaultLimit: 10, MaxLimit: 30},
		Browser:  BrowserConfig{PageSize: 5},
	}
	cfg.ApplyDefaults()

	if cfg.Upstream.BaseURL != "http://localhost:9000" {
		t.Errorf("base url overridden: %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.Concurrency != 2 {
		t.Errorf("concurrency overridden: %d", cfg.Upstream.Concurrency)
	}
	if cfg.Catalog.DefaultLimit != 10 || cfg.Catalog.MaxLimit != 30 {
		t.Errorf("catalog overridden: %+v", cfg.Catalog)
	}
	if cfg.Browser.PageSize != 5 {
		t.Errorf("page size overridden: %d", cfg.Browser.PageSize)
	}
}

func TestParse_ExpandsEnvVars(t *testing.T) {
	t.Setenv("POKEDEX_TEST_PORT", "9123")

	data := []byte(`
http:
  port: ${POKEDEX_TEST_PORT}
upstream:
  base_url: ${POKEDEX_TEST_UNSET:-http://upstream.local/api/v2}
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 9123 {
		t.Errorf("expected port 9123, got %d", cfg.HTTP.Port)
	}
	if cfg.Upstream.BaseURL != "http://upstream.local/api/v2" {
		t.Errorf("expected default from expression, got %q", cfg.Upstream.BaseURL)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("http: [unclosed")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Browser.APIURL != "http://127.0.0.1:8000" {
		t.Errorf("unexpected default api url %q", cfg.Browser.APIURL)
	}
}

func TestLoad_LocalConfig(t *testing.T) {
	cfg, err := Load("local")
	if err != nil {
		t.Fatalf("load local config: %v", err)
	}
	if cfg.Catalog.DefaultLimit != 20 {
		t.Errorf("expected default limit 20, got %d", cfg.Catalog.DefaultLimit)
	}
}

func TestParse_ZeroScrollMarginKept(t *testing.T) {
	cfg, err := Parse([]byte("browser:\n  scroll_margin: 0\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Browser.ScrollMargin == nil || *cfg.Browser.ScrollMargin != 0 {
		t.Errorf("expected scroll margin 0, got %v", cfg.Browser.ScrollMargin)
	}
}

func TestValidate_NegativeScrollMargin(t *testing.T) {
	cfg := validConfig()
	margin := -1
	cfg.Browser.ScrollMargin = &margin

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative scroll margin")
	}
}
