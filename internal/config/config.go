package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the pokedex configuration shared by the API server and the terminal browser.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Browser  BrowserConfig  `yaml:"browser"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int      `yaml:"port"`
	ReadTimeoutSec  int      `yaml:"read_timeout_sec"`
	WriteTimeoutSec int      `yaml:"write_timeout_sec"`
	ShutdownSec     int      `yaml:"shutdown_timeout_sec"`
	AllowedOrigins  []string `yaml:"allowed_origins"`
}

// UpstreamConfig holds the third-party catalog API settings.
type UpstreamConfig struct {
	BaseURL     string `yaml:"base_url"`
	TimeoutSec  int    `yaml:"timeout_sec"`
	Concurrency int    `yaml:"concurrency"` // parallel detail requests per page
	UserAgent   string `yaml:"user_agent"`
}

// CatalogConfig holds proxy endpoint pagination settings.
type CatalogConfig struct {
	DefaultLimit int `yaml:"default_limit"`
	MaxLimit     int `yaml:"max_limit"`
}

// BrowserConfig holds terminal browser settings.
type BrowserConfig struct {
	APIURL             string `yaml:"api_url"`
	PageSize           int    `yaml:"page_size"`
	ScrollMargin       *int   `yaml:"scroll_margin"` // lines of look-ahead before the sentinel; 0 is allowed
	CarouselIntervalMs int    `yaml:"carousel_interval_ms"`
	RequestTimeoutSec  int    `yaml:"request_timeout_sec"`
	LogFile            string `yaml:"log_file"`
}

const defaultScrollMargin = 2

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	return Parse(data)
}

// Parse decodes YAML, expands ${VAR} references, applies defaults and validates.
func Parse(data []byte) (Config, error) {
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Default returns a configuration built from defaults only.
// The browser falls back to it when no config file exists.
func Default() Config {
	var cfg Config
	cfg.ApplyDefaults()
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 8000
	}
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 60
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Upstream.BaseURL == "" {
		c.Upstream.BaseURL = "https://pokeapi.co/api/v2"
	}
	if c.Upstream.TimeoutSec <= 0 {
		c.Upstream.TimeoutSec = 15
	}
	if c.Upstream.Concurrency <= 0 {
		c.Upstream.Concurrency = 8
	}
	if c.Upstream.UserAgent == "" {
		c.Upstream.UserAgent = "pokedex/1.0"
	}
	if c.Catalog.DefaultLimit <= 0 {
		c.Catalog.DefaultLimit = 20
	}
	if c.Catalog.MaxLimit <= 0 {
		c.Catalog.MaxLimit = 100
	}
	if c.Browser.APIURL == "" {
		c.Browser.APIURL = "http://127.0.0.1:8000"
	}
	if c.Browser.PageSize <= 0 {
		c.Browser.PageSize = 20
	}
	if c.Browser.ScrollMargin == nil {
		margin := defaultScrollMargin
		c.Browser.ScrollMargin = &margin
	}
	if c.Browser.CarouselIntervalMs <= 0 {
		c.Browser.CarouselIntervalMs = 3000
	}
	if c.Browser.RequestTimeoutSec <= 0 {
		c.Browser.RequestTimeoutSec = 60
	}
	if c.Browser.LogFile == "" {
		c.Browser.LogFile = "pokebrowse.log"
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if err := validateURL("upstream.base_url", c.Upstream.BaseURL); err != nil {
		return err
	}
	if err := validateURL("browser.api_url", c.Browser.APIURL); err != nil {
		return err
	}
	if c.Catalog.DefaultLimit > c.Catalog.MaxLimit {
		return fmt.Errorf("catalog.default_limit (%d) must not exceed catalog.max_limit (%d)",
			c.Catalog.DefaultLimit, c.Catalog.MaxLimit)
	}
	if c.Browser.ScrollMargin != nil && *c.Browser.ScrollMargin < 0 {
		return fmt.Errorf("browser.scroll_margin must be >= 0, got %d", *c.Browser.ScrollMargin)
	}
	if c.Browser.PageSize > c.Catalog.MaxLimit {
		return fmt.Errorf("browser.page_size (%d) must not exceed catalog.max_limit (%d)",
			c.Browser.PageSize, c.Catalog.MaxLimit)
	}
	return nil
}

func validateURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", field, raw)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

// Exists reports whether a config file for env can be found.
func Exists(env string) bool {
	return fileExists(findConfigPath(env))
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
