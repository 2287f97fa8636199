// Package cli wires the pokebrowse command line.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/pokedex/internal/config"
	logpkg "github.com/kailas-cloud/pokedex/internal/logger"
	"github.com/kailas-cloud/pokedex/internal/tui"
	"github.com/kailas-cloud/pokedex/internal/version"
	pokedex "github.com/kailas-cloud/pokedex/pkg/sdk"
)

// App holds the CLI application state.
type App struct {
	root *cobra.Command

	env      string
	apiURL   string
	pageSize int
	logFile  string
	debug    bool
}

// NewApp creates the pokebrowse command tree.
func NewApp() *App {
	a := &App{}

	a.root = &cobra.Command{
		Use:   "pokebrowse",
		Short: "Browse the Pokémon catalog in your terminal",
		Long: `pokebrowse pages through the catalog served by the pokedex API.

Scroll to load more, press / to filter what has been loaded so far.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd)
		},
	}

	flags := a.root.PersistentFlags()
	flags.StringVar(&a.env, "env", config.GetEnv(), "config environment (reads config/<env>.yaml)")
	flags.StringVar(&a.apiURL, "api", "", "pokedex API base URL")
	flags.IntVar(&a.pageSize, "page-size", 0, "items requested per page")
	flags.StringVar(&a.logFile, "log-file", "", "write logs to this file")
	flags.BoolVar(&a.debug, "debug", false, "enable debug logging")

	a.root.AddCommand(a.versionCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pokebrowse %s\n", version.String())
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Root exposes the root command for callers that need ExecuteContext.
func (a *App) Root() *cobra.Command {
	return a.root
}

// resolveConfig loads the environment's config file, falling back to
// defaults when none exists, then applies command-line overrides.
func (a *App) resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if config.Exists(a.env) {
		loaded, err := config.Load(a.env)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("api") {
		cfg.Browser.APIURL = a.apiURL
	}
	if flags.Changed("page-size") {
		cfg.Browser.PageSize = a.pageSize
	}
	if flags.Changed("log-file") {
		cfg.Browser.LogFile = a.logFile
	}
	if a.debug {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (a *App) run(cmd *cobra.Command) error {
	cfg, err := a.resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logpkg.NewFileLogger(cfg.Browser.LogFile, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	timeout := time.Duration(cfg.Browser.RequestTimeoutSec) * time.Second
	client, err := pokedex.New(cfg.Browser.APIURL,
		pokedex.WithTimeout(timeout),
		pokedex.WithUserAgent("pokebrowse/"+version.Version),
	)
	if err != nil {
		return err
	}

	logger.Info("Starting pokebrowse",
		zap.String("version", version.Version),
		zap.String("env", a.env),
		zap.String("api", cfg.Browser.APIURL),
		zap.Int("page_size", cfg.Browser.PageSize),
	)

	err = tui.Run(cmd.Context(), sdkSource{client: client}, tui.Options{
		PageSize:         cfg.Browser.PageSize,
		ScrollMargin:     *cfg.Browser.ScrollMargin,
		CarouselInterval: time.Duration(cfg.Browser.CarouselIntervalMs) * time.Millisecond,
		RequestTimeout:   timeout,
		Logger:           logger,
	})
	if err != nil {
		logger.Error("browser exited with error", zap.Error(err))
		return err
	}

	logger.Info("pokebrowse stopped")
	return nil
}
