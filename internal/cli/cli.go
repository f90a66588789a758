// Package cli implements the aoc command-line interface.
//
// The commands wrap the puzzle [puzzle.Runner] with input downloads, saved
// answers and a result cache:
//   - run: solve one part and compare it with the saved answer
//   - test: re-check every saved answer
//   - list: show which days are solved
//   - fetch: download inputs
//   - graph: render graph-shaped inputs
//   - browse: pick a puzzle interactively
//   - cache, session, completion: housekeeping
//
// All commands support --verbose (-v) for debug-level logging, which also
// traces cache lookups, downloads and solver runs.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/aoc/pkg/answers"
	"github.com/matzehuels/aoc/pkg/buildinfo"
	"github.com/matzehuels/aoc/pkg/cache"
	"github.com/matzehuels/aoc/pkg/input"
	"github.com/matzehuels/aoc/pkg/puzzle"
	"github.com/matzehuels/aoc/pkg/session"
	"github.com/matzehuels/aoc/pkg/solutions"
)

// appName is the application name used for directories and display.
const appName = "aoc"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger   *log.Logger
	Registry *puzzle.Registry

	configPath string
	config     *Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		Registry: solutions.Registry(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "aoc runs Advent of Code solutions",
		Long:          `aoc runs Advent of Code solutions against downloaded inputs, checks them against saved answers and keeps a cache of results.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			installHooks(c.Logger)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: ./aoc.toml, then ~/.config/aoc/config.toml)")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.testCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.fetchCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.sessionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the configuration once per invocation.
func (c *CLI) loadConfig() (*Config, error) {
	if c.config != nil {
		return c.config, nil
	}
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return nil, err
	}
	if cfg.path != "" {
		c.Logger.Debug("loaded config", "path", cfg.path)
	}
	c.config = cfg
	return cfg, nil
}

// =============================================================================
// Factories
// =============================================================================

// env bundles what most commands need. Close releases the cache.
type env struct {
	cfg     *Config
	runner  *puzzle.Runner
	source  *input.Source
	answers *answers.Store
}

func (e *env) Close() error { return e.runner.Cache.Close() }

func (c *CLI) newEnv(ctx context.Context, noCache bool) (*env, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}

	token, err := sessionToken(ctx)
	if err != nil {
		c.Logger.Warn("read session", "err", err)
	}

	backend := cfg.Cache.Backend
	if noCache {
		backend = backendNone
	}
	store, err := newCache(ctx, backend, cfg)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(nil, cache.AccountScope(token))

	runner := puzzle.NewRunner(c.Registry, store, keyer, c.Logger)
	runner.Timeout = cfg.Timeout
	runner.ResultTTL = cfg.Cache.TTL

	src := input.New(cfg.InputsDir, token)
	src.BaseURL = cfg.Fetch.BaseURL
	src.UserAgent = buildinfo.UserAgent(cfg.Fetch.Contact)
	src.Cache = store
	src.Keyer = keyer
	src.Logger = c.Logger

	return &env{
		cfg:     cfg,
		runner:  runner,
		source:  src,
		answers: answers.NewStore(cfg.OutputsDir),
	}, nil
}

func newCache(ctx context.Context, backend string, cfg *Config) (cache.Cache, error) {
	switch backend {
	case backendNone:
		return cache.NewNullCache(), nil
	case backendRedis:
		return cache.NewRedisCache(ctx, cache.RedisOptions{Addr: cfg.Cache.RedisAddr, Prefix: appName + ":"})
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

func sessionToken(ctx context.Context) (string, error) {
	store, err := session.NewFileStore("")
	if err != nil {
		return session.Token(ctx, nil)
	}
	return session.Token(ctx, store)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/aoc/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
