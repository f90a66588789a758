package cli

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/input"
)

// Cache backends accepted in [cache] backend.
const (
	backendFile  = "file"
	backendRedis = "redis"
	backendNone  = "none"
)

const configFile = "aoc.toml"

// Config is the aoc.toml file.
type Config struct {
	InputsDir  string        `toml:"inputs_dir"`
	OutputsDir string        `toml:"outputs_dir"`
	Workers    int           `toml:"workers"`
	Timeout    time.Duration `toml:"timeout"`
	Cache      CacheConfig   `toml:"cache"`
	Fetch      FetchConfig   `toml:"fetch"`

	// path is the file the config was read from, empty for defaults.
	path string
}

// CacheConfig selects where inputs and answers are memoised.
type CacheConfig struct {
	Backend   string        `toml:"backend"`
	RedisAddr string        `toml:"redis_addr"`
	TTL       time.Duration `toml:"ttl"`
}

// FetchConfig controls input downloads.
type FetchConfig struct {
	BaseURL string `toml:"base_url"`
	// Contact is appended to the User-Agent, as the puzzle site asks.
	Contact string `toml:"user_agent"`
}

func defaultConfig() *Config {
	return &Config{
		InputsDir:  "inputs",
		OutputsDir: "outputs",
		Workers:    runtime.NumCPU(),
		Timeout:    time.Minute,
		Cache:      CacheConfig{Backend: backendFile, RedisAddr: "localhost:6379"},
		Fetch:      FetchConfig{BaseURL: input.DefaultBaseURL},
	}
}

// configCandidates lists where a config file is looked for, in order.
func configCandidates() []string {
	paths := []string{configFile}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, appName, "config.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}
	return paths
}

// loadConfig reads explicit, or the first existing candidate, over the
// defaults and applies environment overrides. A missing explicit file is
// an error; missing candidates are not.
func loadConfig(explicit string) (*Config, error) {
	cfg := defaultConfig()

	path := explicit
	if path == "" {
		for _, p := range configCandidates() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys %s", path, strings.Join(keys, ", "))
		}
		cfg.path = path
	}

	if v := os.Getenv("AOC_INPUTS"); v != "" {
		cfg.InputsDir = v
	}
	if v := os.Getenv("AOC_OUTPUTS"); v != "" {
		cfg.OutputsDir = v
	}
	if v := os.Getenv("AOC_CACHE"); v != "" {
		cfg.Cache.Backend = v
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	switch c.Cache.Backend {
	case backendFile, backendRedis, backendNone:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "cache backend must be file, redis or none, got %q", c.Cache.Backend)
	}
	if c.Workers < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "workers must be at least 1, got %d", c.Workers)
	}
	if c.Timeout < 0 || c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "durations must not be negative")
	}
	if c.Cache.Backend == backendRedis && c.Cache.RedisAddr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "redis backend needs redis_addr")
	}
	return nil
}
