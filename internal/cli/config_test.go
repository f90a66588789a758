package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/aoc/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aoc.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("AOC_INPUTS", "")
	t.Setenv("AOC_OUTPUTS", "")
	t.Setenv("AOC_CACHE", "")

	path := writeConfig(t, `
inputs_dir = "puzzles/in"
workers = 3
timeout = "90s"

[cache]
backend = "redis"
redis_addr = "cache:6379"
ttl = "1h"

[fetch]
user_agent = "me@example.com"
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	if cfg.InputsDir != "puzzles/in" || cfg.OutputsDir != "outputs" {
		t.Errorf("dirs = %q, %q", cfg.InputsDir, cfg.OutputsDir)
	}
	if cfg.Workers != 3 || cfg.Timeout != 90*time.Second {
		t.Errorf("workers, timeout = %d, %s", cfg.Workers, cfg.Timeout)
	}
	if cfg.Cache.Backend != backendRedis || cfg.Cache.RedisAddr != "cache:6379" || cfg.Cache.TTL != time.Hour {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Fetch.BaseURL != "https://adventofcode.com" || cfg.Fetch.Contact != "me@example.com" {
		t.Errorf("fetch = %+v", cfg.Fetch)
	}
	if cfg.path != path {
		t.Errorf("path = %q, want %q", cfg.path, path)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("AOC_INPUTS", "/tmp/in")
	t.Setenv("AOC_OUTPUTS", "/tmp/out")
	t.Setenv("AOC_CACHE", "none")

	cfg, err := loadConfig(writeConfig(t, `inputs_dir = "x"`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.InputsDir != "/tmp/in" || cfg.OutputsDir != "/tmp/out" || cfg.Cache.Backend != backendNone {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Setenv("AOC_CACHE", "")

	tests := []struct {
		name string
		body string
	}{
		{"unknown key", `input_dir = "typo"`},
		{"bad backend", "[cache]\nbackend = \"memcached\""},
		{"no workers", "workers = 0"},
		{"bad duration", `timeout = "soon"`},
		{"not toml", "workers = "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.body))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("loadConfig() error = %v, want INVALID_CONFIG", err)
			}
		})
	}

	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("loadConfig() should fail for a missing explicit file")
	}
}
