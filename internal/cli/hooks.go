package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/aoc/pkg/observability"
)

// logHooks traces runner, cache and download events at debug level.
type logHooks struct {
	logger *log.Logger
}

func installHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetSolveHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}

func (h logHooks) OnSolveStart(_ context.Context, key string) {
	h.logger.Debug("solve", "key", key)
}

func (h logHooks) OnSolveComplete(_ context.Context, key string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("solve failed", "key", key, "duration", d, "err", err)
		return
	}
	h.logger.Debug("solved", "key", key, "duration", d)
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h logHooks) OnRequest(_ context.Context, method, url string) {
	h.logger.Debug("request", "method", method, "url", url)
}

func (h logHooks) OnResponse(_ context.Context, method, url string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "url", url, "status", status, "duration", d)
}

func (h logHooks) OnError(_ context.Context, method, url string, err error) {
	h.logger.Debug("request failed", "method", method, "url", url, "err", err)
}
