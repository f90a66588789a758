package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/aoc/pkg/observability"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		emit  func(*log.Logger)
		want  bool
	}{
		{"info at info", log.InfoLevel, func(l *log.Logger) { l.Info("fetched") }, true},
		{"debug at info", log.InfoLevel, func(l *log.Logger) { l.Debug("cache hit") }, false},
		{"debug at debug", log.DebugLevel, func(l *log.Logger) { l.Debug("cache hit") }, true},
		{"warn at error", log.ErrorLevel, func(l *log.Logger) { l.Warn("slow day") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("logged = %v, want %v (%q)", got, tt.want, buf.String())
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, log.InfoLevel))
	time.Sleep(5 * time.Millisecond)
	p.done("Checked 3 answers")

	out := buf.String()
	if !strings.Contains(out, "Checked 3 answers") || !strings.Contains(out, "elapsed=") {
		t.Errorf("done() output = %q", out)
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("empty context should yield log.Default()")
	}

	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), l)
	if loggerFromContext(ctx) != l {
		t.Fatal("loggerFromContext did not return the attached logger")
	}
	loggerFromContext(ctx).Info("2021/16/2")
	if !strings.Contains(buf.String(), "2021/16/2") {
		t.Errorf("attached logger wrote %q", buf.String())
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	installHooks(newLogger(&buf, log.DebugLevel))
	t.Cleanup(observability.Reset)

	ctx := context.Background()
	observability.Solve().OnSolveComplete(ctx, "2021/16/2", time.Millisecond, nil)
	observability.Cache().OnCacheHit(ctx, "input")
	observability.HTTP().OnResponse(ctx, "GET", "https://example.com/2021/day/16/input", 200, time.Second)

	for _, want := range []string{"solved", "key=2021/16/2", "cache hit", "type=input", "status=200"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log output missing %q:\n%s", want, buf.String())
		}
	}
}
