package puzzle

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/aoc/pkg/cache"
	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/observability"
)

// Result is the outcome of one solver run.
type Result struct {
	Key      Key
	Answer   string
	Duration time.Duration
	// Cached is true when the answer came from the result cache; Duration
	// is then the duration of the original run.
	Cached bool
	Err    error
}

// Runner executes solvers with result memoisation, timeouts and panic
// recovery. It holds no per-run state, so one Runner may serve many
// goroutines.
type Runner struct {
	Registry *Registry
	Cache    cache.Cache
	Keyer    cache.Keyer
	Logger   *log.Logger
	// Timeout bounds a single solver run. Zero disables the limit.
	Timeout time.Duration
	// ResultTTL is how long answers stay memoised; zero means
	// [cache.TTLResult].
	ResultTTL time.Duration
}

// NewRunner creates a runner. A nil cache disables memoisation, a nil
// keyer uses [cache.DefaultKeyer] and a nil logger uses log.Default().
func NewRunner(reg *Registry, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Registry: reg, Cache: c, Keyer: keyer, Logger: logger}
}

// cachedResult is the wire form of a memoised answer.
type cachedResult struct {
	Answer   string        `json:"answer"`
	Duration time.Duration `json:"duration"`
}

// Run solves k against input. With refresh set the result cache is
// bypassed for reading but still updated.
func (r *Runner) Run(ctx context.Context, k Key, input string, refresh bool) (Result, error) {
	res := Result{Key: k}

	solve, err := r.Registry.Lookup(k)
	if err != nil {
		return res, err
	}

	cacheKey := r.Keyer.ResultKey(k.Year, k.Day, k.Part, cache.Hash([]byte(input)))
	if !refresh {
		if cached, ok := r.lookup(ctx, cacheKey); ok {
			res.Answer, res.Duration, res.Cached = cached.Answer, cached.Duration, true
			r.Logger.Debug("cached answer", "key", k, "duration", cached.Duration)
			return res, nil
		}
	}

	observability.Solve().OnSolveStart(ctx, k.String())
	start := time.Now()
	res.Answer, err = r.invoke(ctx, k, solve, input)
	res.Duration = time.Since(start)
	observability.Solve().OnSolveComplete(ctx, k.String(), res.Duration, err)
	if err != nil {
		return res, err
	}

	if data, err := json.Marshal(cachedResult{res.Answer, res.Duration}); err == nil {
		ttl := r.ResultTTL
		if ttl == 0 {
			ttl = cache.TTLResult
		}
		if err := r.Cache.Set(ctx, cacheKey, data, ttl); err != nil {
			r.Logger.Warn("cache result", "key", k, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "result", len(data))
		}
	}
	return res, nil
}

func (r *Runner) lookup(ctx context.Context, key string) (cachedResult, bool) {
	var out cachedResult
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, "result")
		return out, false
	}
	if json.Unmarshal(data, &out) != nil {
		observability.Cache().OnCacheMiss(ctx, "result")
		return out, false
	}
	observability.Cache().OnCacheHit(ctx, "result")
	return out, true
}

type outcome struct {
	answer string
	err    error
}

// invoke runs solve on its own goroutine so a timeout is honoured even by
// solvers that never look at ctx. Such a solver keeps running in the
// background until it returns.
func (r *Runner) invoke(ctx context.Context, k Key, solve Solver, input string) (string, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				r.Logger.Debug("solver panic", "key", k, "stack", string(debug.Stack()))
				done <- outcome{err: errors.New(errors.ErrCodeInternal, "%s panicked: %v", k, p)}
			}
		}()
		ans, err := solve(ctx, input)
		done <- outcome{ans, err}
	}()

	select {
	case o := <-done:
		if o.err != nil {
			return "", fmt.Errorf("%s: %w", k, o.err)
		}
		return o.answer, nil
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			return "", errors.Wrap(errors.ErrCodeTimeout, ctx.Err(), "%s exceeded %s", k, r.Timeout)
		}
		return "", ctx.Err()
	}
}

// Job pairs a key with a way to load its input.
type Job struct {
	Key   Key
	Input func(ctx context.Context) (string, error)
}

// RunAll runs jobs with at most workers in flight and returns one result
// per job in job order. Solver failures are recorded in Result.Err; the
// returned error is non-nil only when ctx is cancelled.
func (r *Runner) RunAll(ctx context.Context, jobs []Job, workers int, refresh bool) ([]Result, error) {
	results := make([]Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := Result{Key: job.Key}
			input, err := job.Input(gctx)
			if err == nil {
				res, err = r.Run(gctx, job.Key, input, refresh)
			}
			res.Err = err
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}
