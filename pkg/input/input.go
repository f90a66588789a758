// Package input locates puzzle inputs, downloading them from the puzzle
// site when they are not on disk yet.
//
// Inputs live next to the answers they produce:
//
//	inputs/
//	  test.txt        ad-hoc sample used by `aoc run -t`
//	  2021/
//	    day16.txt
//
// A [Source] looks on disk first, then in the shared cache, and finally
// downloads the input with the user's session cookie. Downloaded inputs
// are written back to both so the site is asked at most once per day.
package input

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/aoc/pkg/buildinfo"
	"github.com/matzehuels/aoc/pkg/cache"
	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/observability"
)

// DefaultBaseURL is the puzzle site.
const DefaultBaseURL = "https://adventofcode.com"

const (
	httpTimeout = 30 * time.Second
	// Puzzles unlock at midnight US Eastern; December is always EST.
	unlockOffset = -5 * 60 * 60
)

var eastern = time.FixedZone("EST", unlockOffset)

// UnlockTime returns when the puzzle for year and day becomes available.
func UnlockTime(year, day int) time.Time {
	return time.Date(year, time.December, day, 0, 0, 0, 0, eastern)
}

// Source loads puzzle inputs. The zero value is not usable; see [New].
type Source struct {
	Dir     string
	BaseURL string
	// Token is the session cookie. Only needed for downloads.
	Token     string
	UserAgent string

	Cache  cache.Cache
	Keyer  cache.Keyer
	HTTP   *http.Client
	Logger *log.Logger

	// Attempts and Delay configure retries of transient download failures.
	Attempts int
	Delay    time.Duration
	// Now is the clock used for unlock checks.
	Now func() time.Time
}

// New returns a source reading from dir with the default site, retry
// policy and a no-op cache.
func New(dir, token string) *Source {
	return &Source{
		Dir:       dir,
		BaseURL:   DefaultBaseURL,
		Token:     token,
		UserAgent: buildinfo.UserAgent(""),
		Cache:     cache.NewNullCache(),
		Keyer:     cache.NewDefaultKeyer(),
		HTTP:      &http.Client{Timeout: httpTimeout},
		Logger:    log.Default(),
		Attempts:  3,
		Delay:     time.Second,
		Now:       time.Now,
	}
}

// Path returns the on-disk location of the input for year and day.
func (s *Source) Path(year, day int) string {
	return filepath.Join(s.Dir, strconv.Itoa(year), fmt.Sprintf("day%d.txt", day))
}

// TestPath returns the ad-hoc sample input file.
func (s *Source) TestPath() string {
	return filepath.Join(s.Dir, "test.txt")
}

// LoadTest reads the ad-hoc sample input.
func (s *Source) LoadTest() (string, error) {
	return readFile(s.TestPath())
}

// LoadFile reads an input from path; "-" reads standard input.
func LoadFile(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	return readFile(path)
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", errors.New(errors.ErrCodeNotFound, "input file %s does not exist", path)
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// Load returns the input for year and day, downloading it if needed.
func (s *Source) Load(ctx context.Context, year, day int) (string, error) {
	if err := validate(year, day); err != nil {
		return "", err
	}
	path := s.Path(year, day)
	if data, err := os.ReadFile(path); err == nil {
		return string(data), nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("read input: %w", err)
	}
	return s.Fetch(ctx, year, day, false)
}

// Fetch downloads the input and stores it on disk and in the cache. With
// refresh unset a cached copy is used instead of the network.
func (s *Source) Fetch(ctx context.Context, year, day int, refresh bool) (string, error) {
	if err := validate(year, day); err != nil {
		return "", err
	}
	if unlock := UnlockTime(year, day); s.now().Before(unlock) {
		return "", errors.New(errors.ErrCodeLocked, "%d day %d unlocks at %s", year, day, unlock.Local().Format(time.RFC1123))
	}

	key := s.Keyer.InputKey(year, day)
	if !refresh {
		if data, hit, err := s.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "input")
			s.Logger.Debug("cached input", "year", year, "day", day)
			return string(data), s.write(year, day, data)
		}
		observability.Cache().OnCacheMiss(ctx, "input")
	}

	if s.Token == "" {
		return "", errors.New(errors.ErrCodeUnauthorized, "no session cookie configured; run `aoc session set`")
	}

	var body []byte
	err := cache.Retry(ctx, s.Attempts, s.Delay, func() error {
		var err error
		body, err = s.download(ctx, year, day)
		return err
	})
	if err != nil {
		return "", err
	}

	if err := s.Cache.Set(ctx, key, body, cache.TTLInput); err != nil {
		s.Logger.Warn("cache input", "year", year, "day", day, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "input", len(body))
	}
	return string(body), s.write(year, day, body)
}

func (s *Source) download(ctx context.Context, year, day int) ([]byte, error) {
	url := fmt.Sprintf("%s/%d/day/%d/input", s.BaseURL, year, day)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: s.Token})
	req.Header.Set("User-Agent", s.UserAgent)

	observability.HTTP().OnRequest(ctx, req.Method, url)
	start := time.Now()
	resp, err := s.HTTP.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, req.Method, url, err)
		return nil, cache.Retryable(errors.Wrap(errors.ErrCodeNetwork, err, "download %d day %d", year, day))
	}
	defer resp.Body.Close()
	observability.HTTP().OnResponse(ctx, req.Method, url, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp, year, day); err != nil {
		return nil, err
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, cache.Retryable(errors.Wrap(errors.ErrCodeNetwork, err, "read %d day %d", year, day))
	}
	if len(body) == 0 {
		return nil, errors.New(errors.ErrCodeNetwork, "empty input for %d day %d", year, day)
	}
	return body, nil
}

func checkStatus(resp *http.Response, year, day int) error {
	switch code := resp.StatusCode; {
	case code == http.StatusOK:
		return nil
	case code == http.StatusBadRequest || code == http.StatusUnauthorized:
		return errors.New(errors.ErrCodeUnauthorized, "session cookie rejected (status %d)", code)
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "no input for %d day %d", year, day)
	case code == http.StatusTooManyRequests:
		secs, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		return errors.Wrap(errors.ErrCodeRateLimited, &errors.RetryAfter{Wait: time.Duration(secs) * time.Second}, "download %d day %d", year, day)
	case code >= 500:
		return cache.Retryable(errors.New(errors.ErrCodeNetwork, "status %d", code))
	default:
		return errors.New(errors.ErrCodeNetwork, "unexpected status %d", code)
	}
}

func (s *Source) write(year, day int, data []byte) error {
	path := s.Path(year, day)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create input dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write input: %w", err)
	}
	return nil
}

func (s *Source) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func validate(year, day int) error {
	if err := errors.ValidateYear(year); err != nil {
		return err
	}
	return errors.ValidateDay(day)
}
