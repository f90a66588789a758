// Package answers stores accepted puzzle answers as small text files so
// that they can be committed and diffed:
//
//	outputs/
//	  2021/
//	    day16-part1.txt
//	    day16-part2.txt
//
// The runner compares fresh results against these files; see [Compare].
package answers

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

// Status is the outcome of comparing a result with a saved answer.
type Status int

const (
	Missing Status = iota
	Pass
	Fail
)

func (s Status) String() string {
	switch s {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	default:
		return "missing"
	}
}

// Compare checks answer against the saved value. An empty saved value
// means there is nothing to compare with.
func Compare(answer, saved string) Status {
	saved = strings.TrimSpace(saved)
	switch {
	case saved == "":
		return Missing
	case strings.TrimSpace(answer) == saved:
		return Pass
	default:
		return Fail
	}
}

var fileRe = regexp.MustCompile(`^day(\d+)-part([12])\.txt$`)

// Store reads and writes answers under a root directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created on the
// first [Store.Save].
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the root directory.
func (s *Store) Dir() string { return s.dir }

// Path returns the file holding the answer for k.
func (s *Store) Path(k puzzle.Key) string {
	return filepath.Join(s.dir, strconv.Itoa(k.Year), fmt.Sprintf("day%d-part%d.txt", k.Day, k.Part))
}

// Load returns the saved answer for k, or NOT_FOUND when none exists.
func (s *Store) Load(k puzzle.Key) (string, error) {
	data, err := os.ReadFile(s.Path(k))
	if os.IsNotExist(err) {
		return "", errors.New(errors.ErrCodeNotFound, "no saved answer for %s", k)
	}
	if err != nil {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes answer for k, replacing any previous value.
func (s *Store) Save(k puzzle.Key, answer string) error {
	path := s.Path(k)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create answer dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(strings.TrimSpace(answer)+"\n"), 0o644); err != nil {
		return fmt.Errorf("write answer: %w", err)
	}
	return nil
}

// List returns the keys of year that have a saved answer, ordered by day
// and part. Files that do not follow the naming scheme are ignored.
func (s *Store) List(year int) ([]puzzle.Key, error) {
	entries, err := os.ReadDir(filepath.Join(s.dir, strconv.Itoa(year)))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	var keys []puzzle.Key
	for _, e := range entries {
		m := fileRe.FindStringSubmatch(e.Name())
		if e.IsDir() || m == nil {
			continue
		}
		day, _ := strconv.Atoi(m[1])
		part, _ := strconv.Atoi(m[2])
		if errors.ValidateDay(day) != nil {
			continue
		}
		keys = append(keys, puzzle.Key{Year: year, Day: day, Part: part})
	}
	slices.SortFunc(keys, func(a, b puzzle.Key) int {
		if a.Day != b.Day {
			return a.Day - b.Day
		}
		return a.Part - b.Part
	})
	return keys, nil
}

// Years returns the years that have an answer directory, ascending.
func (s *Store) Years() ([]int, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	var years []int
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if y, err := strconv.Atoi(e.Name()); err == nil && errors.ValidateYear(y) == nil {
			years = append(years, y)
		}
	}
	slices.Sort(years)
	return years, nil
}
