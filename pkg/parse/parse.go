// Package parse provides the small text helpers every solver needs to turn
// raw puzzle input into lines, blocks, numbers and grids.
//
// All helpers accept input with or without a trailing newline and with
// either LF or CRLF line endings. Failures are reported as INVALID_INPUT
// errors from [github.com/matzehuels/aoc/pkg/errors].
package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
)

// Normalize converts CRLF line endings to LF and strips trailing newlines.
func Normalize(input string) string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	return strings.TrimRight(input, "\n")
}

// Lines splits input into lines. An empty input yields no lines.
func Lines(input string) []string {
	input = Normalize(input)
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// NonEmpty is like [Lines] but rejects an input without any content.
func NonEmpty(input string) ([]string, error) {
	lines := Lines(input)
	if len(lines) == 0 {
		return nil, errors.Input("empty input")
	}
	return lines, nil
}

// Blocks splits input into groups of lines separated by blank lines.
// Runs of blank lines count as a single separator.
func Blocks(input string) [][]string {
	var (
		blocks [][]string
		cur    []string
	)
	for _, line := range Lines(input) {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}

// Int parses a base-10 integer, trimming surrounding space.
func Int(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "not an integer: %q", s)
	}
	return n, nil
}

// IntList parses a sep-separated list of integers. Empty fields are skipped.
func IntList(s, sep string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, sep) {
		if strings.TrimSpace(f) == "" {
			continue
		}
		n, err := Int(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

var intRe = regexp.MustCompile(`-?\d+`)

// Ints extracts every signed integer appearing in s, in order.
// Text between numbers is ignored, which makes it handy for lines like
// "Sensor at x=2, y=18: closest beacon is at x=-2, y=15".
func Ints(s string) []int {
	matches := intRe.FindAllString(s, -1)
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// IntsN is like [Ints] but requires exactly n integers.
func IntsN(s string, n int) ([]int, error) {
	nums := Ints(s)
	if len(nums) != n {
		return nil, errors.Input("expected %d numbers in %q, found %d", n, s, len(nums))
	}
	return nums, nil
}

// IntLines parses one integer per line.
func IntLines(input string) ([]int, error) {
	lines, err := NonEmpty(input)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(lines))
	for i, l := range lines {
		if out[i], err = Int(l); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "line %d", i+1)
		}
	}
	return out, nil
}

// Cut splits s around the first sep, failing when sep is absent.
func Cut(s, sep string) (before, after string, err error) {
	before, after, ok := strings.Cut(s, sep)
	if !ok {
		return "", "", errors.Input("missing %q in %q", sep, s)
	}
	return before, after, nil
}
