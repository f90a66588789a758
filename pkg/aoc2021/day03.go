package aoc2021

import (
	"context"
	"strconv"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

func parseReport(input string) ([]string, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return nil, err
	}
	width := len(strings.TrimSpace(lines[0]))
	for i, l := range lines {
		l = strings.TrimSpace(l)
		if len(l) != width || strings.Trim(l, "01") != "" {
			return nil, errors.Input("line %d: want %d binary digits, got %q", i+1, width, l)
		}
		lines[i] = l
	}
	return lines, nil
}

// ones counts how many readings have a 1 at bit position pos.
func ones(readings []string, pos int) int {
	n := 0
	for _, r := range readings {
		if r[pos] == '1' {
			n++
		}
	}
	return n
}

func powerConsumption(_ context.Context, input string) (string, error) {
	readings, err := parseReport(input)
	if err != nil {
		return "", err
	}
	gamma, epsilon := 0, 0
	for pos := range len(readings[0]) {
		gamma <<= 1
		epsilon <<= 1
		if 2*ones(readings, pos) >= len(readings) {
			gamma |= 1
		} else {
			epsilon |= 1
		}
	}
	return puzzle.Int(gamma * epsilon), nil
}

// rating filters readings bit by bit, keeping those whose bit matches the
// most common value (or the least common one when fewest is set). Ties
// keep 1 for the most common filter and 0 for the least common one.
func rating(readings []string, fewest bool) (int, error) {
	keep := readings
	for pos := 0; len(keep) > 1 && pos < len(readings[0]); pos++ {
		n := ones(keep, pos)
		if n == 0 || n == len(keep) {
			continue
		}
		want := byte('0')
		if (2*n >= len(keep)) != fewest {
			want = '1'
		}
		var next []string
		for _, r := range keep {
			if r[pos] == want {
				next = append(next, r)
			}
		}
		keep = next
	}
	if len(keep) != 1 {
		return 0, errors.NoSolution("%d readings left after filtering", len(keep))
	}
	v, err := strconv.ParseInt(keep[0], 2, 64)
	return int(v), err
}

func lifeSupport(_ context.Context, input string) (string, error) {
	readings, err := parseReport(input)
	if err != nil {
		return "", err
	}
	oxygen, err := rating(readings, false)
	if err != nil {
		return "", err
	}
	co2, err := rating(readings, true)
	if err != nil {
		return "", err
	}
	return puzzle.Int(oxygen * co2), nil
}
