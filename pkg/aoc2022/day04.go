package aoc2022

import (
	"context"

	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

type sections struct{ lo, hi int }

func (s sections) contains(o sections) bool { return s.lo <= o.lo && o.hi <= s.hi }
func (s sections) overlaps(o sections) bool { return s.lo <= o.hi && o.lo <= s.hi }

// countPairs counts assignment pairs satisfying match. Section numbers
// are unsigned, so the dashes are separators and not signs.
func countPairs(input string, match func(a, b sections) bool) (string, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return "", err
	}
	n := 0
	for _, l := range lines {
		left, right, err := parse.Cut(l, ",")
		if err != nil {
			return "", err
		}
		a, err := parseSections(left)
		if err != nil {
			return "", err
		}
		b, err := parseSections(right)
		if err != nil {
			return "", err
		}
		if match(a, b) {
			n++
		}
	}
	return puzzle.Int(n), nil
}

func parseSections(s string) (sections, error) {
	lo, hi, err := parse.Cut(s, "-")
	if err != nil {
		return sections{}, err
	}
	a, err := parse.Int(lo)
	if err != nil {
		return sections{}, err
	}
	b, err := parse.Int(hi)
	if err != nil {
		return sections{}, err
	}
	return sections{a, b}, nil
}

func containedPairs(_ context.Context, input string) (string, error) {
	return countPairs(input, func(a, b sections) bool { return a.contains(b) || b.contains(a) })
}

func overlappingPairs(_ context.Context, input string) (string, error) {
	return countPairs(input, sections.overlaps)
}
