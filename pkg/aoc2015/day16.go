package aoc2015

import (
	"context"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

// tickerTape is the MFCSAM reading of the gift.
var tickerTape = map[string]int{
	"children":    3,
	"cats":        7,
	"samoyeds":    2,
	"pomeranians": 3,
	"akitas":      0,
	"vizslas":     0,
	"goldfish":    5,
	"trees":       3,
	"cars":        2,
	"perfumes":    1,
}

type aunt struct {
	number int
	known  map[string]int
}

func parseAunts(input string) ([]aunt, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return nil, err
	}
	aunts := make([]aunt, len(lines))
	for i, l := range lines {
		head, rest, err := parse.Cut(l, ": ")
		if err != nil {
			return nil, err
		}
		n, err := parse.Int(strings.TrimPrefix(head, "Sue "))
		if err != nil {
			return nil, err
		}
		a := aunt{number: n, known: make(map[string]int)}
		for _, attr := range strings.Split(rest, ", ") {
			k, v, err := parse.Cut(attr, ": ")
			if err != nil {
				return nil, err
			}
			if a.known[k], err = parse.Int(v); err != nil {
				return nil, err
			}
		}
		aunts[i] = a
	}
	return aunts, nil
}

// findAunt returns the first aunt whose every known compound satisfies
// match against the ticker tape.
func findAunt(input string, match func(compound string, have, want int) bool) (string, error) {
	aunts, err := parseAunts(input)
	if err != nil {
		return "", err
	}
	for _, a := range aunts {
		ok := true
		for k, v := range a.known {
			want, known := tickerTape[k]
			if !known || !match(k, v, want) {
				ok = false
				break
			}
		}
		if ok {
			return puzzle.Int(a.number), nil
		}
	}
	return "", errors.NoSolution("no aunt matches the ticker tape")
}

func exactSue(_ context.Context, input string) (string, error) {
	return findAunt(input, func(_ string, have, want int) bool { return have == want })
}

// rangedSue reads cats and trees as lower bounds and pomeranians and
// goldfish as upper bounds.
func rangedSue(_ context.Context, input string) (string, error) {
	return findAunt(input, func(k string, have, want int) bool {
		switch k {
		case "cats", "trees":
			return have > want
		case "pomeranians", "goldfish":
			return have < want
		}
		return have == want
	})
}
