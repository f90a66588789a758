package aoc2022

import (
	"context"
	"math/bits"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

// itemSet holds item priorities 1..52 as bits.
type itemSet uint64

func priority(c rune) int {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 1
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 27
	}
	return 0
}

func items(s string) (itemSet, error) {
	var set itemSet
	for _, c := range s {
		p := priority(c)
		if p == 0 {
			return 0, errors.Input("bad item %q", c)
		}
		set |= 1 << p
	}
	return set, nil
}

// only returns the priority of the single item in set.
func (set itemSet) only() (int, error) {
	if bits.OnesCount64(uint64(set)) != 1 {
		return 0, errors.Input("expected exactly one shared item, found %d", bits.OnesCount64(uint64(set)))
	}
	return bits.TrailingZeros64(uint64(set)), nil
}

func misplacedItems(_ context.Context, input string) (string, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return "", err
	}
	total := 0
	for i, l := range lines {
		l = strings.TrimSpace(l)
		if len(l)%2 != 0 {
			return "", errors.Input("line %d: odd number of items", i+1)
		}
		a, err := items(l[:len(l)/2])
		if err != nil {
			return "", err
		}
		b, err := items(l[len(l)/2:])
		if err != nil {
			return "", err
		}
		p, err := (a & b).only()
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "line %d", i+1)
		}
		total += p
	}
	return puzzle.Int(total), nil
}

func badgePriorities(_ context.Context, input string) (string, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return "", err
	}
	if len(lines)%3 != 0 {
		return "", errors.Input("%d rucksacks do not form groups of three", len(lines))
	}
	total := 0
	for g := 0; g < len(lines); g += 3 {
		common := ^itemSet(0)
		for _, l := range lines[g : g+3] {
			s, err := items(strings.TrimSpace(l))
			if err != nil {
				return "", err
			}
			common &= s
		}
		p, err := common.only()
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "group %d", g/3+1)
		}
		total += p
	}
	return puzzle.Int(total), nil
}
