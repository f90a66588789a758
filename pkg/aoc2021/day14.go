package aoc2021

import (
	"context"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

type pair [2]byte

type polymer struct {
	template string
	rules    map[pair]byte
}

func parsePolymer(input string) (*polymer, error) {
	blocks := parse.Blocks(input)
	if len(blocks) != 2 || len(blocks[0]) != 1 {
		return nil, errors.Input("want a template, a blank line and insertion rules")
	}
	p := &polymer{template: strings.TrimSpace(blocks[0][0]), rules: make(map[pair]byte)}
	if len(p.template) < 2 {
		return nil, errors.Input("template %q is too short", p.template)
	}
	for _, l := range blocks[1] {
		from, to, err := parse.Cut(strings.TrimSpace(l), " -> ")
		if err != nil {
			return nil, err
		}
		if len(from) != 2 || len(to) != 1 {
			return nil, errors.Input("bad rule %q", l)
		}
		p.rules[pair{from[0], from[1]}] = to[0]
	}
	return p, nil
}

// spread returns the difference between the most and least common
// element after the given number of insertion steps. Only pair counts are
// tracked, so the polymer never has to be built.
func (p *polymer) spread(steps int) int {
	pairs := make(map[pair]int)
	for i := 0; i+1 < len(p.template); i++ {
		pairs[pair{p.template[i], p.template[i+1]}]++
	}
	for range steps {
		next := make(map[pair]int, len(pairs))
		for pr, n := range pairs {
			if mid, ok := p.rules[pr]; ok {
				next[pair{pr[0], mid}] += n
				next[pair{mid, pr[1]}] += n
			} else {
				next[pr] += n
			}
		}
		pairs = next
	}

	// Every element is the first of exactly one pair, except the last.
	counts := map[byte]int{p.template[len(p.template)-1]: 1}
	for pr, n := range pairs {
		counts[pr[0]] += n
	}
	lo, hi := -1, 0
	for _, n := range counts {
		hi = max(hi, n)
		if lo < 0 || n < lo {
			lo = n
		}
	}
	return hi - lo
}

func polymer10(_ context.Context, input string) (string, error) {
	p, err := parsePolymer(input)
	if err != nil {
		return "", err
	}
	return puzzle.Int(p.spread(10)), nil
}

func polymer40(_ context.Context, input string) (string, error) {
	p, err := parsePolymer(input)
	if err != nil {
		return "", err
	}
	return puzzle.Int(p.spread(40)), nil
}
