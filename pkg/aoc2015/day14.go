package aoc2015

import (
	"context"
	"slices"
	"strings"

	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

const raceSeconds = 2503

type reindeer struct {
	name             string
	speed, fly, rest int
}

func parseReindeer(input string) ([]reindeer, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return nil, err
	}
	rs := make([]reindeer, len(lines))
	for i, l := range lines {
		n, err := parse.IntsN(l, 3)
		if err != nil {
			return nil, err
		}
		rs[i] = reindeer{name: strings.Fields(l)[0], speed: n[0], fly: n[1], rest: n[2]}
	}
	return rs, nil
}

// distanceAt is how far r has travelled after t seconds.
func (r reindeer) distanceAt(t int) int {
	period := r.fly + r.rest
	flown := t/period*r.fly + min(t%period, r.fly)
	return flown * r.speed
}

func furthest(rs []reindeer, t int) int {
	best := 0
	for _, r := range rs {
		best = max(best, r.distanceAt(t))
	}
	return best
}

// mostPoints awards a point each second to every reindeer in the lead.
func mostPoints(rs []reindeer, t int) int {
	points := make([]int, len(rs))
	for s := 1; s <= t; s++ {
		lead := furthest(rs, s)
		for i, r := range rs {
			if r.distanceAt(s) == lead {
				points[i]++
			}
		}
	}
	return slices.Max(points)
}

func winningDistance(_ context.Context, input string) (string, error) {
	rs, err := parseReindeer(input)
	if err != nil {
		return "", err
	}
	return puzzle.Int(furthest(rs, raceSeconds)), nil
}

func winningPoints(_ context.Context, input string) (string, error) {
	rs, err := parseReindeer(input)
	if err != nil {
		return "", err
	}
	return puzzle.Int(mostPoints(rs, raceSeconds)), nil
}
