package aoc2021

import (
	"context"
	"math"
	"slices"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/geom"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

func parseCrabs(input string) ([]int, error) {
	crabs, err := parse.IntList(strings.TrimSpace(input), ",")
	if err != nil {
		return nil, err
	}
	if len(crabs) == 0 {
		return nil, errors.Input("no crabs")
	}
	slices.Sort(crabs)
	return crabs, nil
}

// cheapestAlignment tries every position between the outermost crabs.
func cheapestAlignment(crabs []int, cost func(dist int) int) int {
	best := math.MaxInt
	for pos := crabs[0]; pos <= crabs[len(crabs)-1]; pos++ {
		total := 0
		for _, c := range crabs {
			total += cost(geom.Abs(c - pos))
		}
		best = min(best, total)
	}
	return best
}

func linearFuel(_ context.Context, input string) (string, error) {
	crabs, err := parseCrabs(input)
	if err != nil {
		return "", err
	}
	// The median minimises the sum of absolute distances.
	median := crabs[len(crabs)/2]
	total := 0
	for _, c := range crabs {
		total += geom.Abs(c - median)
	}
	return puzzle.Int(total), nil
}

func triangularFuel(_ context.Context, input string) (string, error) {
	crabs, err := parseCrabs(input)
	if err != nil {
		return "", err
	}
	return puzzle.Int(cheapestAlignment(crabs, geom.Triangular[int])), nil
}
