package aoc2015

import (
	"context"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

const eggnogLitres = 150

// containerWays counts the subsets of sizes that add up to target,
// bucketed by how many containers they use.
func containerWays(sizes []int, target int) []int {
	// ways[c][s]: subsets of c containers holding s litres.
	ways := make([][]int, len(sizes)+1)
	for c := range ways {
		ways[c] = make([]int, target+1)
	}
	ways[0][0] = 1
	for _, size := range sizes {
		for c := len(sizes); c >= 1; c-- {
			for s := target; s >= size; s-- {
				ways[c][s] += ways[c-1][s-size]
			}
		}
	}
	out := make([]int, len(sizes)+1)
	for c := range ways {
		out[c] = ways[c][target]
	}
	return out
}

func parseContainers(input string) ([]int, error) {
	sizes, err := parse.IntLines(input)
	if err != nil {
		return nil, err
	}
	for _, s := range sizes {
		if s <= 0 {
			return nil, errors.Input("container size must be positive, got %d", s)
		}
	}
	return sizes, nil
}

func containerCombos(_ context.Context, input string) (string, error) {
	sizes, err := parseContainers(input)
	if err != nil {
		return "", err
	}
	total := 0
	for _, n := range containerWays(sizes, eggnogLitres) {
		total += n
	}
	return puzzle.Int(total), nil
}

func minimalContainerCombos(_ context.Context, input string) (string, error) {
	sizes, err := parseContainers(input)
	if err != nil {
		return "", err
	}
	for _, n := range containerWays(sizes, eggnogLitres) {
		if n > 0 {
			return puzzle.Int(n), nil
		}
	}
	return "", errors.NoSolution("no combination holds %d litres", eggnogLitres)
}
