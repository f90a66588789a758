package aoc2022

import (
	"context"
	"slices"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

// elfTotals returns each elf's calories, largest first.
func elfTotals(input string) ([]int, error) {
	blocks := parse.Blocks(input)
	if len(blocks) == 0 {
		return nil, errors.Input("no elves")
	}
	totals := make([]int, len(blocks))
	for i, b := range blocks {
		for _, l := range b {
			n, err := parse.Int(l)
			if err != nil {
				return nil, err
			}
			totals[i] += n
		}
	}
	slices.Sort(totals)
	slices.Reverse(totals)
	return totals, nil
}

func mostCalories(_ context.Context, input string) (string, error) {
	totals, err := elfTotals(input)
	if err != nil {
		return "", err
	}
	return puzzle.Int(totals[0]), nil
}

func topThreeCalories(_ context.Context, input string) (string, error) {
	totals, err := elfTotals(input)
	if err != nil {
		return "", err
	}
	sum := 0
	for _, t := range totals[:min(3, len(totals))] {
		sum += t
	}
	return puzzle.Int(sum), nil
}
