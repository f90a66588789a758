package aoc2021

import (
	"context"

	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

// increases counts readings larger than the one gap positions earlier.
// Comparing sliding-window sums of width w reduces to gap w since the
// shared readings cancel.
func increases(depths []int, gap int) int {
	n := 0
	for i := gap; i < len(depths); i++ {
		if depths[i] > depths[i-gap] {
			n++
		}
	}
	return n
}

func depthIncreases(_ context.Context, input string) (string, error) {
	depths, err := parse.IntLines(input)
	if err != nil {
		return "", err
	}
	return puzzle.Int(increases(depths, 1)), nil
}

func windowIncreases(_ context.Context, input string) (string, error) {
	depths, err := parse.IntLines(input)
	if err != nil {
		return "", err
	}
	return puzzle.Int(increases(depths, 3)), nil
}
