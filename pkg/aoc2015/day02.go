package aoc2015

import (
	"context"
	"slices"

	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

// boxes parses "LxWxH" lines, returning each box's sides sorted ascending.
func boxes(input string) ([][3]int, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return nil, err
	}
	out := make([][3]int, len(lines))
	for i, l := range lines {
		dims, err := parse.IntsN(l, 3)
		if err != nil {
			return nil, err
		}
		slices.Sort(dims)
		out[i] = [3]int(dims)
	}
	return out, nil
}

func wrappingPaper(_ context.Context, input string) (string, error) {
	bs, err := boxes(input)
	if err != nil {
		return "", err
	}
	total := 0
	for _, b := range bs {
		total += 2*(b[0]*b[1]+b[1]*b[2]+b[0]*b[2]) + b[0]*b[1]
	}
	return puzzle.Int(total), nil
}

func ribbon(_ context.Context, input string) (string, error) {
	bs, err := boxes(input)
	if err != nil {
		return "", err
	}
	total := 0
	for _, b := range bs {
		total += 2*(b[0]+b[1]) + b[0]*b[1]*b[2]
	}
	return puzzle.Int(total), nil
}
