package aoc2021

import (
	"context"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/geom"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

// diveDirs maps a command to its unit step. Depth grows downwards.
var diveDirs = map[string]geom.Pt{"forward": geom.Right, "down": geom.Down, "up": geom.Up}

type move struct {
	dir string
	n   int
}

func parseMoves(input string) ([]move, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return nil, err
	}
	moves := make([]move, len(lines))
	for i, l := range lines {
		f := strings.Fields(l)
		if len(f) != 2 {
			return nil, errors.Input("line %d: want \"<direction> <units>\", got %q", i+1, l)
		}
		if _, ok := diveDirs[f[0]]; !ok {
			return nil, errors.Input("line %d: unknown direction %q", i+1, f[0])
		}
		n, err := parse.Int(f[1])
		if err != nil {
			return nil, err
		}
		moves[i] = move{f[0], n}
	}
	return moves, nil
}

func divePosition(_ context.Context, input string) (string, error) {
	moves, err := parseMoves(input)
	if err != nil {
		return "", err
	}
	var pos geom.Pt
	for _, m := range moves {
		pos = pos.Add(diveDirs[m.dir].Scale(m.n))
	}
	return puzzle.Int(pos.X * pos.Y), nil
}

func aimedDive(_ context.Context, input string) (string, error) {
	moves, err := parseMoves(input)
	if err != nil {
		return "", err
	}
	x, depth, aim := 0, 0, 0
	for _, m := range moves {
		switch m.dir {
		case "forward":
			x += m.n
			depth += aim * m.n
		case "down":
			aim += m.n
		case "up":
			aim -= m.n
		}
	}
	return puzzle.Int(x * depth), nil
}
