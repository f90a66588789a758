package aoc2022

import (
	"context"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/geom"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

var ropeDirs = map[string]geom.Pt{"U": geom.Up, "D": geom.Down, "L": geom.Left, "R": geom.Right}

// tailVisits drags a rope of the given number of knots through the
// motions and counts the positions the last knot visits.
func tailVisits(input string, knots int) (string, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return "", err
	}
	rope := make([]geom.Pt, knots)
	visited := map[geom.Pt]bool{{}: true}
	for i, l := range lines {
		f := strings.Fields(l)
		if len(f) != 2 {
			return "", errors.Input("line %d: want \"<dir> <steps>\", got %q", i+1, l)
		}
		d, ok := ropeDirs[f[0]]
		if !ok {
			return "", errors.Input("line %d: unknown direction %q", i+1, f[0])
		}
		steps, err := parse.Int(f[1])
		if err != nil {
			return "", err
		}
		for range steps {
			rope[0] = rope[0].Add(d)
			for k := 1; k < knots; k++ {
				if rope[k].Chebyshev(rope[k-1]) > 1 {
					rope[k] = rope[k].Toward(rope[k-1])
				}
			}
			visited[rope[knots-1]] = true
		}
	}
	return puzzle.Int(len(visited)), nil
}

func shortRope(_ context.Context, input string) (string, error) {
	return tailVisits(input, 2)
}

func longRope(_ context.Context, input string) (string, error) {
	return tailVisits(input, 10)
}
