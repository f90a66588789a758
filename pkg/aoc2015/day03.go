package aoc2015

import (
	"context"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/geom"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

var arrows = map[rune]geom.Pt{'^': geom.Up, 'v': geom.Down, '<': geom.Left, '>': geom.Right}

// deliver moves the given number of santas in turn and counts the houses
// that receive at least one present.
func deliver(input string, santas int) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", errors.Input("no directions")
	}
	pos := make([]geom.Pt, santas)
	seen := map[geom.Pt]bool{{}: true}
	for i, c := range input {
		d, ok := arrows[c]
		if !ok {
			return "", errors.Input("unexpected %q at position %d", c, i+1)
		}
		s := i % santas
		pos[s] = pos[s].Add(d)
		seen[pos[s]] = true
	}
	return puzzle.Int(len(seen)), nil
}

func housesVisited(_ context.Context, input string) (string, error) {
	return deliver(input, 1)
}

func housesWithRobot(_ context.Context, input string) (string, error) {
	return deliver(input, 2)
}
