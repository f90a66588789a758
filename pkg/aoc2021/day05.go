package aoc2021

import (
	"context"

	"github.com/matzehuels/aoc/pkg/geom"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

func parseVents(input string) ([]geom.Segment, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return nil, err
	}
	vents := make([]geom.Segment, len(lines))
	for i, l := range lines {
		n, err := parse.IntsN(l, 4)
		if err != nil {
			return nil, err
		}
		vents[i] = geom.Segment{From: geom.P(n[0], n[1]), To: geom.P(n[2], n[3])}
	}
	return vents, nil
}

// overlaps counts points covered by at least two vents.
func overlaps(input string, diagonals bool) (string, error) {
	vents, err := parseVents(input)
	if err != nil {
		return "", err
	}
	seen := make(map[geom.Pt]int)
	for _, v := range vents {
		if v.Diagonal() && !diagonals {
			continue
		}
		for p := range v.Points() {
			seen[p]++
		}
	}
	n := 0
	for _, c := range seen {
		if c > 1 {
			n++
		}
	}
	return puzzle.Int(n), nil
}

func straightOverlaps(_ context.Context, input string) (string, error) {
	return overlaps(input, false)
}

func allOverlaps(_ context.Context, input string) (string, error) {
	return overlaps(input, true)
}
