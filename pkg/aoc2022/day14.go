package aoc2022

import (
	"context"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/geom"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

var sandSource = geom.P(500, 0)

type cave struct {
	blocked map[geom.Pt]bool
	lowest  int
}

func parseCave(input string) (*cave, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return nil, err
	}
	c := &cave{blocked: make(map[geom.Pt]bool)}
	for i, l := range lines {
		var path []geom.Pt
		for _, pt := range strings.Split(l, " -> ") {
			n, err := parse.IntsN(pt, 2)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "line %d", i+1)
			}
			path = append(path, geom.P(n[0], n[1]))
		}
		for j := 1; j < len(path); j++ {
			seg := geom.Segment{From: path[j-1], To: path[j]}
			if !seg.Horizontal() && !seg.Vertical() {
				return nil, errors.Input("line %d: rock path is not axis aligned", i+1)
			}
			for p := range seg.Points() {
				c.blocked[p] = true
				c.lowest = max(c.lowest, p.Y)
			}
		}
	}
	return c, nil
}

// pour drops sand until a grain falls into the abyss or, when floor is
// set, until the source is blocked. It returns the grains at rest.
func (c *cave) pour(floor bool) int {
	floorY := c.lowest + 2
	rested := 0
	for !c.blocked[sandSource] {
		p := sandSource
		for {
			if !floor && p.Y > c.lowest {
				return rested
			}
			moved := false
			for _, dx := range []int{0, -1, 1} {
				q := geom.P(p.X+dx, p.Y+1)
				if !c.blocked[q] && q.Y < floorY {
					p, moved = q, true
					break
				}
			}
			if !moved {
				break
			}
		}
		c.blocked[p] = true
		rested++
	}
	return rested
}

func sandUntilAbyss(_ context.Context, input string) (string, error) {
	c, err := parseCave(input)
	if err != nil {
		return "", err
	}
	return puzzle.Int(c.pour(false)), nil
}

func sandUntilBlocked(_ context.Context, input string) (string, error) {
	c, err := parseCave(input)
	if err != nil {
		return "", err
	}
	return puzzle.Int(c.pour(true)), nil
}
