package aoc2021

import (
	"context"
	"slices"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/geom"
	"github.com/matzehuels/aoc/pkg/graph"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

type heightmap [][]int

func (h heightmap) at(p geom.Pt) (int, bool) {
	if p.Y < 0 || p.Y >= len(h) || p.X < 0 || p.X >= len(h[p.Y]) {
		return 0, false
	}
	return h[p.Y][p.X], true
}

func (h heightmap) lowPoints() []geom.Pt {
	var low []geom.Pt
	for y, row := range h {
		for x, v := range row {
			p := geom.P(x, y)
			isLow := true
			for _, n := range p.Neighbours4() {
				if nv, ok := h.at(n); ok && nv <= v {
					isLow = false
					break
				}
			}
			if isLow {
				low = append(low, p)
			}
		}
	}
	return low
}

// basin returns the size of the region of non-9 cells around low.
func (h heightmap) basin(low geom.Pt) int {
	reach := graph.BFS(low, func(p geom.Pt) []geom.Pt {
		var next []geom.Pt
		for _, n := range p.Neighbours4() {
			if v, ok := h.at(n); ok && v != 9 {
				next = append(next, n)
			}
		}
		return next
	})
	return len(reach)
}

func lowPointRisk(_ context.Context, input string) (string, error) {
	d, err := parse.Digits(input)
	if err != nil {
		return "", err
	}
	h := heightmap(d)
	risk := 0
	for _, p := range h.lowPoints() {
		v, _ := h.at(p)
		risk += v + 1
	}
	return puzzle.Int(risk), nil
}

func largestBasins(_ context.Context, input string) (string, error) {
	d, err := parse.Digits(input)
	if err != nil {
		return "", err
	}
	h := heightmap(d)
	var sizes []int
	for _, p := range h.lowPoints() {
		sizes = append(sizes, h.basin(p))
	}
	if len(sizes) < 3 {
		return "", errors.NoSolution("only %d basins", len(sizes))
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)
	return puzzle.Int(sizes[0] * sizes[1] * sizes[2]), nil
}
