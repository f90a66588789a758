package aoc2022

import (
	"context"

	"github.com/matzehuels/aoc/pkg/geom"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

type forest [][]int

// look walks from p in direction d and returns how many trees are seen
// and whether the view reaches the edge unblocked.
func (f forest) look(p, d geom.Pt) (seen int, clear bool) {
	h := f[p.Y][p.X]
	w, ht := len(f[0]), len(f)
	for q := p.Add(d); q.In(w, ht); q = q.Add(d) {
		seen++
		if f[q.Y][q.X] >= h {
			return seen, false
		}
	}
	return seen, true
}

func visibleTrees(_ context.Context, input string) (string, error) {
	d, err := parse.Digits(input)
	if err != nil {
		return "", err
	}
	f := forest(d)
	n := 0
	for y := range f {
		for x := range f[y] {
			for _, dir := range geom.Dirs4 {
				if _, clear := f.look(geom.P(x, y), dir); clear {
					n++
					break
				}
			}
		}
	}
	return puzzle.Int(n), nil
}

func bestScenicScore(_ context.Context, input string) (string, error) {
	d, err := parse.Digits(input)
	if err != nil {
		return "", err
	}
	f := forest(d)
	best := 0
	for y := range f {
		for x := range f[y] {
			score := 1
			for _, dir := range geom.Dirs4 {
				seen, _ := f.look(geom.P(x, y), dir)
				score *= seen
			}
			best = max(best, score)
		}
	}
	return puzzle.Int(best), nil
}
