package aoc2021

import (
	"context"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/geom"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

// syncLimit bounds the search for a synchronised flash.
const syncLimit = 100_000

type octopuses [][]int

// step advances every octopus by one and returns how many flashed.
func (o octopuses) step() int {
	var ready []geom.Pt
	bump := func(p geom.Pt) {
		o[p.Y][p.X]++
		if o[p.Y][p.X] == 10 {
			ready = append(ready, p)
		}
	}
	for y := range o {
		for x := range o[y] {
			bump(geom.P(x, y))
		}
	}
	flashed := 0
	for len(ready) > 0 {
		p := ready[len(ready)-1]
		ready = ready[:len(ready)-1]
		flashed++
		for _, n := range p.Neighbours8() {
			if n.Y >= 0 && n.Y < len(o) && n.X >= 0 && n.X < len(o[n.Y]) {
				bump(n)
			}
		}
	}
	for y := range o {
		for x := range o[y] {
			if o[y][x] > 9 {
				o[y][x] = 0
			}
		}
	}
	return flashed
}

func flashesAfter100(_ context.Context, input string) (string, error) {
	d, err := parse.Digits(input)
	if err != nil {
		return "", err
	}
	o := octopuses(d)
	total := 0
	for range 100 {
		total += o.step()
	}
	return puzzle.Int(total), nil
}

func firstSyncStep(ctx context.Context, input string) (string, error) {
	d, err := parse.Digits(input)
	if err != nil {
		return "", err
	}
	o := octopuses(d)
	all := len(o) * len(o[0])
	for s := 1; s <= syncLimit; s++ {
		if o.step() == all {
			return puzzle.Int(s), nil
		}
		if s%1000 == 0 && ctx.Err() != nil {
			return "", ctx.Err()
		}
	}
	return "", errors.NoSolution("octopuses never synchronise")
}
