package aoc2015

import (
	"context"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

const animationSteps = 100

// animate runs steps rounds of the light automaton and returns how many
// lights are on. stuck keeps the four corners lit throughout.
func animate(g parse.Grid, steps int, stuck bool) int {
	rows, cols := g.Rows(), g.Cols()
	cur := make([][]bool, rows)
	next := make([][]bool, rows)
	for r := range rows {
		cur[r] = make([]bool, cols)
		next[r] = make([]bool, cols)
		for c := range cols {
			cur[r][c] = g[r][c] == '#'
		}
	}
	pin := func(grid [][]bool) {
		if stuck {
			grid[0][0], grid[0][cols-1] = true, true
			grid[rows-1][0], grid[rows-1][cols-1] = true, true
		}
	}
	pin(cur)

	for range steps {
		for r := range rows {
			for c := range cols {
				on := 0
				for dr := -1; dr <= 1; dr++ {
					for dc := -1; dc <= 1; dc++ {
						nr, nc := r+dr, c+dc
						if (dr != 0 || dc != 0) && g.In(nr, nc) && cur[nr][nc] {
							on++
						}
					}
				}
				next[r][c] = on == 3 || (on == 2 && cur[r][c])
			}
		}
		pin(next)
		cur, next = next, cur
	}

	lit := 0
	for _, row := range cur {
		for _, v := range row {
			if v {
				lit++
			}
		}
	}
	return lit
}

func parseLights(input string) (parse.Grid, error) {
	g, err := parse.ParseGrid(input)
	if err != nil {
		return nil, err
	}
	if g.Count('#')+g.Count('.') != g.Rows()*g.Cols() {
		return nil, errors.Input("lights must be '#' or '.'")
	}
	return g, nil
}

func lightsAfter100(_ context.Context, input string) (string, error) {
	g, err := parseLights(input)
	if err != nil {
		return "", err
	}
	return puzzle.Int(animate(g, animationSteps, false)), nil
}

func lightsStuckCorners(_ context.Context, input string) (string, error) {
	g, err := parseLights(input)
	if err != nil {
		return "", err
	}
	return puzzle.Int(animate(g, animationSteps, true)), nil
}
