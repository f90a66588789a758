package aoc2015

import (
	"context"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

const (
	teaspoons      = 100
	targetCalories = 500
	anyCalories    = -1
)

// ingredient holds capacity, durability, flavor, texture and calories.
type ingredient [5]int

func parseIngredients(input string) ([]ingredient, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return nil, err
	}
	out := make([]ingredient, len(lines))
	for i, l := range lines {
		n, err := parse.IntsN(l, 5)
		if err != nil {
			return nil, err
		}
		copy(out[i][:], n)
	}
	return out, nil
}

// bestRecipe tries every split of total teaspoons. calories restricts
// the search to recipes with exactly that many calories unless it is
// anyCalories.
func bestRecipe(ings []ingredient, total, calories int) int {
	amounts := make([]int, len(ings))
	best := 0
	var fill func(i, left int)
	fill = func(i, left int) {
		if i == len(ings)-1 {
			amounts[i] = left
			var sum ingredient
			for j, in := range ings {
				for p := range sum {
					sum[p] += amounts[j] * in[p]
				}
			}
			if calories != anyCalories && sum[4] != calories {
				return
			}
			score := 1
			for _, v := range sum[:4] {
				score *= max(v, 0)
			}
			best = max(best, score)
			return
		}
		for a := 0; a <= left; a++ {
			amounts[i] = a
			fill(i+1, left-a)
		}
	}
	fill(0, total)
	return best
}

func cookie(input string, calories int) (string, error) {
	ings, err := parseIngredients(input)
	if err != nil {
		return "", err
	}
	if len(ings) == 0 {
		return "", errors.Input("no ingredients")
	}
	return puzzle.Int(bestRecipe(ings, teaspoons, calories)), nil
}

func bestCookie(_ context.Context, input string) (string, error) {
	return cookie(input, anyCalories)
}

func bestLightCookie(_ context.Context, input string) (string, error) {
	return cookie(input, targetCalories)
}
