package aoc2022

import (
	"context"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

// Shapes are 0 rock, 1 paper, 2 scissors; shape s beats (s+2)%3.
func roundScore(opponent, me int) int {
	outcome := (me - opponent + 4) % 3 // 0 loss, 1 draw, 2 win
	return me + 1 + outcome*3
}

// playGuide scores every round. pick turns the opponent's shape and the
// second column (0..2) into my shape.
func playGuide(input string, pick func(opponent, column int) int) (string, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return "", err
	}
	total := 0
	for i, l := range lines {
		f := strings.Fields(l)
		if len(f) != 2 || len(f[0]) != 1 || len(f[1]) != 1 ||
			f[0][0] < 'A' || f[0][0] > 'C' || f[1][0] < 'X' || f[1][0] > 'Z' {
			return "", errors.Input("line %d: want \"A-C X-Z\", got %q", i+1, l)
		}
		opp, col := int(f[0][0]-'A'), int(f[1][0]-'X')
		total += roundScore(opp, pick(opp, col))
	}
	return puzzle.Int(total), nil
}

func guessedStrategy(_ context.Context, input string) (string, error) {
	return playGuide(input, func(_, col int) int { return col })
}

// decodedStrategy reads the second column as the desired outcome.
func decodedStrategy(_ context.Context, input string) (string, error) {
	return playGuide(input, func(opp, col int) int { return (opp + col + 2) % 3 })
}
