package aoc2021

import (
	"context"
	"slices"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

var closer = map[byte]byte{'(': ')', '[': ']', '{': '}', '<': '>'}

var (
	corruptPoints  = map[byte]int{')': 3, ']': 57, '}': 1197, '>': 25137}
	completePoints = map[byte]int{')': 1, ']': 2, '}': 3, '>': 4}
)

// checkChunks returns the first illegal closing character, or the closers
// needed to complete the line when it is merely incomplete.
func checkChunks(line string) (illegal byte, missing []byte, err error) {
	var stack []byte
	for i := range len(line) {
		c := line[i]
		if want, ok := closer[c]; ok {
			stack = append(stack, want)
			continue
		}
		if _, ok := corruptPoints[c]; !ok {
			return 0, nil, errors.Input("unexpected %q", c)
		}
		if len(stack) == 0 || stack[len(stack)-1] != c {
			return c, nil, nil
		}
		stack = stack[:len(stack)-1]
	}
	slices.Reverse(stack)
	return 0, stack, nil
}

func completionValue(missing []byte) int {
	score := 0
	for _, c := range missing {
		score = score*5 + completePoints[c]
	}
	return score
}

func corruptionScore(_ context.Context, input string) (string, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return "", err
	}
	total := 0
	for _, l := range lines {
		illegal, _, err := checkChunks(strings.TrimSpace(l))
		if err != nil {
			return "", err
		}
		total += corruptPoints[illegal]
	}
	return puzzle.Int(total), nil
}

func completionScore(_ context.Context, input string) (string, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return "", err
	}
	var scores []int
	for _, l := range lines {
		illegal, missing, err := checkChunks(strings.TrimSpace(l))
		if err != nil {
			return "", err
		}
		if illegal == 0 && len(missing) > 0 {
			scores = append(scores, completionValue(missing))
		}
	}
	if len(scores) == 0 {
		return "", errors.NoSolution("no incomplete lines")
	}
	slices.Sort(scores)
	return puzzle.Int(scores[len(scores)/2]), nil
}
