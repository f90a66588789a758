package aoc2015

import (
	"context"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

// floors yields the floor after each instruction.
func floors(input string, visit func(i, floor int) bool) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return errors.Input("no instructions")
	}
	floor := 0
	for i, c := range input {
		switch c {
		case '(':
			floor++
		case ')':
			floor--
		default:
			return errors.Input("unexpected %q at position %d", c, i+1)
		}
		if !visit(i, floor) {
			return nil
		}
	}
	return nil
}

func finalFloor(_ context.Context, input string) (string, error) {
	last := 0
	err := floors(input, func(_, f int) bool { last = f; return true })
	if err != nil {
		return "", err
	}
	return puzzle.Int(last), nil
}

func basementPosition(_ context.Context, input string) (string, error) {
	pos := 0
	err := floors(input, func(i, f int) bool {
		if f == -1 {
			pos = i + 1
			return false
		}
		return true
	})
	if err != nil {
		return "", err
	}
	if pos == 0 {
		return "", errors.NoSolution("santa never enters the basement")
	}
	return puzzle.Int(pos), nil
}
