package aoc2022

import (
	"context"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

const (
	screenWidth  = 40
	screenHeight = 6
)

// registerTrace runs the program and returns the X register during each
// cycle; trace[i] is the value during cycle i+1.
func registerTrace(input string) ([]int, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return nil, err
	}
	x := 1
	trace := make([]int, 0, 2*len(lines))
	for i, l := range lines {
		f := strings.Fields(l)
		switch {
		case len(f) == 1 && f[0] == "noop":
			trace = append(trace, x)
		case len(f) == 2 && f[0] == "addx":
			v, err := parse.Int(f[1])
			if err != nil {
				return nil, err
			}
			trace = append(trace, x, x)
			x += v
		default:
			return nil, errors.Input("line %d: unknown instruction %q", i+1, l)
		}
	}
	return trace, nil
}

func signalStrength(_ context.Context, input string) (string, error) {
	trace, err := registerTrace(input)
	if err != nil {
		return "", err
	}
	sum := 0
	for cycle := 20; cycle <= len(trace); cycle += 40 {
		sum += cycle * trace[cycle-1]
	}
	return puzzle.Int(sum), nil
}

// crtImage draws the sprite as the beam sweeps the screen. The image
// starts with a newline so it prints below any prefix.
func crtImage(_ context.Context, input string) (string, error) {
	trace, err := registerTrace(input)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for row := range screenHeight {
		b.WriteByte('\n')
		for col := range screenWidth {
			cycle := row*screenWidth + col
			lit := cycle < len(trace) && col >= trace[cycle]-1 && col <= trace[cycle]+1
			if lit {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String(), nil
}
