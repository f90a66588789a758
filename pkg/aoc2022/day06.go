package aoc2022

import (
	"context"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

// marker returns how many characters are read before the first window of
// n distinct characters has been seen.
func marker(stream string, n int) (int, error) {
	var counts [256]int
	distinct := 0
	for i := 0; i < len(stream); i++ {
		if counts[stream[i]]++; counts[stream[i]] == 1 {
			distinct++
		}
		if i >= n {
			if counts[stream[i-n]]--; counts[stream[i-n]] == 0 {
				distinct--
			}
		}
		if distinct == n {
			return i + 1, nil
		}
	}
	return 0, errors.NoSolution("no run of %d distinct characters", n)
}

func findMarker(input string, n int) (string, error) {
	stream := strings.TrimSpace(input)
	if stream == "" {
		return "", errors.Input("empty datastream")
	}
	i, err := marker(stream, n)
	if err != nil {
		return "", err
	}
	return puzzle.Int(i), nil
}

func packetMarker(_ context.Context, input string) (string, error) {
	return findMarker(input, 4)
}

func messageMarker(_ context.Context, input string) (string, error) {
	return findMarker(input, 14)
}
