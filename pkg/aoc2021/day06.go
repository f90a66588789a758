package aoc2021

import (
	"context"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

// school counts lanternfish by timer value.
type school [9]int

func parseSchool(input string) (school, error) {
	var s school
	timers, err := parse.IntList(strings.TrimSpace(input), ",")
	if err != nil {
		return s, err
	}
	if len(timers) == 0 {
		return s, errors.Input("no fish")
	}
	for _, t := range timers {
		if t < 0 || t > 8 {
			return s, errors.Input("timer %d out of range", t)
		}
		s[t]++
	}
	return s, nil
}

func (s school) after(days int) int {
	for range days {
		spawning := s[0]
		copy(s[:], s[1:])
		s[6] += spawning
		s[8] = spawning
	}
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

func fish80(_ context.Context, input string) (string, error) {
	s, err := parseSchool(input)
	if err != nil {
		return "", err
	}
	return puzzle.Int(s.after(80)), nil
}

func fish256(_ context.Context, input string) (string, error) {
	s, err := parseSchool(input)
	if err != nil {
		return "", err
	}
	return puzzle.Int(s.after(256)), nil
}
