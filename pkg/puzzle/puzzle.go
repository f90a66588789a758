// Package puzzle defines the solver contract shared by every year package
// and the [Registry] and [Runner] the CLI uses to find and execute them.
//
// A solver is a plain function from the raw input text to the answer text:
//
//	func part1(ctx context.Context, input string) (string, error)
//
// Each year package exposes its days as a []Day; [NewRegistry] indexes
// them by year and day.
package puzzle

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/graph"
)

// Solver computes one part of a day from its input.
type Solver func(ctx context.Context, input string) (string, error)

// GraphFunc builds a node-link view of a day's input for visualisation.
type GraphFunc func(input string) (*graph.Graph, error)

// Day groups the solvers of one puzzle day.
type Day struct {
	Year  int
	Day   int
	Title string
	Part1 Solver
	Part2 Solver
	// Graph is set for days whose input is naturally a graph.
	Graph GraphFunc
}

// Part returns the solver for part 1 or 2, or nil when unsolved.
func (d Day) Part(p int) Solver {
	switch p {
	case 1:
		return d.Part1
	case 2:
		return d.Part2
	}
	return nil
}

// Key selects one part of one day.
type Key struct {
	Year, Day, Part int
}

// String formats the key as "2021/16/2".
func (k Key) String() string {
	return fmt.Sprintf("%d/%d/%d", k.Year, k.Day, k.Part)
}

// ParseKey parses "2021/16/2" (or space separated) into a Key.
func ParseKey(s string) (Key, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == '/' || r == ' ' })
	if len(fields) != 3 {
		return Key{}, errors.New(errors.ErrCodeInvalidArgument, "want year/day/part, got %q", s)
	}
	return NewKey(fields[0], fields[1], fields[2])
}

// NewKey validates the three selector arguments.
func NewKey(year, day, part string) (Key, error) {
	y, err := errors.ParseYear(year)
	if err != nil {
		return Key{}, err
	}
	d, err := errors.ParseDay(day)
	if err != nil {
		return Key{}, err
	}
	p, err := errors.ParsePart(part)
	if err != nil {
		return Key{}, err
	}
	return Key{Year: y, Day: d, Part: p}, nil
}

// Int formats an integer answer.
func Int(n int) string { return strconv.Itoa(n) }
