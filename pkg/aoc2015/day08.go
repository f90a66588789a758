package aoc2015

import (
	"context"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

// memoryLen returns the number of characters a quoted string literal
// decodes to.
func memoryLen(lit string) (int, error) {
	if len(lit) < 2 || lit[0] != '"' || lit[len(lit)-1] != '"' {
		return 0, errors.Input("not a string literal: %s", lit)
	}
	body := lit[1 : len(lit)-1]
	n := 0
	for i := 0; i < len(body); n++ {
		if body[i] != '\\' {
			i++
			continue
		}
		if i+1 >= len(body) {
			return 0, errors.Input("dangling escape in %s", lit)
		}
		switch body[i+1] {
		case '\\', '"':
			i += 2
		case 'x':
			if i+3 >= len(body) {
				return 0, errors.Input("short hex escape in %s", lit)
			}
			i += 4
		default:
			return 0, errors.Input("unknown escape \\%c in %s", body[i+1], lit)
		}
	}
	return n, nil
}

// encodedLen returns the length of lit after quoting it again.
func encodedLen(lit string) int {
	return len(lit) + 2 + strings.Count(lit, `"`) + strings.Count(lit, `\`)
}

func decodedOverhead(_ context.Context, input string) (string, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return "", err
	}
	total := 0
	for _, l := range lines {
		l = strings.TrimSpace(l)
		m, err := memoryLen(l)
		if err != nil {
			return "", err
		}
		total += len(l) - m
	}
	return puzzle.Int(total), nil
}

func encodedOverhead(_ context.Context, input string) (string, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return "", err
	}
	total := 0
	for _, l := range lines {
		l = strings.TrimSpace(l)
		total += encodedLen(l) - len(l)
	}
	return puzzle.Int(total), nil
}
