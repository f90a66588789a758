package aoc2022

import (
	"context"
	"slices"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/parse"
)

type craneMove struct{ count, from, to int }

// parseCargo reads the drawing into stacks, bottom crate first, and the
// rearrangement procedure.
func parseCargo(input string) ([][]byte, []craneMove, error) {
	blocks := parse.Blocks(input)
	if len(blocks) != 2 || len(blocks[0]) < 2 {
		return nil, nil, errors.Input("want a drawing, a blank line and moves")
	}
	drawing := blocks[0]
	labels := strings.Fields(drawing[len(drawing)-1])
	stacks := make([][]byte, len(labels))
	for r := len(drawing) - 2; r >= 0; r-- {
		row := drawing[r]
		for i := range stacks {
			col := 1 + 4*i
			if col < len(row) && row[col] != ' ' {
				stacks[i] = append(stacks[i], row[col])
			}
		}
	}

	moves := make([]craneMove, len(blocks[1]))
	for i, l := range blocks[1] {
		n, err := parse.IntsN(l, 3)
		if err != nil {
			return nil, nil, err
		}
		m := craneMove{n[0], n[1] - 1, n[2] - 1}
		if m.from < 0 || m.from >= len(stacks) || m.to < 0 || m.to >= len(stacks) {
			return nil, nil, errors.Input("move %d: no such stack", i+1)
		}
		moves[i] = m
	}
	return stacks, moves, nil
}

// rearrange runs the procedure. Unless keepOrder is set crates are moved
// one at a time, which reverses each lifted group.
func rearrange(input string, keepOrder bool) (string, error) {
	stacks, moves, err := parseCargo(input)
	if err != nil {
		return "", err
	}
	for i, m := range moves {
		src := stacks[m.from]
		if m.count > len(src) {
			return "", errors.Input("move %d: stack %d holds only %d crates", i+1, m.from+1, len(src))
		}
		lifted := slices.Clone(src[len(src)-m.count:])
		if !keepOrder {
			slices.Reverse(lifted)
		}
		stacks[m.from] = src[:len(src)-m.count]
		stacks[m.to] = append(stacks[m.to], lifted...)
	}
	var top strings.Builder
	for _, s := range stacks {
		if len(s) > 0 {
			top.WriteByte(s[len(s)-1])
		}
	}
	return top.String(), nil
}

func crateMover9000(_ context.Context, input string) (string, error) {
	return rearrange(input, false)
}

func crateMover9001(_ context.Context, input string) (string, error) {
	return rearrange(input, true)
}
