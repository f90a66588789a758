package aoc2015

import (
	"context"
	"regexp"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

const gridSide = 1000

type lightAction int

const (
	turnOn lightAction = iota
	turnOff
	toggle
)

type lightCmd struct {
	action         lightAction
	x0, y0, x1, y1 int
}

var lightRe = regexp.MustCompile(`^(turn on|turn off|toggle) (\d+),(\d+) through (\d+),(\d+)$`)

func parseLightCmds(input string) ([]lightCmd, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return nil, err
	}
	cmds := make([]lightCmd, len(lines))
	for i, l := range lines {
		m := lightRe.FindStringSubmatch(l)
		if m == nil {
			return nil, errors.Input("line %d: unrecognised instruction %q", i+1, l)
		}
		c := lightCmd{action: map[string]lightAction{"turn on": turnOn, "turn off": turnOff, "toggle": toggle}[m[1]]}
		for j, dst := range []*int{&c.x0, &c.y0, &c.x1, &c.y1} {
			if *dst, err = parse.Int(m[j+2]); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "line %d", i+1)
			}
		}
		if c.x1 < c.x0 || c.y1 < c.y0 || c.x1 >= gridSide || c.y1 >= gridSide {
			return nil, errors.Input("line %d: rectangle out of range", i+1)
		}
		cmds[i] = c
	}
	return cmds, nil
}

// applyLights runs every command through update and sums the final grid.
func applyLights(input string, update func(lightAction, int) int) (string, error) {
	cmds, err := parseLightCmds(input)
	if err != nil {
		return "", err
	}
	grid := make([]int, gridSide*gridSide)
	for _, c := range cmds {
		for y := c.y0; y <= c.y1; y++ {
			row := grid[y*gridSide : (y+1)*gridSide]
			for x := c.x0; x <= c.x1; x++ {
				row[x] = update(c.action, row[x])
			}
		}
	}
	total := 0
	for _, v := range grid {
		total += v
	}
	return puzzle.Int(total), nil
}

func lightsLit(_ context.Context, input string) (string, error) {
	return applyLights(input, func(a lightAction, v int) int {
		switch a {
		case turnOn:
			return 1
		case turnOff:
			return 0
		}
		return 1 - v
	})
}

func totalBrightness(_ context.Context, input string) (string, error) {
	return applyLights(input, func(a lightAction, v int) int {
		switch a {
		case turnOn:
			return v + 1
		case turnOff:
			return max(v-1, 0)
		}
		return v + 2
	})
}
