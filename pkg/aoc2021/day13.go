package aoc2021

import (
	"context"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/geom"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

type fold struct {
	alongX bool
	at     int
}

func parseManual(input string) (map[geom.Pt]bool, []fold, error) {
	blocks := parse.Blocks(input)
	if len(blocks) != 2 {
		return nil, nil, errors.Input("want dots, a blank line and fold instructions")
	}
	dots := make(map[geom.Pt]bool, len(blocks[0]))
	for _, l := range blocks[0] {
		n, err := parse.IntsN(l, 2)
		if err != nil {
			return nil, nil, err
		}
		dots[geom.P(n[0], n[1])] = true
	}
	folds := make([]fold, len(blocks[1]))
	for i, l := range blocks[1] {
		axis, at, err := parse.Cut(strings.TrimPrefix(strings.TrimSpace(l), "fold along "), "=")
		if err != nil {
			return nil, nil, err
		}
		if axis != "x" && axis != "y" {
			return nil, nil, errors.Input("fold %d: unknown axis %q", i+1, axis)
		}
		n, err := parse.Int(at)
		if err != nil {
			return nil, nil, err
		}
		folds[i] = fold{axis == "x", n}
	}
	return dots, folds, nil
}

func (f fold) apply(dots map[geom.Pt]bool) map[geom.Pt]bool {
	out := make(map[geom.Pt]bool, len(dots))
	for p := range dots {
		switch {
		case f.alongX && p.X > f.at:
			p.X = 2*f.at - p.X
		case !f.alongX && p.Y > f.at:
			p.Y = 2*f.at - p.Y
		}
		out[p] = true
	}
	return out
}

// renderDots draws the dots as block characters. The result starts with
// a newline so it prints below any prefix.
func renderDots(dots map[geom.Pt]bool) string {
	w, h := 0, 0
	for p := range dots {
		w, h = max(w, p.X+1), max(h, p.Y+1)
	}
	var b strings.Builder
	for y := range h {
		b.WriteByte('\n')
		var row strings.Builder
		for x := range w {
			if dots[geom.P(x, y)] {
				row.WriteRune('█')
			} else {
				row.WriteByte(' ')
			}
		}
		b.WriteString(strings.TrimRight(row.String(), " "))
	}
	return b.String()
}

func firstFold(_ context.Context, input string) (string, error) {
	dots, folds, err := parseManual(input)
	if err != nil {
		return "", err
	}
	return puzzle.Int(len(folds[0].apply(dots))), nil
}

func foldedCode(_ context.Context, input string) (string, error) {
	dots, folds, err := parseManual(input)
	if err != nil {
		return "", err
	}
	for _, f := range folds {
		dots = f.apply(dots)
	}
	return renderDots(dots), nil
}
