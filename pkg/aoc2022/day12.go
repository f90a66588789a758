package aoc2022

import (
	"context"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/geom"
	"github.com/matzehuels/aoc/pkg/graph"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

type hill struct {
	grid       parse.Grid
	start, end geom.Pt
}

func parseHill(input string) (*hill, error) {
	g, err := parse.ParseGrid(input)
	if err != nil {
		return nil, err
	}
	h := &hill{grid: g}
	sr, sc, ok := g.Find('S')
	if !ok {
		return nil, errors.Input("no start marker S")
	}
	er, ec, ok := g.Find('E')
	if !ok {
		return nil, errors.Input("no goal marker E")
	}
	h.start, h.end = geom.P(sc, sr), geom.P(ec, er)
	return h, nil
}

func (h *hill) elevation(p geom.Pt) byte {
	switch c := h.grid[p.Y][p.X]; c {
	case 'S':
		return 'a'
	case 'E':
		return 'z'
	default:
		return c
	}
}

// descents walks the hill backwards from the summit: a step from p to q
// is allowed when climbing from q to p would be.
func (h *hill) descents(p geom.Pt) []geom.Pt {
	var out []geom.Pt
	for _, q := range p.Neighbours4() {
		if h.grid.In(q.Y, q.X) && int(h.elevation(p))-int(h.elevation(q)) <= 1 {
			out = append(out, q)
		}
	}
	return out
}

// stepsFrom returns the fewest steps to the summit from any square
// satisfying from.
func (h *hill) stepsFrom(from func(geom.Pt) bool) (string, error) {
	d, ok := graph.ShortestPath(h.end, h.descents, from)
	if !ok {
		return "", errors.NoSolution("the summit cannot be reached")
	}
	return puzzle.Int(d), nil
}

func fewestStepsFromStart(_ context.Context, input string) (string, error) {
	h, err := parseHill(input)
	if err != nil {
		return "", err
	}
	return h.stepsFrom(func(p geom.Pt) bool { return p == h.start })
}

func fewestStepsFromAnyA(_ context.Context, input string) (string, error) {
	h, err := parseHill(input)
	if err != nil {
		return "", err
	}
	return h.stepsFrom(func(p geom.Pt) bool { return h.elevation(p) == 'a' })
}
