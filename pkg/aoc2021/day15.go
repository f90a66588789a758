package aoc2021

import (
	"context"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/geom"
	"github.com/matzehuels/aoc/pkg/graph"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

// cavern is a risk map repeated tiles times in each direction, with risk
// rising by one per tile step and wrapping from 9 back to 1.
type cavern struct {
	risk  [][]int
	tiles int
}

func (c cavern) size() (w, h int) {
	return len(c.risk[0]) * c.tiles, len(c.risk) * c.tiles
}

func (c cavern) at(p geom.Pt) int {
	h, w := len(c.risk), len(c.risk[0])
	base := c.risk[p.Y%h][p.X%w]
	return (base+p.Y/h+p.X/w-1)%9 + 1
}

func (c cavern) lowestRisk(ctx context.Context) (int, error) {
	w, h := c.size()
	goal := geom.P(w-1, h-1)
	cost, ok := graph.Dijkstra(
		[]geom.Pt{{}},
		func(p geom.Pt, visit func(geom.Pt, int)) {
			for _, n := range p.Neighbours4() {
				if n.In(w, h) {
					visit(n, c.at(n))
				}
			}
		},
		func(p geom.Pt) bool { return p == goal },
		graph.WithContext(ctx),
	)
	if !ok {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		return 0, errors.NoSolution("bottom right is unreachable")
	}
	return cost, nil
}

func solveCavern(ctx context.Context, input string, tiles int) (string, error) {
	risk, err := parse.Digits(input)
	if err != nil {
		return "", err
	}
	cost, err := cavern{risk, tiles}.lowestRisk(ctx)
	if err != nil {
		return "", err
	}
	return puzzle.Int(cost), nil
}

func lowestRisk(ctx context.Context, input string) (string, error) {
	return solveCavern(ctx, input, 1)
}

func lowestRiskTiled(ctx context.Context, input string) (string, error) {
	return solveCavern(ctx, input, 5)
}
