package aoc2021

import (
	"context"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/geom"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

type target struct {
	x1, x2, y1, y2 int
}

func parseTarget(input string) (target, error) {
	n, err := parse.IntsN(input, 4)
	if err != nil {
		return target{}, err
	}
	t := target{min(n[0], n[1]), max(n[0], n[1]), min(n[2], n[3]), max(n[2], n[3])}
	if t.x1 <= 0 {
		return t, errors.Input("target must lie to the right of the launcher")
	}
	return t, nil
}

// hits reports whether a probe launched with velocity v ever lands in t.
func (t target) hits(v geom.Pt) bool {
	var p geom.Pt
	for p.X <= t.x2 && (p.Y >= t.y1 || v.Y > 0) {
		if p.X >= t.x1 && p.Y <= t.y2 && p.Y >= t.y1 {
			return true
		}
		p = p.Add(v)
		v.X -= geom.Sign(v.X)
		v.Y--
	}
	return false
}

// shots returns every launch velocity that hits t and the highest apex
// among them.
func (t target) shots() (count, apex int) {
	reach := max(geom.Abs(t.y1), geom.Abs(t.y2))
	apex = -1
	for vx := 1; vx <= t.x2; vx++ {
		for vy := min(t.y1, 0); vy <= reach; vy++ {
			if t.hits(geom.P(vx, vy)) {
				count++
				apex = max(apex, geom.Triangular(max(vy, 0)))
			}
		}
	}
	return count, apex
}

func highestShot(_ context.Context, input string) (string, error) {
	t, err := parseTarget(input)
	if err != nil {
		return "", err
	}
	count, apex := t.shots()
	if count == 0 {
		return "", errors.NoSolution("no velocity reaches the target")
	}
	return puzzle.Int(apex), nil
}

func shotCount(_ context.Context, input string) (string, error) {
	t, err := parseTarget(input)
	if err != nil {
		return "", err
	}
	count, _ := t.shots()
	return puzzle.Int(count), nil
}
