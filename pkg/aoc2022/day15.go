package aoc2022

import (
	"context"
	"slices"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/geom"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

const (
	scanRow     = 2_000_000
	searchLimit = 4_000_000
)

type sensor struct {
	pos, beacon geom.Pt
	radius      int
}

func (s sensor) covers(p geom.Pt) bool { return s.pos.Manhattan(p) <= s.radius }

func parseSensors(input string) ([]sensor, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return nil, err
	}
	out := make([]sensor, len(lines))
	for i, l := range lines {
		n, err := parse.IntsN(l, 4)
		if err != nil {
			return nil, err
		}
		s := sensor{pos: geom.P(n[0], n[1]), beacon: geom.P(n[2], n[3])}
		s.radius = s.pos.Manhattan(s.beacon)
		out[i] = s
	}
	return out, nil
}

type span struct{ lo, hi int }

// rowCoverage returns the merged x ranges covered by sensors on row y.
func rowCoverage(sensors []sensor, y int) []span {
	var spans []span
	for _, s := range sensors {
		w := s.radius - geom.Abs(s.pos.Y-y)
		if w >= 0 {
			spans = append(spans, span{s.pos.X - w, s.pos.X + w})
		}
	}
	slices.SortFunc(spans, func(a, b span) int { return a.lo - b.lo })
	var merged []span
	for _, sp := range spans {
		if n := len(merged); n > 0 && sp.lo <= merged[n-1].hi+1 {
			merged[n-1].hi = max(merged[n-1].hi, sp.hi)
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

// excludedInRow counts the positions on row y that cannot hold a beacon.
func excludedInRow(sensors []sensor, y int) int {
	n := 0
	for _, sp := range rowCoverage(sensors, y) {
		n += sp.hi - sp.lo + 1
	}
	beacons := make(map[geom.Pt]bool)
	for _, s := range sensors {
		if s.beacon.Y == y && !beacons[s.beacon] {
			beacons[s.beacon] = true
			n--
		}
	}
	return n
}

// findBeacon locates the only uncovered position in [0,limit]². The
// beacon sits just outside at least two sensor ranges, so the crossings
// of their boundary diagonals are tried first; a row scan covers the
// remaining cases such as a beacon in a corner.
func findBeacon(ctx context.Context, sensors []sensor, limit int) (geom.Pt, error) {
	free := func(p geom.Pt) bool {
		if p.X < 0 || p.Y < 0 || p.X > limit || p.Y > limit {
			return false
		}
		for _, s := range sensors {
			if s.covers(p) {
				return false
			}
		}
		return true
	}

	// Boundary diagonals are y = x + a and y = -x + b.
	var rising, falling []int
	for _, s := range sensors {
		r := s.radius + 1
		rising = append(rising, s.pos.Y-s.pos.X+r, s.pos.Y-s.pos.X-r)
		falling = append(falling, s.pos.Y+s.pos.X+r, s.pos.Y+s.pos.X-r)
	}
	for _, a := range rising {
		for _, b := range falling {
			if (b-a)%2 != 0 {
				continue
			}
			if p := geom.P((b-a)/2, (a+b)/2); free(p) {
				return p, nil
			}
		}
	}

	for y := 0; y <= limit; y++ {
		if y%0x10000 == 0 {
			if err := ctx.Err(); err != nil {
				return geom.Pt{}, err
			}
		}
		x := 0
		for _, sp := range rowCoverage(sensors, y) {
			if sp.lo > x {
				break
			}
			x = max(x, sp.hi+1)
		}
		if x <= limit {
			return geom.P(x, y), nil
		}
	}
	return geom.Pt{}, errors.NoSolution("every position is covered")
}

func tuningFrequency(ctx context.Context, input string) (string, error) {
	sensors, err := parseSensors(input)
	if err != nil {
		return "", err
	}
	p, err := findBeacon(ctx, sensors, searchLimit)
	if err != nil {
		return "", err
	}
	return puzzle.Int(p.X*4_000_000 + p.Y), nil
}

func excludedPositions(_ context.Context, input string) (string, error) {
	sensors, err := parseSensors(input)
	if err != nil {
		return "", err
	}
	return puzzle.Int(excludedInRow(sensors, scanRow)), nil
}
