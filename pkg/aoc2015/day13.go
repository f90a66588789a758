package aoc2015

import (
	"context"
	"math"
	"regexp"
	"strconv"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/graph"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

var seatingRe = regexp.MustCompile(`^(\w+) would (gain|lose) (\d+) happiness units? by sitting next to (\w+)\.$`)

type seating struct {
	guests graph.Registry
	// delta[a][b] is how much a likes sitting next to b.
	delta [][]int
}

func parseSeating(input string) (*seating, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return nil, err
	}
	type rule struct{ a, b, n int }
	var s seating
	rules := make([]rule, 0, len(lines))
	for i, l := range lines {
		m := seatingRe.FindStringSubmatch(l)
		if m == nil {
			return nil, errors.Input("line %d: unrecognised rule %q", i+1, l)
		}
		n, err := parse.Int(m[3])
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "line %d", i+1)
		}
		if m[2] == "lose" {
			n = -n
		}
		rules = append(rules, rule{s.guests.ID(m[1]), s.guests.ID(m[4]), n})
	}
	s.delta = make([][]int, s.guests.Len())
	for i := range s.delta {
		s.delta[i] = make([]int, s.guests.Len())
	}
	for _, r := range rules {
		s.delta[r.a][r.b] = r.n
	}
	return &s, nil
}

// withIndifferentGuest adds a guest with no feelings either way.
func (s *seating) withIndifferentGuest() {
	n := len(s.delta)
	for i := range s.delta {
		s.delta[i] = append(s.delta[i], 0)
	}
	s.delta = append(s.delta, make([]int, n+1))
}

func (s *seating) pair(a, b int) int { return s.delta[a][b] + s.delta[b][a] }

// best returns the happiest circular arrangement. Guest 0 is pinned to
// the first seat since rotations score the same.
func (s *seating) best() int {
	n := len(s.delta)
	if n < 2 {
		return 0
	}
	full := 1<<n - 1
	best := math.MinInt
	var seat func(last, used, total int)
	seat = func(last, used, total int) {
		if used == full {
			best = max(best, total+s.pair(last, 0))
			return
		}
		for next := 1; next < n; next++ {
			if used&(1<<next) == 0 {
				seat(next, used|1<<next, total+s.pair(last, next))
			}
		}
	}
	seat(0, 1, 0)
	return best
}

func bestSeating(_ context.Context, input string) (string, error) {
	s, err := parseSeating(input)
	if err != nil {
		return "", err
	}
	return puzzle.Int(s.best()), nil
}

func bestSeatingWithMe(_ context.Context, input string) (string, error) {
	s, err := parseSeating(input)
	if err != nil {
		return "", err
	}
	s.withIndifferentGuest()
	return puzzle.Int(s.best()), nil
}

func seatingGraph(input string) (*graph.Graph, error) {
	s, err := parseSeating(input)
	if err != nil {
		return nil, err
	}
	g := &graph.Graph{Name: "seating"}
	names := s.guests.Names()
	for _, name := range names {
		g.AddNode(graph.Node{ID: name})
	}
	for a := range names {
		for b := a + 1; b < len(names); b++ {
			g.AddEdge(graph.Edge{From: names[a], To: names[b], Label: strconv.Itoa(s.pair(a, b))})
		}
	}
	return g, nil
}
