package aoc2015

import (
	"context"
	"math"
	"strconv"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/graph"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

type distances struct {
	cities graph.Registry
	d      map[[2]int]int
}

// parseDistances reads "London to Dublin = 464" lines.
func parseDistances(input string) (*distances, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return nil, err
	}
	ds := &distances{d: make(map[[2]int]int)}
	for i, l := range lines {
		route, dist, err := parse.Cut(l, " = ")
		if err != nil {
			return nil, err
		}
		from, to, err := parse.Cut(route, " to ")
		if err != nil {
			return nil, err
		}
		n, err := parse.Int(dist)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "line %d", i+1)
		}
		a, b := ds.cities.ID(from), ds.cities.ID(to)
		ds.d[[2]int{a, b}] = n
		ds.d[[2]int{b, a}] = n
	}
	return ds, nil
}

// routeBounds returns the shortest and longest route visiting every city
// exactly once.
func (ds *distances) routeBounds() (shortest, longest int, err error) {
	n := ds.cities.Len()
	shortest, longest = math.MaxInt, math.MinInt
	full := 1<<n - 1

	var walk func(cur, visited, total int)
	walk = func(cur, visited, total int) {
		if visited == full {
			shortest = min(shortest, total)
			longest = max(longest, total)
			return
		}
		for next := range n {
			if visited&(1<<next) != 0 {
				continue
			}
			if d, ok := ds.d[[2]int{cur, next}]; ok {
				walk(next, visited|1<<next, total+d)
			}
		}
	}
	for start := range n {
		walk(start, 1<<start, 0)
	}
	if shortest == math.MaxInt {
		return 0, 0, errors.NoSolution("no route visits every city")
	}
	return shortest, longest, nil
}

func shortestRoute(_ context.Context, input string) (string, error) {
	ds, err := parseDistances(input)
	if err != nil {
		return "", err
	}
	s, _, err := ds.routeBounds()
	if err != nil {
		return "", err
	}
	return puzzle.Int(s), nil
}

func longestRoute(_ context.Context, input string) (string, error) {
	ds, err := parseDistances(input)
	if err != nil {
		return "", err
	}
	_, l, err := ds.routeBounds()
	if err != nil {
		return "", err
	}
	return puzzle.Int(l), nil
}

func routeGraph(input string) (*graph.Graph, error) {
	ds, err := parseDistances(input)
	if err != nil {
		return nil, err
	}
	g := &graph.Graph{Name: "routes"}
	for _, c := range ds.cities.Names() {
		g.AddNode(graph.Node{ID: c})
	}
	for k, d := range ds.d {
		if k[0] < k[1] {
			g.AddEdge(graph.Edge{From: ds.cities.Name(k[0]), To: ds.cities.Name(k[1]), Label: strconv.Itoa(d)})
		}
	}
	return g, nil
}
