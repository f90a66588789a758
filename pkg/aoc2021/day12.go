package aoc2021

import (
	"context"
	"strings"
	"unicode"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/graph"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

type caveSystem struct {
	names      graph.Registry
	adj        [][]int
	small      []bool
	start, end int
}

func parseCaves(input string) (*caveSystem, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return nil, err
	}
	cs := &caveSystem{}
	var edges [][2]int
	for _, l := range lines {
		a, b, err := parse.Cut(strings.TrimSpace(l), "-")
		if err != nil {
			return nil, err
		}
		edges = append(edges, [2]int{cs.names.ID(a), cs.names.ID(b)})
	}
	var ok bool
	if cs.start, ok = cs.names.Lookup("start"); !ok {
		return nil, errors.Input("no start cave")
	}
	if cs.end, ok = cs.names.Lookup("end"); !ok {
		return nil, errors.Input("no end cave")
	}
	n := cs.names.Len()
	cs.adj = make([][]int, n)
	cs.small = make([]bool, n)
	for i, name := range cs.names.Names() {
		cs.small[i] = unicode.IsLower(rune(name[0]))
	}
	for _, e := range edges {
		a, b := e[0], e[1]
		if !cs.small[a] && !cs.small[b] {
			return nil, errors.Input("two big caves %s and %s are adjacent", cs.names.Name(a), cs.names.Name(b))
		}
		cs.adj[a] = append(cs.adj[a], b)
		cs.adj[b] = append(cs.adj[b], a)
	}
	return cs, nil
}

// paths counts routes from start to end visiting small caves at most
// once, except that with revisit one small cave may be visited twice.
func (cs *caveSystem) paths(revisit bool) int {
	visits := make([]int, len(cs.adj))
	var walk func(cur int, spare bool) int
	walk = func(cur int, spare bool) int {
		if cur == cs.end {
			return 1
		}
		total := 0
		for _, next := range cs.adj[cur] {
			switch {
			case next == cs.start:
			case !cs.small[next] || visits[next] == 0:
				visits[next]++
				total += walk(next, spare)
				visits[next]--
			case spare:
				visits[next]++
				total += walk(next, false)
				visits[next]--
			}
		}
		return total
	}
	visits[cs.start] = 1
	return walk(cs.start, revisit)
}

func cavePaths(_ context.Context, input string) (string, error) {
	cs, err := parseCaves(input)
	if err != nil {
		return "", err
	}
	return puzzle.Int(cs.paths(false)), nil
}

func cavePathsRevisit(_ context.Context, input string) (string, error) {
	cs, err := parseCaves(input)
	if err != nil {
		return "", err
	}
	return puzzle.Int(cs.paths(true)), nil
}

func caveGraph(input string) (*graph.Graph, error) {
	cs, err := parseCaves(input)
	if err != nil {
		return nil, err
	}
	g := &graph.Graph{Name: "caves"}
	for i, name := range cs.names.Names() {
		g.AddNode(graph.Node{ID: name, Emphasis: i == cs.start || i == cs.end})
	}
	for a, ns := range cs.adj {
		for _, b := range ns {
			if a < b {
				g.AddEdge(graph.Edge{From: cs.names.Name(a), To: cs.names.Name(b)})
			}
		}
	}
	return g, nil
}
