package aoc2015

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/graph"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

// gate drives one wire. An empty op is a plain assignment.
type gate struct {
	op   string
	args []string
}

type circuit map[string]gate

func parseCircuit(input string) (circuit, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return nil, err
	}
	c := make(circuit, len(lines))
	for i, l := range lines {
		expr, out, err := parse.Cut(l, " -> ")
		if err != nil {
			return nil, err
		}
		f := strings.Fields(expr)
		var g gate
		switch {
		case len(f) == 1:
			g = gate{args: f}
		case len(f) == 2 && f[0] == "NOT":
			g = gate{op: "NOT", args: f[1:]}
		case len(f) == 3 && (f[1] == "AND" || f[1] == "OR" || f[1] == "LSHIFT" || f[1] == "RSHIFT"):
			g = gate{op: f[1], args: []string{f[0], f[2]}}
		default:
			return nil, errors.Input("line %d: bad gate %q", i+1, expr)
		}
		c[strings.TrimSpace(out)] = g
	}
	return c, nil
}

type evaluator struct {
	c      circuit
	memo   map[string]uint16
	active map[string]bool
}

func newEvaluator(c circuit) *evaluator {
	return &evaluator{c: c, memo: make(map[string]uint16), active: make(map[string]bool)}
}

func (e *evaluator) operand(s string) (uint16, error) {
	if n, err := strconv.ParseUint(s, 10, 16); err == nil {
		return uint16(n), nil
	}
	return e.wire(s)
}

func (e *evaluator) wire(name string) (uint16, error) {
	if v, ok := e.memo[name]; ok {
		return v, nil
	}
	g, ok := e.c[name]
	if !ok {
		return 0, errors.Input("wire %q has no driver", name)
	}
	if e.active[name] {
		return 0, errors.Input("wire %q feeds back into itself", name)
	}
	e.active[name] = true
	defer delete(e.active, name)

	args := make([]uint16, len(g.args))
	for i, a := range g.args {
		v, err := e.operand(a)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}

	var v uint16
	switch g.op {
	case "":
		v = args[0]
	case "NOT":
		v = ^args[0]
	case "AND":
		v = args[0] & args[1]
	case "OR":
		v = args[0] | args[1]
	case "LSHIFT":
		v = args[0] << args[1]
	case "RSHIFT":
		v = args[0] >> args[1]
	}
	e.memo[name] = v
	return v, nil
}

func wireA(_ context.Context, input string) (string, error) {
	c, err := parseCircuit(input)
	if err != nil {
		return "", err
	}
	v, err := newEvaluator(c).wire("a")
	if err != nil {
		return "", err
	}
	return puzzle.Int(int(v)), nil
}

func wireAOverridden(_ context.Context, input string) (string, error) {
	c, err := parseCircuit(input)
	if err != nil {
		return "", err
	}
	a, err := newEvaluator(c).wire("a")
	if err != nil {
		return "", err
	}
	c["b"] = gate{args: []string{strconv.Itoa(int(a))}}
	v, err := newEvaluator(c).wire("a")
	if err != nil {
		return "", err
	}
	return puzzle.Int(int(v)), nil
}

func circuitGraph(input string) (*graph.Graph, error) {
	c, err := parseCircuit(input)
	if err != nil {
		return nil, err
	}
	g := &graph.Graph{Name: "circuit", Directed: true}
	for out, gt := range c {
		label := out
		if gt.op != "" {
			label = fmt.Sprintf("%s\n%s", out, gt.op)
		}
		g.AddNode(graph.Node{ID: out, Label: label, Emphasis: out == "a"})
		for _, a := range gt.args {
			if _, err := strconv.Atoi(a); err == nil {
				continue
			}
			g.AddEdge(graph.Edge{From: a, To: out})
		}
	}
	return g, nil
}
