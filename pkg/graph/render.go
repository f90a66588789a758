package graph

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
)

// Node is a labelled vertex. Emphasised nodes are drawn filled.
type Node struct {
	ID       string
	Label    string
	Emphasis bool
}

// Edge connects two node ids with an optional label.
type Edge struct {
	From, To string
	Label    string
}

// Graph is a node-link description of a puzzle input, used only for
// visualisation.
type Graph struct {
	Name     string
	Directed bool
	Nodes    []Node
	Edges    []Edge
}

// AddNode appends a node and returns g for chaining.
func (g *Graph) AddNode(n Node) *Graph {
	g.Nodes = append(g.Nodes, n)
	return g
}

// AddEdge appends an edge and returns g for chaining.
func (g *Graph) AddEdge(e Edge) *Graph {
	g.Edges = append(g.Edges, e)
	return g
}

// DOT converts g to Graphviz DOT.
func (g *Graph) DOT() string {
	kind, arrow := "graph", "--"
	if g.Directed {
		kind, arrow = "digraph", "->"
	}
	name := g.Name
	if name == "" {
		name = "G"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %q {\n", kind, name)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded\", fontsize=14];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		attrs := []string{fmt.Sprintf("label=%q", n.display())}
		if n.Emphasis {
			attrs = append(attrs, "style=\"rounded,filled\"", "fillcolor=\"#c8e6c9\"")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		if e.Label != "" {
			fmt.Fprintf(&buf, "  %q %s %q [label=%q];\n", e.From, arrow, e.To, e.Label)
		} else {
			fmt.Fprintf(&buf, "  %q %s %q;\n", e.From, arrow, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func (n Node) display() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// RenderSVG renders DOT source to SVG using the embedded Graphviz build.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
