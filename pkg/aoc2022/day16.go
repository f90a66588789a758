package aoc2022

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/graph"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

const startValve = "AA"

// maxWorkingValves bounds the opened-set table in bestPerSet, which has
// one entry per subset of valves with a positive flow rate.
const maxWorkingValves = 20

var valveRe = regexp.MustCompile(`^Valve (\w+) has flow rate=(\d+); tunnels? leads? to valves? (.+)$`)

type volcano struct {
	names   graph.Registry
	rate    []int
	tunnels [][]int
}

func parseVolcano(input string) (*volcano, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return nil, err
	}
	v := &volcano{}
	type row struct {
		id, rate int
		to       []string
	}
	rows := make([]row, len(lines))
	working := 0
	for i, l := range lines {
		m := valveRe.FindStringSubmatch(strings.TrimSpace(l))
		if m == nil {
			return nil, errors.Input("line %d: unrecognised valve %q", i+1, l)
		}
		rate, err := parse.Int(m[2])
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "line %d", i+1)
		}
		if rate > 0 {
			working++
		}
		rows[i] = row{v.names.ID(m[1]), rate, strings.Split(m[3], ", ")}
	}
	if working > maxWorkingValves {
		return nil, errors.Input("%d valves with a flow rate, at most %d supported", working, maxWorkingValves)
	}
	v.rate = make([]int, v.names.Len())
	v.tunnels = make([][]int, v.names.Len())
	for _, r := range rows {
		v.rate[r.id] = r.rate
		for _, to := range r.to {
			id, ok := v.names.Lookup(to)
			if !ok {
				return nil, errors.Input("tunnel to undescribed valve %s", to)
			}
			v.tunnels[r.id] = append(v.tunnels[r.id], id)
		}
	}
	if _, ok := v.names.Lookup(startValve); !ok {
		return nil, errors.Input("no valve %s", startValve)
	}
	return v, nil
}

// network is the volcano reduced to the start valve plus every valve with
// a positive flow rate, with travel times between them.
type network struct {
	rate  []int
	dist  [][]int
	start int
}

// compress keeps travel times up to minutes; valves farther away than that
// can never be opened in time and count as unreachable.
func (v *volcano) compress(minutes int) *network {
	start, _ := v.names.Lookup(startValve)
	var useful []int
	for id, r := range v.rate {
		if r > 0 {
			useful = append(useful, id)
		}
	}
	nodes := append(useful, start)
	n := &network{rate: make([]int, len(nodes)), dist: make([][]int, len(nodes)), start: len(useful)}
	for i, from := range nodes {
		n.rate[i] = v.rate[from]
		reach := graph.BFS(from, func(id int) []int { return v.tunnels[id] }, graph.WithMaxDistance(minutes))
		n.dist[i] = make([]int, len(nodes))
		for j, to := range nodes {
			d, ok := reach[to]
			if !ok {
				d = graph.Unreachable
			}
			n.dist[i][j] = d
		}
	}
	return n
}

// bestPerSet explores every order of opening valves within the time limit
// and returns, for each set of opened valves (as a bitmask over the useful
// valves), the most pressure released by opening exactly that set.
func (n *network) bestPerSet(ctx context.Context, minutes int) ([]int, error) {
	useful := len(n.rate) - 1
	best := make([]int, 1<<useful)
	steps := 0
	var walk func(at, left, opened, released int) error
	walk = func(at, left, opened, released int) error {
		best[opened] = max(best[opened], released)
		if steps++; steps&0xffff == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		for next := range useful {
			if opened&(1<<next) != 0 || n.dist[at][next] == graph.Unreachable {
				continue
			}
			remaining := left - n.dist[at][next] - 1
			if remaining <= 0 {
				continue
			}
			if err := walk(next, remaining, opened|1<<next, released+remaining*n.rate[next]); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(n.start, minutes, 0, 0); err != nil {
		return nil, err
	}
	return best, nil
}

func maxPressure(ctx context.Context, input string) (string, error) {
	v, err := parseVolcano(input)
	if err != nil {
		return "", err
	}
	best, err := v.compress(30).bestPerSet(ctx, 30)
	if err != nil {
		return "", err
	}
	top := 0
	for _, b := range best {
		top = max(top, b)
	}
	return puzzle.Int(top), nil
}

// maxPressureWithElephant splits the valves between two workers with 26
// minutes each. The best release of any subset of a set is propagated up
// first so that every set can be paired with its complement directly.
func maxPressureWithElephant(ctx context.Context, input string) (string, error) {
	v, err := parseVolcano(input)
	if err != nil {
		return "", err
	}
	best, err := v.compress(26).bestPerSet(ctx, 26)
	if err != nil {
		return "", err
	}
	within := append([]int(nil), best...)
	for bit := 1; bit < len(within); bit <<= 1 {
		for set := range within {
			if set&bit != 0 {
				within[set] = max(within[set], within[set^bit])
			}
		}
	}
	full := len(best) - 1
	top := 0
	for set, b := range best {
		top = max(top, b+within[full^set])
	}
	return puzzle.Int(top), nil
}

func valveGraph(input string) (*graph.Graph, error) {
	v, err := parseVolcano(input)
	if err != nil {
		return nil, err
	}
	g := &graph.Graph{Name: "valves"}
	names := v.names.Names()
	for id, name := range names {
		g.AddNode(graph.Node{
			ID:       name,
			Label:    fmt.Sprintf("%s\nrate %d", name, v.rate[id]),
			Emphasis: v.rate[id] > 0,
		})
	}
	for from, tos := range v.tunnels {
		for _, to := range tos {
			if names[from] < names[to] {
				g.AddEdge(graph.Edge{From: names[from], To: names[to]})
			}
		}
	}
	return g, nil
}
