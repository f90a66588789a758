// Package graph provides the graph helpers shared by path-finding puzzles
// and the node-link rendering used by the `aoc graph` command.
//
// # Search
//
// [Dijkstra] and [BFS] are generic over the node type, so a solver can
// search positions, (position, state) tuples or dense integer ids without
// first building an adjacency structure. Neighbours are produced by a
// callback:
//
//	cost, ok := graph.Dijkstra([]geom.Pt{start},
//	    func(p geom.Pt, visit func(geom.Pt, int)) {
//	        for _, q := range p.Neighbours4() {
//	            if q.In(w, h) {
//	                visit(q, risk[q.Y][q.X])
//	            }
//	        }
//	    },
//	    func(p geom.Pt) bool { return p == end })
//
// # Naming
//
// [Registry] maps string names (cave ids, valve names, city names) to dense
// integer ids so they can index slices and bitmasks.
//
// # Rendering
//
// [Graph] is a labelled node/edge list. [Graph.DOT] emits Graphviz DOT and
// [RenderSVG] renders DOT in-process with github.com/goccy/go-graphviz.
package graph
