package graph

import (
	"container/heap"
	"context"
	"math"
)

// Unreachable is the distance reported for nodes a search never reached.
const Unreachable = math.MaxInt

// Option configures a search.
type Option func(*options)

type options struct {
	ctx         context.Context
	maxDistance int
}

func defaultOptions() options {
	return options{ctx: context.Background(), maxDistance: Unreachable}
}

// WithContext aborts the search when ctx is cancelled. The search then
// reports the goal as unreachable.
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}

// WithMaxDistance stops expanding nodes farther than d from the sources.
func WithMaxDistance(d int) Option {
	return func(o *options) { o.maxDistance = d }
}

// item is a heap entry. Stale entries (dist greater than the best known
// distance of node) are skipped when popped instead of being decreased
// in place.
type item[N comparable] struct {
	node N
	dist int
}

type queue[N comparable] []item[N]

func (q queue[N]) Len() int           { return len(q) }
func (q queue[N]) Less(i, j int) bool { return q[i].dist < q[j].dist }
func (q queue[N]) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *queue[N]) Push(x any)        { *q = append(*q, x.(item[N])) }
func (q *queue[N]) Pop() any {
	old := *q
	it := old[len(old)-1]
	*q = old[:len(old)-1]
	return it
}

// Dijkstra finds the cheapest cost from any of sources to a node satisfying
// goal. neighbours calls visit once per outgoing edge with a non-negative
// cost. The second result is false when no goal node is reachable.
func Dijkstra[N comparable](sources []N, neighbours func(N, func(N, int)), goal func(N) bool, opts ...Option) (int, bool) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	dist := make(map[N]int, len(sources))
	q := &queue[N]{}
	for _, s := range sources {
		dist[s] = 0
		heap.Push(q, item[N]{s, 0})
	}

	steps := 0
	for q.Len() > 0 {
		cur := heap.Pop(q).(item[N])
		if best, ok := dist[cur.node]; ok && cur.dist > best {
			continue
		}
		if goal(cur.node) {
			return cur.dist, true
		}
		if cur.dist > cfg.maxDistance {
			break
		}
		if steps++; steps&0xfff == 0 && cfg.ctx.Err() != nil {
			return Unreachable, false
		}
		neighbours(cur.node, func(next N, cost int) {
			nd := cur.dist + cost
			if best, ok := dist[next]; ok && best <= nd {
				return
			}
			dist[next] = nd
			heap.Push(q, item[N]{next, nd})
		})
	}
	return Unreachable, false
}

// BFS returns the unweighted distance from start to every reachable node.
func BFS[N comparable](start N, neighbours func(N) []N, opts ...Option) map[N]int {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	dist := map[N]int{start: 0}
	queue := []N{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := dist[cur]
		if d >= cfg.maxDistance {
			continue
		}
		for _, next := range neighbours(cur) {
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = d + 1
			queue = append(queue, next)
		}
	}
	return dist
}

// ShortestPath runs a BFS from start and returns the distance to the first
// node satisfying goal.
func ShortestPath[N comparable](start N, neighbours func(N) []N, goal func(N) bool) (int, bool) {
	if goal(start) {
		return 0, true
	}
	dist := map[N]int{start: 0}
	queue := []N{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range neighbours(cur) {
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[cur] + 1
			if goal(next) {
				return dist[next], true
			}
			queue = append(queue, next)
		}
	}
	return Unreachable, false
}
