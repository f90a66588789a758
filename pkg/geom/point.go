// Package geom holds the integer geometry shared by grid and coordinate
// puzzles: points, axis and diagonal segments, and a few numeric helpers.
package geom

import "golang.org/x/exp/constraints"

// Point is a 2D integer coordinate. X grows to the right, Y grows down,
// matching how puzzle grids are printed.
type Point[T constraints.Signed] struct {
	X, Y T
}

// Pt is the common int-valued point.
type Pt = Point[int]

// P is shorthand for constructing a point.
func P[T constraints.Signed](x, y T) Point[T] { return Point[T]{x, y} }

// Add returns p+q.
func (p Point[T]) Add(q Point[T]) Point[T] { return Point[T]{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point[T]) Sub(q Point[T]) Point[T] { return Point[T]{p.X - q.X, p.Y - q.Y} }

// Scale multiplies both coordinates by k.
func (p Point[T]) Scale(k T) Point[T] { return Point[T]{p.X * k, p.Y * k} }

// Manhattan returns the taxicab distance between p and q.
func (p Point[T]) Manhattan(q Point[T]) T {
	return Abs(p.X-q.X) + Abs(p.Y-q.Y)
}

// Chebyshev returns the king-move distance between p and q.
func (p Point[T]) Chebyshev(q Point[T]) T {
	return max(Abs(p.X-q.X), Abs(p.Y-q.Y))
}

// Toward moves p at most one step along each axis toward q.
func (p Point[T]) Toward(q Point[T]) Point[T] {
	return Point[T]{p.X + Sign(q.X-p.X), p.Y + Sign(q.Y-p.Y)}
}

// In reports whether p lies in the half-open box [0,w)×[0,h).
func (p Point[T]) In(w, h T) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < w && p.Y < h
}

// Unit direction vectors.
var (
	Up    = Pt{0, -1}
	Down  = Pt{0, 1}
	Left  = Pt{-1, 0}
	Right = Pt{1, 0}
)

// Dirs4 lists the orthogonal directions.
var Dirs4 = []Pt{Up, Right, Down, Left}

// Dirs8 lists the orthogonal and diagonal directions.
var Dirs8 = []Pt{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}

// Neighbours4 returns the orthogonal neighbours of p.
func (p Point[T]) Neighbours4() []Point[T] {
	return []Point[T]{{p.X, p.Y - 1}, {p.X + 1, p.Y}, {p.X, p.Y + 1}, {p.X - 1, p.Y}}
}

// Neighbours8 returns all eight surrounding points of p.
func (p Point[T]) Neighbours8() []Point[T] {
	out := make([]Point[T], 0, 8)
	for dy := T(-1); dy <= 1; dy++ {
		for dx := T(-1); dx <= 1; dx++ {
			if dx != 0 || dy != 0 {
				out = append(out, Point[T]{p.X + dx, p.Y + dy})
			}
		}
	}
	return out
}

// Abs returns |v|.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns -1, 0 or 1.
func Sign[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Triangular returns 1+2+...+n.
func Triangular[T constraints.Integer](n T) T {
	return n * (n + 1) / 2
}
