package geom

import "iter"

// Segment is a line between two integer points, inclusive at both ends.
type Segment struct {
	From, To Pt
}

// Horizontal reports whether both ends share a row.
func (s Segment) Horizontal() bool { return s.From.Y == s.To.Y }

// Vertical reports whether both ends share a column.
func (s Segment) Vertical() bool { return s.From.X == s.To.X }

// Diagonal reports whether the segment runs at exactly 45 degrees.
func (s Segment) Diagonal() bool {
	d := s.To.Sub(s.From)
	return d.X != 0 && Abs(d.X) == Abs(d.Y)
}

// Points yields every lattice point of the segment from From to To.
// Only horizontal, vertical and 45-degree segments are supported; for any
// other slope the sequence is empty.
func (s Segment) Points() iter.Seq[Pt] {
	return func(yield func(Pt) bool) {
		if !s.Horizontal() && !s.Vertical() && !s.Diagonal() {
			return
		}
		step := Pt{Sign(s.To.X - s.From.X), Sign(s.To.Y - s.From.Y)}
		for p := s.From; ; p = p.Add(step) {
			if !yield(p) || p == s.To {
				return
			}
		}
	}
}
