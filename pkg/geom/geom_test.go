package geom

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPointArithmetic(t *testing.T) {
	a, b := P(3, -2), P(-1, 4)
	if got := a.Add(b); got != P(2, 2) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != P(4, -6) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Manhattan(b); got != 10 {
		t.Errorf("Manhattan = %d, want 10", got)
	}
	if got := a.Chebyshev(b); got != 6 {
		t.Errorf("Chebyshev = %d, want 6", got)
	}
	if got := a.Scale(2); got != P(6, -4) {
		t.Errorf("Scale = %v", got)
	}
}

func TestToward(t *testing.T) {
	tests := []struct {
		from, to, want Pt
	}{
		{P(0, 0), P(2, 0), P(1, 0)},
		{P(0, 0), P(2, 1), P(1, 1)},
		{P(0, 0), P(-3, -3), P(-1, -1)},
		{P(1, 1), P(1, 1), P(1, 1)},
	}
	for _, tt := range tests {
		if got := tt.from.Toward(tt.to); got != tt.want {
			t.Errorf("%v.Toward(%v) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestNeighbours(t *testing.T) {
	p := P(5, 5)
	if n := p.Neighbours4(); len(n) != 4 || !slices.Contains(n, P(5, 4)) || slices.Contains(n, P(4, 4)) {
		t.Errorf("Neighbours4 = %v", n)
	}
	n8 := p.Neighbours8()
	if len(n8) != 8 || slices.Contains(n8, p) || !slices.Contains(n8, P(6, 6)) {
		t.Errorf("Neighbours8 = %v", n8)
	}
	small := Point[int8]{0, 0}.Neighbours8()
	if len(small) != 8 {
		t.Errorf("int8 Neighbours8 len = %d", len(small))
	}
}

func TestSegmentPoints(t *testing.T) {
	tests := []struct {
		name string
		seg  Segment
		want []Pt
	}{
		{"horizontal", Segment{P(0, 9), P(3, 9)}, []Pt{{0, 9}, {1, 9}, {2, 9}, {3, 9}}},
		{"vertical reversed", Segment{P(7, 4), P(7, 2)}, []Pt{{7, 4}, {7, 3}, {7, 2}}},
		{"diagonal", Segment{P(9, 7), P(7, 9)}, []Pt{{9, 7}, {8, 8}, {7, 9}}},
		{"single point", Segment{P(1, 1), P(1, 1)}, []Pt{{1, 1}}},
		{"skewed", Segment{P(0, 0), P(2, 1)}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(tt.seg.Points())
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Points() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTriangular(t *testing.T) {
	if got := Triangular(4); got != 10 {
		t.Errorf("Triangular(4) = %d, want 10", got)
	}
	if got := Triangular(uint64(0)); got != 0 {
		t.Errorf("Triangular(0) = %d", got)
	}
}

func TestSignAbs(t *testing.T) {
	if Sign(-7) != -1 || Sign(0) != 0 || Sign(12) != 1 {
		t.Error("Sign wrong")
	}
	if Abs(-7) != 7 || Abs(int64(3)) != 3 {
		t.Error("Abs wrong")
	}
}
