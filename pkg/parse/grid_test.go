package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid("Sab\nabc\n")
	if err != nil {
		t.Fatalf("ParseGrid() error = %v", err)
	}
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Errorf("size = %dx%d, want 2x3", g.Rows(), g.Cols())
	}
	r, c, ok := g.Find('S')
	if !ok || r != 0 || c != 0 {
		t.Errorf("Find('S') = %d,%d,%v", r, c, ok)
	}
	if got := g.Count('a'); got != 2 {
		t.Errorf("Count('a') = %d, want 2", got)
	}
	if !g.In(1, 2) || g.In(2, 0) || g.In(0, -1) {
		t.Error("In() bounds wrong")
	}
	if g.String() != "Sab\nabc" {
		t.Errorf("String() = %q", g.String())
	}

	clone := g.Clone()
	clone[0][0] = 'E'
	if g[0][0] != 'S' {
		t.Error("Clone() shares storage with original")
	}
}

func TestParseGridRagged(t *testing.T) {
	if _, err := ParseGrid("abc\nab\n"); err == nil {
		t.Error("ParseGrid() expected error for ragged rows")
	}
	if _, err := ParseGrid(""); err == nil {
		t.Error("ParseGrid() expected error for empty input")
	}
}

func TestDigits(t *testing.T) {
	got, err := Digits("219\n398\n")
	if err != nil {
		t.Fatalf("Digits() error = %v", err)
	}
	want := [][]int{{2, 1, 9}, {3, 9, 8}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Digits() mismatch (-want +got):\n%s", diff)
	}
	if _, err := Digits("12\n3x\n"); err == nil {
		t.Error("Digits() expected error for non-digit")
	}
}
