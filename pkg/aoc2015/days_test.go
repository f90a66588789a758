package aoc2015

import (
	"context"
	"testing"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

func solve(t *testing.T, s puzzle.Solver, input string) string {
	t.Helper()
	got, err := s(context.Background(), input)
	if err != nil {
		t.Fatal(err)
	}
	return got
}

func TestDays(t *testing.T) {
	if len(Days) != 19 {
		t.Fatalf("len(Days) = %d, want 19", len(Days))
	}
	for i, d := range Days {
		if d.Year != year {
			t.Errorf("d.Year = %v, want %v", d.Year, year)
		}
		if d.Day != i+1 {
			t.Errorf("days must be listed in order: got %v, want %v", d.Day, i+1)
		}
		if d.Title == "" || d.Part1 == nil || d.Part2 == nil {
			t.Errorf("day %d is incomplete (title %q)", d.Day, d.Title)
		}
	}
}

func TestEmptyInputIsInvalid(t *testing.T) {
	for _, d := range Days {
		for p := 1; p <= 2; p++ {
			_, err := d.Part(p)(context.Background(), "")
			if err == nil {
				t.Errorf("day %d part %d: expected an error", d.Day, p)
			}
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("day %d part %d: %v", d.Day, p, err)
			}
		}
	}
}
