package aoc2021

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
	if len(Days) != 18 {
		t.Fatalf("len(Days) = %d, want 18", len(Days))
	}
	for i, d := range Days {
		if d.Year != year {
			t.Errorf("d.Year = %v, want %v", d.Year, year)
		}
		if d.Day != i+1 {
			t.Errorf("d.Day = %v, want %v", d.Day, i+1)
		}
		if d.Part1 == nil || d.Part2 == nil {
			t.Errorf("day %d is missing a part", d.Day)
		}
	}
}

func TestEmptyInputIsInvalid(t *testing.T) {
	for _, d := range Days {
		for p := 1; p <= 2; p++ {
			_, err := d.Part(p)(context.Background(), "\n")
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("day %d part %d: %v", d.Day, p, err)
			}
		}
	}
}
