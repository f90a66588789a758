package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/aoc/pkg/answers"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

func solver(context.Context, string) (string, error) { return "1", nil }

func TestYearTable(t *testing.T) {
	reg := puzzle.NewRegistry([]puzzle.Day{
		{Year: 2021, Day: 1, Title: "Sonar Sweep", Part1: solver, Part2: solver},
		{Year: 2021, Day: 2, Title: "Dive!", Part1: solver},
	})
	store := answers.NewStore(t.TempDir())
	if err := store.Save(puzzle.Key{Year: 2021, Day: 1, Part: 1}, "7"); err != nil {
		t.Fatal(err)
	}

	out := yearTable(reg, store, 2021)
	for _, want := range []string{"Sonar Sweep", "Dive!", "25", iconSuccess, iconMissing, "1/50 parts with saved answers", "3 solvers"} {
		if !strings.Contains(out, want) {
			t.Errorf("yearTable() missing %q:\n%s", want, out)
		}
	}
}
