package solutions

import (
	"testing"

	"github.com/matzehuels/aoc/pkg/puzzle"
)

func TestRegistry(t *testing.T) {
	r := Registry()

	years := r.Years()
	if len(years) != 3 || years[0] != 2015 || years[1] != 2021 || years[2] != 2022 {
		t.Fatalf("Years() = %v", years)
	}

	tests := []struct {
		year, days int
	}{
		{2015, 19},
		{2021, 18},
		{2022, 16},
	}
	for _, tt := range tests {
		if got := len(r.Days(tt.year)); got != tt.days {
			t.Errorf("len(Days(%d)) = %d, want %d", tt.year, got, tt.days)
		}
		if got := len(r.Keys(tt.year)); got != 2*tt.days {
			t.Errorf("len(Keys(%d)) = %d, want %d", tt.year, got, 2*tt.days)
		}
	}

	if _, err := r.Lookup(puzzle.Key{Year: 2021, Day: 16, Part: 2}); err != nil {
		t.Errorf("Lookup(2021/16/2) error = %v", err)
	}
}

func TestGraphDays(t *testing.T) {
	want := map[[2]int]bool{{2015, 7}: true, {2015, 9}: true, {2015, 13}: true, {2021, 12}: true, {2022, 16}: true}
	r := Registry()
	for _, y := range r.Years() {
		for _, d := range r.Days(y) {
			if has := d.Graph != nil; has != want[[2]int{y, d.Day}] {
				t.Errorf("%d/%d Graph set = %v", y, d.Day, has)
			}
		}
	}
}
