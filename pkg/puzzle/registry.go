package puzzle

import (
	"maps"
	"slices"

	"github.com/matzehuels/aoc/pkg/errors"
)

// Registry indexes days by year and day number.
type Registry struct {
	days map[int]map[int]Day
}

// NewRegistry builds a registry from one or more year lists.
// A later duplicate of the same year/day replaces the earlier one.
func NewRegistry(years ...[]Day) *Registry {
	r := &Registry{days: make(map[int]map[int]Day)}
	for _, days := range years {
		for _, d := range days {
			if r.days[d.Year] == nil {
				r.days[d.Year] = make(map[int]Day)
			}
			r.days[d.Year][d.Day] = d
		}
	}
	return r
}

// Day returns the registered day.
func (r *Registry) Day(year, day int) (Day, bool) {
	d, ok := r.days[year][day]
	return d, ok
}

// Lookup returns the solver for k. Unknown days are NOT_FOUND; registered
// days without that part are UNSOLVED.
func (r *Registry) Lookup(k Key) (Solver, error) {
	d, ok := r.Day(k.Year, k.Day)
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "no solutions registered for %d day %d", k.Year, k.Day)
	}
	s := d.Part(k.Part)
	if s == nil {
		return nil, errors.New(errors.ErrCodeUnsolved, "%s is not solved yet", k)
	}
	return s, nil
}

// Years returns the registered years in ascending order.
func (r *Registry) Years() []int {
	return slices.Sorted(maps.Keys(r.days))
}

// Days returns the days of year in ascending order.
func (r *Registry) Days(year int) []Day {
	byDay := r.days[year]
	out := make([]Day, 0, len(byDay))
	for _, n := range slices.Sorted(maps.Keys(byDay)) {
		out = append(out, byDay[n])
	}
	return out
}

// Keys returns every solved part of the given years (all years if none
// are given), ordered by year, day and part.
func (r *Registry) Keys(years ...int) []Key {
	if len(years) == 0 {
		years = r.Years()
	}
	var keys []Key
	for _, y := range years {
		for _, d := range r.Days(y) {
			for p := 1; p <= 2; p++ {
				if d.Part(p) != nil {
					keys = append(keys, Key{Year: y, Day: d.Day, Part: p})
				}
			}
		}
	}
	return keys
}
