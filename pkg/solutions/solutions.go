// Package solutions assembles the registry of every solved year.
package solutions

import (
	"github.com/matzehuels/aoc/pkg/aoc2015"
	"github.com/matzehuels/aoc/pkg/aoc2021"
	"github.com/matzehuels/aoc/pkg/aoc2022"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

// Registry returns a registry over all solved years.
func Registry() *puzzle.Registry {
	return puzzle.NewRegistry(aoc2015.Days, aoc2021.Days, aoc2022.Days)
}
