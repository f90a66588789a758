// Package pkg holds the libraries behind the aoc command: puzzle solutions
// for 2015, 2021 and 2022 and the harness that runs them.
//
// # Overview
//
// Every solution is a [puzzle.Solver], a function from the raw input text to
// the answer text. The packages are organized into three areas:
//
//  1. Solutions - [aoc2015], [aoc2021], [aoc2022], one file per day, collected
//     by [solutions]
//  2. Shared helpers - [parse] (lines, blocks, numbers, grids), [geom]
//     (points and segments) and [graph] (search and visualisation)
//  3. Harness - [puzzle] (registry and runner), [input] (downloads), [answers]
//     (saved answers), [cache], [session], [errors], [observability] and
//     [buildinfo]
//
// # Architecture
//
// The typical data flow of `aoc run 2021 16 2`:
//
//	inputs/2021/day16.txt  (or download via [input.Source])
//	         ↓
//	    [puzzle.Runner] (cache lookup, timeout, panic recovery)
//	         ↓
//	    aoc2021 day 16 part 2
//	         ↓
//	    answer, compared with outputs/2021/day16-part2.txt
//
// # Quick Start
//
// Solve a part from Go code:
//
//	reg := solutions.Registry()
//	r := puzzle.NewRunner(reg, nil, nil, nil)
//	res, err := r.Run(ctx, puzzle.Key{Year: 2021, Day: 16, Part: 2}, input, false)
//
// # Testing
//
// Every day is tested against the worked examples from its puzzle text:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/aoc2021/...   # One year
//
// [aoc2015]: https://pkg.go.dev/github.com/matzehuels/aoc/pkg/aoc2015
// [aoc2021]: https://pkg.go.dev/github.com/matzehuels/aoc/pkg/aoc2021
// [aoc2022]: https://pkg.go.dev/github.com/matzehuels/aoc/pkg/aoc2022
// [solutions]: https://pkg.go.dev/github.com/matzehuels/aoc/pkg/solutions
// [parse]: https://pkg.go.dev/github.com/matzehuels/aoc/pkg/parse
// [geom]: https://pkg.go.dev/github.com/matzehuels/aoc/pkg/geom
// [graph]: https://pkg.go.dev/github.com/matzehuels/aoc/pkg/graph
// [puzzle]: https://pkg.go.dev/github.com/matzehuels/aoc/pkg/puzzle
// [puzzle.Solver]: https://pkg.go.dev/github.com/matzehuels/aoc/pkg/puzzle#Solver
// [puzzle.Runner]: https://pkg.go.dev/github.com/matzehuels/aoc/pkg/puzzle#Runner
// [input]: https://pkg.go.dev/github.com/matzehuels/aoc/pkg/input
// [input.Source]: https://pkg.go.dev/github.com/matzehuels/aoc/pkg/input#Source
// [answers]: https://pkg.go.dev/github.com/matzehuels/aoc/pkg/answers
// [cache]: https://pkg.go.dev/github.com/matzehuels/aoc/pkg/cache
// [session]: https://pkg.go.dev/github.com/matzehuels/aoc/pkg/session
// [errors]: https://pkg.go.dev/github.com/matzehuels/aoc/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/aoc/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/aoc/pkg/buildinfo
package pkg
