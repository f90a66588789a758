package aoc2022

import (
	"context"
	"math"
	"path"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

const (
	diskSize   = 70_000_000
	spaceFree  = 30_000_000
	smallLimit = 100_000
)

// dirSizes replays a terminal session and returns the total size of every
// directory by absolute path, counting nested files.
func dirSizes(input string) (map[string]int, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return nil, err
	}
	sizes := map[string]int{"/": 0}
	cwd := "/"
	for i, l := range lines {
		f := strings.Fields(l)
		switch {
		case len(f) == 0:
		case f[0] == "$" && len(f) == 3 && f[1] == "cd":
			switch f[2] {
			case "/":
				cwd = "/"
			case "..":
				cwd = path.Dir(cwd)
			default:
				cwd = path.Join(cwd, f[2])
			}
			if _, ok := sizes[cwd]; !ok {
				sizes[cwd] = 0
			}
		case f[0] == "$" && len(f) == 2 && f[1] == "ls":
		case f[0] == "$":
			return nil, errors.Input("line %d: unknown command %q", i+1, l)
		case f[0] == "dir":
		default:
			n, err := parse.Int(f[0])
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "line %d", i+1)
			}
			for dir := cwd; ; dir = path.Dir(dir) {
				sizes[dir] += n
				if dir == "/" {
					break
				}
			}
		}
	}
	return sizes, nil
}

func smallDirectories(_ context.Context, input string) (string, error) {
	sizes, err := dirSizes(input)
	if err != nil {
		return "", err
	}
	total := 0
	for _, s := range sizes {
		if s <= smallLimit {
			total += s
		}
	}
	return puzzle.Int(total), nil
}

func directoryToDelete(_ context.Context, input string) (string, error) {
	sizes, err := dirSizes(input)
	if err != nil {
		return "", err
	}
	need := spaceFree - (diskSize - sizes["/"])
	best := math.MaxInt
	for _, s := range sizes {
		if s >= need {
			best = min(best, s)
		}
	}
	return puzzle.Int(best), nil
}
