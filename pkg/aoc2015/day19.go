package aoc2015

import (
	"context"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

const reduceAttempts = 1000

type replacement struct{ from, to string }

func parseMachine(input string) ([]replacement, string, error) {
	blocks := parse.Blocks(input)
	if len(blocks) != 2 || len(blocks[1]) != 1 {
		return nil, "", errors.Input("want replacements, a blank line and a molecule")
	}
	rules := make([]replacement, len(blocks[0]))
	for i, l := range blocks[0] {
		from, to, err := parse.Cut(l, " => ")
		if err != nil {
			return nil, "", err
		}
		from, to = strings.TrimSpace(from), strings.TrimSpace(to)
		if from == "" || to == "" {
			return nil, "", errors.Input("line %d: empty replacement side", i+1)
		}
		rules[i] = replacement{from, to}
	}
	return rules, strings.TrimSpace(blocks[1][0]), nil
}

// singleReplacements counts the distinct molecules one replacement away.
func singleReplacements(rules []replacement, molecule string) int {
	seen := make(map[string]struct{})
	for _, r := range rules {
		for i := 0; ; i++ {
			j := strings.Index(molecule[i:], r.from)
			if j < 0 {
				break
			}
			i += j
			seen[molecule[:i]+r.to+molecule[i+len(r.from):]] = struct{}{}
		}
	}
	return len(seen)
}

// reduceToElectron walks molecule back to "e" by greedily undoing
// replacements. When the greedy order gets stuck the rule order is
// reshuffled and the walk restarts. Seeding is fixed so answers are
// reproducible.
func reduceToElectron(ctx context.Context, rules []replacement, molecule string) (int, error) {
	var seeds, order []replacement
	for _, r := range rules {
		switch {
		case r.from == "e":
			seeds = append(seeds, r)
		case len(r.to) > len(r.from):
			order = append(order, r)
		}
	}
	if molecule == "e" {
		return 0, nil
	}

	rng := rand.New(rand.NewPCG(2015, 19))
	for range reduceAttempts {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		m, steps := molecule, 0
		for {
			if slices.ContainsFunc(seeds, func(r replacement) bool { return r.to == m }) {
				return steps + 1, nil
			}
			progressed := false
			for _, r := range order {
				if n := strings.Count(m, r.to); n > 0 {
					m = strings.ReplaceAll(m, r.to, r.from)
					steps += n
					progressed = true
				}
			}
			if !progressed {
				break
			}
		}
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	}
	return 0, errors.NoSolution("molecule cannot be built from e")
}

func calibrate(_ context.Context, input string) (string, error) {
	rules, molecule, err := parseMachine(input)
	if err != nil {
		return "", err
	}
	return puzzle.Int(singleReplacements(rules, molecule)), nil
}

func fabricate(ctx context.Context, input string) (string, error) {
	rules, molecule, err := parseMachine(input)
	if err != nil {
		return "", err
	}
	steps, err := reduceToElectron(ctx, rules, molecule)
	if err != nil {
		return "", err
	}
	return puzzle.Int(steps), nil
}
