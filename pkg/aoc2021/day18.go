package aoc2021

import (
	"context"
	"slices"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

// regular is one regular number of a snailfish number together with how
// many pairs enclose it. A snailfish number is its regulars in reading
// order, which is enough to explode, split and take magnitudes.
type regular struct {
	value, depth int
}

type snailfish []regular

func parseSnailfish(s string) (snailfish, error) {
	var out snailfish
	depth := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '[':
			depth++
		case c == ']':
			depth--
			if depth < 0 {
				return nil, errors.Input("unbalanced %q", s)
			}
		case c == ',':
		case c >= '0' && c <= '9':
			v := 0
			for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
				v = v*10 + int(s[i]-'0')
			}
			i--
			out = append(out, regular{v, depth})
		default:
			return nil, errors.Input("unexpected %q in %q", c, s)
		}
	}
	if depth != 0 || len(out) < 2 {
		return nil, errors.Input("malformed snailfish number %q", s)
	}
	return out, nil
}

func (n snailfish) add(o snailfish) snailfish {
	sum := make(snailfish, 0, len(n)+len(o))
	for _, r := range n {
		sum = append(sum, regular{r.value, r.depth + 1})
	}
	for _, r := range o {
		sum = append(sum, regular{r.value, r.depth + 1})
	}
	return sum.reduce()
}

func (n snailfish) reduce() snailfish {
	for {
		if i := n.exploding(); i >= 0 {
			n = n.explodeAt(i)
			continue
		}
		if i := n.splitting(); i >= 0 {
			n = n.splitAt(i)
			continue
		}
		return n
	}
}

// exploding returns the index of the leftmost pair nested inside four
// pairs, or -1.
func (n snailfish) exploding() int {
	for i := 0; i+1 < len(n); i++ {
		if n[i].depth > 4 && n[i+1].depth == n[i].depth {
			return i
		}
	}
	return -1
}

func (n snailfish) explodeAt(i int) snailfish {
	if i > 0 {
		n[i-1].value += n[i].value
	}
	if i+2 < len(n) {
		n[i+2].value += n[i+1].value
	}
	n[i] = regular{0, n[i].depth - 1}
	return slices.Delete(n, i+1, i+2)
}

// splitting returns the index of the leftmost regular of ten or more, or -1.
func (n snailfish) splitting() int {
	return slices.IndexFunc(n, func(r regular) bool { return r.value >= 10 })
}

func (n snailfish) splitAt(i int) snailfish {
	r := n[i]
	n[i] = regular{r.value / 2, r.depth + 1}
	return slices.Insert(n, i+1, regular{(r.value + 1) / 2, r.depth + 1})
}

func (n snailfish) magnitude() int {
	work := append(snailfish(nil), n...)
	for len(work) > 1 {
		deepest := 0
		for _, r := range work {
			deepest = max(deepest, r.depth)
		}
		for i := 0; i+1 < len(work); i++ {
			if work[i].depth == deepest && work[i+1].depth == deepest {
				work[i] = regular{3*work[i].value + 2*work[i+1].value, deepest - 1}
				work = append(work[:i+1], work[i+2:]...)
				break
			}
		}
	}
	return work[0].value
}

func parseHomework(input string) ([]snailfish, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return nil, err
	}
	out := make([]snailfish, len(lines))
	for i, l := range lines {
		if out[i], err = parseSnailfish(strings.TrimSpace(l)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func homeworkMagnitude(_ context.Context, input string) (string, error) {
	nums, err := parseHomework(input)
	if err != nil {
		return "", err
	}
	sum := nums[0]
	for _, n := range nums[1:] {
		sum = sum.add(n)
	}
	return puzzle.Int(sum.magnitude()), nil
}

func largestPairMagnitude(_ context.Context, input string) (string, error) {
	nums, err := parseHomework(input)
	if err != nil {
		return "", err
	}
	best := 0
	for i, a := range nums {
		for j, b := range nums {
			if i != j {
				best = max(best, a.add(b).magnitude())
			}
		}
	}
	return puzzle.Int(best), nil
}
