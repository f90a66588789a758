package aoc2022

import (
	"context"
	"slices"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

type monkey struct {
	items   []int
	op      byte // '+', '*', or '^' for squaring
	operand int
	divisor int
	ifTrue  int
	ifFalse int
}

func (m *monkey) inspect(old int) int {
	switch m.op {
	case '^':
		return old * old
	case '*':
		return old * m.operand
	}
	return old + m.operand
}

func parseMonkeys(input string) ([]monkey, error) {
	blocks := parse.Blocks(input)
	if len(blocks) == 0 {
		return nil, errors.Input("no monkeys")
	}
	monkeys := make([]monkey, len(blocks))
	for i, b := range blocks {
		if len(b) != 6 {
			return nil, errors.Input("monkey %d: want 6 lines, got %d", i, len(b))
		}
		m := &monkeys[i]
		m.items = parse.Ints(b[1])

		_, expr, err := parse.Cut(b[2], "new = old ")
		if err != nil {
			return nil, err
		}
		op, operand, err := parse.Cut(expr, " ")
		if err != nil {
			return nil, err
		}
		switch {
		case op == "*" && operand == "old":
			m.op = '^'
		case op == "*" || op == "+":
			m.op = op[0]
			if m.operand, err = parse.Int(operand); err != nil {
				return nil, err
			}
		default:
			return nil, errors.Input("monkey %d: unknown operation %q", i, expr)
		}

		var nums [3][]int
		for j := range nums {
			nums[j] = parse.Ints(b[3+j])
			if len(nums[j]) != 1 {
				return nil, errors.Input("monkey %d: bad line %q", i, strings.TrimSpace(b[3+j]))
			}
		}
		m.divisor, m.ifTrue, m.ifFalse = nums[0][0], nums[1][0], nums[2][0]
		if m.divisor <= 0 {
			return nil, errors.Input("monkey %d: divisor must be positive", i)
		}
	}
	for i, m := range monkeys {
		for _, to := range []int{m.ifTrue, m.ifFalse} {
			if to < 0 || to >= len(monkeys) || to == i {
				return nil, errors.Input("monkey %d cannot throw to monkey %d", i, to)
			}
		}
	}
	return monkeys, nil
}

// business plays the rounds and multiplies the two highest inspection
// counts. Without relief worry levels are kept modulo the product of all
// divisors, which preserves every divisibility test.
func business(input string, rounds int, relief bool) (string, error) {
	monkeys, err := parseMonkeys(input)
	if err != nil {
		return "", err
	}
	modulus := 1
	for _, m := range monkeys {
		modulus *= m.divisor
	}
	inspected := make([]int, len(monkeys))
	for range rounds {
		for i := range monkeys {
			m := &monkeys[i]
			for _, w := range m.items {
				w = m.inspect(w)
				if relief {
					w /= 3
				} else {
					w %= modulus
				}
				to := m.ifFalse
				if w%m.divisor == 0 {
					to = m.ifTrue
				}
				monkeys[to].items = append(monkeys[to].items, w)
			}
			inspected[i] += len(m.items)
			m.items = m.items[:0]
		}
	}
	slices.Sort(inspected)
	if len(inspected) < 2 {
		return "", errors.Input("need at least two monkeys")
	}
	return puzzle.Int(inspected[len(inspected)-1] * inspected[len(inspected)-2]), nil
}

func monkeyBusiness(_ context.Context, input string) (string, error) {
	return business(input, 20, true)
}

func worriedMonkeyBusiness(_ context.Context, input string) (string, error) {
	return business(input, 10_000, false)
}
