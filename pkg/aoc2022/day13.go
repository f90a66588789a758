package aoc2022

import (
	"cmp"
	"context"
	"encoding/json"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

// A packet value is a float64 integer or a []any list, as decoded by
// encoding/json.
func parsePacket(s string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &v); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "packet %q", s)
	}
	if _, ok := v.([]any); !ok {
		return nil, errors.Input("packet %q is not a list", s)
	}
	return v, nil
}

// comparePackets orders two packet values. Integers compare by value,
// lists element-wise, and a lone integer is promoted to a one-element
// list when compared against a list.
func comparePackets(a, b any) int {
	af, aNum := a.(float64)
	bf, bNum := b.(float64)
	switch {
	case aNum && bNum:
		return cmp.Compare(af, bf)
	case aNum:
		return comparePackets([]any{af}, b)
	case bNum:
		return comparePackets(a, []any{bf})
	}
	al, _ := a.([]any)
	bl, _ := b.([]any)
	for i := range min(len(al), len(bl)) {
		if c := comparePackets(al[i], bl[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(al), len(bl))
}

func parsePackets(input string) ([]any, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return nil, err
	}
	var out []any
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		p, err := parsePacket(l)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if len(out)%2 != 0 {
		return nil, errors.Input("odd number of packets")
	}
	return out, nil
}

func orderedPairs(_ context.Context, input string) (string, error) {
	packets, err := parsePackets(input)
	if err != nil {
		return "", err
	}
	sum := 0
	for i := 0; i < len(packets); i += 2 {
		if comparePackets(packets[i], packets[i+1]) < 0 {
			sum += i/2 + 1
		}
	}
	return puzzle.Int(sum), nil
}

// decoderKey locates the two divider packets in the sorted list by
// counting the packets that sort before each of them.
func decoderKey(_ context.Context, input string) (string, error) {
	packets, err := parsePackets(input)
	if err != nil {
		return "", err
	}
	div2 := []any{[]any{2.0}}
	div6 := []any{[]any{6.0}}
	pos2, pos6 := 1, 2
	for _, p := range packets {
		if comparePackets(p, div2) < 0 {
			pos2++
		}
		if comparePackets(p, div6) < 0 {
			pos6++
		}
	}
	return puzzle.Int(pos2 * pos6), nil
}
