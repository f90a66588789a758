package aoc2015

import (
	"context"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

// lookAndSay reads runs of equal digits aloud: "1211" becomes "111221".
func lookAndSay(seq []byte) []byte {
	out := make([]byte, 0, len(seq)*2)
	for i := 0; i < len(seq); {
		j := i
		for j < len(seq) && seq[j] == seq[i] {
			j++
		}
		out = append(out, byte('0'+j-i), seq[i])
		i = j
	}
	return out
}

func lookAndSayLen(ctx context.Context, input string, rounds int) (string, error) {
	seq := []byte(strings.TrimSpace(input))
	if len(seq) == 0 {
		return "", errors.Input("empty sequence")
	}
	for _, c := range seq {
		if c < '0' || c > '9' {
			return "", errors.Input("sequence must be digits, got %q", c)
		}
	}
	for range rounds {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		seq = lookAndSay(seq)
	}
	return puzzle.Int(len(seq)), nil
}

func lookAndSay40(ctx context.Context, input string) (string, error) {
	return lookAndSayLen(ctx, input, 40)
}

func lookAndSay50(ctx context.Context, input string) (string, error) {
	return lookAndSayLen(ctx, input, 50)
}
