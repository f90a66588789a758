package aoc2015

import (
	"context"
	"crypto/md5"
	"strconv"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

// mine finds the lowest positive number whose MD5 with the secret key has
// the given number of leading hex zeros.
func mine(ctx context.Context, key string, zeros int) (int, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return 0, errors.Input("empty secret key")
	}
	buf := make([]byte, len(key), len(key)+20)
	copy(buf, key)
	for n := 1; ; n++ {
		if n&0xffff == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		sum := md5.Sum(strconv.AppendInt(buf[:len(key)], int64(n), 10))
		if leadingZeroNibbles(sum[:], zeros) {
			return n, nil
		}
	}
}

func leadingZeroNibbles(b []byte, n int) bool {
	for i := 0; i < n/2; i++ {
		if b[i] != 0 {
			return false
		}
	}
	return n%2 == 0 || b[n/2]>>4 == 0
}

func adventCoin5(ctx context.Context, input string) (string, error) {
	n, err := mine(ctx, input, 5)
	if err != nil {
		return "", err
	}
	return puzzle.Int(n), nil
}

func adventCoin6(ctx context.Context, input string) (string, error) {
	n, err := mine(ctx, input, 6)
	if err != nil {
		return "", err
	}
	return puzzle.Int(n), nil
}
