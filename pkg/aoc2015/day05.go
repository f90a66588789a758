package aoc2015

import (
	"context"
	"strings"

	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

func isNice(s string) bool {
	vowels, double := 0, false
	for i := 0; i < len(s); i++ {
		if strings.IndexByte("aeiou", s[i]) >= 0 {
			vowels++
		}
		if i > 0 {
			switch s[i-1 : i+1] {
			case "ab", "cd", "pq", "xy":
				return false
			}
			if s[i] == s[i-1] {
				double = true
			}
		}
	}
	return vowels >= 3 && double
}

func isBetterNice(s string) bool {
	pair, sandwich := false, false
	first := make(map[string]int)
	for i := 0; i+1 < len(s); i++ {
		p := s[i : i+2]
		if j, ok := first[p]; ok {
			if i-j >= 2 {
				pair = true
			}
		} else {
			first[p] = i
		}
		if i+2 < len(s) && s[i] == s[i+2] {
			sandwich = true
		}
	}
	return pair && sandwich
}

func countNice(input string, nice func(string) bool) (string, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return "", err
	}
	n := 0
	for _, l := range lines {
		if nice(strings.TrimSpace(l)) {
			n++
		}
	}
	return puzzle.Int(n), nil
}

func niceStrings(_ context.Context, input string) (string, error) {
	return countNice(input, isNice)
}

func betterNiceStrings(_ context.Context, input string) (string, error) {
	return countNice(input, isBetterNice)
}
