package aoc2015

import (
	"context"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
)

func forbiddenLetter(c byte) bool { return c == 'i' || c == 'o' || c == 'l' }

// incrementPassword counts p up in base 26, never producing i, o or l.
func incrementPassword(p []byte) {
	for i := len(p) - 1; i >= 0; i-- {
		p[i]++
		if forbiddenLetter(p[i]) {
			p[i]++
		}
		if p[i] <= 'z' {
			return
		}
		p[i] = 'a'
	}
}

func validPassword(p []byte) bool {
	straight := false
	for i := 2; i < len(p); i++ {
		if p[i-2]+1 == p[i-1] && p[i-1]+1 == p[i] {
			straight = true
			break
		}
	}
	if !straight {
		return false
	}
	var pairs [26]bool
	distinct := 0
	for i := 1; i < len(p); i++ {
		if forbiddenLetter(p[i]) || forbiddenLetter(p[i-1]) {
			return false
		}
		if p[i] == p[i-1] {
			if !pairs[p[i]-'a'] {
				pairs[p[i]-'a'] = true
				distinct++
			}
			i++
		}
	}
	return distinct >= 2
}

// nextValidPassword returns the first valid password after current.
func nextValidPassword(current string) (string, error) {
	p := []byte(strings.TrimSpace(current))
	if len(p) < 5 {
		return "", errors.Input("password %q is too short to ever be valid", p)
	}
	for _, c := range p {
		if c < 'a' || c > 'z' {
			return "", errors.Input("password must be lowercase letters, got %q", c)
		}
	}
	// Jump straight past the first forbidden letter.
	for i, c := range p {
		if forbiddenLetter(c) {
			for j := i + 1; j < len(p); j++ {
				p[j] = 'z'
			}
			break
		}
	}
	for {
		incrementPassword(p)
		if validPassword(p) {
			return string(p), nil
		}
	}
}

func nextPassword(_ context.Context, input string) (string, error) {
	return nextValidPassword(input)
}

func secondNextPassword(_ context.Context, input string) (string, error) {
	first, err := nextValidPassword(input)
	if err != nil {
		return "", err
	}
	return nextValidPassword(first)
}
