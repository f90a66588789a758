package aoc2021

import (
	"context"
	"math/bits"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

// segments is a set of lit wires a..g as a bitmask.
type segments uint8

func toSegments(s string) (segments, error) {
	var m segments
	for _, c := range s {
		if c < 'a' || c > 'g' {
			return 0, errors.Input("bad segment %q in %q", c, s)
		}
		m |= 1 << (c - 'a')
	}
	return m, nil
}

func (m segments) count() int          { return bits.OnesCount8(uint8(m)) }
func (m segments) has(o segments) bool { return m&o == o }

type display struct {
	patterns [10]segments
	output   [4]segments
}

func parseDisplays(input string) ([]display, error) {
	lines, err := parse.NonEmpty(input)
	if err != nil {
		return nil, err
	}
	out := make([]display, len(lines))
	for i, l := range lines {
		pats, outs, err := parse.Cut(l, "|")
		if err != nil {
			return nil, err
		}
		pf, of := strings.Fields(pats), strings.Fields(outs)
		if len(pf) != 10 || len(of) != 4 {
			return nil, errors.Input("line %d: want 10 patterns and 4 outputs", i+1)
		}
		for j, p := range pf {
			if out[i].patterns[j], err = toSegments(p); err != nil {
				return nil, err
			}
		}
		for j, p := range of {
			if out[i].output[j], err = toSegments(p); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// decode works out which pattern shows which digit from segment counts
// and overlaps with the uniquely sized digits 1 and 4.
func (d display) decode() (int, error) {
	var one, four segments
	for _, p := range d.patterns {
		switch p.count() {
		case 2:
			one = p
		case 4:
			four = p
		}
	}
	if one == 0 || four == 0 {
		return 0, errors.Input("patterns lack a 1 or a 4")
	}

	digit := func(p segments) int {
		switch p.count() {
		case 2:
			return 1
		case 3:
			return 7
		case 4:
			return 4
		case 7:
			return 8
		case 5:
			switch {
			case p.has(one):
				return 3
			case (p & four).count() == 3:
				return 5
			}
			return 2
		case 6:
			switch {
			case p.has(four):
				return 9
			case p.has(one):
				return 0
			}
			return 6
		}
		return -1
	}

	value := 0
	for _, o := range d.output {
		v := digit(o)
		if v < 0 {
			return 0, errors.Input("output pattern with %d segments", o.count())
		}
		value = value*10 + v
	}
	return value, nil
}

func easyDigits(_ context.Context, input string) (string, error) {
	ds, err := parseDisplays(input)
	if err != nil {
		return "", err
	}
	n := 0
	for _, d := range ds {
		for _, o := range d.output {
			switch o.count() {
			case 2, 3, 4, 7:
				n++
			}
		}
	}
	return puzzle.Int(n), nil
}

func decodedDisplays(_ context.Context, input string) (string, error) {
	ds, err := parseDisplays(input)
	if err != nil {
		return "", err
	}
	total := 0
	for _, d := range ds {
		v, err := d.decode()
		if err != nil {
			return "", err
		}
		total += v
	}
	return puzzle.Int(total), nil
}
