package aoc2021

import (
	"context"
	"encoding/hex"
	"slices"
	"strings"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

const typeLiteral = 4

type packet struct {
	version int
	typeID  int
	literal int
	subs    []packet
}

// bitReader reads big-endian bit fields from a byte slice.
type bitReader struct {
	data []byte
	pos  int
}

func (r *bitReader) read(n int) (int, error) {
	if r.pos+n > len(r.data)*8 {
		return 0, errors.Input("transmission truncated at bit %d", r.pos)
	}
	v := 0
	for range n {
		bit := r.data[r.pos/8] >> (7 - r.pos%8) & 1
		v = v<<1 | int(bit)
		r.pos++
	}
	return v, nil
}

func decodeTransmission(input string) (packet, error) {
	data, err := hex.DecodeString(strings.TrimSpace(input))
	if err != nil {
		return packet{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode hex")
	}
	if len(data) == 0 {
		return packet{}, errors.Input("empty transmission")
	}
	r := &bitReader{data: data}
	return r.packet()
}

func (r *bitReader) packet() (packet, error) {
	var p packet
	var err error
	if p.version, err = r.read(3); err != nil {
		return p, err
	}
	if p.typeID, err = r.read(3); err != nil {
		return p, err
	}

	if p.typeID == typeLiteral {
		for {
			group, err := r.read(5)
			if err != nil {
				return p, err
			}
			p.literal = p.literal<<4 | group&0xf
			if group&0x10 == 0 {
				return p, nil
			}
		}
	}

	lengthType, err := r.read(1)
	if err != nil {
		return p, err
	}
	if lengthType == 0 {
		bits, err := r.read(15)
		if err != nil {
			return p, err
		}
		end := r.pos + bits
		for r.pos < end {
			sub, err := r.packet()
			if err != nil {
				return p, err
			}
			p.subs = append(p.subs, sub)
		}
		if r.pos != end {
			return p, errors.Input("sub-packets overrun their length")
		}
		return p, nil
	}

	count, err := r.read(11)
	if err != nil {
		return p, err
	}
	for range count {
		sub, err := r.packet()
		if err != nil {
			return p, err
		}
		p.subs = append(p.subs, sub)
	}
	return p, nil
}

func (p packet) versionSum() int {
	sum := p.version
	for _, s := range p.subs {
		sum += s.versionSum()
	}
	return sum
}

func (p packet) value() (int, error) {
	if p.typeID == typeLiteral {
		return p.literal, nil
	}
	vals := make([]int, len(p.subs))
	for i, s := range p.subs {
		v, err := s.value()
		if err != nil {
			return 0, err
		}
		vals[i] = v
	}
	if len(vals) == 0 {
		return 0, errors.Input("operator %d without operands", p.typeID)
	}

	compare := func(ok bool) (int, error) {
		if len(vals) != 2 {
			return 0, errors.Input("comparison %d needs two operands, got %d", p.typeID, len(vals))
		}
		if ok {
			return 1, nil
		}
		return 0, nil
	}

	switch p.typeID {
	case 0:
		sum := 0
		for _, v := range vals {
			sum += v
		}
		return sum, nil
	case 1:
		prod := 1
		for _, v := range vals {
			prod *= v
		}
		return prod, nil
	case 2:
		return slices.Min(vals), nil
	case 3:
		return slices.Max(vals), nil
	case 5:
		return compare(len(vals) == 2 && vals[0] > vals[1])
	case 6:
		return compare(len(vals) == 2 && vals[0] < vals[1])
	case 7:
		return compare(len(vals) == 2 && vals[0] == vals[1])
	}
	return 0, errors.Input("unknown packet type %d", p.typeID)
}

func versionSum(_ context.Context, input string) (string, error) {
	p, err := decodeTransmission(input)
	if err != nil {
		return "", err
	}
	return puzzle.Int(p.versionSum()), nil
}

func evaluate(_ context.Context, input string) (string, error) {
	p, err := decodeTransmission(input)
	if err != nil {
		return "", err
	}
	v, err := p.value()
	if err != nil {
		return "", err
	}
	return puzzle.Int(v), nil
}
