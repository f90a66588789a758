package aoc2021

import (
	"context"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/parse"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

const boardSize = 5

type board struct {
	cells  [boardSize][boardSize]int
	marked [boardSize][boardSize]bool
	won    bool
}

func (b *board) mark(n int) bool {
	for r := range boardSize {
		for c := range boardSize {
			if b.cells[r][c] == n {
				b.marked[r][c] = true
				return b.complete(r, c)
			}
		}
	}
	return false
}

func (b *board) complete(r, c int) bool {
	row, col := true, true
	for i := range boardSize {
		row = row && b.marked[r][i]
		col = col && b.marked[i][c]
	}
	return row || col
}

func (b *board) unmarked() int {
	sum := 0
	for r := range boardSize {
		for c := range boardSize {
			if !b.marked[r][c] {
				sum += b.cells[r][c]
			}
		}
	}
	return sum
}

func parseBingo(input string) ([]int, []*board, error) {
	blocks := parse.Blocks(input)
	if len(blocks) < 2 || len(blocks[0]) != 1 {
		return nil, nil, errors.Input("want a line of draws followed by boards")
	}
	draws, err := parse.IntList(blocks[0][0], ",")
	if err != nil {
		return nil, nil, err
	}
	boards := make([]*board, 0, len(blocks)-1)
	for i, blk := range blocks[1:] {
		if len(blk) != boardSize {
			return nil, nil, errors.Input("board %d has %d rows", i+1, len(blk))
		}
		b := &board{}
		for r, line := range blk {
			row, err := parse.IntList(line, " ")
			if err != nil {
				return nil, nil, err
			}
			if len(row) != boardSize {
				return nil, nil, errors.Input("board %d row %d has %d numbers", i+1, r+1, len(row))
			}
			copy(b.cells[r][:], row)
		}
		boards = append(boards, b)
	}
	return draws, boards, nil
}

// winningScores plays every draw and returns board scores in the order
// the boards win.
func winningScores(input string) ([]int, error) {
	draws, boards, err := parseBingo(input)
	if err != nil {
		return nil, err
	}
	var scores []int
	for _, n := range draws {
		for _, b := range boards {
			if !b.won && b.mark(n) {
				b.won = true
				scores = append(scores, b.unmarked()*n)
			}
		}
	}
	if len(scores) == 0 {
		return nil, errors.NoSolution("no board wins")
	}
	return scores, nil
}

func firstWinner(_ context.Context, input string) (string, error) {
	scores, err := winningScores(input)
	if err != nil {
		return "", err
	}
	return puzzle.Int(scores[0]), nil
}

func lastWinner(_ context.Context, input string) (string, error) {
	scores, err := winningScores(input)
	if err != nil {
		return "", err
	}
	return puzzle.Int(scores[len(scores)-1]), nil
}
