package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/aoc/pkg/errors"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"only newline", "\n", nil},
		{"single", "abc", []string{"abc"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"inner blank kept", "a\n\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Lines(tt.input)); diff != "" {
				t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBlocks(t *testing.T) {
	input := "1000\n2000\n\n4000\n\n\n5000\n6000\n"
	want := [][]string{{"1000", "2000"}, {"4000"}, {"5000", "6000"}}
	if diff := cmp.Diff(want, Blocks(input)); diff != "" {
		t.Errorf("Blocks() mismatch (-want +got):\n%s", diff)
	}
}

func TestInts(t *testing.T) {
	tests := []struct {
		input string
		want  []int
	}{
		{"Sensor at x=2, y=18: closest beacon is at x=-2, y=15", []int{2, 18, -2, 15}},
		{"move 3 from 1 to 2", []int{3, 1, 2}},
		{"no numbers", []int{}},
		{"target area: x=20..30, y=-10..-5", []int{20, 30, -10, -5}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Ints(tt.input)); diff != "" {
				t.Errorf("Ints() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIntsN(t *testing.T) {
	if _, err := IntsN("1-2,3-4", 4); err != nil {
		t.Errorf("IntsN() error = %v", err)
	}
	_, err := IntsN("1,2", 3)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("IntsN() error = %v, want INVALID_INPUT", err)
	}
}

func TestIntList(t *testing.T) {
	got, err := IntList("3,4,3,1,2\n", ",")
	if err != nil {
		t.Fatalf("IntList() error = %v", err)
	}
	if diff := cmp.Diff([]int{3, 4, 3, 1, 2}, got); diff != "" {
		t.Errorf("IntList() mismatch (-want +got):\n%s", diff)
	}
	if _, err := IntList("1,x", ","); err == nil {
		t.Error("IntList() expected error for non-integer field")
	}
}

func TestIntLines(t *testing.T) {
	got, err := IntLines("199\n200\n208\n")
	if err != nil {
		t.Fatalf("IntLines() error = %v", err)
	}
	if diff := cmp.Diff([]int{199, 200, 208}, got); diff != "" {
		t.Errorf("IntLines() mismatch (-want +got):\n%s", diff)
	}
	if _, err := IntLines(""); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("IntLines(\"\") error = %v, want INVALID_INPUT", err)
	}
}

func TestCut(t *testing.T) {
	a, b, err := Cut("start-end", "-")
	if err != nil || a != "start" || b != "end" {
		t.Errorf("Cut() = %q, %q, %v", a, b, err)
	}
	if _, _, err := Cut("startend", "-"); err == nil {
		t.Error("Cut() expected error when separator is missing")
	}
}
