package aoc2022

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/geom"
	"github.com/matzehuels/aoc/pkg/graph"
)

func TestCalories(t *testing.T) {
	input := "1000\n2000\n3000\n\n4000\n\n5000\n6000\n\n7000\n8000\n9000\n\n10000\n"
	if got := solve(t, mostCalories, input); got != "24000" {
		t.Errorf("mostCalories() = %q, want %q", got, "24000")
	}
	if got := solve(t, topThreeCalories, input); got != "45000" {
		t.Errorf("topThreeCalories() = %q, want %q", got, "45000")
	}
}

func TestRockPaperScissors(t *testing.T) {
	input := "A Y\r\nB X\r\nC Z\r\n"
	if got := solve(t, guessedStrategy, input); got != "15" {
		t.Errorf("guessedStrategy() = %q, want %q", got, "15")
	}
	if got := solve(t, decodedStrategy, input); got != "12" {
		t.Errorf("decodedStrategy() = %q, want %q", got, "12")
	}

	_, err := guessedStrategy(context.Background(), "A W\n")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestRucksacks(t *testing.T) {
	input := `vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
`
	if got := solve(t, misplacedItems, input); got != "157" {
		t.Errorf("misplacedItems() = %q, want %q", got, "157")
	}
	if got := solve(t, badgePriorities, input); got != "70" {
		t.Errorf("badgePriorities() = %q, want %q", got, "70")
	}
}

func TestCampCleanup(t *testing.T) {
	input := "2-4,6-8\n2-3,4-5\n5-7,7-9\n2-8,3-7\n6-6,4-6\n2-6,4-8\n"
	if got := solve(t, containedPairs, input); got != "2" {
		t.Errorf("containedPairs() = %q, want %q", got, "2")
	}
	if got := solve(t, overlappingPairs, input); got != "4" {
		t.Errorf("overlappingPairs() = %q, want %q", got, "4")
	}
}

const cargoSample = `    [D]    
[N] [C]    
[Z] [M] [P]
 1   2   3 

move 1 from 2 to 1
move 3 from 1 to 3
move 2 from 2 to 1
move 1 from 1 to 2
`

func TestSupplyStacks(t *testing.T) {
	if got := solve(t, crateMover9000, cargoSample); got != "CMZ" {
		t.Errorf("crateMover9000() = %q, want %q", got, "CMZ")
	}
	if got := solve(t, crateMover9001, cargoSample); got != "MCD" {
		t.Errorf("crateMover9001() = %q, want %q", got, "MCD")
	}

	// Editors often strip the trailing blanks of the drawing.
	trimmed := strings.ReplaceAll(cargoSample, "    \n", "\n")
	if got := solve(t, crateMover9000, trimmed); got != "CMZ" {
		t.Errorf("crateMover9000() = %q, want %q", got, "CMZ")
	}

	_, err := crateMover9000(context.Background(), "[A]\n 1 \n\nmove 2 from 1 to 1\n")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestMarkers(t *testing.T) {
	tests := []struct {
		stream          string
		packet, message string
	}{
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", "7", "19"},
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", "5", "23"},
		{"nppdvjthqldpwncqszvftbrmjlhg", "6", "23"},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", "10", "29"},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", "11", "26"},
	}
	for _, tt := range tests {
		t.Run(tt.stream, func(t *testing.T) {
			if got := solve(t, packetMarker, tt.stream); got != tt.packet {
				t.Errorf("packetMarker() = %v, want %v", got, tt.packet)
			}
			if got := solve(t, messageMarker, tt.stream); got != tt.message {
				t.Errorf("messageMarker() = %v, want %v", got, tt.message)
			}
		})
	}

	_, err := packetMarker(context.Background(), "aaaa")
	if !errors.Is(err, errors.ErrCodeNoSolution) {
		t.Errorf("error = %v, want NO_SOLUTION", err)
	}
}

func TestDirectorySizes(t *testing.T) {
	input := `$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k
`
	sizes, err := dirSizes(input)
	if err != nil {
		t.Fatal(err)
	}
	if got := sizes["/a/e"]; got != 584 {
		t.Errorf("sizes[\"/a/e\"] = %v, want %v", got, 584)
	}
	if got := sizes["/a"]; got != 94853 {
		t.Errorf("sizes[\"/a\"] = %v, want %v", got, 94853)
	}
	if got := sizes["/d"]; got != 24933642 {
		t.Errorf("sizes[\"/d\"] = %v, want %v", got, 24933642)
	}
	if got := sizes["/"]; got != 48381165 {
		t.Errorf("sizes[\"/\"] = %v, want %v", got, 48381165)
	}

	if got := solve(t, smallDirectories, input); got != "95437" {
		t.Errorf("smallDirectories() = %q, want %q", got, "95437")
	}
	if got := solve(t, directoryToDelete, input); got != "24933642" {
		t.Errorf("directoryToDelete() = %q, want %q", got, "24933642")
	}
}

func TestTreetop(t *testing.T) {
	input := "30373\n25512\n65332\n33549\n35390\n"
	if got := solve(t, visibleTrees, input); got != "21" {
		t.Errorf("visibleTrees() = %q, want %q", got, "21")
	}
	if got := solve(t, bestScenicScore, input); got != "8" {
		t.Errorf("bestScenicScore() = %q, want %q", got, "8")
	}
}

func TestRope(t *testing.T) {
	input := "R 4\nU 4\nL 3\nD 1\nR 4\nD 1\nL 5\nR 2\n"
	if got := solve(t, shortRope, input); got != "13" {
		t.Errorf("shortRope() = %q, want %q", got, "13")
	}
	if got := solve(t, longRope, input); got != "1" {
		t.Errorf("longRope() = %q, want %q", got, "1")
	}
	if got := solve(t, longRope, "R 5\nU 8\nL 8\nD 3\nR 17\nD 10\nL 25\nU 20\n"); got != "36" {
		t.Errorf("longRope() = %q, want %q", got, "36")
	}
}

func TestCRT(t *testing.T) {
	trace, err := registerTrace("noop\naddx 3\naddx -5\n")
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 1, 1, 4, 4}; !slices.Equal(trace, want) {
		t.Errorf("trace = %v, want %v", trace, want)
	}

	idle := strings.Repeat("noop\n", 240)
	if got := solve(t, signalStrength, idle); got != "720" {
		t.Errorf("signalStrength() = %q, want %q", got, "720")
	}

	row := "###" + strings.Repeat(".", 37)
	if got := solve(t, crtImage, idle); got != strings.Repeat("\n"+row, 6) {
		t.Errorf("crtImage() = %v, want %v", got, strings.Repeat("\n"+row, 6))
	}
}

const monkeySample = `Monkey 0:
  Starting items: 79, 98
  Operation: new = old * 19
  Test: divisible by 23
    If true: throw to monkey 2
    If false: throw to monkey 3

Monkey 1:
  Starting items: 54, 65, 75, 74
  Operation: new = old + 6
  Test: divisible by 19
    If true: throw to monkey 2
    If false: throw to monkey 0

Monkey 2:
  Starting items: 79, 60, 97
  Operation: new = old * old
  Test: divisible by 13
    If true: throw to monkey 1
    If false: throw to monkey 3

Monkey 3:
  Starting items: 74
  Operation: new = old + 3
  Test: divisible by 17
    If true: throw to monkey 0
    If false: throw to monkey 1
`

func TestMonkeys(t *testing.T) {
	if got := solve(t, monkeyBusiness, monkeySample); got != "10605" {
		t.Errorf("monkeyBusiness() = %q, want %q", got, "10605")
	}
	if got := solve(t, worriedMonkeyBusiness, monkeySample); got != "2713310158" {
		t.Errorf("worriedMonkeyBusiness() = %q, want %q", got, "2713310158")
	}
}

func TestHillClimbing(t *testing.T) {
	input := "Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi\n"
	if got := solve(t, fewestStepsFromStart, input); got != "31" {
		t.Errorf("fewestStepsFromStart() = %q, want %q", got, "31")
	}
	if got := solve(t, fewestStepsFromAnyA, input); got != "29" {
		t.Errorf("fewestStepsFromAnyA() = %q, want %q", got, "29")
	}

	_, err := fewestStepsFromStart(context.Background(), "SazE\n")
	if !errors.Is(err, errors.ErrCodeNoSolution) {
		t.Errorf("error = %v, want NO_SOLUTION", err)
	}
}

func TestDistressSignal(t *testing.T) {
	input := `[1,1,3,1,1]
[1,1,5,1,1]

[[1],[2,3,4]]
[[1],4]

[9]
[[8,7,6]]

[[4,4],4,4]
[[4,4],4,4,4]

[7,7,7,7]
[7,7,7]

[]
[3]

[[[]]]
[[]]

[1,[2,[3,[4,[5,6,7]]]],8,9]
[1,[2,[3,[4,[5,6,0]]]],8,9]
`
	if got := solve(t, orderedPairs, input); got != "13" {
		t.Errorf("orderedPairs() = %q, want %q", got, "13")
	}
	if got := solve(t, decoderKey, input); got != "140" {
		t.Errorf("decoderKey() = %q, want %q", got, "140")
	}
}

func TestRegolith(t *testing.T) {
	input := "498,4 -> 498,6 -> 496,6\n503,4 -> 502,4 -> 502,9 -> 494,9\n"
	if got := solve(t, sandUntilAbyss, input); got != "24" {
		t.Errorf("sandUntilAbyss() = %q, want %q", got, "24")
	}
	if got := solve(t, sandUntilBlocked, input); got != "93" {
		t.Errorf("sandUntilBlocked() = %q, want %q", got, "93")
	}

	_, err := sandUntilAbyss(context.Background(), "498,4 -> 500,6\n")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

const sensorSample = `Sensor at x=2, y=18: closest beacon is at x=-2, y=15
Sensor at x=9, y=16: closest beacon is at x=10, y=16
Sensor at x=13, y=2: closest beacon is at x=15, y=3
Sensor at x=12, y=14: closest beacon is at x=10, y=16
Sensor at x=10, y=20: closest beacon is at x=10, y=16
Sensor at x=14, y=17: closest beacon is at x=10, y=16
Sensor at x=8, y=7: closest beacon is at x=2, y=10
Sensor at x=2, y=0: closest beacon is at x=2, y=10
Sensor at x=0, y=11: closest beacon is at x=2, y=10
Sensor at x=20, y=14: closest beacon is at x=25, y=17
Sensor at x=17, y=20: closest beacon is at x=21, y=22
Sensor at x=16, y=7: closest beacon is at x=15, y=3
Sensor at x=14, y=3: closest beacon is at x=15, y=3
Sensor at x=20, y=1: closest beacon is at x=15, y=3
`

func TestBeacons(t *testing.T) {
	sensors, err := parseSensors(sensorSample)
	if err != nil {
		t.Fatal(err)
	}
	if got := excludedInRow(sensors, 10); got != 26 {
		t.Errorf("excludedInRow(sensors, 10) = %v, want %v", got, 26)
	}

	p, err := findBeacon(context.Background(), sensors, 20)
	if err != nil {
		t.Fatal(err)
	}
	if p != geom.P(14, 11) {
		t.Errorf("p = %v, want %v", p, geom.P(14, 11))
	}
}

const valveSample = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

func TestValves(t *testing.T) {
	if got := solve(t, maxPressure, valveSample); got != "1651" {
		t.Errorf("maxPressure() = %q, want %q", got, "1651")
	}
	if got := solve(t, maxPressureWithElephant, valveSample); got != "1707" {
		t.Errorf("maxPressureWithElephant() = %q, want %q", got, "1707")
	}

	g, err := valveGraph(valveSample)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Nodes) != 10 {
		t.Fatalf("len(g.Nodes) = %d, want 10", len(g.Nodes))
	}
	if len(g.Edges) != 10 {
		t.Fatalf("len(g.Edges) = %d, want 10", len(g.Edges))
	}
	if !strings.Contains(g.DOT(), `"AA" -- "DD"`) {
		t.Errorf("%s missing %s", g.DOT(), `"AA" -- "DD"`)
	}

	_, err = maxPressure(context.Background(), "Valve BB has flow rate=1; tunnel leads to valve CC\n")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

// valveRing builds n valves in a ring starting at AA, every one but AA with
// flow rate 1.
func valveRing(n int) string {
	name := func(i int) string {
		i = (i + n) % n
		return string([]byte{'A' + byte(i/26), 'A' + byte(i%26)})
	}
	var b strings.Builder
	for i := range n {
		rate := 1
		if i == 0 {
			rate = 0
		}
		fmt.Fprintf(&b, "Valve %s has flow rate=%d; tunnels lead to valves %s, %s\n", name(i), rate, name(i-1), name(i+1))
	}
	return b.String()
}

func TestValvesOutOfReach(t *testing.T) {
	// A line of 41 valves from AA with only the far end working.
	name := func(i int) string { return string([]byte{'A' + byte(i/26), 'A' + byte(i%26)}) }
	var b strings.Builder
	for i := range 41 {
		rate, to := 0, []string{}
		if i > 0 {
			to = append(to, name(i-1))
		}
		if i < 40 {
			to = append(to, name(i+1))
		} else {
			rate = 7
		}
		fmt.Fprintf(&b, "Valve %s has flow rate=%d; tunnels lead to valves %s\n", name(i), rate, strings.Join(to, ", "))
	}

	v, err := parseVolcano(b.String())
	if err != nil {
		t.Fatal(err)
	}
	n := v.compress(30)
	if got := n.dist[n.start][0]; got != graph.Unreachable {
		t.Errorf("dist to valve 40 tunnels away = %d, want Unreachable", got)
	}
	if got := solve(t, maxPressure, b.String()); got != "0" {
		t.Errorf("maxPressure() = %q, want %q", got, "0")
	}
}

func TestValvesRejectsLargeInputs(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too many working valves", valveRing(65)},
		{"one over the limit", valveRing(maxWorkingValves + 2)},
		{"rate overflows int", "Valve AA has flow rate=99999999999999999999; tunnel leads to valve BB\nValve BB has flow rate=0; tunnel leads to valve AA\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, fn := range []func(context.Context, string) (string, error){maxPressure, maxPressureWithElephant} {
				if _, err := fn(context.Background(), tt.input); !errors.Is(err, errors.ErrCodeInvalidInput) {
					t.Errorf("error = %v, want INVALID_INPUT", err)
				}
			}
		})
	}
}
