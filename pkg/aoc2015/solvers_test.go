package aoc2015

import (
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/parse"
)

func TestFloors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(())", "0"},
		{"(((", "3"},
		{"))(((((", "3"},
		{")())())", "-3"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := solve(t, finalFloor, tt.input); got != tt.want {
				t.Errorf("finalFloor() = %v, want %v", got, tt.want)
			}
		})
	}

	if got := solve(t, basementPosition, ")"); got != "1" {
		t.Errorf("basementPosition() = %q, want %q", got, "1")
	}
	if got := solve(t, basementPosition, "()())"); got != "5" {
		t.Errorf("basementPosition() = %q, want %q", got, "5")
	}

	_, err := basementPosition(context.Background(), "((")
	if !errors.Is(err, errors.ErrCodeNoSolution) {
		t.Errorf("error = %v, want NO_SOLUTION", err)
	}
	_, err = finalFloor(context.Background(), "(x)")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestWrapping(t *testing.T) {
	if got := solve(t, wrappingPaper, "2x3x4"); got != "58" {
		t.Errorf("wrappingPaper() = %q, want %q", got, "58")
	}
	if got := solve(t, wrappingPaper, "1x1x10"); got != "43" {
		t.Errorf("wrappingPaper() = %q, want %q", got, "43")
	}
	if got := solve(t, wrappingPaper, "2x3x4\n1x1x10\n"); got != "101" {
		t.Errorf("wrappingPaper() = %q, want %q", got, "101")
	}
	if got := solve(t, ribbon, "2x3x4"); got != "34" {
		t.Errorf("ribbon() = %q, want %q", got, "34")
	}
	if got := solve(t, ribbon, "1x1x10"); got != "14" {
		t.Errorf("ribbon() = %q, want %q", got, "14")
	}
}

func TestHouses(t *testing.T) {
	tests := []struct {
		input        string
		alone, robot string
	}{
		{"^v", "2", "3"},
		{"^>v<", "4", "3"},
		{"^v^v^v^v^v", "2", "11"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := solve(t, housesVisited, tt.input); got != tt.alone {
				t.Errorf("housesVisited() = %v, want %v", got, tt.alone)
			}
			if got := solve(t, housesWithRobot, tt.input); got != tt.robot {
				t.Errorf("housesWithRobot() = %v, want %v", got, tt.robot)
			}
		})
	}
}

func TestMine(t *testing.T) {
	if testing.Short() {
		t.Skip("hashes a million keys")
	}
	n, err := mine(context.Background(), "abcdef", 5)
	if err != nil {
		t.Fatal(err)
	}
	if n != 609043 {
		t.Errorf("n = %v, want %v", n, 609043)
	}

	n, err = mine(context.Background(), "pqrstuv\n", 5)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1048970 {
		t.Errorf("n = %v, want %v", n, 1048970)
	}
}

func TestMineCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := mine(ctx, "abcdef", 32)
	if err != context.Canceled {
		t.Errorf("mine() error = %v, want context.Canceled", err)
	}
}

func TestNiceStrings(t *testing.T) {
	nice := map[string]bool{
		"ugknbfddgicrmopn": true,
		"aaa":              true,
		"jchzalrnumimnmhp": false,
		"haegwjzuvuyypxyu": false,
		"dvszwmarrgswjxmb": false,
	}
	for s, want := range nice {
		if got := isNice(s); got != want {
			t.Errorf("%v: got %v, want %v", s, got, want)
		}
	}

	better := map[string]bool{
		"qjhvhtzxzqqjkmpb": true,
		"xxyxx":            true,
		"uurcxstgmygtbstg": false,
		"ieodomkazucvgmuy": false,
		"aaa":              false,
	}
	for s, want := range better {
		if got := isBetterNice(s); got != want {
			t.Errorf("%v: got %v, want %v", s, got, want)
		}
	}

	if got := solve(t, niceStrings, "ugknbfddgicrmopn\naaa\njchzalrnumimnmhp\n"); got != "2" {
		t.Errorf("niceStrings() = %q, want %q", got, "2")
	}
}

func TestLights(t *testing.T) {
	if got := solve(t, lightsLit, "turn on 0,0 through 999,999"); got != "1000000" {
		t.Errorf("lightsLit() = %q, want %q", got, "1000000")
	}
	if got := solve(t, lightsLit, "turn on 0,0 through 999,999\ntoggle 0,0 through 999,0"); got != "999000" {
		t.Errorf("lightsLit() = %q, want %q", got, "999000")
	}
	if got := solve(t, lightsLit, "turn on 0,0 through 999,999\nturn off 499,499 through 500,500"); got != "999996" {
		t.Errorf("lightsLit() = %q, want %q", got, "999996")
	}

	if got := solve(t, totalBrightness, "turn on 0,0 through 0,0"); got != "1" {
		t.Errorf("totalBrightness() = %q, want %q", got, "1")
	}
	if got := solve(t, totalBrightness, "toggle 0,0 through 999,999"); got != "2000000" {
		t.Errorf("totalBrightness() = %q, want %q", got, "2000000")
	}
	if got := solve(t, totalBrightness, "turn off 0,0 through 9,9"); got != "0" {
		t.Errorf("totalBrightness() = %q, want %q", got, "0")
	}

	_, err := lightsLit(context.Background(), "turn on 0,0 through 1000,3")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
	_, err = lightsLit(context.Background(), "turn on 99999999999999999999,0 through 1,1")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("overflow error = %v, want INVALID_INPUT", err)
	}
}

const circuitSample = `123 -> x
456 -> y
x AND y -> d
x OR y -> e
x LSHIFT 2 -> f
y RSHIFT 2 -> g
NOT x -> h
NOT y -> i
`

func TestCircuit(t *testing.T) {
	c, err := parseCircuit(circuitSample)
	if err != nil {
		t.Fatal(err)
	}
	ev := newEvaluator(c)

	want := map[string]uint16{"d": 72, "e": 507, "f": 492, "g": 114, "h": 65412, "i": 65079, "x": 123, "y": 456}
	for wire, v := range want {
		got, err := ev.wire(wire)
		if err != nil {
			t.Fatalf("%v: %v", wire, err)
		}
		if got != v {
			t.Errorf("%v: got %v, want %v", wire, got, v)
		}
	}

	if got := solve(t, wireA, circuitSample+"d -> a\n"); got != "72" {
		t.Errorf("wireA() = %q, want %q", got, "72")
	}
	if got := solve(t, wireAOverridden, "3 -> b\nb LSHIFT 1 -> a\n"); got != "12" {
		t.Errorf("wireAOverridden() = %q, want %q", got, "12")
	}

	_, err = wireA(context.Background(), "b -> a\na -> b\n")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("cycle: %v", err)
	}
	_, err = wireA(context.Background(), "x XOR y -> a\n")
	if err == nil {
		t.Error("expected an error")
	}

	g, err := circuitGraph(circuitSample)
	if err != nil {
		t.Fatal(err)
	}
	if !g.Directed {
		t.Error("g.Directed is false")
	}
	if len(g.Nodes) != 8 {
		t.Fatalf("len(g.Nodes) = %d, want 8", len(g.Nodes))
	}
	if !strings.Contains(g.DOT(), `"x" -> "d"`) {
		t.Errorf("%s missing %s", g.DOT(), `"x" -> "d"`)
	}
}

func TestMatchsticks(t *testing.T) {
	input := `""
"abc"
"aaa\"aaa"
"\x27"
`
	if got := solve(t, decodedOverhead, input); got != "12" {
		t.Errorf("decodedOverhead() = %q, want %q", got, "12")
	}
	if got := solve(t, encodedOverhead, input); got != "19" {
		t.Errorf("encodedOverhead() = %q, want %q", got, "19")
	}

	_, err := memoryLen(`"bad\q"`)
	if err == nil {
		t.Error("expected an error")
	}
}

const routeSample = `London to Dublin = 464
London to Belfast = 518
Dublin to Belfast = 141
`

func TestRoutes(t *testing.T) {
	if got := solve(t, shortestRoute, routeSample); got != "605" {
		t.Errorf("shortestRoute() = %q, want %q", got, "605")
	}
	if got := solve(t, longestRoute, routeSample); got != "982" {
		t.Errorf("longestRoute() = %q, want %q", got, "982")
	}

	g, err := routeGraph(routeSample)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Nodes) != 3 {
		t.Fatalf("len(g.Nodes) = %d, want 3", len(g.Nodes))
	}
	if len(g.Edges) != 3 {
		t.Fatalf("len(g.Edges) = %d, want 3", len(g.Edges))
	}
}

func TestLookAndSay(t *testing.T) {
	seq := []byte("1")
	for _, want := range []string{"11", "21", "1211", "111221", "312211"} {
		seq = lookAndSay(seq)
		if got := string(seq); got != want {
			t.Errorf("string(seq) = %v, want %v", got, want)
		}
	}

	_, err := lookAndSay40(context.Background(), "12a")
	if err == nil {
		t.Error("expected an error")
	}
}

func TestPasswords(t *testing.T) {
	valid := map[string]bool{
		"hijklmmn": false,
		"abbceffg": false,
		"abbcegjk": false,
		"abcdffaa": true,
		"ghjaabcc": true,
	}
	for p, want := range valid {
		if got := validPassword([]byte(p)); got != want {
			t.Errorf("%v: got %v, want %v", p, got, want)
		}
	}

	if got := solve(t, nextPassword, "abcdefgh"); got != "abcdffaa" {
		t.Errorf("nextPassword() = %q, want %q", got, "abcdffaa")
	}
	if got := solve(t, nextPassword, "ghijklmn\n"); got != "ghjaabcc" {
		t.Errorf("nextPassword() = %q, want %q", got, "ghjaabcc")
	}
}

func TestJSONSums(t *testing.T) {
	tests := []struct {
		doc        string
		all, noRed string
	}{
		{`[1,2,3]`, "6", "6"},
		{`{"a":2,"b":4}`, "6", "6"},
		{`[[[3]]]`, "3", "3"},
		{`{"a":{"b":4},"c":-1}`, "3", "3"},
		{`{"a":[-1,1]}`, "0", "0"},
		{`[-1,{"a":1}]`, "0", "0"},
		{`[]`, "0", "0"},
		{`[1,{"c":"red","b":2},3]`, "6", "4"},
		{`{"d":"red","e":[1,2,3,4],"f":5}`, "15", "0"},
		{`[1,"red",5]`, "6", "6"},
	}
	for _, tt := range tests {
		t.Run(tt.doc, func(t *testing.T) {
			if got := solve(t, sumNumbers, tt.doc); got != tt.all {
				t.Errorf("sumNumbers() = %v, want %v", got, tt.all)
			}
			if got := solve(t, sumNumbersNotRed, tt.doc); got != tt.noRed {
				t.Errorf("sumNumbersNotRed() = %v, want %v", got, tt.noRed)
			}
		})
	}
}

const seatingSample = `Alice would gain 54 happiness units by sitting next to Bob.
Alice would lose 79 happiness units by sitting next to Carol.
Alice would lose 2 happiness units by sitting next to David.
Bob would gain 83 happiness units by sitting next to Alice.
Bob would lose 7 happiness units by sitting next to Carol.
Bob would lose 63 happiness units by sitting next to David.
Carol would lose 62 happiness units by sitting next to Alice.
Carol would gain 60 happiness units by sitting next to Bob.
Carol would gain 55 happiness units by sitting next to David.
David would gain 46 happiness units by sitting next to Alice.
David would lose 7 happiness units by sitting next to Bob.
David would gain 41 happiness units by sitting next to Carol.
`

func TestSeating(t *testing.T) {
	if got := solve(t, bestSeating, seatingSample); got != "330" {
		t.Errorf("bestSeating() = %q, want %q", got, "330")
	}

	s, err := parseSeating(seatingSample)
	if err != nil {
		t.Fatal(err)
	}
	s.withIndifferentGuest()
	if len(s.delta) != 5 {
		t.Fatalf("len(s.delta) = %d, want 5", len(s.delta))
	}

	g, err := seatingGraph(seatingSample)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Edges) != 6 {
		t.Fatalf("len(g.Edges) = %d, want 6", len(g.Edges))
	}
	if !strings.Contains(g.DOT(), `"Alice" -- "Bob" [label="137"]`) {
		t.Errorf("%s missing %s", g.DOT(), `"Alice" -- "Bob" [label="137"]`)
	}

	_, err = bestSeating(context.Background(), "Alice would gain 99999999999999999999 happiness units by sitting next to Bob.\nBob would lose 1 happiness unit by sitting next to Alice.\n")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("overflow error = %v, want INVALID_INPUT", err)
	}
}

func TestReindeer(t *testing.T) {
	rs, err := parseReindeer(`Comet can fly 14 km/s for 10 seconds, but then must rest for 127 seconds.
Dancer can fly 16 km/s for 11 seconds, but then must rest for 162 seconds.
`)
	if err != nil {
		t.Fatal(err)
	}
	if got := rs[0].name; got != "Comet" {
		t.Errorf("rs[0].name = %q, want %q", got, "Comet")
	}
	if got := rs[0].distanceAt(1000); got != 1120 {
		t.Errorf("rs[0].distanceAt(1000) = %v, want %v", got, 1120)
	}
	if got := rs[1].distanceAt(1000); got != 1056 {
		t.Errorf("rs[1].distanceAt(1000) = %v, want %v", got, 1056)
	}
	if got := furthest(rs, 1000); got != 1120 {
		t.Errorf("furthest(rs, 1000) = %v, want %v", got, 1120)
	}
	if got := mostPoints(rs, 1000); got != 689 {
		t.Errorf("mostPoints(rs, 1000) = %v, want %v", got, 689)
	}
}

func TestCookies(t *testing.T) {
	input := `Butterscotch: capacity -1, durability -2, flavor 6, texture 3, calories 8
Cinnamon: capacity 2, durability 3, flavor -2, texture -1, calories 3
`
	if got := solve(t, bestCookie, input); got != "62842880" {
		t.Errorf("bestCookie() = %q, want %q", got, "62842880")
	}
	if got := solve(t, bestLightCookie, input); got != "57600000" {
		t.Errorf("bestLightCookie() = %q, want %q", got, "57600000")
	}
}

func TestAuntSue(t *testing.T) {
	input := `Sue 1: cars: 9, akitas: 3, goldfish: 0
Sue 2: children: 3, cats: 7, trees: 3
Sue 3: cats: 8, pomeranians: 2, goldfish: 4
`
	if got := solve(t, exactSue, input); got != "2" {
		t.Errorf("exactSue() = %q, want %q", got, "2")
	}
	if got := solve(t, rangedSue, input); got != "3" {
		t.Errorf("rangedSue() = %q, want %q", got, "3")
	}

	_, err := exactSue(context.Background(), "Sue 1: cars: 9\n")
	if !errors.Is(err, errors.ErrCodeNoSolution) {
		t.Errorf("error = %v, want NO_SOLUTION", err)
	}
}

func TestContainers(t *testing.T) {
	ways := containerWays([]int{20, 15, 10, 5, 5}, 25)
	if want := []int{0, 0, 3, 1, 0, 0}; !slices.Equal(ways, want) {
		t.Errorf("ways = %v, want %v", ways, want)
	}
}

func TestAnimation(t *testing.T) {
	g, err := parse.ParseGrid(".#.#.#\n...##.\n#....#\n..#...\n#.#..#\n####..\n")
	if err != nil {
		t.Fatal(err)
	}
	if got := animate(g, 4, false); got != 4 {
		t.Errorf("animate(g, 4, false) = %v, want %v", got, 4)
	}
	if got := animate(g, 5, true); got != 17 {
		t.Errorf("animate(g, 5, true) = %v, want %v", got, 17)
	}
	if got := animate(g, 0, false); got != 15 {
		t.Errorf("animate(g, 0, false) = %v, want %v", got, 15)
	}
}

func TestMolecules(t *testing.T) {
	rules := "H => HO\nH => OH\nO => HH\n"
	if got := solve(t, calibrate, rules+"\nHOH\n"); got != "4" {
		t.Errorf("calibrate() = %q, want %q", got, "4")
	}
	if got := solve(t, calibrate, rules+"\nHOHOHO\n"); got != "7" {
		t.Errorf("calibrate() = %q, want %q", got, "7")
	}

	withSeeds := "e => H\ne => O\n" + rules
	if got := solve(t, fabricate, withSeeds+"\nHOH\n"); got != "3" {
		t.Errorf("fabricate() = %q, want %q", got, "3")
	}
	if got := solve(t, fabricate, withSeeds+"\nHOHOHO\n"); got != "6" {
		t.Errorf("fabricate() = %q, want %q", got, "6")
	}

	_, err := fabricate(context.Background(), "e => H\n\nO\n")
	if !errors.Is(err, errors.ErrCodeNoSolution) {
		t.Errorf("error = %v, want NO_SOLUTION", err)
	}
}
