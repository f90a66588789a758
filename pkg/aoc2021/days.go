// Package aoc2021 solves the 2021 puzzles.
package aoc2021

import "github.com/matzehuels/aoc/pkg/puzzle"

const year = 2021

// Days lists every solved 2021 puzzle.
var Days = []puzzle.Day{
	{Year: year, Day: 1, Title: "Sonar Sweep", Part1: depthIncreases, Part2: windowIncreases},
	{Year: year, Day: 2, Title: "Dive!", Part1: divePosition, Part2: aimedDive},
	{Year: year, Day: 3, Title: "Binary Diagnostic", Part1: powerConsumption, Part2: lifeSupport},
	{Year: year, Day: 4, Title: "Giant Squid", Part1: firstWinner, Part2: lastWinner},
	{Year: year, Day: 5, Title: "Hydrothermal Venture", Part1: straightOverlaps, Part2: allOverlaps},
	{Year: year, Day: 6, Title: "Lanternfish", Part1: fish80, Part2: fish256},
	{Year: year, Day: 7, Title: "The Treachery of Whales", Part1: linearFuel, Part2: triangularFuel},
	{Year: year, Day: 8, Title: "Seven Segment Search", Part1: easyDigits, Part2: decodedDisplays},
	{Year: year, Day: 9, Title: "Smoke Basin", Part1: lowPointRisk, Part2: largestBasins},
	{Year: year, Day: 10, Title: "Syntax Scoring", Part1: corruptionScore, Part2: completionScore},
	{Year: year, Day: 11, Title: "Dumbo Octopus", Part1: flashesAfter100, Part2: firstSyncStep},
	{Year: year, Day: 12, Title: "Passage Pathing", Part1: cavePaths, Part2: cavePathsRevisit, Graph: caveGraph},
	{Year: year, Day: 13, Title: "Transparent Origami", Part1: firstFold, Part2: foldedCode},
	{Year: year, Day: 14, Title: "Extended Polymerization", Part1: polymer10, Part2: polymer40},
	{Year: year, Day: 15, Title: "Chiton", Part1: lowestRisk, Part2: lowestRiskTiled},
	{Year: year, Day: 16, Title: "Packet Decoder", Part1: versionSum, Part2: evaluate},
	{Year: year, Day: 17, Title: "Trick Shot", Part1: highestShot, Part2: shotCount},
	{Year: year, Day: 18, Title: "Snailfish", Part1: homeworkMagnitude, Part2: largestPairMagnitude},
}
