// Package aoc2022 solves the 2022 puzzles.
package aoc2022

import "github.com/matzehuels/aoc/pkg/puzzle"

const year = 2022

// Days lists every solved 2022 puzzle.
var Days = []puzzle.Day{
	{Year: year, Day: 1, Title: "Calorie Counting", Part1: mostCalories, Part2: topThreeCalories},
	{Year: year, Day: 2, Title: "Rock Paper Scissors", Part1: guessedStrategy, Part2: decodedStrategy},
	{Year: year, Day: 3, Title: "Rucksack Reorganization", Part1: misplacedItems, Part2: badgePriorities},
	{Year: year, Day: 4, Title: "Camp Cleanup", Part1: containedPairs, Part2: overlappingPairs},
	{Year: year, Day: 5, Title: "Supply Stacks", Part1: crateMover9000, Part2: crateMover9001},
	{Year: year, Day: 6, Title: "Tuning Trouble", Part1: packetMarker, Part2: messageMarker},
	{Year: year, Day: 7, Title: "No Space Left On Device", Part1: smallDirectories, Part2: directoryToDelete},
	{Year: year, Day: 8, Title: "Treetop Tree House", Part1: visibleTrees, Part2: bestScenicScore},
	{Year: year, Day: 9, Title: "Rope Bridge", Part1: shortRope, Part2: longRope},
	{Year: year, Day: 10, Title: "Cathode-Ray Tube", Part1: signalStrength, Part2: crtImage},
	{Year: year, Day: 11, Title: "Monkey in the Middle", Part1: monkeyBusiness, Part2: worriedMonkeyBusiness},
	{Year: year, Day: 12, Title: "Hill Climbing Algorithm", Part1: fewestStepsFromStart, Part2: fewestStepsFromAnyA},
	{Year: year, Day: 13, Title: "Distress Signal", Part1: orderedPairs, Part2: decoderKey},
	{Year: year, Day: 14, Title: "Regolith Reservoir", Part1: sandUntilAbyss, Part2: sandUntilBlocked},
	{Year: year, Day: 15, Title: "Beacon Exclusion Zone", Part1: excludedPositions, Part2: tuningFrequency},
	{Year: year, Day: 16, Title: "Proboscidea Volcanium", Part1: maxPressure, Part2: maxPressureWithElephant, Graph: valveGraph},
}
