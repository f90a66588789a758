// Package aoc2015 solves the 2015 puzzles.
package aoc2015

import "github.com/matzehuels/aoc/pkg/puzzle"

const year = 2015

// Days lists every solved 2015 puzzle.
var Days = []puzzle.Day{
	{Year: year, Day: 1, Title: "Not Quite Lisp", Part1: finalFloor, Part2: basementPosition},
	{Year: year, Day: 2, Title: "I Was Told There Would Be No Math", Part1: wrappingPaper, Part2: ribbon},
	{Year: year, Day: 3, Title: "Perfectly Spherical Houses in a Vacuum", Part1: housesVisited, Part2: housesWithRobot},
	{Year: year, Day: 4, Title: "The Ideal Stocking Stuffer", Part1: adventCoin5, Part2: adventCoin6},
	{Year: year, Day: 5, Title: "Doesn't He Have Intern-Elves For This?", Part1: niceStrings, Part2: betterNiceStrings},
	{Year: year, Day: 6, Title: "Probably a Fire Hazard", Part1: lightsLit, Part2: totalBrightness},
	{Year: year, Day: 7, Title: "Some Assembly Required", Part1: wireA, Part2: wireAOverridden, Graph: circuitGraph},
	{Year: year, Day: 8, Title: "Matchsticks", Part1: decodedOverhead, Part2: encodedOverhead},
	{Year: year, Day: 9, Title: "All in a Single Night", Part1: shortestRoute, Part2: longestRoute, Graph: routeGraph},
	{Year: year, Day: 10, Title: "Elves Look, Elves Say", Part1: lookAndSay40, Part2: lookAndSay50},
	{Year: year, Day: 11, Title: "Corporate Policy", Part1: nextPassword, Part2: secondNextPassword},
	{Year: year, Day: 12, Title: "JSAbacusFramework.io", Part1: sumNumbers, Part2: sumNumbersNotRed},
	{Year: year, Day: 13, Title: "Knights of the Dinner Table", Part1: bestSeating, Part2: bestSeatingWithMe, Graph: seatingGraph},
	{Year: year, Day: 14, Title: "Reindeer Olympics", Part1: winningDistance, Part2: winningPoints},
	{Year: year, Day: 15, Title: "Science for Hungry People", Part1: bestCookie, Part2: bestLightCookie},
	{Year: year, Day: 16, Title: "Aunt Sue", Part1: exactSue, Part2: rangedSue},
	{Year: year, Day: 17, Title: "No Such Thing as Too Much", Part1: containerCombos, Part2: minimalContainerCombos},
	{Year: year, Day: 18, Title: "Like a GIF For Your Yard", Part1: lightsAfter100, Part2: lightsStuckCorners},
	{Year: year, Day: 19, Title: "Medicine for Rudolph", Part1: calibrate, Part2: fabricate},
}
