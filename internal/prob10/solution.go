package prob10

import (
	_ "embed"

	"github.com/vancomm/advent/internal/advent"
)

//go:embed input.txt
var input string

// Solution wires the committed puzzle input to the two solvers.
var Solution = advent.Solution{
	Day:   10,
	Name:  "pipe maze",
	Input: input,
	Part1: Part1,
	Part2: Part2,
}
