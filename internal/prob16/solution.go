package prob16

import (
	_ "embed"

	"github.com/vancomm/advent/internal/advent"
)

//go:embed input.txt
var input string

// Solution wires the committed puzzle input to the two solvers.
var Solution = advent.Solution{
	Day:   16,
	Name:  "light beams",
	Input: input,
	Part1: Part1,
	Part2: Part2,
}
