// Package prob3 solves the day 3 puzzle: an engine schematic where part
// numbers are digit runs adjacent to a symbol, and gears are '*' cells
// adjacent to exactly two numbers.
package prob3

import (
	"fmt"

	"github.com/vancomm/advent/internal/grid"
)

// Schematic is the raw engine diagram: a rectangular field of digits,
// symbols and '.' blanks.
type Schematic struct {
	rows   []string
	width  int
	height int
}

func ParseSchematic(input string) (*Schematic, error) {
	rows := grid.Lines(input)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, grid.ErrEmpty
	}
	s := &Schematic{rows: rows, width: len(rows[0]), height: len(rows)}
	for i, row := range rows {
		if len(row) != s.width {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d",
				grid.ErrRagged, i+1, len(row), s.width)
		}
	}
	return s, nil
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// isSymbol reports whether b marks a part: anything that is neither a
// digit nor a blank.
func isSymbol(b byte) bool {
	return !isDigit(b) && b != '.'
}

// number is one horizontal digit run: its value, its row and the first
// and last columns it spans.
type number struct {
	value  int
	row    int
	lo, hi int
}

// touches reports whether the cell at (r, c) lies in the 8-neighborhood
// of the run, the run itself included.
func (n number) touches(r, c int) bool {
	return n.row-1 <= r && r <= n.row+1 && n.lo-1 <= c && c <= n.hi+1
}

// numbers collects the digit runs left to right, top to bottom.
func (s *Schematic) numbers() []number {
	var nums []number
	for r, row := range s.rows {
		for c := 0; c < s.width; {
			if !isDigit(row[c]) {
				c++
				continue
			}
			n := number{row: r, lo: c}
			for c < s.width && isDigit(row[c]) {
				n.value = n.value*10 + int(row[c]-'0')
				c++
			}
			n.hi = c - 1
			nums = append(nums, n)
		}
	}
	return nums
}

// hasAdjacentSymbol reports whether any symbol touches the run.
func (s *Schematic) hasAdjacentSymbol(n number) bool {
	for r := max(n.row-1, 0); r <= min(n.row+1, s.height-1); r++ {
		for c := max(n.lo-1, 0); c <= min(n.hi+1, s.width-1); c++ {
			if isSymbol(s.rows[r][c]) {
				return true
			}
		}
	}
	return false
}

// Part1 sums every number adjacent to at least one symbol.
func Part1(input string) (int, error) {
	s, err := ParseSchematic(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, n := range s.numbers() {
		if s.hasAdjacentSymbol(n) {
			sum += n.value
		}
	}
	return sum, nil
}

// Part2 sums the gear ratios: for every '*' adjacent to exactly two
// numbers, the product of those two.
func Part2(input string) (int, error) {
	s, err := ParseSchematic(input)
	if err != nil {
		return 0, err
	}
	nums := s.numbers()
	sum := 0
	for r, row := range s.rows {
		for c := range s.width {
			if row[c] != '*' {
				continue
			}
			ratio, count := 1, 0
			for _, n := range nums {
				if n.touches(r, c) {
					ratio *= n.value
					count++
				}
			}
			if count == 2 {
				sum += ratio
			}
		}
	}
	return sum, nil
}
