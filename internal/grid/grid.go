// Package grid holds the 2-D plumbing shared by the puzzle models:
// points, cardinal directions and a generic rectangular cell grid built
// from the puzzle text. Each puzzle still owns its cell vocabulary and
// its parse function.
package grid

import (
	"fmt"
	"iter"
	"strings"
)

var (
	ErrEmpty  = fmt.Errorf("grid has no cells")
	ErrRagged = fmt.Errorf("grid rows differ in length")
)

// Lines splits the raw puzzle text into rows, dropping the trailing
// newline most inputs end with.
func Lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Grid is a rectangular field of cells addressed by [Point].
type Grid[T any] struct {
	Width  int
	Height int
	cells  [][]T
}

// New returns a zero-filled grid of the given dimensions.
func New[T any](width, height int) *Grid[T] {
	cells := make([][]T, height)
	for i := range cells {
		cells[i] = make([]T, width)
	}
	return &Grid[T]{Width: width, Height: height, cells: cells}
}

// Parse builds a grid from the puzzle text, mapping every byte through
// cell. Cell errors come back wrapped with the offending position.
func Parse[T any](s string, cell func(b byte) (T, error)) (*Grid[T], error) {
	lines := Lines(s)
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmpty
	}
	g := New[T](len(lines[0]), len(lines))
	for r, line := range lines {
		if len(line) != g.Width {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d",
				ErrRagged, r+1, len(line), g.Width)
		}
		for c := range line {
			v, err := cell(line[c])
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", r+1, c+1, err)
			}
			g.cells[r][c] = v
		}
	}
	return g, nil
}

func (g *Grid[T]) At(p Point) T {
	return g.cells[p.Row][p.Col]
}

func (g *Grid[T]) Set(p Point, v T) {
	g.cells[p.Row][p.Col] = v
}

// InBounds reports whether p addresses a cell of the grid.
func (g *Grid[T]) InBounds(p Point) bool {
	return 0 <= p.Row && p.Row < g.Height && 0 <= p.Col && p.Col < g.Width
}

// Index flattens p to a row-major offset.
func (g *Grid[T]) Index(p Point) int {
	return p.Row*g.Width + p.Col
}

// Points iterates over every cell position in row-major order.
func (g *Grid[T]) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for r := range g.Height {
			for c := range g.Width {
				if !yield(Point{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}
