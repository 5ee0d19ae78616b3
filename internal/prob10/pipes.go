// Package prob10 solves the day 10 puzzle: a field of bent pipes hiding
// one closed loop. Part 1 finds the farthest tile along the loop, part 2
// counts the tiles the loop encloses.
package prob10

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/advent/internal/grid"
)

var Log = logrus.New()

// Pipe is one maze tile. The zero value is the blank ground tile.
type Pipe uint8

const (
	Ground     Pipe = iota // '.'
	Vertical               // '|'
	Horizontal             // '-'
	BendNE                 // 'L'
	BendNW                 // 'J'
	BendSW                 // '7'
	BendSE                 // 'F'
	Start                  // 'S'
)

func parsePipe(b byte) (Pipe, error) {
	switch b {
	case '.':
		return Ground, nil
	case '|':
		return Vertical, nil
	case '-':
		return Horizontal, nil
	case 'L':
		return BendNE, nil
	case 'J':
		return BendNW, nil
	case '7':
		return BendSW, nil
	case 'F':
		return BendSE, nil
	case 'S':
		return Start, nil
	}
	return 0, fmt.Errorf("unknown pipe %q", b)
}

func (p Pipe) String() string {
	switch p {
	case Vertical:
		return "|"
	case Horizontal:
		return "-"
	case BendNE:
		return "L"
	case BendNW:
		return "J"
	case BendSW:
		return "7"
	case BendSE:
		return "F"
	case Start:
		return "S"
	default:
		return "."
	}
}

// exits returns the two sides a pipe connects, ok false for tiles that
// are not a pipe (ground and the unresolved start).
func (p Pipe) exits() (a, b grid.Direction, ok bool) {
	switch p {
	case Vertical:
		return grid.North, grid.South, true
	case Horizontal:
		return grid.East, grid.West, true
	case BendNE:
		return grid.North, grid.East, true
	case BendNW:
		return grid.North, grid.West, true
	case BendSW:
		return grid.South, grid.West, true
	case BendSE:
		return grid.East, grid.South, true
	}
	return 0, 0, false
}

// connects reports whether p has an exit on side d.
func (p Pipe) connects(d grid.Direction) bool {
	a, b, ok := p.exits()
	return ok && (a == d || b == d)
}

// resolveStart infers the real shape of the start tile from the two
// sides its neighbors connect on. Two distinct sides always match
// exactly one pipe.
func resolveStart(dirs []grid.Direction) Pipe {
	for _, p := range []Pipe{Vertical, Horizontal, BendNE, BendNW, BendSW, BendSE} {
		if p.connects(dirs[0]) && p.connects(dirs[1]) {
			return p
		}
	}
	return Start
}

// PipeMap is the parsed maze.
type PipeMap struct {
	pipes *grid.Grid[Pipe]
}

func ParseMap(input string) (*PipeMap, error) {
	pipes, err := grid.Parse(input, parsePipe)
	if err != nil {
		return nil, err
	}
	return &PipeMap{pipes: pipes}, nil
}

var ErrNoStart = fmt.Errorf("no start tile")

// start locates the S tile.
func (m *PipeMap) start() (grid.Point, error) {
	for p := range m.pipes.Points() {
		if m.pipes.At(p) == Start {
			return p, nil
		}
	}
	return grid.Point{}, ErrNoStart
}

// startDirections returns the sides on which neighboring pipes connect
// back into the start tile. A well-formed maze has exactly two.
func (m *PipeMap) startDirections(start grid.Point) ([]grid.Direction, error) {
	var dirs []grid.Direction
	for _, d := range grid.Cardinal {
		next := start.Move(d)
		if !m.pipes.InBounds(next) {
			continue
		}
		if m.pipes.At(next).connects(d.Opposite()) {
			dirs = append(dirs, d)
		}
	}
	if len(dirs) != 2 {
		return nil, fmt.Errorf("start connects to %d pipes, want 2", len(dirs))
	}
	return dirs, nil
}

// step follows the pipe at p from the side it was entered on to its
// other exit, returning the next tile and the side that tile is entered
// on.
func (m *PipeMap) step(p grid.Point, entered grid.Direction) (grid.Point, grid.Direction, error) {
	pipe := m.pipes.At(p)
	a, b, ok := pipe.exits()
	if !ok {
		return grid.Point{}, 0, fmt.Errorf("tile %s at %s is not a pipe", pipe, p)
	}
	if a != entered && b != entered {
		return grid.Point{}, 0, fmt.Errorf("pipe %s at %s has no exit %s", pipe, p, entered)
	}
	out := a
	if out == entered {
		out = b
	}
	next := p.Move(out)
	if !m.pipes.InBounds(next) {
		return grid.Point{}, 0, fmt.Errorf("pipe at %s leads off the grid", p)
	}
	if m.pipes.At(next) == Ground {
		return grid.Point{}, 0, fmt.Errorf("pipe at %s leads to ground at %s", p, next)
	}
	return next, out.Opposite(), nil
}

// walk traces the loop once from the start, calling visit for every loop
// tile. The start tile reports its resolved shape. Returns the loop
// length.
func (m *PipeMap) walk(visit func(p grid.Point, pipe Pipe)) (int, error) {
	start, err := m.start()
	if err != nil {
		return 0, err
	}
	dirs, err := m.startDirections(start)
	if err != nil {
		return 0, err
	}

	visit(start, resolveStart(dirs))
	length := 1
	p, entered := start.Move(dirs[0]), dirs[0].Opposite()
	for p != start {
		visit(p, m.pipes.At(p))
		length++
		p, entered, err = m.step(p, entered)
		if err != nil {
			return 0, err
		}
	}

	Log.WithFields(logrus.Fields{
		"start":  start,
		"shape":  resolveStart(dirs),
		"length": length,
	}).Debug("loop traced")

	return length, nil
}

// Part1 returns the distance along the loop to its farthest tile, half
// the loop length.
func Part1(input string) (int, error) {
	m, err := ParseMap(input)
	if err != nil {
		return 0, err
	}
	length, err := m.walk(func(grid.Point, Pipe) {})
	if err != nil {
		return 0, err
	}
	return length / 2, nil
}

// Part2 counts the tiles enclosed by the loop. The loop is re-threaded
// onto a clean map (junk pipes become ground, the start tile its real
// shape), then every row is ray cast left to right: a '|' crossing flips
// inside/outside, as do L...7 and F...J runs, while L...J and F...7 runs
// do not.
func Part2(input string) (int, error) {
	m, err := ParseMap(input)
	if err != nil {
		return 0, err
	}
	clean := grid.New[Pipe](m.pipes.Width, m.pipes.Height)
	if _, err := m.walk(clean.Set); err != nil {
		return 0, err
	}

	count := 0
	for r := range clean.Height {
		inside := false
		var corner Pipe
		for c := range clean.Width {
			switch pipe := clean.At(grid.Point{Row: r, Col: c}); pipe {
			case Vertical:
				inside = !inside
			case BendNE, BendSE:
				corner = pipe
			case BendNW:
				if corner == BendSE {
					inside = !inside
				}
			case BendSW:
				if corner == BendNE {
					inside = !inside
				}
			case Ground:
				if inside {
					count++
				}
			}
		}
	}
	return count, nil
}
