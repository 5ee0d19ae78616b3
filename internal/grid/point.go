package grid

import "fmt"

// Direction is one of the four cardinal directions.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Cardinal lists the directions in scanning order.
var Cardinal = [4]Direction{North, East, South, West}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "!"
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Offset returns the row and column deltas of a single step in
// direction d.
func (d Direction) Offset() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	default:
		return 0, -1
	}
}

// Point addresses a grid cell by row and column, counted from the
// top-left corner.
type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Move returns the neighboring point one step in direction d.
func (p Point) Move(d Direction) Point {
	dr, dc := d.Offset()
	return Point{p.Row + dr, p.Col + dc}
}
