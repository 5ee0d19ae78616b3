// Package prob16 solves the day 16 puzzle: a contraption of mirrors and
// splitters bouncing a light beam around a grid. Part 1 counts the tiles
// energized by a beam entering top left, part 2 finds the entry that
// energizes the most.
package prob16

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/advent/internal/grid"
)

var Log = logrus.New()

// Tile is one contraption cell. The zero value is empty space.
type Tile uint8

const (
	Empty      Tile = iota // '.'
	SplitV                 // '|'
	SplitH                 // '-'
	MirrorUp               // '/'
	MirrorDown             // '\'
)

func parseTile(b byte) (Tile, error) {
	switch b {
	case '.':
		return Empty, nil
	case '|':
		return SplitV, nil
	case '-':
		return SplitH, nil
	case '/':
		return MirrorUp, nil
	case '\\':
		return MirrorDown, nil
	}
	return 0, fmt.Errorf("unknown tile %q", b)
}

func (t Tile) String() string {
	switch t {
	case SplitV:
		return "|"
	case SplitH:
		return "-"
	case MirrorUp:
		return "/"
	case MirrorDown:
		return `\`
	default:
		return "."
	}
}

// deflect returns the directions a beam heading d leaves the tile on:
// mirrors turn it, splitters hit side-on fan it into two, anything else
// passes it through.
func (t Tile) deflect(d grid.Direction) []grid.Direction {
	switch t {
	case SplitV:
		if d == grid.East || d == grid.West {
			return []grid.Direction{grid.North, grid.South}
		}
	case SplitH:
		if d == grid.North || d == grid.South {
			return []grid.Direction{grid.East, grid.West}
		}
	case MirrorUp: // '/'
		switch d {
		case grid.North:
			return []grid.Direction{grid.East}
		case grid.East:
			return []grid.Direction{grid.North}
		case grid.South:
			return []grid.Direction{grid.West}
		case grid.West:
			return []grid.Direction{grid.South}
		}
	case MirrorDown: // '\'
		switch d {
		case grid.North:
			return []grid.Direction{grid.West}
		case grid.East:
			return []grid.Direction{grid.South}
		case grid.South:
			return []grid.Direction{grid.East}
		case grid.West:
			return []grid.Direction{grid.North}
		}
	}
	return []grid.Direction{d}
}

// Layout is the parsed contraption.
type Layout struct {
	tiles *grid.Grid[Tile]
}

func ParseLayout(input string) (*Layout, error) {
	tiles, err := grid.Parse(input, parseTile)
	if err != nil {
		return nil, err
	}
	return &Layout{tiles: tiles}, nil
}

// beam is a ray of light: the tile it is on and where it is heading.
type beam struct {
	at      grid.Point
	heading grid.Direction
}

func (b beam) String() string {
	return fmt.Sprintf("%s %s", b.at, b.heading)
}

// energized traces a beam entering at entry and returns the number of
// tiles it crosses. A per-tile bitmask of seen headings stops repeat
// beams, so split loops terminate.
func (l *Layout) energized(entry beam) int {
	seen := make([]uint8, l.tiles.Width*l.tiles.Height)
	queue := []beam{entry}
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]

		i := l.tiles.Index(b.at)
		bit := uint8(1) << b.heading
		if seen[i]&bit != 0 {
			continue
		}
		seen[i] |= bit

		for _, d := range l.tiles.At(b.at).deflect(b.heading) {
			next := b.at.Move(d)
			if l.tiles.InBounds(next) {
				queue = append(queue, beam{at: next, heading: d})
			}
		}
	}

	count := 0
	for _, s := range seen {
		if s != 0 {
			count++
		}
	}

	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.WithFields(logrus.Fields{
			"entry": entry,
			"tiles": count,
		}).Debug("beam traced\n" + l.render(seen))
	}

	return count
}

// render draws the contraption with energized tiles as '#'.
func (l *Layout) render(seen []uint8) string {
	var b strings.Builder
	for p := range l.tiles.Points() {
		if p.Col == 0 && p.Row > 0 {
			b.WriteByte('\n')
		}
		if seen[l.tiles.Index(p)] != 0 {
			b.WriteByte('#')
		} else {
			b.WriteString(l.tiles.At(p).String())
		}
	}
	return b.String()
}

// Part1 counts the tiles energized by a beam entering the top-left
// corner heading east.
func Part1(input string) (int, error) {
	l, err := ParseLayout(input)
	if err != nil {
		return 0, err
	}
	return l.energized(beam{at: grid.Point{}, heading: grid.East}), nil
}

// Part2 returns the best energized count over every edge entry: top row
// beams head south, bottom row north, left column east, right column
// west.
func Part2(input string) (int, error) {
	l, err := ParseLayout(input)
	if err != nil {
		return 0, err
	}
	best := 0
	for c := range l.tiles.Width {
		best = max(best, l.energized(beam{at: grid.Point{Row: 0, Col: c}, heading: grid.South}))
		best = max(best, l.energized(beam{at: grid.Point{Row: l.tiles.Height - 1, Col: c}, heading: grid.North}))
	}
	for r := range l.tiles.Height {
		best = max(best, l.energized(beam{at: grid.Point{Row: r, Col: 0}, heading: grid.East}))
		best = max(best, l.energized(beam{at: grid.Point{Row: r, Col: l.tiles.Width - 1}, heading: grid.West}))
	}
	return best, nil
}
