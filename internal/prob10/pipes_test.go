package prob10

import (
	_ "embed"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/advent/internal/grid"
)

//go:embed testdata/part1.txt
var examplePart1 string

//go:embed testdata/part2_simple.txt
var exampleSimple string

//go:embed testdata/part2_squeeze.txt
var exampleSqueeze string

//go:embed testdata/part2_large.txt
var exampleLarge string

//go:embed testdata/part2_junk.txt
var exampleJunk string

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func TestParseMapError(t *testing.T) {
	_, err := ParseMap("S-7\n|x|\nL-J\n")
	require.Error(t, err)
	assert.ErrorContains(t, err, `unknown pipe 'x'`)
	assert.ErrorContains(t, err, "line 2, column 2")
}

func TestFindStart(t *testing.T) {
	m, err := ParseMap(examplePart1)
	require.NoError(t, err)

	start, err := m.start()
	require.NoError(t, err)
	assert.Equal(t, grid.Point{Row: 2, Col: 0}, start)
}

func TestNoStart(t *testing.T) {
	m, err := ParseMap("F7\nLJ\n")
	require.NoError(t, err)

	_, err = m.start()
	assert.ErrorIs(t, err, ErrNoStart)
}

func TestStartDirections(t *testing.T) {
	m, err := ParseMap(examplePart1)
	require.NoError(t, err)

	dirs, err := m.startDirections(grid.Point{Row: 2, Col: 0})
	require.NoError(t, err)
	assert.Equal(t, []grid.Direction{grid.East, grid.South}, dirs)
}

func TestStartDirectionsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"one pipe", "S-.\n...\n"},
		{"three pipes", "-S-\n.|.\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m, err := ParseMap(test.input)
			require.NoError(t, err)

			start, err := m.start()
			require.NoError(t, err)

			_, err = m.startDirections(start)
			assert.ErrorContains(t, err, "want 2")
		})
	}
}

func TestStep(t *testing.T) {
	m, err := ParseMap(examplePart1)
	require.NoError(t, err)

	tests := []struct {
		name        string
		p           grid.Point
		entered     grid.Direction
		wantNext    grid.Point
		wantEntered grid.Direction
	}{
		{
			name:        "F entered from the south",
			p:           grid.Point{Row: 1, Col: 1},
			entered:     grid.South,
			wantNext:    grid.Point{Row: 1, Col: 2},
			wantEntered: grid.West,
		},
		{
			name:        "F entered from the east",
			p:           grid.Point{Row: 1, Col: 1},
			entered:     grid.East,
			wantNext:    grid.Point{Row: 2, Col: 1},
			wantEntered: grid.North,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			next, entered, err := m.step(test.p, test.entered)
			require.NoError(t, err)
			assert.Equal(t, test.wantNext, next)
			assert.Equal(t, test.wantEntered, entered)
		})
	}
}

func TestStepErrors(t *testing.T) {
	m, err := ParseMap(examplePart1)
	require.NoError(t, err)

	// (0, 4) holds a '-' whose east exit runs off the grid
	_, _, err = m.step(grid.Point{Row: 0, Col: 4}, grid.West)
	assert.ErrorContains(t, err, "off the grid")

	// a pipe has no exit on a side it does not connect
	_, _, err = m.step(grid.Point{Row: 1, Col: 1}, grid.North)
	assert.ErrorContains(t, err, "has no exit north")

	// ground is not a pipe
	_, _, err = m.step(grid.Point{Row: 1, Col: 0}, grid.North)
	assert.ErrorContains(t, err, "is not a pipe")
}

func TestResolveStart(t *testing.T) {
	tests := []struct {
		dirs []grid.Direction
		want Pipe
	}{
		{[]grid.Direction{grid.North, grid.South}, Vertical},
		{[]grid.Direction{grid.East, grid.West}, Horizontal},
		{[]grid.Direction{grid.East, grid.South}, BendSE},
		{[]grid.Direction{grid.North, grid.West}, BendNW},
	}
	for _, test := range tests {
		t.Run(test.want.String(), func(t *testing.T) {
			if have := resolveStart(test.dirs); have != test.want {
				t.Fatalf("have %v, want %v", have, test.want)
			}
		})
	}
}

func TestPart1Example(t *testing.T) {
	have, err := Part1(examplePart1)
	require.NoError(t, err)
	assert.Equal(t, 8, have)
}

func TestPart2Examples(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"simple", exampleSimple, 4},
		{"squeeze", exampleSqueeze, 4},
		{"large", exampleLarge, 8},
		{"junk", exampleJunk, 10},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			have, err := Part2(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.want, have)
		})
	}
}
