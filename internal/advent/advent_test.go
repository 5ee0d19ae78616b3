package advent

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun(t *testing.T) {
	s := Solution{
		Day:   1,
		Name:  "test",
		Input: "2 3\n",
		Part1: func(input string) (int, error) {
			assert.Equal(t, "2 3\n", input)
			return 5, nil
		},
		Part2: func(input string) (int, error) {
			return 6, nil
		},
	}

	var b strings.Builder
	res, err := Run(&b, discard(), s)
	require.NoError(t, err)

	assert.Equal(t, Result{Part1: 5, Part2: 6}, res)
	assert.Equal(t, "## Part 1\n > 5\n## Part 2\n > 6\n", b.String())
}

func TestRunPart1Error(t *testing.T) {
	bad := fmt.Errorf("bad input")
	s := Solution{
		Day:   5,
		Part1: func(string) (int, error) { return 0, bad },
		Part2: func(string) (int, error) { return 0, nil },
	}

	var b strings.Builder
	_, err := Run(&b, discard(), s)
	require.ErrorIs(t, err, bad)

	assert.ErrorContains(t, err, "day 5 part 1")
	assert.Empty(t, b.String(), "no answers should be printed")
}

func TestRunPart2Error(t *testing.T) {
	bad := fmt.Errorf("bad input")
	s := Solution{
		Day:   5,
		Part1: func(string) (int, error) { return 11, nil },
		Part2: func(string) (int, error) { return 0, bad },
	}

	var b strings.Builder
	_, err := Run(&b, discard(), s)
	require.ErrorIs(t, err, bad)

	assert.ErrorContains(t, err, "day 5 part 2")
	assert.Equal(t, "## Part 1\n > 11\n", b.String(), "part 1 stays printed")
}
