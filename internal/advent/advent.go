// Package advent carries the small harness shared by the puzzle
// binaries: the Solution descriptor, the runner that prints the two-part
// answer block, and debug-log configuration.
package advent

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Solution describes one day's puzzle: the committed input embedded at
// build time and the two part solvers. Day packages export exactly one
// value of this type.
type Solution struct {
	Day   int
	Name  string
	Input string
	Part1 func(input string) (int, error)
	Part2 func(input string) (int, error)
}

// Result holds the two computed answers of one day.
type Result struct {
	Part1 int
	Part2 int
}

// Run solves both parts of s against its embedded input, printing each
// answer to w as soon as it is computed:
//
//	## Part 1
//	 > 4361
//	## Part 2
//	 > 467835
//
// Wall time per part is logged at Debug level. A failed part aborts the
// run; answers printed so far stay printed.
func Run(w io.Writer, logger *slog.Logger, s Solution) (Result, error) {
	var res Result
	parts := []struct {
		n     int
		solve func(string) (int, error)
		out   *int
	}{
		{1, s.Part1, &res.Part1},
		{2, s.Part2, &res.Part2},
	}
	for _, part := range parts {
		start := time.Now()
		v, err := part.solve(s.Input)
		if err != nil {
			return res, fmt.Errorf("day %d part %d: %w", s.Day, part.n, err)
		}
		*part.out = v
		logger.Debug(
			"part solved",
			slog.Int("day", s.Day),
			slog.Int("part", part.n),
			slog.Duration("elapsed", time.Since(start)),
		)
		fmt.Fprintf(w, "## Part %d\n > %d\n", part.n, v)
	}
	return res, nil
}
