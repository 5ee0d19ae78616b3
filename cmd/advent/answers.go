package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/vancomm/advent/internal/advent"
	"github.com/vancomm/advent/internal/config"
	"gopkg.in/yaml.v3"
)

//go:embed answers.yaml
var defaultAnswers []byte

// answerKey records a day's accepted answers. A nil part has not been
// recorded yet and is skipped by the check.
type answerKey struct {
	Part1 *int `yaml:"part1"`
	Part2 *int `yaml:"part2"`
}

// loadAnswers parses the embedded answers file, or the one ADVENT_ANSWERS
// points at.
func loadAnswers() (map[int]answerKey, error) {
	data := defaultAnswers
	if path := config.AnswersPath(); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read answers file: %w", err)
		}
		data = b
	}
	var answers map[int]answerKey
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("unable to parse answers file: %w", err)
	}
	return answers, nil
}

// checkDay compares computed answers with recorded ones, printing a line
// per mismatch.
func checkDay(res advent.Result, key answerKey) bool {
	ok := true
	parts := []struct {
		n    int
		have int
		want *int
	}{
		{1, res.Part1, key.Part1},
		{2, res.Part2, key.Part2},
	}
	for _, part := range parts {
		if part.want == nil {
			continue
		}
		if part.have != *part.want {
			fmt.Printf("!! part %d: have %d, want %d\n", part.n, part.have, *part.want)
			ok = false
		}
	}
	return ok
}
