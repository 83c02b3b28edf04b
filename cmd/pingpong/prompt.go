package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pingpongcup/tournament/core"
	"github.com/pingpongcup/tournament/tabletennis"
)

// A single reader over stdin so that input buffered past one
// prompt is not lost to the next. Keeps piped result scripts
// working.
var stdin = bufio.NewReader(os.Stdin)

func prompt(message string) string {
	fmt.Fprint(os.Stderr, message)
	input, _ := stdin.ReadString('\n')
	return strings.TrimRight(input, "\n")
}

// Parses a comma separated list of set scores like
// "11-7,7-11,11-9" into a validated score.
func parseScore(line string, settings tabletennis.ScoreSettings) (core.Score, error) {
	a, b, err := parseSets(line)
	if err != nil {
		return nil, err
	}
	return tabletennis.NewScore(a, b, settings)
}

func parseSets(line string) ([]int, []int, error) {
	sets := strings.Split(strings.TrimSpace(line), ",")

	a := make([]int, 0, len(sets))
	b := make([]int, 0, len(sets))
	for _, set := range sets {
		points1, points2, ok := strings.Cut(strings.TrimSpace(set), "-")
		if !ok {
			return nil, nil, fmt.Errorf("set %q is not of the form 11-7", set)
		}

		p1, err := strconv.Atoi(strings.TrimSpace(points1))
		if err != nil {
			return nil, nil, fmt.Errorf("set %q does not contain a number: %w", set, err)
		}
		p2, err := strconv.Atoi(strings.TrimSpace(points2))
		if err != nil {
			return nil, nil, fmt.Errorf("set %q does not contain a number: %w", set, err)
		}

		a = append(a, p1)
		b = append(b, p2)
	}

	return a, b, nil
}
