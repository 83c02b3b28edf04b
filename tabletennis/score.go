// Package tabletennis implements the core.Score interface with
// the set score rules of table tennis: a set goes to 11 points
// and has to be won by a margin of two, a match is won by the
// first player to take a fixed number of sets.
package tabletennis

import (
	"errors"

	"github.com/pingpongcup/tournament/core"
)

var (
	ErrPointsZero = errors.New("winning points are zero or less")
	ErrSetsZero   = errors.New("winning sets are zero or less")

	ErrUndetermined = errors.New("the winner is undeterminable from the score")

	ErrEmpty           = errors.New("empty score")
	ErrUndeterminedSet = errors.New("a set has equal points")
	ErrUnequalSets     = errors.New("opponents have unequal number of sets")
	ErrTooManySets     = errors.New("too many sets")
	ErrTooFewSets      = errors.New("the score does not contain a decided match")
	ErrNegativePoints  = errors.New("negative points")
	ErrTooFewPoints    = errors.New("set winner points are less than the winning point setting")
	ErrInvalidMargin   = errors.New("the set was not won by a two point margin")
	ErrUnneededSets    = errors.New("score contains unneeded extra sets")
	ErrEqualSetWins    = errors.New("both opponents won an equal number of sets")
)

type ScoreSettings struct {
	WinningPoints, WinningSets int
}

// Creates the settings for score validation. winningPoints is
// the points needed to take a set (11 under standard rules),
// winningSets the sets needed to take the match (3 in a best
// of five).
func NewScoreSettings(winningPoints, winningSets int) (ScoreSettings, error) {
	settings := ScoreSettings{winningPoints, winningSets}

	if winningPoints <= 0 {
		return settings, ErrPointsZero
	}
	if winningSets <= 0 {
		return settings, ErrSetsZero
	}

	return settings, nil
}

// The standard rules: sets to 11 points, best of five.
func StandardSettings() ScoreSettings {
	return ScoreSettings{WinningPoints: 11, WinningSets: 3}
}

type score struct {
	a, b []int
}

func (s *score) Points1() []int {
	return s.a
}

func (s *score) Points2() []int {
	return s.b
}

func (s *score) GetWinner() (int, error) {
	setWins := 0
	for i := 0; i < len(s.a); i++ {
		if s.a[i] > s.b[i] {
			setWins += 1
		}
		if s.b[i] > s.a[i] {
			setWins -= 1
		}
	}

	if setWins > 0 {
		return 0, nil
	}
	if setWins < 0 {
		return 1, nil
	}

	return -1, ErrUndetermined
}

func (s *score) Invert() core.Score {
	score := &score{
		a: s.b,
		b: s.a,
	}
	return score
}

// Creates a validated score from the two point slices, one
// entry per set.
//
// Every set has to go to a winner with at least the winning
// points and, beyond them, exactly a two point margin (the
// deuce rule has no point cap in table tennis). The match has
// to be decided with no sets to spare.
func NewScore(a, b []int, settings ScoreSettings) (*score, error) {
	switch {
	case len(a) == 0 || len(b) == 0:
		return nil, ErrEmpty
	case len(a) != len(b):
		return nil, ErrUnequalSets
	case len(a) < settings.WinningSets:
		return nil, ErrTooFewSets
	case len(a) >= 2*settings.WinningSets:
		return nil, ErrTooManySets
	}

	setWinsA, setWinsB := 0, 0
	for i := 0; i < len(a); i++ {
		w := max(a[i], b[i])
		l := min(a[i], b[i])

		switch {
		case setWinsA == settings.WinningSets || setWinsB == settings.WinningSets:
			return nil, ErrUnneededSets
		case w == l:
			return nil, ErrUndeterminedSet
		case l < 0:
			return nil, ErrNegativePoints
		case w < settings.WinningPoints:
			return nil, ErrTooFewPoints
		case w > settings.WinningPoints && w-l != 2:
			return nil, ErrInvalidMargin
		case w == settings.WinningPoints && w-l < 2:
			return nil, ErrInvalidMargin
		}

		if a[i] > b[i] {
			setWinsA += 1
		} else {
			setWinsB += 1
		}
	}

	if setWinsA == setWinsB {
		return nil, ErrEqualSetWins
	}
	if setWinsA != settings.WinningSets && setWinsB != settings.WinningSets {
		return nil, ErrTooFewSets
	}

	return &score{a, b}, nil
}
