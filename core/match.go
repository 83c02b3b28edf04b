package core

import (
	"fmt"
	"strings"
)

// The result of a match.
//
// The points are slices to model the sets that a table tennis
// match consists of.
type Score interface {
	// Points of first opponent, one entry per set
	Points1() []int

	// Points of second opponent, one entry per set
	Points2() []int

	// Returns either 0 or 1 whether the first opponent
	// won or the second.
	// Errors when no winner is determined.
	GetWinner() (int, error)

	// Returns a new Score that has Points1 and Points2 flipped
	Invert() Score
}

// A Match between two players of one group.
//
// Both players are known from the moment the group is created.
// The result is unset until it is recorded and immutable
// afterwards.
type Match struct {
	Player1 Player
	Player2 Player

	winner   Player
	score    Score
	resolved bool

	id int
}

func (m *Match) Id() int {
	return m.id
}

// Returns true once a result has been recorded.
func (m *Match) Resolved() bool {
	return m.resolved
}

// Returns the recorded winner. The bool is false while the
// match has no result.
func (m *Match) Winner() (Player, bool) {
	return m.winner, m.resolved
}

// Returns the recorded set score or nil when no result or no
// score detail was recorded.
func (m *Match) Score() Score {
	return m.score
}

func (m *Match) ContainsPlayer(player Player) bool {
	return m.Player1 == player || m.Player2 == player
}

func (m *Match) OtherPlayer(player Player) Player {
	if player == m.Player1 {
		return m.Player2
	}
	if player == m.Player2 {
		return m.Player1
	}

	panic("Player is not in the Match")
}

// Records the match result. The result is validated fully
// before any mutation.
func (m *Match) record(winner Player, score Score) error {
	if m.resolved {
		return ErrAlreadyRecorded
	}
	if err := validateResult(m.Player1, m.Player2, winner, score); err != nil {
		return err
	}

	m.winner = winner
	m.score = score
	m.resolved = true

	return nil
}

// Checks that the winner is one of the two opponents and that
// the score detail, if present, declares the same winner.
func validateResult(player1, player2, winner Player, score Score) error {
	if winner != player1 && winner != player2 {
		return ErrInvalidResult
	}

	if score != nil {
		winnerIndex, err := score.GetWinner()
		if err != nil {
			return ErrInvalidResult
		}
		scoreWinner := player1
		if winnerIndex == 1 {
			scoreWinner = player2
		}
		if scoreWinner != winner {
			return ErrInvalidResult
		}
	}

	return nil
}

func (m *Match) String() string {
	var sb strings.Builder
	sb.WriteString(m.Player1.Name)
	sb.WriteString(" vs. ")
	sb.WriteString(m.Player2.Name)

	if m.score != nil {
		p1, p2 := m.score.Points1(), m.score.Points2()
		sb.WriteRune('\t')
		for i := 0; i < len(p1); i++ {
			setString := fmt.Sprintf("%v - %v ", p1[i], p2[i])
			sb.WriteString(setString)
		}
	}

	return sb.String()
}

func newMatch(player1, player2 Player, id int) *Match {
	return &Match{
		Player1: player1,
		Player2: player2,
		id:      id,
	}
}
