package core

import (
	"errors"
	"fmt"
)

var (
	ErrTooFewPlayers    = errors.New("a tournament needs at least 2 players")
	ErrTooFewGroups     = errors.New("the number of groups has to be at least 1")
	ErrTooFewAdvancers  = errors.New("the number of advancers per group has to be at least 1")
	ErrTooManyAdvancers = errors.New("not enough players for the requested group and advancer counts")

	ErrGroupNotFound = errors.New("no group with this id")
	ErrMatchNotFound = errors.New("no match with this id")
	ErrNodeNotFound  = errors.New("no bracket node with this id")

	ErrAlreadyRecorded = errors.New("the result of this match is already recorded")
	ErrInvalidResult   = errors.New("the submitted result does not fit the match")
	ErrNodeNotReady    = errors.New("the opponents of this bracket node are not resolved yet")

	ErrGroupsIncomplete = errors.New("not all group matches have a result")
	ErrBracketStarted   = errors.New("the knockout bracket already has a recorded result")
)

// Reports whether err is one of the setup validation errors
// that NewTournament can return.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrTooFewPlayers) ||
		errors.Is(err, ErrTooFewGroups) ||
		errors.Is(err, ErrTooFewAdvancers) ||
		errors.Is(err, ErrTooManyAdvancers)
}

// A WrongPhaseError is returned when an operation was called
// outside of the tournament phase that it is valid in.
type WrongPhaseError struct {
	Required Phase
	Current  Phase
}

func (e *WrongPhaseError) Error() string {
	return fmt.Sprintf(
		"operation requires the %v phase but the tournament is in the %v phase",
		e.Required, e.Current,
	)
}
