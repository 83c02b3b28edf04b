package core

import (
	"errors"
	"testing"
)

// Resolves all open group matches with the lower seed winning.
func completeGroups(t *testing.T, tournament *Tournament) {
	t.Helper()
	for _, g := range tournament.Groups {
		for _, m := range g.OpenMatches() {
			winner := m.Player1
			if m.Player2.Seed < winner.Seed {
				winner = m.Player2
			}
			err := tournament.RecordGroupResult(g.Id, m.Id(), winner, NewScore(11, 5))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
	}
}

func TestTournamentConfigErrors(t *testing.T) {
	_, err := NewTournament([]string{"A"}, 1, 1)
	if err != ErrTooFewPlayers {
		t.Fatal("a single player did not error")
	}

	_, err = NewTournament(PlayerSlice(4), 0, 1)
	if err != ErrTooFewGroups {
		t.Fatal("zero groups did not error")
	}

	_, err = NewTournament(PlayerSlice(4), 2, 0)
	if err != ErrTooFewAdvancers {
		t.Fatal("zero advancers did not error")
	}

	_, err = NewTournament(PlayerSlice(4), 2, 3)
	if err != ErrTooManyAdvancers {
		t.Fatal("more advancers than group members did not error")
	}
	if !IsConfigError(err) {
		t.Fatal("a config error is not recognized as one")
	}

	if IsConfigError(ErrMatchNotFound) {
		t.Fatal("a non-config error is recognized as one")
	}
}

func TestFullTournament(t *testing.T) {
	tournament, err := NewTournament([]string{"Alice", "Bob", "Charlie", "Dave"}, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tournament.Phase() != PhaseGroupPlay {
		t.Fatal("a fresh tournament is not in group play")
	}
	if tournament.PlayableNodes() != nil {
		t.Fatal("a tournament without a bracket has playable nodes")
	}

	completeGroups(t, tournament)

	bracket, err := tournament.BuildBracket()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tournament.Phase() != PhaseBracketBuilt {
		t.Fatal("building the bracket did not advance the phase")
	}

	// Group winners meet the other group's runner-up
	semis := bracket.Rounds[0]
	p1, p2, _ := semis[0].Players()
	eq1 := p1.Name == "Alice" && p2.Name == "Dave"
	p1, p2, _ = semis[1].Players()
	eq2 := p1.Name == "Bob" && p2.Name == "Charlie"
	if !eq1 || !eq2 {
		t.Fatal("the semi-final pairings are wrong")
	}

	group := tournament.Groups[0]
	err = tournament.RecordGroupResult(group.Id, group.Matches[0].Id(), group.Players[0], nil)
	var wrongPhase *WrongPhaseError
	if !errors.As(err, &wrongPhase) {
		t.Fatal("a group result after the bracket was built did not error")
	}
	eq1 = wrongPhase.Required == PhaseGroupPlay
	eq2 = wrongPhase.Current == PhaseBracketBuilt
	if !eq1 || !eq2 {
		t.Fatal("the wrong phase error does not carry the phases")
	}

	if _, ok := tournament.Champion(); ok {
		t.Fatal("a tournament without a final result has a champion")
	}

	for _, semi := range tournament.PlayableNodes() {
		winner, _, _ := semi.Players()
		err := tournament.RecordBracketResult(semi.Id(), winner, NewScore(11, 8))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if tournament.Phase() != PhaseKnockoutPlay {
		t.Fatal("a knockout result did not advance the phase")
	}

	final := bracket.Root
	alice, bob, ok := final.Players()
	if !ok {
		t.Fatal("the final is not ready after both semi-finals")
	}
	eq1 = alice.Name == "Alice"
	eq2 = bob.Name == "Bob"
	if !eq1 || !eq2 {
		t.Fatal("the semi-final winners did not advance to the final")
	}

	err = tournament.RecordBracketResult(final.Id(), alice, NewScore(11, 9))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	champion, ok := tournament.Champion()
	if !ok || champion.Name != "Alice" {
		t.Fatal("the final winner is not the champion")
	}
	if tournament.Phase() != PhaseComplete {
		t.Fatal("the final result did not complete the tournament")
	}
	if len(tournament.PlayableNodes()) != 0 {
		t.Fatal("a complete tournament has playable nodes")
	}
}

func TestBracketBeforeGroupsComplete(t *testing.T) {
	tournament, _ := NewTournament(PlayerSlice(4), 2, 2)

	_, err := tournament.BuildBracket()
	if err != ErrGroupsIncomplete {
		t.Fatal("building with open group matches did not error")
	}

	err = tournament.RecordBracketResult(0, tournament.Players[0], nil)
	var wrongPhase *WrongPhaseError
	if !errors.As(err, &wrongPhase) {
		t.Fatal("a bracket result before the bracket exists did not error")
	}
	if wrongPhase.Current != PhaseGroupPlay {
		t.Fatal("the wrong phase error does not carry the current phase")
	}
}

func TestBuildBracketIdempotence(t *testing.T) {
	tournament, _ := NewTournament(PlayerSlice(4), 2, 2)
	completeGroups(t, tournament)

	bracket1, err := tournament.BuildBracket()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bracket2, err := tournament.BuildBracket()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bracket1 != bracket2 {
		t.Fatal("a repeated build did not return the same bracket")
	}

	semi := tournament.PlayableNodes()[0]
	winner, _, _ := semi.Players()
	tournament.RecordBracketResult(semi.Id(), winner, nil)

	_, err = tournament.BuildBracket()
	if err != ErrBracketStarted {
		t.Fatal("building after a knockout result did not error")
	}
}

func TestUnknownGroupAndMatch(t *testing.T) {
	tournament, _ := NewTournament(PlayerSlice(4), 2, 1)

	err := tournament.RecordGroupResult(7, 0, tournament.Players[0], nil)
	if err != ErrGroupNotFound {
		t.Fatal("an unknown group id did not error")
	}

	err = tournament.RecordGroupResult(0, 1234, tournament.Players[0], nil)
	if err != ErrMatchNotFound {
		t.Fatal("an unknown match id did not error")
	}

	_, err = tournament.Standings(-1)
	if err != ErrGroupNotFound {
		t.Fatal("standings for an unknown group did not error")
	}
}

func TestSingleAdvancer(t *testing.T) {
	tournament, _ := NewTournament(PlayerSlice(2), 1, 1)
	completeGroups(t, tournament)

	_, err := tournament.BuildBracket()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The group winner takes the uncontested final by bye
	champion, ok := tournament.Champion()
	if !ok || champion.Seed != 1 {
		t.Fatal("the sole advancer is not the champion")
	}
	if tournament.Phase() != PhaseComplete {
		t.Fatal("a bracket of one advancer did not complete the tournament")
	}
}
