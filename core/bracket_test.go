package core

import (
	"fmt"
	"testing"
)

// Creates numGroups*perGroup qualifiers in overall seeding
// order: all group winners first, then the runners-up, ...
func testQualifiers(numGroups, perGroup int) []*qualifier {
	quals := make([]*qualifier, 0, numGroups*perGroup)
	for place := 0; place < perGroup; place++ {
		for group := 0; group < numGroups; group++ {
			quals = append(quals, &qualifier{
				player: Player{
					Seed: place*numGroups + group + 1,
					Name: fmt.Sprintf("G%dP%d", group+1, place+1),
				},
				group: group,
				place: place,
			})
		}
	}
	return quals
}

func TestArrangeSeeds(t *testing.T) {
	matchups := arrangeSeeds(2)

	eq1 := len(matchups) == 2
	eq2 := *matchups[0] == seedMatchup{0, 3}
	eq3 := *matchups[1] == seedMatchup{1, 2}
	if !eq1 || !eq2 || !eq3 {
		t.Fatal("the four seed arrangement is wrong")
	}

	matchups = arrangeSeeds(3)

	eq1 = len(matchups) == 4
	eq2 = *matchups[0] == seedMatchup{0, 7}
	eq3 = *matchups[1] == seedMatchup{3, 4}
	eq4 := *matchups[2] == seedMatchup{1, 6}
	eq5 := *matchups[3] == seedMatchup{2, 5}
	if !eq1 || !eq2 || !eq3 || !eq4 || !eq5 {
		t.Fatal("the eight seed arrangement is wrong")
	}
}

func TestBracketShape(t *testing.T) {
	quals := testQualifiers(3, 2)
	bracket := buildBracket(quals, &idSource{})

	eq1 := len(bracket.Rounds) == 3
	eq2 := len(bracket.Nodes) == 7
	eq3 := len(bracket.Rounds[0]) == 4
	eq4 := bracket.Root == bracket.Rounds[2][0]
	if !eq1 || !eq2 || !eq3 || !eq4 {
		t.Fatal("6 advancers did not produce a tree of depth 3 with 7 nodes")
	}

	numByes := 0
	for _, node := range bracket.Rounds[0] {
		if node.HasBye() {
			numByes += 1
			winner, ok := node.Winner()
			if !ok {
				t.Fatal("a bye node is not resolved")
			}
			if winner.Seed > 2 {
				t.Fatal("a bye went to a player who is not a top seed")
			}
		}
	}
	if numByes != 2 {
		t.Fatal("6 advancers in a bracket of 8 did not produce 2 byes")
	}
}

func TestGroupSeparation(t *testing.T) {
	quals := testQualifiers(3, 2)
	bracket := buildBracket(quals, &idSource{})

	for _, node := range bracket.Rounds[0] {
		if node.HasBye() {
			continue
		}
		player1, player2, ok := node.Players()
		if !ok {
			t.Fatal("a first round node without a bye is not ready")
		}

		group1 := (player1.Seed - 1) % 3
		group2 := (player2.Seed - 1) % 3
		if group1 == group2 {
			t.Fatalf("%v and %v are from the same group but meet in the first round", player1, player2)
		}
	}
}

func TestBracketPropagation(t *testing.T) {
	quals := testQualifiers(3, 1)
	bracket := buildBracket(quals, &idSource{})

	eq1 := len(bracket.Rounds) == 2
	eq2 := len(bracket.Nodes) == 3
	if !eq1 || !eq2 {
		t.Fatal("3 advancers did not produce a tree of depth 2")
	}

	playable := bracket.PlayableNodes()
	if len(playable) != 1 {
		t.Fatal("exactly one node should be playable at the start")
	}

	semi := playable[0]
	if semi.HasBye() {
		t.Fatal("the bye node is listed as playable")
	}

	err := bracket.recordResult(bracket.Root.Id(), quals[0].player, nil)
	if err != ErrNodeNotReady {
		t.Fatal("recording the final before the semi-final did not error")
	}

	_, player2, _ := semi.Players()
	err = bracket.recordResult(semi.Id(), player2, NewScore(3, 11))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bracket.Root.Ready() {
		t.Fatal("the final is not ready after the semi-final resolved")
	}
	finalist1, finalist2, _ := bracket.Root.Players()
	eq1 = finalist1 == quals[0].player
	eq2 = finalist2 == player2
	if !eq1 || !eq2 {
		t.Fatal("the semi-final winner and the bye receiver did not advance to the final")
	}

	err = bracket.recordResult(bracket.Root.Id(), finalist2, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	winner, ok := bracket.Root.Winner()
	if !ok || winner != finalist2 {
		t.Fatal("the root winner is not the recorded finalist")
	}
	if len(bracket.PlayableNodes()) != 0 {
		t.Fatal("a finished bracket still has playable nodes")
	}
}

func TestByeNodeRejectsResults(t *testing.T) {
	quals := testQualifiers(3, 1)
	bracket := buildBracket(quals, &idSource{})

	var byeNode *BracketNode
	for _, node := range bracket.Rounds[0] {
		if node.HasBye() {
			byeNode = node
		}
	}
	if byeNode == nil {
		t.Fatal("3 advancers did not produce a bye node")
	}

	winner, _ := byeNode.Winner()
	err := bracket.recordResult(byeNode.Id(), winner, nil)
	if err != ErrAlreadyRecorded {
		t.Fatal("recording a result on a bye node did not error")
	}
}

func TestSingleQualifier(t *testing.T) {
	quals := testQualifiers(1, 1)
	bracket := buildBracket(quals, &idSource{})

	winner, ok := bracket.Root.Winner()
	if !ok || winner != quals[0].player {
		t.Fatal("a single advancer is not the immediate bracket winner")
	}
	if len(bracket.PlayableNodes()) != 0 {
		t.Fatal("a single advancer bracket has playable nodes")
	}
}

func TestUnknownNode(t *testing.T) {
	quals := testQualifiers(2, 1)
	bracket := buildBracket(quals, &idSource{})

	err := bracket.recordResult(1234, quals[0].player, nil)
	if err != ErrNodeNotFound {
		t.Fatal("an unknown node id did not error")
	}
}
