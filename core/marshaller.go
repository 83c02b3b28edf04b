package core

import "encoding/json"

// The JSON view of a tournament is the data contract for the
// graphical front end: it carries everything a renderer needs
// to draw the groups, the standings, the bracket and the
// champion without reaching into the core types.

func marshalTournament(t *Tournament) map[string]any {
	groups := make([]map[string]any, len(t.Groups))
	for i, g := range t.Groups {
		groups[i] = marshalGroup(g)
	}

	result := map[string]any{
		"phase":   t.phase.String(),
		"players": t.Players,
		"groups":  groups,
	}

	if t.bracket != nil {
		result["bracket"] = marshalBracket(t.bracket)
	}
	if champion, ok := t.Champion(); ok {
		result["champion"] = champion
	}

	return result
}

func marshalGroup(g *Group) map[string]any {
	matches := make([]map[string]any, len(g.Matches))
	for i, m := range g.Matches {
		matches[i] = marshalMatch(m)
	}

	result := map[string]any{
		"id":        g.Id,
		"players":   g.Players,
		"matches":   matches,
		"standings": rankGroup(g),
	}

	return result
}

func marshalMatch(m *Match) map[string]any {
	result := map[string]any{
		"id":      m.Id(),
		"player1": m.Player1.Seed,
		"player2": m.Player2.Seed,
		"score":   marshalScore(m.Score()),
	}
	if winner, ok := m.Winner(); ok {
		result["winner"] = winner.Seed
	}
	return result
}

func marshalBracket(b *Bracket) map[string]any {
	rounds := make([][]map[string]any, len(b.Rounds))
	for i, round := range b.Rounds {
		roundNodes := make([]map[string]any, len(round))
		for i, node := range round {
			roundNodes[i] = marshalNode(node)
		}
		rounds[i] = roundNodes
	}

	result := map[string]any{
		"rounds": rounds,
	}

	return result
}

func marshalNode(n *BracketNode) map[string]any {
	result := map[string]any{
		"id":    n.Id(),
		"slot1": marshalSlot(n.Slot1),
		"slot2": marshalSlot(n.Slot2),
		"score": marshalScore(n.Score()),
	}
	if winner, ok := n.Winner(); ok {
		result["winner"] = winner.Seed
	}
	return result
}

// A slot renders as the occupying player's seed, "b" for a
// bye, or "" while it is unresolved.
func marshalSlot(slot *Slot) any {
	if slot.IsBye() {
		return "b"
	}
	if p, ok := slot.Player(); ok {
		return p.Seed
	}
	return ""
}

func marshalScore(score Score) [][]int {
	points := make([][]int, 0, 2)
	if score != nil {
		points = append(points, score.Points1(), score.Points2())
	}
	return points
}

func (t *Tournament) MarshalJSON() ([]byte, error) {
	anymap := marshalTournament(t)
	return json.Marshal(anymap)
}
