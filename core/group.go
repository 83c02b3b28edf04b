package core

// A Group holds a subset of the tournament's players and the
// full round robin of matches between them.
type Group struct {
	// The group's index among the tournament's groups
	Id int

	// The group members in seeding order
	Players []Player

	// One match per unordered pair of members, ordered
	// lexicographically by the member indices
	Matches []*Match
}

// Returns true when every match of the group has a result.
func (g *Group) Complete() bool {
	for _, m := range g.Matches {
		if !m.Resolved() {
			return false
		}
	}
	return true
}

// Returns the group's matches that have no result yet, in
// match order.
func (g *Group) OpenMatches() []*Match {
	open := make([]*Match, 0, len(g.Matches))
	for _, m := range g.Matches {
		if !m.Resolved() {
			open = append(open, m)
		}
	}
	return open
}

func (g *Group) matchById(id int) *Match {
	for _, m := range g.Matches {
		if m.Id() == id {
			return m
		}
	}
	return nil
}

// Distributes the players into numGroups groups by seeding
// order: the player with seed index i goes into group i mod
// numGroups. This spreads the top seeds across the groups and
// keeps the group sizes within 1 of each other.
func groupPlayers(players []Player, numGroups int) [][]Player {
	maxGroupSize := len(players) / numGroups
	if len(players)%numGroups != 0 {
		maxGroupSize += 1
	}

	groups := make([][]Player, numGroups)
	for i := range groups {
		groups[i] = make([]Player, 0, maxGroupSize)
	}

	for i, p := range players {
		groupI := i % numGroups
		groups[groupI] = append(groups[groupI], p)
	}

	return groups
}

func newGroup(id int, players []Player, ids *idSource) *Group {
	numMatches := len(players) * (len(players) - 1) / 2
	matches := make([]*Match, 0, numMatches)

	for i := range players {
		for j := i + 1; j < len(players); j += 1 {
			matches = append(matches, newMatch(players[i], players[j], ids.nextId()))
		}
	}

	return &Group{
		Id:      id,
		Players: players,
		Matches: matches,
	}
}
