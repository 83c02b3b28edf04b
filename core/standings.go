package core

import (
	"cmp"
	"slices"
)

// A Standing is one player's tally within their group. It is
// derived from the group's resolved matches and recomputed on
// demand, never stored.
type Standing struct {
	Player Player `json:"player"`

	NumMatches int `json:"numMatches"`
	Wins       int `json:"wins"`
	Losses     int `json:"losses"`

	NumSets   int `json:"numSets"`
	SetWins   int `json:"setWins"`
	SetLosses int `json:"setLosses"`

	PointWins   int `json:"pointWins"`
	PointLosses int `json:"pointLosses"`

	SetDifference   int `json:"-"`
	PointDifference int `json:"-"`
}

func (s *Standing) updateDifferences() {
	s.SetDifference = s.SetWins - s.SetLosses
	s.PointDifference = s.PointWins - s.PointLosses
}

// Returns the group's standings ranked by the tournament's
// fixed tie-break rule.
//
// The rule is a fixed sequence of criteria:
//   - more match wins
//   - for a two-way tie: the head-to-head winner
//   - better set difference
//   - better point difference
//   - lower seed
//
// The seed criterion makes every comparison total so the
// ranking is always fully determined, even before all of the
// group's matches are resolved.
func rankGroup(g *Group) []*Standing {
	metrics := collectMetrics(g.Players, g.Matches)

	sortedByWins := sortByMetric(g.Players, metrics, func(s *Standing) int { return s.Wins })

	ranked := make([]*Standing, 0, len(g.Players))
	for _, tie := range sortedByWins {
		for _, p := range breakTie(tie, metrics, g.Matches) {
			ranked = append(ranked, metrics[p])
		}
	}

	return ranked
}

// Breaks the tie between players with the same amount of wins.
//
// The returned list is descending in rank and always fully
// broken because the last criterion, seed order, never ties.
func breakTie(tie []Player, metrics map[Player]*Standing, matches []*Match) []Player {
	tieSize := len(tie)
	if tieSize == 1 {
		return tie
	}
	if tieSize == 2 {
		if winner, ok := headToHead(tie[0], tie[1], matches); ok {
			return []Player{winner, otherOf(tie, winner)}
		}
	}

	sortedBySets := sortByMetric(tie, metrics, func(s *Standing) int { return s.SetDifference })
	if len(sortedBySets) > 1 {
		// Break emerged sub-ties
		broken := make([]Player, 0, tieSize)
		for _, subTie := range sortedBySets {
			broken = append(broken, breakTie(subTie, metrics, matches)...)
		}
		return broken
	}

	sortedByPoints := sortByMetric(tie, metrics, func(s *Standing) int { return s.PointDifference })
	if len(sortedByPoints) > 1 {
		broken := make([]Player, 0, tieSize)
		for _, subTie := range sortedByPoints {
			broken = append(broken, breakTie(subTie, metrics, matches)...)
		}
		return broken
	}

	bySeed := slices.Clone(tie)
	slices.SortFunc(bySeed, func(a, b Player) int { return cmp.Compare(a.Seed, b.Seed) })
	return bySeed
}

// Returns the winner of the resolved match between the two
// players. The bool is false when they have not played or
// their match has no result yet.
func headToHead(p1, p2 Player, matches []*Match) (Player, bool) {
	for _, m := range matches {
		if !m.ContainsPlayer(p1) || !m.ContainsPlayer(p2) {
			continue
		}
		return m.Winner()
	}
	return Player{}, false
}

func otherOf(pair []Player, player Player) Player {
	if pair[0] == player {
		return pair[1]
	}
	return pair[0]
}

// Sorts the players into descending buckets of one of the
// metrics returned by the getter.
func sortByMetric(players []Player, metrics map[Player]*Standing, getter func(s *Standing) int) [][]Player {
	buckets := make(map[int][]Player)

	for _, p := range players {
		metric := getter(metrics[p])
		bucket, ok := buckets[metric]
		if !ok {
			bucket = make([]Player, 0, 3)
		}
		buckets[metric] = append(bucket, p)
	}

	sortedMetrics := make([]int, 0, len(buckets))
	for k := range buckets {
		sortedMetrics = append(sortedMetrics, k)
	}
	slices.SortFunc(sortedMetrics, func(a, b int) int { return cmp.Compare(b, a) })

	sortedPlayers := make([][]Player, 0, len(sortedMetrics))
	for _, v := range sortedMetrics {
		sortedPlayers = append(sortedPlayers, buckets[v])
	}

	return sortedPlayers
}

// Creates a Standing for each of the players from the resolved
// matches among them.
func collectMetrics(players []Player, matches []*Match) map[Player]*Standing {
	metrics := make(map[Player]*Standing, len(players))
	for _, p := range players {
		metrics[p] = &Standing{Player: p}
	}

	for _, match := range matches {
		extractMatchMetrics(match, metrics)
	}

	for _, s := range metrics {
		s.updateDifferences()
	}

	return metrics
}

func extractMatchMetrics(match *Match, metrics map[Player]*Standing) {
	winner, ok := match.Winner()
	if !ok {
		return
	}

	s1 := metrics[match.Player1]
	s2 := metrics[match.Player2]

	s1.NumMatches += 1
	s2.NumMatches += 1

	if winner == match.Player1 {
		s1.Wins += 1
		s2.Losses += 1
	} else {
		s2.Wins += 1
		s1.Losses += 1
	}

	score := match.Score()
	if score == nil {
		return
	}

	points1 := score.Points1()
	points2 := score.Points2()
	for i := 0; i < len(points1); i++ {
		s1.NumSets += 1
		s2.NumSets += 1

		p1 := points1[i]
		p2 := points2[i]

		s1.PointWins += p1
		s1.PointLosses += p2
		s2.PointWins += p2
		s2.PointLosses += p1

		if p1 == p2 {
			continue
		}
		if p1 > p2 {
			s1.SetWins += 1
			s2.SetLosses += 1
		} else {
			s2.SetWins += 1
			s1.SetLosses += 1
		}
	}
}
