package core

// The Phase a tournament is in. Phases only ever move forward.
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseGroupPlay
	PhaseBracketBuilt
	PhaseKnockoutPlay
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "Setup"
	case PhaseGroupPlay:
		return "GroupPlay"
	case PhaseBracketBuilt:
		return "BracketBuilt"
	case PhaseKnockoutPlay:
		return "KnockoutPlay"
	case PhaseComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// A Tournament holds the whole state of one group-knockout
// tournament: the players, groups with their round robin
// matches, and the knockout bracket once it is built.
//
// All state lives in this value. Front ends own the Tournament
// and drive it by recording results; every operation validates
// fully before it mutates anything.
type Tournament struct {
	// The players in seeding order
	Players []Player

	// The groups of the round robin phase
	Groups []*Group

	// How many players advance from each group
	AdvanceCount int

	bracket *Bracket
	phase   Phase
	ids     idSource
}

// Creates a tournament with the players distributed into
// groupCount groups and the full round robin of group matches
// generated.
//
// The names are taken as the seeding order. Fails with one of
// the config errors (see IsConfigError) when the player, group
// and advancer counts do not fit together.
func NewTournament(names []string, groupCount, advanceCount int) (*Tournament, error) {
	if groupCount < 1 {
		return nil, ErrTooFewGroups
	}
	if advanceCount < 1 {
		return nil, ErrTooFewAdvancers
	}
	if len(names) < 2 {
		return nil, ErrTooFewPlayers
	}
	if len(names) < groupCount*advanceCount {
		return nil, ErrTooManyAdvancers
	}

	players := make([]Player, 0, len(names))
	for i, name := range names {
		players = append(players, Player{Seed: i + 1, Name: name})
	}

	tournament := &Tournament{
		Players:      players,
		AdvanceCount: advanceCount,
	}

	groupMembers := groupPlayers(players, groupCount)
	tournament.Groups = make([]*Group, 0, groupCount)
	for i, members := range groupMembers {
		group := newGroup(i, members, &tournament.ids)
		tournament.Groups = append(tournament.Groups, group)
	}

	tournament.phase = PhaseGroupPlay

	return tournament, nil
}

// Returns the current phase of the tournament.
func (t *Tournament) Phase() Phase {
	return t.phase
}

// Records the result of a group match.
//
// The score detail is optional. When present it has to declare
// the same winner. Nothing is mutated when the result does not
// validate so the caller can simply retry.
func (t *Tournament) RecordGroupResult(groupId, matchId int, winner Player, score Score) error {
	if t.phase != PhaseGroupPlay {
		return &WrongPhaseError{Required: PhaseGroupPlay, Current: t.phase}
	}

	group := t.groupById(groupId)
	if group == nil {
		return ErrGroupNotFound
	}
	match := group.matchById(matchId)
	if match == nil {
		return ErrMatchNotFound
	}

	return match.record(winner, score)
}

// Returns the group's standings ranked by the fixed tie-break
// rule. The standings are recomputed from the current match
// results on every call.
func (t *Tournament) Standings(groupId int) ([]*Standing, error) {
	group := t.groupById(groupId)
	if group == nil {
		return nil, ErrGroupNotFound
	}

	return rankGroup(group), nil
}

// Builds the knockout bracket from the top AdvanceCount
// players of every group.
//
// Fails with ErrGroupsIncomplete while any group match is
// unresolved. Calling again before a knockout result was
// recorded returns the same bracket; afterwards it fails with
// ErrBracketStarted.
func (t *Tournament) BuildBracket() (*Bracket, error) {
	if t.bracket != nil {
		if t.bracket.started {
			return nil, ErrBracketStarted
		}
		return t.bracket, nil
	}

	for _, g := range t.Groups {
		if !g.Complete() {
			return nil, ErrGroupsIncomplete
		}
	}

	t.bracket = buildBracket(t.qualifiers(), &t.ids)
	t.phase = PhaseBracketBuilt
	t.checkComplete()

	return t.bracket, nil
}

// Collects the advancers of all groups in overall seeding
// order: the group winners by group index first, then the
// runners-up, and so on.
func (t *Tournament) qualifiers() []*qualifier {
	rankings := make([][]*Standing, len(t.Groups))
	for i, g := range t.Groups {
		rankings[i] = rankGroup(g)
	}

	quals := make([]*qualifier, 0, len(t.Groups)*t.AdvanceCount)
	for place := 0; place < t.AdvanceCount; place++ {
		for _, g := range t.Groups {
			quals = append(quals, &qualifier{
				player: rankings[g.Id][place].Player,
				group:  g.Id,
				place:  place,
			})
		}
	}
	return quals
}

// Records the result of a knockout bracket node and advances
// the winner towards the root.
func (t *Tournament) RecordBracketResult(nodeId int, winner Player, score Score) error {
	if t.phase < PhaseBracketBuilt {
		return &WrongPhaseError{Required: PhaseBracketBuilt, Current: t.phase}
	}

	err := t.bracket.recordResult(nodeId, winner, score)
	if err != nil {
		return err
	}

	if t.phase == PhaseBracketBuilt {
		t.phase = PhaseKnockoutPlay
	}
	t.checkComplete()

	return nil
}

// Returns the knockout bracket or nil before it was built.
func (t *Tournament) Bracket() *Bracket {
	return t.bracket
}

// Returns the bracket nodes that are ready to be played, in
// round order. Empty during the group phase and once the
// tournament is complete.
func (t *Tournament) PlayableNodes() []*BracketNode {
	if t.bracket == nil {
		return nil
	}
	return t.bracket.PlayableNodes()
}

// Returns the tournament champion. The bool is false until the
// bracket's root node has a winner.
func (t *Tournament) Champion() (Player, bool) {
	if t.bracket == nil {
		return Player{}, false
	}
	return t.bracket.Root.Winner()
}

func (t *Tournament) checkComplete() {
	if _, ok := t.bracket.Root.Winner(); ok {
		t.phase = PhaseComplete
	}
}

func (t *Tournament) groupById(id int) *Group {
	if id < 0 || id >= len(t.Groups) {
		return nil
	}
	return t.Groups[id]
}
