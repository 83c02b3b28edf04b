package core

import "slices"

// A Slot is one of the two places in a bracket node.
//
// It represents one of 3 things:
//   - A player who advanced from the group phase
//   - A drawn bye that gives the opponent a free win
//   - The yet undetermined winner of a child node
//
// A child slot resolves to a player once the child node's
// result is known.
type Slot struct {
	player Player
	bye    bool
	child  *BracketNode
}

// Returns the player occupying this slot. The bool is false
// for byes and for child slots whose node has no winner yet.
func (s *Slot) Player() (Player, bool) {
	return s.player, !s.player.IsZero()
}

func (s *Slot) IsBye() bool {
	return s.bye
}

// Returns the bracket node whose winner fills this slot or nil
// when the slot was seeded directly from the group phase.
func (s *Slot) Child() *BracketNode {
	return s.child
}

// Copies the child node's winner into the slot. Called for the
// dependants of a node when its result becomes known.
func (s *Slot) update() {
	if s.child == nil {
		return
	}
	if winner, ok := s.child.Winner(); ok {
		s.player = winner
	}
}

// A BracketNode is one match of the single elimination
// knockout tree. The root node's winner is the champion.
type BracketNode struct {
	// The 0-based knockout round of this node. The first
	// round is 0, the final has the highest round index.
	Round int

	// The two opponent slots
	Slot1 *Slot
	Slot2 *Slot

	winner   Player
	score    Score
	resolved bool
	bye      bool

	id int
}

func (n *BracketNode) Id() int {
	return n.id
}

// Returns true once the node has a winner, either from a
// recorded result or a drawn bye.
func (n *BracketNode) Resolved() bool {
	return n.resolved
}

// Returns the node's winner. The bool is false while the node
// is unresolved.
func (n *BracketNode) Winner() (Player, bool) {
	return n.winner, n.resolved
}

func (n *BracketNode) Score() Score {
	return n.score
}

// Returns true when one of the slots is a drawn bye. Bye nodes
// resolve on creation and never take a recorded result.
func (n *BracketNode) HasBye() bool {
	return n.bye
}

// Returns the two opponents. The bool is false while either
// slot is unresolved.
func (n *BracketNode) Players() (Player, Player, bool) {
	p1, ok1 := n.Slot1.Player()
	p2, ok2 := n.Slot2.Player()
	return p1, p2, ok1 && ok2
}

// Returns true when both opponents are known and the node
// still awaits its result.
func (n *BracketNode) Ready() bool {
	_, _, ok := n.Players()
	return ok && !n.resolved
}

// A Bracket is the knockout tree among the group phase
// advancers together with the graph that the results propagate
// along.
type Bracket struct {
	Root *BracketNode

	// The bracket rounds from the first knockout round up to
	// the final
	Rounds [][]*BracketNode

	// All nodes, first round first
	Nodes []*BracketNode

	Graph *BracketGraph

	nodesById map[int]*BracketNode
	started   bool
}

// Returns the nodes that are ready to be played, in the fixed
// round-by-round traversal order.
func (b *Bracket) PlayableNodes() []*BracketNode {
	playable := make([]*BracketNode, 0, len(b.Nodes))
	for _, n := range b.Nodes {
		if n.Ready() {
			playable = append(playable, n)
		}
	}
	return playable
}

func (b *Bracket) recordResult(nodeId int, winner Player, score Score) error {
	node, ok := b.nodesById[nodeId]
	if !ok {
		return ErrNodeNotFound
	}
	if node.resolved {
		return ErrAlreadyRecorded
	}

	player1, player2, ok := node.Players()
	if !ok {
		return ErrNodeNotReady
	}
	if err := validateResult(player1, player2, winner, score); err != nil {
		return err
	}

	node.winner = winner
	node.score = score
	node.resolved = true
	b.started = true

	b.propagateFrom(node)

	return nil
}

// Updates the slots of the nodes that depend on the given
// node. Called whenever a node resolves.
func (b *Bracket) propagateFrom(node *BracketNode) {
	for _, dependant := range b.Graph.GetDependants(node) {
		dependant.Slot1.update()
		dependant.Slot2.update()
	}
}

// A qualifier stands in for one advancer while the bracket is
// seeded. Keeping the group and place alongside the player
// simplifies spreading group members across the tree.
type qualifier struct {
	player       Player
	group, place int
	isBye        bool
}

type seedMatchup struct {
	seed1 int
	seed2 int
}

// Arranges the seeds for the first knockout round of a total
// of numRounds.
//
// The arrangement ensures that the top 2 seeds can only meet
// in the final, the top 4 seeds can only meet in the
// semi-finals, etc...
func arrangeSeeds(numRounds int) []*seedMatchup {
	// Start with the final between the first two seeds
	matchups := []*seedMatchup{{0, 1}}
	totalSeeds := 2

	// Work down the tournament tree by round (semis, quarters, ...)
	for i := 1; i < numRounds; i += 1 {
		nextMatchups := make([]*seedMatchup, 0, totalSeeds)
		totalSeeds *= 2
		for _, parent := range matchups {
			nextMatchups = append(
				nextMatchups,
				&seedMatchup{parent.seed1, totalSeeds - 1 - parent.seed1},
				&seedMatchup{parent.seed2, totalSeeds - 1 - parent.seed2},
			)
		}
		matchups = nextMatchups
	}

	return matchups
}

// Swaps same-placed qualifiers between first round matchups so
// that no matchup pairs two players from the same group, as
// far as the group and advancer counts allow.
func separateGroups(matchups []*seedMatchup, pool []*qualifier) {
	for _, matchup := range matchups {
		q1 := pool[matchup.seed1]
		q2 := pool[matchup.seed2]
		if q1.isBye || q2.isBye || q1.group != q2.group {
			continue
		}

		for _, other := range matchups {
			if other == matchup {
				continue
			}
			swapCandidate := pool[other.seed2]
			if swapCandidate.isBye || swapCandidate.place != q2.place {
				continue
			}
			if swapCandidate.group == q1.group || pool[other.seed1].group == q2.group {
				continue
			}
			pool[matchup.seed2], pool[other.seed2] = swapCandidate, q2
			break
		}
	}
}

// Builds the knockout tree for the given advancers. The
// qualifiers are expected in overall seeding order. Byes fill
// the tree up to the next power of two and pair off against
// the top seeds.
func buildBracket(quals []*qualifier, ids *idSource) *Bracket {
	graph := NewBracketGraph()
	bracket := &Bracket{
		Graph:     graph,
		nodesById: make(map[int]*BracketNode),
	}

	if len(quals) == 1 {
		// A single advancer wins the uncontested final by bye
		root := newByeNode(quals[0].player, ids.nextId(), 0)
		graph.AddVertex(root)
		bracket.Root = root
		bracket.Rounds = [][]*BracketNode{{root}}
		bracket.Nodes = []*BracketNode{root}
		bracket.nodesById[root.id] = root
		return bracket
	}

	size := nextPowerOfTwo(len(quals))
	pool := slices.Clone(quals)
	for len(pool) < size {
		pool = append(pool, &qualifier{isBye: true, group: -1, place: -1})
	}

	numRounds := getNumRounds(size)
	matchups := arrangeSeeds(numRounds)
	separateGroups(matchups, pool)

	firstRound := make([]*BracketNode, 0, len(matchups))
	for _, matchup := range matchups {
		node := &BracketNode{
			Slot1: newQualifierSlot(pool[matchup.seed1]),
			Slot2: newQualifierSlot(pool[matchup.seed2]),
			id:    ids.nextId(),
		}
		graph.AddVertex(node)
		firstRound = append(firstRound, node)
	}

	rounds := [][]*BracketNode{firstRound}
	for roundI := 1; roundI < numRounds; roundI += 1 {
		previous := rounds[roundI-1]
		round := make([]*BracketNode, 0, len(previous)/2)
		for i := 0; i < len(previous); i += 2 {
			node := &BracketNode{
				Round: roundI,
				Slot1: &Slot{child: previous[i]},
				Slot2: &Slot{child: previous[i+1]},
				id:    ids.nextId(),
			}
			graph.AddVertex(node)
			graph.AddEdge(previous[i], node)
			graph.AddEdge(previous[i+1], node)
			round = append(round, node)
		}
		rounds = append(rounds, round)
	}

	nodes := make([]*BracketNode, 0, size-1)
	for _, r := range rounds {
		nodes = append(nodes, r...)
	}

	bracket.Root = rounds[numRounds-1][0]
	bracket.Rounds = rounds
	bracket.Nodes = nodes
	for _, n := range nodes {
		bracket.nodesById[n.id] = n
	}

	// Byes only occur in the first round and resolve right away
	for _, node := range firstRound {
		if !node.Slot1.IsBye() && !node.Slot2.IsBye() {
			continue
		}
		node.bye = true
		node.winner, _ = node.Slot1.Player()
		node.resolved = true
		bracket.propagateFrom(node)
	}

	return bracket
}

func newQualifierSlot(qual *qualifier) *Slot {
	if qual.isBye {
		return &Slot{bye: true}
	}
	return &Slot{player: qual.player}
}

func newByeNode(player Player, id, round int) *BracketNode {
	return &BracketNode{
		Round:    round,
		Slot1:    &Slot{player: player},
		Slot2:    &Slot{bye: true},
		winner:   player,
		resolved: true,
		bye:      true,
		id:       id,
	}
}

func nextPowerOfTwo(n int) int {
	power := 1
	for power < n {
		power <<= 1
	}
	return power
}

func getNumRounds(numSlots int) int {
	rounds := 0
	for numSlots > 1 {
		numSlots >>= 1
		rounds += 1
	}
	return rounds
}
