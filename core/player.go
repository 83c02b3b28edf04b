package core

import "fmt"

// A Player is one tournament participant.
//
// The seed is the player's 1-based position in the seeding
// order that the players were supplied in. It is unique within
// a tournament and does not change after setup.
type Player struct {
	Seed int
	Name string
}

func (p Player) String() string {
	return fmt.Sprintf("%d. %s", p.Seed, p.Name)
}

// IsZero reports whether p is the zero Player which stands
// for "no player" in unresolved slots.
func (p Player) IsZero() bool {
	return p.Seed == 0
}
