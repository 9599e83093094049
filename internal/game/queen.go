// internal/game/queen.go
package game

import (
	"go-ant-defense/internal/defs"
	"go-ant-defense/internal/types"
)

// QueenAnt is a watersafe thrower that doubles the damage of every other ant
// reachable along her tunnel, each at most once for the lifetime of the
// aura. The first queen a colony creates is authoritative and can never be
// removed; later queens are impostors whose only action is to perish.
type QueenAnt struct {
	ThrowerAnt
	authoritative bool
	doubled       map[types.UnitID]struct{}
}

// NewQueenAnt creates a queen. Authority is simulation-scoped state owned by
// the colony, not shared global state.
func NewQueenAnt(c *Colony) *QueenAnt {
	q := &QueenAnt{
		ThrowerAnt: newThrower(defs.MustAnt("Queen")),
		doubled:    make(map[types.UnitID]struct{}),
	}
	if !c.queenPlaced {
		c.queenPlaced = true
		q.authoritative = true
	}
	q.bind(q)
	return q
}

// Action throws a leaf and re-runs the aura propagation. An impostor queen
// does only one thing: die.
func (q *QueenAnt) Action(c *Colony) {
	if !q.authoritative {
		q.ReduceArmor(q.Armor())
		return
	}
	c.guardPlace(q.place)
	q.ThrowAt(q.NearestBee(c))
	q.doubleAntsInTunnel()
}

func (q *QueenAnt) doubleAntsInTunnel() {
	// Own place first: the queen never doubles herself. If she is sheltered,
	// the shelter is recorded without a damage change.
	if own := q.place.Ant(); own != nil && own.IsContainer() {
		q.doubled[own.ID()] = struct{}{}
	}
	for left := q.place.Entrance(); left != nil; left = left.Entrance() {
		q.doubleAt(left)
	}
	for right := q.place.Exit(); right != nil; right = right.Exit() {
		q.doubleAt(right)
	}
}

// doubleAt doubles the damage of the ant at p unless it was already doubled.
// For a shelter the sheltered ant is doubled and recorded in its stead, and
// the shelter itself enters the set defensively.
func (q *QueenAnt) doubleAt(p *Place) {
	ant := p.Ant()
	if ant == nil {
		return
	}
	if _, seen := q.doubled[ant.ID()]; seen {
		return
	}
	if ant.IsContainer() {
		if inner := ant.ContainedAnt(); inner != nil {
			if _, seen := q.doubled[inner.ID()]; !seen {
				inner.setDamage(inner.Damage() * 2)
				q.doubled[inner.ID()] = struct{}{}
			}
		}
		q.doubled[ant.ID()] = struct{}{}
		return
	}
	ant.setDamage(ant.Damage() * 2)
	q.doubled[ant.ID()] = struct{}{}
}
