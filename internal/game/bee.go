// internal/game/bee.go
package game

import "go-ant-defense/internal/config"

// Bee moves from place to place, following exits and stinging ants.
type Bee struct {
	Insect
	damage int
	action ActionFunc
}

// NewBee creates a bee with the given armor. Bees are watersafe.
func NewBee(armor int) *Bee {
	b := &Bee{Insect: newInsect("Bee", armor, true), damage: config.BeeSting}
	b.action = b.defaultAction
	b.bind(b)
	return b
}

// Sting attacks an ant, reducing its armor.
func (b *Bee) Sting(a Ant) {
	a.ReduceArmor(b.damage)
}

// MoveTo transfers the bee to a new place: remove first, then add, so the
// occupant lists never disagree with the bee's place reference.
func (b *Bee) MoveTo(p *Place) {
	b.place.RemoveInsect(b)
	p.AddInsect(b)
}

// Blocked reports whether a path-blocking ant stands in the bee's place.
func (b *Bee) Blocked() bool {
	ant := b.place.Ant()
	return ant != nil && ant.BlocksPath()
}

// Action stings a blocking ant, or advances toward the colony base. Bees
// waiting in the hive stay put.
func (b *Bee) Action(c *Colony) {
	b.action(c)
}

func (b *Bee) defaultAction(c *Colony) {
	if b.Blocked() {
		b.Sting(b.place.Ant())
	} else if b.place.Kind() != PlaceHive && b.armor > 0 {
		b.MoveTo(b.place.Exit())
	}
}
