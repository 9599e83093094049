// internal/game/ants.go
package game

import (
	"go-ant-defense/internal/defs"
	"go-ant-defense/internal/utils"
)

var (
	_ Ant = (*HarvesterAnt)(nil)
	_ Ant = (*ThrowerAnt)(nil)
	_ Ant = (*WallAnt)(nil)
	_ Ant = (*FireAnt)(nil)
	_ Ant = (*NinjaAnt)(nil)
	_ Ant = (*HungryAnt)(nil)
	_ Ant = (*BodyguardAnt)(nil)
	_ Ant = (*SlowThrower)(nil)
	_ Ant = (*StunThrower)(nil)
	_ Ant = (*QueenAnt)(nil)
	_ Ant = (*RemoverAnt)(nil)
)

// HarvesterAnt produces one additional food per turn for the colony.
type HarvesterAnt struct{ AntBase }

func NewHarvesterAnt() *HarvesterAnt {
	a := &HarvesterAnt{newAntBase(defs.MustAnt("Harvester"))}
	a.bind(a)
	return a
}

func (a *HarvesterAnt) Action(c *Colony) {
	c.AddFood(1)
}

// ThrowerAnt throws a leaf each turn at the nearest bee in its range.
// The Short, Long and Scuba kinds are the same behavior with different
// definitions.
type ThrowerAnt struct {
	AntBase
	minRange int
	maxRange int
}

func newThrower(def defs.AntDefinition) ThrowerAnt {
	return ThrowerAnt{AntBase: newAntBase(def), minRange: def.MinRange, maxRange: def.MaxRange}
}

func NewThrowerAnt() *ThrowerAnt {
	a := &ThrowerAnt{}
	*a = newThrower(defs.MustAnt("Thrower"))
	a.bind(a)
	return a
}

func NewShortThrower() *ThrowerAnt {
	a := &ThrowerAnt{}
	*a = newThrower(defs.MustAnt("Short"))
	a.bind(a)
	return a
}

func NewLongThrower() *ThrowerAnt {
	a := &ThrowerAnt{}
	*a = newThrower(defs.MustAnt("Long"))
	a.bind(a)
	return a
}

func NewScubaThrower() *ThrowerAnt {
	a := &ThrowerAnt{}
	*a = newThrower(defs.MustAnt("Scuba"))
	a.bind(a)
	return a
}

// NearestBee scans from the thrower's place toward the hive following
// entrance links, accumulating distance. It returns a uniformly random bee
// at the first visited place that holds bees within [minRange, maxRange],
// or nil when the scan reaches the hive with no match.
func (t *ThrowerAnt) NearestBee(c *Colony) *Bee {
	place := t.place
	distance := 0
	for place != nil && place.Kind() != PlaceHive {
		bee, ok := utils.Choose(c.Rng(), place.bees)
		if ok && distance >= t.minRange && distance <= t.maxRange {
			return bee
		}
		distance++
		place = place.Entrance()
	}
	return nil
}

// ThrowAt hits the target bee. No target is a no-op, not an error.
func (t *ThrowerAnt) ThrowAt(target *Bee) {
	if target != nil {
		target.ReduceArmor(t.damage)
	}
}

func (t *ThrowerAnt) Action(c *Colony) {
	t.ThrowAt(t.NearestBee(c))
}

// WallAnt does nothing but absorb damage.
type WallAnt struct{ AntBase }

func NewWallAnt() *WallAnt {
	a := &WallAnt{newAntBase(defs.MustAnt("Wall"))}
	a.bind(a)
	return a
}

// FireAnt cooks every bee in its place when it expires. The detonation runs
// against a snapshot taken before any destruction, because cooking a bee
// removes it from the live list.
type FireAnt struct{ AntBase }

func NewFireAnt() *FireAnt {
	a := &FireAnt{newAntBase(defs.MustAnt("Fire"))}
	a.bind(a)
	return a
}

func (f *FireAnt) ReduceArmor(amount int) {
	f.armor -= amount
	if f.armor > 0 || f.place == nil {
		return
	}
	for _, bee := range f.place.Bees() {
		bee.ReduceArmor(f.damage)
	}
	f.expire()
}

// NinjaAnt does not block the path and damages every bee sharing its place.
type NinjaAnt struct{ AntBase }

func NewNinjaAnt() *NinjaAnt {
	a := &NinjaAnt{newAntBase(defs.MustAnt("Ninja"))}
	a.bind(a)
	return a
}

func (n *NinjaAnt) Action(c *Colony) {
	for _, bee := range n.place.Bees() {
		bee.ReduceArmor(n.damage)
	}
}

// HungryAnt devours one random co-located bee, then spends DigestTurns turns
// digesting before it can eat again.
type HungryAnt struct {
	AntBase
	digestTurns int
	digesting   int
}

func NewHungryAnt() *HungryAnt {
	def := defs.MustAnt("Hungry")
	a := &HungryAnt{AntBase: newAntBase(def), digestTurns: def.DigestTurns}
	a.bind(a)
	return a
}

func (h *HungryAnt) Action(c *Colony) {
	if h.digesting > 0 {
		h.digesting--
		return
	}
	if bee, ok := utils.Choose(c.Rng(), h.place.bees); ok {
		bee.ReduceArmor(bee.Armor())
		h.digesting = h.digestTurns
	}
}

// BodyguardAnt shelters exactly one other non-container ant and delegates
// its action to it.
type BodyguardAnt struct {
	AntBase
	contained Ant
}

func NewBodyguardAnt() *BodyguardAnt {
	a := &BodyguardAnt{AntBase: newAntBase(defs.MustAnt("Bodyguard"))}
	a.bind(a)
	return a
}

func (b *BodyguardAnt) IsContainer() bool { return true }

func (b *BodyguardAnt) CanContain(other Ant) bool {
	return b.contained == nil && !other.IsContainer()
}

func (b *BodyguardAnt) ContainAnt(other Ant) { b.contained = other }

func (b *BodyguardAnt) ContainedAnt() Ant { return b.contained }

func (b *BodyguardAnt) Action(c *Colony) {
	if b.contained != nil {
		b.contained.Action(c)
	}
}

// SlowThrower applies the slow effect instead of damage.
type SlowThrower struct {
	ThrowerAnt
	duration int
}

func NewSlowThrower() *SlowThrower {
	def := defs.MustAnt("Slow")
	a := &SlowThrower{ThrowerAnt: newThrower(def), duration: def.EffectDuration}
	a.bind(a)
	return a
}

func (s *SlowThrower) Action(c *Colony) {
	if target := s.NearestBee(c); target != nil {
		ApplyEffect(MakeSlow, target, s.duration)
	}
}

// StunThrower applies the stun effect instead of damage.
type StunThrower struct {
	ThrowerAnt
	duration int
}

func NewStunThrower() *StunThrower {
	def := defs.MustAnt("Stun")
	a := &StunThrower{ThrowerAnt: newThrower(def), duration: def.EffectDuration}
	a.bind(a)
	return a
}

func (s *StunThrower) Action(c *Colony) {
	if target := s.NearestBee(c); target != nil {
		ApplyEffect(MakeStun, target, s.duration)
	}
}

// RemoverAnt has no armor and no behavior; it exists so front ends can offer
// an eraser tool backed by Colony.RemoveAnt.
type RemoverAnt struct{ AntBase }

func NewRemoverAnt() *RemoverAnt {
	a := &RemoverAnt{newAntBase(defs.MustAnt("Remover"))}
	a.bind(a)
	return a
}
