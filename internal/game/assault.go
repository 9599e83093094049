// internal/game/assault.go
package game

import "sort"

// AssaultPlan is the bees' plan of attack: a mapping from turn number to the
// bees entering on that turn. The engine consults it once per turn and never
// mutates it.
type AssaultPlan struct {
	beeArmor int
	waves    map[int][]*Bee
}

// NewAssaultPlan creates an empty plan whose AddWave bees carry beeArmor.
func NewAssaultPlan(beeArmor int) *AssaultPlan {
	return &AssaultPlan{beeArmor: beeArmor, waves: make(map[int][]*Bee)}
}

// AddWave schedules count bees with the plan's default armor at turn.
func (p *AssaultPlan) AddWave(turn, count int) *AssaultPlan {
	return p.AddArmoredWave(turn, count, p.beeArmor)
}

// AddArmoredWave schedules count bees with an explicit armor value at turn.
func (p *AssaultPlan) AddArmoredWave(turn, count, armor int) *AssaultPlan {
	for i := 0; i < count; i++ {
		p.waves[turn] = append(p.waves[turn], NewBee(armor))
	}
	return p
}

// Wave returns the bees scheduled for the given turn.
func (p *AssaultPlan) Wave(turn int) []*Bee {
	return p.waves[turn]
}

// AllBees returns every scheduled bee, ordered by turn so setup is
// deterministic.
func (p *AssaultPlan) AllBees() []*Bee {
	turns := make([]int, 0, len(p.waves))
	for turn := range p.waves {
		turns = append(turns, turn)
	}
	sort.Ints(turns)
	var bees []*Bee
	for _, turn := range turns {
		bees = append(bees, p.waves[turn]...)
	}
	return bees
}
