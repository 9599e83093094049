// internal/game/ant.go
package game

import "go-ant-defense/internal/defs"

// Ant is a stationary, food-costed defender occupying a place.
type Ant interface {
	Unit
	FoodCost() int
	Damage() int
	BlocksPath() bool

	// Containment. Only the bodyguard kind implements these meaningfully;
	// everything else can neither contain nor be asked for a contained ant.
	IsContainer() bool
	CanContain(other Ant) bool
	ContainAnt(other Ant)
	ContainedAnt() Ant

	setDamage(d int)
}

// AntBase carries the state shared by every ant kind, populated from its
// definition.
type AntBase struct {
	Insect
	damage   int
	foodCost int
	blocks   bool
}

func newAntBase(def defs.AntDefinition) AntBase {
	return AntBase{
		Insect:   newInsect(def.Name, def.Armor, def.Watersafe),
		damage:   def.Damage,
		foodCost: def.FoodCost,
		blocks:   def.BlocksPath,
	}
}

func (a *AntBase) IsAnt() bool      { return true }
func (a *AntBase) FoodCost() int    { return a.foodCost }
func (a *AntBase) Damage() int      { return a.damage }
func (a *AntBase) setDamage(d int)  { a.damage = d }
func (a *AntBase) BlocksPath() bool { return a.blocks }

func (a *AntBase) IsContainer() bool   { return false }
func (a *AntBase) CanContain(Ant) bool { return false }
func (a *AntBase) ContainAnt(Ant)      { panic(a.name + " cannot contain another ant") }
func (a *AntBase) ContainedAnt() Ant   { return nil }
