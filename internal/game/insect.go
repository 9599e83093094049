// internal/game/insect.go
package game

import (
	"fmt"
	"log"

	"go-ant-defense/internal/event"
	"go-ant-defense/internal/types"
)

// ActionFunc is one unit's per-turn behavior. It is a value rather than a
// fixed method so status effects can replace it and later restore the
// original.
type ActionFunc func(c *Colony)

// Unit is the capability set shared by ants and bees.
type Unit interface {
	fmt.Stringer
	ID() types.UnitID
	Name() string
	Armor() int
	// ReduceArmor applies damage and removes the unit from its place the
	// moment armor reaches zero. Variants may override the destruction path.
	ReduceArmor(amount int)
	Place() *Place
	Action(c *Colony)
	Watersafe() bool
	IsAnt() bool

	setPlace(p *Place)
	attach(d *event.Dispatcher)
}

// Insect is the embedded base of every unit. Its place reference is set
// exclusively by Place.AddInsect and Place.RemoveInsect.
type Insect struct {
	id        types.UnitID
	name      string
	armor     int
	watersafe bool
	place     *Place

	// self holds the full unit so the shared destruction path removes and
	// reports the concrete type, not the embedded base. Every constructor
	// calls bind.
	self   Unit
	events *event.Dispatcher
}

func newInsect(name string, armor int, watersafe bool) Insect {
	return Insect{id: types.NewUnitID(), name: name, armor: armor, watersafe: watersafe}
}

func (i *Insect) bind(u Unit) { i.self = u }

func (i *Insect) ID() types.UnitID { return i.id }
func (i *Insect) Name() string     { return i.name }
func (i *Insect) Armor() int       { return i.armor }
func (i *Insect) Place() *Place    { return i.place }
func (i *Insect) Watersafe() bool  { return i.watersafe }
func (i *Insect) IsAnt() bool      { return false }

func (i *Insect) setPlace(p *Place) { i.place = p }

func (i *Insect) attach(d *event.Dispatcher) {
	if d != nil {
		i.events = d
	}
}

// ReduceArmor reduces armor by amount and expires the insect when none
// remains.
func (i *Insect) ReduceArmor(amount int) {
	i.armor -= amount
	if i.armor <= 0 {
		i.expire()
	}
}

// expire removes the insect from its place. A unit already off the graph is
// left alone, so the removal happens exactly once.
func (i *Insect) expire() {
	if i.place == nil {
		return
	}
	log.Printf("%s ran out of armor and expired", i.self)
	if i.events != nil {
		i.events.Dispatch(event.Event{Type: event.InsectDestroyed, Data: i.self})
	}
	i.place.RemoveInsect(i.self)
}

// Action is the default per-turn behavior: nothing.
func (i *Insect) Action(c *Colony) {}

func (i *Insect) String() string {
	return fmt.Sprintf("%s(%d, %s)", i.name, i.armor, i.place)
}
