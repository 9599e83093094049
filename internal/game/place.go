// internal/game/place.go
package game

import (
	"fmt"

	"go-ant-defense/internal/config"
	"go-ant-defense/internal/event"
	"go-ant-defense/internal/types"
)

// PlaceKind distinguishes ordinary tunnel places from the two special kinds.
type PlaceKind int

const (
	PlaceTunnel PlaceKind = iota
	PlaceWater            // hazard: lethal to insects that are not watersafe
	PlaceHive             // the bees' holding area
)

func (k PlaceKind) String() string {
	switch k {
	case PlaceWater:
		return "water"
	case PlaceHive:
		return "hive"
	default:
		return "tunnel"
	}
}

// Place is one node of the tunnel graph. It holds any number of bees and at
// most one visible ant; a bodyguard pair counts as a single occupant from the
// outside.
type Place struct {
	name     string
	kind     PlaceKind
	exit     *Place
	entrance *Place
	bees     []*Bee
	ant      Ant
	events   *event.Dispatcher
}

// NewPlace creates a tunnel place. Naming an exit back-links that exit's
// entrance to the new place; the link is set here once and never mutated
// afterward.
func NewPlace(name string, exit *Place) *Place {
	return newPlace(name, PlaceTunnel, exit)
}

// NewWater creates a hazard place.
func NewWater(name string, exit *Place) *Place {
	return newPlace(name, PlaceWater, exit)
}

// NewHive creates the place bees assault from.
func NewHive() *Place {
	return newPlace(config.HiveName, PlaceHive, nil)
}

func newPlace(name string, kind PlaceKind, exit *Place) *Place {
	p := &Place{name: name, kind: kind, exit: exit}
	if exit != nil {
		exit.entrance = p
	}
	return p
}

func (p *Place) Name() string     { return p.name }
func (p *Place) Kind() PlaceKind  { return p.kind }
func (p *Place) Exit() *Place     { return p.exit }
func (p *Place) Entrance() *Place { return p.entrance }

// Ant returns the visible ant occupant, if any.
func (p *Place) Ant() Ant { return p.ant }

// Bees returns a snapshot of the bees currently here. Callers may destroy
// bees while iterating the snapshot without corrupting the live list.
func (p *Place) Bees() []*Bee {
	bees := make([]*Bee, len(p.bees))
	copy(bees, p.bees)
	return bees
}

// AddInsect adds an insect to this place.
//
// A bee is always appended. An ant fills the single ant slot, with two
// exceptions: an incoming non-container may be absorbed by a container that
// has room, and an incoming container absorbs a resident non-container and
// becomes the visible occupant. Any other collision is a strategy error and
// panics. Insects added to water that are not watersafe drown through the
// normal armor path, so death side effects still fire.
func (p *Place) AddInsect(u Unit) {
	if ant, ok := u.(Ant); ok {
		p.addAnt(ant)
	} else {
		p.bees = append(p.bees, u.(*Bee))
	}
	u.setPlace(p)
	u.attach(p.events)
	if p.kind == PlaceWater && !u.Watersafe() {
		u.ReduceArmor(u.Armor())
	}
}

func (p *Place) addAnt(ant Ant) {
	switch {
	case p.ant != nil && p.ant.CanContain(ant):
		p.ant.ContainAnt(ant)
	case p.ant != nil && ant.CanContain(p.ant):
		ant.ContainAnt(p.ant)
		p.ant = ant
	default:
		if p.ant != nil {
			panic(fmt.Sprintf("two ants in %s", p.name))
		}
		p.ant = ant
	}
}

// RemoveInsect removes an insect from this place. Removing a container
// promotes its sheltered ant to visible occupant; removing the authoritative
// queen is a no-op. Removing an insect that is not here panics.
func (p *Place) RemoveInsect(u Unit) {
	ant, ok := u.(Ant)
	if !ok {
		bee := u.(*Bee)
		idx := -1
		for i, b := range p.bees {
			if b == bee {
				idx = i
				break
			}
		}
		if idx < 0 {
			panic(fmt.Sprintf("%s is not in %s", bee, p))
		}
		p.bees = append(p.bees[:idx], p.bees[idx+1:]...)
		bee.setPlace(nil)
		return
	}

	if p.ant != ant {
		panic(fmt.Sprintf("%s is not in %s", ant, p))
	}
	if ant.IsContainer() && ant.ContainedAnt() != nil {
		p.ant = ant.ContainedAnt()
		p.ant.setPlace(p)
	} else if q, isQueen := ant.(*QueenAnt); isQueen && q.authoritative {
		return
	} else {
		p.ant = nil
	}
	ant.setPlace(nil)
}

// Summary renders the place for read-only consumers.
func (p *Place) Summary() types.PlaceSummary {
	s := types.PlaceSummary{
		Name: p.name,
		Kind: p.kind.String(),
	}
	if p.ant != nil {
		s.Ant = p.ant.String()
		if inner := p.ant.ContainedAnt(); inner != nil {
			s.Contained = inner.String()
		}
	}
	for _, bee := range p.bees {
		s.Bees = append(s.Bees, bee.String())
	}
	return s
}

func (p *Place) String() string {
	if p == nil {
		return "None"
	}
	return p.name
}
