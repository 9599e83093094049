// internal/game/insect_test.go
package game

import (
	"testing"

	"go-ant-defense/internal/event"
)

func TestReduceArmor_RemovesAtZero(t *testing.T) {
	p := NewPlace("p", nil)
	bee := NewBee(3)
	p.AddInsect(bee)

	bee.ReduceArmor(2)
	if bee.Armor() != 1 {
		t.Fatalf("armor = %d, want 1", bee.Armor())
	}
	if len(p.Bees()) != 1 {
		t.Fatal("bee should survive above zero armor")
	}

	bee.ReduceArmor(1)
	if len(p.Bees()) != 0 {
		t.Fatal("bee at zero armor should be removed from its place")
	}
	if bee.Place() != nil {
		t.Fatal("destroyed bee should have no place")
	}
}

func TestReduceArmor_OverkillRemovesOnce(t *testing.T) {
	p := NewPlace("p", nil)
	bee := NewBee(2)
	p.AddInsect(bee)

	bee.ReduceArmor(5)
	// A second reduction after destruction must not panic on a re-removal.
	bee.ReduceArmor(5)
	if len(p.Bees()) != 0 {
		t.Fatal("bee should have been removed exactly once")
	}
}

func TestReduceArmor_DispatchesDestroyed(t *testing.T) {
	events := event.NewDispatcher()
	var destroyed []event.Event
	events.Subscribe(event.InsectDestroyed, event.ListenerFunc(func(e event.Event) {
		destroyed = append(destroyed, e)
	}))

	p := NewPlace("p", nil)
	p.events = events
	bee := NewBee(1)
	p.AddInsect(bee)

	bee.ReduceArmor(1)
	if len(destroyed) != 1 {
		t.Fatalf("destroyed events = %d, want 1", len(destroyed))
	}
}

func TestBee_StingAndBlocked(t *testing.T) {
	p := NewPlace("p", nil)
	wall := NewWallAnt()
	bee := NewBee(3)
	p.AddInsect(wall)
	p.AddInsect(bee)

	if !bee.Blocked() {
		t.Fatal("a wall blocks the path")
	}
	bee.Sting(wall)
	if wall.Armor() != 3 {
		t.Fatalf("wall armor = %d, want 3", wall.Armor())
	}
}

func TestBee_NotBlockedByNinja(t *testing.T) {
	p := NewPlace("p", nil)
	p.AddInsect(NewNinjaAnt())
	bee := NewBee(3)
	p.AddInsect(bee)
	if bee.Blocked() {
		t.Fatal("a ninja does not block the path")
	}
}

func TestBee_DefaultActionAdvances(t *testing.T) {
	c := newTestColony(t, 0, 3, nil, nil)
	near := c.PlaceByName("tunnel_0_0")
	far := c.PlaceByName("tunnel_0_1")
	bee := NewBee(3)
	far.AddInsect(bee)

	bee.Action(c)
	if bee.Place() != near {
		t.Fatalf("bee should advance toward the base, at %s", bee.Place())
	}
}

func TestBee_IdlesInHive(t *testing.T) {
	plan := NewAssaultPlan(3).AddWave(5, 1)
	c := newTestColony(t, 0, 3, plan, nil)
	bee := c.Hive().Bees()[0]

	bee.Action(c)
	if bee.Place() != c.Hive() {
		t.Fatal("a bee waiting in the hive stays put")
	}
}
