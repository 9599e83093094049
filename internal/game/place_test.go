// internal/game/place_test.go
package game

import (
	"fmt"
	"testing"

	"go-ant-defense/internal/utils"
)

func singleTunnel(length int) LayoutFunc {
	return func(base *Place, register RegisterFunc) {
		exit := base
		for step := 0; step < length; step++ {
			p := NewPlace(fmt.Sprintf("tunnel_0_%d", step), exit)
			register(p, step == length-1)
			exit = p
		}
	}
}

func newTestColony(t *testing.T, food, length int, plan *AssaultPlan, strat Strategy) *Colony {
	t.Helper()
	if plan == nil {
		plan = NewAssaultPlan(3)
	}
	return NewColony(strat, plan, singleTunnel(length), food, utils.NewPRNGService(7), nil)
}

// --- Construction ---

func TestNewPlace_BackLinksEntrance(t *testing.T) {
	base := NewPlace("base", nil)
	next := NewPlace("next", base)
	if base.Entrance() != next {
		t.Fatalf("constructing a place with an exit must back-link the exit's entrance")
	}
	if next.Exit() != base {
		t.Fatalf("exit not set")
	}
}

// --- Occupancy ---

func TestAddInsect_Bees(t *testing.T) {
	p := NewPlace("p", nil)
	b1, b2 := NewBee(3), NewBee(3)
	p.AddInsect(b1)
	p.AddInsect(b2)
	if got := len(p.Bees()); got != 2 {
		t.Fatalf("expected 2 bees, got %d", got)
	}
	if b1.Place() != p || b2.Place() != p {
		t.Fatal("bee place reference not set by AddInsect")
	}
}

func TestAddInsect_SecondAntPanics(t *testing.T) {
	p := NewPlace("p", nil)
	p.AddInsect(NewThrowerAnt())
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic placing a second incompatible ant")
		}
	}()
	p.AddInsect(NewWallAnt())
}

func TestRemoveInsect_NotPresentPanics(t *testing.T) {
	p := NewPlace("p", nil)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic removing a bee that is not here")
		}
	}()
	p.RemoveInsect(NewBee(3))
}

// --- Containment ---

func TestContainment_BodyguardAbsorbsResident(t *testing.T) {
	p := NewPlace("p", nil)
	thrower := NewThrowerAnt()
	guard := NewBodyguardAnt()
	p.AddInsect(thrower)
	p.AddInsect(guard)
	if p.Ant() != Ant(guard) {
		t.Fatalf("bodyguard should become the visible occupant, got %v", p.Ant())
	}
	if guard.ContainedAnt() != Ant(thrower) {
		t.Fatal("resident ant should be sheltered")
	}
	if thrower.Place() != p {
		t.Fatal("sheltered ant must keep its place reference")
	}
}

func TestContainment_ResidentBodyguardAbsorbsIncoming(t *testing.T) {
	p := NewPlace("p", nil)
	guard := NewBodyguardAnt()
	thrower := NewThrowerAnt()
	p.AddInsect(guard)
	p.AddInsect(thrower)
	if p.Ant() != Ant(guard) {
		t.Fatal("bodyguard should stay the visible occupant")
	}
	if guard.ContainedAnt() != Ant(thrower) {
		t.Fatal("incoming ant should be sheltered")
	}
}

func TestContainment_RemovalPromotesShelteredAnt(t *testing.T) {
	p := NewPlace("p", nil)
	thrower := NewThrowerAnt()
	guard := NewBodyguardAnt()
	p.AddInsect(thrower)
	p.AddInsect(guard)
	p.RemoveInsect(guard)
	if p.Ant() != Ant(thrower) {
		t.Fatalf("removing the shelter should promote the sheltered ant, got %v", p.Ant())
	}
	if thrower.Place() != p {
		t.Fatal("promoted ant should stay at the place")
	}
	if guard.Place() != nil {
		t.Fatal("removed shelter should have no place")
	}
}

func TestContainment_TwoBodyguardsPanic(t *testing.T) {
	p := NewPlace("p", nil)
	p.AddInsect(NewBodyguardAnt())
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic: a bodyguard cannot shelter a bodyguard")
		}
	}()
	p.AddInsect(NewBodyguardAnt())
}

func TestContainment_FullBodyguardRejectsThird(t *testing.T) {
	p := NewPlace("p", nil)
	p.AddInsect(NewThrowerAnt())
	p.AddInsect(NewBodyguardAnt())
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic: the shelter slot is already full")
		}
	}()
	p.AddInsect(NewWallAnt())
}

// --- Water ---

func TestWater_DrownsNonWatersafe(t *testing.T) {
	w := NewWater("water", nil)
	thrower := NewThrowerAnt()
	w.AddInsect(thrower)
	if thrower.Armor() > 0 {
		t.Fatalf("non-watersafe ant should drown, armor %d", thrower.Armor())
	}
	if w.Ant() != nil {
		t.Fatal("drowned ant should be removed from the place")
	}
	if thrower.Place() != nil {
		t.Fatal("drowned ant should have no place")
	}
}

func TestWater_SparesWatersafe(t *testing.T) {
	w := NewWater("water", nil)
	scuba := NewScubaThrower()
	w.AddInsect(scuba)
	if scuba.Armor() != 1 {
		t.Fatalf("watersafe ant armor should be untouched, got %d", scuba.Armor())
	}
	if w.Ant() != Ant(scuba) {
		t.Fatal("watersafe ant should occupy the water")
	}

	bee := NewBee(3)
	w.AddInsect(bee)
	if bee.Armor() != 3 {
		t.Fatalf("bees are watersafe by default, armor %d", bee.Armor())
	}
}
