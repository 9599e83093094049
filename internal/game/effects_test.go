// internal/game/effects_test.go
package game

import "testing"

// countingBee installs an action that counts its own invocations, so effect
// wrappers can be observed without touching places.
func countingBee(armor int) (*Bee, *int) {
	bee := NewBee(armor)
	calls := 0
	bee.action = func(c *Colony) { calls++ }
	return bee, &calls
}

func TestMakeStun_SuppressesActions(t *testing.T) {
	c := newTestColony(t, 0, 3, nil, nil)
	bee, calls := countingBee(3)

	ApplyEffect(MakeStun, bee, 2)
	bee.Action(c)
	bee.Action(c)
	if *calls != 0 {
		t.Fatalf("stunned bee acted %d times, want 0", *calls)
	}

	for i := 0; i < 5; i++ {
		bee.Action(c)
	}
	if *calls != 5 {
		t.Fatalf("recovered bee acted %d times, want 5", *calls)
	}
}

func TestMakeSlow_ActsOnEvenTurnsOnly(t *testing.T) {
	c := newTestColony(t, 0, 3, nil, nil)
	bee, calls := countingBee(3)

	ApplyEffect(MakeSlow, bee, 3)
	c.time = 0
	bee.Action(c) // even, acts
	c.time = 1
	bee.Action(c) // odd, suppressed but still consumes duration
	c.time = 2
	bee.Action(c) // even, acts
	if *calls != 2 {
		t.Fatalf("slowed bee acted %d times, want 2", *calls)
	}

	c.time = 3
	bee.Action(c) // effect expired, odd turn acts again
	if *calls != 3 {
		t.Fatalf("recovered bee acted %d times, want 3", *calls)
	}
}

func TestApplyEffect_StacksOverActiveEffect(t *testing.T) {
	c := newTestColony(t, 0, 3, nil, nil)
	bee, calls := countingBee(3)

	ApplyEffect(MakeSlow, bee, 4)
	ApplyEffect(MakeStun, bee, 2)

	c.time = 0
	bee.Action(c) // stun swallows an even turn the slow would have allowed
	bee.Action(c) // stun again
	if *calls != 0 {
		t.Fatalf("stacked stun let %d actions through, want 0", *calls)
	}

	// Stun expired; the slow effect resumes with its duration intact.
	bee.Action(c) // even, acts
	c.time = 1
	bee.Action(c) // odd, suppressed
	c.time = 2
	bee.Action(c) // even, acts
	c.time = 3
	bee.Action(c) // odd, last slowed invocation, suppressed
	if *calls != 2 {
		t.Fatalf("slow after stun allowed %d actions, want 2", *calls)
	}

	bee.Action(c) // slow spent, odd turn acts again
	if *calls != 3 {
		t.Fatalf("recovered bee acted %d times, want 3", *calls)
	}
}

func TestApplyEffect_ExpiryRestoresOriginal(t *testing.T) {
	c := newTestColony(t, 0, 3, nil, nil)
	bee, calls := countingBee(3)

	ApplyEffect(MakeStun, bee, 1)
	bee.Action(c)
	bee.Action(c)
	bee.Action(c)
	if *calls != 2 {
		t.Fatalf("one-turn stun should allow the later actions, got %d", *calls)
	}
}
