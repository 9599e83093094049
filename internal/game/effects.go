// internal/game/effects.go
package game

// Effect transforms one per-turn action into another.
type Effect func(action ActionFunc) ActionFunc

// MakeSlow returns an action that only invokes the underlying action on
// even-numbered turns.
func MakeSlow(action ActionFunc) ActionFunc {
	return func(c *Colony) {
		if c.Time()%2 == 0 {
			action(c)
		}
	}
}

// MakeStun returns an action that does nothing.
func MakeStun(action ActionFunc) ActionFunc {
	return func(c *Colony) {}
}

// ApplyEffect replaces the bee's current action with a wrapper: for duration
// invocations it runs the effect-transformed version of the action that was
// installed at application time, after which every invocation runs that
// original directly. A second effect applied before the first expires wraps
// the first; the layering is intentional.
func ApplyEffect(effect Effect, b *Bee, duration int) {
	original := b.action
	transformed := effect(original)
	remaining := duration
	b.action = func(c *Colony) {
		if remaining > 0 {
			remaining--
			transformed(c)
			return
		}
		original(c)
	}
}
