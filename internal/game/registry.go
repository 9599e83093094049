// internal/game/registry.go
package game

// AntFactory builds one ant. It receives the colony because some kinds need
// simulation-scoped state (the queen's authority flag).
type AntFactory func(c *Colony) Ant

// antFactories is the closed enumeration of deployable ant kinds. Its keys
// must cover defs.AntOrder; the colony verifies that at construction.
func antFactories() map[string]AntFactory {
	return map[string]AntFactory{
		"Harvester": func(*Colony) Ant { return NewHarvesterAnt() },
		"Thrower":   func(*Colony) Ant { return NewThrowerAnt() },
		"Short":     func(*Colony) Ant { return NewShortThrower() },
		"Long":      func(*Colony) Ant { return NewLongThrower() },
		"Wall":      func(*Colony) Ant { return NewWallAnt() },
		"Fire":      func(*Colony) Ant { return NewFireAnt() },
		"Ninja":     func(*Colony) Ant { return NewNinjaAnt() },
		"Scuba":     func(*Colony) Ant { return NewScubaThrower() },
		"Hungry":    func(*Colony) Ant { return NewHungryAnt() },
		"Bodyguard": func(*Colony) Ant { return NewBodyguardAnt() },
		"Slow":      func(*Colony) Ant { return NewSlowThrower() },
		"Stun":      func(*Colony) Ant { return NewStunThrower() },
		"Queen":     func(c *Colony) Ant { return NewQueenAnt(c) },
		"Remover":   func(*Colony) Ant { return NewRemoverAnt() },
	}
}
