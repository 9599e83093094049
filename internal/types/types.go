// internal/types/types.go
package types

import "github.com/google/uuid"

// UnitID uniquely identifies one insect instance for the whole run.
type UnitID string

// NewUnitID returns a fresh instance identifier.
func NewUnitID() UnitID {
	return UnitID(uuid.NewString())
}

// GameState describes the current phase of a simulation.
type GameState string

const (
	StateRunning GameState = "RUNNING"
	StateWon     GameState = "WON"
	StateLost    GameState = "LOST"
)

// PlaceSummary is a read-only snapshot of one place, enough for a renderer.
type PlaceSummary struct {
	Name      string
	Kind      string // "tunnel", "water" or "hive"
	Ant       string // textual rendering of the visible ant, "" if none
	Contained string // textual rendering of a sheltered ant, "" if none
	Bees      []string
}
