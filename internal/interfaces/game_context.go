// internal/interfaces/game_context.go
package interfaces

import "go-ant-defense/internal/types"

// ColonyView is the read-only window a renderer needs into a running game.
type ColonyView interface {
	Time() int
	Food() int
	State() types.GameState
	Summaries() []types.PlaceSummary
	AntKinds() []string
}

// GameContext adds the mutating calls a turn controller needs on top of the
// read-only view.
type GameContext interface {
	ColonyView
	DeployAnt(placeName, kindName string) error
	RemoveAnt(placeName string) error
}
