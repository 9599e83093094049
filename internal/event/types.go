// internal/event/types.go
package event

const (
	AntPlaced       EventType = "AntPlaced"       // an ant was deployed
	AntRemoved      EventType = "AntRemoved"      // an ant was removed by the strategy
	InsectDestroyed EventType = "InsectDestroyed" // armor reached zero
	WaveLaunched    EventType = "WaveLaunched"    // bees left the hive this turn
	GameWon         EventType = "GameWon"
	GameLost        EventType = "GameLost"
)
