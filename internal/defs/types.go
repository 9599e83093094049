// internal/defs/types.go
package defs

// AntDefinition holds all the static data for one kind of ant.
type AntDefinition struct {
	Name           string `json:"name"`
	Armor          int    `json:"armor"`
	FoodCost       int    `json:"food_cost"`
	Damage         int    `json:"damage"`
	MinRange       int    `json:"min_range"`
	MaxRange       int    `json:"max_range"`
	Watersafe      bool   `json:"watersafe"`
	BlocksPath     bool   `json:"blocks_path"`
	DigestTurns    int    `json:"digest_turns"`    // HungryAnt only
	EffectDuration int    `json:"effect_duration"` // Slow/Stun throwers only
}
