// internal/scenario/assault.go
package scenario

import (
	"go-ant-defense/internal/config"
	"go-ant-defense/internal/game"
)

// MakeTestAssaultPlan schedules two lone bees, matching the test layout.
func MakeTestAssaultPlan() *game.AssaultPlan {
	return game.NewAssaultPlan(config.BeeArmor).AddWave(2, 1).AddWave(3, 1)
}

// MakeFullAssaultPlan is the standard game: a trickle of bees followed by a
// final rush.
func MakeFullAssaultPlan() *game.AssaultPlan {
	plan := game.NewAssaultPlan(config.BeeArmor).AddWave(2, 1)
	for turn := 3; turn < 15; turn += 2 {
		plan.AddWave(turn, 1)
	}
	return plan.AddWave(15, 8)
}

// MakeInsaneAssaultPlan sends tougher bees every turn and ends with a swarm.
func MakeInsaneAssaultPlan() *game.AssaultPlan {
	plan := game.NewAssaultPlan(config.InsaneBeeArmor).AddWave(1, 2)
	for turn := 3; turn < 15; turn++ {
		plan.AddWave(turn, 1)
	}
	return plan.AddWave(15, 20)
}
