// internal/strategy/strategy.go
package strategy

import (
	"errors"
	"log"

	"go-ant-defense/internal/game"
)

// Command is one scripted order: a deployment, or a removal when Remove is
// set.
type Command struct {
	Turn   int
	Place  string
	Kind   string
	Remove bool
}

// Scripted replays a fixed sequence of commands keyed by turn number.
// Failed deployments are logged and skipped, so a script short on food
// degrades instead of halting the game.
func Scripted(commands []Command) game.Strategy {
	return func(c *game.Colony) {
		for _, cmd := range commands {
			if cmd.Turn != c.Time() {
				continue
			}
			if cmd.Remove {
				if err := c.RemoveAnt(cmd.Place); err != nil {
					log.Printf("scripted removal failed: %v", err)
				}
				continue
			}
			if err := c.DeployAnt(cmd.Place, cmd.Kind); err != nil {
				log.Printf("scripted deployment failed: %v", err)
			}
		}
	}
}

// Auto greedily fills empty tunnel places with throwers while food lasts.
// It is the demo opponent for headless runs, not a strong player.
func Auto() game.Strategy {
	return func(c *game.Colony) {
		for _, s := range c.Summaries() {
			if s.Kind != "tunnel" || s.Ant != "" {
				continue
			}
			err := c.DeployAnt(s.Name, "Thrower")
			if errors.Is(err, game.ErrNotEnoughFood) {
				return
			}
			if err != nil {
				log.Printf("auto deployment failed: %v", err)
				return
			}
		}
	}
}

// None deploys nothing, ever.
func None() game.Strategy {
	return func(*game.Colony) {}
}
