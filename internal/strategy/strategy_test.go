// internal/strategy/strategy_test.go
package strategy

import (
	"testing"

	"go-ant-defense/internal/game"
	"go-ant-defense/internal/scenario"
	"go-ant-defense/internal/types"
	"go-ant-defense/internal/utils"
)

func newColony(strat game.Strategy, plan *game.AssaultPlan, food int) *game.Colony {
	return game.NewColony(strat, plan, scenario.TestLayout(), food, utils.NewPRNGService(7), nil)
}

func TestScripted_DeploysOnScheduledTurn(t *testing.T) {
	commands := []Command{
		{Turn: 0, Place: "tunnel_0_0", Kind: "Thrower"},
		{Turn: 1, Place: "tunnel_0_1", Kind: "Wall"},
	}
	plan := game.NewAssaultPlan(3).AddWave(2, 1)
	c := newColony(Scripted(commands), plan, 8)

	state := c.Simulate()
	if state != types.StateWon {
		t.Fatalf("state = %s, want WON", state)
	}
	if c.PlaceByName("tunnel_0_0").Ant() == nil {
		t.Fatal("turn-0 command not executed")
	}
	if c.PlaceByName("tunnel_0_1").Ant() == nil {
		t.Fatal("turn-1 command not executed")
	}
}

func TestScripted_Removal(t *testing.T) {
	commands := []Command{
		{Turn: 0, Place: "tunnel_0_0", Kind: "Wall"},
		{Turn: 1, Place: "tunnel_0_0", Remove: true},
	}
	plan := game.NewAssaultPlan(3).AddWave(1, 1)
	c := newColony(Scripted(commands), plan, 4)

	state := c.Simulate()
	if state != types.StateLost {
		t.Fatalf("state = %s, want LOST", state)
	}
	if c.PlaceByName("tunnel_0_0").Ant() != nil {
		t.Fatal("removal command not executed")
	}
}

func TestScripted_SurvivesFailedCommands(t *testing.T) {
	commands := []Command{
		{Turn: 0, Place: "tunnel_0_0", Kind: "Thrower"}, // costs 4, rejected
		{Turn: 0, Place: "nowhere", Kind: "Wall"},       // unknown place
	}
	plan := game.NewAssaultPlan(3).AddWave(1, 1)
	c := newColony(Scripted(commands), plan, 2)

	state := c.Simulate()
	if state != types.StateLost {
		t.Fatalf("failed commands should be skipped, state %s", state)
	}
}

func TestAuto_FillsTunnelWhileFoodLasts(t *testing.T) {
	plan := game.NewAssaultPlan(3).AddWave(6, 1)
	c := newColony(Auto(), plan, 9)

	state := c.Simulate()
	if state != types.StateWon {
		t.Fatalf("state = %s, want WON", state)
	}
	// Two throwers at 4 food each fit in a budget of 9.
	deployed := 0
	for _, s := range c.Summaries() {
		if s.Ant != "" {
			deployed++
		}
	}
	if deployed != 2 {
		t.Fatalf("auto deployed %d ants, want 2", deployed)
	}
}

func TestNone_NeverDeploys(t *testing.T) {
	plan := game.NewAssaultPlan(3).AddWave(0, 1)
	c := newColony(None(), plan, 100)

	state := c.Simulate()
	if state != types.StateLost {
		t.Fatalf("state = %s, want LOST", state)
	}
	if got := len(c.Ants()); got != 0 {
		t.Fatalf("ants = %d, want 0", got)
	}
}
