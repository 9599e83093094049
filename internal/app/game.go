// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-ant-defense/internal/event"
	"go-ant-defense/internal/game"
	"go-ant-defense/internal/types"
	"go-ant-defense/internal/ui"
	"go-ant-defense/internal/utils"
)

// Options selects the scenario, strategy and front end for one run.
type Options struct {
	Food        int
	Layout      game.LayoutFunc
	Plan        *game.AssaultPlan
	Seed        int64
	Interactive bool
	Strategy    game.Strategy // ignored when Interactive is set
}

// App wires the colony, its collaborators and the front end together.
type App struct {
	Colony *game.Colony
	Events *event.Dispatcher

	terminal *ui.Terminal
}

// gameEventListener logs game events in headless runs.
type gameEventListener struct{}

func (l *gameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveLaunched:
		log.Printf("%d bee(s) enter the tunnels", e.Data)
	case event.AntPlaced:
		log.Printf("placed %v", e.Data)
	case event.AntRemoved:
		log.Printf("removed %v", e.Data)
	case event.GameWon:
		log.Printf("all bees are vanquished")
	case event.GameLost:
		log.Printf("bees have reached the queen")
	}
}

var allEventTypes = []event.EventType{
	event.AntPlaced, event.AntRemoved, event.InsectDestroyed,
	event.WaveLaunched, event.GameWon, event.GameLost,
}

// New builds a ready-to-run game from the options.
func New(opts Options) (*App, error) {
	if opts.Layout == nil || opts.Plan == nil {
		return nil, fmt.Errorf("app: layout and assault plan are required")
	}

	dispatcher := event.NewDispatcher()
	a := &App{Events: dispatcher}

	strategy := opts.Strategy
	if opts.Interactive {
		terminal, err := ui.NewTerminal()
		if err != nil {
			return nil, fmt.Errorf("failed to start terminal ui: %w", err)
		}
		a.terminal = terminal
		for _, et := range allEventTypes {
			dispatcher.Subscribe(et, terminal)
		}
		strategy = func(c *game.Colony) {
			terminal.TakeTurn(c)
			if terminal.Quit() {
				c.Abort()
			}
		}
	} else {
		listener := &gameEventListener{}
		for _, et := range allEventTypes {
			dispatcher.Subscribe(et, listener)
		}
	}

	rng := utils.NewPRNGService(opts.Seed)
	a.Colony = game.NewColony(strategy, opts.Plan, opts.Layout, opts.Food, rng, dispatcher)
	return a, nil
}

// Run simulates the game to completion and reports the outcome.
func (a *App) Run() types.GameState {
	state := a.Colony.Simulate()
	if a.terminal != nil {
		a.terminal.ShowOutcome(a.Colony)
		a.terminal.Close()
	}
	switch state {
	case types.StateWon:
		log.Printf("All bees are vanquished. You win!")
	case types.StateLost:
		log.Printf("The ant queen has perished. Please try again.")
	default:
		log.Printf("Game aborted.")
	}
	return state
}
