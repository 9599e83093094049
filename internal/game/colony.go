// internal/game/colony.go
package game

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"go-ant-defense/internal/config"
	"go-ant-defense/internal/defs"
	"go-ant-defense/internal/event"
	"go-ant-defense/internal/types"
	"go-ant-defense/internal/utils"
)

// ErrNotEnoughFood reports a placement rejected for lack of food. The
// rejection takes no action; it is an expected condition, not a failure.
var ErrNotEnoughFood = errors.New("not enough food")

// Strategy deploys ants each turn. It may call the colony's placement and
// removal operations any number of times, including zero, and must return
// before the cycle proceeds.
type Strategy func(c *Colony)

// RegisterFunc records one freshly built place with the colony.
type RegisterFunc func(p *Place, isBeeEntrance bool)

// LayoutFunc builds the tunnel places once before the simulation starts.
// Every place must be registered; places whose entrance should connect to
// the hive are flagged as bee entrances.
type LayoutFunc func(base *Place, register RegisterFunc)

// Colony manages global game state and simulates time.
type Colony struct {
	time  int
	food  int
	state types.GameState

	strategy Strategy
	plan     *AssaultPlan

	hive         *Place
	base         *Place // the protected AntQueen place; never registered
	places       map[string]*Place
	order        []string // place-registration order
	beeEntrances []*Place
	guarded      []*Place // places whose invasion loses the game

	factories map[string]AntFactory
	kinds     []string

	rng    *utils.PRNGService
	events *event.Dispatcher

	queenPlaced bool
	aborted     bool
}

// NewColony creates a colony for simulating one game. A nil rng or events
// falls back to fresh instances; a nil strategy never deploys.
func NewColony(strategy Strategy, plan *AssaultPlan, layout LayoutFunc, food int, rng *utils.PRNGService, events *event.Dispatcher) *Colony {
	if strategy == nil {
		strategy = func(*Colony) {}
	}
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	if events == nil {
		events = event.NewDispatcher()
	}
	c := &Colony{
		food:      food,
		state:     types.StateRunning,
		strategy:  strategy,
		plan:      plan,
		places:    make(map[string]*Place),
		factories: antFactories(),
		kinds:     defs.AntOrder,
		rng:       rng,
		events:    events,
	}
	for _, kind := range c.kinds {
		if _, ok := c.factories[kind]; !ok {
			panic(fmt.Sprintf("ant kind %q has no factory", kind))
		}
	}
	c.configure(layout)
	return c
}

// configure builds the place graph and seeds the hive with the plan's bees.
func (c *Colony) configure(layout LayoutFunc) {
	c.hive = NewHive()
	c.base = NewPlace(config.QueenName, nil)
	c.guarded = []*Place{c.base}

	register := func(p *Place, isBeeEntrance bool) {
		if _, dup := c.places[p.Name()]; dup {
			panic(fmt.Sprintf("duplicate place %s", p.Name()))
		}
		p.events = c.events
		c.places[p.Name()] = p
		c.order = append(c.order, p.Name())
		if isBeeEntrance {
			p.entrance = c.hive
			c.beeEntrances = append(c.beeEntrances, p)
		}
	}
	register(c.hive, false)
	layout(c.base, register)

	for _, bee := range c.plan.AllBees() {
		c.hive.AddInsect(bee)
	}
}

// Simulate runs the fixed-phase turn loop until the colony wins or falls.
// The terminal conditions are evaluated at the top of each cycle, so a cycle
// that produces one still completes before the loop ends.
func (c *Colony) Simulate() types.GameState {
	for c.state == types.StateRunning && !c.aborted {
		if len(c.guardedBees()) > 0 {
			c.state = types.StateLost
			c.events.Dispatch(event.Event{Type: event.GameLost})
			break
		}
		if len(c.Bees()) == 0 {
			c.state = types.StateWon
			c.events.Dispatch(event.Event{Type: event.GameWon})
			break
		}

		c.launchWave()
		c.strategy(c)
		for _, ant := range c.Ants() {
			if ant.Armor() > 0 {
				ant.Action(c)
			}
		}
		for _, bee := range c.Bees() {
			if bee.Armor() > 0 {
				bee.Action(c)
			}
		}
		c.time++
	}
	return c.state
}

// launchWave moves every bee scheduled for the current turn from the hive
// into a randomly chosen bee entrance.
func (c *Colony) launchWave() {
	wave := c.plan.Wave(c.time)
	if len(wave) == 0 {
		return
	}
	if len(c.beeEntrances) == 0 {
		panic("layout registered no bee entrances")
	}
	for _, bee := range wave {
		entrance, _ := utils.Choose(c.rng, c.beeEntrances)
		bee.MoveTo(entrance)
	}
	c.events.Dispatch(event.Event{Type: event.WaveLaunched, Data: len(wave)})
}

// DeployAnt places a new ant of the named kind if enough food remains.
// Insufficient food rejects the placement without partial effect. Placing
// onto an incompatibly occupied place panics, as that is a strategy error.
func (c *Colony) DeployAnt(placeName, kindName string) error {
	factory, ok := c.factories[kindName]
	if !ok {
		return fmt.Errorf("unknown ant type %q", kindName)
	}
	place, ok := c.places[placeName]
	if !ok {
		return fmt.Errorf("unknown place %q", placeName)
	}
	def := defs.MustAnt(kindName)
	if c.food < def.FoodCost {
		log.Printf("Not enough food remains to place %s", kindName)
		return ErrNotEnoughFood
	}
	ant := factory(c)
	place.AddInsect(ant)
	c.food -= def.FoodCost
	c.events.Dispatch(event.Event{Type: event.AntPlaced, Data: ant})
	return nil
}

// RemoveAnt removes the visible ant at the named place. An empty place is a
// no-op, and so is an attempt on the authoritative queen.
func (c *Colony) RemoveAnt(placeName string) error {
	place, ok := c.places[placeName]
	if !ok {
		return fmt.Errorf("unknown place %q", placeName)
	}
	ant := place.Ant()
	if ant == nil {
		return nil
	}
	place.RemoveInsect(ant)
	if place.Ant() != ant { // the queen survives removal; everything else goes
		c.events.Dispatch(event.Event{Type: event.AntRemoved, Data: ant})
	}
	return nil
}

// guardPlace adds p to the set of places whose invasion ends the game.
func (c *Colony) guardPlace(p *Place) {
	for _, g := range c.guarded {
		if g == p {
			return
		}
	}
	c.guarded = append(c.guarded, p)
}

func (c *Colony) guardedBees() []*Bee {
	var bees []*Bee
	for _, p := range c.guarded {
		bees = append(bees, p.bees...)
	}
	return bees
}

// AddFood credits the colony's food store.
func (c *Colony) AddFood(amount int) { c.food += amount }

func (c *Colony) Time() int              { return c.time }
func (c *Colony) Food() int              { return c.food }
func (c *Colony) State() types.GameState { return c.state }
func (c *Colony) Rng() *utils.PRNGService {
	return c.rng
}

// Events exposes the colony's dispatcher for subscribers.
func (c *Colony) Events() *event.Dispatcher { return c.events }

// Abort stops the simulation at the top of the next cycle without declaring
// a winner. Front ends use it when the player quits.
func (c *Colony) Abort() { c.aborted = true }

// Hive returns the bees' holding area.
func (c *Colony) Hive() *Place { return c.hive }

// Base returns the protected AntQueen place.
func (c *Colony) Base() *Place { return c.base }

// PlaceByName looks up a registered place.
func (c *Colony) PlaceByName(name string) *Place { return c.places[name] }

// Ants returns a snapshot of the visible ants in place-registration order.
func (c *Colony) Ants() []Ant {
	var ants []Ant
	for _, name := range c.order {
		if ant := c.places[name].Ant(); ant != nil {
			ants = append(ants, ant)
		}
	}
	return ants
}

// Bees returns a snapshot of every living bee, including those still waiting
// in the hive, in place-registration order.
func (c *Colony) Bees() []*Bee {
	var bees []*Bee
	for _, name := range c.order {
		bees = append(bees, c.places[name].bees...)
	}
	return bees
}

// Insects returns every visible unit in the colony.
func (c *Colony) Insects() []Unit {
	var units []Unit
	for _, ant := range c.Ants() {
		units = append(units, ant)
	}
	for _, bee := range c.Bees() {
		units = append(units, bee)
	}
	return units
}

// AntKinds returns the deployable kinds in presentation order.
func (c *Colony) AntKinds() []string {
	kinds := make([]string, len(c.kinds))
	copy(kinds, c.kinds)
	return kinds
}

// Summaries renders every registered place for read-only consumers.
func (c *Colony) Summaries() []types.PlaceSummary {
	summaries := make([]types.PlaceSummary, 0, len(c.order))
	for _, name := range c.order {
		summaries = append(summaries, c.places[name].Summary())
	}
	return summaries
}

func (c *Colony) String() string {
	var parts []string
	for _, u := range c.Insects() {
		parts = append(parts, u.String())
	}
	return fmt.Sprintf("[%s] (Food: %d, Time: %d)", strings.Join(parts, ", "), c.food, c.time)
}
