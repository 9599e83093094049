// internal/ui/terminal.go
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"go-ant-defense/internal/event"
	"go-ant-defense/internal/interfaces"
	"go-ant-defense/internal/types"
)

var (
	styleDefault = tcell.StyleDefault
	styleHeader  = tcell.StyleDefault.Bold(true)
	styleCursor  = tcell.StyleDefault.Reverse(true)
	styleWater   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleBees    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleNotice  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// Terminal is the interactive console front end. It renders the colony from
// read-only summaries and drives placement during the strategy phase.
type Terminal struct {
	screen tcell.Screen
	cursor int // index into the deployable places
	kind   int // index into the ant kinds
	notice string
	events []string
	quit   bool
}

// NewTerminal initializes the terminal screen.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	return &Terminal{screen: screen}, nil
}

// Close releases the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

// Quit reports whether the player asked to leave the game.
func (t *Terminal) Quit() bool { return t.quit }

// OnEvent keeps a short log of recent game events for the footer.
func (t *Terminal) OnEvent(e event.Event) {
	var line string
	switch e.Type {
	case event.WaveLaunched:
		line = fmt.Sprintf("%d bee(s) enter the tunnels", e.Data)
	case event.InsectDestroyed:
		line = fmt.Sprintf("%v expired", e.Data)
	case event.AntPlaced:
		line = fmt.Sprintf("placed %v", e.Data)
	case event.AntRemoved:
		line = fmt.Sprintf("removed %v", e.Data)
	default:
		line = string(e.Type)
	}
	t.events = append(t.events, line)
	if len(t.events) > 4 {
		t.events = t.events[len(t.events)-4:]
	}
}

// TakeTurn runs the placement loop until the player ends the turn or quits.
// It satisfies the strategy contract: synchronous, returns before the cycle
// proceeds.
func (t *Terminal) TakeTurn(ctx interfaces.GameContext) {
	for {
		deployable := t.draw(ctx)
		ev := t.screen.PollEvent()
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			if _, resized := ev.(*tcell.EventResize); resized {
				t.screen.Sync()
			}
			continue
		}
		t.notice = ""
		switch {
		case key.Key() == tcell.KeyEscape || key.Rune() == 'q':
			t.quit = true
			return
		case key.Key() == tcell.KeyEnter || key.Rune() == ' ':
			return
		case key.Key() == tcell.KeyUp || key.Rune() == 'k':
			if t.cursor > 0 {
				t.cursor--
			}
		case key.Key() == tcell.KeyDown || key.Rune() == 'j':
			if t.cursor < len(deployable)-1 {
				t.cursor++
			}
		case key.Key() == tcell.KeyLeft || key.Rune() == 'h':
			kinds := ctx.AntKinds()
			t.kind = (t.kind + len(kinds) - 1) % len(kinds)
		case key.Key() == tcell.KeyRight || key.Rune() == 'l' || key.Key() == tcell.KeyTab:
			t.kind = (t.kind + 1) % len(ctx.AntKinds())
		case key.Rune() == 'p':
			if t.cursor < len(deployable) {
				kind := ctx.AntKinds()[t.kind]
				if err := ctx.DeployAnt(deployable[t.cursor], kind); err != nil {
					t.notice = err.Error()
				}
			}
		case key.Rune() == 'r':
			if t.cursor < len(deployable) {
				if err := ctx.RemoveAnt(deployable[t.cursor]); err != nil {
					t.notice = err.Error()
				}
			}
		}
	}
}

// ShowOutcome renders the final state and waits for one keypress.
func (t *Terminal) ShowOutcome(view interfaces.ColonyView) {
	t.draw(view)
	var msg string
	switch view.State() {
	case types.StateWon:
		msg = "All bees are vanquished. You win! (press any key)"
	case types.StateLost:
		msg = "The ant queen has perished. Please try again. (press any key)"
	default:
		return
	}
	_, height := t.screen.Size()
	t.drawText(0, height-1, styleHeader, msg)
	t.screen.Show()
	for {
		if _, ok := t.screen.PollEvent().(*tcell.EventKey); ok {
			return
		}
	}
}

// draw renders the whole view and returns the deployable place names in
// display order.
func (t *Terminal) draw(view interfaces.ColonyView) []string {
	t.screen.Clear()
	t.drawText(0, 0, styleHeader,
		fmt.Sprintf("Turn %d   Food %d   State %s", view.Time(), view.Food(), view.State()))

	kinds := view.AntKinds()
	if t.kind >= len(kinds) {
		t.kind = 0
	}
	t.drawText(0, 1, styleDefault, "ant: "+kinds[t.kind]+
		"   [h/l] kind  [j/k] place  [p]lace  [r]emove  [enter] end turn  [q]uit")

	var deployable []string
	row := 3
	for _, s := range view.Summaries() {
		if s.Kind == "hive" {
			t.drawText(0, row, styleBees, fmt.Sprintf("%-14s %d bee(s) waiting", s.Name, len(s.Bees)))
			row++
			continue
		}
		style := styleDefault
		if s.Kind == "water" {
			style = styleWater
		}
		if len(deployable) == t.cursor {
			style = styleCursor
		}
		occupant := s.Ant
		if s.Contained != "" {
			occupant = fmt.Sprintf("%s [%s]", s.Ant, s.Contained)
		}
		line := fmt.Sprintf("%-14s %-28s", s.Name, occupant)
		t.drawText(0, row, style, line)
		if len(s.Bees) > 0 {
			t.drawText(len(line)+1, row, styleBees, fmt.Sprintf("%d bee(s)", len(s.Bees)))
		}
		deployable = append(deployable, s.Name)
		row++
	}

	row++
	for _, line := range t.events {
		t.drawText(0, row, styleDefault, line)
		row++
	}
	if t.notice != "" {
		t.drawText(0, row, styleNotice, t.notice)
	}
	t.screen.Show()
	return deployable
}

func (t *Terminal) drawText(x, y int, style tcell.Style, s string) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}
