// internal/scenario/loader.go
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"go-ant-defense/internal/config"
	"go-ant-defense/internal/game"
)

// Scenario describes a complete custom game loaded from a YAML file.
type Scenario struct {
	Food   int        `yaml:"food"`
	Layout LayoutSpec `yaml:"layout"`
	Waves  []WaveSpec `yaml:"waves"`
}

// LayoutSpec is the tunnel geometry of a scenario.
type LayoutSpec struct {
	Length        int `yaml:"length"`
	Tunnels       int `yaml:"tunnels"`
	MoatFrequency int `yaml:"moat_frequency"`
}

// WaveSpec schedules one wave of bees. Armor 0 means the default.
type WaveSpec struct {
	Turn  int `yaml:"turn"`
	Count int `yaml:"count"`
	Armor int `yaml:"armor"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(file)
}

// ParseScenario decodes a YAML scenario document.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
	}
	if s.Food <= 0 {
		s.Food = config.DefaultFood
	}
	if s.Layout.Length <= 0 {
		s.Layout.Length = config.TunnelLength
	}
	if s.Layout.Tunnels <= 0 {
		s.Layout.Tunnels = 1
	}
	if len(s.Waves) == 0 {
		return nil, fmt.Errorf("scenario schedules no waves")
	}
	for i, w := range s.Waves {
		if w.Turn < 0 || w.Count <= 0 {
			return nil, fmt.Errorf("wave %d has invalid turn %d / count %d", i, w.Turn, w.Count)
		}
	}
	return &s, nil
}

// Build turns the scenario into the collaborators the colony consumes.
func (s *Scenario) Build() (game.LayoutFunc, *game.AssaultPlan) {
	layout := MixedLayout(s.Layout.Length, s.Layout.Tunnels, s.Layout.MoatFrequency)
	plan := game.NewAssaultPlan(config.BeeArmor)
	for _, w := range s.Waves {
		if w.Armor > 0 {
			plan.AddArmoredWave(w.Turn, w.Count, w.Armor)
		} else {
			plan.AddWave(w.Turn, w.Count)
		}
	}
	return layout, plan
}
