// internal/scenario/layout.go
package scenario

import (
	"fmt"

	"go-ant-defense/internal/config"
	"go-ant-defense/internal/game"
)

// MixedLayout builds tunnels of length places each, converging on the colony
// base. When moatFrequency is non-zero, every moatFrequency-th step is
// water. The last place of each tunnel is a bee entrance.
func MixedLayout(length, tunnels, moatFrequency int) game.LayoutFunc {
	return func(base *game.Place, register game.RegisterFunc) {
		for tunnel := 0; tunnel < tunnels; tunnel++ {
			exit := base
			for step := 0; step < length; step++ {
				var p *game.Place
				if moatFrequency != 0 && (step+1)%moatFrequency == 0 {
					p = game.NewWater(fmt.Sprintf("water_%d_%d", tunnel, step), exit)
				} else {
					p = game.NewPlace(fmt.Sprintf("tunnel_%d_%d", tunnel, step), exit)
				}
				register(p, step == length-1)
				exit = p
			}
		}
	}
}

// TestLayout is a single dry tunnel, for quick games and tests.
func TestLayout() game.LayoutFunc {
	return MixedLayout(config.TunnelLength, 1, 0)
}

// DryLayout is the full layout without water.
func DryLayout() game.LayoutFunc {
	return MixedLayout(config.TunnelLength, config.TunnelCount, 0)
}

// WetLayout is the full layout with moats.
func WetLayout() game.LayoutFunc {
	return MixedLayout(config.TunnelLength, config.TunnelCount, config.MoatFrequency)
}
