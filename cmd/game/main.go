// cmd/game/main.go
package main

import (
	"log"

	"github.com/spf13/cobra"

	"go-ant-defense/internal/app"
	"go-ant-defense/internal/config"
	"go-ant-defense/internal/defs"
	"go-ant-defense/internal/game"
	"go-ant-defense/internal/scenario"
	"go-ant-defense/internal/strategy"
)

var (
	flagTen      bool
	flagFull     bool
	flagWater    bool
	flagInsane   bool
	flagAuto     bool
	flagFood     int
	flagSeed     int64
	flagScenario string
	flagAnts     string
)

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "Defend the ant colony against scheduled bee waves",
	RunE:  run,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagTen, "ten", "t", false, "start with ten food")
	rootCmd.Flags().BoolVarP(&flagFull, "full", "f", false, "load the full layout and assault plan")
	rootCmd.Flags().BoolVarP(&flagWater, "water", "w", false, "load the full layout with water")
	rootCmd.Flags().BoolVarP(&flagInsane, "insane", "i", false, "load a difficult assault plan")
	rootCmd.Flags().BoolVar(&flagAuto, "auto", false, "run headless with the built-in strategy")
	rootCmd.Flags().IntVar(&flagFood, "food", 0, "override the starting food")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "random seed (0 means time-based)")
	rootCmd.Flags().StringVar(&flagScenario, "scenario", "", "load layout and waves from a YAML scenario file")
	rootCmd.Flags().StringVar(&flagAnts, "ants", "", "override ant definitions from a JSON file")
}

func run(cmd *cobra.Command, args []string) error {
	if flagAnts != "" {
		if err := defs.LoadAntDefinitions(flagAnts); err != nil {
			return err
		}
	}

	food := config.DefaultFood
	layout := scenario.TestLayout()
	plan := scenario.MakeTestAssaultPlan()
	if flagTen {
		food = config.TenFood
	}
	if flagFull {
		layout = scenario.DryLayout()
		plan = scenario.MakeFullAssaultPlan()
	}
	if flagWater {
		layout = scenario.WetLayout()
	}
	if flagInsane {
		plan = scenario.MakeInsaneAssaultPlan()
	}
	if flagScenario != "" {
		sc, err := scenario.LoadScenario(flagScenario)
		if err != nil {
			return err
		}
		layout, plan = sc.Build()
		food = sc.Food
	}
	if flagFood > 0 {
		food = flagFood
	}

	var strat game.Strategy
	if flagAuto {
		strat = strategy.Auto()
	}
	a, err := app.New(app.Options{
		Food:        food,
		Layout:      layout,
		Plan:        plan,
		Seed:        flagSeed,
		Interactive: !flagAuto,
		Strategy:    strat,
	})
	if err != nil {
		return err
	}
	a.Run()
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
