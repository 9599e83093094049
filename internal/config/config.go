// internal/config/config.go
package config

const (
	// Colony economy.
	DefaultFood = 2
	TenFood     = 10

	// Tunnel geometry for the stock layouts.
	TunnelLength  = 8
	TunnelCount   = 3
	MoatFrequency = 3 // every Nth step of a wet layout is water

	// Bees.
	BeeArmor       = 3
	InsaneBeeArmor = 4
	BeeSting       = 1 // damage per sting against a blocking ant

	// Status effects.
	SlowDuration = 3
	StunDuration = 1

	// HungryAnt digestion.
	DigestTurns = 3

	// Place names of the two special locations.
	HiveName  = "Hive"
	QueenName = "AntQueen"
)
