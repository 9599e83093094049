// internal/defs/ants.go
package defs

// AntLibrary is the library of all ant definitions, mapped by their name.
// The defaults below match the classic balance; LoadAntDefinitions can
// replace individual entries from a JSON file.
var AntLibrary = defaultAnts()

// AntOrder fixes the presentation order of ant kinds for UIs and the
// deployment registry.
var AntOrder = []string{
	"Harvester", "Thrower", "Short", "Long", "Wall", "Fire", "Ninja",
	"Scuba", "Hungry", "Bodyguard", "Slow", "Stun", "Queen", "Remover",
}

func defaultAnts() map[string]AntDefinition {
	return map[string]AntDefinition{
		"Harvester": {Name: "Harvester", Armor: 1, FoodCost: 2, BlocksPath: true},
		"Thrower":   {Name: "Thrower", Armor: 1, FoodCost: 4, Damage: 1, MinRange: 0, MaxRange: 10, BlocksPath: true},
		"Short":     {Name: "Short", Armor: 1, FoodCost: 3, Damage: 1, MinRange: 0, MaxRange: 2, BlocksPath: true},
		"Long":      {Name: "Long", Armor: 1, FoodCost: 3, Damage: 1, MinRange: 4, MaxRange: 10, BlocksPath: true},
		"Wall":      {Name: "Wall", Armor: 4, FoodCost: 4, BlocksPath: true},
		"Fire":      {Name: "Fire", Armor: 1, FoodCost: 4, Damage: 3, BlocksPath: true},
		"Ninja":     {Name: "Ninja", Armor: 1, FoodCost: 6, Damage: 1, BlocksPath: false},
		"Scuba":     {Name: "Scuba", Armor: 1, FoodCost: 5, Damage: 1, MinRange: 0, MaxRange: 10, Watersafe: true, BlocksPath: true},
		"Hungry":    {Name: "Hungry", Armor: 1, FoodCost: 4, DigestTurns: 3, BlocksPath: true},
		"Bodyguard": {Name: "Bodyguard", Armor: 2, FoodCost: 4, BlocksPath: true},
		"Slow":      {Name: "Slow", Armor: 1, FoodCost: 4, MinRange: 0, MaxRange: 10, EffectDuration: 3, BlocksPath: true},
		"Stun":      {Name: "Stun", Armor: 1, FoodCost: 6, MinRange: 0, MaxRange: 10, EffectDuration: 1, BlocksPath: true},
		"Queen":     {Name: "Queen", Armor: 1, FoodCost: 6, Damage: 1, MinRange: 0, MaxRange: 10, Watersafe: true, BlocksPath: true},
		"Remover":   {Name: "Remover", Armor: 0, FoodCost: 0, BlocksPath: true},
	}
}
