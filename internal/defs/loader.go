// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadAntDefinitions reads an ant configuration file and overlays it onto the
// AntLibrary. Entries keep their default values for the kinds the file does
// not mention; unknown names are rejected so typos surface early.
func LoadAntDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read ant definitions file: %w", err)
	}

	var antDefs []AntDefinition
	if err := json.Unmarshal(file, &antDefs); err != nil {
		return fmt.Errorf("failed to unmarshal ant definitions: %w", err)
	}

	for _, def := range antDefs {
		if _, ok := AntLibrary[def.Name]; !ok {
			return fmt.Errorf("unknown ant kind %q in %s", def.Name, path)
		}
		AntLibrary[def.Name] = def
	}
	return nil
}

// MustAnt returns the definition for name or panics. The registry of ant
// kinds is closed, so a miss is a programming error, not bad input.
func MustAnt(name string) AntDefinition {
	def, ok := AntLibrary[name]
	if !ok {
		panic(fmt.Sprintf("no ant definition for %q", name))
	}
	return def
}
