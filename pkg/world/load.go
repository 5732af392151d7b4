package world

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Content file base names under the data directory. Each may be JSON
// or YAML; only the manifest and locations are required.
const (
	manifestFile   = "world"
	locationsFile  = "locations"
	itemsFile      = "items"
	npcsFile       = "npcs"
	challengesFile = "challenges"
	dangersFile    = "dangers"
)

// Load reads world content from a data directory. Missing optional
// files yield empty entity maps. Referential problems are not checked
// here; call Validate for that.
func Load(dir string) (*World, error) {
	w := &World{
		Locations:  make(map[string]*Location),
		Items:      make(map[string]*Item),
		NPCs:       make(map[string]*NPC),
		Challenges: make(map[string]*Challenge),
		Dangers:    make(map[string]*DangerScenario),
	}

	var manifest struct {
		Name  string `json:"name" yaml:"name"`
		Start string `json:"start" yaml:"start"`
	}
	if err := readContent(dir, manifestFile, &manifest, true); err != nil {
		return nil, err
	}
	w.Name = manifest.Name
	w.Start = manifest.Start

	if err := readContent(dir, locationsFile, &w.Locations, true); err != nil {
		return nil, err
	}
	if err := readContent(dir, itemsFile, &w.Items, false); err != nil {
		return nil, err
	}
	if err := readContent(dir, npcsFile, &w.NPCs, false); err != nil {
		return nil, err
	}
	if err := readContent(dir, challengesFile, &w.Challenges, false); err != nil {
		return nil, err
	}
	if err := readContent(dir, dangersFile, &w.Dangers, false); err != nil {
		return nil, err
	}

	// Map keys are authoritative for IDs.
	for id, loc := range w.Locations {
		loc.ID = id
	}
	for id, item := range w.Items {
		item.ID = id
		item.Home = item.Location
	}
	for id, npc := range w.NPCs {
		npc.ID = id
	}
	for id, c := range w.Challenges {
		c.ID = id
	}
	for id, d := range w.Dangers {
		d.ID = id
	}

	return w, nil
}

// readContent decodes dir/<base>.json, .yaml or .yml into v, trying
// the extensions in that order.
func readContent(dir, base string, v any, required bool) error {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		path := filepath.Join(dir, base+ext)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		if ext == ".json" {
			if err := json.Unmarshal(data, v); err != nil {
				return fmt.Errorf("failed to parse %s: %w", path, err)
			}
		} else {
			if err := yaml.Unmarshal(data, v); err != nil {
				return fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
		return nil
	}

	if required {
		return fmt.Errorf("required content file %s not found in %s", base, dir)
	}
	return nil
}
