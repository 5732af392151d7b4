package world

import (
	"sort"
	"strings"
)

// World is the loaded content catalog: every location, item, NPC,
// challenge and danger scenario, keyed by ID. Entity membership at a
// location is derived by query, never stored as mirrored lists, so
// there is no second side to keep in sync.
type World struct {
	Name       string                     `json:"name" yaml:"name"`
	Start      string                     `json:"start" yaml:"start"`
	Locations  map[string]*Location       `json:"locations" yaml:"locations"`
	Items      map[string]*Item           `json:"items" yaml:"items"`
	NPCs       map[string]*NPC            `json:"npcs" yaml:"npcs"`
	Challenges map[string]*Challenge      `json:"challenges" yaml:"challenges"`
	Dangers    map[string]*DangerScenario `json:"dangers" yaml:"dangers"`
}

// Clone returns a copy safe for per-session mutation. Items are the
// only entities with mutable state, so only the item map is deep
// copied; everything else is shared.
func (w *World) Clone() *World {
	items := make(map[string]*Item, len(w.Items))
	for id, item := range w.Items {
		copied := *item
		items[id] = &copied
	}
	return &World{
		Name:       w.Name,
		Start:      w.Start,
		Locations:  w.Locations,
		Items:      items,
		NPCs:       w.NPCs,
		Challenges: w.Challenges,
		Dangers:    w.Dangers,
	}
}

// ItemsAt lists the items present at a location, ordered by ID.
func (w *World) ItemsAt(locationID string) []*Item {
	var out []*Item
	for _, item := range w.Items {
		if item.Location == locationID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CarriedItems lists the items in the player's inventory, ordered by ID.
func (w *World) CarriedItems() []*Item {
	var out []*Item
	for _, item := range w.Items {
		if item.Carried() {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// NPCsAt lists the NPCs at a location, ordered by ID.
func (w *World) NPCsAt(locationID string) []*NPC {
	var out []*NPC
	for _, npc := range w.NPCs {
		if npc.Location == locationID {
			out = append(out, npc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ChallengesAt lists the challenges at a location, ordered by ID.
func (w *World) ChallengesAt(locationID string) []*Challenge {
	var out []*Challenge
	for _, c := range w.Challenges {
		if c.Location == locationID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// DangersAt lists the danger scenarios at a location, ordered by ID.
func (w *World) DangersAt(locationID string) []*DangerScenario {
	var out []*DangerScenario
	for _, d := range w.Dangers {
		if d.Location == locationID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// FindItem matches an item in the given list by display name,
// case-insensitively. Returns nil when nothing matches.
func FindItem(items []*Item, name string) *Item {
	for _, item := range items {
		if strings.EqualFold(item.Name, name) {
			return item
		}
	}
	return nil
}

// FindNPC matches an NPC in the given list by display name,
// case-insensitively. Returns nil when nothing matches.
func FindNPC(npcs []*NPC, name string) *NPC {
	for _, npc := range npcs {
		if strings.EqualFold(npc.Name, name) {
			return npc
		}
	}
	return nil
}

// CoverageByTopic counts challenges and danger scenarios per
// curriculum topic. Used for content coverage reporting only.
func (w *World) CoverageByTopic() map[string]int {
	coverage := make(map[string]int)
	for _, c := range w.Challenges {
		if c.CurriculumTopic != "" {
			coverage[c.CurriculumTopic]++
		}
	}
	for _, d := range w.Dangers {
		if d.CurriculumTopic != "" {
			coverage[d.CurriculumTopic]++
		}
	}
	return coverage
}
