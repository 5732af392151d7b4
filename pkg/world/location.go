package world

import "strings"

// Exit connects a location to a destination in a named direction.
// DestinationName caches the destination's display name so exits can
// be rendered without a second lookup.
type Exit struct {
	Direction       string `json:"direction" yaml:"direction"`
	Destination     string `json:"destination" yaml:"destination"`
	DestinationName string `json:"destination_name" yaml:"destination_name"`
}

// Location is a node in the game's traversal graph.
type Location struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Exits       []Exit `json:"exits,omitempty" yaml:"exits,omitempty"`
}

// Exit finds an exit by direction or by destination display name,
// case-insensitively. Returns nil when no exit matches.
func (l *Location) Exit(direction string) *Exit {
	for i := range l.Exits {
		e := &l.Exits[i]
		if strings.EqualFold(e.Direction, direction) || strings.EqualFold(e.DestinationName, direction) {
			return e
		}
	}
	return nil
}
