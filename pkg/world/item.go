package world

// LocationInventory is the sentinel Location value for items carried
// by the player.
const LocationInventory = "inventory"

// Item is an object the player can examine, and usually take, drop
// and use. Location is the only mutable field; it holds a location ID
// or the inventory sentinel.
type Item struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Location    string `json:"location" yaml:"location"`
	CanTake     bool   `json:"can_take" yaml:"can_take"`
	UseText     string `json:"use_text,omitempty" yaml:"use_text,omitempty"`

	// Home is the location the item started at, recorded at load time.
	// Used to reset item positions on restart and load.
	Home string `json:"-" yaml:"-"`
}

// Carried reports whether the item is in the player's inventory.
func (i *Item) Carried() bool {
	return i.Location == LocationInventory
}
