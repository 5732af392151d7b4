package state

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Health bounds. Health is always clamped into [MinHealth, MaxHealth].
const (
	MinHealth = 0
	MaxHealth = 100
)

// GameState is the single mutable session aggregate: where the player
// is, what they carry, their health and score, and at most one active
// interaction.
type GameState struct {
	ID              uuid.UUID
	CurrentLocation string
	Health          int
	Score           int
	Inventory       []string
	Visited         map[string]bool
	Flags           map[string]any

	interaction Interaction
}

// NewGameState creates a fresh session starting at the given location.
func NewGameState(startLocation string) *GameState {
	return &GameState{
		ID:              uuid.New(),
		CurrentLocation: startLocation,
		Health:          MaxHealth,
		Score:           0,
		Inventory:       make([]string, 0),
		Visited:         make(map[string]bool),
		Flags:           make(map[string]any),
	}
}

// MoveTo updates the current location and marks it visited.
func (gs *GameState) MoveTo(locationID string) {
	gs.CurrentLocation = locationID
	gs.MarkVisited(locationID)
}

// MarkVisited records a location as visited. Idempotent.
func (gs *GameState) MarkVisited(locationID string) {
	if gs.Visited == nil {
		gs.Visited = make(map[string]bool)
	}
	gs.Visited[locationID] = true
}

func (gs *GameState) HasVisited(locationID string) bool {
	return gs.Visited[locationID]
}

// AddToInventory appends an item ID, rejecting duplicates.
func (gs *GameState) AddToInventory(itemID string) bool {
	if gs.HasItem(itemID) {
		return false
	}
	gs.Inventory = append(gs.Inventory, itemID)
	return true
}

// RemoveFromInventory removes an item ID. Returns false when the item
// is not carried.
func (gs *GameState) RemoveFromInventory(itemID string) bool {
	idx := slices.Index(gs.Inventory, itemID)
	if idx < 0 {
		return false
	}
	gs.Inventory = append(gs.Inventory[:idx], gs.Inventory[idx+1:]...)
	return true
}

func (gs *GameState) HasItem(itemID string) bool {
	return slices.Contains(gs.Inventory, itemID)
}

// ModifyHealth applies a delta and clamps the result into bounds.
// Returns the new health value.
func (gs *GameState) ModifyHealth(delta int) int {
	gs.Health += delta
	if gs.Health < MinHealth {
		gs.Health = MinHealth
	}
	if gs.Health > MaxHealth {
		gs.Health = MaxHealth
	}
	return gs.Health
}

// ModifyScore applies a delta. Score is unbounded.
func (gs *GameState) ModifyScore(delta int) int {
	gs.Score += delta
	return gs.Score
}

func (gs *GameState) SetFlag(name string, value any) {
	if gs.Flags == nil {
		gs.Flags = make(map[string]any)
	}
	gs.Flags[name] = value
}

func (gs *GameState) Flag(name string) any {
	return gs.Flags[name]
}

// Interaction returns the active engagement slot.
func (gs *GameState) Interaction() Interaction {
	return gs.interaction
}

// SetInteraction activates an interaction, replacing any active one.
func (gs *GameState) SetInteraction(i Interaction) {
	gs.interaction = i
}

// ClearInteraction returns the session to the no-interaction state.
func (gs *GameState) ClearInteraction() {
	gs.interaction = NoInteraction()
}

// saveGame is the flat wire format for saved sessions. Field names
// are part of the save-file contract and must not change.
type saveGame struct {
	ID               uuid.UUID       `json:"id"`
	CurrentLocation  string          `json:"currentLocation"`
	Health           int             `json:"health"`
	Score            int             `json:"score"`
	Inventory        []string        `json:"inventory"`
	VisitedLocations map[string]bool `json:"visitedLocations"`
	GameFlags        map[string]any  `json:"gameFlags"`
	CurrentChallenge *string         `json:"currentChallenge"`
	CurrentQuiz      *ActiveQuiz     `json:"currentQuiz"`
	CurrentDanger    *string         `json:"currentDanger"`
}

func (gs *GameState) MarshalJSON() ([]byte, error) {
	save := saveGame{
		ID:               gs.ID,
		CurrentLocation:  gs.CurrentLocation,
		Health:           gs.Health,
		Score:            gs.Score,
		Inventory:        gs.Inventory,
		VisitedLocations: gs.Visited,
		GameFlags:        gs.Flags,
	}
	if save.Inventory == nil {
		save.Inventory = make([]string, 0)
	}

	switch gs.interaction.kind {
	case InteractionQuiz:
		save.CurrentQuiz = gs.interaction.quiz
	case InteractionChallenge:
		id := gs.interaction.challengeID
		save.CurrentChallenge = &id
	case InteractionDanger:
		id := gs.interaction.dangerID
		save.CurrentDanger = &id
	}

	return json.Marshal(save)
}

func (gs *GameState) UnmarshalJSON(data []byte) error {
	var save saveGame
	if err := json.Unmarshal(data, &save); err != nil {
		return fmt.Errorf("invalid save data: %w", err)
	}

	gs.ID = save.ID
	gs.CurrentLocation = save.CurrentLocation
	gs.Health = save.Health
	gs.Score = save.Score
	gs.Inventory = save.Inventory
	gs.Visited = save.VisitedLocations
	gs.Flags = save.GameFlags
	if gs.Inventory == nil {
		gs.Inventory = make([]string, 0)
	}
	if gs.Visited == nil {
		gs.Visited = make(map[string]bool)
	}
	if gs.Flags == nil {
		gs.Flags = make(map[string]any)
	}

	// A well-formed save has at most one active slot, and a quiz slot
	// whose progress points at a real question. A corrupt quiz slot is
	// treated as absent; if more than one slot is set, quiz wins over
	// challenge over danger.
	quiz := save.CurrentQuiz
	if quiz != nil && !quiz.Valid() {
		quiz = nil
	}
	switch {
	case quiz != nil:
		gs.interaction = Interaction{kind: InteractionQuiz, quiz: quiz}
	case save.CurrentChallenge != nil:
		gs.interaction = ChallengeInteraction(*save.CurrentChallenge)
	case save.CurrentDanger != nil:
		gs.interaction = DangerInteraction(*save.CurrentDanger)
	default:
		gs.interaction = NoInteraction()
	}

	return nil
}

// Serialize renders the session in the flat save format.
func (gs *GameState) Serialize() ([]byte, error) {
	return json.Marshal(gs)
}

// Deserialize restores a session from saved data. On error the
// receiver is left untouched.
func (gs *GameState) Deserialize(data []byte) error {
	var restored GameState
	if err := json.Unmarshal(data, &restored); err != nil {
		return err
	}
	*gs = restored
	return nil
}
