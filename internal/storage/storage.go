package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/digitalquest/quest-engine/pkg/state"
	"github.com/digitalquest/quest-engine/pkg/world"
)

// HealthChecker defines basic health check capabilities
type HealthChecker interface {
	// Ping tests the service connection
	Ping(ctx context.Context) error
}

// Closer defines cleanup capabilities
type Closer interface {
	// Close closes the service connection
	Close() error
}

// Storage defines the interface for gamestate persistence and world
// content access.
type Storage interface {
	HealthChecker
	Closer

	// SaveGameState saves a gamestate with the given UUID
	SaveGameState(ctx context.Context, id uuid.UUID, gs *state.GameState) error

	// LoadGameState retrieves a gamestate by UUID.
	// Returns nil if the gamestate doesn't exist.
	LoadGameState(ctx context.Context, id uuid.UUID) (*state.GameState, error)

	// DeleteGameState removes a gamestate by UUID
	DeleteGameState(ctx context.Context, id uuid.UUID) error

	// LoadWorld reads the world content from the data directory.
	LoadWorld(ctx context.Context) (*world.World, error)
}

// SessionSaves binds a Storage and a session ID to the single-slot
// save interface the game engine uses for its save and load commands.
type SessionSaves struct {
	store Storage
	id    uuid.UUID
}

func NewSessionSaves(store Storage, id uuid.UUID) *SessionSaves {
	return &SessionSaves{store: store, id: id}
}

func (s *SessionSaves) Save(ctx context.Context, gs *state.GameState) error {
	return s.store.SaveGameState(ctx, s.id, gs)
}

func (s *SessionSaves) Load(ctx context.Context) (*state.GameState, error) {
	return s.store.LoadGameState(ctx, s.id)
}
