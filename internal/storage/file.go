package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/digitalquest/quest-engine/pkg/state"
)

// FileSaves is a single-slot save file for the local console game,
// kept under the user's config directory.
type FileSaves struct {
	path string
}

// NewFileSaves creates a save slot at the default location
// (<user config dir>/digitalquest/save.json).
func NewFileSaves() (*FileSaves, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate config dir: %w", err)
	}
	saveDir := filepath.Join(configDir, "digitalquest")
	if err := os.MkdirAll(saveDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create save dir: %w", err)
	}
	return &FileSaves{path: filepath.Join(saveDir, "save.json")}, nil
}

// NewFileSavesAt creates a save slot at an explicit path.
func NewFileSavesAt(path string) *FileSaves {
	return &FileSaves{path: path}
}

func (f *FileSaves) Save(ctx context.Context, gs *state.GameState) error {
	data, err := gs.Serialize()
	if err != nil {
		return fmt.Errorf("failed to serialize gamestate: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}
	return nil
}

func (f *FileSaves) Load(ctx context.Context) (*state.GameState, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}
	gs := &state.GameState{}
	if err := gs.Deserialize(data); err != nil {
		return nil, fmt.Errorf("failed to parse save file: %w", err)
	}
	return gs, nil
}

// Reset removes the save file.
func (f *FileSaves) Reset() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
