// Package game contains the command dispatcher and the rules that tie
// world content to session state: movement, items, NPC quizzes,
// challenges and danger scenarios.
package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/digitalquest/quest-engine/pkg/parser"
	"github.com/digitalquest/quest-engine/pkg/state"
	"github.com/digitalquest/quest-engine/pkg/world"
)

// Score awards.
const (
	ScoreQuizCorrect   = 10
	ScoreChallenge     = 25
	ScoreDangerEscape  = 50
	HealthLethalHit    = -50
	HealthNonLethalHit = -20
)

// SaveStore persists a single session slot for the save and load
// commands. Load returns (nil, nil) when no save exists.
type SaveStore interface {
	Save(ctx context.Context, gs *state.GameState) error
	Load(ctx context.Context) (*state.GameState, error)
}

// CommandResult is the outcome of one processed command: the text to
// show the player plus what happened. The triggered fields carry the
// ID of the challenge, danger or NPC involved, empty when none was.
type CommandResult struct {
	Message            string `json:"message"`
	LocationChanged    bool   `json:"location_changed,omitempty"`
	ChallengeTriggered string `json:"challenge_triggered,omitempty"`
	DangerTriggered    string `json:"danger_triggered,omitempty"`
	NPCInteraction     string `json:"npc_interaction,omitempty"`
	PlayerDied         bool   `json:"player_died,omitempty"`
	GameOver           bool   `json:"game_over,omitempty"`
	GameOverReason     string `json:"game_over_reason,omitempty"`
}

// Engine runs one player session against a world. The base world is
// never mutated; each engine works on a per-session clone so item
// positions are independent across sessions.
type Engine struct {
	base   *world.World
	world  *world.World
	gs     *state.GameState
	parser *parser.Parser
	saves  SaveStore
	logger *slog.Logger

	gameOver       bool
	gameOverReason string
}

// NewEngine starts a fresh session at the world's start location.
// saves may be nil, which disables the save and load commands.
func NewEngine(base *world.World, saves SaveStore, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		base:   base,
		world:  base.Clone(),
		parser: parser.New(),
		saves:  saves,
		logger: logger,
	}
	e.gs = state.NewGameState(base.Start)
	e.gs.MarkVisited(base.Start)
	return e
}

// NewEngineFromState rebuilds a session from saved state, typically
// one request in a stateless API cycle.
func NewEngineFromState(base *world.World, gs *state.GameState, saves SaveStore, logger *slog.Logger) *Engine {
	e := NewEngine(base, saves, logger)
	e.restore(gs)
	return e
}

// State returns the session state, for persistence and rendering.
func (e *Engine) State() *state.GameState { return e.gs }

// World returns the session's world clone.
func (e *Engine) World() *world.World { return e.world }

// GameOver reports whether the session has ended.
func (e *Engine) GameOver() bool { return e.gameOver }

// restore replaces the session state and rebuilds item positions from
// it: items named in the inventory are carried, everything else sits
// at its load-time home.
func (e *Engine) restore(gs *state.GameState) {
	e.gs = gs
	e.world = e.base.Clone()
	for id, item := range e.world.Items {
		item.Location = item.Home
		if gs.HasItem(id) {
			item.Location = world.LocationInventory
		}
	}
	gs.MarkVisited(gs.CurrentLocation)
	e.gameOver = gs.Health <= state.MinHealth
	if e.gameOver {
		e.gameOverReason = "You have run out of health."
	}
}

// ProcessCommand parses and dispatches one raw input line. The error
// return is reserved for infrastructure failures (the save store);
// rule outcomes, including rejected commands, arrive as messages.
func (e *Engine) ProcessCommand(ctx context.Context, raw string) (*CommandResult, error) {
	cmd := e.parser.Parse(raw)
	e.logger.Debug("processing command",
		"action", cmd.Action,
		"target", cmd.Target,
		"location", e.gs.CurrentLocation)

	// A finished game accepts only load and restart.
	if e.gameOver && cmd.Action != "load" && cmd.Action != "restart" {
		return &CommandResult{
			Message:        "The game is over. Type 'load' to restore a saved game or 'restart' to begin again.",
			GameOver:       true,
			GameOverReason: e.gameOverReason,
		}, nil
	}

	switch cmd.Action {
	case "look":
		return &CommandResult{Message: e.describeLocation()}, nil
	case "examine":
		return e.examine(cmd.Target), nil
	case "move":
		return e.move(cmd.Target), nil
	case "take":
		return e.take(cmd.Target), nil
	case "drop":
		return e.drop(cmd.Target), nil
	case "inventory":
		return &CommandResult{Message: e.showInventory()}, nil
	case "talk":
		return e.talk(cmd.Target), nil
	case "quiz":
		return e.startQuiz(cmd.Target), nil
	case "answer":
		return e.submitAnswer(cmd.Target), nil
	case "use":
		return e.use(cmd.Target), nil
	case "help":
		return &CommandResult{Message: e.help()}, nil
	case "save":
		return e.save(ctx)
	case "load":
		return e.load(ctx)
	case "restart":
		return e.restart(), nil
	case parser.ActionInvalid:
		return &CommandResult{Message: "I don't understand that command. Type 'help' for a list of commands."}, nil
	default:
		return &CommandResult{Message: fmt.Sprintf("I don't know how to '%s'. Type 'help' for a list of commands.", cmd.Action)}, nil
	}
}

func (e *Engine) save(ctx context.Context) (*CommandResult, error) {
	if e.saves == nil {
		return &CommandResult{Message: "Saving is not available here."}, nil
	}
	if err := e.saves.Save(ctx, e.gs); err != nil {
		e.logger.Error("failed to save game", "error", err, "game_state_id", e.gs.ID)
		return nil, fmt.Errorf("failed to save game: %w", err)
	}
	return &CommandResult{Message: "Game saved successfully."}, nil
}

func (e *Engine) load(ctx context.Context) (*CommandResult, error) {
	if e.saves == nil {
		return &CommandResult{Message: "Loading is not available here."}, nil
	}
	gs, err := e.saves.Load(ctx)
	if err != nil {
		e.logger.Error("failed to load game", "error", err)
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	if gs == nil {
		return &CommandResult{Message: "No saved game found."}, nil
	}

	e.gameOver = false
	e.gameOverReason = ""
	e.restore(gs)
	if e.gameOver {
		return &CommandResult{
			Message:        "Game loaded successfully.\n\nThe game is over. Type 'restart' to begin again.",
			GameOver:       true,
			GameOverReason: e.gameOverReason,
		}, nil
	}
	return &CommandResult{
		Message:         "Game loaded successfully.\n\n" + e.describeLocation(),
		LocationChanged: true,
	}, nil
}

func (e *Engine) restart() *CommandResult {
	e.gameOver = false
	e.gameOverReason = ""
	e.world = e.base.Clone()
	e.gs = state.NewGameState(e.base.Start)
	e.gs.MarkVisited(e.base.Start)
	return &CommandResult{
		Message:         "Starting over from the beginning.\n\n" + e.describeLocation(),
		LocationChanged: true,
	}
}
