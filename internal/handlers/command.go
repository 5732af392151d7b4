package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/digitalquest/quest-engine/internal/storage"
	"github.com/digitalquest/quest-engine/pkg/game"
	"github.com/digitalquest/quest-engine/pkg/state"
)

// CommandRequest is one player command against an existing session.
type CommandRequest struct {
	GameStateID uuid.UUID `json:"game_state_id"`
	Command     string    `json:"command"`
}

// CommandResponse carries the command outcome and the state after it.
// GameState.ID may differ from the request's ID when the command
// started a new session (restart); clients should follow it.
type CommandResponse struct {
	Result    *game.CommandResult `json:"result"`
	GameState *state.GameState    `json:"game_state"`
}

// CommandHandler runs one command per request: load the session,
// rebuild the engine against the base world, process, persist.
type CommandHandler struct {
	storage storage.Storage
	logger  *slog.Logger
}

func NewCommandHandler(storage storage.Storage, logger *slog.Logger) *CommandHandler {
	return &CommandHandler{
		storage: storage,
		logger:  logger,
	}
}

func (h *CommandHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		h.logger.Warn("Method not allowed for command endpoint", "method", r.Method)
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST")
		return
	}

	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if req.GameStateID == uuid.Nil {
		writeError(w, h.logger, http.StatusBadRequest, "game_state_id field is required")
		return
	}
	if strings.TrimSpace(req.Command) == "" {
		writeError(w, h.logger, http.StatusBadRequest, "command field is required")
		return
	}

	gs, err := h.storage.LoadGameState(r.Context(), req.GameStateID)
	if err != nil {
		h.logger.Error("Failed to load game state", "game_state_id", req.GameStateID, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load game state")
		return
	}
	if gs == nil {
		writeError(w, h.logger, http.StatusNotFound, "Game state not found")
		return
	}

	world, err := h.storage.LoadWorld(r.Context())
	if err != nil {
		h.logger.Error("Failed to load world content", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load world content")
		return
	}

	saves := storage.NewSessionSaves(h.storage, req.GameStateID)
	engine := game.NewEngineFromState(world, gs, saves, h.logger)

	result, err := engine.ProcessCommand(r.Context(), req.Command)
	if err != nil {
		h.logger.Error("Failed to process command", "game_state_id", req.GameStateID, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to process command")
		return
	}

	// Persist under the engine's current session ID; restart swaps in
	// a fresh session.
	current := engine.State()
	if err := h.storage.SaveGameState(r.Context(), current.ID, current); err != nil {
		h.logger.Error("Failed to save game state", "game_state_id", current.ID, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to save game state")
		return
	}

	h.logger.Debug("Command processed",
		"game_state_id", current.ID,
		"location", current.CurrentLocation,
		"score", current.Score,
		"health", current.Health)

	writeJSON(w, h.logger, http.StatusOK, CommandResponse{
		Result:    result,
		GameState: current,
	})
}
