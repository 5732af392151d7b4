package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/digitalquest/quest-engine/internal/config"
	"github.com/digitalquest/quest-engine/internal/logger"
	"github.com/digitalquest/quest-engine/internal/storage"
	"github.com/digitalquest/quest-engine/pkg/game"
	"github.com/digitalquest/quest-engine/pkg/world"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg)

	w, err := world.Load(cfg.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load world content from %s: %v\n", cfg.DataDir, err)
		os.Exit(1)
	}
	for _, warning := range w.Validate() {
		log.Warn("World content warning", "warning", warning)
	}

	saves, err := storage.NewFileSaves()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up save file: %v\n", err)
		os.Exit(1)
	}

	engine := game.NewEngine(w, saves, log)

	hasSave := false
	if gs, err := saves.Load(context.Background()); err == nil && gs != nil {
		hasSave = true
	}

	p := tea.NewProgram(NewConsoleUI(engine, hasSave), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
