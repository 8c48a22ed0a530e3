package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwebster45206/sunken-cathedral/internal/config"
	"github.com/jwebster45206/sunken-cathedral/internal/logger"
	"github.com/jwebster45206/sunken-cathedral/internal/rooms"
	internalstorage "github.com/jwebster45206/sunken-cathedral/internal/storage"
	"github.com/jwebster45206/sunken-cathedral/pkg/player"
	"github.com/jwebster45206/sunken-cathedral/pkg/state"
	"github.com/jwebster45206/sunken-cathedral/pkg/storage"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg)

	store, err := openStore(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open save storage: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("Failed to close save storage", "error", err)
		}
	}()

	w, err := rooms.BuildWorld()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build world: %v\n", err)
		os.Exit(1)
	}

	gs := state.New(w, player.New(rooms.StartPosition))
	log.Info("Starting The Sunken Cathedral", "session", gs.ID, "environment", cfg.Environment)

	// An existing autosave offers "continue" on the intro screen.
	hasAutosave := false
	if sd, err := store.LoadSlot(context.Background(), storage.AutoSlot); err != nil {
		log.Warn("Could not read autosave", "error", err)
	} else {
		hasAutosave = sd != nil
	}

	p := tea.NewProgram(NewGameUI(gs, store, log, hasAutosave), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// openStore picks Redis when configured, disk otherwise.
func openStore(cfg *config.Config, log *slog.Logger) (storage.Store, error) {
	if cfg.RedisURL != "" {
		return internalstorage.NewRedisStore(cfg.RedisURL, log)
	}
	return internalstorage.NewFileStore(cfg.SavesDir, log)
}
