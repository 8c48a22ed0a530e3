package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jwebster45206/sunken-cathedral/pkg/savegame"
	"github.com/jwebster45206/sunken-cathedral/pkg/storage"
)

// FileStore persists save records as JSON documents, one file per
// slot: autosave.json for the autosave and slot_N.json for manual
// slots.
type FileStore struct {
	savesDir string
	logger   *slog.Logger
}

// Ensure FileStore implements Store interface
var _ storage.Store = (*FileStore)(nil)

// NewFileStore creates the saves directory if needed.
func NewFileStore(savesDir string, logger *slog.Logger) (*FileStore, error) {
	if savesDir == "" {
		savesDir = "./saves"
	}
	if err := os.MkdirAll(savesDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create saves directory: %w", err)
	}
	return &FileStore{
		savesDir: savesDir,
		logger:   logger,
	}, nil
}

func (f *FileStore) path(slot int) string {
	if slot == storage.AutoSlot {
		return filepath.Join(f.savesDir, "autosave.json")
	}
	return filepath.Join(f.savesDir, fmt.Sprintf("slot_%d.json", slot))
}

func validateSlot(slot int) error {
	if slot < storage.AutoSlot || slot > storage.MaxSlots {
		return fmt.Errorf("slot %d out of range 0..%d", slot, storage.MaxSlots)
	}
	return nil
}

func (f *FileStore) Ping(ctx context.Context) error {
	if _, err := os.Stat(f.savesDir); err != nil {
		return fmt.Errorf("saves directory unavailable: %w", err)
	}
	return nil
}

func (f *FileStore) Close() error {
	return nil
}

func (f *FileStore) SaveSlot(ctx context.Context, slot int, sd *savegame.SaveData) error {
	if err := validateSlot(slot); err != nil {
		return err
	}
	if sd == nil {
		return errors.New("save data cannot be nil")
	}

	data, err := json.MarshalIndent(sd, "", "  ")
	if err != nil {
		f.logger.Error("Failed to marshal save data", "slot", slot, "error", err)
		return fmt.Errorf("failed to marshal save data: %w", err)
	}

	if err := os.WriteFile(f.path(slot), data, 0o644); err != nil {
		f.logger.Error("Failed to write save file", "slot", slot, "error", err)
		return fmt.Errorf("failed to write save file: %w", err)
	}

	f.logger.Debug("Saved game", "slot", slot, "moves", sd.TotalMoves)
	return nil
}

func (f *FileStore) LoadSlot(ctx context.Context, slot int) (*savegame.SaveData, error) {
	if err := validateSlot(slot); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path(slot))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil // no save, not an error
		}
		f.logger.Error("Failed to read save file", "slot", slot, "error", err)
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}

	var sd savegame.SaveData
	if err := json.Unmarshal(data, &sd); err != nil {
		f.logger.Error("Corrupt save file", "slot", slot, "error", err)
		return nil, fmt.Errorf("corrupt save file: %w", err)
	}
	return &sd, nil
}

func (f *FileStore) DeleteSlot(ctx context.Context, slot int) error {
	if err := validateSlot(slot); err != nil {
		return err
	}
	if err := os.Remove(f.path(slot)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		f.logger.Error("Failed to delete save file", "slot", slot, "error", err)
		return fmt.Errorf("failed to delete save file: %w", err)
	}
	return nil
}

func (f *FileStore) ListSlots(ctx context.Context) ([]storage.SlotInfo, error) {
	infos := make([]storage.SlotInfo, 0, storage.MaxSlots)
	for slot := 1; slot <= storage.MaxSlots; slot++ {
		sd, err := f.LoadSlot(ctx, slot)
		if err != nil {
			// A corrupt slot shows as empty rather than failing the menu.
			f.logger.Warn("Skipping unreadable save slot", "slot", slot, "error", err)
			infos = append(infos, storage.SlotInfo{Slot: slot})
			continue
		}
		infos = append(infos, storage.InfoFor(slot, sd))
	}
	return infos, nil
}
