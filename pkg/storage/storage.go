package storage

import (
	"context"
	"time"

	"github.com/jwebster45206/sunken-cathedral/pkg/savegame"
)

const (
	// AutoSlot is the reserved autosave slot.
	AutoSlot = 0

	// MaxSlots is the number of manual save slots (1..MaxSlots).
	MaxSlots = 5
)

// SlotInfo summarizes a save slot for the save/load menus.
type SlotInfo struct {
	Slot       int       `json:"slot"`
	Exists     bool      `json:"exists"`
	SavedAt    time.Time `json:"saved_at,omitempty"`
	TotalMoves int       `json:"total_moves,omitempty"`
	Difficulty string    `json:"difficulty,omitempty"`
}

// Store persists save records, one per slot. Slot 0 is the autosave;
// manual slots run 1..MaxSlots. Loading an absent slot yields
// (nil, nil), never a partially parsed record.
type Store interface {
	Ping(ctx context.Context) error
	Close() error

	SaveSlot(ctx context.Context, slot int, sd *savegame.SaveData) error
	LoadSlot(ctx context.Context, slot int) (*savegame.SaveData, error)
	DeleteSlot(ctx context.Context, slot int) error

	// ListSlots describes the manual slots 1..MaxSlots in order.
	ListSlots(ctx context.Context) ([]SlotInfo, error)
}

// InfoFor builds a SlotInfo from a loaded record; shared by Store
// implementations.
func InfoFor(slot int, sd *savegame.SaveData) SlotInfo {
	if sd == nil {
		return SlotInfo{Slot: slot}
	}
	return SlotInfo{
		Slot:       slot,
		Exists:     true,
		SavedAt:    time.Unix(sd.SaveTimestamp, 0),
		TotalMoves: sd.TotalMoves,
		Difficulty: sd.Difficulty,
	}
}
