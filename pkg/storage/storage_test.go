package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jwebster45206/sunken-cathedral/pkg/savegame"
	"github.com/jwebster45206/sunken-cathedral/pkg/world"
)

func sampleSave() *savegame.SaveData {
	return &savegame.SaveData{
		PlayerPosition: world.Position{Row: 10, Col: 20},
		LanternOil:     72.5,
		Inventory:      []string{"Worn Scroll", "Prayer Geode", "", ""},
		CurrentRoomID:  "entrance",
		Difficulty:     "hard",
		TotalMoves:     17,
		SaveTimestamp:  time.Now().Unix(),
		GameVersion:    savegame.FormatVersion,
	}
}

func TestMockStore_RoundTrip(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()
	want := sampleSave()

	if err := store.SaveSlot(ctx, 2, want); err != nil {
		t.Fatalf("SaveSlot failed: %v", err)
	}

	got, err := store.LoadSlot(ctx, 2)
	if err != nil {
		t.Fatalf("LoadSlot failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected a save record")
	}
	if got.PlayerPosition != want.PlayerPosition || got.TotalMoves != want.TotalMoves {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}

	// Loaded records are copies; mutating one must not touch the store.
	got.TotalMoves = 999
	again, err := store.LoadSlot(ctx, 2)
	if err != nil {
		t.Fatalf("LoadSlot failed: %v", err)
	}
	if again.TotalMoves != 17 {
		t.Errorf("store record mutated through a loaded copy: moves = %d", again.TotalMoves)
	}
}

func TestMockStore_AbsentSlotIsNil(t *testing.T) {
	store := NewMockStore()

	sd, err := store.LoadSlot(context.Background(), 4)
	if err != nil {
		t.Fatalf("LoadSlot on empty slot should not error, got: %v", err)
	}
	if sd != nil {
		t.Errorf("expected nil for absent slot, got %+v", sd)
	}
}

func TestMockStore_NilSaveRejected(t *testing.T) {
	store := NewMockStore()
	if err := store.SaveSlot(context.Background(), 1, nil); err == nil {
		t.Error("expected an error saving nil data")
	}
}

func TestMockStore_DeleteSlot(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()

	if err := store.SaveSlot(ctx, AutoSlot, sampleSave()); err != nil {
		t.Fatalf("SaveSlot failed: %v", err)
	}
	if err := store.DeleteSlot(ctx, AutoSlot); err != nil {
		t.Fatalf("DeleteSlot failed: %v", err)
	}

	sd, err := store.LoadSlot(ctx, AutoSlot)
	if err != nil {
		t.Fatalf("LoadSlot failed: %v", err)
	}
	if sd != nil {
		t.Error("slot should be empty after delete")
	}
}

func TestMockStore_ListSlots(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()

	if err := store.SaveSlot(ctx, 3, sampleSave()); err != nil {
		t.Fatalf("SaveSlot failed: %v", err)
	}

	infos, err := store.ListSlots(ctx)
	if err != nil {
		t.Fatalf("ListSlots failed: %v", err)
	}
	if len(infos) != MaxSlots {
		t.Fatalf("expected %d slots, got %d", MaxSlots, len(infos))
	}
	for _, info := range infos {
		wantExists := info.Slot == 3
		if info.Exists != wantExists {
			t.Errorf("slot %d: exists = %v, want %v", info.Slot, info.Exists, wantExists)
		}
	}
	if infos[2].TotalMoves != 17 || infos[2].Difficulty != "hard" {
		t.Errorf("slot 3 info not populated: %+v", infos[2])
	}
}

func TestMockStore_Ping(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()

	if err := store.Ping(ctx); err != nil {
		t.Errorf("fresh store ping failed: %v", err)
	}

	pingErr := errors.New("store offline")
	store.SetPingError(pingErr)
	if err := store.Ping(ctx); !errors.Is(err, pingErr) {
		t.Errorf("ping error = %v, want %v", err, pingErr)
	}
}

func TestInfoFor(t *testing.T) {
	if info := InfoFor(1, nil); info.Exists || info.Slot != 1 {
		t.Errorf("nil record should yield an empty slot info, got %+v", info)
	}

	sd := sampleSave()
	info := InfoFor(4, sd)
	if !info.Exists || info.Slot != 4 || info.TotalMoves != 17 || info.Difficulty != "hard" {
		t.Errorf("unexpected info: %+v", info)
	}
	if info.SavedAt.Unix() != sd.SaveTimestamp {
		t.Errorf("saved-at mismatch: %v vs %d", info.SavedAt, sd.SaveTimestamp)
	}
}
