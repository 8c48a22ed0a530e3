package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/jwebster45206/sunken-cathedral/pkg/storage"
)

func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	store, err := NewRedisStore("redis://"+mr.Addr(), testLogger())
	if err != nil {
		mr.Close()
		t.Fatalf("Failed to create redis store: %v", err)
	}
	return store, mr
}

func TestRedisStore_SaveLoadRoundTrip(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	ctx := context.Background()
	want := testSave()

	if err := store.SaveSlot(ctx, 1, want); err != nil {
		t.Fatalf("SaveSlot failed: %v", err)
	}

	got, err := store.LoadSlot(ctx, 1)
	if err != nil {
		t.Fatalf("LoadSlot failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected a save record")
	}
	if got.PlayerPosition != want.PlayerPosition || got.LanternOil != want.LanternOil ||
		got.CurrentRoomID != want.CurrentRoomID || got.TotalMoves != want.TotalMoves {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestRedisStore_AbsentSlotIsNil(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	sd, err := store.LoadSlot(context.Background(), 5)
	if err != nil {
		t.Fatalf("LoadSlot on empty slot should not error, got: %v", err)
	}
	if sd != nil {
		t.Error("absent slot should load as nil")
	}
}

func TestRedisStore_AutosaveAndDelete(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	ctx := context.Background()
	if err := store.SaveSlot(ctx, storage.AutoSlot, testSave()); err != nil {
		t.Fatalf("autosave failed: %v", err)
	}
	if !mr.Exists("save:autosave") {
		t.Error("autosave key should exist in redis")
	}

	if err := store.DeleteSlot(ctx, storage.AutoSlot); err != nil {
		t.Fatalf("DeleteSlot failed: %v", err)
	}
	if sd, _ := store.LoadSlot(ctx, storage.AutoSlot); sd != nil {
		t.Error("deleted autosave should load as nil")
	}
}

func TestRedisStore_CorruptRecord(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	mr.Set("save:slot:3", "{broken")

	sd, err := store.LoadSlot(context.Background(), 3)
	if err == nil {
		t.Error("corrupt record should surface an error")
	}
	if sd != nil {
		t.Error("corrupt record must not yield a partial save")
	}
}

func TestRedisStore_ListSlots(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	ctx := context.Background()
	if err := store.SaveSlot(ctx, 3, testSave()); err != nil {
		t.Fatal(err)
	}

	infos, err := store.ListSlots(ctx)
	if err != nil {
		t.Fatalf("ListSlots failed: %v", err)
	}
	if len(infos) != storage.MaxSlots {
		t.Fatalf("got %d slot infos, want %d", len(infos), storage.MaxSlots)
	}
	if !infos[2].Exists || infos[2].Slot != 3 {
		t.Errorf("slot 3 info = %+v", infos[2])
	}
}

func TestRedisStore_Ping(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer store.Close()

	if err := store.Ping(context.Background()); err != nil {
		t.Errorf("ping should succeed: %v", err)
	}

	mr.Close()
	if err := store.Ping(context.Background()); err == nil {
		t.Error("ping should fail after redis goes away")
	}
}
