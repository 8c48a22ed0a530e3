package world

import "testing"

func testRoom() *Room {
	r := NewRoom("test", "Test Chamber", "A bare chamber for tests.")
	r.SetMap([]string{
		"▓▓▓▓▓",
		"▓ ≈ ▓",
		"▓   ▓",
		"▓▓█▓▓",
	})
	return r
}

func TestRoom_Walkability(t *testing.T) {
	r := testRoom()

	tests := []struct {
		name string
		pos  Position
		want bool
	}{
		{"open floor", Position{2, 2}, true},
		{"deep water is walkable at room level", Position{1, 2}, true},
		{"wall", Position{0, 0}, false},
		{"rubble", Position{3, 2}, false},
		{"out of bounds row", Position{9, 1}, false},
		{"negative col", Position{1, -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.IsWalkable(tt.pos); got != tt.want {
				t.Errorf("IsWalkable(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestRoom_CharacterAt(t *testing.T) {
	r := testRoom()

	if ch := r.CharacterAt(Position{1, 2}); ch != GlyphDeepWater {
		t.Errorf("CharacterAt water tile = %q, want %q", ch, GlyphDeepWater)
	}
	if ch := r.CharacterAt(Position{-1, 0}); ch != GlyphEmpty {
		t.Errorf("CharacterAt out of bounds = %q, want space", ch)
	}
	if ch := r.CharacterAt(Position{0, 99}); ch != GlyphEmpty {
		t.Errorf("CharacterAt past row end = %q, want space", ch)
	}
}

func TestRoom_RaggedRows(t *testing.T) {
	r := NewRoom("ragged", "Ragged", "")
	r.SetMap([]string{
		"▓▓▓▓▓▓▓",
		"▓  ▓",
		"",
	})

	if r.RowLen(1) != 4 {
		t.Errorf("RowLen(1) = %d, want 4", r.RowLen(1))
	}
	if r.IsWalkable(Position{1, 5}) {
		t.Error("position past the end of a short row should not be walkable")
	}
	if ch := r.CharacterAt(Position{1, 5}); ch != GlyphEmpty {
		t.Errorf("CharacterAt past short row = %q, want space", ch)
	}
}

func TestRoom_ModifyTile(t *testing.T) {
	r := testRoom()

	carved := Position{3, 2}
	if r.IsWalkable(carved) {
		t.Fatal("rubble tile should start blocked")
	}
	if !r.ModifyTile(carved, ' ') {
		t.Fatal("ModifyTile in bounds should succeed")
	}
	if !r.IsWalkable(carved) {
		t.Error("walkable set should be recomputed after carving a tile open")
	}

	if r.ModifyTile(Position{99, 0}, ' ') {
		t.Error("ModifyTile out of bounds should return false")
	}
	if r.ModifyTile(Position{0, 99}, ' ') {
		t.Error("ModifyTile past row end should return false")
	}
}

func TestRoom_Items(t *testing.T) {
	r := testRoom()
	pos := Position{2, 2}

	r.AddItem(pos, "Prayer Geode")
	name, ok := r.RemoveItem(pos)
	if !ok || name != "Prayer Geode" {
		t.Fatalf("RemoveItem = (%q, %v), want (Prayer Geode, true)", name, ok)
	}

	if _, ok := r.RemoveItem(pos); ok {
		t.Error("removing from an empty position should report no item")
	}
}

func TestRoom_SpiritNear(t *testing.T) {
	r := testRoom()
	r.AddSpirit(Position{1, 1}, "Weeping Sorrow")

	tests := []struct {
		name string
		pos  Position
		want bool
	}{
		{"same tile", Position{1, 1}, true},
		{"diagonal", Position{2, 2}, true},
		{"adjacent", Position{2, 1}, true},
		{"two away", Position{3, 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, found := r.SpiritNear(tt.pos)
			if found != tt.want {
				t.Errorf("SpiritNear(%v) = %v, want %v", tt.pos, found, tt.want)
			}
		})
	}
}

func TestRoom_TransitionTarget(t *testing.T) {
	r := testRoom()
	r.AddExit(North, "nave", Position{8, 3}, nil)
	r.AddExit(East, "side-chapel", Position{1, 1}, nil)

	exit, ok := r.TransitionTarget(Position{0, 2})
	if !ok {
		t.Fatal("expected north transition on first row")
	}
	if exit.TargetRoomID != "nave" {
		t.Errorf("target room = %q, want nave", exit.TargetRoomID)
	}

	if _, ok := r.TransitionTarget(Position{3, 2}); ok {
		t.Error("no south exit registered; last row should not transition")
	}

	// East exits are registered but never edge-triggered.
	if _, ok := r.TransitionTarget(Position{1, 4}); ok {
		t.Error("east exits must not trigger transitions")
	}
}

func TestRoom_AddExitOverwrites(t *testing.T) {
	r := testRoom()
	r.AddExit(North, "nave", Position{8, 3}, nil)
	r.AddExit(North, "bell-tower", Position{2, 2}, []string{"Rusty Key"})

	exit, ok := r.Exit(North)
	if !ok {
		t.Fatal("north exit should exist")
	}
	if exit.TargetRoomID != "bell-tower" {
		t.Errorf("exit should be overwritten, got %q", exit.TargetRoomID)
	}
	if len(exit.Requirements) != 1 || exit.Requirements[0] != "Rusty Key" {
		t.Errorf("requirements = %v, want [Rusty Key]", exit.Requirements)
	}
}
