package player

import (
	"testing"

	"github.com/jwebster45206/sunken-cathedral/pkg/difficulty"
	"github.com/jwebster45206/sunken-cathedral/pkg/world"
)

func testWorld() *world.World {
	w := world.New()
	room := world.NewRoom("chamber", "Chamber", "")
	room.SetMap([]string{
		"▓▓▓▓▓▓",
		"▓  ≈ ▓",
		"▓    ▓",
		"▓▓▓▓▓▓",
	})
	w.AddRoom(room)
	w.SetCurrentRoom("chamber")
	return w
}

func TestNew_StartingState(t *testing.T) {
	p := New(world.Position{Row: 10, Col: 20})

	if p.Position() != (world.Position{Row: 10, Col: 20}) {
		t.Errorf("position = %v, want (10,20)", p.Position())
	}
	if p.Oil() != 100.0 {
		t.Errorf("oil = %v, want 100", p.Oil())
	}
	inv := p.Inventory()
	if inv[0] != "Worn Scroll" || inv[1] != "" || inv[2] != "" || inv[3] != "" {
		t.Errorf("inventory = %v, want [Worn Scroll, empty x3]", inv)
	}
	if p.Geode() != "" {
		t.Errorf("geode = %q, want none", p.Geode())
	}
}

func TestTryMove(t *testing.T) {
	tests := []struct {
		name    string
		start   world.Position
		dir     world.Direction
		oil     float64
		want    bool
		wantPos world.Position
	}{
		{"into open floor", world.Position{Row: 2, Col: 2}, world.East, 100, true, world.Position{Row: 2, Col: 3}},
		{"into wall", world.Position{Row: 1, Col: 1}, world.West, 100, false, world.Position{Row: 1, Col: 1}},
		{"off the top", world.Position{Row: 1, Col: 1}, world.North, 100, false, world.Position{Row: 1, Col: 1}},
		{"deep water with oil", world.Position{Row: 1, Col: 2}, world.East, 50, true, world.Position{Row: 1, Col: 3}},
		{"deep water without oil", world.Position{Row: 1, Col: 2}, world.East, 0, false, world.Position{Row: 1, Col: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testWorld()
			p := New(tt.start)
			p.SetOil(tt.oil)

			if got := p.TryMove(tt.dir, w); got != tt.want {
				t.Errorf("TryMove = %v, want %v", got, tt.want)
			}
			if p.Position() != tt.wantPos {
				t.Errorf("position = %v, want %v", p.Position(), tt.wantPos)
			}
		})
	}
}

func TestTryMove_RaggedRow(t *testing.T) {
	w := world.New()
	room := world.NewRoom("ragged", "Ragged", "")
	room.SetMap([]string{
		"      ",
		"   ",
		"      ",
	})
	w.AddRoom(room)
	w.SetCurrentRoom("ragged")

	p := New(world.Position{Row: 0, Col: 4})
	if p.TryMove(world.South, w) {
		t.Error("move onto a column past the short row's end should fail")
	}
}

func TestTryMove_RoomTransition(t *testing.T) {
	w := world.New()

	entrance := world.NewRoom("entrance", "Entrance", "")
	entrance.SetMap([]string{
		"▓▓ ▓▓",
		"▓   ▓",
		"▓▓▓▓▓",
	})
	entrance.AddExit(world.North, "nave", world.Position{Row: 3, Col: 2}, nil)

	nave := world.NewRoom("nave", "Nave", "")
	nave.SetMap([]string{
		"▓▓▓▓▓",
		"▓   ▓",
		"▓   ▓",
		"▓▓ ▓▓",
	})

	w.AddRoom(entrance)
	w.AddRoom(nave)
	w.SetCurrentRoom("entrance")

	// Stepping onto the entrance's first row triggers the north exit
	// in the same TryMove call.
	p := New(world.Position{Row: 1, Col: 2})
	if !p.TryMove(world.North, w) {
		t.Fatal("move onto the open doorway tile should succeed")
	}
	if w.CurrentRoomID() != "nave" {
		t.Errorf("current room = %q, want nave", w.CurrentRoomID())
	}
	if p.Position() != (world.Position{Row: 3, Col: 2}) {
		t.Errorf("player position = %v, want the exit's target position", p.Position())
	}
}

func TestConsumeOil(t *testing.T) {
	hard := difficulty.GetSettings(difficulty.LevelHard)

	p := New(world.Position{})
	if !p.ConsumeOil(ActionMove, hard) {
		t.Fatal("oil should remain after one move")
	}
	if p.Oil() != 99.5 {
		t.Errorf("oil = %v, want 99.5", p.Oil())
	}

	p.SetOil(4.0)
	if p.ConsumeOil(ActionSpiritPenalty, hard) {
		t.Error("spirit penalty of 5 from oil 4 should deplete the lantern")
	}
	if p.Oil() != 0 {
		t.Errorf("oil = %v, want exactly 0 (clamped)", p.Oil())
	}
}

func TestConsumeOil_RepeatedMovesClampAtZero(t *testing.T) {
	hard := difficulty.GetSettings(difficulty.LevelHard)
	p := New(world.Position{})

	for i := 0; i < 200; i++ {
		p.ConsumeOil(ActionMove, hard)
	}
	if p.Oil() != 0 {
		t.Errorf("200 hard moves from full should land on exactly 0, got %v", p.Oil())
	}
}

func TestConsumeOil_UnknownActionUsesMoveCost(t *testing.T) {
	hard := difficulty.GetSettings(difficulty.LevelHard)
	p := New(world.Position{})
	p.ConsumeOil(ActionType("dance"), hard)
	if p.Oil() != 99.5 {
		t.Errorf("unknown action should charge the move cost, oil = %v", p.Oil())
	}
}

func TestRefillLantern(t *testing.T) {
	p := New(world.Position{})

	p.SetOil(12.5)
	p.RefillLantern(MaxOil)
	if p.Oil() != 100 {
		t.Errorf("oil after refill = %v, want 100", p.Oil())
	}

	p.RefillLantern(MaxOil) // already full
	if p.Oil() != 100 {
		t.Errorf("refill at full should be a no-op, oil = %v", p.Oil())
	}

	p.SetOil(90)
	p.RefillLantern(25)
	if p.Oil() != 100 {
		t.Errorf("partial refill should clamp at 100, oil = %v", p.Oil())
	}
}

func TestWarningLevels(t *testing.T) {
	tests := []struct {
		oil  float64
		want WarningLevel
	}{
		{0, WarningCritical},
		{10, WarningCritical},
		{25, WarningLow},
		{50, WarningMedium},
		{51, WarningGood},
		{100, WarningGood},
	}
	p := New(world.Position{})
	for _, tt := range tests {
		p.SetOil(tt.oil)
		if got := p.Warning(); got != tt.want {
			t.Errorf("Warning at oil %v = %q, want %q", tt.oil, got, tt.want)
		}
	}
}

func TestInventory_CapacityFour(t *testing.T) {
	p := New(world.Position{}) // slot 0 already holds the Worn Scroll

	for _, item := range []string{"Prayer Geode", "Silver Geode", "Rusty Key"} {
		if !p.AddItem(item) {
			t.Fatalf("adding %q should succeed", item)
		}
	}
	if p.FreeSlots() != 0 {
		t.Fatalf("free slots = %d, want 0", p.FreeSlots())
	}

	before := p.Inventory()
	if p.AddItem("Candle") {
		t.Error("adding to a full inventory should fail")
	}
	after := p.Inventory()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("slot %d changed on failed add: %q -> %q", i, before[i], after[i])
		}
	}

	if !p.RemoveItem("Rusty Key") {
		t.Fatal("removing a held item should succeed")
	}
	if p.RemoveItem("Rusty Key") {
		t.Error("removing an absent item should fail")
	}
	if p.FreeSlots() != 1 {
		t.Errorf("free slots = %d, want 1", p.FreeSlots())
	}
}

func TestEquipGeode(t *testing.T) {
	p := New(world.Position{})

	if p.EquipGeode("Prayer Geode") {
		t.Error("equipping a geode that is not held should fail")
	}

	p.AddItem("Prayer Geode")
	if !p.EquipGeode("Prayer Geode") {
		t.Fatal("equipping a held geode should succeed")
	}
	if p.Geode() != "Prayer Geode" {
		t.Errorf("geode = %q, want Prayer Geode", p.Geode())
	}

	p.UnequipGeode()
	if p.Geode() != "" {
		t.Error("geode should be cleared after unequip")
	}
}

func TestPickUpItem_AdjacentScan(t *testing.T) {
	w := testWorld()
	room := w.CurrentRoom()
	room.AddItem(world.Position{Row: 1, Col: 1}, "Silver Geode")

	p := New(world.Position{Row: 2, Col: 2})
	name, ok := p.PickUpItem(w)
	if !ok || name != "Silver Geode" {
		t.Fatalf("PickUpItem = (%q, %v), want (Silver Geode, true)", name, ok)
	}
	if !p.HasItem("Silver Geode") {
		t.Error("picked item should be in inventory")
	}
	if _, ok := room.ItemAt(world.Position{Row: 1, Col: 1}); ok {
		t.Error("picked item should be removed from the room")
	}
}

func TestPickUpItem_FullInventoryRestoresItem(t *testing.T) {
	w := testWorld()
	room := w.CurrentRoom()
	itemPos := world.Position{Row: 2, Col: 3}
	room.AddItem(itemPos, "Candle")

	p := New(world.Position{Row: 2, Col: 2})
	p.AddItem("Prayer Geode")
	p.AddItem("Silver Geode")
	p.AddItem("Rusty Key")

	if _, ok := p.PickUpItem(w); ok {
		t.Fatal("pickup with a full inventory should fail")
	}
	if name, ok := room.ItemAt(itemPos); !ok || name != "Candle" {
		t.Errorf("item should be restored to its tile, got (%q, %v)", name, ok)
	}
}

func TestDropItem(t *testing.T) {
	w := testWorld()
	room := w.CurrentRoom()

	p := New(world.Position{Row: 2, Col: 2})
	p.AddItem("Prayer Geode")
	p.EquipGeode("Prayer Geode")

	if p.DropItem("Candle", w) {
		t.Error("dropping an item not held should fail")
	}

	if !p.DropItem("Prayer Geode", w) {
		t.Fatal("dropping a held item should succeed")
	}
	if name, ok := room.ItemAt(world.Position{Row: 2, Col: 2}); !ok || name != "Prayer Geode" {
		t.Errorf("dropped item should land on the player's tile, got (%q, %v)", name, ok)
	}
	if p.Geode() != "" {
		t.Error("dropping the equipped geode should unequip it")
	}

	// Last write wins on the tile, no stacking.
	p.AddItem("Rusty Key")
	p.DropItem("Rusty Key", w)
	if name, _ := room.ItemAt(world.Position{Row: 2, Col: 2}); name != "Rusty Key" {
		t.Errorf("tile should hold the most recently dropped item, got %q", name)
	}
}
