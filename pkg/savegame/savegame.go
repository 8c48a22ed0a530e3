package savegame

import (
	"fmt"
	"time"

	"github.com/jwebster45206/sunken-cathedral/pkg/difficulty"
	"github.com/jwebster45206/sunken-cathedral/pkg/player"
	"github.com/jwebster45206/sunken-cathedral/pkg/state"
	"github.com/jwebster45206/sunken-cathedral/pkg/world"
)

// FormatVersion tags every save record.
const FormatVersion = "1.0"

// SaveData is the flattened, versioned snapshot of a session. It is
// created whole at save time and consumed whole at load time; there
// are no partial or merge semantics.
type SaveData struct {
	PlayerPosition world.Position `json:"player_position"`
	LanternOil     float64        `json:"lantern_oil"`
	Inventory      []string       `json:"inventory"` // exactly 4 slots, "" = empty
	CurrentGeode   string         `json:"current_geode,omitempty"`
	CurrentRoomID  string         `json:"current_room_id"`
	Difficulty     string         `json:"difficulty"`
	TotalMoves     int            `json:"total_moves"`
	SaveTimestamp  int64          `json:"save_timestamp"` // unix epoch seconds
	GameVersion    string         `json:"game_version"`
}

// Snapshot flattens the live state into a save record.
func Snapshot(gs *state.GameState) *SaveData {
	return &SaveData{
		PlayerPosition: gs.Player.Position(),
		LanternOil:     gs.Player.Oil(),
		Inventory:      gs.Player.Inventory(),
		CurrentGeode:   gs.Player.Geode(),
		CurrentRoomID:  gs.World.CurrentRoomID(),
		Difficulty:     string(gs.Difficulty.Current()),
		TotalMoves:     gs.TotalMoves,
		SaveTimestamp:  time.Now().Unix(),
		GameVersion:    FormatVersion,
	}
}

// Apply overwrites live state wholesale from a save record. Every
// field is validated before any mutation, so a bad record leaves the
// session untouched.
func Apply(sd *SaveData, gs *state.GameState) error {
	if sd == nil {
		return fmt.Errorf("no save data")
	}

	level, err := difficulty.ParseLevel(sd.Difficulty)
	if err != nil {
		return fmt.Errorf("invalid save record: %w", err)
	}
	if len(sd.Inventory) != player.InventorySlots {
		return fmt.Errorf("invalid save record: inventory has %d slots, want %d",
			len(sd.Inventory), player.InventorySlots)
	}
	if _, ok := gs.World.GetRoom(sd.CurrentRoomID); !ok {
		return fmt.Errorf("invalid save record: unknown room %q", sd.CurrentRoomID)
	}

	gs.World.SetCurrentRoom(sd.CurrentRoomID)
	gs.Player.SetPosition(sd.PlayerPosition)
	gs.Player.SetOil(sd.LanternOil)
	if err := gs.Player.SetInventory(sd.Inventory); err != nil {
		return err
	}
	gs.Player.SetGeode(sd.CurrentGeode)
	gs.Difficulty.SetLevel(level)
	gs.TotalMoves = sd.TotalMoves
	return nil
}
