package player

import (
	"fmt"

	"github.com/jwebster45206/sunken-cathedral/pkg/difficulty"
	"github.com/jwebster45206/sunken-cathedral/pkg/world"
)

const (
	// InventorySlots is the fixed inventory capacity.
	InventorySlots = 4

	// MaxOil is the lantern's full capacity in percentage units.
	MaxOil = 100.0

	// StartingItem is placed in the first slot of every new game.
	StartingItem = "Worn Scroll"
)

// ActionType selects which difficulty coefficient an action consumes.
type ActionType string

const (
	ActionMove          ActionType = "move"
	ActionCommand       ActionType = "command"
	ActionSpiritPenalty ActionType = "spirit_penalty"
)

// WarningLevel classifies the remaining lantern oil.
type WarningLevel string

const (
	WarningCritical WarningLevel = "critical"
	WarningLow      WarningLevel = "low"
	WarningMedium   WarningLevel = "medium"
	WarningGood     WarningLevel = "good"
)

// Player is the Lamplighter: a grid position, a depleting lantern, a
// fixed four-slot inventory and an optionally equipped geode. Its
// position only has meaning relative to the world's current room, so
// operations that resolve position take the world as an argument.
type Player struct {
	pos       world.Position
	oil       float64
	geode     string // empty when nothing is equipped
	inventory [InventorySlots]string
}

// New creates a player at the starting position with a full lantern
// and the Worn Scroll in the first inventory slot.
func New(start world.Position) *Player {
	p := &Player{
		pos: start,
		oil: MaxOil,
	}
	p.inventory[0] = StartingItem
	return p
}

func (p *Player) Position() world.Position {
	return p.pos
}

func (p *Player) SetPosition(pos world.Position) {
	p.pos = pos
}

func (p *Player) Oil() float64 {
	return p.oil
}

// SetOil sets the oil level, clamped to [0, MaxOil].
func (p *Player) SetOil(oil float64) {
	p.oil = clampOil(oil)
}

func clampOil(oil float64) float64 {
	if oil < 0 {
		return 0
	}
	if oil > MaxOil {
		return MaxOil
	}
	return oil
}

// TryMove attempts a single step. It rejects moves off the grid, past
// the end of a ragged row, into blocked tiles, and into deep water
// while the lantern is dry. On success it updates the position and
// immediately applies any edge-triggered room transition, so one call
// can both step within a room and cross into another. Oil is not
// consumed here; callers charge the difficulty's move cost separately
// so the cost applies uniformly regardless of move source.
func (p *Player) TryMove(dir world.Direction, w *world.World) bool {
	room := w.CurrentRoom()
	if room == nil {
		return false
	}

	offset := dir.Offset()
	candidate := world.Position{
		Row: p.pos.Row + offset.Row,
		Col: p.pos.Col + offset.Col,
	}

	if candidate.Row < 0 || candidate.Row >= room.Rows() || candidate.Col < 0 {
		return false
	}
	if candidate.Col >= room.RowLen(candidate.Row) {
		return false
	}
	if !room.IsWalkable(candidate) {
		return false
	}
	if room.CharacterAt(candidate) == world.GlyphDeepWater && p.oil <= 0 {
		return false
	}

	p.pos = candidate

	if exit, ok := room.TransitionTarget(p.pos); ok {
		if w.SetCurrentRoom(exit.TargetRoomID) {
			p.pos = exit.TargetPosition
		}
	}

	return true
}

// ConsumeOil charges the difficulty cost for an action, clamping at a
// floor of zero, and reports whether any oil remains. Unrecognized
// action types charge the move cost. This and RefillLantern are the
// only oil mutators.
func (p *Player) ConsumeOil(action ActionType, settings difficulty.Settings) bool {
	var cost float64
	switch action {
	case ActionMove:
		cost = settings.MoveOilCost
	case ActionCommand:
		cost = settings.CommandOilCost
	case ActionSpiritPenalty:
		cost = settings.SpiritPenalty
	default:
		cost = settings.MoveOilCost
	}

	p.oil = clampOil(p.oil - cost)
	return p.oil > 0
}

// RefillLantern adds oil, clamped at the lantern's capacity.
func (p *Player) RefillLantern(amount float64) {
	p.oil = clampOil(p.oil + amount)
}

// Depleted reports whether the lantern is completely dry.
func (p *Player) Depleted() bool {
	return p.oil <= 0
}

// Warning classifies the oil level: ≤10 critical, ≤25 low, ≤50 medium.
func (p *Player) Warning() WarningLevel {
	switch {
	case p.oil <= 10:
		return WarningCritical
	case p.oil <= 25:
		return WarningLow
	case p.oil <= 50:
		return WarningMedium
	default:
		return WarningGood
	}
}

// Inventory returns a copy of the inventory slots; empty strings mark
// free slots.
func (p *Player) Inventory() []string {
	inv := make([]string, InventorySlots)
	copy(inv, p.inventory[:])
	return inv
}

// SetInventory replaces all slots. Used by the save/load collaborator.
func (p *Player) SetInventory(items []string) error {
	if len(items) != InventorySlots {
		return fmt.Errorf("inventory must have exactly %d slots, got %d", InventorySlots, len(items))
	}
	copy(p.inventory[:], items)
	return nil
}

// AddItem places an item in the first empty slot, returning false when
// the inventory is full.
func (p *Player) AddItem(name string) bool {
	for i := range p.inventory {
		if p.inventory[i] == "" {
			p.inventory[i] = name
			return true
		}
	}
	return false
}

// RemoveItem clears the first slot holding the named item.
func (p *Player) RemoveItem(name string) bool {
	for i := range p.inventory {
		if p.inventory[i] == name {
			p.inventory[i] = ""
			return true
		}
	}
	return false
}

func (p *Player) HasItem(name string) bool {
	for _, item := range p.inventory {
		if item != "" && item == name {
			return true
		}
	}
	return false
}

func (p *Player) ItemCount() int {
	count := 0
	for _, item := range p.inventory {
		if item != "" {
			count++
		}
	}
	return count
}

func (p *Player) FreeSlots() int {
	return InventorySlots - p.ItemCount()
}

// Geode returns the equipped geode name, empty when none is equipped.
func (p *Player) Geode() string {
	return p.geode
}

// SetGeode sets the equipped geode directly. Used by the save/load
// collaborator; gameplay goes through EquipGeode.
func (p *Player) SetGeode(name string) {
	p.geode = name
}

// EquipGeode equips a geode currently held in inventory.
func (p *Player) EquipGeode(name string) bool {
	if !p.HasItem(name) {
		return false
	}
	p.geode = name
	return true
}

func (p *Player) UnequipGeode() {
	p.geode = ""
}

// PickUpItem scans the player's own tile and then its eight neighbours
// in row-major order, removing and returning the first item that fits
// in the inventory. An item that does not fit is restored to its tile
// and the scan continues, so a full inventory never silently drops a
// found item.
func (p *Player) PickUpItem(w *world.World) (string, bool) {
	room := w.CurrentRoom()
	if room == nil {
		return "", false
	}

	positions := make([]world.Position, 0, 9)
	positions = append(positions, p.pos)
	for rowOffset := -1; rowOffset <= 1; rowOffset++ {
		for colOffset := -1; colOffset <= 1; colOffset++ {
			if rowOffset == 0 && colOffset == 0 {
				continue
			}
			positions = append(positions, world.Position{
				Row: p.pos.Row + rowOffset,
				Col: p.pos.Col + colOffset,
			})
		}
	}

	for _, pos := range positions {
		name, ok := room.RemoveItem(pos)
		if !ok {
			continue
		}
		if p.AddItem(name) {
			return name, true
		}
		room.AddItem(pos, name)
	}
	return "", false
}

// DropItem removes a held item and places it at the player's current
// tile, overwriting any item already there. Dropping the equipped
// geode unequips it.
func (p *Player) DropItem(name string, w *world.World) bool {
	room := w.CurrentRoom()
	if room == nil {
		return false
	}
	if !p.RemoveItem(name) {
		return false
	}
	if p.geode == name {
		p.geode = ""
	}
	room.AddItem(p.pos, name)
	return true
}
