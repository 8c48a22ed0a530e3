package state

import (
	"github.com/google/uuid"
	"github.com/jwebster45206/sunken-cathedral/pkg/difficulty"
	"github.com/jwebster45206/sunken-cathedral/pkg/player"
	"github.com/jwebster45206/sunken-cathedral/pkg/world"
)

// GameState bundles everything a command handler may read or mutate.
// It is passed explicitly into the dispatcher; nothing in the core
// reaches for globals.
type GameState struct {
	ID         uuid.UUID `json:"id"` // unique per session
	World      *world.World
	Player     *player.Player
	Difficulty *difficulty.Manager
	TotalMoves int
}

// New creates a session around an authored world: difficulty Hard,
// move counter at zero.
func New(w *world.World, p *player.Player) *GameState {
	return &GameState{
		ID:         uuid.New(),
		World:      w,
		Player:     p,
		Difficulty: difficulty.NewManager(),
	}
}

// RecordMove bumps the monotonically increasing move counter.
func (gs *GameState) RecordMove() {
	gs.TotalMoves++
}
