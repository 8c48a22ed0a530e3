package world

// World owns all rooms and tracks which one is current. At most one
// room is current at any time.
type World struct {
	rooms         map[string]*Room
	currentRoomID string
}

func New() *World {
	return &World{
		rooms: make(map[string]*Room),
	}
}

func (w *World) AddRoom(room *Room) {
	w.rooms[room.ID] = room
}

func (w *World) GetRoom(id string) (*Room, bool) {
	room, ok := w.rooms[id]
	return room, ok
}

// CurrentRoom returns the active room, or nil if none is set.
func (w *World) CurrentRoom() *Room {
	if w.currentRoomID == "" {
		return nil
	}
	return w.rooms[w.currentRoomID]
}

func (w *World) CurrentRoomID() string {
	return w.currentRoomID
}

// SetCurrentRoom switches the active room. It returns false and leaves
// state unchanged when the id is unknown.
func (w *World) SetCurrentRoom(id string) bool {
	if _, ok := w.rooms[id]; !ok {
		return false
	}
	w.currentRoomID = id
	return true
}

// RoomIDs returns the ids of all registered rooms.
func (w *World) RoomIDs() []string {
	ids := make([]string, 0, len(w.rooms))
	for id := range w.rooms {
		ids = append(ids, id)
	}
	return ids
}
