package world

// Map glyphs with gameplay meaning. Walls and rubble block movement;
// deep water is walkable but requires lantern oil, a rule enforced by
// the player rather than the room.
const (
	GlyphWall      = '▓'
	GlyphRubble    = '█'
	GlyphDeepWater = '≈'
	GlyphEmpty     = ' '
)

// Exit connects a room edge to a position in another room.
type Exit struct {
	Direction      Direction `json:"direction"`
	TargetRoomID   string    `json:"target_room_id"`
	TargetPosition Position  `json:"target_position"`
	Requirements   []string  `json:"requirements,omitempty"`
}

// Room is a single area of the cathedral: a ragged rune grid plus the
// interactive elements keyed by grid position.
type Room struct {
	ID          string
	Name        string
	Description string

	grid     [][]rune
	walkable map[Position]struct{}

	items   map[Position]string
	spirits map[Position]string
	fonts   map[Position]string
	exits   map[Direction]Exit

	AmbientMessages []string
	RuneMessages    map[Position]string
}

func NewRoom(id, name, description string) *Room {
	return &Room{
		ID:           id,
		Name:         name,
		Description:  description,
		walkable:     make(map[Position]struct{}),
		items:        make(map[Position]string),
		spirits:      make(map[Position]string),
		fonts:        make(map[Position]string),
		exits:        make(map[Direction]Exit),
		RuneMessages: make(map[Position]string),
	}
}

// SetMap replaces the room grid and recomputes the walkable set.
// Rows may be ragged; out-of-range columns read as the empty glyph.
func (r *Room) SetMap(lines []string) {
	r.grid = make([][]rune, len(lines))
	for i, line := range lines {
		r.grid[i] = []rune(line)
	}
	r.recomputeWalkable()
}

func (r *Room) recomputeWalkable() {
	r.walkable = make(map[Position]struct{})
	for row, line := range r.grid {
		for col, ch := range line {
			if ch == GlyphWall || ch == GlyphRubble {
				continue
			}
			r.walkable[Position{Row: row, Col: col}] = struct{}{}
		}
	}
}

// Map returns a copy of the grid rows for rendering.
func (r *Room) Map() []string {
	lines := make([]string, len(r.grid))
	for i, row := range r.grid {
		lines[i] = string(row)
	}
	return lines
}

// Rows returns the number of grid rows.
func (r *Room) Rows() int {
	return len(r.grid)
}

// RowLen returns the rune length of a row, or 0 if out of range.
func (r *Room) RowLen(row int) int {
	if row < 0 || row >= len(r.grid) {
		return 0
	}
	return len(r.grid[row])
}

// IsWalkable reports whether a position is in the derived walkable set.
func (r *Room) IsWalkable(pos Position) bool {
	_, ok := r.walkable[pos]
	return ok
}

// CharacterAt returns the glyph at a position, or the empty glyph when
// the position is out of bounds. It never fails.
func (r *Room) CharacterAt(pos Position) rune {
	if pos.Row < 0 || pos.Row >= len(r.grid) {
		return GlyphEmpty
	}
	if pos.Col < 0 || pos.Col >= len(r.grid[pos.Row]) {
		return GlyphEmpty
	}
	return r.grid[pos.Row][pos.Col]
}

// ModifyTile rewrites a single in-bounds glyph and recomputes the
// walkable set. It returns false, mutating nothing, when the position
// is out of bounds.
func (r *Room) ModifyTile(pos Position, ch rune) bool {
	if pos.Row < 0 || pos.Row >= len(r.grid) {
		return false
	}
	if pos.Col < 0 || pos.Col >= len(r.grid[pos.Row]) {
		return false
	}
	r.grid[pos.Row][pos.Col] = ch
	r.recomputeWalkable()
	return true
}

func (r *Room) AddItem(pos Position, name string) {
	r.items[pos] = name
}

// RemoveItem removes and returns the item at a position. An absent
// position yields ("", false), not an error.
func (r *Room) RemoveItem(pos Position) (string, bool) {
	name, ok := r.items[pos]
	if ok {
		delete(r.items, pos)
	}
	return name, ok
}

// ItemAt returns the item at a position without removing it.
func (r *Room) ItemAt(pos Position) (string, bool) {
	name, ok := r.items[pos]
	return name, ok
}

// Items returns a copy of the position→item mapping for rendering.
func (r *Room) Items() map[Position]string {
	items := make(map[Position]string, len(r.items))
	for pos, name := range r.items {
		items[pos] = name
	}
	return items
}

func (r *Room) AddSpirit(pos Position, name string) {
	r.spirits[pos] = name
}

func (r *Room) RemoveSpirit(pos Position) (string, bool) {
	name, ok := r.spirits[pos]
	if ok {
		delete(r.spirits, pos)
	}
	return name, ok
}

// Spirits returns a copy of the position→spirit mapping.
func (r *Room) Spirits() map[Position]string {
	spirits := make(map[Position]string, len(r.spirits))
	for pos, name := range r.spirits {
		spirits[pos] = name
	}
	return spirits
}

// SpiritNear returns the first spirit within Chebyshev distance 1 of
// pos, including the same tile.
func (r *Room) SpiritNear(pos Position) (Position, string, bool) {
	for spiritPos, name := range r.spirits {
		rowDiff := spiritPos.Row - pos.Row
		colDiff := spiritPos.Col - pos.Col
		if rowDiff < 0 {
			rowDiff = -rowDiff
		}
		if colDiff < 0 {
			colDiff = -colDiff
		}
		if rowDiff <= 1 && colDiff <= 1 {
			return spiritPos, name, true
		}
	}
	return Position{}, "", false
}

// AddFont registers an oil-refill source. Fonts are immutable after
// room creation; there is no removal.
func (r *Room) AddFont(pos Position, name string) {
	r.fonts[pos] = name
}

func (r *Room) FontAt(pos Position) (string, bool) {
	name, ok := r.fonts[pos]
	return name, ok
}

// Fonts returns a copy of the position→font mapping.
func (r *Room) Fonts() map[Position]string {
	fonts := make(map[Position]string, len(r.fonts))
	for pos, name := range r.fonts {
		fonts[pos] = name
	}
	return fonts
}

// AddExit registers or overwrites the exit for a direction. At most
// one exit exists per direction.
func (r *Room) AddExit(direction Direction, targetRoomID string, targetPos Position, requirements []string) {
	r.exits[direction] = Exit{
		Direction:      direction,
		TargetRoomID:   targetRoomID,
		TargetPosition: targetPos,
		Requirements:   requirements,
	}
}

func (r *Room) Exit(direction Direction) (Exit, bool) {
	exit, ok := r.exits[direction]
	return exit, ok
}

// TransitionTarget reports the exit triggered by standing at pos:
// the north exit when pos is on the first grid row, the south exit
// when on the last. East/west exits can be registered but are never
// edge-triggered; they are an extension point.
func (r *Room) TransitionTarget(pos Position) (Exit, bool) {
	if len(r.grid) == 0 {
		return Exit{}, false
	}
	if pos.Row == 0 {
		if exit, ok := r.exits[North]; ok {
			return exit, true
		}
	}
	if pos.Row == len(r.grid)-1 {
		if exit, ok := r.exits[South]; ok {
			return exit, true
		}
	}
	return Exit{}, false
}
