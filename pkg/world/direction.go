package world

// Position is a (row, col) index into a room's character grid.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

var directionNames = map[Direction]string{
	North: "north",
	South: "south",
	East:  "east",
	West:  "west",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "unknown"
}

// Offset returns the unit (row, col) delta for the direction.
func (d Direction) Offset() Position {
	switch d {
	case North:
		return Position{Row: -1, Col: 0}
	case South:
		return Position{Row: 1, Col: 0}
	case East:
		return Position{Row: 0, Col: 1}
	case West:
		return Position{Row: 0, Col: -1}
	}
	return Position{}
}

// ParseDirection resolves a direction name or single-letter alias.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "north", "n":
		return North, true
	case "south", "s":
		return South, true
	case "east", "e":
		return East, true
	case "west", "w":
		return West, true
	}
	return 0, false
}
