package difficulty

import "fmt"

// Level identifies one of the fixed difficulty levels.
type Level string

const (
	LevelExplorer Level = "explorer"
	LevelStory    Level = "story"
	LevelEasy     Level = "easy"
	LevelHard     Level = "hard"
)

// Settings holds the coefficients for a single difficulty level.
// Oil costs are in percentage units of the lantern's 0-100 range.
type Settings struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	MoveOilCost    float64 `json:"move_oil_cost"`    // per successful move
	CommandOilCost float64 `json:"command_oil_cost"` // per executed command
	SpiritPenalty  float64 `json:"spirit_penalty"`   // wrong-interaction penalty

	// Reserved for combat, unused by the core.
	MaxHealth        int     `json:"max_health"`
	CombatMultiplier float64 `json:"combat_multiplier"`
}

var settings = map[Level]Settings{
	LevelExplorer: {
		Name:             "Explorer Mode",
		Description:      "No oil consumption, minimal combat damage. Focus on story and exploration.",
		MoveOilCost:      0.0,
		CommandOilCost:   0.0,
		SpiritPenalty:    0.1,
		MaxHealth:        100,
		CombatMultiplier: 0.1,
	},
	LevelStory: {
		Name:             "Story Mode",
		Description:      "Very low oil consumption. Enjoy the narrative without pressure.",
		MoveOilCost:      0.01,
		CommandOilCost:   0.005,
		SpiritPenalty:    1.0,
		MaxHealth:        100,
		CombatMultiplier: 0.3,
	},
	LevelEasy: {
		Name:             "Easy",
		Description:      "Low oil consumption. Good for new players.",
		MoveOilCost:      0.1,
		CommandOilCost:   0.05,
		SpiritPenalty:    2.0,
		MaxHealth:        100,
		CombatMultiplier: 0.5,
	},
	LevelHard: {
		Name:             "Hard",
		Description:      "Standard oil consumption. The intended challenge.",
		MoveOilCost:      0.5,
		CommandOilCost:   0.3,
		SpiritPenalty:    5.0,
		MaxHealth:        100,
		CombatMultiplier: 1.0,
	},
}

// Levels returns all levels in menu order, gentlest first.
func Levels() []Level {
	return []Level{LevelExplorer, LevelStory, LevelEasy, LevelHard}
}

// GetSettings returns the settings for a level. It is total over the
// four levels; an unknown level falls back to Hard.
func GetSettings(level Level) Settings {
	s, ok := settings[level]
	if !ok {
		return settings[LevelHard]
	}
	return s
}

// ParseLevel converts a save-file tag back into a Level.
func ParseLevel(tag string) (Level, error) {
	switch Level(tag) {
	case LevelExplorer, LevelStory, LevelEasy, LevelHard:
		return Level(tag), nil
	}
	return "", fmt.Errorf("unknown difficulty level %q", tag)
}

// Manager tracks the single active difficulty level.
type Manager struct {
	current Level
}

// NewManager returns a manager starting at Hard, the intended challenge.
func NewManager() *Manager {
	return &Manager{current: LevelHard}
}

func (m *Manager) Current() Level {
	return m.current
}

func (m *Manager) SetLevel(level Level) {
	m.current = level
}

func (m *Manager) CurrentSettings() Settings {
	return GetSettings(m.current)
}

func (m *Manager) MoveCost() float64 {
	return m.CurrentSettings().MoveOilCost
}

func (m *Manager) CommandCost() float64 {
	return m.CurrentSettings().CommandOilCost
}

func (m *Manager) SpiritPenalty() float64 {
	return m.CurrentSettings().SpiritPenalty
}
