// Package rooms holds the hand-authored cathedral: room layouts and
// interactive elements defined in embedded YAML, built into a
// world.World at startup.
package rooms

import (
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/jwebster45206/sunken-cathedral/pkg/world"
)

//go:embed data/*.yaml
var roomFiles embed.FS

const (
	// StartRoomID is where a new game begins.
	StartRoomID = "entrance"
)

// StartPosition is the new-game player position in the entrance.
var StartPosition = world.Position{Row: 10, Col: 20}

type placement struct {
	Row  int    `yaml:"row"`
	Col  int    `yaml:"col"`
	Name string `yaml:"name"`
}

type runeMessage struct {
	Row  int    `yaml:"row"`
	Col  int    `yaml:"col"`
	Text string `yaml:"text"`
}

type exitDef struct {
	Direction      string         `yaml:"direction"`
	TargetRoom     string         `yaml:"target_room"`
	TargetPosition world.Position `yaml:"target_position"`
	Requirements   []string       `yaml:"requirements"`
}

type roomDef struct {
	ID              string        `yaml:"id"`
	Name            string        `yaml:"name"`
	Description     string        `yaml:"description"`
	Map             []string      `yaml:"map"`
	Items           []placement   `yaml:"items"`
	Spirits         []placement   `yaml:"spirits"`
	Fonts           []placement   `yaml:"fonts"`
	Exits           []exitDef     `yaml:"exits"`
	RuneMessages    []runeMessage `yaml:"rune_messages"`
	AmbientMessages []string      `yaml:"ambient_messages"`
}

func (d *roomDef) build() (*world.Room, error) {
	if d.ID == "" {
		return nil, fmt.Errorf("room definition missing id")
	}
	if len(d.Map) == 0 {
		return nil, fmt.Errorf("room %q has no map", d.ID)
	}

	room := world.NewRoom(d.ID, d.Name, d.Description)
	room.SetMap(d.Map)

	for _, item := range d.Items {
		room.AddItem(world.Position{Row: item.Row, Col: item.Col}, item.Name)
	}
	for _, spirit := range d.Spirits {
		room.AddSpirit(world.Position{Row: spirit.Row, Col: spirit.Col}, spirit.Name)
	}
	for _, font := range d.Fonts {
		room.AddFont(world.Position{Row: font.Row, Col: font.Col}, font.Name)
	}
	for _, exit := range d.Exits {
		dir, ok := world.ParseDirection(exit.Direction)
		if !ok {
			return nil, fmt.Errorf("room %q: unknown exit direction %q", d.ID, exit.Direction)
		}
		room.AddExit(dir, exit.TargetRoom, exit.TargetPosition, exit.Requirements)
	}
	for _, rm := range d.RuneMessages {
		room.RuneMessages[world.Position{Row: rm.Row, Col: rm.Col}] = rm.Text
	}
	room.AmbientMessages = d.AmbientMessages

	return room, nil
}

// BuildWorld loads every embedded room definition and returns the
// world with the entrance set current.
func BuildWorld() (*world.World, error) {
	w := world.New()

	entries, err := fs.ReadDir(roomFiles, "data")
	if err != nil {
		return nil, fmt.Errorf("failed to read room definitions: %w", err)
	}

	for _, entry := range entries {
		data, err := roomFiles.ReadFile("data/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}

		var def roomDef
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", entry.Name(), err)
		}

		room, err := def.build()
		if err != nil {
			return nil, fmt.Errorf("invalid room in %s: %w", entry.Name(), err)
		}
		w.AddRoom(room)
	}

	// Exits must point at rooms that exist.
	for _, id := range w.RoomIDs() {
		room, _ := w.GetRoom(id)
		for _, dir := range []world.Direction{world.North, world.South, world.East, world.West} {
			exit, ok := room.Exit(dir)
			if !ok {
				continue
			}
			if _, ok := w.GetRoom(exit.TargetRoomID); !ok {
				return nil, fmt.Errorf("room %q: %s exit targets unknown room %q", id, dir, exit.TargetRoomID)
			}
		}
	}

	if !w.SetCurrentRoom(StartRoomID) {
		return nil, fmt.Errorf("start room %q not defined", StartRoomID)
	}
	return w, nil
}
