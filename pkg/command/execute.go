package command

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/sunken-cathedral/pkg/player"
	"github.com/jwebster45206/sunken-cathedral/pkg/state"
	"github.com/jwebster45206/sunken-cathedral/pkg/world"
)

// Execute dispatches a parsed command against the game state. Every
// fault is converted to a Result; a panic in a handler becomes a
// Failure with a diagnostic message rather than propagating.
func Execute(verb Verb, noun string, gs *state.GameState) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = flavor(Failure, fmt.Sprintf("Something went wrong: %v", r))
		}
	}()

	switch verb {
	case VerbTake:
		return takeCommand(noun, gs)
	case VerbDrop:
		return dropCommand(noun, gs)
	case VerbUse:
		return useCommand(noun, gs)
	case VerbRead:
		return readCommand(noun, gs)
	case VerbFill:
		return fillCommand(noun, gs)
	case VerbShine:
		return shineCommand(noun, gs)
	case VerbSoothe:
		return sootheCommand(noun, gs)
	case VerbGo:
		return goCommand(noun)
	case VerbHelp:
		return uiRequest(UIHelp)
	case VerbSettings:
		return uiRequest(UISettingsMenu)
	case VerbSave:
		return uiRequest(UISaveMenu)
	case VerbLoad:
		return uiRequest(UILoadMenu)
	default:
		return flavor(Invalid, fmt.Sprintf("I don't understand '%s'.", verb))
	}
}

// ConsumesOil reports whether executing a verb costs command oil.
// Menu verbs are free.
func ConsumesOil(verb Verb) bool {
	switch verb {
	case VerbHelp, VerbSettings, VerbSave, VerbLoad, VerbNone:
		return false
	}
	return true
}

func takeCommand(noun string, gs *state.GameState) Result {
	if noun == "" {
		return flavor(Invalid, "Take what?")
	}
	if name, ok := gs.Player.PickUpItem(gs.World); ok {
		return flavor(Success, fmt.Sprintf("You take the %s.", name))
	}
	return flavor(NotFound, "There's nothing here to take.")
}

func dropCommand(noun string, gs *state.GameState) Result {
	if noun == "" {
		return flavor(Invalid, "Drop what?")
	}

	// First case-insensitive substring hit in inventory wins.
	var match string
	for _, item := range gs.Player.Inventory() {
		if item != "" && strings.Contains(strings.ToLower(item), strings.ToLower(noun)) {
			match = item
			break
		}
	}
	if match == "" {
		return flavor(NotFound, fmt.Sprintf("You don't have a %s.", noun))
	}

	if gs.Player.DropItem(match, gs.World) {
		return flavor(Success, fmt.Sprintf("You drop the %s.", match))
	}
	return flavor(Failure, "You can't drop that here.")
}

func useCommand(noun string, gs *state.GameState) Result {
	if noun == "" {
		return flavor(Invalid, "Use what?")
	}

	if noun == "geode" {
		for _, item := range gs.Player.Inventory() {
			if item != "" && strings.Contains(strings.ToLower(item), "geode") {
				if gs.Player.EquipGeode(item) {
					return flavor(Success, fmt.Sprintf("You attune the %s to your lantern.", item))
				}
				break
			}
		}
		return flavor(NotFound, "You don't have a geode.")
	}

	return flavor(Invalid, fmt.Sprintf("You can't use the %s.", noun))
}

func readCommand(noun string, gs *state.GameState) Result {
	if noun == "" {
		return flavor(Invalid, "Read what?")
	}

	if noun == "scroll" {
		if gs.Player.HasItem(player.StartingItem) {
			// The presentation layer owns the scroll's full text.
			return Result{Kind: Success, Message: "You unfurl the worn scroll.", UI: UIScroll}
		}
		return flavor(NotFound, "You don't have a scroll to read.")
	}

	return flavor(Invalid, fmt.Sprintf("You can't read the %s.", noun))
}

func fillCommand(noun string, gs *state.GameState) Result {
	if noun != "lantern" {
		return flavor(Invalid, "Fill what? (Try 'FILL LANTERN')")
	}

	room := gs.World.CurrentRoom()
	if room == nil {
		return flavor(NotFound, "There's no font here to refill your lantern.")
	}
	if _, ok := room.FontAt(gs.Player.Position()); !ok {
		return flavor(NotFound, "There's no font here to refill your lantern.")
	}

	gs.Player.RefillLantern(player.MaxOil)
	return flavor(Success, "You refill your lantern with sacred oil. The flame burns bright once more.")
}

func shineCommand(noun string, gs *state.GameState) Result {
	if noun != "lantern" {
		return flavor(Invalid, "Shine what? (Try 'SHINE LANTERN')")
	}
	if gs.Player.Depleted() {
		return flavor(Failure, "Your lantern has no oil to shine.")
	}
	return flavor(Success, "Your lantern glows with sacred light.")
}

func sootheCommand(noun string, gs *state.GameState) Result {
	if noun != "spirit" {
		return flavor(Invalid, "Soothe what? (Try 'SOOTHE SPIRIT')")
	}

	room := gs.World.CurrentRoom()
	if room == nil {
		return flavor(NotFound, "There's no spirit here to soothe.")
	}

	spiritPos, _, found := room.SpiritNear(gs.Player.Position())
	if !found {
		return flavor(NotFound, "There's no spirit here to soothe.")
	}

	// Any equipped geode suffices; the geode type is not matched
	// against the spirit.
	if geode := gs.Player.Geode(); geode != "" {
		room.RemoveSpirit(spiritPos)
		return flavor(Success, fmt.Sprintf("You soothe the spirit with your %s. It fades peacefully.", geode))
	}

	gs.Player.ConsumeOil(player.ActionSpiritPenalty, gs.Difficulty.CurrentSettings())
	return flavor(Failure, "You need a prayer geode to soothe the spirit. "+
		"The spirit lashes out! Your lantern flickers as its anguish drains your oil.")
}

func goCommand(noun string) Result {
	if noun == "" {
		return flavor(Invalid, "Go where? (north, south, east, west)")
	}
	dir, ok := world.ParseDirection(noun)
	if !ok {
		return flavor(Invalid, fmt.Sprintf("I don't understand the direction '%s'.", noun))
	}
	// Movement happens on the movement keys; the verb only reminds.
	return flavor(Success, fmt.Sprintf("Use the arrow keys to move %s.", dir))
}
