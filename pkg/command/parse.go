package command

import "strings"

// Verb is a canonical command verb. Parse maps synonyms onto these
// values; a token matching no verb passes through unchanged so error
// messages can echo the player's literal word.
type Verb string

const (
	VerbNone     Verb = ""
	VerbTake     Verb = "take"
	VerbDrop     Verb = "drop"
	VerbUse      Verb = "use"
	VerbRead     Verb = "read"
	VerbFill     Verb = "fill"
	VerbShine    Verb = "shine"
	VerbSoothe   Verb = "soothe"
	VerbOpen     Verb = "open"
	VerbGo       Verb = "go"
	VerbHelp     Verb = "help"
	VerbSettings Verb = "settings"
	VerbSave     Verb = "save"
	VerbLoad     Verb = "load"
)

var verbSynonyms = map[string]Verb{
	"take": VerbTake, "get": VerbTake, "pick": VerbTake, "grab": VerbTake,
	"drop": VerbDrop, "leave": VerbDrop, "place": VerbDrop,
	"use": VerbUse, "activate": VerbUse, "employ": VerbUse,
	"read": VerbRead, "examine": VerbRead, "look": VerbRead,
	"fill": VerbFill, "refill": VerbFill,
	"shine": VerbShine, "light": VerbShine, "illuminate": VerbShine,
	"soothe": VerbSoothe, "calm": VerbSoothe, "comfort": VerbSoothe,
	"open": VerbOpen, "unlock": VerbOpen,
	"go": VerbGo, "move": VerbGo, "walk": VerbGo,
	"help": VerbHelp, "commands": VerbHelp, "?": VerbHelp,
	"settings": VerbSettings, "options": VerbSettings, "config": VerbSettings,
	"save": VerbSave, "savegame": VerbSave,
	"load": VerbLoad, "loadgame": VerbLoad,
}

var nounSynonyms = map[string]string{
	"lantern": "lantern", "lamp": "lantern", "light": "lantern",
	"scroll": "scroll", "paper": "scroll", "parchment": "scroll",
	"geode": "geode", "crystal": "geode", "stone": "geode",
	"spirit": "spirit", "ghost": "spirit", "sorrow": "spirit",
	"font": "font", "fountain": "font", "basin": "font",
	"key":  "key",
	"door": "door", "gate": "door", "passage": "door",
	"inventory": "inventory", "items": "inventory", "bag": "inventory",
	"north": "north", "n": "north",
	"south": "south", "s": "south",
	"east": "east", "e": "east",
	"west": "west", "w": "west",
}

func normalizeVerb(word string) Verb {
	if verb, ok := verbSynonyms[word]; ok {
		return verb
	}
	return Verb(word)
}

func normalizeNoun(word string) string {
	if noun, ok := nounSynonyms[word]; ok {
		return noun
	}
	return word
}

// Parse splits a raw command into (verb, noun). Zero tokens yield
// (VerbNone, ""); a single token is a bare verb; extra tokens beyond
// the first two are silently discarded.
func Parse(text string) (Verb, string) {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	switch len(words) {
	case 0:
		return VerbNone, ""
	case 1:
		return normalizeVerb(words[0]), ""
	default:
		return normalizeVerb(words[0]), normalizeNoun(words[1])
	}
}
