package main

// Presentation-owned text: the dispatcher only signals UIScroll or
// UIHelp and this layer supplies the pages.

var scrollText = []string{
	"From the final testament of Keeper Aldara Westmere,",
	"Last Lightkeeper of the Meridian Chain",
	"Recorded in the thirteenth year of the Deep Silence",
	"",
	"To my successor, whose blood calls to the ancient duty:",
	"",
	"Know this truth, for it shall be your burden as it was mine,",
	"and my father's, and his father's before him, stretching back",
	"seven generations to the founding of our vigil.",
	"",
	"We are the Lamplighters, keepers of the Consecrated Flames.",
	"Our family tends not ordinary lighthouses, but the Beacon Chain:",
	"thirteen mystical lights that burn upon the Threshold Cliffs,",
	"visible only to those born with the Sight of Sorrows.",
	"",
	"These lights serve no earthly vessel, for they guide souls",
	"across the ethereal waters that separate the living from",
	"the realm of unquiet dead. Each flame burns with oil blessed",
	"by ancient rites, fed from fonts that spring from holy ground.",
	"",
	"But the sea holds deeper mysteries than even we knew.",
	"",
	"A great maelstrom arose from the depths, unlike any natural",
	"phenomenon our records describe. The very ocean floor convulsed,",
	"and the ancient barriers that held back the past were broken.",
	"When the waters finally stilled, what had been hidden for",
	"centuries was laid bare beneath the moonlight.",
	"",
	"The Sunken Cathedral rises from the depths, its spires",
	"piercing the waves like accusatory fingers. Its stones",
	"whisper with accumulated sorrow, its halls echo with",
	"prayers that were never finished.",
	"",
	"From its highest tower burns a beacon of spectral blue,",
	"visible only to those who bear our bloodline. Its purpose",
	"is not guidance. It is a cry for help.",
	"",
	"To reach the Cathedral, you must carry our ancestral lantern,",
	"the Meridian Light. This lantern creates a sphere of sacred",
	"air that allows the bearer to walk upon the sea floor as if",
	"it were dry land, protected from the crushing depths.",
	"",
	"Trust in the Light, for it is the only protection against",
	"the Drowned Sorrows, spirits of those who perished in the",
	"Cathedral's fall. They hunger for the warmth of living souls",
	"but can be calmed by one who carries the proper blessing.",
	"",
	"Remember always: the lights must never die. In darkness,",
	"sorrow grows, and the barriers between realms weaken.",
	"",
	"Go with the blessing of seven generations, child of the light.",
	"Bring peace to the deep.",
	"",
	"   - Aldara Westmere",
	"     Keeper of the Meridian Chain",
	"     Last of the Old Watch",
}

var helpText = []string{
	"MOVEMENT",
	"  Arrow keys        Move around the room",
	"",
	"COMMANDS",
	"  Any letter key opens the command line. Commands are two",
	"  words: a verb and a noun. Esc cancels without effect.",
	"",
	"  TAKE <item>       Pick up an item on or beside your tile",
	"  DROP <item>       Drop a held item where you stand",
	"  USE GEODE         Attune a held geode to your lantern",
	"  READ SCROLL       Read the worn scroll",
	"  FILL LANTERN      Refill your lantern at a font",
	"  SHINE LANTERN     Raise your lantern's light",
	"  SOOTHE SPIRIT     Calm an adjacent spirit (geode required)",
	"  GO <direction>    A reminder to use the arrow keys",
	"",
	"MENUS",
	"  HELP              This screen",
	"  SETTINGS          Choose a difficulty",
	"  SAVE              Save to one of five slots",
	"  LOAD              Load a saved game",
	"",
	"THE LANTERN",
	"  Moving and acting burn oil, more on harder difficulties.",
	"  Deep water (≈) cannot be entered with a dry lantern.",
	"  Fonts (F) restore your oil: stand on one and FILL LANTERN.",
	"",
	"OTHER KEYS",
	"  Ctrl+Y            Copy the last message to the clipboard",
	"  Esc or Ctrl+C     Quit",
}
