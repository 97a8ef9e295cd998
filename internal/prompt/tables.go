package prompt

import "github.com/vovakirdan/prompt-arcade/internal/core"

// Keyword tables. Order matters: when two categories score the same number
// of hits, the one listed first wins.

type archetypeEntry struct {
	archetype core.Archetype
	keywords  []string
	player    core.PlayerSpec // capability flags only; sprite and size are filled later
}

var archetypeTable = []archetypeEntry{
	{core.ArchetypeShooter, []string{"shooter", "shoot", "shot", "destroy", "blast", "blaster", "laser", "asteroid", "invader", "zap"},
		core.PlayerSpec{Axes: core.AxesHorizontal, CanShoot: true}},
	{core.ArchetypeCatcher, []string{"catch", "catcher", "falling", "collect", "basket", "grab", "gather"},
		core.PlayerSpec{Axes: core.AxesHorizontal}},
	{core.ArchetypeRunner, []string{"run", "runner", "running", "endless", "dash", "sprint"},
		core.PlayerSpec{Axes: core.AxesNone, CanJump: true}},
	{core.ArchetypePlatformer, []string{"jump", "platform", "platformer", "climb", "hop", "leap"},
		core.PlayerSpec{Axes: core.AxesHorizontal, CanJump: true}},
	{core.ArchetypeRacer, []string{"race", "racing", "racer", "dodge", "dodging", "car", "drive", "driving", "lane", "traffic"},
		core.PlayerSpec{Axes: core.AxesHorizontal}},
	{core.ArchetypeBreakout, []string{"break", "breakout", "smash", "brick", "wall", "bounce"},
		core.PlayerSpec{Axes: core.AxesHorizontal}},
	{core.ArchetypeFlappy, []string{"fly", "flying", "flap", "flappy", "bird", "glide", "soar"},
		core.PlayerSpec{Axes: core.AxesNone, CanJump: true}},
	{core.ArchetypePong, []string{"pong", "paddle", "tennis", "ping"},
		core.PlayerSpec{Axes: core.AxesVertical}},
}

type themeEntry struct {
	theme    core.Theme
	keywords []string
}

var themeTable = []themeEntry{
	{core.ThemeSpace, []string{"space", "galaxy", "galactic", "star", "planet", "asteroid", "alien", "rocket", "cosmic", "moon", "ufo", "astronaut"}},
	{core.ThemeOcean, []string{"ocean", "sea", "underwater", "fish", "shark", "reef", "whale", "water", "dolphin", "submarine"}},
	{core.ThemeForest, []string{"forest", "jungle", "tree", "woods", "nature", "animal", "bunny", "fox", "leaf", "mushroom"}},
	{core.ThemeCyber, []string{"cyber", "robot", "robotics", "neon", "digital", "hacker", "matrix", "tech", "futuristic", "computer", "code", "virus"}},
	{core.ThemePirate, []string{"pirate", "treasure", "ship", "parrot", "island", "cannon", "gold"}},
	{core.ThemeCandy, []string{"candy", "sweet", "sugar", "chocolate", "cake", "cookie", "dessert", "lollipop", "donut"}},
	{core.ThemeDesert, []string{"desert", "sand", "cactus", "camel", "pyramid", "dune", "dino", "dinosaur"}},
	{core.ThemeWinter, []string{"winter", "snow", "ice", "frozen", "penguin", "christmas", "snowflake", "ski", "snowman"}},
}

type difficultyEntry struct {
	difficulty core.Difficulty
	keywords   []string
}

var difficultyTable = []difficultyEntry{
	{core.DifficultyEasy, []string{"easy", "simple", "kid", "beginner", "relaxed", "chill", "casual", "gentle", "toddler"}},
	{core.DifficultyMedium, []string{"medium", "normal", "moderate", "average"}},
	{core.DifficultyHard, []string{"hard", "impossible", "insane", "extreme", "difficult", "expert", "brutal", "nightmare"}},
}

// stopWords are never used as the title subject.
var stopWords = map[string]bool{
	"game": true, "games": true, "where": true, "with": true, "about": true, "that": true,
	"this": true, "have": true, "make": true, "create": true, "some": true, "from": true,
	"into": true, "when": true, "then": true, "them": true, "they": true, "there": true,
	"your": true, "like": true, "want": true, "play": true, "player": true, "lots": true,
	"very": true, "which": true, "while": true, "should": true, "would": true, "could": true,
	"please": true, "need": true, "must": true, "every": true, "using": true, "things": true,
	"over": true, "under": true, "around": true, "through": true, "avoid": true, "only": true,
}

// themeArt is the sprite set for a theme.
type themeArt struct {
	player       core.Sprite
	obstacle     core.Sprite
	target       core.Sprite
	obstacleName string
	targetName   string
}

var themeArtTable = map[core.Theme]themeArt{
	core.ThemeClassic: {
		player:       core.Sprite{Glyph: "@", Emoji: "🙂", Color: core.ColorBrightWhite},
		obstacle:     core.Sprite{Glyph: "#", Emoji: "🧱", Color: core.ColorRed},
		target:       core.Sprite{Glyph: "o", Emoji: "🪙", Color: core.ColorBrightYellow},
		obstacleName: "block", targetName: "coin",
	},
	core.ThemeSpace: {
		player:       core.Sprite{Glyph: "▲", Emoji: "🚀", Color: core.ColorBrightCyan},
		obstacle:     core.Sprite{Glyph: "●", Emoji: "☄️", Color: core.ColorGray},
		target:       core.Sprite{Glyph: "*", Emoji: "⭐", Color: core.ColorBrightYellow},
		obstacleName: "asteroid", targetName: "star",
	},
	core.ThemeOcean: {
		player:       core.Sprite{Glyph: "◆", Emoji: "🐠", Color: core.ColorOrange},
		obstacle:     core.Sprite{Glyph: "◄", Emoji: "🦈", Color: core.ColorGray},
		target:       core.Sprite{Glyph: "o", Emoji: "🐚", Color: core.ColorPink},
		obstacleName: "shark", targetName: "shell",
	},
	core.ThemeForest: {
		player:       core.Sprite{Glyph: "♞", Emoji: "🦊", Color: core.ColorOrange},
		obstacle:     core.Sprite{Glyph: "▲", Emoji: "🌲", Color: core.ColorGreen},
		target:       core.Sprite{Glyph: "♣", Emoji: "🍄", Color: core.ColorBrightRed},
		obstacleName: "thorn", targetName: "mushroom",
	},
	core.ThemeCyber: {
		player:       core.Sprite{Glyph: "Ω", Emoji: "🤖", Color: core.ColorBrightCyan},
		obstacle:     core.Sprite{Glyph: "▓", Emoji: "🦠", Color: core.ColorBrightRed},
		target:       core.Sprite{Glyph: "◊", Emoji: "💾", Color: core.ColorBrightGreen},
		obstacleName: "virus", targetName: "data chip",
	},
	core.ThemePirate: {
		player:       core.Sprite{Glyph: "⌂", Emoji: "🏴‍☠️", Color: core.ColorBrown},
		obstacle:     core.Sprite{Glyph: "●", Emoji: "💣", Color: core.ColorGray},
		target:       core.Sprite{Glyph: "$", Emoji: "💰", Color: core.ColorBrightYellow},
		obstacleName: "cannonball", targetName: "gold",
	},
	core.ThemeCandy: {
		player:       core.Sprite{Glyph: "♥", Emoji: "🧁", Color: core.ColorPink},
		obstacle:     core.Sprite{Glyph: "¤", Emoji: "🥦", Color: core.ColorGreen},
		target:       core.Sprite{Glyph: "°", Emoji: "🍬", Color: core.ColorBrightMagenta},
		obstacleName: "broccoli", targetName: "candy",
	},
	core.ThemeDesert: {
		player:       core.Sprite{Glyph: "Д", Emoji: "🐪", Color: core.ColorYellow},
		obstacle:     core.Sprite{Glyph: "¥", Emoji: "🌵", Color: core.ColorGreen},
		target:       core.Sprite{Glyph: "♦", Emoji: "💧", Color: core.ColorBrightBlue},
		obstacleName: "cactus", targetName: "water drop",
	},
	core.ThemeWinter: {
		player:       core.Sprite{Glyph: "Å", Emoji: "🐧", Color: core.ColorBrightWhite},
		obstacle:     core.Sprite{Glyph: "▼", Emoji: "🧊", Color: core.ColorBrightBlue},
		target:       core.Sprite{Glyph: "*", Emoji: "❄️", Color: core.ColorWhite},
		obstacleName: "icicle", targetName: "snowflake",
	},
}

// structuralGlyphs replace theme glyphs for archetypes whose entities have a
// fixed shape (paddles, bricks, pipes, balls). Empty means keep the theme glyph.
var structuralGlyphs = map[core.Archetype][3]string{
	core.ArchetypeShooter:  {"▲", "", ""},
	core.ArchetypeCatcher:  {"▄", "", ""},
	core.ArchetypeRacer:    {"▣", "▣", ""},
	core.ArchetypeBreakout: {"▀", "", "█"},
	core.ArchetypeFlappy:   {"", "█", ""},
	core.ArchetypePong:     {"█", "█", "●"},
}

// structuralNames rename entities that the archetype gives a fixed role.
var structuralNames = map[core.Archetype][2]string{
	core.ArchetypeBreakout: {"", "brick"},
	core.ArchetypeFlappy:   {"pipe", ""},
	core.ArchetypePong:     {"opponent paddle", "ball"},
}
