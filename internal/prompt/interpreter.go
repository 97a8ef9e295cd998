// Package prompt turns free-form text into a GameConfig with a deterministic
// keyword classifier. Interpret never fails: text with no recognisable words
// yields the default catcher game.
package prompt

import (
	"errors"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vovakirdan/prompt-arcade/internal/config"
	"github.com/vovakirdan/prompt-arcade/internal/core"
)

// MaxPromptLength is the longest prompt the hosts accept, in runes.
const MaxPromptLength = 280

var (
	// ErrEmptyPrompt is returned by Validate for blank input.
	ErrEmptyPrompt = errors.New("prompt: empty prompt")
	// ErrPromptTooLong is returned by Validate for input over MaxPromptLength.
	ErrPromptTooLong = errors.New("prompt: prompt too long")
)

// inflections are the endings a token may add to a keyword and still match
// it ("shoots", "destroyed", "asteroids").
var inflections = []string{"s", "es", "ed", "er", "ers", "ing"}

// Validate is the host-side guard run before Interpret.
func Validate(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrEmptyPrompt
	}
	if utf8.RuneCountInString(trimmed) > MaxPromptLength {
		return ErrPromptTooLong
	}
	return nil
}

// Interpreter maps prompts to game configs using a tuning table.
type Interpreter struct {
	table config.TuningTable
}

// New creates an interpreter backed by the given tuning table.
func New(table config.TuningTable) *Interpreter {
	return &Interpreter{table: table}
}

// Default creates an interpreter with the built-in tuning.
func Default() *Interpreter {
	return New(config.DefaultTuningTable())
}

// Analysis is the classifier's view of a prompt.
type Analysis struct {
	Tokens         []string
	ArchetypeHits  map[core.Archetype]int
	ThemeHits      map[core.Theme]int
	DifficultyHits map[core.Difficulty]int
	Archetype      core.Archetype
	Theme          core.Theme
	Difficulty     core.Difficulty
	Subject        string
}

// Analyze classifies a prompt without building a config.
func Analyze(text string) Analysis {
	tokens := Tokenize(text)
	a := Analysis{
		Tokens:         tokens,
		ArchetypeHits:  make(map[core.Archetype]int),
		ThemeHits:      make(map[core.Theme]int),
		DifficultyHits: make(map[core.Difficulty]int),
		Archetype:      core.DefaultArchetype,
		Theme:          core.ThemeClassic,
		Difficulty:     core.DifficultyMedium,
	}

	best := 0
	for _, e := range archetypeTable {
		n := countHits(tokens, e.keywords)
		a.ArchetypeHits[e.archetype] = n
		if n > best {
			best, a.Archetype = n, e.archetype
		}
	}

	best = 0
	for _, e := range themeTable {
		n := countHits(tokens, e.keywords)
		a.ThemeHits[e.theme] = n
		if n > best {
			best, a.Theme = n, e.theme
		}
	}

	best = 0
	for _, e := range difficultyTable {
		n := countHits(tokens, e.keywords)
		a.DifficultyHits[e.difficulty] = n
		if n > best {
			best, a.Difficulty = n, e.difficulty
		}
	}

	a.Subject = subject(tokens)
	return a
}

// Interpret builds the full config for a prompt. It is pure: equal text
// always gives an equal config.
func (in *Interpreter) Interpret(text string) core.GameConfig {
	a := Analyze(text)

	cfg := core.GameConfig{
		Title:      title(a),
		Prompt:     strings.TrimSpace(text),
		Type:       a.Archetype,
		Theme:      a.Theme,
		Difficulty: a.Difficulty,
		Tuning:     in.table.Derive(a.Archetype, a.Difficulty),
	}

	profile := in.table.Profile(a.Archetype)
	art := spritesFor(a.Theme, a.Archetype)

	cfg.Player = playerCaps(a.Archetype)
	cfg.Player.Sprite = art.player
	cfg.Player.Width = profile.Player.Width
	cfg.Player.Height = profile.Player.Height

	cfg.Obstacle = core.EntitySpec{
		Name:     art.obstacleName,
		Sprite:   art.obstacle,
		Good:     false,
		MinSpeed: profile.Obstacle.MinSpeed,
		MaxSpeed: profile.Obstacle.MaxSpeed,
		Width:    profile.Obstacle.Width,
		Height:   profile.Obstacle.Height,
	}
	cfg.Target = core.EntitySpec{
		Name:     art.targetName,
		Sprite:   art.target,
		Good:     true,
		MinSpeed: profile.Target.MinSpeed,
		MaxSpeed: profile.Target.MaxSpeed,
		Width:    profile.Target.Width,
		Height:   profile.Target.Height,
	}
	return cfg.Normalized()
}

// Tokenize lower-cases text and splits it into letter/digit words.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Keywords returns the archetype keywords in table order.
func Keywords(a core.Archetype) []string {
	for _, e := range archetypeTable {
		if e.archetype == a {
			return append([]string(nil), e.keywords...)
		}
	}
	return nil
}

// ThemeKeywords returns the keywords for a theme in table order.
func ThemeKeywords(t core.Theme) []string {
	for _, e := range themeTable {
		if e.theme == t {
			return append([]string(nil), e.keywords...)
		}
	}
	return nil
}

// Capabilities returns the movement flags an archetype gives the player.
func Capabilities(a core.Archetype) core.PlayerSpec {
	return playerCaps(a)
}

// countHits counts tokens matching any of the keywords. A token counts once.
func countHits(tokens, keywords []string) int {
	n := 0
	for _, tok := range tokens {
		if matchesAny(tok, keywords) {
			n++
		}
	}
	return n
}

func matchesAny(token string, keywords []string) bool {
	for _, kw := range keywords {
		if matches(token, kw) {
			return true
		}
	}
	return false
}

// matches reports whether token is kw or an inflection of it. A final e
// of kw may be shared ("raced") and its last letter doubled ("running"),
// so "card" and "start" do not match "car" and "star".
func matches(token, kw string) bool {
	if token == kw {
		return true
	}
	rest, ok := strings.CutPrefix(token, kw)
	if !ok || kw == "" {
		return false
	}
	last := kw[len(kw)-1:]
	switch {
	case last == "e":
		rest = "e" + rest
	case len(rest) > 1 && strings.HasPrefix(rest, last):
		if slices.Contains(inflections, rest[1:]) {
			return true
		}
	}
	return slices.Contains(inflections, rest)
}

func isKeyword(token string) bool {
	for _, e := range archetypeTable {
		if matchesAny(token, e.keywords) {
			return true
		}
	}
	for _, e := range themeTable {
		if matchesAny(token, e.keywords) {
			return true
		}
	}
	for _, e := range difficultyTable {
		if matchesAny(token, e.keywords) {
			return true
		}
	}
	return false
}

// subject picks the first descriptive word: longer than 3 runes, not a stop
// word, not a keyword.
func subject(tokens []string) string {
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) <= 3 || stopWords[tok] || isKeyword(tok) {
			continue
		}
		if !unicode.IsLetter([]rune(tok)[0]) {
			continue
		}
		return tok
	}
	return ""
}

func title(a Analysis) string {
	base := a.Theme.Title() + " " + a.Archetype.Title()
	if a.Subject == "" {
		return base
	}
	r, size := utf8.DecodeRuneInString(a.Subject)
	return base + ": " + string(unicode.ToUpper(r)) + a.Subject[size:]
}

func playerCaps(a core.Archetype) core.PlayerSpec {
	for _, e := range archetypeTable {
		if e.archetype == a {
			return e.player
		}
	}
	return core.PlayerSpec{Axes: core.AxesHorizontal}
}

// spritesFor combines the theme's art with the archetype's fixed shapes.
func spritesFor(t core.Theme, a core.Archetype) themeArt {
	art, ok := themeArtTable[t]
	if !ok {
		art = themeArtTable[core.ThemeClassic]
	}
	if glyphs, ok := structuralGlyphs[a]; ok {
		if glyphs[0] != "" {
			art.player.Glyph = glyphs[0]
		}
		if glyphs[1] != "" {
			art.obstacle.Glyph = glyphs[1]
		}
		if glyphs[2] != "" {
			art.target.Glyph = glyphs[2]
		}
	}
	if names, ok := structuralNames[a]; ok {
		if names[0] != "" {
			art.obstacleName = names[0]
		}
		if names[1] != "" {
			art.targetName = names[1]
		}
	}
	return art
}
