package core

// Theme is a cosmetic skin. It changes glyphs and colors, never rules.
type Theme string

const (
	ThemeClassic Theme = "classic"
	ThemeSpace   Theme = "space"
	ThemeOcean   Theme = "ocean"
	ThemeForest  Theme = "forest"
	ThemeCyber   Theme = "cyber"
	ThemePirate  Theme = "pirate"
	ThemeCandy   Theme = "candy"
	ThemeDesert  Theme = "desert"
	ThemeWinter  Theme = "winter"
)

// AllThemes lists the keyword-selectable themes in table order.
// ThemeClassic is the fallback and is not listed.
func AllThemes() []Theme {
	return []Theme{
		ThemeSpace,
		ThemeOcean,
		ThemeForest,
		ThemeCyber,
		ThemePirate,
		ThemeCandy,
		ThemeDesert,
		ThemeWinter,
	}
}

// Valid reports whether t is a known theme, including classic.
func (t Theme) Valid() bool {
	_, ok := palettes[t]
	return ok
}

// Title returns the capitalized display name.
func (t Theme) Title() string {
	return titleCase(string(t))
}

// Palette is the background and HUD styling for a theme.
type Palette struct {
	Background      rune  // sparse background glyph, ' ' for none
	BackgroundColor Color // color of background glyphs
	Ground          rune  // ground line glyph for gravity archetypes
	GroundColor     Color
	Accent          Color // HUD and wall color
	Density         int   // one background glyph per Density cells, 0 for none
}

var palettes = map[Theme]Palette{
	ThemeClassic: {Background: ' ', Ground: '═', GroundColor: ColorWhite, Accent: ColorBrightWhite},
	ThemeSpace:   {Background: '·', BackgroundColor: ColorGray, Ground: '▔', GroundColor: ColorGray, Accent: ColorBrightCyan, Density: 37},
	ThemeOcean:   {Background: '~', BackgroundColor: ColorBlue, Ground: '≈', GroundColor: ColorBrightBlue, Accent: ColorCyan, Density: 23},
	ThemeForest:  {Background: '"', BackgroundColor: ColorGreen, Ground: '▓', GroundColor: ColorBrown, Accent: ColorBrightGreen, Density: 41},
	ThemeCyber:   {Background: '░', BackgroundColor: ColorMagenta, Ground: '━', GroundColor: ColorBrightMagenta, Accent: ColorBrightMagenta, Density: 29},
	ThemePirate:  {Background: '~', BackgroundColor: ColorCyan, Ground: '▒', GroundColor: ColorBrown, Accent: ColorYellow, Density: 31},
	ThemeCandy:   {Background: '°', BackgroundColor: ColorPink, Ground: '▀', GroundColor: ColorBrightMagenta, Accent: ColorPink, Density: 33},
	ThemeDesert:  {Background: '.', BackgroundColor: ColorYellow, Ground: '▁', GroundColor: ColorOrange, Accent: ColorOrange, Density: 43},
	ThemeWinter:  {Background: '*', BackgroundColor: ColorBrightWhite, Ground: '▄', GroundColor: ColorWhite, Accent: ColorBrightBlue, Density: 27},
}

// PaletteFor returns the palette for a theme, falling back to classic.
func PaletteFor(t Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[ThemeClassic]
}
