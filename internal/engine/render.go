package engine

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/prompt-arcade/internal/core"
)

const maxHearts = 10

// Render draws the session into dst: background, entities, player, HUD and
// the overlay for the current phase. It never changes game state.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	s.drawBackground(dst)

	if s.rules.ground || s.rules.edgesHurt {
		dst.DrawHLine(0, int(s.groundY), dst.Width(), s.pal.Ground, s.pal.GroundColor)
	}

	for i := range s.entities {
		drawEntity(dst, &s.entities[i])
	}
	if s.cpu != nil {
		drawEntity(dst, s.cpu)
	}
	if s.ball != nil {
		drawEntity(dst, s.ball)
	}

	// blink while invulnerable
	if p := &s.player; p.invulnerable == 0 || (p.invulnerable/6)%2 == 0 {
		dst.DrawRect(p.bounds().Cell(), p.sprite.Rune(), p.sprite.Color)
	}

	s.drawHUD(dst)

	switch s.phase {
	case PhaseIdle:
		drawMessage(dst, s.cfg.Title, "SPACE to start", s.controlsHint())
	case PhasePaused:
		drawMessage(dst, "PAUSED", "P to resume", "N for a new prompt")
	case PhaseGameOver:
		title := "GAME OVER"
		if s.won {
			title = "YOU WIN!"
		}
		drawMessage(dst, title, fmt.Sprintf("Score: %d", s.score), "R to restart  |  N for a new prompt")
	}
}

func drawEntity(dst *core.Screen, e *Entity) {
	dst.DrawRect(e.Bounds().Cell(), e.Sprite.Rune(), e.Sprite.Color)
}

// drawBackground scatters the theme's background glyph at fixed positions.
func (s *Session) drawBackground(dst *core.Screen) {
	if s.pal.Density <= 0 || s.pal.Background == ' ' {
		return
	}
	for y := int(s.top); y < int(s.groundY); y++ {
		for x := range dst.Width() {
			if (x*31+y*57+x*y)%s.pal.Density == 0 {
				dst.SetColored(x, y, s.pal.Background, s.pal.BackgroundColor)
			}
		}
	}
}

func (s *Session) drawHUD(dst *core.Screen) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawTextColored(1, 0, s.cfg.Title, s.pal.Accent)

	right := fmt.Sprintf("Score: %d  %s  %s ", s.score, hearts(s.lives), s.cfg.Difficulty)
	x := dst.Width() - utf8.RuneCountInString(right)
	dst.DrawTextColored(x, 0, right, core.ColorBrightWhite)
}

func hearts(lives int) string {
	if lives > maxHearts {
		return fmt.Sprintf("♥x%d", lives)
	}
	return strings.Repeat("♥", max(lives, 0))
}

func (s *Session) controlsHint() string {
	var parts []string
	switch axes := s.cfg.Player.Axes; {
	case axes.Horizontal() && axes.Vertical():
		parts = append(parts, "arrows move")
	case axes.Horizontal():
		parts = append(parts, "←/→ move")
	case axes.Vertical():
		parts = append(parts, "↑/↓ move")
	}
	switch {
	case s.rules.ball:
		parts = append(parts, "SPACE serve")
	case s.cfg.Player.CanShoot:
		parts = append(parts, "SPACE shoot")
	case s.rules.flap:
		parts = append(parts, "SPACE flap")
	case s.cfg.Player.CanJump:
		parts = append(parts, "SPACE jump")
	}
	parts = append(parts, "P pause", "Q quit")
	return strings.Join(parts, "  ")
}

// drawMessage draws a centered box with a title and up to two lines.
func drawMessage(dst *core.Screen, title string, lines ...string) {
	boxW := utf8.RuneCountInString(title)
	for _, l := range lines {
		boxW = max(boxW, utf8.RuneCountInString(l))
	}
	boxW = min(boxW+4, dst.Width())
	boxH := 3 + len(lines)
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	centered := func(y int, text string, c core.Color) {
		x := boxX + (boxW-utf8.RuneCountInString(text))/2
		dst.DrawTextColored(x, y, text, c)
	}
	centered(boxY+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		centered(boxY+2+i, l, core.ColorWhite)
	}
}
