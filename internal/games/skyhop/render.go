package skyhop

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/jumper"
)

// Visual characters for rendering
const (
	PlayerChar   = '@'
	ParticleChar = '·'
	BorderHoriz  = '─'
)

var platformGlyphs = [...]rune{
	jumper.PlatformNormal:    '=',
	jumper.PlatformMoving:    '~',
	jumper.PlatformBreakable: '-',
	jumper.PlatformSpring:    '^',
}

var platformColors = [...]core.Color{
	jumper.PlatformNormal:    core.ColorGreen,
	jumper.PlatformMoving:    core.ColorCyan,
	jumper.PlatformBreakable: core.ColorOrange,
	jumper.PlatformSpring:    core.ColorBrightMagenta,
}

var itemGlyphs = [...]rune{
	jumper.ItemThrust: 'T',
	jumper.ItemBoost:  'B',
	jumper.ItemShield: 'S',
	jumper.ItemMagnet: 'M',
	jumper.ItemSlowmo: 'Z',
	jumper.ItemCoin:   '$',
}

var powerUpLabels = [...]string{
	jumper.PowerThrust: "THRUST",
	jumper.PowerShield: "SHIELD",
	jumper.PowerMagnet: "MAGNET",
	jumper.PowerSlowmo: "SLOWMO",
}

// Render draws the current snapshot to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}
	if g.engine == nil {
		return
	}

	g.engine.FillSnapshot(&g.snap)
	s := &g.snap

	for _, p := range s.Particles {
		g.plot(dst, p.X, p.Y, ParticleChar, core.ColorGray)
	}
	for _, p := range s.Platforms {
		g.fill(dst, p.Rect(), platformGlyphs[p.Kind], platformColors[p.Kind])
	}
	for _, it := range s.Items {
		color := core.ColorBrightCyan
		if it.Kind == jumper.ItemCoin {
			color = core.ColorBrightYellow
		}
		g.plot(dst, it.X, it.Y, itemGlyphs[it.Kind], color)
	}
	for _, en := range s.Enemies {
		glyph := 'W'
		if en.Kind == jumper.EnemyFlyer {
			glyph = 'V'
		}
		g.fill(dst, en.Rect(), glyph, core.ColorRed)
	}
	g.renderPlayer(dst, s)

	g.renderHUD(dst, s)
	g.renderOverlay(dst, s)
}

func (g *Game) renderPlayer(dst *core.Screen, s *jumper.Snapshot) {
	color := core.ColorBrightWhite
	switch {
	case s.PowerUps[jumper.PowerShield].Active:
		color = core.ColorBrightBlue
	case s.PowerUps[jumper.PowerThrust].Active:
		color = core.ColorBrightYellow
	}
	g.fill(dst, s.Player.Rect(), PlayerChar, color)
}

// renderHUD draws score, difficulty and active power-ups on the top row.
func (g *Game) renderHUD(dst *core.Screen, s *jumper.Snapshot) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", s.Score))

	level := fmt.Sprintf("Lvl %d%%", int(math.Round(s.Difficulty*100)))
	if g.fixed {
		level = fmt.Sprintf("Fixed %d%%", int(math.Round(s.Difficulty*100)))
	}
	dst.DrawText(dst.Width()-len(level)-1, 0, level)

	if effects := effectsString(s); effects != "" {
		dst.DrawTextColored(14, 0, effects, core.ColorYellow)
	}
}

// effectsString creates a compact effects display.
func effectsString(s *jumper.Snapshot) string {
	var parts []string
	for k, eff := range s.PowerUps {
		if !eff.Active {
			continue
		}
		if eff.Timed {
			parts = append(parts, fmt.Sprintf("%s(%d)", powerUpLabels[k], eff.Remaining/60+1))
		} else {
			parts = append(parts, powerUpLabels[k])
		}
	}
	return strings.Join(parts, " ")
}

// renderOverlay draws state messages.
func (g *Game) renderOverlay(dst *core.Screen, s *jumper.Snapshot) {
	switch {
	case s.State == jumper.StateStart:
		g.drawCenteredBox(dst, g.Title(), "Press SPACE to start")
	case s.State == jumper.StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  SPACE or R to restart", s.Score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}

// plot draws a single world-space point. Points outside the viewport are
// clipped by the screen.
func (g *Game) plot(dst *core.Screen, x, y float64, r rune, c core.Color) {
	dst.SetColored(cell(x), cell(y)+hudRows, r, c)
}

// fill draws every cell a world-space rectangle covers.
func (g *Game) fill(dst *core.Screen, r core.RectF, glyph rune, c core.Color) {
	x0, y0 := cell(r.X), cell(r.Y)
	x1, y1 := cell(r.Right()-1e-9), cell(r.Bottom()-1e-9)
	for y := y0; y <= y1; y++ {
		if y < 0 {
			continue
		}
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, y+hudRows, glyph, c)
		}
	}
}

func cell(v float64) int {
	return int(math.Floor(v))
}
