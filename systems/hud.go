package systems

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"

	"github.com/automoto/skelly-dash/components"
	cfg "github.com/automoto/skelly-dash/config"
	"github.com/automoto/skelly-dash/perf"
)

const (
	hudMargin     = 4
	hudLineHeight = 12
	hudBarWidth   = 60
	hudBarHeight  = 4
)

// frameBudget is the 60fps frame budget the HUD bar is scaled against.
const frameBudget = time.Second / 60

// DrawHUD renders the session banners and, when toggled on, the frame
// profiler readout with the worst times of the last latched window.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(entry)
	settings := getOrCreateSettings(e)

	drawBanners(screen, session)
	if !settings.ShowHUD {
		return
	}

	sim := session.Sim
	a := &sim.Actor

	y := hudMargin + basicfont.Face7x13.Ascent
	hudLine(screen, hudMargin, y, fmt.Sprintf("FPS %0.0f TPS %0.0f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	y += hudLineHeight

	flags := ""
	if a.OnGround {
		flags += " GND"
	}
	if a.Dashing() {
		flags += " DASH"
	}
	if a.CoyoteTimer > 0 {
		flags += " COYOTE"
	}
	hudLine(screen, hudMargin, y, fmt.Sprintf("F%d P %d,%d V %d,%d%s",
		sim.Frame, a.X.Pixels(), a.Y.Pixels(), a.VX, a.VY, flags))
	y += hudLineHeight

	c := getCollector(e)
	if c == nil {
		return
	}
	w := c.Window()
	for _, phase := range []string{perf.PhaseInput, perf.PhaseSim, perf.PhaseRender, perf.PhaseDebug} {
		hudLine(screen, hudMargin, y, fmt.Sprintf("%-6s %5.2fms", phase, millis(w.Phases[phase])))
		y += hudLineHeight
	}
	hudLine(screen, hudMargin, y, fmt.Sprintf("%-6s %5.2fms", "total", millis(w.Total)))
	y += hudLineHeight

	// Frame budget bar: worst window frame against the 60fps budget
	ratio := float32(float64(w.Total) / float64(frameBudget))
	barColor := color.RGBA{40, 220, 40, 255}
	if ratio > 1 {
		ratio = 1
		barColor = color.RGBA{220, 40, 40, 255}
	}
	barY := float32(y - basicfont.Face7x13.Ascent)
	vector.DrawFilledRect(screen,
		hudMargin, barY,
		hudBarWidth, hudBarHeight,
		color.RGBA{40, 40, 40, 255}, false)
	vector.DrawFilledRect(screen,
		hudMargin, barY,
		hudBarWidth*ratio, hudBarHeight,
		barColor, false)
}

// drawBanners shows the paused and replay-over states with their key
// hints, centered like the menu labels.
func drawBanners(screen *ebiten.Image, session *components.SessionData) {
	if session.Recorder != nil {
		w := screen.Bounds().Dx()
		vector.DrawFilledCircle(screen, float32(w-31), 8, 3, color.RGBA{220, 40, 40, 255}, false)
		hudLine(screen, w-25, 12, "REC")
	}

	switch {
	case session.PlaybackOver:
		hudCenteredLine(screen, 40, "REPLAY OVER", cfg.TitleYellow)
		hudCenteredLine(screen, 54, "R rewind  Q quit", cfg.White)
	case session.Paused:
		hudCenteredLine(screen, 40, "PAUSED", cfg.TitleYellow)
		hudCenteredLine(screen, 54, "N step  R reset  Q quit", cfg.White)
	}
}

func hudLine(screen *ebiten.Image, x, y int, s string) {
	text.Draw(screen, s, basicfont.Face7x13, x, y, cfg.White)
}

func hudCenteredLine(screen *ebiten.Image, y int, s string, clr color.Color) {
	// Face7x13 advances 7px per glyph
	w := screen.Bounds().Dx()
	x := (w - len(s)*7) / 2
	text.Draw(screen, s, basicfont.Face7x13, x, y, clr)
}

// millis converts a duration to fractional milliseconds for display.
func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
