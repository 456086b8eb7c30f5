package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/skelly-dash/components"
	cfg "github.com/automoto/skelly-dash/config"
	"github.com/automoto/skelly-dash/perf"
)

// DrawDebug draws the collision overlay: solid tiles in view, the actor's
// collision box, the grounding line under its feet, and the camera dead
// zone. Toggled with the overlay action.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if c := getCollector(e); c != nil {
		c.StartPhase(perf.PhaseDebug)
	}

	settings := getOrCreateSettings(e)
	if !settings.ShowOverlay {
		return
	}
	entry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	sim := components.Session.Get(entry).Sim
	t := &sim.Tuning
	camX, camY := sim.Camera.X, sim.Camera.Y

	// Shade every solid tile in view
	ts := t.TileSize
	col0, row0 := camX/ts, camY/ts
	col1, row1 := (camX+t.ScreenWidth)/ts, (camY+t.ScreenHeight)/ts
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			if !sim.Level.SolidAt(col, row) {
				continue
			}
			vector.DrawFilledRect(
				screen,
				float32(col*ts-camX), float32(row*ts-camY),
				float32(ts), float32(ts),
				cfg.DebugSolid,
				false,
			)
		}
	}

	// Actor collision box outline
	a := &sim.Actor
	x := float32(a.X.Pixels() - t.Radius - camX)
	y := float32(a.Y.Pixels() - t.Radius - camY)
	side := float32(2 * t.Radius)
	c := cfg.DebugActorBox
	vector.FillRect(screen, x, y, side, 1, c, false)        // Top
	vector.FillRect(screen, x, y+side-1, side, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, side, c, false)        // Left
	vector.FillRect(screen, x+side-1, y, 1, side, c, false) // Right

	// Grounding line: the pixel row the feet probe tests
	feetY := float32(a.Y.Pixels() + t.Radius - camY)
	vector.FillRect(screen, x, feetY, side, 1, cfg.DebugProbe, false)

	// Camera dead zone (screen space, middle third on both axes)
	dzX := float32(t.ScreenWidth / 3)
	dzY := float32(t.ScreenHeight / 3)
	dzW := float32(2*t.ScreenWidth/3 - t.ScreenWidth/3)
	dzH := float32(2*t.ScreenHeight/3 - t.ScreenHeight/3)
	vector.DrawFilledRect(screen, dzX, dzY, dzW, dzH, cfg.DebugDeadZone, false)
}
