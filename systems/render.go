package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/skelly-dash/components"
	cfg "github.com/automoto/skelly-dash/config"
	"github.com/automoto/skelly-dash/core"
	"github.com/automoto/skelly-dash/perf"
	"github.com/automoto/skelly-dash/sprites"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	ghostBuf []core.Ghost
)

// DrawWorld renders the level tiles, the dash trail, and the player, in
// that order, all offset by the camera. The camera is whole pixels so the
// tile layer never shimmers.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	if c := getCollector(e); c != nil {
		c.StartPhase(perf.PhaseRender)
	}

	entry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	sim := components.Session.Get(entry).Sim
	atlas := sprites.Load()

	screen.Fill(cfg.BackgroundFor(sim.Level.Background))

	if sim.Tuning.FlatGround {
		drawFlatGround(screen, sim)
	} else {
		drawTiles(screen, atlas, sim)
	}
	drawTrail(screen, atlas, sim)
	drawPlayer(screen, atlas, sim)
}

// drawTiles draws the visible slice of the tile grid. Tiles outside the
// camera window are skipped entirely; TileAt answers 0 past the level
// edges so the loop does not need its own clamping.
func drawTiles(screen *ebiten.Image, atlas *sprites.Atlas, sim *core.Sim) {
	ts := sim.Tuning.TileSize
	camX, camY := sim.Camera.X, sim.Camera.Y

	col0 := camX / ts
	row0 := camY / ts
	col1 := (camX + sim.Tuning.ScreenWidth) / ts
	row1 := (camY + sim.Tuning.ScreenHeight) / ts

	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			id := sim.Level.TileAt(col, row)
			if id == 0 {
				continue
			}
			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			drawOp.GeoM.Translate(float64(col*ts-camX), float64(row*ts-camY))
			screen.DrawImage(atlas.Tile(id), drawOp)
		}
	}
}

// drawFlatGround draws the single-plane world variant: one ground strip
// from the plane to the bottom of the screen.
func drawFlatGround(screen *ebiten.Image, sim *core.Sim) {
	t := &sim.Tuning
	vector.DrawFilledRect(
		screen,
		0, float32(t.FlatGroundY-sim.Camera.Y),
		float32(t.ScreenWidth), float32(t.ScreenHeight-t.FlatGroundY+sim.Camera.Y),
		cfg.GrassGreen,
		false,
	)
}

// drawTrail draws the dash afterimages, oldest first so newer ghosts layer
// over older ones and the player layers over all of them. Each ghost is
// the white silhouette tinted by its age's fade ramp step.
func drawTrail(screen *ebiten.Image, atlas *sprites.Atlas, sim *core.Sim) {
	ghostBuf = sim.Actor.Trail.Ghosts(ghostBuf[:0], sim.Actor.Dashing())

	hw := float64(atlas.Silhouette.Bounds().Dx()) / 2
	hh := float64(atlas.Silhouette.Bounds().Dy()) / 2
	for i := len(ghostBuf) - 1; i >= 0; i-- {
		g := ghostBuf[i]
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-hw, -hh)
		if !g.FacingRight {
			drawOp.GeoM.Scale(-1, 1)
		}
		drawOp.GeoM.Translate(
			float64(g.X.Pixels()-sim.Camera.X),
			float64(g.Y.Pixels()-sim.Camera.Y),
		)
		drawOp.ColorScale.ScaleWithColor(atlas.Ramp[g.Age])
		screen.DrawImage(atlas.Silhouette, drawOp)
	}
}

// drawPlayer draws the skelly sprite centered on the actor's collision
// box, flipped when facing left.
func drawPlayer(screen *ebiten.Image, atlas *sprites.Atlas, sim *core.Sim) {
	hw := float64(atlas.Player.Bounds().Dx()) / 2
	hh := float64(atlas.Player.Bounds().Dy()) / 2

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-hw, -hh)
	if !sim.Actor.FacingRight {
		drawOp.GeoM.Scale(-1, 1)
	}
	drawOp.GeoM.Translate(
		float64(sim.Actor.X.Pixels()-sim.Camera.X),
		float64(sim.Actor.Y.Pixels()-sim.Camera.Y),
	)
	screen.DrawImage(atlas.Player, drawOp)
}
