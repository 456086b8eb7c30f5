package core

// Camera is the dead-zone follower. Whole pixels only; sub-pixel scroll
// would shimmer the tile layer.
type Camera struct {
	X, Y int
}

// Follow keeps the actor inside the middle third of the screen on both
// axes, shifting by exactly the excess (no easing), then clamps the view
// to the level. Pure in everything but the camera's own position.
func (c *Camera) Follow(actorX, actorY Fixed, lv *Level, t *Tuning) {
	sx := actorX.Pixels() - c.X
	sy := actorY.Pixels() - c.Y

	deadLeft := t.ScreenWidth / 3
	deadRight := 2 * t.ScreenWidth / 3
	if sx < deadLeft {
		c.X += sx - deadLeft
	} else if sx > deadRight {
		c.X += sx - deadRight
	}

	deadTop := t.ScreenHeight / 3
	deadBottom := 2 * t.ScreenHeight / 3
	if sy < deadTop {
		c.Y += sy - deadTop
	} else if sy > deadBottom {
		c.Y += sy - deadBottom
	}

	c.clamp(lv, t)
}

// Center jumps the view to put the actor mid-screen, clamped to the level.
// Used at spawn so wide levels don't open with a long catch-up scroll.
func (c *Camera) Center(actorX, actorY Fixed, lv *Level, t *Tuning) {
	c.X = actorX.Pixels() - t.ScreenWidth/2
	c.Y = actorY.Pixels() - t.ScreenHeight/2
	c.clamp(lv, t)
}

func (c *Camera) clamp(lv *Level, t *Tuning) {
	maxX := lv.Width*t.TileSize - t.ScreenWidth
	maxY := lv.Height*t.TileSize - t.ScreenHeight
	// Levels smaller than the screen pin to the top left corner.
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	if c.X < 0 {
		c.X = 0
	}
	if c.X > maxX {
		c.X = maxX
	}
	if c.Y < 0 {
		c.Y = 0
	}
	if c.Y > maxY {
		c.Y = maxY
	}
}
