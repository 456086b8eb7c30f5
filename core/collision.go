package core

// Contact describes how a sweep resolved. Exposed on the actor after each
// step for the debug overlay and tests.
type Contact uint8

const (
	ContactNone  Contact = iota
	ContactClamp         // world-bounds or ceiling clamp
	ContactSnap          // snapped to a tile edge, velocity zeroed
	ContactPop           // dash ledge pop: lifted over a low ledge, speed kept
	ContactNudge         // corner correction: shifted sideways, speed kept
)

func (c Contact) String() string {
	switch c {
	case ContactClamp:
		return "clamp"
	case ContactSnap:
		return "snap"
	case ContactPop:
		return "pop"
	case ContactNudge:
		return "nudge"
	}
	return "none"
}

type horizontalResult struct {
	X, Y    Fixed
	VX      Fixed
	Contact Contact
}

type verticalResult struct {
	X, Y     Fixed
	VY       Fixed
	Grounded bool
	DashCut  bool
	Contact  Contact
}

// positionClear reports whether the actor's box centered on the given pixel
// position overlaps no solid tile. Used by the ledge-pop and corner-
// correction probes.
func positionClear(lv *Level, t *Tuning, px, py int) bool {
	ts := t.TileSize
	minTX := (px - t.Radius) / ts
	maxTX := (px + t.Radius) / ts
	minTY := (py - t.Radius) / ts
	maxTY := (py + t.Radius) / ts

	left := px - t.Radius
	right := px + t.Radius
	top := py - t.Radius
	bottom := py + t.Radius

	for ty := minTY; ty <= maxTY; ty++ {
		for tx := minTX; tx <= maxTX; tx++ {
			if !lv.SolidAt(tx, ty) {
				continue
			}
			tileL := tx * ts
			tileR := (tx + 1) * ts
			tileT := ty * ts
			tileB := (ty + 1) * ts
			if right > tileL && left < tileR && bottom > tileT && top < tileB {
				return false
			}
		}
	}
	return true
}

// sweepHorizontal advances x by vx and resolves against the world. Pure:
// the caller applies the result. The vertical position is the pre-sweep one;
// axis order is horizontal first and the resolver depends on that.
func sweepHorizontal(lv *Level, t *Tuning, x, y, vx Fixed, dashing bool) horizontalResult {
	x += vx
	res := horizontalResult{X: x, Y: y, VX: vx}
	px := x.Pixels()

	if t.FlatGround {
		// Single-plane world: the screen edge is the wall.
		if px < t.Radius {
			res.X = FromPixels(t.Radius)
			res.VX = 0
			res.Contact = ContactClamp
		} else if px > t.ScreenWidth-t.Radius {
			res.X = FromPixels(t.ScreenWidth - t.Radius)
			res.VX = 0
			res.Contact = ContactClamp
		}
		return res
	}

	levelW := lv.Width * t.TileSize
	if px < t.Radius {
		res.X = FromPixels(t.Radius)
		res.VX = 0
		res.Contact = ContactClamp
		return res
	}
	if px > levelW-t.Radius {
		res.X = FromPixels(levelW - t.Radius)
		res.VX = 0
		res.Contact = ContactClamp
		return res
	}

	ts := t.TileSize
	py := y.Pixels()
	minTX := (px - t.Radius) / ts
	maxTX := (px + t.Radius) / ts
	minTY := (py - t.Radius) / ts
	maxTY := (py + t.Radius) / ts

	left := px - t.Radius
	right := px + t.Radius
	top := py - t.Radius
	bottom := py + t.Radius

	// Row-major scan, first hit wins. Ties between candidate tiles are
	// resolved by scan order; callers must not rely on which tile "won".
	for ty := minTY; ty <= maxTY; ty++ {
		for tx := minTX; tx <= maxTX; tx++ {
			if !lv.SolidAt(tx, ty) {
				continue
			}
			tileL := tx * ts
			tileR := (tx + 1) * ts
			tileT := ty * ts
			tileB := (ty + 1) * ts
			if !(right > tileL && left < tileR && bottom > tileT && top < tileB) {
				continue
			}

			var snapped Fixed
			if vx > 0 {
				snapped = FromPixels(tileL - t.Radius)
			} else {
				snapped = FromPixels(tileR + t.Radius)
			}

			// Dash ledge pop: a dashing actor clears a low ledge by
			// lifting exactly the overlap, provided the spot above the
			// snap point is free. Overlaps past the cap stop normally.
			if dashing {
				popPx := bottom - tileT
				pop := FromPixels(popPx)
				if popPx > 0 && pop <= t.LedgePopMax {
					newY := y - pop
					if positionClear(lv, t, snapped.Pixels(), newY.Pixels()) {
						res.X = snapped
						res.Y = newY
						res.Contact = ContactPop
						return res
					}
				}
			}

			res.X = snapped
			res.VX = 0
			res.Contact = ContactSnap
			return res
		}
	}
	return res
}

// sweepVertical advances y by vy and resolves against the world, computing
// the grounded flag from scratch. Downward hits land (and cut any dash);
// upward hits try corner correction before bonking.
func sweepVertical(lv *Level, t *Tuning, x, y, vy Fixed, dashing bool) verticalResult {
	y += vy
	res := verticalResult{X: x, Y: y, VY: vy}
	px := x.Pixels()
	py := y.Pixels()

	if t.FlatGround {
		if py-t.Radius < 0 {
			res.Y = FromPixels(t.Radius)
			res.VY = 0
			res.Contact = ContactClamp
		}
		if py+t.Radius >= t.FlatGroundY {
			res.Y = FromPixels(t.FlatGroundY - t.Radius)
			res.VY = 0
			res.Grounded = true
			res.Contact = ContactSnap
			if dashing {
				res.DashCut = true
			}
		}
		return res
	}

	ts := t.TileSize
	if py-t.Radius < 0 {
		// World ceiling.
		res.Y = FromPixels(t.Radius)
		res.VY = 0
		res.Contact = ContactClamp
	} else {
		minTX := (px - t.Radius) / ts
		maxTX := (px + t.Radius) / ts
		minTY := (py - t.Radius) / ts
		maxTY := (py + t.Radius) / ts

		left := px - t.Radius
		right := px + t.Radius
		top := py - t.Radius
		bottom := py + t.Radius

		for ty := minTY; ty <= maxTY; ty++ {
			for tx := minTX; tx <= maxTX; tx++ {
				if !lv.SolidAt(tx, ty) {
					continue
				}
				tileL := tx * ts
				tileR := (tx + 1) * ts
				tileT := ty * ts
				tileB := (ty + 1) * ts
				if !(right > tileL && left < tileR && bottom > tileT && top < tileB) {
					continue
				}

				if vy > 0 {
					// Landing.
					res.Y = FromPixels(tileT - t.Radius)
					res.VY = 0
					res.Grounded = true
					res.Contact = ContactSnap
					if dashing {
						res.DashCut = true
					}
					return res
				}

				// Rising: probe sideways nudges before bonking. If
				// exactly one side clears at this y, the hit was a
				// clipped corner; shift over and keep climbing.
				for nudge := One; nudge <= t.BonkNudgeRange; nudge += One {
					clearR := positionClear(lv, t, (x + nudge).Pixels(), py)
					clearL := positionClear(lv, t, (x - nudge).Pixels(), py)
					if clearR == clearL {
						continue
					}
					if clearR {
						res.X = x + nudge
					} else {
						res.X = x - nudge
					}
					res.Contact = ContactNudge
					return res
				}

				res.Y = FromPixels(tileB + t.Radius)
				res.VY = 0
				res.Contact = ContactSnap
				return res
			}
		}
	}

	// Feet probe: the sweep only grounds on a moving hit, so a resting
	// actor (vy already zero, bottom exactly on a tile top) would flicker
	// airborne without this. Exact contact is the one threshold used.
	if !res.Grounded && res.VY >= 0 {
		px = res.X.Pixels()
		py = res.Y.Pixels()
		bottom := py + t.Radius
		left := px - t.Radius
		right := px + t.Radius
		feetTY := (bottom + 1) / ts
		rowTop := feetTY * ts
		if bottom == rowTop {
			minTX := left / ts
			maxTX := right / ts
			for tx := minTX; tx <= maxTX; tx++ {
				if !lv.SolidAt(tx, feetTY) {
					continue
				}
				tileL := tx * ts
				tileR := (tx + 1) * ts
				if right > tileL && left < tileR {
					res.Grounded = true
					break
				}
			}
		}
	}
	return res
}
