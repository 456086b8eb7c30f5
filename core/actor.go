package core

// Actor is the player: Q8.8 pose and velocity plus the timers that drive
// the dash, coyote-time, and trail mechanics. All fields are plain data;
// Step is the only mutator and runs exactly once per frame.
type Actor struct {
	X, Y   Fixed
	VX, VY Fixed

	OnGround    bool
	FacingRight bool

	CoyoteTimer  int
	DashLeft     int // frames of dash remaining
	DashCooldown int
	JumpBuffer   int

	// Last step's sweep resolutions, for the debug overlay and tests.
	ContactH Contact
	ContactV Contact

	Trail Trail

	prevIn Buttons
}

// Dashing reports whether a dash is in progress.
func (a *Actor) Dashing() bool {
	return a.DashLeft > 0
}

// Spawn (re)initializes the actor at the level's spawn point: zero
// velocity, airborne, facing right, trail fully faded. Respawning is this
// same call; the actor is never destroyed mid-session.
func (a *Actor) Spawn(lv *Level) {
	*a = Actor{
		X:           FromPixels(lv.SpawnX),
		Y:           FromPixels(lv.SpawnY),
		FacingRight: true,
	}
	a.Trail.reset(true)
}

// Step advances the actor one frame. The phase order is load-bearing:
// cooldown, dash trigger, dash countdown, trail fade, horizontal control,
// jump, gravity, horizontal sweep, vertical sweep, coyote update, trail
// sample, input history. Collision runs horizontal-then-vertical with the
// horizontal pass seeing the pre-step vertical position.
func (a *Actor) Step(in Buttons, lv *Level, t *Tuning) {
	pressed := in.justPressed(a.prevIn)
	released := a.prevIn.justPressed(in)

	if a.DashCooldown > 0 {
		a.DashCooldown--
	}
	if a.JumpBuffer > 0 {
		a.JumpBuffer--
	}

	// Dash trigger: edge only, gated by cooldown. Direction comes from the
	// held d-pad (8-way), falling back to facing.
	if pressed.Has(ButtonDash) && a.DashCooldown == 0 && a.DashLeft == 0 {
		a.DashLeft = t.DashFrames
		a.DashCooldown = t.DashCooldownFrames
		a.Trail.startDash()

		dx, dy := 0, 0
		if in.Has(ButtonLeft) {
			dx = -1
		}
		if in.Has(ButtonRight) {
			dx = 1
		}
		if in.Has(ButtonUp) {
			dy = -1
		}
		if in.Has(ButtonDown) {
			dy = 1
		}
		if dx == 0 && dy == 0 {
			if a.FacingRight {
				dx = 1
			} else {
				dx = -1
			}
		}

		if dx != 0 && dy != 0 {
			// Diagonal: scale by 181/256 ~ 1/sqrt(2). The integer
			// approximation is part of the movement contract.
			a.VX = Fixed(dx) * t.DashSpeed * 181 >> FixedShift
			a.VY = Fixed(dy) * t.DashSpeed * 181 >> FixedShift
		} else {
			a.VX = Fixed(dx) * t.DashSpeed
			a.VY = Fixed(dy) * t.DashSpeed
		}
	}

	// Dash countdown. On expiry the trail switches to fade-out.
	if a.DashLeft > 0 {
		a.DashLeft--
		if a.DashLeft == 0 {
			a.Trail.endDash()
		}
	}

	a.Trail.tickFade(a.Dashing())

	// Horizontal control, suppressed for the whole dash.
	if a.DashLeft == 0 {
		switch {
		case in.Has(ButtonLeft):
			a.VX -= t.Acceleration
			if a.VX < -t.MaxSpeed {
				a.VX = -t.MaxSpeed
			}
			a.FacingRight = false
		case in.Has(ButtonRight):
			a.VX += t.Acceleration
			if a.VX > t.MaxSpeed {
				a.VX = t.MaxSpeed
			}
			a.FacingRight = true
		default:
			friction := t.AirFriction
			if a.OnGround {
				friction = t.GroundFriction
			}
			if a.VX > 0 {
				a.VX -= friction
				if a.VX < 0 {
					a.VX = 0
				}
			} else if a.VX < 0 {
				a.VX += friction
				if a.VX > 0 {
					a.VX = 0
				}
			}
		}
	}

	// Jump: edge-triggered, allowed while grounded or inside the coyote
	// window. A buffered press (optional) fires on the landing frame.
	// Gravity below keys off the grounded state as of this point, so the
	// launch frame leaves vy at exactly -JumpImpulse.
	wasGrounded := a.OnGround
	jumpPressed := pressed.Has(ButtonJump)
	if t.JumpBufferFrames > 0 && jumpPressed {
		a.JumpBuffer = t.JumpBufferFrames
	}
	wantJump := jumpPressed || a.JumpBuffer > 0
	if wantJump && (a.OnGround || a.CoyoteTimer > 0) {
		a.VY = -t.JumpImpulse
		a.OnGround = false
		a.CoyoteTimer = 0
		a.JumpBuffer = 0
	}

	// Variable jump height (optional): releasing jump mid-rise cuts the
	// climb short.
	if t.JumpReleaseDivisor > 0 && released.Has(ButtonJump) && a.VY < 0 {
		a.VY /= Fixed(t.JumpReleaseDivisor)
	}

	// Gravity, suspended while grounded or dashing (the dash owns its
	// trajectory for its whole duration).
	if !wasGrounded && a.DashLeft == 0 {
		g := t.Gravity
		if t.ApexGravityDivisor > 0 && a.VY.Abs() < t.ApexThreshold {
			g = t.Gravity / Fixed(t.ApexGravityDivisor)
		}
		a.VY += g
		if t.MaxFallSpeed > 0 && a.VY > t.MaxFallSpeed {
			a.VY = t.MaxFallSpeed
		}
	}

	// Swept collision, one axis at a time.
	h := sweepHorizontal(lv, t, a.X, a.Y, a.VX, a.Dashing())
	a.X, a.Y, a.VX = h.X, h.Y, h.VX
	a.ContactH = h.Contact

	v := sweepVertical(lv, t, a.X, a.Y, a.VY, a.Dashing())
	a.X, a.Y, a.VY = v.X, v.Y, v.VY
	a.OnGround = v.Grounded
	a.ContactV = v.Contact
	if v.DashCut {
		// Landing cuts the dash without the countdown's trail handoff;
		// the fade timer is still zero from startDash, so the fade-out
		// simply begins next frame.
		a.DashLeft = 0
	}

	// Coyote window refills on the ground, burns down in the air.
	if a.OnGround {
		a.CoyoteTimer = t.CoyoteFrames
	} else if a.CoyoteTimer > 0 {
		a.CoyoteTimer--
	}

	a.Trail.record(a.Dashing(), a.X, a.Y, a.FacingRight)

	a.prevIn = in
}
