package core

// TrailLength is the ring capacity: ten ghosts, sampled every other frame,
// cover the dash plus a short afterglow.
const TrailLength = 10

// trailFadeMax is the fade timer ceiling: one ghost disappears every two
// frames, so a full fade-out lasts TrailLength*2 frames.
const trailFadeMax = TrailLength * 2

// trailSentinel parks unused samples far off-world so the renderer's
// off-screen cull hides them without a special case.
const trailSentinel = Fixed(-1000) << FixedShift

// TrailSample is one recorded pose.
type TrailSample struct {
	X, Y        Fixed
	FacingRight bool
}

// Ghost is one visible trail sprite, newest first. Age runs 0..TrailLength-1
// and picks the palette step (older = more faded).
type Ghost struct {
	X, Y        Fixed
	FacingRight bool
	Age         int
}

// Trail is the dash afterimage ring buffer. It is visual state only and
// never feeds back into physics, but it ticks deterministically with the
// actor so replays render identically.
type Trail struct {
	samples   [TrailLength]TrailSample
	head      int // index of the newest sample
	tick      int // frames since the last sample (samples every 2nd)
	fadeTimer int // frames since the dash ended, capped at trailFadeMax
}

// reset restores the spawn state: empty buffer, fully faded.
func (tr *Trail) reset(facing bool) {
	tr.head = 0
	tr.tick = 0
	tr.fadeTimer = trailFadeMax
	for i := range tr.samples {
		tr.samples[i] = TrailSample{X: trailSentinel, Y: trailSentinel, FacingRight: facing}
	}
}

// startDash discards stale samples and restarts the fade clock.
func (tr *Trail) startDash() {
	tr.fadeTimer = 0
	for i := range tr.samples {
		tr.samples[i].X = trailSentinel
		tr.samples[i].Y = trailSentinel
	}
}

// endDash begins the fade-out.
func (tr *Trail) endDash() {
	tr.tick = 0
	tr.fadeTimer = 0
}

// tickFade advances the fade clock while no dash is active.
func (tr *Trail) tickFade(dashing bool) {
	if !dashing && tr.fadeTimer < trailFadeMax {
		tr.fadeTimer++
	}
}

// record samples the pose every second frame while dashing or during the
// first half of the fade window (so the buffer keeps filling briefly after
// the dash ends).
func (tr *Trail) record(dashing bool, x, y Fixed, facing bool) {
	if !dashing && tr.fadeTimer >= trailFadeMax/2 {
		return
	}
	tr.tick++
	if tr.tick < 2 {
		return
	}
	tr.tick = 0
	tr.head = (tr.head + 1) % TrailLength
	tr.samples[tr.head] = TrailSample{X: x, Y: y, FacingRight: facing}
}

// Ghosts appends the currently visible trail sprites to dst, newest first,
// and returns it. Fading hides the oldest ghosts first: one disappears
// every two frames once the dash ends, while surviving ghosts age faster so
// the whole trail dims as it shortens.
func (tr *Trail) Ghosts(dst []Ghost, dashing bool) []Ghost {
	fadeSteps := tr.fadeTimer / 2
	for i := 0; i < TrailLength; i++ {
		if !dashing && i >= TrailLength-fadeSteps {
			continue
		}
		if !dashing && tr.fadeTimer >= trailFadeMax {
			continue
		}
		s := tr.samples[(tr.head-i+TrailLength)%TrailLength]
		if s.X == trailSentinel && s.Y == trailSentinel {
			continue
		}
		age := i + fadeSteps
		if age > TrailLength-1 {
			age = TrailLength - 1
		}
		dst = append(dst, Ghost{X: s.X, Y: s.Y, FacingRight: s.FacingRight, Age: age})
	}
	return dst
}
