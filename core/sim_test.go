package core

import "testing"

// simScript is a canned 400-frame input sequence that runs, jumps, dashes
// both straight and diagonally, and collides with the ledge in simLevel.
func simScript(f int) Buttons {
	switch {
	case f == 80:
		return ButtonDash
	case f == 120:
		return ButtonLeft | ButtonJump
	case f == 160:
		return ButtonDash | ButtonUp | ButtonRight
	case f < 60:
		return ButtonRight
	case f < 63:
		return ButtonJump
	case f >= 100 && f < 140:
		return ButtonLeft
	case f >= 200 && f < 240:
		return ButtonRight | ButtonDown
	}
	return 0
}

func simLevel() *Level {
	lv := groundedLevel(100, 20, 17, 100)
	lv.Fill(40, 16, 45, 16, 1) // ledge the frame-80 dash runs into
	lv.Fill(60, 10, 60, 16, 1) // far wall
	return lv
}

func TestSimDeterminism(t *testing.T) {
	tn := DefaultTuning()
	s1 := NewSim(simLevel(), tn)
	s2 := NewSim(simLevel(), tn)

	for f := 0; f < 400; f++ {
		s1.Step(simScript(f))
		s2.Step(simScript(f))
		if h1, h2 := s1.StateHash(), s2.StateHash(); h1 != h2 {
			t.Fatalf("frame %d: hashes diverged (%x vs %x)", f, h1, h2)
		}
	}
	if s1.Actor.X != s2.Actor.X || s1.Actor.Y != s2.Actor.Y {
		t.Errorf("final positions differ: (%v,%v) vs (%v,%v)",
			s1.Actor.X, s1.Actor.Y, s2.Actor.X, s2.Actor.Y)
	}
}

func TestSimResetReproduces(t *testing.T) {
	tn := DefaultTuning()
	s := NewSim(simLevel(), tn)

	checkpoints := map[uint64]uint64{}
	for f := 0; f < 400; f++ {
		s.Step(simScript(f))
		switch f {
		case 100, 250, 399:
			checkpoints[s.Frame] = s.StateHash()
		}
	}

	s.Reset()
	if s.Frame != 0 {
		t.Fatalf("Frame = %d after Reset, want 0", s.Frame)
	}
	if s.Actor.X != FromPixels(100) || !s.Actor.FacingRight {
		t.Fatal("Reset did not restore the spawn state")
	}

	for f := 0; f < 400; f++ {
		s.Step(simScript(f))
		if want, ok := checkpoints[s.Frame]; ok {
			if got := s.StateHash(); got != want {
				t.Errorf("frame %d: hash %x after Reset, want %x", f, got, want)
			}
		}
	}
}

func TestSimHashSeparatesRuns(t *testing.T) {
	tn := DefaultTuning()
	s1 := NewSim(simLevel(), tn)
	s2 := NewSim(simLevel(), tn)

	for f := 0; f < 30; f++ {
		s1.Step(0)
		s2.Step(ButtonRight)
	}
	if s1.StateHash() == s2.StateHash() {
		t.Error("different inputs produced the same state hash")
	}
}

func TestSimCameraTracksActor(t *testing.T) {
	tn := DefaultTuning()
	s := NewSim(groundedLevel(100, 20, 17, 100), tn)

	for f := 0; f < 300; f++ {
		s.Step(ButtonRight)
	}
	// Actor pinned at the right wall, camera scrolled to its clamp.
	if s.Actor.X != FromPixels(792) {
		t.Errorf("actor X = %v, want 792.00", s.Actor.X)
	}
	if s.Camera.X != 560 {
		t.Errorf("camera X = %d, want 560", s.Camera.X)
	}
	if s.Camera.Y != 0 {
		t.Errorf("camera Y = %d, want 0 in a screen-height level", s.Camera.Y)
	}
}

func TestNewSimCentersCamera(t *testing.T) {
	tn := DefaultTuning()
	lv := groundedLevel(100, 40, 37, 400)
	s := NewSim(lv, tn)

	if s.Camera.X != 280 {
		t.Errorf("camera X = %d, want 280", s.Camera.X)
	}
	if s.Camera.Y != 160 {
		t.Errorf("camera Y = %d, want clamped 160", s.Camera.Y)
	}
	if s.Frame != 0 {
		t.Errorf("Frame = %d, want 0", s.Frame)
	}

	s.Step(0)
	s.Step(0)
	if s.Frame != 2 {
		t.Errorf("Frame = %d after two steps, want 2", s.Frame)
	}
}
