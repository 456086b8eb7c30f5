package core

import "testing"

// wideLevel is 800x320 pixels, big enough that the camera has room to move
// on both axes.
func wideLevel() *Level {
	return NewLevel("wide", 100, 40)
}

func TestCameraDeadZoneHoldsStill(t *testing.T) {
	tn := DefaultTuning()
	lv := wideLevel()
	c := Camera{}

	// Screen position (100,80) is inside the middle third on both axes.
	c.Follow(FromPixels(100), FromPixels(80), lv, &tn)
	if c.X != 0 || c.Y != 0 {
		t.Errorf("camera moved to (%d,%d), want (0,0)", c.X, c.Y)
	}
}

func TestCameraShiftsByExcess(t *testing.T) {
	tn := DefaultTuning()
	lv := wideLevel()
	c := Camera{}

	// Actor at (300,200): 140 past the right edge of the dead zone (160)
	// and 94 past the bottom edge (106).
	c.Follow(FromPixels(300), FromPixels(200), lv, &tn)
	if c.X != 140 || c.Y != 94 {
		t.Errorf("camera at (%d,%d), want (140,94)", c.X, c.Y)
	}

	// From there the actor sits exactly on the dead zone edge, so a
	// second Follow with the same position does nothing.
	c.Follow(FromPixels(300), FromPixels(200), lv, &tn)
	if c.X != 140 || c.Y != 94 {
		t.Errorf("camera drifted to (%d,%d) on a repeat Follow", c.X, c.Y)
	}
}

func TestCameraShiftsLeftAndUp(t *testing.T) {
	tn := DefaultTuning()
	lv := wideLevel()
	c := Camera{X: 100, Y: 50}

	// Screen position (10,10): 70 past the left edge (80), 43 past the
	// top edge (53).
	c.Follow(FromPixels(110), FromPixels(60), lv, &tn)
	if c.X != 30 || c.Y != 7 {
		t.Errorf("camera at (%d,%d), want (30,7)", c.X, c.Y)
	}
}

func TestCameraClampsToLevel(t *testing.T) {
	tn := DefaultTuning()
	lv := wideLevel()

	c := Camera{}
	c.Follow(FromPixels(790), FromPixels(310), lv, &tn)
	if c.X != 560 || c.Y != 160 {
		t.Errorf("camera at (%d,%d), want clamped (560,160)", c.X, c.Y)
	}

	c = Camera{X: 500, Y: 100}
	c.Follow(FromPixels(20), FromPixels(20), lv, &tn)
	if c.X != 0 || c.Y != 0 {
		t.Errorf("camera at (%d,%d), want clamped (0,0)", c.X, c.Y)
	}
}

func TestCameraCenter(t *testing.T) {
	tn := DefaultTuning()
	lv := wideLevel()

	c := Camera{}
	c.Center(FromPixels(400), FromPixels(200), lv, &tn)
	if c.X != 280 || c.Y != 120 {
		t.Errorf("center at (%d,%d), want (280,120)", c.X, c.Y)
	}

	c.Center(FromPixels(50), FromPixels(50), lv, &tn)
	if c.X != 0 || c.Y != 0 {
		t.Errorf("center near origin at (%d,%d), want (0,0)", c.X, c.Y)
	}

	c.Center(FromPixels(780), FromPixels(300), lv, &tn)
	if c.X != 560 || c.Y != 160 {
		t.Errorf("center near far corner at (%d,%d), want (560,160)", c.X, c.Y)
	}
}

func TestCameraScreenSizedLevelPins(t *testing.T) {
	tn := DefaultTuning()
	lv := NewLevel("screen", 30, 20) // exactly 240x160

	c := Camera{}
	c.Follow(FromPixels(230), FromPixels(150), lv, &tn)
	if c.X != 0 || c.Y != 0 {
		t.Errorf("camera at (%d,%d) in a screen-sized level, want (0,0)", c.X, c.Y)
	}

	// A level smaller than the screen pins the same way rather than
	// going negative.
	tiny := NewLevel("tiny", 20, 10) // 160x80
	c = Camera{}
	c.Follow(FromPixels(150), FromPixels(70), tiny, &tn)
	if c.X != 0 || c.Y != 0 {
		t.Errorf("camera at (%d,%d) in a sub-screen level, want (0,0)", c.X, c.Y)
	}
	c.Center(FromPixels(80), FromPixels(40), tiny, &tn)
	if c.X != 0 || c.Y != 0 {
		t.Errorf("center at (%d,%d) in a sub-screen level, want (0,0)", c.X, c.Y)
	}
}
