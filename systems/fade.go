package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/skelly-dash/components"
	cfg "github.com/automoto/skelly-dash/config"
)

// fadeDuration is the scene fade length in seconds.
const fadeDuration = 0.4

// StartFadeIn begins the black-to-clear fade that opens a scene.
func StartFadeIn(e *ecs.ECS) {
	fade := getOrCreateFade(e)
	fade.Phase = components.FadeIn
	fade.Seq = gween.NewSequence(gween.New(1, 0, fadeDuration, ease.Linear))
	fade.Alpha = 1
	fade.Done = false
}

// StartFadeOut begins the clear-to-black fade that closes a scene. The
// scene watches for Done to know when to switch.
func StartFadeOut(e *ecs.ECS) {
	fade := getOrCreateFade(e)
	if fade.Phase == components.FadeOut {
		return
	}
	fade.Phase = components.FadeOut
	fade.Seq = gween.NewSequence(gween.New(fade.Alpha, 1, fadeDuration, ease.Linear))
	fade.Done = false
}

// UpdateFade advances the active fade sequence.
func UpdateFade(e *ecs.ECS) {
	fade := getOrCreateFade(e)
	if fade.Seq == nil {
		return
	}

	dt := float32(1.0 / float64(ebiten.TPS()))
	alpha, _, done := fade.Seq.Update(dt)
	fade.Alpha = alpha
	if done {
		fade.Seq = nil
		fade.Done = true
		if fade.Phase == components.FadeIn {
			fade.Phase = components.FadeNone
			fade.Alpha = 0
		} else {
			fade.Alpha = 1
		}
	}
}

// DrawFade draws the black overlay and closes the frame's perf sample.
// Must be the LAST renderer.
func DrawFade(e *ecs.ECS, screen *ebiten.Image) {
	fade := getOrCreateFade(e)
	if fade.Alpha > 0 {
		bounds := screen.Bounds()
		c := cfg.Black
		c.A = uint8(fade.Alpha * 255)
		vector.FillRect(
			screen,
			0, 0,
			float32(bounds.Dx()), float32(bounds.Dy()),
			c,
			false,
		)
	}

	if c := getCollector(e); c != nil {
		c.EndFrame()
	}
}

// getOrCreateFade returns the singleton Fade component, creating if needed
func getOrCreateFade(e *ecs.ECS) *components.FadeData {
	entry, ok := components.Fade.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Fade))
	}
	return components.Fade.Get(entry)
}
