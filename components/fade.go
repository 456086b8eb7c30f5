package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadePhase says which way the screen fade is running.
type FadePhase int

const (
	FadeNone FadePhase = iota
	FadeIn             // black to clear, on scene entry
	FadeOut            // clear to black, before a scene switch
)

// FadeData drives the full-screen fade. Alpha is the black overlay
// opacity the renderer draws; the sequence eases it between 0 and 1.
type FadeData struct {
	Phase FadePhase
	Seq   *gween.Sequence
	Alpha float32
	Done  bool // set when the active sequence finishes
}

var Fade = donburi.NewComponentType[FadeData]()
