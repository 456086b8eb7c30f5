package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/skelly-dash/config"
	"github.com/automoto/skelly-dash/core"
)

// InputData stores the current and previous frame's pressed state for all
// actions, plus the sim-facing button word assembled from them each frame.
// Edge states are computed on demand by comparing the two frames.
type InputData struct {
	Current  [config.ActionCount]bool
	Previous [config.ActionCount]bool
	Buttons  core.Buttons
}

// Pressed reports whether the action is held this frame.
func (d *InputData) Pressed(a config.ActionID) bool {
	return d.Current[a]
}

// JustPressed reports whether the action went down this frame.
func (d *InputData) JustPressed(a config.ActionID) bool {
	return d.Current[a] && !d.Previous[a]
}

// JustReleased reports whether the action came up this frame.
func (d *InputData) JustReleased(a config.ActionID) bool {
	return !d.Current[a] && d.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()
