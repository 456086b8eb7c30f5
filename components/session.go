package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/skelly-dash/config"
	"github.com/automoto/skelly-dash/core"
	"github.com/automoto/skelly-dash/replay"
)

// SessionData owns the running simulation and the machinery wrapped
// around it: pause and frame-step, recording or playback, and the live
// tuning reload channel.
type SessionData struct {
	Sim       *core.Sim
	LevelName string

	Paused   bool
	StepOnce bool // advance exactly one frame while paused
	Quit     bool // session over, scene should fade out and leave

	// Recording, when RecordPath is set.
	Recorder   *replay.Recorder
	RecordPath string

	// Playback, when a recording was loaded. The session feeds the sim
	// from the cursor instead of live input and stops at the end.
	Playback     *replay.Cursor
	PlaybackOver bool

	// Live tuning reload, when a tuning file is being watched.
	TuningPath string
	Watcher    *config.Watcher
}

var Session = donburi.NewComponentType[SessionData]()
