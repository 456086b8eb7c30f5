package systems

import (
	"log"

	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/skelly-dash/components"
	cfg "github.com/automoto/skelly-dash/config"
	"github.com/automoto/skelly-dash/perf"
	"github.com/automoto/skelly-dash/replay"
)

// UpdateSession advances the simulation by exactly one frame, feeding it
// live input or the playback cursor. It also owns the session controls:
// pause, frame step, reset, quit, and tuning hot reload.
// Must run AFTER UpdateInput.
func UpdateSession(e *ecs.ECS) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(entry)
	input := getOrCreateInput(e)
	settings := getOrCreateSettings(e)

	if c := getCollector(e); c != nil {
		c.StartPhase(perf.PhaseSim)
	}
	if session.Quit {
		return
	}

	// Session controls work even while paused
	if input.JustPressed(cfg.ActionPause) {
		session.Paused = !session.Paused
	}
	if session.Paused && input.JustPressed(cfg.ActionFrameStep) {
		session.StepOnce = true
	}
	if input.JustPressed(cfg.ActionToggleOverlay) {
		settings.ShowOverlay = !settings.ShowOverlay
		settings.Dirty = true
	}
	if input.JustPressed(cfg.ActionToggleHUD) {
		settings.ShowHUD = !settings.ShowHUD
		settings.Dirty = true
	}
	if input.JustPressed(cfg.ActionReset) {
		resetSession(session)
	}
	if input.JustPressed(cfg.ActionQuit) {
		endSession(e, session)
		return
	}

	drainTuning(session)

	if session.Paused && !session.StepOnce {
		return
	}
	session.StepOnce = false

	in := input.Buttons
	if session.Playback != nil {
		if session.Playback.Done(session.Sim.Frame) {
			session.PlaybackOver = true
			return
		}
		in = session.Playback.ButtonsAt(session.Sim.Frame)
	}

	if session.Recorder != nil {
		session.Recorder.Observe(session.Sim.Frame, in)
	}
	session.Sim.Step(in)
	if session.Recorder != nil {
		session.Recorder.Commit(session.Sim)
	}
}

// resetSession puts the sim back on frame zero. A recording in progress
// starts over (recordings always begin at frame zero) and playback rewinds.
func resetSession(session *components.SessionData) {
	session.Sim.Reset()
	if session.Recorder != nil {
		session.Recorder = replay.NewRecorder(session.LevelName)
	}
	if session.Playback != nil {
		session.Playback.Rewind()
		session.PlaybackOver = false
	}
	session.Paused = false
	session.StepOnce = false
}

// endSession seals a recording in progress, stops the tuning watcher, and
// starts the fade back to the menu.
func endSession(e *ecs.ECS, session *components.SessionData) {
	if session.Recorder != nil && session.RecordPath != "" {
		rec := session.Recorder.Finish(session.Sim)
		if err := rec.Save(session.RecordPath); err != nil {
			log.Printf("Warning: Could not save recording: %v", err)
		} else {
			log.Printf("Saved recording to %s (%d frames)", session.RecordPath, rec.Frames)
		}
		session.Recorder = nil
	}
	if session.Watcher != nil {
		session.Watcher.Close()
		session.Watcher = nil
	}
	session.Quit = true
	StartFadeOut(e)
}

// drainTuning applies a tuning file change if the watcher has one queued.
// The new values take effect on the next stepped frame.
func drainTuning(session *components.SessionData) {
	if session.Watcher == nil {
		return
	}
	select {
	case <-session.Watcher.Events:
		t, err := cfg.LoadTuning(session.TuningPath)
		if err != nil {
			log.Printf("Warning: Could not reload tuning: %v", err)
			return
		}
		session.Sim.Tuning = t
		log.Printf("Reloaded tuning from %s", session.TuningPath)
	case err := <-session.Watcher.Errors:
		log.Printf("Warning: Tuning watcher: %v", err)
	default:
	}
}
