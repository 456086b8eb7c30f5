// Package replay records input sessions and re-runs them against the
// deterministic sim. A recording stores only button changes plus periodic
// state-hash checkpoints, so files stay small and divergence is caught
// close to where it happens.
package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/automoto/skelly-dash/core"
)

// Version is bumped whenever the recording format changes shape.
const Version = 1

// checkpointEvery is the state-hash sampling interval in frames.
const checkpointEvery = 60

// Event is one input change: from Frame on, Buttons is the held set.
type Event struct {
	Frame   uint64 `json:"frame"`
	Buttons uint16 `json:"buttons"`
}

// Checkpoint pins the sim's state hash at a frame.
type Checkpoint struct {
	Frame uint64 `json:"frame"`
	Hash  uint64 `json:"hash"`
}

// Recording is a complete input session for one level.
type Recording struct {
	Version     int          `json:"version"`
	Level       string       `json:"level"`
	Timestamp   int64        `json:"timestamp"`
	Frames      uint64       `json:"frames"`
	StateHash   uint64       `json:"stateHash"`
	Events      []Event      `json:"events"`
	Checkpoints []Checkpoint `json:"checkpoints,omitempty"`
}

// Save writes the recording as indented JSON.
func (rec *Recording) Save(path string) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode recording: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write recording: %w", err)
	}
	return nil
}

// Load reads a recording written by Save.
func Load(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recording: %w", err)
	}
	rec := &Recording{}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("decode recording %s: %w", path, err)
	}
	if rec.Version != Version {
		return nil, fmt.Errorf("recording %s is version %d, want %d", path, rec.Version, Version)
	}
	return rec, nil
}

// Recorder accumulates a recording alongside a live sim. Call Observe with
// each frame's input before stepping, Commit after, and Finish at the end.
type Recorder struct {
	rec   Recording
	last  core.Buttons
	began bool
}

// NewRecorder starts a recording for the named level.
func NewRecorder(level string) *Recorder {
	return &Recorder{
		rec: Recording{
			Version:   Version,
			Level:     level,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Observe logs the input for the given frame. Only changes append events.
func (r *Recorder) Observe(frame uint64, in core.Buttons) {
	if r.began && in == r.last {
		return
	}
	r.rec.Events = append(r.rec.Events, Event{Frame: frame, Buttons: uint16(in)})
	r.last = in
	r.began = true
}

// Commit samples a state-hash checkpoint on the interval. Call it after
// the sim step that Observe's input fed.
func (r *Recorder) Commit(s *core.Sim) {
	if s.Frame%checkpointEvery != 0 {
		return
	}
	r.rec.Checkpoints = append(r.rec.Checkpoints, Checkpoint{Frame: s.Frame, Hash: s.StateHash()})
}

// Finish seals the recording with the final frame count and state hash.
func (r *Recorder) Finish(s *core.Sim) *Recording {
	r.rec.Frames = s.Frame
	r.rec.StateHash = s.StateHash()
	return &r.rec
}

// Cursor walks a recording's events in frame order, answering "what was
// held on frame f". Frames must be queried in nondecreasing order.
type Cursor struct {
	rec *Recording
	idx int
	cur core.Buttons
}

// NewCursor positions a cursor at the start of the recording.
func NewCursor(rec *Recording) *Cursor {
	return &Cursor{rec: rec}
}

// ButtonsAt returns the button set held on the given frame.
func (c *Cursor) ButtonsAt(frame uint64) core.Buttons {
	for c.idx < len(c.rec.Events) && c.rec.Events[c.idx].Frame <= frame {
		c.cur = core.Buttons(c.rec.Events[c.idx].Buttons)
		c.idx++
	}
	return c.cur
}

// Done reports whether the recording has no frames past the given one.
func (c *Cursor) Done(frame uint64) bool {
	return frame >= c.rec.Frames
}

// Rewind resets the cursor to the start.
func (c *Cursor) Rewind() {
	c.idx = 0
	c.cur = 0
}
