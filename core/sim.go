package core

import (
	"encoding/binary"
	"hash/fnv"
)

// Sim bundles one actor, one camera, and one level into a steppable world.
// Step must be called exactly once per display frame with that frame's
// input; everything downstream (recording, rendering, verification) hangs
// off this being the single mutation point.
type Sim struct {
	Level  *Level
	Tuning Tuning
	Actor  Actor
	Camera Camera
	Frame  uint64
}

// NewSim spawns the actor and centers the camera on it.
func NewSim(lv *Level, t Tuning) *Sim {
	s := &Sim{Level: lv, Tuning: t}
	s.Actor.Spawn(lv)
	s.Camera.Center(s.Actor.X, s.Actor.Y, lv, &s.Tuning)
	return s
}

// Step advances one frame: actor (with both collision sweeps), then camera.
func (s *Sim) Step(in Buttons) {
	s.Actor.Step(in, s.Level, &s.Tuning)
	s.Camera.Follow(s.Actor.X, s.Actor.Y, s.Level, &s.Tuning)
	s.Frame++
}

// Reset reinitializes in place: same level, same tuning, frame zero.
func (s *Sim) Reset() {
	s.Actor.Spawn(s.Level)
	s.Camera.Center(s.Actor.X, s.Actor.Y, s.Level, &s.Tuning)
	s.Frame = 0
}

// StateHash digests the physically meaningful state. Two runs of the same
// level and input sequence must produce equal hashes frame by frame; replay
// verification leans on this.
func (s *Sim) StateHash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	put(int64(s.Actor.X))
	put(int64(s.Actor.Y))
	put(int64(s.Actor.VX))
	put(int64(s.Actor.VY))
	var flags int64
	if s.Actor.OnGround {
		flags |= 1
	}
	if s.Actor.FacingRight {
		flags |= 2
	}
	put(flags)
	put(int64(s.Actor.CoyoteTimer))
	put(int64(s.Actor.DashLeft))
	put(int64(s.Actor.DashCooldown))
	put(int64(s.Camera.X))
	put(int64(s.Camera.Y))
	put(int64(s.Frame))
	return h.Sum64()
}
