package replay

import (
	"fmt"

	"github.com/automoto/skelly-dash/core"
)

// Verify re-runs the recording against a fresh sim of the same level and
// tuning, comparing every checkpoint and the final state hash. A nil
// return means the recording reproduces bit for bit.
func Verify(rec *Recording, lv *core.Level, tn core.Tuning) error {
	s := core.NewSim(lv, tn)
	cur := NewCursor(rec)
	ci := 0

	for f := uint64(0); f < rec.Frames; f++ {
		s.Step(cur.ButtonsAt(f))
		for ci < len(rec.Checkpoints) && rec.Checkpoints[ci].Frame == s.Frame {
			if got := s.StateHash(); got != rec.Checkpoints[ci].Hash {
				return fmt.Errorf("replay diverged at frame %d: state hash %x, recorded %x",
					s.Frame, got, rec.Checkpoints[ci].Hash)
			}
			ci++
		}
	}

	if got := s.StateHash(); got != rec.StateHash {
		return fmt.Errorf("final state hash %x does not match recorded %x", got, rec.StateHash)
	}
	return nil
}
