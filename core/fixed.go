// Package core is the deterministic simulation heart of the game: Q8.8
// fixed-point physics, tile collision, the actor state machine, and the
// dead-zone camera. It has no rendering, no I/O, and no floating point;
// given the same level and the same input sequence it produces bit-exact
// identical trajectories, which the replay tooling depends on.
package core

import "strconv"

// Fixed is a Q8.8 fixed-point value: the integer representation of
// value * 256. All positions, velocities, and physics constants use it.
// int32 keeps overflow behavior identical across platforms.
type Fixed int32

const (
	// FixedShift is the number of fractional bits.
	FixedShift = 8
	// One is the fixed-point representation of 1.0.
	One Fixed = 1 << FixedShift
)

// FromPixels converts a whole pixel coordinate to fixed point.
func FromPixels(px int) Fixed {
	return Fixed(px) << FixedShift
}

// Pixels converts to pixel space. The arithmetic right shift floors, so
// negative values round toward negative infinity, not zero. Collision
// boundary math relies on that.
func (f Fixed) Pixels() int {
	return int(f >> FixedShift)
}

// Abs returns the magnitude of f.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// String formats f as a decimal with two digits, e.g. "3.50" or "-0.25".
// Only used by tests and debug output.
func (f Fixed) String() string {
	neg := f < 0
	if neg {
		f = -f
	}
	whole := int(f >> FixedShift)
	// Fractional part in hundredths, rounded.
	frac := (int(f&(One-1))*100 + 128) >> FixedShift
	if frac == 100 {
		whole++
		frac = 0
	}
	s := strconv.Itoa(whole) + "." + pad2(frac)
	if neg {
		return "-" + s
	}
	return s
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
