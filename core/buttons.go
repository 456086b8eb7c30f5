package core

// Buttons is the per-frame input bitmask fed to the simulation. The source
// performs no debouncing; all edge detection happens inside Actor.Step.
// The bit layout is part of the recording format; do not renumber.
type Buttons uint16

const (
	ButtonJump  Buttons = 0x0001
	ButtonRight Buttons = 0x0010
	ButtonLeft  Buttons = 0x0020
	ButtonUp    Buttons = 0x0040
	ButtonDown  Buttons = 0x0080
	ButtonDash  Buttons = 0x0100
)

// Has reports whether all bits in b are held.
func (bs Buttons) Has(b Buttons) bool {
	return bs&b == b
}

// justPressed returns the bits held this frame but not the previous one.
func (bs Buttons) justPressed(prev Buttons) Buttons {
	return bs &^ prev
}
