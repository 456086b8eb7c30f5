package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/skelly-dash/components"
	cfg "github.com/automoto/skelly-dash/config"
	"github.com/automoto/skelly-dash/core"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component, then
// assembles the button word the simulation consumes.
// Must run BEFORE UpdateSession in the system order.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	// Get connected gamepads
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	// Read analog stick state (with deadzone)
	analogLeft, analogRight, analogUp, analogDown := getAnalogStickState(gamepadIDs)

	// Poll all actions - only set pressed state
	for actionID, binding := range cfg.Input.Bindings {
		// Check keyboard keys
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		// Check gamepad buttons
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	// Merge analog stick into directional actions
	if analogLeft {
		input.Current[cfg.ActionMoveLeft] = true
	}
	if analogRight {
		input.Current[cfg.ActionMoveRight] = true
	}
	if analogUp {
		input.Current[cfg.ActionMoveUp] = true
		input.Current[cfg.ActionMenuUp] = true
	}
	if analogDown {
		input.Current[cfg.ActionMoveDown] = true
		input.Current[cfg.ActionMenuDown] = true
	}

	input.Buttons = assembleButtons(input)
}

// assembleButtons packs the held movement actions into the bitmask the
// simulation reads. Edge detection is the sim's job, not ours.
func assembleButtons(input *components.InputData) core.Buttons {
	var b core.Buttons
	if input.Current[cfg.ActionJump] {
		b |= core.ButtonJump
	}
	if input.Current[cfg.ActionMoveRight] {
		b |= core.ButtonRight
	}
	if input.Current[cfg.ActionMoveLeft] {
		b |= core.ButtonLeft
	}
	if input.Current[cfg.ActionMoveUp] {
		b |= core.ButtonUp
	}
	if input.Current[cfg.ActionMoveDown] {
		b |= core.ButtonDown
	}
	if input.Current[cfg.ActionDash] {
		b |= core.ButtonDash
	}
	return b
}

// getAnalogStickState reads the left analog stick from all gamepads.
// Returns directional states based on the deadzone threshold.
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		// Read left stick axes
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		// Apply deadzone
		if horizontal < -deadzone {
			left = true
		}
		if horizontal > deadzone {
			right = true
		}
		if vertical < -deadzone {
			up = true
		}
		if vertical > deadzone {
			down = true
		}
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}
