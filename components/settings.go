package components

import "github.com/yohamta/donburi"

// SettingsData holds the persisted player preferences. Dirty flags a
// change the persistence system should write back.
type SettingsData struct {
	ShowOverlay bool
	ShowHUD     bool
	LastLevel   string
	Dirty       bool
}

var Settings = donburi.NewComponentType[SettingsData]()
