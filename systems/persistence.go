package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/skelly-dash/components"
	cfg "github.com/automoto/skelly-dash/config"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	ShowOverlay bool   `json:"showOverlay"`
	ShowHUD     bool   `json:"showHUD"`
	LastLevel   string `json:"lastLevel"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "skelly-dash",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// UpdatePersistence writes the settings back to disk whenever a toggle
// marked them dirty.
func UpdatePersistence(e *ecs.ECS) {
	settings := getOrCreateSettings(e)
	if !settings.Dirty {
		return
	}
	settings.Dirty = false

	SaveSettings(&SavedSettings{
		ShowOverlay: settings.ShowOverlay,
		ShowHUD:     settings.ShowHUD,
		LastLevel:   settings.LastLevel,
	})
}

// RememberLevel stores the level name the menu should preselect next time.
func RememberLevel(e *ecs.ECS, name string) {
	settings := getOrCreateSettings(e)
	if settings.LastLevel == name {
		return
	}
	settings.LastLevel = name
	settings.Dirty = true
}

// getOrCreateSettings returns the singleton Settings component. On first
// access it seeds the state from disk, then lets the debug CLI flags
// force their toggles on.
func getOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		data := components.SettingsData{}
		if saved, err := LoadSettings(); err == nil && saved != nil {
			data.ShowOverlay = saved.ShowOverlay
			data.ShowHUD = saved.ShowHUD
			data.LastLevel = saved.LastLevel
		}
		if cfg.Debug.Overlay {
			data.ShowOverlay = true
		}
		if cfg.Debug.HUD {
			data.ShowHUD = true
		}
		components.Settings.SetValue(entry, data)
	}
	return components.Settings.Get(entry)
}
