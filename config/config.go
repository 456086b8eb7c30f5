package config

// Config holds display settings. The logical resolution never changes; the
// window is an integer scale of it.
type Config struct {
	Width  int
	Height int
	Scale  int
	TPS    int
}

// Global configuration instances
var C *Config
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to game
	Overlay  bool // Start with the collision overlay visible
	HUD      bool // Start with the profiler HUD visible
}

func init() {
	C = &Config{
		Width:  240,
		Height: 160,
		Scale:  3,
		TPS:    60,
	}
}
