package config

import "image/color"

// Shared RGBA color constants. The play palette is the procedural sprite
// palette; the rest styles menus, the HUD and the debug overlay.
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}

	// World
	SkyBlue    = color.RGBA{R: 120, G: 184, B: 248, A: 255}
	CaveGray   = color.RGBA{R: 40, G: 44, B: 56, A: 255}
	GrassGreen = color.RGBA{R: 72, G: 168, B: 64, A: 255}
	DirtBrown  = color.RGBA{R: 128, G: 88, B: 48, A: 255}
	StoneGray  = color.RGBA{R: 112, G: 112, B: 128, A: 255}
	PlantGreen = color.RGBA{R: 48, G: 128, B: 56, A: 255}

	// Skelly
	Bone       = color.RGBA{R: 236, G: 236, B: 224, A: 255}
	BoneShadow = color.RGBA{R: 168, G: 168, B: 152, A: 255}
	EyeRed     = color.RGBA{R: 216, G: 40, B: 40, A: 255}
	TrailCyan  = color.RGBA{R: 64, G: 224, B: 240, A: 255}

	// Menus
	TitleYellow  = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}

	// Debug overlay. The translucent fills are alpha-premultiplied.
	DebugActorBox = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	DebugSolid    = color.RGBA{R: 90, G: 0, B: 0, A: 90}
	DebugProbe    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	DebugDeadZone = color.RGBA{R: 27, G: 49, B: 70, A: 70}
)

// BackgroundFor maps a level's background tag to its fill color. Unknown
// tags get the open-air sky.
func BackgroundFor(tag string) color.RGBA {
	switch tag {
	case "cave":
		return CaveGray
	default:
		return SkyBlue
	}
}
