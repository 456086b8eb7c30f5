// Package sprites builds all game art at runtime from string-pattern
// bitmaps; the repository ships no image files. One rune is one pixel,
// with '.' and ' ' transparent and every other rune looked up in the
// pattern's palette.
package sprites

import (
	"fmt"
	"image"
	"image/color"

	"github.com/automoto/skelly-dash/config"
)

// ParseRGBA renders rows into an RGBA image. Every row must have the same
// width, and every non-transparent rune must be present in pal.
func ParseRGBA(rows []string, pal map[rune]color.RGBA) (*image.RGBA, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("pattern has no rows")
	}
	w := len(rows[0])
	img := image.NewRGBA(image.Rect(0, 0, w, len(rows)))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("pattern row %d is %d runes wide, want %d", y, len(row), w)
		}
		for x, r := range row {
			if r == '.' || r == ' ' {
				continue
			}
			c, ok := pal[r]
			if !ok {
				return nil, fmt.Errorf("pattern row %d: no palette entry for %q", y, r)
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img, nil
}

// SilhouetteRGBA renders every opaque pixel of rows in a single color.
// Trail ghosts are drawn from the player silhouette tinted by age.
func SilhouetteRGBA(rows []string, c color.RGBA) (*image.RGBA, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("pattern has no rows")
	}
	w := len(rows[0])
	img := image.NewRGBA(image.Rect(0, 0, w, len(rows)))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("pattern row %d is %d runes wide, want %d", y, len(row), w)
		}
		for x, r := range row {
			if r == '.' || r == ' ' {
				continue
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img, nil
}

// TrailRamp returns the ten-step dash trail fade, newest to oldest:
// bright cyan dimming toward deep blue. Colors are computed on a 5-bit
// channel scale and expanded to 8 bits.
func TrailRamp() [10]color.RGBA {
	var ramp [10]color.RGBA
	for step := 0; step < 10; step++ {
		r := 10 - step*8/10
		g := 20 - step*14/10
		b := 31 - step*15/10
		if r < 2 {
			r = 2
		}
		if g < 6 {
			g = 6
		}
		if b < 16 {
			b = 16
		}
		ramp[step] = color.RGBA{R: expand5(r), G: expand5(g), B: expand5(b), A: 255}
	}
	return ramp
}

func expand5(v int) uint8 {
	return uint8(v<<3 | v>>2)
}

// playerPattern is the 16x16 skelly, facing right.
var playerPattern = []string{
	"....wwwwwwww....",
	"...wwwwwwwwww...",
	"..wwwwwwwwwwww..",
	"..wwwwwwwwwwww..",
	"..wwsswwwsswww..",
	"..wwsewwwsewww..",
	"..wwwwwwwwwwww..",
	"..wwwwwsswwwww..",
	"..swswswswswsw..",
	".....ssssss.....",
	"...wwwwwwwwww...",
	"...w.ww.ww.ww...",
	"...wwwwwwwwww...",
	".....ssssss.....",
	"....ww....ww....",
	"....ss....ssss..",
}

var playerPalette = map[rune]color.RGBA{
	'w': config.Bone,
	's': config.BoneShadow,
	'e': config.EyeRed,
}

var tilePalette = map[rune]color.RGBA{
	'g': config.GrassGreen,
	'G': config.PlantGreen,
	'd': config.DirtBrown,
	'D': {R: 96, G: 64, B: 32, A: 255},
	't': config.StoneGray,
	'T': {R: 80, G: 80, B: 96, A: 255},
}

// tilePatterns maps level tile ids to 8x8 art. Ids without an entry render
// as the missing-tile checker.
var tilePatterns = map[uint16][]string{
	1: { // grass surface
		"gggggggg",
		"gGgggGgg",
		"dddddddd",
		"ddDddddd",
		"dddddDdd",
		"Dddddddd",
		"ddddDddd",
		"dddddddd",
	},
	2: { // dirt fill
		"dddddddd",
		"ddDddddd",
		"dddddDdd",
		"Dddddddd",
		"dddddddd",
		"ddDddDdd",
		"dddddddd",
		"dDddddDd",
	},
	3: { // stone brick
		"tttTtttt",
		"tttTtttt",
		"tttTtttt",
		"TTTTTTTT",
		"ttttttTt",
		"ttttttTt",
		"ttttttTt",
		"TTTTTTTT",
	},
	58: { // cave sprig
		"...g....",
		"..gg.g..",
		"..Gg.g..",
		"...ggG..",
		"...gg...",
		"..Ggg...",
		"...gg...",
		"...GG...",
	},
	60: { // grass tuft
		"........",
		"........",
		"........",
		"........",
		"..g..g..",
		".gg..gg.",
		".gg.ggg.",
		"g.gggg.g",
	},
}

// missingPattern is the classic debug checker for unknown tile ids.
var missingPattern = []string{
	"mmmm....",
	"mmmm....",
	"mmmm....",
	"mmmm....",
	"....mmmm",
	"....mmmm",
	"....mmmm",
	"....mmmm",
}

var missingPalette = map[rune]color.RGBA{
	'm': {R: 255, G: 0, B: 255, A: 255},
}
