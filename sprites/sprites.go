package sprites

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Atlas holds every image the renderers draw. Build it once at startup via
// Load; everything inside is immutable afterwards.
type Atlas struct {
	Player     *ebiten.Image            // 16x16 skelly, facing right
	Silhouette *ebiten.Image            // white player mask for trail ghosts
	Tiles      map[uint16]*ebiten.Image // level tile art by id
	Missing    *ebiten.Image            // fallback for unknown tile ids
	Ramp       [10]color.RGBA           // trail tint, newest to oldest
}

var (
	loadOnce sync.Once
	atlas    *Atlas
)

// Load builds the atlas from the package patterns. It panics on a bad
// pattern, which is a programming error the pattern tests catch first.
func Load() *Atlas {
	loadOnce.Do(func() {
		atlas = build()
	})
	return atlas
}

func build() *Atlas {
	a := &Atlas{
		Player:  mustImage(playerPattern, playerPalette),
		Tiles:   make(map[uint16]*ebiten.Image, len(tilePatterns)),
		Missing: mustImage(missingPattern, missingPalette),
		Ramp:    TrailRamp(),
	}

	sil, err := SilhouetteRGBA(playerPattern, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	if err != nil {
		panic(fmt.Sprintf("sprites: player silhouette: %v", err))
	}
	a.Silhouette = ebiten.NewImageFromImage(sil)

	for id, rows := range tilePatterns {
		a.Tiles[id] = mustImage(rows, tilePalette)
	}
	return a
}

// Tile returns the art for a tile id, or the missing checker.
func (a *Atlas) Tile(id uint16) *ebiten.Image {
	if img, ok := a.Tiles[id]; ok {
		return img
	}
	return a.Missing
}

func mustImage(rows []string, pal map[rune]color.RGBA) *ebiten.Image {
	img, err := ParseRGBA(rows, pal)
	if err != nil {
		panic(fmt.Sprintf("sprites: %v", err))
	}
	return ebiten.NewImageFromImage(img)
}
