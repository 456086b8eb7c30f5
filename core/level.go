package core

// Default solidity rule when a level carries no explicit collision table:
// the terrain tileset occupies ids 1..55, everything above is decoration.
const (
	defaultSolidMin = 1
	defaultSolidMax = 55
)

// Level is the read-only tile world the simulation moves through. The
// loader owns construction; the core only queries it. Tiles are row-major
// tile ids with 0 meaning open air.
type Level struct {
	Name   string
	Width  int // in tiles
	Height int
	Tiles  []uint16

	// Collision marks which tile ids are solid. When nil, the default
	// id-range rule applies.
	Collision *TileMask

	// Spawn point in pixels.
	SpawnX int
	SpawnY int

	// Background names the backdrop the renderer should use. The sim
	// never reads it.
	Background string
}

// NewLevel returns an empty (all air) level.
func NewLevel(name string, width, height int) *Level {
	return &Level{
		Name:   name,
		Width:  width,
		Height: height,
		Tiles:  make([]uint16, width*height),
	}
}

// TileAt returns the tile id at tile coordinates, or 0 for any
// out-of-bounds coordinate. Out of bounds is always open air; the world is
// walled only by explicit tiles and the pixel-bounds clamps.
func (lv *Level) TileAt(tx, ty int) uint16 {
	if tx < 0 || tx >= lv.Width || ty < 0 || ty >= lv.Height {
		return 0
	}
	return lv.Tiles[ty*lv.Width+tx]
}

// SetTile writes a tile id, ignoring out-of-bounds coordinates. Intended
// for loaders and tests; the core never mutates a level mid-frame.
func (lv *Level) SetTile(tx, ty int, id uint16) {
	if tx < 0 || tx >= lv.Width || ty < 0 || ty >= lv.Height {
		return
	}
	lv.Tiles[ty*lv.Width+tx] = id
}

// Fill writes id over the inclusive tile rectangle.
func (lv *Level) Fill(x0, y0, x1, y1 int, id uint16) {
	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			lv.SetTile(tx, ty, id)
		}
	}
}

// Solid reports whether a tile id blocks movement.
func (lv *Level) Solid(id uint16) bool {
	if id == 0 {
		return false
	}
	if lv.Collision != nil {
		return lv.Collision.Has(id)
	}
	return DefaultSolid(id)
}

// DefaultSolid is the id-range solidity rule: terrain ids block, the
// decoration range above does not. Loaders use it to seed collision masks.
func DefaultSolid(id uint16) bool {
	return id >= defaultSolidMin && id <= defaultSolidMax
}

// SolidAt combines TileAt and Solid.
func (lv *Level) SolidAt(tx, ty int) bool {
	return lv.Solid(lv.TileAt(tx, ty))
}

// TileMask is a bit-per-tile-id solidity table for tilesets that mix
// terrain and decoration in the same id space.
type TileMask struct {
	bits []uint64
}

// NewTileMask returns a mask with no solid ids.
func NewTileMask() *TileMask {
	return &TileMask{}
}

// Mark flags id as solid.
func (m *TileMask) Mark(id uint16) {
	word := int(id) / 64
	for len(m.bits) <= word {
		m.bits = append(m.bits, 0)
	}
	m.bits[word] |= 1 << (uint(id) % 64)
}

// Has reports whether id is flagged solid.
func (m *TileMask) Has(id uint16) bool {
	word := int(id) / 64
	if word >= len(m.bits) {
		return false
	}
	return m.bits[word]&(1<<(uint(id)%64)) != 0
}

// Empty reports whether no id is flagged.
func (m *TileMask) Empty() bool {
	for _, w := range m.bits {
		if w != 0 {
			return false
		}
	}
	return true
}

// NewFlatLevel returns the screen-sized single-plane world used by the
// flat-ground tuning variant: no tiles, spawn resting on the plane.
func NewFlatLevel(t *Tuning) *Level {
	lv := NewLevel("flat", t.ScreenWidth/t.TileSize, t.ScreenHeight/t.TileSize)
	lv.SpawnX = t.ScreenWidth / 2
	lv.SpawnY = t.FlatGroundY - t.Radius
	return lv
}
