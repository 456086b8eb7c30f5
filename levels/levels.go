// Package levels loads tile worlds from Tiled TMX files. The shipped
// levels are embedded in the binary; the JSON side of the package converts
// the editor interchange format into TMX the loader understands.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/automoto/skelly-dash/core"
)

//go:embed all:data
var levelFS embed.FS

// Dir is the embedded directory holding the shipped .tmx levels.
const Dir = "data"

// Load parses a TMX file into a core level. It takes an fs.FS so callers
// can pass the embedded levels or os.DirFS for external files.
func Load(fsys fs.FS, tmxPath string) (*core.Level, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return fromMap(m, strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"))
}

func fromMap(m *tiled.Map, stem string) (*core.Level, error) {
	if m.TileWidth != m.TileHeight {
		return nil, fmt.Errorf("level %s: tiles must be square, got %dx%d", stem, m.TileWidth, m.TileHeight)
	}

	name := m.Properties.GetString("name")
	if name == "" {
		name = stem
	}
	lv := core.NewLevel(name, m.Width, m.Height)
	lv.Background = m.Properties.GetString("background")

	// Tile ids marked solid in tileset metadata form the collision mask.
	// A map whose tilesets declare nothing falls back to the id-range rule.
	mask := core.NewTileMask()
	for _, ts := range m.Tilesets {
		for _, tt := range ts.Tiles {
			if tt.Properties.GetBool("solid") {
				mask.Mark(uint16(ts.FirstGID + tt.ID))
			}
		}
	}
	if !mask.Empty() {
		lv.Collision = mask
	}

	// The first tile layer is the world. Further layers are decoration the
	// renderer may draw but the sim never consults.
	if len(m.Layers) == 0 {
		return nil, fmt.Errorf("level %s: no tile layer", stem)
	}
	layer := m.Layers[0]
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile := layer.Tiles[y*m.Width+x]
			if tile.IsNil() {
				continue
			}
			lv.SetTile(x, y, uint16(tile.Tileset.FirstGID+tile.ID))
		}
	}

	// Player spawn is a point object in the Objects group, in pixels.
	found := false
	for _, og := range m.ObjectGroups {
		if og.Name != "Objects" {
			continue
		}
		for _, o := range og.Objects {
			if o.Name == "PlayerSpawn" {
				lv.SpawnX = int(o.X)
				lv.SpawnY = int(o.Y)
				found = true
				break
			}
		}
	}
	if !found {
		return nil, fmt.Errorf("level %s: no PlayerSpawn object", stem)
	}

	return lv, nil
}

// LoadAll discovers every .tmx under dir in fsys and returns the loaded
// levels keyed by name, plus the sorted name list.
func LoadAll(fsys fs.FS, dir string) (map[string]*core.Level, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files in %s", dir)
	}

	out := make(map[string]*core.Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		lv, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		out[lv.Name] = lv
		names = append(names, lv.Name)
	}
	sort.Strings(names)
	return out, names, nil
}

// Embedded returns the levels shipped in the binary.
func Embedded() (map[string]*core.Level, []string, error) {
	return LoadAll(levelFS, Dir)
}

// MustEmbedded is Embedded for program startup, where a broken shipped
// level is unrecoverable.
func MustEmbedded() (map[string]*core.Level, []string) {
	lvs, names, err := Embedded()
	if err != nil {
		panic(fmt.Sprintf("embedded levels: %v", err))
	}
	return lvs, names
}
