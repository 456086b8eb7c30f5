package levels

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/skelly-dash/core"
)

const defaultTileSize = 8

// LevelFile is the JSON level interchange format. Editors produce it;
// WriteTMX turns it into the TMX the loader ships.
type LevelFile struct {
	Name        string   `json:"name"`
	Author      string   `json:"author,omitempty"`
	Background  string   `json:"background,omitempty"`
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	TileWidth   int      `json:"tileWidth,omitempty"`
	TileHeight  int      `json:"tileHeight,omitempty"`
	Tiles       [][]int  `json:"tiles"`
	PlayerSpawn *Point   `json:"playerSpawn"`
	Objects     []Object `json:"objects,omitempty"`
}

// Point is a pixel-space position.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Object is an extra level entity (checkpoints, messages and the like).
// The sim does not consume these; convert carries them through to TMX so
// editors keep them.
type Object struct {
	Type       string            `json:"type"`
	X          int               `json:"x"`
	Y          int               `json:"y"`
	Properties map[string]string `json:"properties,omitempty"`
}

func (l *LevelFile) tileWidth() int {
	if l.TileWidth > 0 {
		return l.TileWidth
	}
	return defaultTileSize
}

func (l *LevelFile) tileHeight() int {
	if l.TileHeight > 0 {
		return l.TileHeight
	}
	return defaultTileSize
}

// Validate checks the constraints the level tooling has always enforced:
// dimensions 1-256, tile ids 0-255, a full row-major grid, the spawn
// inside pixel bounds and at most 256 objects. All problems found are
// reported in one error.
func (l *LevelFile) Validate() error {
	var problems []string

	if l.Name == "" {
		problems = append(problems, "missing required field: name")
	}
	if l.Tiles == nil {
		problems = append(problems, "missing required field: tiles")
	}
	if l.PlayerSpawn == nil {
		problems = append(problems, "missing required field: playerSpawn")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid level: %s", strings.Join(problems, "; "))
	}

	if l.Width <= 0 || l.Width > 256 {
		problems = append(problems, fmt.Sprintf("invalid width: %d (must be 1-256)", l.Width))
	}
	if l.Height <= 0 || l.Height > 256 {
		problems = append(problems, fmt.Sprintf("invalid height: %d (must be 1-256)", l.Height))
	}

	if len(l.Tiles) != l.Height {
		problems = append(problems, fmt.Sprintf("tiles array has %d rows, expected %d", len(l.Tiles), l.Height))
	}
	for i, row := range l.Tiles {
		if len(row) != l.Width {
			problems = append(problems, fmt.Sprintf("row %d has %d columns, expected %d", i, len(row), l.Width))
		}
		for j, id := range row {
			if id < 0 || id > 255 {
				problems = append(problems, fmt.Sprintf("invalid tile id at (%d,%d): %d", i, j, id))
			}
		}
	}

	widthPx := l.Width * l.tileWidth()
	heightPx := l.Height * l.tileHeight()
	if l.PlayerSpawn.X < 0 || l.PlayerSpawn.X >= widthPx {
		problems = append(problems, fmt.Sprintf("playerSpawn.x (%d) out of bounds (0-%d)", l.PlayerSpawn.X, widthPx-1))
	}
	if l.PlayerSpawn.Y < 0 || l.PlayerSpawn.Y >= heightPx {
		problems = append(problems, fmt.Sprintf("playerSpawn.y (%d) out of bounds (0-%d)", l.PlayerSpawn.Y, heightPx-1))
	}

	if len(l.Objects) > 256 {
		problems = append(problems, fmt.Sprintf("too many objects: %d (max 256)", len(l.Objects)))
	}
	for i, o := range l.Objects {
		if o.Type == "" {
			problems = append(problems, fmt.Sprintf("object %d missing type", i))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid level: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ReadFile loads and validates a JSON level.
func ReadFile(path string) (*LevelFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	var l LevelFile
	if err := json.Unmarshal(raw, &l); err != nil {
		return nil, fmt.Errorf("parse level %s: %w", path, err)
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &l, nil
}

// ToLevel converts the validated file straight into a core level, without
// the TMX detour. The collision mask covers the terrain-range ids the grid
// actually uses, which is also what WriteTMX records, so both paths yield
// the same world.
func (l *LevelFile) ToLevel() *core.Level {
	lv := core.NewLevel(l.Name, l.Width, l.Height)
	mask := core.NewTileMask()
	for y, row := range l.Tiles {
		for x, id := range row {
			lv.SetTile(x, y, uint16(id))
			if core.DefaultSolid(uint16(id)) {
				mask.Mark(uint16(id))
			}
		}
	}
	if !mask.Empty() {
		lv.Collision = mask
	}
	lv.SpawnX = l.PlayerSpawn.X
	lv.SpawnY = l.PlayerSpawn.Y
	lv.Background = l.Background
	return lv
}

// The tmx* types cover the slice of the TMX format convert emits: one
// inline tileset, one CSV tile layer, one object group.
type tmxMap struct {
	XMLName      xml.Name       `xml:"map"`
	Version      string         `xml:"version,attr"`
	Orientation  string         `xml:"orientation,attr"`
	RenderOrder  string         `xml:"renderorder,attr"`
	Width        int            `xml:"width,attr"`
	Height       int            `xml:"height,attr"`
	TileWidth    int            `xml:"tilewidth,attr"`
	TileHeight   int            `xml:"tileheight,attr"`
	Infinite     int            `xml:"infinite,attr"`
	NextLayerID  int            `xml:"nextlayerid,attr"`
	NextObjectID int            `xml:"nextobjectid,attr"`
	Properties   *tmxProperties `xml:"properties"`
	Tileset      tmxTileset     `xml:"tileset"`
	Layer        tmxLayer       `xml:"layer"`
	ObjectGroup  tmxObjectGroup `xml:"objectgroup"`
}

type tmxProperties struct {
	List []tmxProperty `xml:"property"`
}

type tmxProperty struct {
	Name  string `xml:"name,attr"`
	Type  string `xml:"type,attr,omitempty"`
	Value string `xml:"value,attr"`
}

type tmxTileset struct {
	FirstGID   int              `xml:"firstgid,attr"`
	Name       string           `xml:"name,attr"`
	TileWidth  int              `xml:"tilewidth,attr"`
	TileHeight int              `xml:"tileheight,attr"`
	TileCount  int              `xml:"tilecount,attr"`
	Columns    int              `xml:"columns,attr"`
	Tiles      []tmxTilesetTile `xml:"tile"`
}

type tmxTilesetTile struct {
	ID         int           `xml:"id,attr"`
	Properties tmxProperties `xml:"properties"`
}

type tmxLayer struct {
	ID     int     `xml:"id,attr"`
	Name   string  `xml:"name,attr"`
	Width  int     `xml:"width,attr"`
	Height int     `xml:"height,attr"`
	Data   tmxData `xml:"data"`
}

type tmxData struct {
	Encoding string `xml:"encoding,attr"`
	Text     string `xml:",chardata"`
}

type tmxObjectGroup struct {
	ID      int         `xml:"id,attr"`
	Name    string      `xml:"name,attr"`
	Objects []tmxObject `xml:"object"`
}

type tmxObject struct {
	ID         int            `xml:"id,attr"`
	Name       string         `xml:"name,attr"`
	Type       string         `xml:"type,attr"`
	X          int            `xml:"x,attr"`
	Y          int            `xml:"y,attr"`
	Point      *struct{}      `xml:"point"`
	Properties *tmxProperties `xml:"properties"`
}

func solidProps() tmxProperties {
	return tmxProperties{List: []tmxProperty{{Name: "solid", Type: "bool", Value: "true"}}}
}

// WriteTMX renders the level as a Tiled map: a single inline tileset
// starting at gid 1 so tile ids carry over unchanged, a CSV tile layer,
// and an Objects group holding the player spawn plus any extra objects.
// Terrain-range ids present in the grid are marked solid in the tileset,
// making the output self-describing for the loader.
func (l *LevelFile) WriteTMX(w io.Writer) error {
	used := make(map[int]bool)
	var csv strings.Builder
	csv.WriteByte('\n')
	for y, row := range l.Tiles {
		for x, id := range row {
			if core.DefaultSolid(uint16(id)) {
				used[id] = true
			}
			csv.WriteString(strconv.Itoa(id))
			if x < len(row)-1 || y < len(l.Tiles)-1 {
				csv.WriteByte(',')
			}
		}
		csv.WriteByte('\n')
	}

	solid := make([]int, 0, len(used))
	for id := range used {
		solid = append(solid, id)
	}
	sort.Ints(solid)

	ts := tmxTileset{
		FirstGID:   1,
		Name:       "terrain",
		TileWidth:  l.tileWidth(),
		TileHeight: l.tileHeight(),
		TileCount:  256,
		Columns:    16,
	}
	for _, id := range solid {
		ts.Tiles = append(ts.Tiles, tmxTilesetTile{ID: id - 1, Properties: solidProps()})
	}

	m := tmxMap{
		Version:      "1.10",
		Orientation:  "orthogonal",
		RenderOrder:  "right-down",
		Width:        l.Width,
		Height:       l.Height,
		TileWidth:    l.tileWidth(),
		TileHeight:   l.tileHeight(),
		NextLayerID:  3,
		NextObjectID: len(l.Objects) + 2,
		Tileset:      ts,
		Layer: tmxLayer{
			ID:     1,
			Name:   "Tile Layer 1",
			Width:  l.Width,
			Height: l.Height,
			Data:   tmxData{Encoding: "csv", Text: csv.String()},
		},
	}

	var props tmxProperties
	if l.Name != "" {
		props.List = append(props.List, tmxProperty{Name: "name", Value: l.Name})
	}
	if l.Author != "" {
		props.List = append(props.List, tmxProperty{Name: "author", Value: l.Author})
	}
	if l.Background != "" {
		props.List = append(props.List, tmxProperty{Name: "background", Value: l.Background})
	}
	if len(props.List) > 0 {
		m.Properties = &props
	}

	og := tmxObjectGroup{ID: 2, Name: "Objects"}
	og.Objects = append(og.Objects, tmxObject{
		ID:    1,
		Name:  "PlayerSpawn",
		Type:  "PlayerSpawn",
		X:     l.PlayerSpawn.X,
		Y:     l.PlayerSpawn.Y,
		Point: &struct{}{},
	})
	for i, o := range l.Objects {
		obj := tmxObject{ID: i + 2, Name: o.Type, Type: o.Type, X: o.X, Y: o.Y}
		if len(o.Properties) > 0 {
			keys := make([]string, 0, len(o.Properties))
			for k := range o.Properties {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			op := &tmxProperties{}
			for _, k := range keys {
				op.List = append(op.List, tmxProperty{Name: k, Value: o.Properties[k]})
			}
			obj.Properties = op
		}
		og.Objects = append(og.Objects, obj)
	}
	m.ObjectGroup = og

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write TMX: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", " ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode TMX: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Convert reads a JSON level and writes the TMX next to it or at dst.
func Convert(src, dst string) error {
	l, err := ReadFile(src)
	if err != nil {
		return err
	}
	if dst == "" {
		dst = strings.TrimSuffix(src, ".json") + ".tmx"
	}
	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if err := l.WriteTMX(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
