package levels

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/skelly-dash/core"
)

func TestEmbeddedMeadow(t *testing.T) {
	lvs, names, err := Embedded()
	if err != nil {
		t.Fatalf("Embedded() error: %v", err)
	}
	if len(names) != 2 || names[0] != "cavern" || names[1] != "meadow" {
		t.Fatalf("Embedded() names = %v, want [cavern meadow]", names)
	}

	lv := lvs["meadow"]
	if lv.Width != 60 || lv.Height != 20 {
		t.Fatalf("meadow size = %dx%d, want 60x20", lv.Width, lv.Height)
	}
	if lv.SpawnX != 32 || lv.SpawnY != 128 {
		t.Errorf("meadow spawn = (%d,%d), want (32,128)", lv.SpawnX, lv.SpawnY)
	}
	if lv.Background != "sky" {
		t.Errorf("meadow background = %q, want sky", lv.Background)
	}

	// Solidity comes from the tileset's solid properties, not the id range.
	if lv.Collision == nil {
		t.Fatal("meadow has no collision mask")
	}
	for _, id := range []uint16{1, 2, 3} {
		if !lv.Solid(id) {
			t.Errorf("Solid(%d) = false, want true", id)
		}
	}
	if lv.Solid(60) {
		t.Error("Solid(60) = true, want false (decal)")
	}
	if lv.Solid(55) {
		t.Error("Solid(55) = true, want false (mask overrides the id range)")
	}

	// Spot checks against the authored terrain.
	if got := lv.TileAt(0, 17); got != 1 {
		t.Errorf("TileAt(0,17) = %d, want 1 (grass surface)", got)
	}
	if got := lv.TileAt(0, 18); got != 2 {
		t.Errorf("TileAt(0,18) = %d, want 2 (dirt)", got)
	}
	if got := lv.TileAt(5, 16); got != 60 {
		t.Errorf("TileAt(5,16) = %d, want 60 (grass tuft)", got)
	}
	if lv.SolidAt(25, 17) {
		t.Error("SolidAt(25,17) = true, want false (pit)")
	}
	if !lv.SolidAt(40, 14) {
		t.Error("SolidAt(40,14) = false, want true (stone wall)")
	}
}

func TestEmbeddedCavern(t *testing.T) {
	lvs, _, err := Embedded()
	if err != nil {
		t.Fatalf("Embedded() error: %v", err)
	}

	lv := lvs["cavern"]
	if lv.Width != 40 || lv.Height != 30 {
		t.Fatalf("cavern size = %dx%d, want 40x30", lv.Width, lv.Height)
	}
	if lv.SpawnX != 48 || lv.SpawnY != 208 {
		t.Errorf("cavern spawn = (%d,%d), want (48,208)", lv.SpawnX, lv.SpawnY)
	}
	if lv.Background != "cave" {
		t.Errorf("cavern background = %q, want cave", lv.Background)
	}
	if !lv.SolidAt(0, 10) || !lv.SolidAt(39, 10) {
		t.Error("side walls not solid")
	}
	if !lv.SolidAt(5, 0) {
		t.Error("ceiling not solid")
	}
	// The underhang has a two-tile gap for corner-corrected jumps.
	if !lv.SolidAt(14, 8) || lv.SolidAt(15, 8) || lv.SolidAt(16, 8) || !lv.SolidAt(17, 8) {
		t.Error("underhang gap not at columns 15-16")
	}
}

// Every shipped level must put the player on the ground within a few
// frames of spawning.
func TestEmbeddedLevelsSimReady(t *testing.T) {
	lvs, names, err := Embedded()
	if err != nil {
		t.Fatalf("Embedded() error: %v", err)
	}
	for _, name := range names {
		s := core.NewSim(lvs[name], core.DefaultTuning())
		for i := 0; i < 10; i++ {
			s.Step(0)
		}
		if !s.Actor.OnGround {
			t.Errorf("%s: actor not grounded after 10 frames (y=%v vy=%v)", name, s.Actor.Y, s.Actor.VY)
		}
	}
}

func TestLoadRejectsMissingSpawn(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="8" tileheight="8" infinite="0">
 <tileset firstgid="1" name="terrain" tilewidth="8" tileheight="8" tilecount="256" columns="16"/>
 <layer id="1" name="Tile Layer 1" width="2" height="2">
  <data encoding="csv">
1,0,
0,1
</data>
 </layer>
</map>
`
	fsys := fstest.MapFS{"bad.tmx": &fstest.MapFile{Data: []byte(src)}}
	if _, err := Load(fsys, "bad.tmx"); err == nil || !strings.Contains(err.Error(), "PlayerSpawn") {
		t.Errorf("Load without spawn: err = %v, want PlayerSpawn error", err)
	}
}

// A JSON level converted to TMX and loaded back must be the same world as
// the direct conversion.
func TestConvertRoundTrip(t *testing.T) {
	lf := &LevelFile{
		Name:       "unit",
		Background: "cave",
		Width:      6,
		Height:     4,
		Tiles: [][]int{
			{0, 0, 0, 0, 0, 0},
			{0, 0, 60, 0, 0, 0},
			{1, 1, 1, 0, 1, 1},
			{2, 2, 2, 0, 2, 2},
		},
		PlayerSpawn: &Point{X: 12, Y: 8},
	}
	if err := lf.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}

	var buf bytes.Buffer
	if err := lf.WriteTMX(&buf); err != nil {
		t.Fatalf("WriteTMX() error: %v", err)
	}

	fsys := fstest.MapFS{"unit.tmx": &fstest.MapFile{Data: buf.Bytes()}}
	got, err := Load(fsys, "unit.tmx")
	if err != nil {
		t.Fatalf("Load(converted) error: %v", err)
	}
	want := lf.ToLevel()

	if got.Name != want.Name || got.Width != want.Width || got.Height != want.Height {
		t.Fatalf("loaded %s %dx%d, want %s %dx%d",
			got.Name, got.Width, got.Height, want.Name, want.Width, want.Height)
	}
	if got.SpawnX != want.SpawnX || got.SpawnY != want.SpawnY {
		t.Errorf("spawn = (%d,%d), want (%d,%d)", got.SpawnX, got.SpawnY, want.SpawnX, want.SpawnY)
	}
	if got.Background != "cave" || want.Background != "cave" {
		t.Errorf("background = %q/%q, want cave on both paths", got.Background, want.Background)
	}
	for y := 0; y < want.Height; y++ {
		for x := 0; x < want.Width; x++ {
			if got.TileAt(x, y) != want.TileAt(x, y) {
				t.Errorf("TileAt(%d,%d) = %d, want %d", x, y, got.TileAt(x, y), want.TileAt(x, y))
			}
		}
	}
	for _, id := range []uint16{1, 2} {
		if !got.Solid(id) || !want.Solid(id) {
			t.Errorf("Solid(%d) = %v/%v, want true on both paths", id, got.Solid(id), want.Solid(id))
		}
	}
	// The decal is not solid, and unused terrain ids stay out of the mask.
	if got.Solid(60) || got.Solid(3) {
		t.Errorf("Solid(60)=%v Solid(3)=%v, want false", got.Solid(60), got.Solid(3))
	}
}

func validFile() *LevelFile {
	return &LevelFile{
		Name:   "ok",
		Width:  3,
		Height: 2,
		Tiles: [][]int{
			{0, 0, 0},
			{1, 1, 1},
		},
		PlayerSpawn: &Point{X: 12, Y: 4},
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*LevelFile)
		wantErr string
	}{
		{"valid", func(l *LevelFile) {}, ""},
		{"no name", func(l *LevelFile) { l.Name = "" }, "missing required field: name"},
		{"no tiles", func(l *LevelFile) { l.Tiles = nil }, "missing required field: tiles"},
		{"no spawn", func(l *LevelFile) { l.PlayerSpawn = nil }, "missing required field: playerSpawn"},
		{"zero width", func(l *LevelFile) { l.Width = 0 }, "invalid width"},
		{"huge height", func(l *LevelFile) { l.Height = 257 }, "invalid height"},
		{"ragged row", func(l *LevelFile) { l.Tiles[1] = []int{1} }, "row 1 has 1 columns"},
		{"row count", func(l *LevelFile) { l.Tiles = l.Tiles[:1] }, "tiles array has 1 rows"},
		{"tile too big", func(l *LevelFile) { l.Tiles[0][1] = 256 }, "invalid tile id at (0,1)"},
		{"tile negative", func(l *LevelFile) { l.Tiles[1][2] = -1 }, "invalid tile id at (1,2)"},
		{"spawn x high", func(l *LevelFile) { l.PlayerSpawn.X = 24 }, "playerSpawn.x (24) out of bounds"},
		{"spawn y low", func(l *LevelFile) { l.PlayerSpawn.Y = -1 }, "playerSpawn.y (-1) out of bounds"},
		{"object no type", func(l *LevelFile) { l.Objects = []Object{{X: 1, Y: 1}} }, "object 0 missing type"},
		{
			"too many objects",
			func(l *LevelFile) {
				l.Objects = make([]Object, 257)
				for i := range l.Objects {
					l.Objects[i].Type = "msg"
				}
			},
			"too many objects: 257",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := validFile()
			tc.mutate(l)
			err := l.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("Validate() = %v, want error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	l := validFile()
	l.Width = 0
	l.Tiles[0][0] = 999
	err := l.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	for _, want := range []string{"invalid width", "invalid tile id"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() = %v, missing %q", err, want)
		}
	}
}

func TestWriteTMXMarksUsedTerrain(t *testing.T) {
	l := validFile()
	l.Tiles[0][0] = 60
	var buf bytes.Buffer
	if err := l.WriteTMX(&buf); err != nil {
		t.Fatalf("WriteTMX() error: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, `<tile id="0">`) {
		t.Error("terrain id 1 not marked solid in tileset")
	}
	if strings.Contains(out, `<tile id="59">`) {
		t.Error("decal id 60 marked solid")
	}
	if !strings.Contains(out, `name="PlayerSpawn"`) {
		t.Error("no PlayerSpawn object in output")
	}
	if !strings.Contains(out, `encoding="csv"`) {
		t.Error("tile layer not CSV encoded")
	}
}
