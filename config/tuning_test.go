package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/skelly-dash/core"
)

func TestLoadTuningEmptyPathIsDefaults(t *testing.T) {
	got, err := LoadTuning("")
	if err != nil {
		t.Fatalf("LoadTuning(\"\") error: %v", err)
	}
	if got != core.DefaultTuning() {
		t.Errorf("LoadTuning(\"\") = %+v, want defaults", got)
	}
}

func TestLoadTuningOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	src := "gravity: 96\ndashFrames: 12\nflatGround: true\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning() error: %v", err)
	}
	if got.Gravity != 96 {
		t.Errorf("Gravity = %d, want 96", got.Gravity)
	}
	if got.DashFrames != 12 {
		t.Errorf("DashFrames = %d, want 12", got.DashFrames)
	}
	if !got.FlatGround {
		t.Error("FlatGround = false, want true")
	}

	// Everything absent from the file keeps its default.
	def := core.DefaultTuning()
	if got.JumpImpulse != def.JumpImpulse || got.TileSize != def.TileSize {
		t.Errorf("unset fields changed: JumpImpulse=%d TileSize=%d", got.JumpImpulse, got.TileSize)
	}
}

func TestLoadTuningRejectsBadFile(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadTuning(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadTuning(missing) = nil error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("gravity: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTuning(bad); err == nil {
		t.Error("LoadTuning(malformed) = nil error")
	}

	zero := filepath.Join(dir, "zero.yaml")
	if err := os.WriteFile(zero, []byte("tileSize: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTuning(zero); err == nil {
		t.Error("LoadTuning(tileSize 0) = nil error")
	}
}
