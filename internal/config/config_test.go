package config

import (
	"path/filepath"
	"sort"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Group != DefaultGroup {
		t.Errorf("group = %s, want %s", cfg.Group, DefaultGroup)
	}
	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if cfg.Camera.Zoom <= 0 {
		t.Error("zoom should be positive")
	}
	if !cfg.ShowAxes || !cfg.ShowPlanes || !cfg.ShowCenter {
		t.Error("markers should default to visible")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xtal.yaml")

	cfg := DefaultConfig()
	cfg.Group = "32"
	cfg.System = "trigonal"
	cfg.Theme = "quartz"
	cfg.FPS = 60
	cfg.ShowPlanes = false
	cfg.Camera.Zoom = 1.5

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Group != "32" || loaded.System != "trigonal" || loaded.Theme != "quartz" {
		t.Errorf("loaded = %+v", loaded)
	}
	if loaded.FPS != 60 || loaded.ShowPlanes || loaded.Camera.Zoom != 1.5 {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPresets(t *testing.T) {
	if cam := GetPreset("iso"); cam == nil {
		t.Fatal("iso preset missing")
	}
	if cam := GetPreset("nonexistent"); cam != nil {
		t.Error("expected nil for unknown preset")
	}
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("ListPresets returned %d names, want %d", len(names), len(Presets))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("preset names not sorted: %v", names)
	}
}
