package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Mode != "3d" {
		t.Errorf("expected mode 3d, got %s", cfg.Mode)
	}
	if cfg.Resolution <= 0 {
		t.Error("resolution should be positive")
	}
	if cfg.Courant <= 0 || cfg.Courant >= 1 {
		t.Errorf("courant should be in (0, 1), got %f", cfg.Courant)
	}
	if len(cfg.Sources) == 0 {
		t.Error("default config should carry a source")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := GetPreset("dielectric", "slab")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Mode != cfg.Mode {
		t.Errorf("expected mode %s, got %s", cfg.Mode, got.Mode)
	}
	if len(got.Objects) != len(cfg.Objects) {
		t.Errorf("expected %d objects, got %d", len(cfg.Objects), len(got.Objects))
	}
	if got.Objects[0].Material.Index != 2.0 {
		t.Errorf("expected slab index 2.0, got %f", got.Objects[0].Material.Index)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("vacuum", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "cw"); cfg != nil {
		t.Error("expected nil for nonexistent group")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("vacuum")
	if len(presets) == 0 {
		t.Error("expected presets for vacuum")
	}

	if presets = ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent group")
	}
}

func TestPresetsWellFormed(t *testing.T) {
	for group, byName := range Presets {
		for name, cfg := range byName {
			if cfg.Resolution <= 0 {
				t.Errorf("%s/%s: resolution should be positive", group, name)
			}
			if cfg.Steps <= 0 {
				t.Errorf("%s/%s: steps should be positive", group, name)
			}
			if cfg.Mode == "" {
				t.Errorf("%s/%s: mode missing", group, name)
			}
			if len(cfg.Sources) == 0 {
				t.Errorf("%s/%s: no sources", group, name)
			}
		}
	}
}
