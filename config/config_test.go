package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PanStep != 40 || cfg.MinBoxSize != 3 || len(cfg.DefaultClasses) != 1 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoad_ClampsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"pan_step": -5, "min_box_size": 0, "default_classes": [], "decode_cache_size": -1, "window_width": 10}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.PanStep != 40 || cfg.MinBoxSize != 3 || cfg.DecodeCacheSize != 0 || cfg.WindowWidth != 1200 {
		t.Fatalf("values not clamped: %+v", cfg)
	}
	if len(cfg.DefaultClasses) != 1 || cfg.DefaultClasses[0] != "object" {
		t.Fatalf("default classes not restored: %v", cfg.DefaultClasses)
	}
}

func TestLoad_BadJSONReturnsDefaultsAndError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if cfg == nil || cfg.PanStep != 40 {
		t.Fatalf("expected defaults alongside the error")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := DefaultConfig()
	cfg.Debug = true
	cfg.DefaultClasses = []string{"cat", "dog"}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !back.Debug || len(back.DefaultClasses) != 2 || back.DefaultClasses[1] != "dog" {
		t.Fatalf("round trip mismatch: %+v", back)
	}
}
