package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DefaultGradient != DefaultGradientSpec {
		t.Errorf("expected gradient %s, got %s", DefaultGradientSpec, cfg.DefaultGradient)
	}
	if cfg.Resolution <= 0 {
		t.Error("sample resolution should be positive")
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("expected log level %s, got %s", DefaultLogLevel, cfg.Log.Level)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = "/data/sim_output"
	cfg.Decode.DropZeros = true
	cfg.Decode.ExcludedNodeIDs = []uint32{1001, 1002}

	path := filepath.Join(t.TempDir(), "vistools.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.DataDir != cfg.DataDir {
		t.Errorf("expected data dir %s, got %s", cfg.DataDir, loaded.DataDir)
	}
	if !loaded.Decode.DropZeros {
		t.Error("drop_zeros should survive round-trip")
	}
	if len(loaded.Decode.ExcludedNodeIDs) != 2 {
		t.Errorf("expected 2 excluded nodes, got %d", len(loaded.Decode.ExcludedNodeIDs))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("sparse")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if !cfg.Decode.DropZeros {
		t.Error("sparse preset should drop zeros")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets()) == 0 {
		t.Error("expected at least one preset")
	}
}
