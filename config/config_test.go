package config

import (
	"os"
	"path/filepath"
	"testing"
)

func useTempConfig(t *testing.T) {
	t.Helper()
	origDir, origPath := configDir, configPath
	configDir = t.TempDir()
	configPath = filepath.Join(configDir, "config.json")
	t.Cleanup(func() {
		configDir, configPath = origDir, origPath
	})
}

func TestLoadConfigWritesDefaultsWhenMissing(t *testing.T) {
	useTempConfig(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Palette != "blue" {
		t.Fatalf("default palette = %q, want %q", cfg.Palette, "blue")
	}
	if _, err := os.Stat(configPath); err != nil {
		t.Fatalf("default config not written: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	useTempConfig(t)

	if err := SaveConfig(&Config{Palette: "red"}); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Palette != "red" {
		t.Fatalf("palette = %q after round trip, want %q", cfg.Palette, "red")
	}
}

func TestLoadConfigRecoversFromCorruptFile(t *testing.T) {
	useTempConfig(t)

	if err := os.WriteFile(configPath, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Palette != "blue" {
		t.Fatalf("palette = %q after corrupt load, want default %q", cfg.Palette, "blue")
	}
}
