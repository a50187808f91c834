package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("settings = %+v, want defaults %+v", s, DefaultSettings())
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	want := Settings{
		Backend:      "ebiten",
		Vsync:        false,
		DebugOverlay: true,
		GodMode:      true,
	}

	if err := want.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestLoadSettingsPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("debug_overlay = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if !got.DebugOverlay {
		t.Error("debug_overlay not read")
	}
	if !got.Vsync {
		t.Error("unset vsync lost its default")
	}
}

func TestLoadSettingsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("vsync = {"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadSettings(path)
	if err == nil {
		t.Fatal("LoadSettings accepted malformed TOML")
	}
	if got != DefaultSettings() {
		t.Errorf("settings = %+v, want defaults on parse failure", got)
	}
}
