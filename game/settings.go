package game

import (
	"errors"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Settings is the user-editable configuration, stored as TOML next to the
// executable. Unknown keys are ignored so older files keep loading.
type Settings struct {
	// Backend selects the rendering backend by name ("sdl2", "ebiten").
	// Empty picks the default.
	Backend string `toml:"backend"`
	// Vsync synchronizes presentation to the display refresh.
	Vsync bool `toml:"vsync"`
	// DebugOverlay shows the frame-time panel.
	DebugOverlay bool `toml:"debug_overlay"`
	// GodMode skips damage handling. Kept here so save-editing the file
	// works the same as the original engine's debug builds.
	GodMode bool `toml:"god_mode"`
}

// DefaultSettings returns the configuration used when no file exists yet.
func DefaultSettings() Settings {
	return Settings{
		Backend:      "",
		Vsync:        true,
		DebugOverlay: false,
	}
}

// LoadSettings reads a TOML settings file. A missing file is not an error;
// defaults are returned so first launch works without setup.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, err
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), err
	}
	return s, nil
}

// Save writes the settings back as TOML.
func (s Settings) Save(path string) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
