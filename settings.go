package window

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default display settings.
const (
	DefaultWidth     uint = 1280
	DefaultHeight    uint = 720
	DefaultFramerate int  = -1
)

// DisplaySettings is the live view over persisted display configuration.
// The runtime keeps a non-owning pointer to it and mirrors the Fullscreen
// setting into the window.
type DisplaySettings struct {
	Width      *Setting[uint]
	Height     *Setting[uint]
	Fullscreen *Setting[bool]
	// Framerate is the presentation cap in frames per second; -1 disables
	// the cap and relies on vsync.
	Framerate *Setting[int]
	// Samples is the multisample count, read once at initialization.
	Samples *Setting[uint]
}

// displaySettingsFile is the on-disk representation.
type displaySettingsFile struct {
	Width      uint `yaml:"width"`
	Height     uint `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	Framerate  int  `yaml:"framerate"`
	Samples    uint `yaml:"samples"`
}

// DefaultDisplaySettings returns settings for a 1280x720 vsynced window.
func DefaultDisplaySettings() *DisplaySettings {
	return &DisplaySettings{
		Width:      NewSetting(DefaultWidth),
		Height:     NewSetting(DefaultHeight),
		Fullscreen: NewSetting(false),
		Framerate:  NewSetting(DefaultFramerate),
		Samples:    NewSetting[uint](0),
	}
}

// LoadDisplaySettings reads settings from a YAML file. A missing file yields
// the defaults.
func LoadDisplaySettings(path string) (*DisplaySettings, error) {
	s := DefaultDisplaySettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read display settings: %w", err)
	}

	raw := s.snapshot()
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse display settings %s: %w", path, err)
	}
	s.apply(raw)
	return s, nil
}

// Save writes the settings to path as YAML, creating parent directories.
func (s *DisplaySettings) Save(path string) error {
	data, err := yaml.Marshal(s.snapshot())
	if err != nil {
		return fmt.Errorf("encode display settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write display settings: %w", err)
	}
	return nil
}

func (s *DisplaySettings) snapshot() displaySettingsFile {
	return displaySettingsFile{
		Width:      s.Width.Get(),
		Height:     s.Height.Get(),
		Fullscreen: s.Fullscreen.Get(),
		Framerate:  s.Framerate.Get(),
		Samples:    s.Samples.Get(),
	}
}

// apply stores raw through the setters so observers see loaded values.
func (s *DisplaySettings) apply(raw displaySettingsFile) {
	if raw.Width == 0 {
		raw.Width = DefaultWidth
	}
	if raw.Height == 0 {
		raw.Height = DefaultHeight
	}
	if raw.Framerate == 0 || raw.Framerate < -1 {
		raw.Framerate = DefaultFramerate
	}
	s.Width.Set(raw.Width)
	s.Height.Set(raw.Height)
	s.Fullscreen.Set(raw.Fullscreen)
	s.Framerate.Set(raw.Framerate)
	s.Samples.Set(raw.Samples)
}

// Reload re-reads path into the existing settings. Observers registered on
// the individual fields fire for every value that changed, which is how a
// config file edit reaches a live window.
func (s *DisplaySettings) Reload(path string) error {
	loaded, err := LoadDisplaySettings(path)
	if err != nil {
		return err
	}
	s.apply(loaded.snapshot())
	return nil
}
