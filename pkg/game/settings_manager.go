package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the global, user-facing preferences. They are not part of a
// session and survive across runs.
type Settings struct {
	SoundEnabled bool    `yaml:"soundEnabled"`
	SoundVolume  float64 `yaml:"soundVolume"` // 0.0 ~ 1.0
	Fullscreen   bool    `yaml:"fullscreen"`
}

// DefaultSettings returns the stock preferences.
func DefaultSettings() *Settings {
	return &Settings{
		SoundEnabled: true,
		SoundVolume:  0.8,
		Fullscreen:   false,
	}
}

// SettingsManager loads and saves Settings through gdata. A nil gdata
// manager degrades to in-memory settings that are simply not persisted.
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *Settings
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager creates a manager and attempts to load saved
// settings. A failed load is not fatal; the defaults are used.
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[Settings] Warning: failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load reads settings from gdata. With no gdata manager or no saved file,
// the defaults are installed and nil is returned.
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	log.Printf("[Settings] Settings loaded")
	return nil
}

// Save writes the current settings to gdata. Without a gdata manager this
// is a no-op.
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[Settings] Settings saved")
	return nil
}

// GetSettings returns the live settings instance.
func (sm *SettingsManager) GetSettings() *Settings {
	return sm.settings
}

// SetSoundEnabled flips the sound toggle in memory; call Save to persist.
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// SetSoundVolume sets the sound volume, clamped to 0.0 ~ 1.0; call Save to
// persist.
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// SetFullscreen sets the fullscreen preference in memory; call Save to
// persist.
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
