// Package settings remembers a few user choices between runs: the last
// overlay mode and the sound options. Storage goes through gdata, which
// picks the per-user data directory for the platform.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application directory.
const AppName = "stream_overlay"

const (
	settingsObject   = "settings"
	settingsProperty = "overlay"
)

type Settings struct {
	Overlay      string  `yaml:"overlay"`
	SoundEnabled bool    `yaml:"soundEnabled"`
	Volume       float64 `yaml:"volume"`
}

func Defaults() *Settings {
	return &Settings{
		Overlay:      "hud",
		SoundEnabled: true,
		Volume:       0.6,
	}
}

// Manager loads and saves Settings. A nil gdata manager keeps everything in
// memory.
type Manager struct {
	store    *gdata.Manager
	settings *Settings
}

// Open creates the gdata store for AppName and loads saved settings.
// Failing to open the store is not fatal: the manager runs in memory.
func Open() *Manager {
	store, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[Settings] storage unavailable, settings won't persist: %v", err)
		store = nil
	}
	return NewManager(store)
}

func NewManager(store *gdata.Manager) *Manager {
	m := &Manager{store: store, settings: Defaults()}
	if err := m.Load(); err != nil {
		log.Printf("[Settings] %v (using defaults)", err)
	}
	return m
}

// Load replaces the in-memory settings with the saved ones, or the defaults
// if nothing was saved.
func (m *Manager) Load() error {
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		m.settings = Defaults()
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		m.settings = Defaults()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := Defaults()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		m.settings = Defaults()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.Volume = clampVolume(loaded.Volume)
	m.settings = loaded
	log.Printf("[Settings] loaded: overlay=%s sound=%v volume=%.2f", loaded.Overlay, loaded.SoundEnabled, loaded.Volume)
	return nil
}

func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}
	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	log.Printf("[Settings] saved")
	return nil
}

func (m *Manager) Settings() Settings {
	return *m.settings
}

func (m *Manager) SetOverlay(mode string) {
	m.settings.Overlay = mode
}

func (m *Manager) SetSoundEnabled(enabled bool) {
	m.settings.SoundEnabled = enabled
}

// SetVolume stores volume clamped to [0, 1].
func (m *Manager) SetVolume(volume float64) {
	m.settings.Volume = clampVolume(volume)
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
