package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/chromcmm/internal/core/domain"
	"github.com/custodia-labs/chromcmm/internal/core/ports/driven"
	"github.com/custodia-labs/chromcmm/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyLinkRadius    = "links.radius"
	KeyLinkPalette   = "links.palette"
	KeyTrackColormap = "track.colormap"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	colormaps   driven.ColormapRegistry
}

// NewSettingsService creates a new settings service.
// colormaps may be nil, in which case colormap names are not validated.
func NewSettingsService(configStore driven.ConfigStore, colormaps driven.ColormapRegistry) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		colormaps:   colormaps,
	}
}

// Get retrieves current settings with defaults applied.
func (s *SettingsService) Get() (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	if r, ok := s.configStore.GetFloat(KeyLinkRadius); ok {
		if r <= 0 {
			return nil, fmt.Errorf("%w: %s must be positive, got %v", domain.ErrInvalidInput, KeyLinkRadius, r)
		}
		settings.Links.Radius = r
	}
	if p := s.configStore.GetString(KeyLinkPalette); p != "" {
		settings.Links.PalettePath = p
	}
	if c := s.configStore.GetString(KeyTrackColormap); c != "" {
		settings.Track.Colormap = c
	}

	return &settings, nil
}

// Set validates and stores a single setting.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case KeyLinkRadius:
		r, err := strconv.ParseFloat(value, 64)
		if err != nil || r <= 0 {
			return fmt.Errorf("%w: %s must be a positive number, got %q", domain.ErrInvalidInput, key, value)
		}
		return s.save(key, r)
	case KeyLinkPalette:
		return s.save(key, value)
	case KeyTrackColormap:
		if s.colormaps != nil {
			if _, err := s.colormaps.Lookup(value); err != nil {
				return err
			}
		}
		return s.save(key, value)
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

func (s *SettingsService) save(key string, value any) error {
	if err := s.configStore.Set(key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Unset restores a setting to its default.
func (s *SettingsService) Unset(key string) error {
	if !isSettingKey(key) {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	if err := s.configStore.Unset(key); err != nil {
		return fmt.Errorf("unset %s: %w", key, err)
	}
	return nil
}

// Keys returns the recognised setting keys.
func (s *SettingsService) Keys() []string {
	return []string{KeyLinkRadius, KeyLinkPalette, KeyTrackColormap}
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func isSettingKey(key string) bool {
	switch key {
	case KeyLinkRadius, KeyLinkPalette, KeyTrackColormap:
		return true
	default:
		return false
	}
}
