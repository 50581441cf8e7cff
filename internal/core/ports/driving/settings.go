package driving

import "github.com/custodia-labs/chromcmm/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings with defaults applied.
	Get() (*domain.Settings, error)

	// Set validates and stores a single setting.
	Set(key, value string) error

	// Unset restores a setting to its default.
	Unset(key string) error

	// Keys returns the recognised setting keys.
	Keys() []string

	// Path returns where settings are stored.
	Path() string
}
