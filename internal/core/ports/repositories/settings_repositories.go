package repositories

import (
	"context"

	"github.com/emjayi/price_converter/internal/core/domain"
)

// SettingsReader defines read operations for the persisted plugin settings.
type SettingsReader interface {
	// FindSettings returns the stored settings, or apperrors.ErrNotFound if none were saved yet.
	FindSettings(ctx context.Context) (*domain.Settings, error)
}

// SettingsWriter defines write operations for the persisted plugin settings.
type SettingsWriter interface {
	// SaveSettings replaces the stored settings document.
	SaveSettings(ctx context.Context, settings domain.Settings) error
}

// SettingsRepositoryFacade combines all settings repository interfaces
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
}
