package services

import (
	"context"

	"github.com/emjayi/price_converter/internal/core/domain"
	"github.com/emjayi/price_converter/internal/dto"
)

// SettingsReaderSvc defines read operations for plugin settings
type SettingsReaderSvc interface {
	// GetSettings returns the stored settings, or the activation defaults.
	GetSettings(ctx context.Context) (*domain.Settings, error)

	// Snapshot loads the settings once and returns the per-request RateSettings.
	// It never fails: storage errors fall back to defaults and are logged.
	Snapshot(ctx context.Context) domain.RateSettings
}

// SettingsWriterSvc defines write operations for plugin settings
type SettingsWriterSvc interface {
	// UpdateSettings sanitizes and stores the submitted settings.
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, userID string) (*domain.Settings, error)
}

// SettingsSvcFacade combines all settings-related service interfaces
type SettingsSvcFacade interface {
	SettingsReaderSvc
	SettingsWriterSvc
}
