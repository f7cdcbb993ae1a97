package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/emjayi/price_converter/internal/apperrors"
	"github.com/emjayi/price_converter/internal/core/domain"
	portsrepo "github.com/emjayi/price_converter/internal/core/ports/repositories"
	"github.com/emjayi/price_converter/internal/dto"
)

// SettingsService reads and updates the pricing configuration.
type SettingsService struct {
	BaseService
	repo portsrepo.SettingsRepositoryFacade
}

func NewSettingsService(repo portsrepo.SettingsRepositoryFacade, storeCurrency string) *SettingsService {
	return &SettingsService{
		BaseService: BaseService{StoreCurrency: storeCurrency},
		repo:        repo,
	}
}

// GetSettings returns the stored settings, or the defaults if none were saved.
func (s *SettingsService) GetSettings(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.repo.FindSettings(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			defaults := domain.DefaultSettings()
			return &defaults, nil
		}
		s.LogError(ctx, err, "Failed to load settings from repository")
		return nil, err
	}
	return settings, nil
}

// Snapshot never fails. Storage errors fall back to the defaults.
func (s *SettingsService) Snapshot(ctx context.Context) domain.RateSettings {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		s.GetLogger(ctx).Warn("Using default pricing settings", slog.String("error", err.Error()))
		defaults := domain.DefaultSettings()
		settings = &defaults
	}
	return s.snapshotOf(ctx, *settings)
}

// UpdateSettings applies the provided fields on top of the current settings.
func (s *SettingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, userID string) (*domain.Settings, error) {
	current, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := sanitizeSettings(*current, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if updated.CreatedAt.IsZero() {
		updated.CreatedAt = now
		updated.CreatedBy = userID
	}
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = userID

	if err := s.repo.SaveSettings(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to save settings")
		return nil, err
	}

	s.LogInfo(ctx, "Pricing settings updated",
		slog.String("user_id", userID),
		slog.String("fallback_mode", string(updated.FallbackMode)),
		slog.String("interest_mode", string(updated.InterestMode)))
	return &updated, nil
}

// sanitizeSettings validates req and merges it into current.
func sanitizeSettings(current domain.Settings, req dto.UpdateSettingsRequest) (domain.Settings, error) {
	out := current

	if req.ExchangeRate != nil {
		if req.ExchangeRate.IsNegative() {
			return out, fmt.Errorf("%w: exchange_rate must not be negative", apperrors.ErrValidation)
		}
		out.ExchangeRate = *req.ExchangeRate
	}
	if req.CurrencyFrom != nil {
		out.CurrencyFrom = domain.NormalizeCurrency(*req.CurrencyFrom)
	}
	if req.CurrencyTo != nil {
		out.CurrencyTo = domain.NormalizeCurrency(*req.CurrencyTo)
	}
	if req.AutoUpdate != nil {
		out.AutoUpdate = *req.AutoUpdate
	}
	if req.UpdateInterval != nil {
		out.UpdateInterval = strings.TrimSpace(*req.UpdateInterval)
	}
	if req.NavasanAPIKey != nil {
		out.NavasanAPIKey = strings.TrimSpace(*req.NavasanAPIKey)
	}
	if req.NavasanItem != nil {
		out.NavasanItem = strings.ToLower(strings.TrimSpace(*req.NavasanItem))
	}
	if req.CustomRates != nil {
		raw := strings.TrimSpace(*req.CustomRates)
		if _, err := domain.ParseStaticRates(raw); err != nil {
			return out, fmt.Errorf("%w: custom_rates must be a JSON object of currency to rate", apperrors.ErrValidation)
		}
		out.CustomRates = raw
	}
	if req.InterestMode != nil {
		mode, ok := domain.ParseMarkupMode(*req.InterestMode)
		if !ok || mode == domain.MarkupInherit {
			return out, fmt.Errorf("%w: interest_mode must be none, percent or fixed", apperrors.ErrValidation)
		}
		out.InterestMode = mode
	}
	if req.InterestValue != nil {
		if req.InterestValue.IsNegative() {
			return out, fmt.Errorf("%w: interest_value must not be negative", apperrors.ErrValidation)
		}
		out.InterestValue = *req.InterestValue
	}
	if req.FallbackMode != nil {
		switch mode := domain.FallbackMode(strings.ToLower(strings.TrimSpace(*req.FallbackMode))); mode {
		case domain.FallbackEnabled, domain.FallbackDisabled:
			out.FallbackMode = mode
		default:
			return out, fmt.Errorf("%w: fallback_mode must be enabled or disabled", apperrors.ErrValidation)
		}
	}
	return out, nil
}
