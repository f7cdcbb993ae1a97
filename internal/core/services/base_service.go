package services

import (
	"context"
	"log/slog"

	"github.com/emjayi/price_converter/internal/core/domain"
	"github.com/emjayi/price_converter/internal/middleware"
)

// BaseService provides common functionality for the persistence-backed services
type BaseService struct {
	// StoreCurrency is the platform's default currency, used for catalog prices.
	StoreCurrency string
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// snapshotOf builds the per-request rate settings. A malformed custom rate
// table is logged and left out; the rest of the snapshot stays usable.
func (s *BaseService) snapshotOf(ctx context.Context, settings domain.Settings) domain.RateSettings {
	rs, err := settings.Snapshot(s.StoreCurrency)
	if err != nil {
		s.GetLogger(ctx).Warn("Ignoring malformed pricing configuration", slog.String("error", err.Error()))
	}
	return rs
}
