package pgsql

import (
	portsrepo "github.com/emjayi/price_converter/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SettingsRepo:     newPgxSettingsRepository(dbPool),
		PriceSourceRepo:  newPgxPriceSourceRepository(dbPool),
		PriceHistoryRepo: newPgxPriceHistoryRepository(dbPool),
		PlatformPrices:   newPgxCatalogRepository(dbPool),
	}
}
