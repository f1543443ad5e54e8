package aggregate

import (
	"context"
	"log/slog"
	"time"

	"mediashelf/internal/cachestore"
	"mediashelf/internal/catalog"
	"mediashelf/internal/logging"
)

// Lister supplies entity list snapshots for aggregation. The catalog store
// satisfies it.
type Lister interface {
	List(ctx context.Context, kind catalog.Kind) ([]catalog.Entity, error)
}

// Aggregator computes distinct metadata values and library statistics with
// cache-aside reads over a shared cache store.
type Aggregator struct {
	lister      Lister
	cache       *cachestore.Store
	metadataTTL time.Duration
	statsTTL    time.Duration
	logger      *slog.Logger
}

// New builds an aggregator. TTLs of zero or below store cache entries
// without expiry.
func New(lister Lister, cache *cachestore.Store, metadataTTL, statsTTL time.Duration, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		lister:      lister,
		cache:       cache,
		metadataTTL: metadataTTL,
		statsTTL:    statsTTL,
		logger:      logging.NewComponentLogger(logger, "aggregate"),
	}
}
