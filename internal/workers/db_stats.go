package workers

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-item-reviews/internal/logger"
	"github.com/MKhiriev/go-item-reviews/internal/metrics"
)

// StatsSource is satisfied by *sql.DB and by store.DB.
type StatsSource interface {
	Stats() sql.DBStats
}

// DBStatsWorker exports connection pool statistics at a fixed interval.
type DBStatsWorker struct {
	db       StatsSource
	interval time.Duration
	logger   *logger.Logger
}

func NewDBStatsWorker(db StatsSource, interval time.Duration, logger *logger.Logger) *DBStatsWorker {
	return &DBStatsWorker{db: db, interval: interval, logger: logger}
}

func (w *DBStatsWorker) Run(ctx context.Context) error {
	if w.interval <= 0 {
		w.logger.Info().Msg("db stats worker disabled")
		return nil
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.record()
	for {
		select {
		case <-ctx.Done():
			w.logger.Debug().Msg("db stats worker stopped")
			return nil
		case <-ticker.C:
			w.record()
		}
	}
}

func (w *DBStatsWorker) record() {
	stats := w.db.Stats()
	metrics.RecordDBStats(stats)
	w.logger.Debug().
		Int("open", stats.OpenConnections).
		Int("in_use", stats.InUse).
		Int("idle", stats.Idle).
		Msg("db pool stats")
}
