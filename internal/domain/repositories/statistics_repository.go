package repositories

import (
	"context"
	"time"

	"rewear.backend/internal/domain/entities"
)

// StatisticsRepository aggregates the admin dashboard numbers.
type StatisticsRepository interface {
	// Snapshot counts "new today" rows as those created in [dayStart, dayStart+24h).
	Snapshot(ctx context.Context, dayStart time.Time, topCategories int) (*entities.Statistics, error)
}
