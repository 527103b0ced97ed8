package retention

import (
	"context"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/cadence/activity"
	"go.uber.org/zap"
)

const (
	defaultOpenWindowHours = 72
	defaultSettledDays     = 30
)

func openRequestWindow() time.Duration {
	hours := viper.GetInt("retention.open_window_hours")
	if hours <= 0 {
		hours = defaultOpenWindowHours
	}
	return time.Duration(hours) * time.Hour
}

func settledRetention() time.Duration {
	days := viper.GetInt("retention.settled_days")
	if days <= 0 {
		days = defaultSettledDays
	}
	return time.Duration(days) * 24 * time.Hour
}

// ExpireStaleRequestsActivity cancels requests that sat answerable past
// the open window so the feed does not accumulate dead entries.
func (r *RetentionWorker) ExpireStaleRequestsActivity(ctx context.Context) (int64, error) {
	logger := activity.GetLogger(ctx)

	window := openRequestWindow()
	expired, err := r.store.ExpireStaleRequests(window)
	if err != nil {
		return 0, err
	}

	if expired > 0 {
		logger.Info("Expired stale help requests.",
			zap.Int64("count", expired),
			zap.Duration("window", window))
	}
	return expired, nil
}

// ArchiveSettledRequestsActivity removes resolved and cancelled
// requests whose retention window has elapsed.
func (r *RetentionWorker) ArchiveSettledRequestsActivity(ctx context.Context) (int64, error) {
	logger := activity.GetLogger(ctx)

	retention := settledRetention()
	archived, err := r.store.ArchiveSettledRequests(retention)
	if err != nil {
		return 0, err
	}

	if archived > 0 {
		logger.Info("Archived settled help requests.",
			zap.Int64("count", archived),
			zap.Duration("retention", retention))
	}
	return archived, nil
}
