// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"time"

	"github.com/dalemusser/strataadmin/internal/app/system/loadstate"
	"github.com/dalemusser/strataadmin/internal/app/system/timeouts"
	"github.com/dalemusser/strataadmin/internal/domain/models"
	"go.uber.org/zap"
)

// StatsLoader produces the statistics summary. *stats.Aggregator satisfies it.
type StatsLoader interface {
	Load(ctx context.Context) (models.DashboardStatistics, error)
}

// ActivityLoader produces the recent-activity feed. *activity.FeedLoader
// satisfies it.
type ActivityLoader interface {
	Load(ctx context.Context) ([]models.ActivityEntry, error)
}

type Handler struct {
	Stats    StatsLoader
	Activity ActivityLoader
	Log      *zap.Logger

	now func() time.Time
}

func NewHandler(stats StatsLoader, activity ActivityLoader, logger *zap.Logger) *Handler {
	return &Handler{
		Stats:    stats,
		Activity: activity,
		Log:      logger,
		now:      time.Now,
	}
}

// loadStats runs one statistics load. Each call starts a fresh load; the two
// panels never share or wait on each other's results.
func (h *Handler) loadStats(ctx context.Context) loadstate.State[models.DashboardStatistics] {
	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Page(), h.Log, "dashboard stats")
	defer cancel()

	st := loadstate.Run(ctx, h.Stats.Load)
	if st.IsFailed() {
		h.Log.Warn("dashboard stats unavailable", zap.Error(st.Err()))
	}
	return st
}

func (h *Handler) loadActivity(ctx context.Context) loadstate.State[[]models.ActivityEntry] {
	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Page(), h.Log, "dashboard activity")
	defer cancel()

	st := loadstate.Run(ctx, h.Activity.Load)
	if st.IsFailed() {
		h.Log.Warn("dashboard activity unavailable", zap.Error(st.Err()))
	}
	return st
}
