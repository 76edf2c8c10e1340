// internal/app/features/dashboard/panels.go
package dashboard

import (
	"context"
	"net/http"

	"github.com/dalemusser/strataadmin/internal/app/system/loadstate"
	"github.com/dalemusser/strataadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
)

const (
	statsErrorMessage    = "Dashboard statistics could not be loaded. Try refreshing the page."
	activityErrorMessage = "Recent activity could not be loaded. Try refreshing the page."
)

type statsPanelData struct {
	State        loadstate.State[models.DashboardStatistics]
	ErrorMessage string

	Cards        []statCard
	QuickActions []quickAction
	PendingChart []chartBar
	Overview     []chartBar
	PendingWork  string
}

func buildStatsPanel(st loadstate.State[models.DashboardStatistics]) statsPanelData {
	data := statsPanelData{State: st}
	s, ok := st.Data()
	if !ok {
		if st.IsFailed() {
			data.ErrorMessage = statsErrorMessage
		}
		data.QuickActions = buildQuickActions(models.DashboardStatistics{})
		return data
	}
	data.Cards = buildStatCards(s)
	data.QuickActions = buildQuickActions(s)
	data.PendingChart = pendingChart(s)
	data.Overview = overviewChart(s)
	data.PendingWork = formatCount(s.PendingWork())
	return data
}

type activityPanelData struct {
	State        loadstate.State[[]models.ActivityEntry]
	ErrorMessage string

	View  string
	Rows  []activityRow
	Empty bool
	Pager pager
}

func (h *Handler) buildActivityPanel(st loadstate.State[[]models.ActivityEntry], view string) activityPanelData {
	data := activityPanelData{State: st, View: normalizeView(view), Pager: activityPager}
	entries, ok := st.Data()
	if !ok {
		if st.IsFailed() {
			data.ErrorMessage = activityErrorMessage
		}
		return data
	}
	data.Rows = buildActivityRows(entries, h.now())
	data.Empty = len(data.Rows) == 0
	return data
}

func (h *Handler) statsPanel(ctx context.Context) statsPanelData {
	return buildStatsPanel(h.loadStats(ctx))
}

func (h *Handler) activityPanel(ctx context.Context, view string) activityPanelData {
	return h.buildActivityPanel(h.loadActivity(ctx), view)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard/stats – statistics partial                                   |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeStats loads the statistics and renders cards, quick actions and charts,
// or the error panel. A failed load still answers 200 so HTMX swaps the panel.
func (h *Handler) ServeStats(w http.ResponseWriter, r *http.Request) {
	templates.RenderSnippet(w, "dashboard_stats_panel", h.statsPanel(r.Context()))
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard/activity – recent activity partial                           |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeActivity(w http.ResponseWriter, r *http.Request) {
	templates.RenderSnippet(w, "dashboard_activity_panel", h.activityPanel(r.Context(), query.Get(r, "view")))
}
