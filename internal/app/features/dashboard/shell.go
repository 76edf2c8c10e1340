// internal/app/features/dashboard/shell.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/strataadmin/internal/app/system/loadstate"
	"github.com/dalemusser/strataadmin/internal/app/system/viewdata"
	"github.com/dalemusser/strataadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
)

const (
	tabOverview = "overview"
	tabActivity = "activity"

	viewList  = "list"
	viewTable = "table"
)

type tabLink struct {
	Key    string
	Label  string
	Href   string
	Active bool
}

type shellData struct {
	viewdata.BaseVM

	Tabs         []tabLink
	Tab          string
	ActivityView string

	// Both panels start out Loading; HTMX swaps in the loaded partials.
	Stats        loadstate.State[models.DashboardStatistics]
	Activity     loadstate.State[[]models.ActivityEntry]
	QuickActions []quickAction
}

func normalizeTab(s string) string {
	if s == tabActivity {
		return tabActivity
	}
	return tabOverview
}

func normalizeView(s string) string {
	if s == viewTable {
		return viewTable
	}
	return viewList
}

func buildShell(r *http.Request) shellData {
	tab := normalizeTab(query.Get(r, "tab"))
	return shellData{
		BaseVM: viewdata.NewBaseVM(r, "Dashboard"),
		Tabs: []tabLink{
			{Key: tabOverview, Label: "Overview", Href: "/dashboard?tab=overview", Active: tab == tabOverview},
			{Key: tabActivity, Label: "Activity", Href: "/dashboard?tab=activity", Active: tab == tabActivity},
		},
		Tab:          tab,
		ActivityView: normalizeView(query.Get(r, "view")),
		Stats:        loadstate.NewLoading[models.DashboardStatistics](),
		Activity:     loadstate.NewLoading[[]models.ActivityEntry](),
		QuickActions: buildQuickActions(models.DashboardStatistics{}),
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard – page shell                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeDashboard renders the page frame. It performs no loads itself; the
// stats and activity panels request their own partials, so a page refresh
// starts exactly one load of each.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "dashboard_page", buildShell(r))
}
