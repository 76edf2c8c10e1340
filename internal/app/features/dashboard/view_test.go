package dashboard

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/strataadmin/internal/app/system/loadstate"
	"github.com/dalemusser/strataadmin/internal/domain/models"
	"go.uber.org/zap"
)

func TestFormatCount(t *testing.T) {
	tests := map[int64]string{0: "0", 999: "999", 3400: "3,400", 1250000: "1,250,000", -4: "-4"}
	for n, want := range tests {
		if got := formatCount(n); got != want {
			t.Errorf("formatCount(%d): got %q, want %q", n, got, want)
		}
	}
}

func TestBuildStatCards(t *testing.T) {
	cards := buildStatCards(models.DashboardStatistics{
		TotalMembers: 1250, MemberChange: 12,
		TotalArtworks: 3400, ArtworkChange: -4,
		UpcomingEvents: 7,
	})
	if len(cards) != 4 {
		t.Fatalf("len(cards): got %d, want 4", len(cards))
	}
	if cards[0].Value != "1,250" || cards[0].Change != "+12%" || cards[0].ChangeClass != "green" {
		t.Errorf("members card: got %+v", cards[0])
	}
	if cards[1].Change != "-4%" || cards[1].ChangeClass != "red" {
		t.Errorf("artworks card: got %+v", cards[1])
	}
	if cards[2].HasChange || cards[3].HasChange {
		t.Error("events and projects cards have no change badge")
	}
	if cards[3].Value != "0" {
		t.Errorf("missing stat should render 0, got %q", cards[3].Value)
	}
}

func TestBuildQuickActions_Badges(t *testing.T) {
	actions := buildQuickActions(models.DashboardStatistics{PendingApprovals: 23, PendingMembers: 9, ReportedContent: 4})
	if len(actions) != 6 {
		t.Fatalf("len(actions): got %d, want 6", len(actions))
	}
	want := []int64{23, 9, 4, 0, 0, 0}
	for i, a := range actions {
		if a.Badge != want[i] {
			t.Errorf("%s badge: got %d, want %d", a.Label, a.Badge, want[i])
		}
	}
}

func TestBuildChart(t *testing.T) {
	bars := buildChart([]string{"a", "b", "c"}, []int64{50, 100, 0})
	want := []int{50, 100, 0}
	for i, b := range bars {
		if b.Percent != want[i] {
			t.Errorf("bar %s: got %d%%, want %d%%", b.Label, b.Percent, want[i])
		}
	}

	for _, b := range buildChart([]string{"x", "y"}, []int64{0, 0}) {
		if b.Percent != 0 {
			t.Errorf("all-zero chart: bar %s got %d%%", b.Label, b.Percent)
		}
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{-time.Hour, "just now"},
		{30 * time.Second, "just now"},
		{time.Minute, "1 minute ago"},
		{5 * time.Minute, "5 minutes ago"},
		{time.Hour, "1 hour ago"},
		{23 * time.Hour, "23 hours ago"},
		{48 * time.Hour, "2 days ago"},
		{45 * 24 * time.Hour, "Mar 17, 2024"},
	}
	for _, tt := range tests {
		if got := relativeTime(now.Add(-tt.ago), now); got != tt.want {
			t.Errorf("relativeTime(-%v): got %q, want %q", tt.ago, got, tt.want)
		}
	}
}

func TestBuildActivityRows(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	rows := buildActivityRows([]models.ActivityEntry{
		{
			ID:        "a1",
			Type:      models.ActivityArtwork,
			Title:     "<b>New</b> artwork submitted",
			User:      &models.ActivityUser{Name: "Ada Lovelace"},
			Timestamp: "2024-05-01T09:30:00Z",
			Status:    models.StatusPending,
		},
		{
			ID:        "42",
			Type:      models.ActivityPending,
			Title:     "Something happened",
			Timestamp: "yesterday-ish",
		},
	}, now)

	if len(rows) != 2 {
		t.Fatalf("len(rows): got %d, want 2", len(rows))
	}
	first := rows[0]
	if first.Title != "New artwork submitted" {
		t.Errorf("Title: got %q", first.Title)
	}
	if first.Icon != models.IconBrush || first.StatusColor != "yellow" || !first.HasStatus {
		t.Errorf("first row: got icon %q color %q hasStatus %v", first.Icon, first.StatusColor, first.HasStatus)
	}
	if !first.HasUser || first.Initials != "AL" {
		t.Errorf("user: got %+v", first)
	}
	if first.When != "30 minutes ago" {
		t.Errorf("When: got %q, want %q", first.When, "30 minutes ago")
	}

	second := rows[1]
	if second.Icon != models.IconClock || second.HasStatus || second.StatusColor != "" || second.HasUser {
		t.Errorf("second row: got %+v", second)
	}
	if second.When != "yesterday-ish" {
		t.Errorf("unparseable timestamp should be shown raw, got %q", second.When)
	}
}

func TestBuildStatsPanel(t *testing.T) {
	failed := buildStatsPanel(loadstate.NewFailed[models.DashboardStatistics](errors.New("down")))
	if failed.ErrorMessage == "" || failed.Cards != nil {
		t.Errorf("failed panel: got %+v", failed)
	}
	if len(failed.QuickActions) != 6 {
		t.Errorf("quick actions stay available on failure, got %d", len(failed.QuickActions))
	}

	loading := buildStatsPanel(loadstate.NewLoading[models.DashboardStatistics]())
	if loading.ErrorMessage != "" || loading.Cards != nil {
		t.Errorf("loading panel: got %+v", loading)
	}

	loaded := buildStatsPanel(loadstate.NewLoaded(models.DashboardStatistics{PendingApprovals: 2, PendingMembers: 1}))
	if len(loaded.Cards) != 4 || len(loaded.PendingChart) != 3 || len(loaded.Overview) != 4 {
		t.Errorf("loaded panel: got %+v", loaded)
	}
	if loaded.PendingWork != "3" {
		t.Errorf("PendingWork: got %q, want 3", loaded.PendingWork)
	}
}

func TestBuildActivityPanel(t *testing.T) {
	h := NewHandler(nil, nil, zap.NewNop())
	h.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }

	empty := h.buildActivityPanel(loadstate.NewLoaded([]models.ActivityEntry{}), "bogus")
	if !empty.Empty || empty.View != viewList {
		t.Errorf("empty panel: got %+v", empty)
	}
	if empty.Pager.Label() != "Page 1 of 5" {
		t.Errorf("pager: got %q", empty.Pager.Label())
	}

	failed := h.buildActivityPanel(loadstate.NewFailed[[]models.ActivityEntry](errors.New("x")), "table")
	if failed.ErrorMessage == "" || failed.Rows != nil || failed.View != viewTable {
		t.Errorf("failed panel: got %+v", failed)
	}
}

func TestBuildShell(t *testing.T) {
	shell := buildShell(httptest.NewRequest("GET", "/dashboard?tab=activity&view=table", nil))
	if shell.Tab != tabActivity || shell.ActivityView != viewTable {
		t.Errorf("tab/view: got %q/%q", shell.Tab, shell.ActivityView)
	}
	if !shell.Stats.IsLoading() || !shell.Activity.IsLoading() {
		t.Error("shell panels should start Loading")
	}
	if shell.Tabs[0].Active || !shell.Tabs[1].Active {
		t.Errorf("tabs: got %+v", shell.Tabs)
	}

	def := buildShell(httptest.NewRequest("GET", "/dashboard?tab=nope", nil))
	if def.Tab != tabOverview || def.ActivityView != viewList {
		t.Errorf("defaults: got %q/%q", def.Tab, def.ActivityView)
	}
}
