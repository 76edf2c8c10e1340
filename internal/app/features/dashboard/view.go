// internal/app/features/dashboard/view.go
package dashboard

import (
	"fmt"
	"time"

	"github.com/dalemusser/strataadmin/internal/app/system/htmlsanitize"
	"github.com/dalemusser/strataadmin/internal/domain/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numbers = message.NewPrinter(language.English)

// formatCount renders n with thousands separators ("3,400").
func formatCount(n int64) string {
	return numbers.Sprintf("%d", n)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Stat cards                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

type statCard struct {
	Label string
	Value string
	Icon  string

	// Change is set only for cards whose endpoint reports a delta.
	HasChange   bool
	Change      string
	ChangeClass string
}

func buildStatCards(s models.DashboardStatistics) []statCard {
	return []statCard{
		withChange(statCard{Label: "Total Members", Value: formatCount(s.TotalMembers), Icon: models.IconUsers}, s.MemberChange),
		withChange(statCard{Label: "Total Artworks", Value: formatCount(s.TotalArtworks), Icon: models.IconBrush}, s.ArtworkChange),
		{Label: "Upcoming Events", Value: formatCount(s.UpcomingEvents), Icon: models.IconCalendar},
		{Label: "Active Projects", Value: formatCount(s.ActiveProjects), Icon: models.IconFolder},
	}
}

func withChange(c statCard, change int64) statCard {
	c.HasChange = true
	switch {
	case change > 0:
		c.Change = fmt.Sprintf("+%d%%", change)
		c.ChangeClass = "green"
	case change < 0:
		c.Change = fmt.Sprintf("%d%%", change)
		c.ChangeClass = "red"
	default:
		c.Change = "0%"
		c.ChangeClass = "gray"
	}
	return c
}

/*─────────────────────────────────────────────────────────────────────────────*
| Quick actions                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

type quickAction struct {
	Label string
	Href  string
	Icon  string
	Badge int64 // 0 hides the badge
}

// buildQuickActions returns the fixed shortcut grid. Badges come from s; pass
// the zero value while statistics are loading.
func buildQuickActions(s models.DashboardStatistics) []quickAction {
	return []quickAction{
		{Label: "Review Artworks", Href: "/artworks/pending", Icon: models.IconBrush, Badge: s.PendingApprovals},
		{Label: "Approve Members", Href: "/members/pending", Icon: models.IconUserPlus, Badge: s.PendingMembers},
		{Label: "Moderate Reports", Href: "/reports", Icon: models.IconAlertCircle, Badge: s.ReportedContent},
		{Label: "Create Event", Href: "/events/new", Icon: models.IconCalendar},
		{Label: "New Project", Href: "/projects/new", Icon: models.IconFolder},
		{Label: "Send Announcement", Href: "/announcements/new", Icon: models.IconMail},
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Charts                                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

type chartBar struct {
	Label   string
	Value   int64
	Percent int // bar width, 0..100, relative to the largest bar
}

func buildChart(labels []string, values []int64) []chartBar {
	var top int64
	for _, v := range values {
		if v > top {
			top = v
		}
	}
	bars := make([]chartBar, len(values))
	for i, v := range values {
		bars[i] = chartBar{Label: labels[i], Value: v}
		if top > 0 && v > 0 {
			bars[i].Percent = int(v * 100 / top)
		}
	}
	return bars
}

func pendingChart(s models.DashboardStatistics) []chartBar {
	return buildChart(
		[]string{"Artworks", "Members", "Reports"},
		[]int64{s.PendingApprovals, s.PendingMembers, s.ReportedContent},
	)
}

func overviewChart(s models.DashboardStatistics) []chartBar {
	return buildChart(
		[]string{"Members", "Artworks", "Events", "Projects"},
		[]int64{s.TotalMembers, s.TotalArtworks, s.UpcomingEvents, s.ActiveProjects},
	)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Activity rows                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

type activityRow struct {
	ID    string
	Title string
	Type  string
	Icon  string

	HasStatus   bool
	Status      string
	StatusColor string

	HasUser   bool
	UserName  string
	AvatarURL string
	Initials  string

	Timestamp string
	When      string // "5 minutes ago"; the raw timestamp when unparseable
}

func buildActivityRows(entries []models.ActivityEntry, now time.Time) []activityRow {
	rows := make([]activityRow, len(entries))
	for i, e := range entries {
		row := activityRow{
			ID:          e.ID,
			Title:       htmlsanitize.PlainText(e.Title),
			Type:        string(e.Type),
			Icon:        models.IconFor(e.Type),
			HasStatus:   e.HasStatus(),
			Status:      string(e.Status),
			StatusColor: models.ColorClassFor(e.Status),
			Timestamp:   e.Timestamp,
			When:        e.Timestamp,
		}
		if e.User != nil {
			row.HasUser = true
			row.UserName = e.User.Name
			row.AvatarURL = e.User.AvatarURL
			row.Initials = e.User.Initials()
		}
		if t, ok := e.Time(); ok {
			row.When = relativeTime(t, now)
		}
		rows[i] = row
	}
	return rows
}

// relativeTime produces coarse phrases like "just now", "5 minutes ago" or
// "3 days ago". Times in the future read "just now".
func relativeTime(t, now time.Time) string {
	d := now.Sub(t)
	if d < time.Minute {
		return "just now"
	}
	if d < time.Hour {
		return plural(int(d/time.Minute), "minute") + " ago"
	}
	if d < 24*time.Hour {
		return plural(int(d/time.Hour), "hour") + " ago"
	}
	days := int(d / (24 * time.Hour))
	if days < 30 {
		return plural(days, "day") + " ago"
	}
	return t.Format("Jan 2, 2006")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// pager is the activity footer. The feed endpoint has no paging, so the
// control is static.
type pager struct {
	Current int
	Total   int
}

func (p pager) Label() string { return fmt.Sprintf("Page %d of %d", p.Current, p.Total) }

var activityPager = pager{Current: 1, Total: 5}
