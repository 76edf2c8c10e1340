// internal/domain/models/dashboard.go
package models

// DashboardStatistics is the summary shown on the dashboard's top cards.
//
// A value is built in one step from all seven count endpoints and is never
// partially filled: any field the API did not report is 0.
type DashboardStatistics struct {
	TotalMembers     int64 `json:"totalMembers"`
	MemberChange     int64 `json:"memberChange"` // percentage delta, may be negative
	TotalArtworks    int64 `json:"totalArtworks"`
	ArtworkChange    int64 `json:"artworkChange"` // percentage delta, may be negative
	UpcomingEvents   int64 `json:"upcomingEvents"`
	ActiveProjects   int64 `json:"activeProjects"`
	PendingApprovals int64 `json:"pendingApprovals"`
	PendingMembers   int64 `json:"pendingMembers"`
	ReportedContent  int64 `json:"reportedContent"`
}

// PendingWork is the number of items waiting on an administrator.
func (s DashboardStatistics) PendingWork() int64 {
	return s.PendingApprovals + s.PendingMembers + s.ReportedContent
}
