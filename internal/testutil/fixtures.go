package testutil

import (
	"github.com/dalemusser/strataadmin/internal/domain/models"
)

// FixtureStats is what a stats load yields against StatsFixture.
func FixtureStats() models.DashboardStatistics {
	return models.DashboardStatistics{
		TotalMembers:     1250,
		MemberChange:     12,
		TotalArtworks:    3400,
		ArtworkChange:    -4,
		UpcomingEvents:   7,
		ActiveProjects:   15,
		PendingApprovals: 23,
		PendingMembers:   9,
		ReportedContent:  4,
	}
}

// FixtureActivity is what an activity load yields against ActivityFixture.
func FixtureActivity() []models.ActivityEntry {
	return []models.ActivityEntry{
		{
			ID:    "a1",
			Type:  models.ActivityArtwork,
			Title: "New artwork submitted",
			User: &models.ActivityUser{
				Name:      "Ada Lovelace",
				AvatarURL: "https://cdn.example.com/ada.png",
			},
			Timestamp: "2024-05-01T09:30:00Z",
			Status:    models.StatusPending,
		},
		{
			ID:        "42",
			Type:      models.ActivityRegistration,
			Title:     "Member registered",
			Timestamp: "2024-05-01T08:00:00Z",
		},
	}
}
