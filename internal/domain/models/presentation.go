// internal/domain/models/presentation.go
package models

// Icon identifiers understood by the dashboard's icon sprite.
const (
	IconBrush       = "brush"
	IconXCircle     = "x-circle"
	IconClock       = "clock"
	IconUserPlus    = "user-plus"
	IconCalendar    = "calendar"
	IconFolder      = "folder"
	IconMail        = "mail"
	IconAlertCircle = "alert-circle"
	IconCheckCircle = "check-circle"
	IconUsers       = "users"
)

var activityIcons = map[ActivityType]string{
	ActivityApproval:     IconBrush,
	ActivityArtwork:      IconBrush,
	ActivityRejection:    IconXCircle,
	ActivityPending:      IconClock,
	ActivityRegistration: IconUserPlus,
	ActivityEvent:        IconCalendar,
	ActivityProject:      IconFolder,
	ActivityAnnouncement: IconMail,
	ActivityWarning:      IconAlertCircle,
	ActivitySuccess:      IconCheckCircle,
}

// IconFor returns the icon for an activity type. Every value in
// ActivityTypes has an icon; anything else gets the pending clock.
func IconFor(t ActivityType) string {
	if icon, ok := activityIcons[t]; ok {
		return icon
	}
	return activityIcons[DefaultActivityType]
}

var statusColors = map[ActivityStatus]string{
	StatusCompleted: "green",
	StatusPending:   "yellow",
	StatusFailed:    "red",
	StatusInfo:      "blue",
}

// ColorClassFor returns the badge color for a status. StatusNone has no
// badge and yields "".
func ColorClassFor(s ActivityStatus) string {
	return statusColors[s]
}
