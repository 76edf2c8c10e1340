// internal/domain/models/activitytypes.go
package models

// ActivityType is the canonical kind of a platform activity entry.
//
// These values arrive from the platform API in the activity_type field and
// are used throughout the dashboard as stable keys for icons and labels.
type ActivityType string

const (
	ActivityApproval     ActivityType = "approval"
	ActivityRejection    ActivityType = "rejection"
	ActivityPending      ActivityType = "pending"
	ActivityRegistration ActivityType = "registration"
	ActivityArtwork      ActivityType = "artwork"
	ActivityEvent        ActivityType = "event"
	ActivityProject      ActivityType = "project"
	ActivityAnnouncement ActivityType = "announcement"
	ActivityWarning      ActivityType = "warning"
	ActivitySuccess      ActivityType = "success"
)

// ActivityTypes is the full set of allowed activity types.
//
// This slice is the single source of truth for validation. Any new type must
// be added here (and to IconFor) to be considered valid.
var ActivityTypes = []ActivityType{
	ActivityApproval,
	ActivityRejection,
	ActivityPending,
	ActivityRegistration,
	ActivityArtwork,
	ActivityEvent,
	ActivityProject,
	ActivityAnnouncement,
	ActivityWarning,
	ActivitySuccess,
}

// DefaultActivityType replaces any activity_type the dashboard does not know.
const DefaultActivityType = ActivityPending

// ParseActivityType reports whether s is one of ActivityTypes.
// Matching is exact; the API sends lowercase identifiers.
func ParseActivityType(s string) (ActivityType, bool) {
	for _, t := range ActivityTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// ActivityStatus is the outcome attached to an activity entry.
// The zero value StatusNone means the entry has no status.
type ActivityStatus string

const (
	StatusNone      ActivityStatus = ""
	StatusCompleted ActivityStatus = "completed"
	StatusPending   ActivityStatus = "pending"
	StatusFailed    ActivityStatus = "failed"
	StatusInfo      ActivityStatus = "info"
)

// ActivityStatuses lists every status an entry may carry. StatusNone is not
// part of the set.
var ActivityStatuses = []ActivityStatus{
	StatusCompleted,
	StatusPending,
	StatusFailed,
	StatusInfo,
}

// ParseActivityStatus reports whether s is one of ActivityStatuses.
// There is deliberately no default status: callers treat a miss as absent.
func ParseActivityStatus(s string) (ActivityStatus, bool) {
	for _, st := range ActivityStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return StatusNone, false
}
