// internal/domain/models/activity.go
package models

import (
	"strings"
	"time"
)

// ActivityUser is the member an activity entry is about.
type ActivityUser struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Initials returns up to two uppercase initials for avatar placeholders.
func (u ActivityUser) Initials() string {
	var out []rune
	for _, part := range strings.Fields(u.Name) {
		out = append(out, []rune(part)[0])
		if len(out) == 2 {
			break
		}
	}
	return strings.ToUpper(string(out))
}

// ActivityEntry is one normalized item of the recent-activity feed.
//
// Type is always one of ActivityTypes. Status is StatusNone when the source
// record had no status or an unknown one. Timestamp is the raw created_at
// string from the API; use Time to interpret it.
type ActivityEntry struct {
	ID        string         `json:"id"`
	Type      ActivityType   `json:"type"`
	Title     string         `json:"title"`
	User      *ActivityUser  `json:"user,omitempty"`
	Timestamp string         `json:"timestamp"`
	Status    ActivityStatus `json:"status,omitempty"`
}

// HasStatus reports whether the entry carries a status.
func (e ActivityEntry) HasStatus() bool {
	return e.Status != StatusNone
}

// timestampLayouts are tried in order by Time. The API emits RFC 3339 but
// older records were written without a zone or with a space separator.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Time parses Timestamp. Values without a zone are taken as UTC.
func (e ActivityEntry) Time() (time.Time, bool) {
	s := strings.TrimSpace(e.Timestamp)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
