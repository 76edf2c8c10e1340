// internal/app/store/activity/store.go
package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dalemusser/strataadmin/internal/app/store/platformapi"
	"github.com/dalemusser/strataadmin/internal/app/system/timeouts"
	"github.com/dalemusser/strataadmin/internal/domain/models"
	"go.uber.org/zap"
)

// LoadError is returned when the recent-activity request fails or its body
// is not a sequence of activity records. No entries accompany it.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load recent activity: %v", e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// FeedLoader reads the recent-activity feed from the platform API.
type FeedLoader struct {
	api platformapi.Getter
	log *zap.Logger
}

// NewFeedLoader creates a FeedLoader reading through api.
func NewFeedLoader(api platformapi.Getter, logger *zap.Logger) *FeedLoader {
	return &FeedLoader{api: api, log: logger}
}

// Load fetches /activity/recent/ once and normalizes every record, keeping
// the server's order (newest first). Nothing is cached between calls.
func (l *FeedLoader) Load(ctx context.Context) ([]models.ActivityEntry, error) {
	ctx, loadID := platformapi.EnsureLoadID(ctx)
	ctx, cancel := context.WithTimeout(ctx, timeouts.Call())
	defer cancel()
	start := time.Now()

	var body json.RawMessage
	if err := l.api.GetJSON(ctx, platformapi.PathRecentActivity, &body); err != nil {
		return nil, l.fail(loadID, start, err)
	}
	records, err := ValidateRecords(body)
	if err != nil {
		return nil, l.fail(loadID, start, err)
	}

	entries := Normalize(records)
	l.log.Debug("recent activity loaded",
		zap.String("load_id", loadID),
		zap.Int("entries", len(entries)),
		zap.Duration("elapsed", time.Since(start)))
	return entries, nil
}

func (l *FeedLoader) fail(loadID string, start time.Time, err error) error {
	l.log.Error("recent activity load failed",
		zap.String("load_id", loadID),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(err))
	return &LoadError{Err: err}
}

// Normalize maps records one-to-one, in order, to activity entries.
func Normalize(records []Record) []models.ActivityEntry {
	out := make([]models.ActivityEntry, len(records))
	for i, r := range records {
		out[i] = NormalizeRecord(r)
	}
	return out
}

// NormalizeRecord turns one raw record into an entry:
//   - an unknown activity_type becomes pending;
//   - an unknown status becomes absent (there is no default status);
//   - the user's name is "first last", the picture becomes AvatarURL;
//   - created_at is copied as-is.
func NormalizeRecord(r Record) models.ActivityEntry {
	typ, ok := models.ParseActivityType(enumText(r.ActivityType))
	if !ok {
		typ = models.DefaultActivityType
	}
	status, _ := models.ParseActivityStatus(enumText(r.Status))

	return models.ActivityEntry{
		ID:        text(r.ID),
		Type:      typ,
		Title:     text(r.Description),
		User:      normalizeUser(r.User),
		Timestamp: text(r.CreatedAt),
		Status:    status,
	}
}

func normalizeUser(u *RecordUser) *models.ActivityUser {
	if u == nil {
		return nil
	}
	return &models.ActivityUser{
		Name:      displayName(text(u.FirstName), text(u.LastName)),
		AvatarURL: text(u.ProfilePicture),
	}
}

// UnknownUserName stands in for a user object that carries no name.
const UnknownUserName = "Unknown user"

// displayName joins first and last with a single space. A missing half is
// left out rather than leaving a stray space; with neither, the user is
// still shown, as UnknownUserName.
func displayName(first, last string) string {
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	case last != "":
		return last
	default:
		return UnknownUserName
	}
}
