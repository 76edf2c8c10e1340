package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dalemusser/strataadmin/internal/app/store/platformapi"
	"go.uber.org/zap"
)

// APIServer is a fake platform API for handler and loader tests.
// Unregistered paths answer 404.
type APIServer struct {
	*httptest.Server

	mu     sync.Mutex
	routes map[string]http.HandlerFunc
	hits   map[string]int
}

// NewAPIServer starts a fake platform API; it is closed when the test ends.
func NewAPIServer(t *testing.T) *APIServer {
	t.Helper()
	s := &APIServer{
		routes: make(map[string]http.HandlerFunc),
		hits:   make(map[string]int),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

func (s *APIServer) serve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	h, ok := s.routes[r.URL.Path]
	s.hits[r.URL.Path]++
	s.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	h(w, r)
}

// Handle registers a handler for an exact path.
func (s *APIServer) Handle(path string, h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[path] = h
}

// JSON registers path to answer 200 with body encoded as JSON.
func (s *APIServer) JSON(path string, body any) {
	s.Handle(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	})
}

// Raw registers path to answer with the given status and raw body.
func (s *APIServer) Raw(path string, status int, body string) {
	s.Handle(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

// Hits reports how many requests path has received.
func (s *APIServer) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

// Client returns a platformapi.Client pointed at the fake server.
func (s *APIServer) Client() *platformapi.Client {
	return platformapi.New(s.URL, s.Server.Client(), zap.NewNop())
}

// StatsFixture registers the seven count endpoints with a consistent set of
// values; a stats load against it yields FixtureStats.
func (s *APIServer) StatsFixture() {
	s.JSON(platformapi.PathMemberStats, map[string]any{"total": 1250, "change": 12})
	s.JSON(platformapi.PathArtworkStats, map[string]any{"total": 3400, "change": -4})
	s.JSON(platformapi.PathUpcomingEvents, map[string]any{"count": 7})
	s.JSON(platformapi.PathActiveProjects, map[string]any{"count": 15})
	s.JSON(platformapi.PathPendingArtworks, map[string]any{"count": 23})
	s.JSON(platformapi.PathPendingMembers, map[string]any{"count": 9})
	s.JSON(platformapi.PathReportedContent, map[string]any{"count": 4})
}

// ActivityFixture registers /activity/recent/ with two well-formed records;
// an activity load against it yields FixtureActivity.
func (s *APIServer) ActivityFixture() {
	s.Raw(platformapi.PathRecentActivity, http.StatusOK, `[
		{"id": "a1", "activity_type": "artwork", "description": "New artwork submitted",
		 "user": {"first_name": "Ada", "last_name": "Lovelace", "profile_picture": "https://cdn.example.com/ada.png"},
		 "created_at": "2024-05-01T09:30:00Z", "status": "pending"},
		{"id": 42, "activity_type": "registration", "description": "Member registered",
		 "created_at": "2024-05-01T08:00:00Z"}
	]`)
}
