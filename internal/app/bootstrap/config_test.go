package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/strataadmin/internal/app/store/platformapi"
	"github.com/dalemusser/strataadmin/internal/app/system/ratelimit"
	"github.com/dalemusser/strataadmin/internal/testutil"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func validConfig() AppConfig {
	return AppConfig{
		APIBaseURL:  "https://platform.example.com/api",
		CallTimeout: 5 * time.Second,
		PageTimeout: 10 * time.Second,
		PingTimeout: 2 * time.Second,
		SiteName:    "Platform Admin",
	}
}

func TestValidateConfig_Valid(t *testing.T) {
	if err := ValidateConfig(nil, validConfig(), testLogger()); err != nil {
		t.Fatalf("ValidateConfig: %v", err)
	}

	cc := validConfig()
	cc.APIClientID = "dashboard"
	cc.APIClientSecret = "s3cret"
	cc.APITokenURL = "https://auth.example.com/oauth/token"
	if err := ValidateConfig(nil, cc, testLogger()); err != nil {
		t.Fatalf("ValidateConfig with client credentials: %v", err)
	}
}

func TestValidateConfig_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppConfig)
		want   string
	}{
		{"missing base url", func(c *AppConfig) { c.APIBaseURL = "" }, "api_base_url: is required"},
		{"bad base url", func(c *AppConfig) { c.APIBaseURL = "not a url" }, "api_base_url: must be a valid URL"},
		{"secret without id", func(c *AppConfig) { c.APIClientSecret = "x" }, "api_client_id: is required when api_client_secret is set"},
		{"id without token url", func(c *AppConfig) {
			c.APIClientID = "id"
			c.APIClientSecret = "secret"
		}, "api_token_url: is required when api_client_id is set"},
		{"bad token url", func(c *AppConfig) {
			c.APIClientID = "id"
			c.APIClientSecret = "secret"
			c.APITokenURL = "::"
		}, "api_token_url: must be a valid URL"},
		{"token and client id", func(c *AppConfig) {
			c.APIToken = "t"
			c.APIClientID = "id"
			c.APIClientSecret = "secret"
			c.APITokenURL = "https://auth.example.com/token"
		}, "not both"},
		{"zero call timeout", func(c *AppConfig) { c.CallTimeout = 0 }, "timeout_api_call: must be positive"},
		{"page shorter than call", func(c *AppConfig) { c.PageTimeout = time.Second }, "timeout_page: must be at least timeout_api_call"},
		{"long site name", func(c *AppConfig) { c.SiteName = strings.Repeat("x", 81) }, "site_name: must be at most 80"},
		{"negative rate limit", func(c *AppConfig) { c.RateLimitPerMinute = -1 }, "rate_limit_per_minute: must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := ValidateConfig(nil, cfg, testLogger())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error: got %q, want it to contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestValidateConfig_ReportsAllProblems(t *testing.T) {
	cfg := validConfig()
	cfg.APIBaseURL = ""
	cfg.PingTimeout = 0

	err := ValidateConfig(nil, cfg, testLogger())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	for _, want := range []string{"api_base_url", "timeout_ping"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err.Error(), want)
		}
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" stats.read, activity.read,, ")
	want := []string{"stats.read", "activity.read"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitList: got %v, want %v", got, want)
	}
	if got := splitList(""); got != nil {
		t.Errorf("splitList(\"\"): got %v, want nil", got)
	}
}

func TestConnectDB(t *testing.T) {
	cfg := validConfig()
	cfg.APIBaseURL = "https://platform.example.com/api/"

	deps, err := ConnectDB(context.Background(), nil, cfg, testLogger())
	if err != nil {
		t.Fatalf("ConnectDB: %v", err)
	}
	if deps.API == nil || deps.HTTPClient == nil {
		t.Fatalf("deps: got %+v", deps)
	}
	if deps.API.BaseURL != "https://platform.example.com/api" {
		t.Errorf("BaseURL: got %q", deps.API.BaseURL)
	}
	if err := Shutdown(context.Background(), nil, cfg, deps, testLogger()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestRouter(t *testing.T) {
	api := testutil.NewAPIServer(t)
	api.StatsFixture()
	api.ActivityFixture()

	deps := DBDeps{API: api.Client()}
	router := newRouter(deps, ratelimit.New(0, 0), testLogger())

	tests := []struct {
		target string
		status int
	}{
		{"/health", http.StatusOK},
		{"/dashboard/api/stats", http.StatusOK},
		{"/dashboard/api/activity", http.StatusOK},
		{"/", http.StatusSeeOther},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", tt.target, nil))
		if rec.Code != tt.status {
			t.Errorf("GET %s: got %d, want %d", tt.target, rec.Code, tt.status)
		}
	}

	if got := api.Hits(platformapi.PathRecentActivity); got != 1 {
		t.Errorf("activity hits: got %d, want 1", got)
	}
}

func TestRouter_RateLimitsDashboard(t *testing.T) {
	api := testutil.NewAPIServer(t)
	api.StatsFixture()

	router := newRouter(DBDeps{API: api.Client()}, ratelimit.New(60, 1), testLogger())

	codes := make([]int, 2)
	for i := range codes {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/dashboard/api/stats", nil))
		codes[i] = rec.Code
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("codes: got %v, want [200 429]", codes)
	}

	// Health is not limited.
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("health %d: got %d", i, rec.Code)
		}
	}
}
