package platformapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestGetJSON_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method: got %s, want GET", r.Method)
		}
		if r.URL.Path != PathMemberStats {
			t.Errorf("path: got %s, want %s", r.URL.Path, PathMemberStats)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept: got %q", got)
		}
		if got := r.Header.Get("X-Request-ID"); got != "load-123" {
			t.Errorf("X-Request-ID: got %q, want %q", got, "load-123")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total": 12, "change": -3}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", nil, zap.NewNop())
	var out struct {
		Total  int `json:"total"`
		Change int `json:"change"`
	}
	ctx := WithLoadID(context.Background(), "load-123")
	if err := c.GetJSON(ctx, PathMemberStats, &out); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if out.Total != 12 || out.Change != -3 {
		t.Errorf("decoded: got %+v, want {12 -3}", out)
	}
}

func TestGetJSON_NonSuccessStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"detail": "Authentication credentials were not provided."}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil, zap.NewNop())
	var out map[string]any
	err := c.GetJSON(context.Background(), PathReportedContent, &out)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusForbidden {
		t.Errorf("StatusCode: got %d, want %d", apiErr.StatusCode, http.StatusForbidden)
	}
	if apiErr.Path != PathReportedContent {
		t.Errorf("Path: got %q", apiErr.Path)
	}
	if apiErr.Message != "Authentication credentials were not provided." {
		t.Errorf("Message: got %q", apiErr.Message)
	}
}

func TestGetJSON_HTMLErrorBodyUsesStatusText(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html><body>bad gateway</body></html>"))
	}))
	defer srv.Close()

	err := New(srv.URL, nil, zap.NewNop()).GetJSON(context.Background(), "/x/", &struct{}{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Message != "Bad Gateway" {
		t.Errorf("Message: got %q, want %q", apiErr.Message, "Bad Gateway")
	}
}

func TestGetJSON_MalformedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count": `))
	}))
	defer srv.Close()

	var out map[string]any
	err := New(srv.URL, nil, zap.NewNop()).GetJSON(context.Background(), PathActiveProjects, &out)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !strings.Contains(err.Error(), "decode json") {
		t.Errorf("error: got %q, want decode json", err)
	}
}

func TestGetJSON_BodyTooLarge(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total": 123456789, "change": 1}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil, zap.NewNop())
	c.MaxBodyBytes = 16

	var out map[string]any
	err := c.GetJSON(context.Background(), PathMemberStats, &out)
	if !errors.Is(err, ErrBodyTooLarge) {
		t.Fatalf("error: got %v, want ErrBodyTooLarge", err)
	}

	c.MaxBodyBytes = 64
	if err := c.GetJSON(context.Background(), PathMemberStats, &out); err != nil {
		t.Errorf("body within limit: %v", err)
	}
}

func TestGetJSON_NetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	var out map[string]any
	err := New(url, nil, zap.NewNop()).GetJSON(context.Background(), PathActiveProjects, &out)
	if err == nil {
		t.Fatal("expected request error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("network failure should not be an APIError: %v", err)
	}
}

func TestNewHTTPClient_StaticToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret-token" {
			t.Errorf("Authorization: got %q", got)
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	hc := NewHTTPClient(context.Background(), AuthConfig{Token: "secret-token"}, 5*time.Second)
	var out map[string]any
	if err := New(srv.URL, hc, zap.NewNop()).GetJSON(context.Background(), "/", &out); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
}

func TestNewHTTPClient_ClientCredentials(t *testing.T) {
	t.Parallel()

	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
		}
		if got := r.Form.Get("grant_type"); got != "client_credentials" {
			t.Errorf("grant_type: got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"cc-token","token_type":"bearer","expires_in":3600}`))
	}))
	defer tokenSrv.Close()

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer cc-token" {
			t.Errorf("Authorization: got %q", got)
		}
		w.Write([]byte(`{"count": 1}`))
	}))
	defer apiSrv.Close()

	auth := AuthConfig{ClientID: "dash", ClientSecret: "s3cret", TokenURL: tokenSrv.URL}
	if auth.Mode() != "client_credentials" {
		t.Fatalf("Mode: got %q", auth.Mode())
	}
	hc := NewHTTPClient(context.Background(), auth, 5*time.Second)
	var out map[string]any
	if err := New(apiSrv.URL, hc, zap.NewNop()).GetJSON(context.Background(), PathReportedContent, &out); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
}

func TestAuthConfigMode(t *testing.T) {
	tests := []struct {
		cfg  AuthConfig
		want string
	}{
		{AuthConfig{}, "none"},
		{AuthConfig{Token: "t"}, "static_token"},
		{AuthConfig{ClientID: "id"}, "none"},
		{AuthConfig{ClientID: "id", TokenURL: "https://auth/token", Token: "t"}, "client_credentials"},
	}
	for _, tt := range tests {
		if got := tt.cfg.Mode(); got != tt.want {
			t.Errorf("Mode(%+v): got %q, want %q", tt.cfg, got, tt.want)
		}
	}
}

func TestEnsureLoadID(t *testing.T) {
	ctx, id := EnsureLoadID(context.Background())
	if id == "" || LoadID(ctx) != id {
		t.Fatalf("EnsureLoadID: got id %q, ctx id %q", id, LoadID(ctx))
	}
	ctx2, id2 := EnsureLoadID(ctx)
	if id2 != id || LoadID(ctx2) != id {
		t.Errorf("EnsureLoadID should keep existing id %q, got %q", id, id2)
	}
}
