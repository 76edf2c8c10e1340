// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//
// AppConfig is where everything about the platform API and the dashboard
// lives. The `cfg` tag names the config key, so validation errors point at
// the key an operator actually sets.
type AppConfig struct {
	// Platform API. APIToken is a static bearer token; the client
	// credentials, when set, are exchanged at APITokenURL instead.
	APIBaseURL      string   `cfg:"api_base_url" validate:"required,url"`
	APIToken        string   `cfg:"api_token"`
	APIClientID     string   `cfg:"api_client_id" validate:"required_with=APIClientSecret"`
	APIClientSecret string   `cfg:"api_client_secret" validate:"required_with=APIClientID"`
	APITokenURL     string   `cfg:"api_token_url" validate:"required_with=APIClientID"`
	APIScopes       []string `cfg:"api_scopes"`

	// Timeouts
	CallTimeout time.Duration `cfg:"timeout_api_call" validate:"gt=0"`
	PageTimeout time.Duration `cfg:"timeout_page" validate:"gt=0,gtefield=CallTimeout"`
	PingTimeout time.Duration `cfg:"timeout_ping" validate:"gt=0"`

	// Per-client request limit for the dashboard; 0 disables it.
	RateLimitPerMinute int `cfg:"rate_limit_per_minute" validate:"gte=0"`
	RateLimitBurst     int `cfg:"rate_limit_burst" validate:"gte=0"`

	// Site chrome
	SiteName   string `cfg:"site_name" validate:"max=80"`
	FooterHTML string `cfg:"footer_html"`
}
