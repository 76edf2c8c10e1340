// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dalemusser/strataadmin/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for StrataAdmin.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: api_base_url, api_token, etc.
//   - Environment variables: STRATAADMIN_API_BASE_URL, STRATAADMIN_API_TOKEN, etc.
//   - Command-line flags: --api_base_url, --api_token, etc.
var appConfigKeys = []config.AppKey{
	{Name: "api_base_url", Default: "http://localhost:8000/api", Desc: "Base URL of the platform REST API"},
	{Name: "api_token", Default: "", Desc: "Static bearer token for the platform API (blank for none)"},

	// OAuth2 client credentials (used instead of api_token when set)
	{Name: "api_client_id", Default: "", Desc: "OAuth2 client ID for the platform API"},
	{Name: "api_client_secret", Default: "", Desc: "OAuth2 client secret for the platform API"},
	{Name: "api_token_url", Default: "", Desc: "OAuth2 token endpoint"},
	{Name: "api_scopes", Default: "", Desc: "Comma-separated OAuth2 scopes"},

	// Timeouts
	{Name: "timeout_api_call", Default: "5s", Desc: "Timeout for one platform API request (e.g., 5s)"},
	{Name: "timeout_page", Default: "10s", Desc: "Timeout for one dashboard panel (e.g., 10s)"},
	{Name: "timeout_ping", Default: "2s", Desc: "Timeout for the /health probe (e.g., 2s)"},

	// Dashboard request limiting (each stats refresh costs seven API calls)
	{Name: "rate_limit_per_minute", Default: 120, Desc: "Dashboard requests per client IP per minute (0 disables)"},
	{Name: "rate_limit_burst", Default: 20, Desc: "Dashboard request burst per client IP"},

	// Site chrome
	{Name: "site_name", Default: "Platform Admin", Desc: "Name shown in the page header"},
	{Name: "footer_html", Default: "", Desc: "HTML shown in the page footer (sanitized)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, STRATAADMIN_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "STRATAADMIN", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		APIBaseURL:      strings.TrimSpace(appValues.String("api_base_url")),
		APIToken:        appValues.String("api_token"),
		APIClientID:     appValues.String("api_client_id"),
		APIClientSecret: appValues.String("api_client_secret"),
		APITokenURL:     strings.TrimSpace(appValues.String("api_token_url")),
		APIScopes:       splitList(appValues.String("api_scopes")),

		CallTimeout: appValues.Duration("timeout_api_call", timeouts.DefaultCall),
		PageTimeout: appValues.Duration("timeout_page", timeouts.DefaultPage),
		PingTimeout: appValues.Duration("timeout_ping", timeouts.DefaultPing),

		RateLimitPerMinute: appValues.Int("rate_limit_per_minute"),
		RateLimitBurst:     appValues.Int("rate_limit_burst"),

		SiteName:   appValues.String("site_name"),
		FooterHTML: appValues.String("footer_html"),
	}

	return coreCfg, appCfg, nil
}

// splitList parses "a, b,,c" into ["a" "b" "c"].
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("cfg"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// Every problem is reported at once, keyed by config name.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	var problems []string

	if err := validate.Struct(appCfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate config: %w", err)
		}
		for _, fe := range verrs {
			problems = append(problems, describe(fe))
		}
	}
	if appCfg.APITokenURL != "" {
		if err := validate.Var(appCfg.APITokenURL, "url"); err != nil {
			problems = append(problems, "api_token_url: must be a valid URL")
		}
	}
	if appCfg.APIToken != "" && appCfg.APIClientID != "" {
		problems = append(problems, "api_token: set either api_token or api_client_id, not both")
	}

	if len(problems) > 0 {
		err := fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
		logger.Error("config validation failed", zap.Strings("problems", problems))
		return err
	}
	return nil
}

func describe(fe validator.FieldError) string {
	key := fe.Field()
	switch fe.Tag() {
	case "required":
		return key + ": is required"
	case "url":
		return key + ": must be a valid URL"
	case "required_with":
		return fmt.Sprintf("%s: is required when %s is set", key, configKey(fe.Param()))
	case "gt":
		return key + ": must be positive"
	case "gte":
		return key + ": must not be negative"
	case "gtefield":
		return fmt.Sprintf("%s: must be at least %s", key, configKey(fe.Param()))
	case "max":
		return fmt.Sprintf("%s: must be at most %s characters", key, fe.Param())
	default:
		return fmt.Sprintf("%s: failed %s", key, fe.Tag())
	}
}

// configKey maps an AppConfig field name to its config key.
func configKey(field string) string {
	if f, ok := reflect.TypeOf(AppConfig{}).FieldByName(field); ok {
		if name := f.Tag.Get("cfg"); name != "" {
			return name
		}
	}
	return field
}
