// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/strataadmin/internal/app/store/platformapi"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB builds the platform API client. No request is made here; an
// unreachable API shows up in /health and in the dashboard panels instead of
// blocking startup.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	auth := platformapi.AuthConfig{
		Token:        appCfg.APIToken,
		ClientID:     appCfg.APIClientID,
		ClientSecret: appCfg.APIClientSecret,
		TokenURL:     appCfg.APITokenURL,
		Scopes:       appCfg.APIScopes,
	}

	// The OAuth2 token source outlives ctx; it must not be tied to startup.
	httpClient := platformapi.NewHTTPClient(context.WithoutCancel(ctx), auth, appCfg.CallTimeout)
	api := platformapi.New(appCfg.APIBaseURL, httpClient, logger)

	logger.Info("platform API client ready",
		zap.String("base_url", api.BaseURL),
		zap.String("auth", auth.Mode()))

	return DBDeps{API: api, HTTPClient: httpClient}, nil
}

// EnsureSchema has nothing to prepare: the app stores nothing.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return nil
}
