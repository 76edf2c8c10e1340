// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/strataadmin/internal/app/resources"
	"github.com/dalemusser/strataadmin/internal/app/system/timeouts"
	"github.com/dalemusser/strataadmin/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the API client is
// built, but before the HTTP handler is built. It applies configured
// timeouts, sets the site chrome and loads shared templates.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{
		Ping: appCfg.PingTimeout,
		Call: appCfg.CallTimeout,
		Page: appCfg.PageTimeout,
	})
	cur := timeouts.Current()
	logger.Info("timeouts configured",
		zap.Duration("ping", cur.Ping),
		zap.Duration("call", cur.Call),
		zap.Duration("page", cur.Page))

	viewdata.Init(viewdata.Site{
		Name:       appCfg.SiteName,
		FooterHTML: appCfg.FooterHTML,
	})

	resources.LoadSharedTemplates()
	return nil
}
