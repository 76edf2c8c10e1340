// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	dashboardfeature "github.com/dalemusser/strataadmin/internal/app/features/dashboard"
	_ "github.com/dalemusser/strataadmin/internal/app/features/dashboard/views"
	errorsfeature "github.com/dalemusser/strataadmin/internal/app/features/errors"
	healthfeature "github.com/dalemusser/strataadmin/internal/app/features/health"
	homefeature "github.com/dalemusser/strataadmin/internal/app/features/home"
	activitystore "github.com/dalemusser/strataadmin/internal/app/store/activity"
	statsstore "github.com/dalemusser/strataadmin/internal/app/store/stats"
	"github.com/dalemusser/strataadmin/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, the API client, and Startup have
// completed. StrataAdmin boots the template engine and mounts the health
// probe, static assets, and the dashboard.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	limiter := ratelimit.New(appCfg.RateLimitPerMinute, appCfg.RateLimitBurst)
	return newRouter(deps, limiter, logger), nil
}

// newRouter mounts every feature. It needs no template engine, so tests can
// exercise routing and the JSON endpoints directly.
func newRouter(deps DBDeps, limiter *ratelimit.Limiter, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(errorsfeature.Recoverer(logger))

	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.API, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// The two loaders are independent: neither waits on or reads the other.
	dashboardHandler := dashboardfeature.NewHandler(
		statsstore.NewAggregator(deps.API, logger),
		activitystore.NewFeedLoader(deps.API, logger),
		logger,
	)
	r.With(ratelimit.Middleware(limiter, logger)).Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

	return r
}
