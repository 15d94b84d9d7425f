package app

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/advocates-backend/internal/config"
	advocatesvc "github.com/heartmarshall/advocates-backend/internal/service/advocate"
	"github.com/heartmarshall/advocates-backend/internal/transport/middleware"
	"github.com/heartmarshall/advocates-backend/internal/transport/rest"
)

// newHandler assembles routes and middleware. The returned stop function
// releases background resources held by the middleware.
func newHandler(cfg *config.Config, log *slog.Logger, st *store, reg *prometheus.Registry) (http.Handler, func()) {
	svc := advocatesvc.NewService(log, st.advocates)

	routes := rest.Routes{
		Advocates: rest.NewAdvocateHandler(svc, log),
		Health:    rest.NewHealthHandler(st.health, st.driver, ShortVersion()),
	}
	if cfg.Metrics.Enabled {
		routes.Metrics = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
		routes.MetricsPath = cfg.Metrics.Path
	}
	mux := rest.NewRouter(routes)

	mws := []middleware.Middleware{
		middleware.RequestID(),
		middleware.ClientIP(),
		middleware.Logger(log),
		middleware.Recovery(log),
		middleware.CORS(cfg.CORS),
	}

	stop := func() {}
	if cfg.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit)
		probes := []string{"/live", "/ready", "/health"}
		if cfg.Metrics.Enabled {
			probes = append(probes, cfg.Metrics.Path)
		}
		mws = append(mws, middleware.Except(rl.Limit(), probes...))
		stop = rl.Stop
	}

	// Instrument reads the mux pattern and must wrap the mux directly.
	if cfg.Metrics.Enabled {
		mws = append(mws, middleware.NewMetrics(reg).Instrument())
	}

	return middleware.Chain(mws...)(mux), stop
}
