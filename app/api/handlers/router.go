package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ribgsilva/phonebook-api/platform/metrics"
	"github.com/ribgsilva/phonebook-api/platform/web/middleware"
	"go.uber.org/zap"
)

// MetricsPath serves the prometheus registry when metrics are on
const MetricsPath = "/metrics"

// RouterConfig holds the collaborators of NewRouter. Nil Metrics or NewRelic leave them out
type RouterConfig struct {
	Log      *zap.SugaredLogger
	Metrics  *metrics.Metrics
	NewRelic *newrelic.Application
}

// NewRouter builds the engine with the middleware chain and every route.
// Middleware order: recovery, request id, cors, request logger, metrics, newrelic.
func NewRouter(api Api, conf RouterConfig) *gin.Engine {
	log := conf.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	router := gin.New()
	// trailing slashes are stripped by Handler, redirects would skip the middleware chain
	router.RedirectTrailingSlash = false

	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		cors.Default(),
		middleware.Logger(middleware.LoggerConfig{
			Log:       log,
			SkipPaths: []string{HealthcheckPath},
		}),
	)

	if conf.Metrics != nil {
		conf.Metrics.Gauge("notes_total", "Number of stored notes", func() float64 { return float64(api.Notes.Count()) })
		conf.Metrics.Gauge("persons_total", "Number of stored persons", func() float64 { return float64(api.Persons.Count()) })
		router.Use(conf.Metrics.Middleware())
	}
	if conf.NewRelic != nil {
		router.Use(nrgin.Middleware(conf.NewRelic))
	}
	if conf.Metrics != nil {
		router.GET(MetricsPath, conf.Metrics.Handler())
	}

	MapDefaults(router)
	MapApi(router, api)
	MapFallback(router)

	return router
}

// Handler serves router, matching paths with a trailing slash like the path without it
func Handler(router *gin.Engine) http.Handler {
	return middleware.StripTrailingSlash(router)
}
