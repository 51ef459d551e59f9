package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/realestate-seo-api/internal/api/handler/router"
	"github.com/vfg2006/realestate-seo-api/internal/usecases/analyzing"
	"github.com/vfg2006/realestate-seo-api/internal/usecases/tracking"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

// SEOReports expõe os relatórios; rateLimit é aplicado em cada rota
func SEOReports(service analyzing.Analyzer, rateLimit func(http.Handler) http.Handler) []router.Route {
	middlewares := []func(http.Handler) http.Handler{rateLimit}

	return []router.Route{
		{
			Path:        "/v1/seo/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: middlewares,
		},
		{
			Path:        "/v1/seo/analytics",
			Method:      http.MethodGet,
			Handler:     GetAnalytics(service),
			Middlewares: middlewares,
		},
		{
			Path:        "/v1/seo/performance",
			Method:      http.MethodGet,
			Handler:     GetPerformance(service),
			Middlewares: middlewares,
		},
		{
			Path:        "/v1/seo/score-history",
			Method:      http.MethodGet,
			Handler:     GetScoreHistory(service),
			Middlewares: middlewares,
		},
	}
}

func Tracking(service tracking.Tracker, rateLimit func(http.Handler) http.Handler) []router.Route {
	middlewares := []func(http.Handler) http.Handler{rateLimit}

	return []router.Route{
		{
			Path:        "/v1/seo/events",
			Method:      http.MethodPost,
			Handler:     TrackEvent(service),
			Middlewares: middlewares,
		},
		{
			Path:        "/v1/seo/monitoring",
			Method:      http.MethodPost,
			Handler:     RecordMonitoring(service),
			Middlewares: middlewares,
		},
		{
			Path:        "/v1/seo/keywords",
			Method:      http.MethodPost,
			Handler:     RecordKeywordRankings(service),
			Middlewares: middlewares,
		},
	}
}

// CronJobs dispara ações pesadas (remoção de eventos, agregação completa) e
// passa pelo mesmo rate limit das rotas públicas
func CronJobs(services CronJobServices, rateLimit func(http.Handler) http.Handler) []router.Route {
	middlewares := []func(http.Handler) http.Handler{rateLimit}

	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: middlewares,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: middlewares,
		},
	}
}
