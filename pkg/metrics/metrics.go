// Package metrics concentra os coletores Prometheus expostos em /metrics.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "seo"

var histogramBuckets = []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10}

var (
	requestTotal = register(prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "api",
		Name:      "http_requests_total",
		Help:      "Quantidade de requisições HTTP processadas",
	}, []string{"method", "route", "status"}))

	requestLatency = register(prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "api",
		Name:      "http_request_duration_seconds",
		Help:      "Distribuição de latência das rotas HTTP",
		Buckets:   histogramBuckets,
	}, []string{"method", "route", "status"}))

	rateLimitHits = register(prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "api",
		Name:      "rate_limit_hits_total",
		Help:      "Quantidade de respostas bloqueadas pelo rate limit",
	}, []string{"route"}))

	upstreamFailures = register(prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_query_failures_total",
		Help:      "Consultas ao banco que falharam e foram tratadas como vazias",
	}, []string{"dataset"}))

	healthScore = register(prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "health_score",
		Help:      "Último score de SEO calculado por período",
	}, []string{"period"}))

	syncRuns = register(prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scheduler",
		Name:      "runs_total",
		Help:      "Execuções dos jobs agendados por resultado",
	}, []string{"job", "result"}))
)

// register reaproveita o coletor já registrado quando o pacote é carregado mais de uma vez
func register[T prometheus.Collector](collector T) T {
	if err := prometheus.Register(collector); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
	}
	return collector
}

func RecordRequest(method, route string, status int, duration time.Duration) {
	labels := prometheus.Labels{
		"method": method,
		"route":  route,
		"status": strconv.Itoa(status),
	}
	requestTotal.With(labels).Inc()
	requestLatency.With(labels).Observe(duration.Seconds())
}

func RecordRateLimitHit(route string) {
	rateLimitHits.WithLabelValues(route).Inc()
}

func RecordUpstreamFailure(dataset string) {
	upstreamFailures.WithLabelValues(dataset).Inc()
}

func SetHealthScore(period string, score int) {
	healthScore.WithLabelValues(period).Set(float64(score))
}

func RecordSyncRun(job string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	syncRuns.WithLabelValues(job, result).Inc()
}
