package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/realestate-seo-api/internal/usecases/analyzing"
	"github.com/vfg2006/realestate-seo-api/pkg/apiErrors"
	"github.com/vfg2006/realestate-seo-api/pkg/log"
)

func GetDashboard(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		period := r.URL.Query().Get("period")

		dashboard, err := service.GetDashboard(r.Context(), period)
		if err != nil {
			logger.WithFields(log.Fields{
				"period": period,
				"error":  err.Error(),
			}).Error("seo: failed to build dashboard")

			apiErrors.WriteInternalError(w)
			return
		}

		logger.WithFields(log.Fields{
			"period": period,
			"score":  dashboard.Overview.SEOScore.Score,
		}).Info("seo: dashboard built")

		writeJSON(w, r, http.StatusOK, dashboard)
	})
}

func GetAnalytics(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		period := r.URL.Query().Get("period")

		analytics, err := service.GetAnalytics(r.Context(), period)
		if err != nil {
			logger.WithFields(log.Fields{
				"period": period,
				"error":  err.Error(),
			}).Error("seo: failed to build analytics")

			apiErrors.WriteInternalError(w)
			return
		}

		writeJSON(w, r, http.StatusOK, analytics)
	})
}

func GetPerformance(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		period := r.URL.Query().Get("period")

		performance, err := service.GetPerformance(r.Context(), period)
		if err != nil {
			logger.WithFields(log.Fields{
				"period": period,
				"error":  err.Error(),
			}).Error("seo: failed to build performance report")

			apiErrors.WriteInternalError(w)
			return
		}

		writeJSON(w, r, http.StatusOK, performance)
	})
}

// GetScoreHistory lista os scores diários gravados; days ausente usa o padrão do serviço
func GetScoreHistory(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		days := 0
		if raw := r.URL.Query().Get("days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				logger.WithField("days", raw).Warn("seo: invalid days parameter")
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "O parâmetro days deve ser um inteiro positivo", map[string]string{"field": "days"})
				return
			}
			days = parsed
		}

		history, err := service.GetScoreHistory(r.Context(), days)
		if err != nil {
			logger.WithField("error", err.Error()).Error("seo: failed to list score history")
			apiErrors.WriteInternalError(w)
			return
		}

		writeJSON(w, r, http.StatusOK, history)
	})
}
