package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/realestate-seo-api/internal/domain"
	"github.com/vfg2006/realestate-seo-api/internal/usecases/tracking"
	"github.com/vfg2006/realestate-seo-api/pkg/apiErrors"
	"github.com/vfg2006/realestate-seo-api/pkg/log"
	"github.com/vfg2006/realestate-seo-api/pkg/utils"
)

// keywordRankingRequest recebe a data como "2006-01-02" ou RFC3339
type keywordRankingRequest struct {
	ID           *int64  `json:"id,omitempty"`
	Keyword      *string `json:"keyword"`
	Position     *int    `json:"position"`
	SearchVolume *int    `json:"search_volume"`
	Date         string  `json:"date"`
	URL          *string `json:"url"`
}

func TrackEvent(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input domain.EventInput
		if err := decodeBody(w, r, &input); err != nil {
			logger.WithField("error", err.Error()).Warn("tracking: invalid event payload")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		event, err := service.TrackEvent(r.Context(), input)
		if err != nil {
			writeTrackingError(w, r, "event", err)
			return
		}

		writeJSON(w, r, http.StatusCreated, event)
	})
}

func RecordMonitoring(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input domain.MonitoringSnapshotInput
		if err := decodeBody(w, r, &input); err != nil {
			logger.WithField("error", err.Error()).Warn("tracking: invalid monitoring payload")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		snapshot, err := service.RecordMonitoring(r.Context(), input)
		if err != nil {
			writeTrackingError(w, r, "monitoring", err)
			return
		}

		writeJSON(w, r, http.StatusCreated, snapshot)
	})
}

// RecordKeywordRankings grava um lote de posições; o corpo é um array JSON
func RecordKeywordRankings(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var requests []keywordRankingRequest
		if err := decodeBody(w, r, &requests); err != nil {
			logger.WithField("error", err.Error()).Warn("tracking: invalid keyword rankings payload")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		inputs := make([]domain.KeywordRankingInput, 0, len(requests))
		for i, req := range requests {
			date, err := utils.ParseDate(req.Date)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato AAAA-MM-DD", map[string]any{
					"field": "date",
					"index": i,
				})
				return
			}

			inputs = append(inputs, domain.KeywordRankingInput{
				ID:           req.ID,
				Keyword:      req.Keyword,
				Position:     req.Position,
				SearchVolume: req.SearchVolume,
				Date:         date,
				URL:          req.URL,
			})
		}

		saved, err := service.RecordKeywordRankings(r.Context(), inputs)
		if err != nil {
			writeTrackingError(w, r, "keywords", err)
			return
		}

		writeJSON(w, r, http.StatusCreated, map[string]int{"saved": saved})
	})
}

func writeTrackingError(w http.ResponseWriter, r *http.Request, dataset string, err error) {
	logger := log.ForContext(r.Context()).WithFields(log.Fields{
		"dataset": dataset,
		"error":   err.Error(),
	})

	var trackingErr *tracking.TrackingError
	if !errors.As(err, &trackingErr) {
		logger.Error("tracking: unexpected error")
		apiErrors.WriteInternalError(w)
		return
	}

	if apiErrors.StatusFor(trackingErr.Code) >= http.StatusInternalServerError {
		logger.Error("tracking: failed to persist")
		apiErrors.WriteError(w, trackingErr.Code, "", nil)
		return
	}

	logger.Warn("tracking: rejected payload")

	var details any
	if trackingErr.Field != "" {
		details = map[string]string{"field": trackingErr.Field}
	}
	apiErrors.WriteError(w, trackingErr.Code, trackingErr.Err.Error(), details)
}
