package analyzing

import (
	"context"
	"time"

	"github.com/vfg2006/realestate-seo-api/internal/domain"
	"github.com/vfg2006/realestate-seo-api/internal/usecases/scoring"
)

func (s *Service) GetAnalytics(ctx context.Context, period string) (response *domain.AnalyticsResponse, err error) {
	defer recoverAggregation(ctx, "analytics", &err)

	dateRange := scoring.ResolvePeriod(period, s.now())
	data := s.fetch(ctx, dateRange, datasetEvents, datasetKeywords)

	pageViews := domain.FilterEventsByType(data.events, domain.EventTypePageView)
	conversions := domain.FilterEventsByType(data.events, domain.EventTypeConversion)

	return &domain.AnalyticsResponse{
		Period:    dateRange.Period,
		StartDate: dateRange.StartDate.UTC().Format(time.RFC3339),
		EndDate:   dateRange.EndDate.UTC().Format(time.RFC3339),
		Traffic: domain.TrafficSummary{
			SessionMetrics: scoring.CalculateSessionMetrics(data.events),
			Sources:        scoring.ClassifyTraffic(pageViews),
		},
		Keywords: domain.KeywordSummary{
			TotalKeywords:   scoring.CountKeywords(data.rankings),
			AveragePosition: scoring.AveragePosition(data.rankings),
			TopKeywords:     scoring.TopKeywords(data.rankings, s.topKeywordsLimit),
			RankingChanges:  scoring.CalculateRankingChanges(data.rankings),
		},
		Trends: domain.AnalyticsTrends{
			Traffic:         scoring.CountTrend(dateRange.EndDate, dateRange.Days(), s.location, timestamps(pageViews)),
			Conversions:     scoring.CountTrend(dateRange.EndDate, dateRange.Days(), s.location, timestamps(conversions)),
			KeywordPosition: scoring.AverageKeywordPositionTrend(dateRange.EndDate, dateRange.Days(), s.location, data.rankings),
		},
	}, nil
}

func timestamps(events []domain.Event) []time.Time {
	result := make([]time.Time, 0, len(events))
	for _, event := range events {
		result = append(result, event.Timestamp)
	}
	return result
}
