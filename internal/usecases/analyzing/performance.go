package analyzing

import (
	"context"
	"time"

	"github.com/vfg2006/realestate-seo-api/internal/domain"
	"github.com/vfg2006/realestate-seo-api/internal/usecases/scoring"
)

func (s *Service) GetPerformance(ctx context.Context, period string) (response *domain.PerformanceResponse, err error) {
	defer recoverAggregation(ctx, "performance", &err)

	dateRange := scoring.ResolvePeriod(period, s.now())
	data := s.fetch(ctx, dateRange, datasetMonitoring)

	response = &domain.PerformanceResponse{
		Period:          dateRange.Period,
		Trend:           scoring.PerformanceTrend(dateRange.EndDate, dateRange.Days(), s.location, data.snapshots),
		Recommendations: []domain.IssueItem{},
	}

	latest := domain.LatestSnapshot(data.snapshots)
	// sem medição no período não há o que classificar
	if latest == nil {
		return response, nil
	}

	response.LastChecked = latest.Timestamp.UTC().Format(time.RFC3339)
	response.Scores = scoring.PerformanceScores(*latest)
	response.Vitals = scoring.ClassifySnapshot(*latest)
	response.Metrics = domain.PerformanceMetrics{
		URL:              latest.URL,
		PageSpeedDesktop: latest.PageSpeedDesktop,
		PageSpeedMobile:  latest.PageSpeedMobile,
		LCP:              latest.LCP,
		FID:              latest.FID,
		CLS:              latest.CLS,
		FCP:              latest.FCP,
		TTFB:             latest.TTFB,
		MobileUsability:  latest.MobileUsabilityScore,
	}
	response.Recommendations = scoring.DeriveSnapshotIssues(latest)

	return response, nil
}
