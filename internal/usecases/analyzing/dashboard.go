package analyzing

import (
	"context"
	"time"

	"github.com/vfg2006/realestate-seo-api/internal/domain"
	"github.com/vfg2006/realestate-seo-api/internal/usecases/scoring"
	"github.com/vfg2006/realestate-seo-api/pkg/metrics"
)

func (s *Service) GetDashboard(ctx context.Context, period string) (response *domain.DashboardResponse, err error) {
	defer recoverAggregation(ctx, "dashboard", &err)

	dateRange := scoring.ResolvePeriod(period, s.now())
	data := s.fetch(ctx, dateRange,
		datasetEvents,
		datasetMonitoring,
		datasetKeywords,
		datasetPageCounts,
		datasetIssues,
	)

	response = s.buildDashboard(data)
	metrics.SetHealthScore(string(dateRange.Period), response.Overview.SEOScore.Score)

	return response, nil
}

func (s *Service) buildDashboard(data *periodData) *domain.DashboardResponse {
	pageViews := domain.FilterEventsByType(data.events, domain.EventTypePageView)
	sources := scoring.ClassifyTraffic(pageViews)

	latest := domain.LatestSnapshot(data.snapshots)
	snapshot := domain.MonitoringSnapshot{}
	if latest != nil {
		snapshot = *latest
	}

	issues := make([]domain.IssueItem, 0, len(data.issues))
	for _, issue := range data.issues {
		issues = append(issues, issue.ToItem())
	}
	issues = append(issues, scoring.DeriveSnapshotIssues(latest)...)

	totalPages := data.pageCounts.Total()
	indexedPages := scoring.IndexedPages(data.rankings, totalPages)

	score := scoring.CalculateHealthScore(scoring.HealthScoreInput{
		TotalPages:      totalPages,
		IndexedPages:    indexedPages,
		DomainAuthority: snapshot.DomainAuthority,
		LCP:             snapshot.LCP,
		FID:             snapshot.FID,
		CLS:             snapshot.CLS,
		OrganicTraffic:  sources.Organic,
		KeywordCount:    scoring.CountKeywords(data.rankings),
		Issues:          issues,
	})

	return &domain.DashboardResponse{
		Overview: domain.DashboardOverview{
			TotalPages:      totalPages,
			IndexedPages:    indexedPages,
			OrganicTraffic:  sources.Organic,
			AverageRanking:  scoring.AveragePosition(data.rankings),
			DomainAuthority: snapshot.DomainAuthority,
			SEOScore:        score,
		},
		Performance: domain.DashboardPerformance{
			PageSpeed:       scoring.PageSpeedScore(snapshot.PageSpeedDesktop, snapshot.PageSpeedMobile),
			MobileUsability: scoring.MobileUsabilityScore(snapshot.MobileUsabilityScore),
			CoreWebVitals: domain.CoreWebVitals{
				LCP: snapshot.LCP,
				FID: snapshot.FID,
				CLS: snapshot.CLS,
			},
		},
		Content: domain.DashboardContent{
			TopPerformingPages: scoring.TopPages(pageViews, s.topPagesLimit),
			TopKeywords:        scoring.TopKeywords(data.rankings, s.topKeywordsLimit),
		},
		Issues:      issues,
		LastUpdated: s.now().UTC().Format(time.RFC3339),
	}
}

// BuildScoreSnapshot calcula o dashboard do período e devolve o score do dia sem ID;
// quem persiste é responsável por gerar o identificador.
func (s *Service) BuildScoreSnapshot(ctx context.Context, period string) (*domain.ScoreSnapshot, error) {
	dateRange := scoring.ResolvePeriod(period, s.now())

	dashboard, err := s.GetDashboard(ctx, string(dateRange.Period))
	if err != nil {
		return nil, err
	}

	today := dateRange.EndDate.In(s.location)
	score := dashboard.Overview.SEOScore

	return &domain.ScoreSnapshot{
		Date:      time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC),
		Period:    dateRange.Period,
		Score:     score.Score,
		Grade:     score.Grade,
		Breakdown: score.Breakdown,
	}, nil
}
