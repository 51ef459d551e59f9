package analyzing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/realestate-seo-api/infrastructure/repository/mocks"
	"github.com/vfg2006/realestate-seo-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

type repositoryMocks struct {
	events     *mocks.MockEventRepository
	monitoring *mocks.MockMonitoringRepository
	keywords   *mocks.MockKeywordRankingRepository
	pageCounts *mocks.MockPageCountRepository
	issues     *mocks.MockSEOIssueRepository
	history    *mocks.MockScoreHistoryRepository
}

func newTestService(t *testing.T) (*Service, repositoryMocks) {
	ctrl := gomock.NewController(t)

	m := repositoryMocks{
		events:     mocks.NewMockEventRepository(ctrl),
		monitoring: mocks.NewMockMonitoringRepository(ctrl),
		keywords:   mocks.NewMockKeywordRankingRepository(ctrl),
		pageCounts: mocks.NewMockPageCountRepository(ctrl),
		issues:     mocks.NewMockSEOIssueRepository(ctrl),
		history:    mocks.NewMockScoreHistoryRepository(ctrl),
	}

	service := NewService(nil, m.events, m.monitoring, m.keywords, m.pageCounts, m.issues, m.history).
		WithClock(func() time.Time { return fixedNow })

	return service, m
}

func pageViewAt(sessionID, referrer, pageURL string, ts time.Time) domain.Event {
	return domain.Event{
		Event:     domain.EventTypePageView,
		Timestamp: ts,
		SessionID: sessionID,
		Referrer:  referrer,
		PageURL:   pageURL,
	}
}

func dashboardEvents() []domain.Event {
	return []domain.Event{
		pageViewAt("s1", "https://www.google.com/search", "/imoveis/1", fixedNow.Add(-time.Hour)),
		pageViewAt("s1", "https://google.com", "/imoveis/1", fixedNow.Add(-50*time.Minute)),
		pageViewAt("s2", "", "/blog/dicas", fixedNow.Add(-2*time.Hour)),
		pageViewAt("s3", "https://facebook.com", "/imoveis/1", fixedNow.Add(-3*time.Hour)),
		{Event: domain.EventTypeConversion, Timestamp: fixedNow.Add(-40 * time.Minute), SessionID: "s1"},
	}
}

func monitoringSnapshots() []domain.MonitoringSnapshot {
	return []domain.MonitoringSnapshot{
		{
			Timestamp:            fixedNow.Add(-48 * time.Hour),
			URL:                  "https://imoveis.example.com",
			PageSpeedDesktop:     60,
			PageSpeedMobile:      40,
			LCP:                  5.0,
			FID:                  120,
			CLS:                  0.3,
			MobileUsabilityScore: 70,
			DomainAuthority:      38,
		},
		{
			Timestamp:            fixedNow.Add(-time.Hour),
			URL:                  "https://imoveis.example.com",
			PageSpeedDesktop:     92,
			PageSpeedMobile:      78,
			LCP:                  2.1,
			FID:                  80,
			CLS:                  0.05,
			FCP:                  1.5,
			TTFB:                 600,
			MobileUsabilityScore: 88,
			DomainAuthority:      40,
		},
	}
}

func keywordRankings() []domain.KeywordRanking {
	yesterday := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	twoDaysAgo := time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)

	return []domain.KeywordRanking{
		{Keyword: "apartamento sp", Position: 3, SearchVolume: 1000, URL: "/imoveis/1", Date: yesterday},
		{Keyword: "apartamento sp", Position: 5, SearchVolume: 800, URL: "/imoveis/1", Date: twoDaysAgo},
		{Keyword: "casa campinas", Position: 12, SearchVolume: 500, URL: "/imoveis/2", Date: yesterday},
		{Keyword: "terreno", Position: 0, SearchVolume: 50, URL: "/imoveis/3", Date: yesterday},
	}
}

func openIssues() []domain.SEOIssue {
	return []domain.SEOIssue{
		{ID: 1, Type: "meta", Message: "Meta description ausente", URL: "/imoveis/1", Priority: domain.IssuePriorityHigh, Status: domain.IssueStatusOpen},
		{ID: 2, Type: "content", Message: "Título duplicado", URL: "/blog/dicas", Priority: domain.IssuePriorityMedium, Status: domain.IssueStatusOpen},
	}
}

func TestGetDashboard(t *testing.T) {
	service, m := newTestService(t)

	m.events.EXPECT().ListByPeriod(gomock.Any(), fixedNow.AddDate(0, 0, -30), fixedNow).Return(dashboardEvents(), nil)
	m.monitoring.EXPECT().ListByPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(monitoringSnapshots(), nil)
	m.keywords.EXPECT().ListByPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(keywordRankings(), nil)
	m.pageCounts.EXPECT().CountPages(gomock.Any()).Return(domain.PageCounts{Properties: 40, Listings: 20, Blogs: 15, Policies: 5}, nil)
	m.issues.EXPECT().ListOpen(gomock.Any()).Return(openIssues(), nil)

	result, err := service.GetDashboard(context.Background(), "")

	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 80, result.Overview.TotalPages)
	assert.Equal(t, 2, result.Overview.IndexedPages)
	assert.Equal(t, 2, result.Overview.OrganicTraffic)
	assert.Equal(t, 6.67, result.Overview.AverageRanking)
	assert.Equal(t, float64(40), result.Overview.DomainAuthority)

	// 0.625 indexação + 8 autoridade + 20 performance + 0 tráfego + 3 palavras-chave - 4 penalidade
	assert.Equal(t, 28, result.Overview.SEOScore.Score)
	assert.Equal(t, domain.GradeF, result.Overview.SEOScore.Grade)
	assert.Equal(t, float64(20), result.Overview.SEOScore.Breakdown.Performance)
	assert.Equal(t, float64(3), result.Overview.SEOScore.Breakdown.Keywords)
	assert.Equal(t, float64(4), result.Overview.SEOScore.Breakdown.IssuePenalty)

	assert.Equal(t, 80, result.Performance.PageSpeed)
	assert.Equal(t, 88, result.Performance.MobileUsability)
	assert.Equal(t, domain.CoreWebVitals{LCP: 2.1, FID: 80, CLS: 0.05}, result.Performance.CoreWebVitals)

	assert.Equal(t, []domain.PageViews{{URL: "/imoveis/1", Views: 3}, {URL: "/blog/dicas", Views: 1}}, result.Content.TopPerformingPages)
	assert.Equal(t, []domain.TopKeyword{
		{Keyword: "apartamento sp", Position: 3, Traffic: 1000},
		{Keyword: "casa campinas", Position: 12, Traffic: 500},
		{Keyword: "terreno", Position: 0, Traffic: 50},
	}, result.Content.TopKeywords)

	require.Len(t, result.Issues, 2)
	assert.Equal(t, "meta", result.Issues[0].Type)
	assert.Equal(t, "content", result.Issues[1].Type)
	assert.Equal(t, "2024-03-15T12:00:00Z", result.LastUpdated)
}

func TestGetDashboardAppendsSnapshotIssues(t *testing.T) {
	service, m := newTestService(t)

	m.events.EXPECT().ListByPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.monitoring.EXPECT().ListByPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return([]domain.MonitoringSnapshot{
		{Timestamp: fixedNow.Add(-time.Hour), LCP: 5.0, FID: 200, CLS: 0.05, MobileUsabilityScore: 30},
	}, nil)
	m.keywords.EXPECT().ListByPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.pageCounts.EXPECT().CountPages(gomock.Any()).Return(domain.PageCounts{}, nil)
	m.issues.EXPECT().ListOpen(gomock.Any()).Return(openIssues()[:1], nil)

	result, err := service.GetDashboard(context.Background(), "7d")

	require.NoError(t, err)

	priorities := make([]string, 0, len(result.Issues))
	for _, issue := range result.Issues {
		priorities = append(priorities, issue.Priority)
	}

	// problema salvo, LCP ruim, FID a melhorar, usabilidade mobile baixa
	assert.Equal(t, []string{
		domain.IssuePriorityHigh,
		domain.IssuePriorityHigh,
		domain.IssuePriorityMedium,
		domain.IssuePriorityHigh,
	}, priorities)
	assert.Equal(t, float64(10), result.Overview.SEOScore.Breakdown.IssuePenalty)
	assert.Equal(t, 0, result.Overview.SEOScore.Score)
}

func TestGetDashboardAbsorbsDatasetFailures(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(m repositoryMocks)
		validate func(t *testing.T, result *domain.DashboardResponse)
	}{
		{
			name: "Falha nos eventos zera tráfego e páginas mais vistas",
			setup: func(m repositoryMocks) {
				m.events.EXPECT().ListByPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("conexão recusada"))
				m.monitoring.EXPECT().ListByPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(monitoringSnapshots(), nil)
				m.keywords.EXPECT().ListByPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(keywordRankings(), nil)
				m.pageCounts.EXPECT().CountPages(gomock.Any()).Return(domain.PageCounts{Properties: 80}, nil)
				m.issues.EXPECT().ListOpen(gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.DashboardResponse) {
				assert.Equal(t, 0, result.Overview.OrganicTraffic)
				assert.Empty(t, result.Content.TopPerformingPages)
				assert.Equal(t, 80, result.Overview.TotalPages)
				assert.Len(t, result.Content.TopKeywords, 3)
			},
		},
		{
			name: "Falha em todas as consultas devolve dashboard vazio",
			setup: func(m repositoryMocks) {
				dbErr := errors.New("timeout")
				m.events.EXPECT().ListByPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr)
				m.monitoring.EXPECT().ListByPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr)
				m.keywords.EXPECT().ListByPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr)
				m.pageCounts.EXPECT().CountPages(gomock.Any()).Return(domain.PageCounts{}, dbErr)
				m.issues.EXPECT().ListOpen(gomock.Any()).Return(nil, dbErr)
			},
			validate: func(t *testing.T, result *domain.DashboardResponse) {
				assert.Equal(t, 0, result.Overview.TotalPages)
				assert.Equal(t, 0, result.Overview.SEOScore.Score)
				assert.Equal(t, domain.GradeF, result.Overview.SEOScore.Grade)
				assert.Equal(t, 0, result.Performance.PageSpeed)
				assert.Empty(t, result.Issues)
				assert.Empty(t, result.Content.TopKeywords)
			},
		},
		{
			name: "Panic na contagem de páginas é tratado como falha do dataset",
			setup: func(m repositoryMocks) {
				m.events.EXPECT().ListByPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(dashboardEvents(), nil)
				m.monitoring.EXPECT().ListByPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				m.keywords.EXPECT().ListByPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				m.pageCounts.EXPECT().CountPages(gomock.Any()).DoAndReturn(func(ctx context.Context) (domain.PageCounts, error) {
					panic("driver em estado inválido")
				})
				m.issues.EXPECT().ListOpen(gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.DashboardResponse) {
				assert.Equal(t, 0, result.Overview.TotalPages)
				assert.Equal(t, 2, result.Overview.OrganicTraffic)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			tt.setup(m)

			result, err := service.GetDashboard(context.Background(), "30d")

			require.NoError(t, err)
			require.NotNil(t, result)
			tt.validate(t, result)
		})
	}
}

func TestGetAnalytics(t *testing.T) {
	service, m := newTestService(t)

	start := fixedNow.Add(-6 * time.Hour)
	events := []domain.Event{
		pageViewAt("A", "", "/imoveis/1", start),
		pageViewAt("B", "https://bing.com", "/imoveis/2", start.Add(10*time.Minute)),
		pageViewAt("C", "https://instagram.com", "/imoveis/3", start.Add(20*time.Minute)),
		pageViewAt("B", "https://bing.com", "/imoveis/2", start.Add(12*time.Minute)),
		pageViewAt("C", "https://instagram.com", "/imoveis/3", start.Add(25*time.Minute)),
	}

	m.events.EXPECT().ListByPeriod(gomock.Any(), fixedNow.AddDate(0, 0, -7), fixedNow).Return(events, nil)
	m.keywords.EXPECT().ListByPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(keywordRankings(), nil)

	result, err := service.GetAnalytics(context.Background(), "7d")

	require.NoError(t, err)
	assert.Equal(t, domain.Period7Days, result.Period)
	assert.Equal(t, "2024-03-08T12:00:00Z", result.StartDate)
	assert.Equal(t, "2024-03-15T12:00:00Z", result.EndDate)

	assert.Equal(t, 3, result.Traffic.TotalSessions)
	assert.Equal(t, 5, result.Traffic.PageViews)
	assert.Equal(t, 33.33, result.Traffic.BounceRate)
	assert.Equal(t, float64(140), result.Traffic.AverageSessionDuration)
	assert.Equal(t, float64(0), result.Traffic.ConversionRate)
	assert.Equal(t, domain.TrafficSources{Organic: 2, Direct: 1, Social: 2, Referral: 0}, result.Traffic.Sources)

	assert.Equal(t, 3, result.Keywords.TotalKeywords)
	assert.Equal(t, 6.67, result.Keywords.AveragePosition)
	assert.Equal(t, domain.RankingChanges{Improved: 1}, result.Keywords.RankingChanges)

	require.Len(t, result.Trends.Traffic, 7)
	assert.Equal(t, domain.TrendPoint{Date: "2024-03-15", Value: 5}, result.Trends.Traffic[6])
	assert.Equal(t, domain.TrendPoint{Date: "2024-03-09", Value: 0}, result.Trends.Traffic[0])
	require.Len(t, result.Trends.Conversions, 7)
	require.Len(t, result.Trends.KeywordPosition, 7)
	assert.Equal(t, 7.5, result.Trends.KeywordPosition[5].Value)
}

func TestGetPerformance(t *testing.T) {
	t.Run("Snapshot mais recente define métricas e scores", func(t *testing.T) {
		service, m := newTestService(t)
		m.monitoring.EXPECT().ListByPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(monitoringSnapshots(), nil)

		result, err := service.GetPerformance(context.Background(), "30d")

		require.NoError(t, err)
		assert.Equal(t, "2024-03-15T11:00:00Z", result.LastChecked)
		assert.Equal(t, domain.PerformanceScores{Overall: 89, CoreWebVitals: 100, PageSpeed: 80, MobileUsability: 88}, result.Scores)
		assert.Equal(t, domain.VitalTierGood, result.Vitals.LCP)
		assert.Equal(t, domain.VitalTierGood, result.Vitals.TTFB)
		assert.Equal(t, 2.1, result.Metrics.LCP)
		assert.Empty(t, result.Recommendations)

		require.Len(t, result.Trend, 2)
		assert.Equal(t, "2024-03-13", result.Trend[0].Date)
		assert.Equal(t, "2024-03-15", result.Trend[1].Date)
	})

	t.Run("Sem snapshots no período", func(t *testing.T) {
		service, m := newTestService(t)
		m.monitoring.EXPECT().ListByPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("falha"))

		result, err := service.GetPerformance(context.Background(), "90d")

		require.NoError(t, err)
		assert.Equal(t, domain.Period90Days, result.Period)
		assert.Empty(t, result.LastChecked)
		assert.Equal(t, domain.PerformanceScores{}, result.Scores)
		assert.Empty(t, result.Trend)
		assert.Empty(t, result.Recommendations)
	})
}

func TestGetScoreHistory(t *testing.T) {
	tests := []struct {
		name          string
		days          int
		expectedSince string
		expectedDays  int
		repoErr       error
		expectError   bool
	}{
		{
			name:          "Sem dias informados usa 30",
			days:          0,
			expectedSince: "2024-02-15",
			expectedDays:  30,
		},
		{
			name:          "Dias acima do máximo são limitados",
			days:          1000,
			expectedSince: "2023-03-17",
			expectedDays:  365,
		},
		{
			name:          "Um dia retorna apenas hoje",
			days:          1,
			expectedSince: "2024-03-15",
			expectedDays:  1,
		},
		{
			name:          "Erro do repositório é propagado",
			days:          7,
			expectedSince: "2024-03-09",
			expectedDays:  7,
			repoErr:       errors.New("conexão perdida"),
			expectError:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)

			m.history.EXPECT().
				ListSince(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, since time.Time) ([]domain.ScoreSnapshot, error) {
					assert.Equal(t, tt.expectedSince, since.Format(time.DateOnly))
					if tt.repoErr != nil {
						return nil, tt.repoErr
					}
					return []domain.ScoreSnapshot{{ID: "abc", Score: 70, Grade: domain.GradeB}}, nil
				})

			result, err := service.GetScoreHistory(context.Background(), tt.days)

			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.repoErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedDays, result.Days)
			assert.Len(t, result.Snapshots, 1)
		})
	}
}

func TestBuildScoreSnapshot(t *testing.T) {
	service, m := newTestService(t)

	m.events.EXPECT().ListByPeriod(gomock.Any(), fixedNow.AddDate(0, 0, -30), fixedNow).Return(nil, nil)
	m.monitoring.EXPECT().ListByPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.keywords.EXPECT().ListByPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.pageCounts.EXPECT().CountPages(gomock.Any()).Return(domain.PageCounts{}, nil)
	m.issues.EXPECT().ListOpen(gomock.Any()).Return(nil, nil)

	snapshot, err := service.BuildScoreSnapshot(context.Background(), "semestral")

	require.NoError(t, err)
	assert.Empty(t, snapshot.ID)
	assert.Equal(t, domain.Period30Days, snapshot.Period)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), snapshot.Date)
	assert.Equal(t, 0, snapshot.Score)
	assert.Equal(t, domain.GradeF, snapshot.Grade)
}
