package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/realestate-seo-api/internal/domain"
)

func TestTrendDays(t *testing.T) {
	now := time.Date(2024, 3, 2, 15, 0, 0, 0, time.UTC)

	days := TrendDays(now, 3, time.UTC)

	assert.Equal(t, []string{"2024-02-29", "2024-03-01", "2024-03-02"}, days)
}

func TestCountTrend(t *testing.T) {
	now := time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)
	timestamps := []time.Time{
		time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 10, 11, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 8, 23, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
	}

	trend := CountTrend(now, 7, time.UTC, timestamps)

	require.Len(t, trend, 7)
	assert.Equal(t, "2024-03-04", trend[0].Date)
	assert.Equal(t, "2024-03-10", trend[6].Date)
	assert.Equal(t, 2.0, trend[6].Value)
	assert.Equal(t, 1.0, trend[4].Value)
	assert.Equal(t, 0.0, trend[5].Value)
	assert.Equal(t, 0.0, trend[0].Value)
}

func TestCountTrendUsesLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, loc)

	// 01:00 UTC do dia 10 ainda é dia 9 no fuso -03:00
	trend := CountTrend(now, 2, loc, []time.Time{time.Date(2024, 3, 10, 1, 0, 0, 0, time.UTC)})

	assert.Equal(t, []domain.TrendPoint{
		{Date: "2024-03-09", Value: 1},
		{Date: "2024-03-10", Value: 0},
	}, trend)
}

func TestAverageKeywordPositionTrend(t *testing.T) {
	now := time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)
	day := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	trend := AverageKeywordPositionTrend(now, 2, time.UTC, []domain.KeywordRanking{
		{Keyword: "a", Position: 4, Date: day},
		{Keyword: "b", Position: 8, Date: day},
		{Keyword: "c", Position: 0, Date: day},
	})

	assert.Equal(t, []domain.TrendPoint{
		{Date: "2024-03-09", Value: 6},
		{Date: "2024-03-10", Value: 0},
	}, trend)
}

func TestPerformanceTrendSkipsEmptyDays(t *testing.T) {
	now := time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)
	snapshots := []domain.MonitoringSnapshot{
		{Timestamp: time.Date(2024, 3, 8, 8, 0, 0, 0, time.UTC), PageSpeedDesktop: 90, PageSpeedMobile: 70, LCP: 2, FID: 100, CLS: 0.1},
		{Timestamp: time.Date(2024, 3, 8, 20, 0, 0, 0, time.UTC), PageSpeedDesktop: 80, PageSpeedMobile: 60, LCP: 3, FID: 200, CLS: 0.2},
		{Timestamp: time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC), PageSpeedDesktop: 99, PageSpeedMobile: 91, LCP: 1.5, FID: 40, CLS: 0.02},
	}

	trend := PerformanceTrend(now, 7, time.UTC, snapshots)

	require.Len(t, trend, 2)
	assert.Equal(t, domain.PerformanceTrendPoint{
		Date:             "2024-03-08",
		PageSpeedDesktop: 85,
		PageSpeedMobile:  65,
		LCP:              2.5,
		FID:              150,
		CLS:              0.15,
		Samples:          2,
	}, trend[0])
	assert.Equal(t, "2024-03-10", trend[1].Date)
	assert.Equal(t, 1, trend[1].Samples)
}

func TestPerformanceTrendWithoutSnapshots(t *testing.T) {
	trend := PerformanceTrend(time.Now(), 30, time.UTC, nil)

	assert.NotNil(t, trend)
	assert.Empty(t, trend)
}
