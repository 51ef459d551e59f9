package scoring

import (
	"math"
	"time"

	"github.com/vfg2006/realestate-seo-api/internal/domain"
	"github.com/vfg2006/realestate-seo-api/pkg/utils"
)

// TrendDays devolve os últimos N dias, do mais antigo para o mais recente,
// no formato YYYY-MM-DD e no fuso informado.
func TrendDays(now time.Time, days int, loc *time.Location) []string {
	if loc == nil {
		loc = time.UTC
	}

	local := now.In(loc)
	result := make([]string, 0, days)
	for i := days - 1; i >= 0; i-- {
		result = append(result, local.AddDate(0, 0, -i).Format(time.DateOnly))
	}
	return result
}

// CountTrend conta os instantes por dia. Todos os dias aparecem na série, inclusive os vazios.
func CountTrend(now time.Time, days int, loc *time.Location, timestamps []time.Time) []domain.TrendPoint {
	counts := make(map[string]int)
	for _, ts := range timestamps {
		counts[dayKey(ts, loc)]++
	}

	trend := make([]domain.TrendPoint, 0, days)
	for _, day := range TrendDays(now, days, loc) {
		trend = append(trend, domain.TrendPoint{Date: day, Value: float64(counts[day])})
	}
	return trend
}

// AverageKeywordPositionTrend é a posição média diária das palavras-chave ranqueadas;
// dias sem observação ranqueada ficam com valor 0.
func AverageKeywordPositionTrend(now time.Time, days int, loc *time.Location, rankings []domain.KeywordRanking) []domain.TrendPoint {
	byDay := make(map[string][]domain.KeywordRanking)
	for _, ranking := range rankings {
		key := dayKey(ranking.Date, loc)
		byDay[key] = append(byDay[key], ranking)
	}

	trend := make([]domain.TrendPoint, 0, days)
	for _, day := range TrendDays(now, days, loc) {
		trend = append(trend, domain.TrendPoint{Date: day, Value: AveragePosition(byDay[day])})
	}
	return trend
}

// PerformanceTrend agrega os snapshots por dia. Diferente das séries de contagem,
// dias sem nenhum snapshot são omitidos.
func PerformanceTrend(now time.Time, days int, loc *time.Location, snapshots []domain.MonitoringSnapshot) []domain.PerformanceTrendPoint {
	byDay := make(map[string][]domain.MonitoringSnapshot)
	for _, snapshot := range snapshots {
		key := dayKey(snapshot.Timestamp, loc)
		byDay[key] = append(byDay[key], snapshot)
	}

	trend := make([]domain.PerformanceTrendPoint, 0)
	for _, day := range TrendDays(now, days, loc) {
		daySnapshots, ok := byDay[day]
		if !ok || len(daySnapshots) == 0 {
			continue
		}

		point := domain.PerformanceTrendPoint{Date: day, Samples: len(daySnapshots)}
		for _, s := range daySnapshots {
			point.PageSpeedDesktop += s.PageSpeedDesktop
			point.PageSpeedMobile += s.PageSpeedMobile
			point.LCP += s.LCP
			point.FID += s.FID
			point.CLS += s.CLS
		}

		n := float64(len(daySnapshots))
		point.PageSpeedDesktop = utils.RoundWithTwoDecimalPlace(point.PageSpeedDesktop / n)
		point.PageSpeedMobile = utils.RoundWithTwoDecimalPlace(point.PageSpeedMobile / n)
		point.LCP = utils.RoundWithTwoDecimalPlace(point.LCP / n)
		point.FID = utils.RoundWithTwoDecimalPlace(point.FID / n)
		point.CLS = roundThreeDecimals(point.CLS / n)

		trend = append(trend, point)
	}

	return trend
}

func dayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(time.DateOnly)
}

func roundThreeDecimals(f float64) float64 {
	return math.Round(f*1000) / 1000
}
