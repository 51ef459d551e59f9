package scoring

import (
	"math"

	"github.com/vfg2006/realestate-seo-api/internal/domain"
)

// Metric identifica uma métrica de Web Vitals
type Metric string

const (
	MetricLCP  Metric = "lcp"
	MetricFID  Metric = "fid"
	MetricCLS  Metric = "cls"
	MetricFCP  Metric = "fcp"
	MetricTTFB Metric = "ttfb"
)

type threshold struct {
	good             float64
	needsImprovement float64
}

// Limites oficiais do Core Web Vitals (LCP/FCP em segundos, FID/TTFB em ms)
var thresholds = map[Metric]threshold{
	MetricLCP:  {good: 2.5, needsImprovement: 4.0},
	MetricFID:  {good: 100, needsImprovement: 300},
	MetricCLS:  {good: 0.1, needsImprovement: 0.25},
	MetricFCP:  {good: 1.8, needsImprovement: 3.0},
	MetricTTFB: {good: 800, needsImprovement: 1800},
}

// tierPoints é uma tabela de pontos por faixa
type tierPoints struct {
	good             float64
	needsImprovement float64
	poor             float64
}

func (p tierPoints) award(tier domain.VitalTier) float64 {
	switch tier {
	case domain.VitalTierGood:
		return p.good
	case domain.VitalTierNeedsImprovement:
		return p.needsImprovement
	default:
		return p.poor
	}
}

// Pontuação detalhada de página (até 100)
var (
	coreWebVitalsLCPPoints = tierPoints{good: 40, needsImprovement: 20}
	coreWebVitalsFIDPoints = tierPoints{good: 30, needsImprovement: 15}
	coreWebVitalsCLSPoints = tierPoints{good: 30, needsImprovement: 15}
)

// ClassifyVital enquadra o valor medido na faixa good / needs-improvement / poor
func ClassifyVital(metric Metric, value float64) domain.VitalTier {
	limits, ok := thresholds[metric]
	if !ok {
		return domain.VitalTierPoor
	}

	switch {
	case value <= limits.good:
		return domain.VitalTierGood
	case value <= limits.needsImprovement:
		return domain.VitalTierNeedsImprovement
	default:
		return domain.VitalTierPoor
	}
}

// ClassifySnapshot classifica todas as métricas de um snapshot
func ClassifySnapshot(snapshot domain.MonitoringSnapshot) domain.VitalsClassification {
	return domain.VitalsClassification{
		LCP:  ClassifyVital(MetricLCP, snapshot.LCP),
		FID:  ClassifyVital(MetricFID, snapshot.FID),
		CLS:  ClassifyVital(MetricCLS, snapshot.CLS),
		FCP:  ClassifyVital(MetricFCP, snapshot.FCP),
		TTFB: ClassifyVital(MetricTTFB, snapshot.TTFB),
	}
}

// CoreWebVitalsScore soma LCP (40), FID (30) e CLS (30).
// Sem dados (os três valores zerados) o score é 0, mesmo que zero seja "good".
func CoreWebVitalsScore(lcp, fid, cls float64) int {
	if lcp == 0 && fid == 0 && cls == 0 {
		return 0
	}

	score := coreWebVitalsLCPPoints.award(ClassifyVital(MetricLCP, lcp)) +
		coreWebVitalsFIDPoints.award(ClassifyVital(MetricFID, fid)) +
		coreWebVitalsCLSPoints.award(ClassifyVital(MetricCLS, cls))

	return int(score)
}

// PageSpeedScore faz a média de desktop e mobile e converte para a faixa de pontos
func PageSpeedScore(desktop, mobile float64) int {
	if desktop == 0 && mobile == 0 {
		return 0
	}

	average := (desktop + mobile) / 2
	switch {
	case average >= 90:
		return 100
	case average >= 80:
		return 80
	case average >= 70:
		return 60
	case average >= 50:
		return 40
	default:
		return 20
	}
}

func MobileUsabilityScore(raw float64) int {
	return clampScore(int(math.Round(raw)))
}

// OverallPerformanceScore é a média simples dos três scores compostos
func OverallPerformanceScore(coreWebVitals, pageSpeed, mobileUsability int) int {
	return int(math.Round(float64(coreWebVitals+pageSpeed+mobileUsability) / 3))
}

// PerformanceScores calcula todos os scores de performance de um snapshot
func PerformanceScores(snapshot domain.MonitoringSnapshot) domain.PerformanceScores {
	cwv := CoreWebVitalsScore(snapshot.LCP, snapshot.FID, snapshot.CLS)
	pageSpeed := PageSpeedScore(snapshot.PageSpeedDesktop, snapshot.PageSpeedMobile)
	mobile := MobileUsabilityScore(snapshot.MobileUsabilityScore)

	return domain.PerformanceScores{
		Overall:         OverallPerformanceScore(cwv, pageSpeed, mobile),
		CoreWebVitals:   cwv,
		PageSpeed:       pageSpeed,
		MobileUsability: mobile,
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
