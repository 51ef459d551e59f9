package scoring

import (
	"math"

	"github.com/vfg2006/realestate-seo-api/internal/domain"
	"github.com/vfg2006/realestate-seo-api/pkg/utils"
)

const (
	indexingWeight        = 25
	domainAuthorityWeight = 20
	maxIssuePenalty       = 10
	highIssuePenalty      = 3
	mediumIssuePenalty    = 1
)

// Pontuação de performance do score geral do site (até 20)
var (
	healthLCPPoints = tierPoints{good: 7, needsImprovement: 4}
	healthFIDPoints = tierPoints{good: 7, needsImprovement: 4}
	healthCLSPoints = tierPoints{good: 6, needsImprovement: 3}
)

type steppedPoints struct {
	above  float64
	points float64
}

var (
	organicTrafficSteps = []steppedPoints{{10000, 15}, {5000, 12}, {1000, 8}, {100, 5}}
	keywordCountSteps   = []steppedPoints{{50, 10}, {20, 7}, {10, 5}, {0, 3}}
)

// HealthScoreInput são as entradas do score geral de SEO
type HealthScoreInput struct {
	TotalPages      int
	IndexedPages    int
	DomainAuthority float64
	LCP             float64
	FID             float64
	CLS             float64
	OrganicTraffic  int
	KeywordCount    int
	Issues          []domain.IssueItem
}

// CalculateHealthScore combina indexação, autoridade, performance, tráfego
// orgânico e palavras-chave, subtrai a penalidade de problemas e devolve o
// score limitado a [0, 100] com o respectivo conceito.
func CalculateHealthScore(in HealthScoreInput) domain.SEOScore {
	breakdown := domain.ScoreBreakdown{
		Indexing:        indexingPoints(in.IndexedPages, in.TotalPages),
		DomainAuthority: in.DomainAuthority / 100 * domainAuthorityWeight,
		Performance:     healthPerformancePoints(in.LCP, in.FID, in.CLS),
		Traffic:         stepPoints(float64(in.OrganicTraffic), organicTrafficSteps),
		Keywords:        stepPoints(float64(in.KeywordCount), keywordCountSteps),
		IssuePenalty:    issuePenalty(in.Issues),
	}

	sum := breakdown.Indexing +
		breakdown.DomainAuthority +
		breakdown.Performance +
		breakdown.Traffic +
		breakdown.Keywords -
		breakdown.IssuePenalty

	score := clampScore(int(math.Round(sum)))

	return domain.SEOScore{
		Score:     score,
		Grade:     Grade(score),
		Breakdown: roundBreakdown(breakdown),
	}
}

// Grade converte o score numérico em conceito
func Grade(score int) string {
	switch {
	case score >= 90:
		return domain.GradeAPlus
	case score >= 80:
		return domain.GradeA
	case score >= 70:
		return domain.GradeB
	case score >= 60:
		return domain.GradeC
	case score >= 50:
		return domain.GradeD
	default:
		return domain.GradeF
	}
}

func indexingPoints(indexed, total int) float64 {
	if total <= 0 {
		return 0
	}
	rate := float64(indexed) / float64(total) * 100
	return rate / 100 * indexingWeight
}

func healthPerformancePoints(lcp, fid, cls float64) float64 {
	if lcp == 0 && fid == 0 && cls == 0 {
		return 0
	}

	return healthLCPPoints.award(ClassifyVital(MetricLCP, lcp)) +
		healthFIDPoints.award(ClassifyVital(MetricFID, fid)) +
		healthCLSPoints.award(ClassifyVital(MetricCLS, cls))
}

func stepPoints(value float64, steps []steppedPoints) float64 {
	for _, step := range steps {
		if value > step.above {
			return step.points
		}
	}
	return 0
}

func issuePenalty(issues []domain.IssueItem) float64 {
	high := domain.CountIssuesByPriority(issues, domain.IssuePriorityHigh)
	medium := domain.CountIssuesByPriority(issues, domain.IssuePriorityMedium)

	penalty := float64(high*highIssuePenalty + medium*mediumIssuePenalty)
	return math.Min(maxIssuePenalty, penalty)
}

func roundBreakdown(b domain.ScoreBreakdown) domain.ScoreBreakdown {
	return domain.ScoreBreakdown{
		Indexing:        utils.RoundWithTwoDecimalPlace(b.Indexing),
		DomainAuthority: utils.RoundWithTwoDecimalPlace(b.DomainAuthority),
		Performance:     utils.RoundWithTwoDecimalPlace(b.Performance),
		Traffic:         utils.RoundWithTwoDecimalPlace(b.Traffic),
		Keywords:        utils.RoundWithTwoDecimalPlace(b.Keywords),
		IssuePenalty:    utils.RoundWithTwoDecimalPlace(b.IssuePenalty),
	}
}
