package scoring

import (
	"fmt"

	"github.com/vfg2006/realestate-seo-api/internal/domain"
)

const (
	IssueTypePerformance     = "performance"
	IssueTypeMobileUsability = "mobile_usability"

	lowMobileUsability = 50
)

var vitalLabels = map[Metric]string{
	MetricLCP:  "Largest Contentful Paint",
	MetricFID:  "First Input Delay",
	MetricCLS:  "Cumulative Layout Shift",
	MetricFCP:  "First Contentful Paint",
	MetricTTFB: "Time to First Byte",
}

var vitalOrder = []Metric{MetricLCP, MetricFID, MetricCLS, MetricFCP, MetricTTFB}

// DeriveSnapshotIssues gera problemas a partir das métricas do snapshot mais recente:
// métricas ruins viram prioridade alta e métricas a melhorar prioridade média.
func DeriveSnapshotIssues(snapshot *domain.MonitoringSnapshot) []domain.IssueItem {
	issues := make([]domain.IssueItem, 0)
	if snapshot == nil {
		return issues
	}

	values := map[Metric]float64{
		MetricLCP:  snapshot.LCP,
		MetricFID:  snapshot.FID,
		MetricCLS:  snapshot.CLS,
		MetricFCP:  snapshot.FCP,
		MetricTTFB: snapshot.TTFB,
	}

	for _, metric := range vitalOrder {
		value := values[metric]
		// valor zerado significa que a métrica não foi coletada
		if value == 0 {
			continue
		}

		var priority string
		switch ClassifyVital(metric, value) {
		case domain.VitalTierPoor:
			priority = domain.IssuePriorityHigh
		case domain.VitalTierNeedsImprovement:
			priority = domain.IssuePriorityMedium
		default:
			continue
		}

		issues = append(issues, domain.IssueItem{
			Type:     IssueTypePerformance,
			Message:  fmt.Sprintf("%s fora do limite recomendado (%s): %g", vitalLabels[metric], metric, value),
			URL:      snapshot.URL,
			Priority: priority,
		})
	}

	if snapshot.MobileUsabilityScore > 0 && snapshot.MobileUsabilityScore < lowMobileUsability {
		issues = append(issues, domain.IssueItem{
			Type:     IssueTypeMobileUsability,
			Message:  fmt.Sprintf("Usabilidade mobile baixa: %g", snapshot.MobileUsabilityScore),
			URL:      snapshot.URL,
			Priority: domain.IssuePriorityHigh,
		})
	}

	return issues
}
