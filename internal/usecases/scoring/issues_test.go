package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/realestate-seo-api/internal/domain"
)

func TestDeriveSnapshotIssues(t *testing.T) {
	t.Run("Snapshot ausente não gera problemas", func(t *testing.T) {
		issues := DeriveSnapshotIssues(nil)

		assert.NotNil(t, issues)
		assert.Empty(t, issues)
	})

	t.Run("Métricas ruins e a melhorar", func(t *testing.T) {
		issues := DeriveSnapshotIssues(&domain.MonitoringSnapshot{
			URL:                  "https://imoveis.example.com/",
			LCP:                  5.2,
			FID:                  150,
			CLS:                  0.05,
			TTFB:                 0,
			MobileUsabilityScore: 40,
		})

		require.Len(t, issues, 3)
		assert.Equal(t, domain.IssuePriorityHigh, issues[0].Priority)
		assert.Contains(t, issues[0].Message, "Largest Contentful Paint")
		assert.Equal(t, domain.IssuePriorityMedium, issues[1].Priority)
		assert.Contains(t, issues[1].Message, "First Input Delay")
		assert.Equal(t, IssueTypeMobileUsability, issues[2].Type)
		assert.Equal(t, "https://imoveis.example.com/", issues[2].URL)
	})

	t.Run("Snapshot saudável", func(t *testing.T) {
		issues := DeriveSnapshotIssues(&domain.MonitoringSnapshot{
			LCP: 1.1, FID: 20, CLS: 0.01, FCP: 0.9, TTFB: 300, MobileUsabilityScore: 95,
		})

		assert.Empty(t, issues)
	})
}
