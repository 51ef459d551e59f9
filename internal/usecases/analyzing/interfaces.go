package analyzing

import (
	"context"

	"github.com/vfg2006/realestate-seo-api/internal/domain"
)

// Analyzer monta os relatórios de SEO a partir dos dados do período
type Analyzer interface {
	// GetDashboard retorna o resumo do dashboard com o score geral de SEO
	GetDashboard(ctx context.Context, period string) (*domain.DashboardResponse, error)

	// GetAnalytics retorna tráfego, sessões, palavras-chave e tendências diárias
	GetAnalytics(ctx context.Context, period string) (*domain.AnalyticsResponse, error)

	// GetPerformance retorna as métricas do snapshot mais recente e a tendência de performance
	GetPerformance(ctx context.Context, period string) (*domain.PerformanceResponse, error)

	// GetScoreHistory retorna os scores persistidos nos últimos dias
	GetScoreHistory(ctx context.Context, days int) (*domain.ScoreHistoryResponse, error)

	// BuildScoreSnapshot calcula o score do dia para persistência
	BuildScoreSnapshot(ctx context.Context, period string) (*domain.ScoreSnapshot, error)
}
