package analyzing

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/realestate-seo-api/internal/domain"
)

// GetScoreHistory lista os scores dos últimos dias. Valores fora do intervalo
// aceito caem para o padrão de 30 dias ou para o máximo configurado.
func (s *Service) GetScoreHistory(ctx context.Context, days int) (*domain.ScoreHistoryResponse, error) {
	if days <= 0 {
		days = defaultHistoryDays
	}
	if days > s.historyMaxDays {
		days = s.historyMaxDays
	}

	today := s.now().In(s.location)
	since := today.AddDate(0, 0, -(days - 1))

	snapshots, err := s.scoreHistoryRepository.ListSince(ctx, since)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar histórico de score")
	}

	return &domain.ScoreHistoryResponse{
		Days:      days,
		Snapshots: snapshots,
	}, nil
}
