package tracking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/realestate-seo-api/infrastructure/repository"
	"github.com/vfg2006/realestate-seo-api/internal/config"
	"github.com/vfg2006/realestate-seo-api/internal/domain"
	"github.com/vfg2006/realestate-seo-api/pkg/log"
)

const maxRankingBatch = 500

// Tracker valida e grava os dados brutos consumidos pelos relatórios de SEO
type Tracker interface {
	TrackEvent(ctx context.Context, input domain.EventInput) (*domain.Event, error)
	RecordMonitoring(ctx context.Context, input domain.MonitoringSnapshotInput) (*domain.MonitoringSnapshot, error)
	RecordKeywordRankings(ctx context.Context, inputs []domain.KeywordRankingInput) (int, error)
}

type Service struct {
	eventRepository          repository.EventRepository
	monitoringRepository     repository.MonitoringRepository
	keywordRankingRepository repository.KeywordRankingRepository
	location                 *time.Location
	now                      func() time.Time
}

func NewService(
	cfg *config.Config,
	eventRepo repository.EventRepository,
	monitoringRepo repository.MonitoringRepository,
	keywordRankingRepo repository.KeywordRankingRepository,
) *Service {
	s := &Service{
		eventRepository:          eventRepo,
		monitoringRepository:     monitoringRepo,
		keywordRankingRepository: keywordRankingRepo,
		location:                 time.UTC,
		now:                      time.Now,
	}

	if cfg != nil && cfg.SEO.Location != nil {
		s.location = cfg.SEO.Location
	}

	return s
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// TrackEvent grava um evento de navegação. Sem timestamp, vale o instante atual.
func (s *Service) TrackEvent(ctx context.Context, input domain.EventInput) (*domain.Event, error) {
	event := input.Coerce()
	event.Event = strings.ToLower(strings.TrimSpace(event.Event))
	event.SessionID = strings.TrimSpace(event.SessionID)
	event.Referrer = strings.TrimSpace(event.Referrer)

	if event.Event == "" {
		return nil, newMissingFieldError(ErrEventTypeRequired, "event")
	}
	if event.SessionID == "" {
		return nil, newMissingFieldError(ErrSessionIDRequired, "session_id")
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}

	if err := s.eventRepository.Save(ctx, &event); err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"event": event.Event,
			"error": err.Error(),
		}).Error("Erro ao salvar evento")
		return nil, newDatabaseError(ErrSaveEvent, err)
	}

	return &event, nil
}

// RecordMonitoring grava um snapshot de performance; métricas ausentes são gravadas como 0
func (s *Service) RecordMonitoring(ctx context.Context, input domain.MonitoringSnapshotInput) (*domain.MonitoringSnapshot, error) {
	snapshot := input.Coerce()
	snapshot.URL = strings.TrimSpace(snapshot.URL)

	scores := []struct {
		field string
		value float64
	}{
		{"page_speed_desktop", snapshot.PageSpeedDesktop},
		{"page_speed_mobile", snapshot.PageSpeedMobile},
		{"mobile_usability_score", snapshot.MobileUsabilityScore},
		{"domain_authority", snapshot.DomainAuthority},
	}
	for _, score := range scores {
		if score.value < 0 || score.value > 100 {
			return nil, newValidationError(ErrInvalidScore, score.field)
		}
	}

	vitals := []struct {
		field string
		value float64
	}{
		{"lcp", snapshot.LCP},
		{"fid", snapshot.FID},
		{"cls", snapshot.CLS},
		{"fcp", snapshot.FCP},
		{"ttfb", snapshot.TTFB},
	}
	for _, vital := range vitals {
		if vital.value < 0 {
			return nil, newValidationError(ErrNegativeMetric, vital.field)
		}
	}

	if snapshot.Timestamp.IsZero() {
		snapshot.Timestamp = s.now()
	}

	if err := s.monitoringRepository.Save(ctx, &snapshot); err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"url":   snapshot.URL,
			"error": err.Error(),
		}).Error("Erro ao salvar snapshot de monitoramento")
		return nil, newDatabaseError(ErrSaveMonitoring, err)
	}

	return &snapshot, nil
}

// RecordKeywordRankings grava o lote de observações e retorna quantas linhas distintas foram gravadas.
// Linhas sem data usam o dia atual no fuso configurado.
func (s *Service) RecordKeywordRankings(ctx context.Context, inputs []domain.KeywordRankingInput) (int, error) {
	if len(inputs) == 0 {
		return 0, newMissingFieldError(ErrEmptyBatch, "rankings")
	}
	if len(inputs) > maxRankingBatch {
		err := newValidationError(ErrBatchTooLarge, "rankings")
		err.Details = fmt.Sprintf("máximo de %d linhas", maxRankingBatch)
		return 0, err
	}

	local := s.now().In(s.location)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	rankings := make([]domain.KeywordRanking, 0, len(inputs))
	// o upsert não aceita a mesma chave duas vezes no lote; vale a última linha
	positions := make(map[string]int)
	for i, input := range inputs {
		ranking := input.Coerce()
		ranking.Keyword = strings.TrimSpace(ranking.Keyword)
		ranking.URL = strings.TrimSpace(ranking.URL)

		if ranking.Keyword == "" {
			return 0, newMissingFieldError(ErrKeywordRequired, fmt.Sprintf("rankings[%d].keyword", i))
		}
		if ranking.Position < 0 {
			return 0, newValidationError(ErrInvalidPosition, fmt.Sprintf("rankings[%d].position", i))
		}
		if ranking.SearchVolume < 0 {
			return 0, newValidationError(ErrInvalidSearchVolume, fmt.Sprintf("rankings[%d].search_volume", i))
		}
		if ranking.Date.IsZero() {
			ranking.Date = today
		}

		key := ranking.Keyword + "|" + ranking.URL + "|" + ranking.Date.Format(time.DateOnly)
		if idx, ok := positions[key]; ok {
			rankings[idx] = ranking
			continue
		}
		positions[key] = len(rankings)
		rankings = append(rankings, ranking)
	}

	if err := s.keywordRankingRepository.SaveOrUpdate(ctx, rankings); err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"rows":  len(rankings),
			"error": err.Error(),
		}).Error("Erro ao salvar rankings de palavras-chave")
		return 0, newDatabaseError(ErrSaveRankings, err)
	}

	return len(rankings), nil
}
