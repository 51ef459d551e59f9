package analyzing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/realestate-seo-api/infrastructure/repository"
	"github.com/vfg2006/realestate-seo-api/internal/config"
	"github.com/vfg2006/realestate-seo-api/internal/domain"
	"github.com/vfg2006/realestate-seo-api/pkg/log"
	"github.com/vfg2006/realestate-seo-api/pkg/metrics"
)

const (
	defaultTopKeywordsLimit = 10
	defaultTopPagesLimit    = 10
	defaultHistoryDays      = 30
	defaultHistoryMaxDays   = 365
)

// dataset identifica cada leitura independente feita por relatório
type dataset string

const (
	datasetEvents     dataset = "events"
	datasetMonitoring dataset = "monitoring"
	datasetKeywords   dataset = "keywords"
	datasetPageCounts dataset = "page_counts"
	datasetIssues     dataset = "issues"
)

// periodData reúne o resultado das leituras; um dataset que falhou fica vazio
type periodData struct {
	events     []domain.Event
	snapshots  []domain.MonitoringSnapshot
	rankings   []domain.KeywordRanking
	pageCounts domain.PageCounts
	issues     []domain.SEOIssue
}

type Service struct {
	eventRepository          repository.EventRepository
	monitoringRepository     repository.MonitoringRepository
	keywordRankingRepository repository.KeywordRankingRepository
	pageCountRepository      repository.PageCountRepository
	seoIssueRepository       repository.SEOIssueRepository
	scoreHistoryRepository   repository.ScoreHistoryRepository

	topKeywordsLimit int
	topPagesLimit    int
	historyMaxDays   int
	location         *time.Location
	now              func() time.Time
}

func NewService(
	cfg *config.Config,
	eventRepo repository.EventRepository,
	monitoringRepo repository.MonitoringRepository,
	keywordRankingRepo repository.KeywordRankingRepository,
	pageCountRepo repository.PageCountRepository,
	seoIssueRepo repository.SEOIssueRepository,
	scoreHistoryRepo repository.ScoreHistoryRepository,
) *Service {
	s := &Service{
		eventRepository:          eventRepo,
		monitoringRepository:     monitoringRepo,
		keywordRankingRepository: keywordRankingRepo,
		pageCountRepository:      pageCountRepo,
		seoIssueRepository:       seoIssueRepo,
		scoreHistoryRepository:   scoreHistoryRepo,
		topKeywordsLimit:         defaultTopKeywordsLimit,
		topPagesLimit:            defaultTopPagesLimit,
		historyMaxDays:           defaultHistoryMaxDays,
		location:                 time.UTC,
		now:                      time.Now,
	}

	if cfg == nil {
		return s
	}

	if cfg.SEO.TopKeywordsLimit > 0 {
		s.topKeywordsLimit = cfg.SEO.TopKeywordsLimit
	}
	if cfg.SEO.TopPagesLimit > 0 {
		s.topPagesLimit = cfg.SEO.TopPagesLimit
	}
	if cfg.SEO.Location != nil {
		s.location = cfg.SEO.Location
	}
	if cfg.ScoreSnapshotSync.HistoryMaxDays > 0 {
		s.historyMaxDays = cfg.ScoreSnapshotSync.HistoryMaxDays
	}

	return s
}

// WithClock substitui o relógio usado para resolver períodos e tendências
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// fetch executa as leituras pedidas em paralelo. Uma leitura com erro é
// registrada em log e métrica e o relatório segue com o dataset vazio.
func (s *Service) fetch(ctx context.Context, dateRange domain.DateRange, sources ...dataset) *periodData {
	data := &periodData{
		events:    []domain.Event{},
		snapshots: []domain.MonitoringSnapshot{},
		rankings:  []domain.KeywordRanking{},
		issues:    []domain.SEOIssue{},
	}

	wg := sync.WaitGroup{}
	for _, source := range sources {
		wg.Add(1)
		go func(source dataset) {
			defer wg.Done()

			err := s.load(ctx, dateRange, source, data)
			if err != nil {
				log.ForContext(ctx).WithFields(log.Fields{
					"dataset": string(source),
					"period":  string(dateRange.Period),
					"error":   err.Error(),
				}).Warn("Falha ao consultar dataset, seguindo com dados vazios")
				metrics.RecordUpstreamFailure(string(source))
			}
		}(source)
	}
	wg.Wait()

	return data
}

// load preenche apenas o campo do dataset informado
func (s *Service) load(ctx context.Context, dateRange domain.DateRange, source dataset, data *periodData) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic ao consultar %s: %v", source, r)
		}
	}()

	switch source {
	case datasetEvents:
		events, err := s.eventRepository.ListByPeriod(ctx, dateRange.StartDate, dateRange.EndDate)
		if err != nil {
			return err
		}
		data.events = events
	case datasetMonitoring:
		snapshots, err := s.monitoringRepository.ListByPeriod(ctx, dateRange.StartDate, dateRange.EndDate)
		if err != nil {
			return err
		}
		data.snapshots = snapshots
	case datasetKeywords:
		rankings, err := s.keywordRankingRepository.ListByPeriod(ctx, dateRange.StartDate, dateRange.EndDate)
		if err != nil {
			return err
		}
		data.rankings = rankings
	case datasetPageCounts:
		counts, err := s.pageCountRepository.CountPages(ctx)
		if err != nil {
			return err
		}
		data.pageCounts = counts
	case datasetIssues:
		issues, err := s.seoIssueRepository.ListOpen(ctx)
		if err != nil {
			return err
		}
		data.issues = issues
	default:
		return fmt.Errorf("dataset desconhecido: %s", source)
	}

	return nil
}

// recoverAggregation converte um panic do cálculo em erro para o handler responder 500
func recoverAggregation(ctx context.Context, operation string, err *error) {
	if r := recover(); r != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"operation": operation,
			"error":     fmt.Sprint(r),
		}).Error("Erro inesperado ao agregar métricas de SEO")
		*err = errors.Errorf("falha ao calcular %s: %v", operation, r)
	}
}
