package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/realestate-seo-api/infrastructure/repository"
	"github.com/vfg2006/realestate-seo-api/internal/config"
	"github.com/vfg2006/realestate-seo-api/pkg/metrics"
)

const JobEventRetention = "event-retention"

var ErrSyncAlreadyRunning = errors.New("sync already running")

type EventRetentionConfig struct {
	CronSchedule  string
	RetentionDays int
	SyncEnabled   bool
}

// EventRetentionService remove periodicamente os eventos de analytics antigos
type EventRetentionService struct {
	scheduler *gocron.Scheduler
	config    EventRetentionConfig
	eventRepo repository.EventRepository
	state     syncState
	now       func() time.Time
}

func NewEventRetentionService(eventRepo repository.EventRepository, appConfig *config.Config) *EventRetentionService {
	retentionConfig := EventRetentionConfig{
		CronSchedule:  appConfig.EventRetention.CronSchedule,
		RetentionDays: appConfig.EventRetention.RetentionDays,
		SyncEnabled:   appConfig.EventRetention.Enabled,
	}

	location := appConfig.SEO.Location
	if location == nil {
		location = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  retentionConfig.CronSchedule,
		"retention_days": retentionConfig.RetentionDays,
		"sync_enabled":   retentionConfig.SyncEnabled,
	}).Info("Configuração do agendador de retenção de eventos carregada")

	return &EventRetentionService{
		scheduler: gocron.NewScheduler(location),
		config:    retentionConfig,
		eventRepo: eventRepo,
		now:       time.Now,
	}
}

func (s *EventRetentionService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Retenção de eventos desabilitada por configuração")
		return nil
	}

	if s.config.RetentionDays <= 0 {
		return fmt.Errorf("retenção de eventos inválida: %d dias", s.config.RetentionDays)
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.purgeEvents()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar retenção de eventos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de retenção de eventos")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *EventRetentionService) purgeEvents() {
	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	defer cancel()

	if _, err := s.RunSync(ctx); err != nil && err != ErrSyncAlreadyRunning {
		logrus.WithError(err).Error("Erro ao remover eventos antigos")
	}
}

// RunSync remove os eventos anteriores ao limite de retenção e retorna quantos foram apagados
func (s *EventRetentionService) RunSync(ctx context.Context) (deleted int64, err error) {
	if s.config.RetentionDays <= 0 {
		return 0, fmt.Errorf("retenção de eventos inválida: %d dias", s.config.RetentionDays)
	}

	if !s.state.begin(s.now()) {
		logrus.Info("Retenção de eventos já em andamento, ignorando")
		return 0, ErrSyncAlreadyRunning
	}

	defer func() {
		s.state.finish(s.now(), err)
		metrics.RecordSyncRun(JobEventRetention, err)
	}()

	cutoff := s.now().AddDate(0, 0, -s.config.RetentionDays)

	deleted, err = s.eventRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover eventos anteriores a %s: %w", cutoff.Format(time.DateOnly), err)
	}

	logrus.WithFields(logrus.Fields{
		"cutoff":  cutoff.Format(time.DateOnly),
		"deleted": deleted,
	}).Info("Eventos antigos removidos")

	return deleted, nil
}

func (s *EventRetentionService) TriggerManualSync() {
	if s.state.isRunning() {
		logrus.Info("Retenção de eventos já em andamento, ignorando solicitação manual")
		return
	}

	logrus.Info("Iniciando retenção manual de eventos")
	go s.purgeEvents()
}

func (s *EventRetentionService) GetStatus() map[string]any {
	status := s.state.status(s.config.CronSchedule, s.config.SyncEnabled)
	status["retention_days"] = s.config.RetentionDays
	return status
}
