package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/realestate-seo-api/infrastructure/repository"
	"github.com/vfg2006/realestate-seo-api/internal/config"
	"github.com/vfg2006/realestate-seo-api/internal/usecases/analyzing"
	"github.com/vfg2006/realestate-seo-api/pkg/metrics"
	"github.com/vfg2006/realestate-seo-api/pkg/utils"
)

const (
	JobScoreSnapshot = "score-snapshot"

	syncTimeout = 5 * time.Minute
)

// ScoreSnapshotSyncConfig representa a configuração do agendador do histórico de score
type ScoreSnapshotSyncConfig struct {
	CronSchedule   string
	Period         string
	SyncEnabled    bool
	HistoryMaxDays int
}

// ScoreSnapshotSyncService calcula e grava diariamente o score de SEO do período configurado
type ScoreSnapshotSyncService struct {
	scheduler        *gocron.Scheduler
	config           ScoreSnapshotSyncConfig
	analyzer         analyzing.Analyzer
	scoreHistoryRepo repository.ScoreHistoryRepository
	state            syncState
	generateID       func() (string, error)
}

func NewScoreSnapshotSyncService(
	analyzer analyzing.Analyzer,
	scoreHistoryRepo repository.ScoreHistoryRepository,
	appConfig *config.Config,
) *ScoreSnapshotSyncService {
	syncConfig := ScoreSnapshotSyncConfig{
		CronSchedule:   appConfig.ScoreSnapshotSync.CronSchedule,
		Period:         appConfig.ScoreSnapshotSync.Period,
		SyncEnabled:    appConfig.ScoreSnapshotSync.Enabled,
		HistoryMaxDays: appConfig.ScoreSnapshotSync.HistoryMaxDays,
	}

	location := appConfig.SEO.Location
	if location == nil {
		location = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":    syncConfig.CronSchedule,
		"period":           syncConfig.Period,
		"history_max_days": syncConfig.HistoryMaxDays,
		"sync_enabled":     syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de histórico de score carregada")

	return &ScoreSnapshotSyncService{
		scheduler:        gocron.NewScheduler(location),
		config:           syncConfig,
		analyzer:         analyzer,
		scoreHistoryRepo: scoreHistoryRepo,
		generateID:       utils.GenerateID,
	}
}

// Start inicia o agendador
func (s *ScoreSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Histórico de score desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de histórico de score")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncScoreSnapshot()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar histórico de score: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de histórico de score")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ScoreSnapshotSyncService) syncScoreSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	defer cancel()

	if err := s.RunSync(ctx); err != nil && err != ErrSyncAlreadyRunning {
		logrus.WithError(err).Error("Erro ao gravar histórico de score")
	}
}

// RunSync calcula o score do período e grava a linha do dia, substituindo a existente
func (s *ScoreSnapshotSyncService) RunSync(ctx context.Context) (err error) {
	if !s.state.begin(time.Now()) {
		logrus.Info("Gravação do histórico de score já em andamento, ignorando")
		return ErrSyncAlreadyRunning
	}

	startTime := time.Now()
	defer func() {
		s.state.finish(time.Now(), err)
		metrics.RecordSyncRun(JobScoreSnapshot, err)
	}()

	snapshot, err := s.analyzer.BuildScoreSnapshot(ctx, s.config.Period)
	if err != nil {
		return fmt.Errorf("erro ao calcular score: %w", err)
	}

	snapshot.ID, err = s.generateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar ID do histórico: %w", err)
	}

	if err = s.scoreHistoryRepo.SaveOrUpdate(ctx, snapshot, s.config.HistoryMaxDays); err != nil {
		return fmt.Errorf("erro ao salvar histórico de score: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"date":     snapshot.Date.Format(time.DateOnly),
		"period":   snapshot.Period,
		"score":    snapshot.Score,
		"grade":    snapshot.Grade,
		"duration": time.Since(startTime).String(),
	}).Info("Histórico de score gravado")

	return nil
}

// TriggerManualSync dispara a gravação fora do horário agendado
func (s *ScoreSnapshotSyncService) TriggerManualSync() {
	if s.state.isRunning() {
		logrus.Info("Gravação do histórico de score já em andamento, ignorando solicitação manual")
		return
	}

	logrus.Info("Iniciando gravação manual do histórico de score")
	go s.syncScoreSnapshot()
}

// GetStatus retorna o status atual da sincronização
func (s *ScoreSnapshotSyncService) GetStatus() map[string]any {
	status := s.state.status(s.config.CronSchedule, s.config.SyncEnabled)
	status["period"] = s.config.Period
	return status
}
