package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/realestate-seo-api/infrastructure/repository/mocks"
	"github.com/vfg2006/realestate-seo-api/internal/config"
	"github.com/vfg2006/realestate-seo-api/internal/domain"
	analyzingmocks "github.com/vfg2006/realestate-seo-api/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

func scoreSyncConfig() *config.Config {
	return &config.Config{
		SEO: config.SEO{Location: time.UTC},
		ScoreSnapshotSync: config.ScoreSnapshotSync{
			CronSchedule:   "0 2 * * *",
			Period:         "7d",
			Enabled:        true,
			HistoryMaxDays: 90,
		},
	}
}

func TestScoreSnapshotSyncService_RunSync(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		setup       func(analyzer *analyzingmocks.MockAnalyzer, repo *mocks.MockScoreHistoryRepository)
		generateID  func() (string, error)
		expectedErr string
	}{
		{
			name: "Grava o score do dia com ID gerado e retenção configurada",
			setup: func(analyzer *analyzingmocks.MockAnalyzer, repo *mocks.MockScoreHistoryRepository) {
				analyzer.EXPECT().BuildScoreSnapshot(gomock.Any(), "7d").Return(&domain.ScoreSnapshot{
					Date:   day,
					Period: domain.Period7Days,
					Score:  74,
					Grade:  domain.GradeB,
				}, nil)

				repo.EXPECT().
					SaveOrUpdate(gomock.Any(), gomock.Any(), 90).
					DoAndReturn(func(ctx context.Context, snapshot *domain.ScoreSnapshot, keepDays int) error {
						assert.Equal(t, "Ab12Cd34Ef56", snapshot.ID)
						assert.Equal(t, 74, snapshot.Score)
						assert.Equal(t, day, snapshot.Date)
						return nil
					})
			},
			generateID: func() (string, error) { return "Ab12Cd34Ef56", nil },
		},
		{
			name: "Erro no cálculo não grava nada",
			setup: func(analyzer *analyzingmocks.MockAnalyzer, repo *mocks.MockScoreHistoryRepository) {
				analyzer.EXPECT().BuildScoreSnapshot(gomock.Any(), "7d").Return(nil, errors.New("panic na agregação"))
			},
			generateID:  func() (string, error) { return "unused", nil },
			expectedErr: "erro ao calcular score",
		},
		{
			name: "Erro ao gerar ID",
			setup: func(analyzer *analyzingmocks.MockAnalyzer, repo *mocks.MockScoreHistoryRepository) {
				analyzer.EXPECT().BuildScoreSnapshot(gomock.Any(), "7d").Return(&domain.ScoreSnapshot{Date: day}, nil)
			},
			generateID:  func() (string, error) { return "", errors.New("entropia insuficiente") },
			expectedErr: "erro ao gerar ID do histórico",
		},
		{
			name: "Erro ao salvar",
			setup: func(analyzer *analyzingmocks.MockAnalyzer, repo *mocks.MockScoreHistoryRepository) {
				analyzer.EXPECT().BuildScoreSnapshot(gomock.Any(), "7d").Return(&domain.ScoreSnapshot{Date: day}, nil)
				repo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any(), 90).Return(errors.New("unique violation"))
			},
			generateID:  func() (string, error) { return "Ab12Cd34Ef56", nil },
			expectedErr: "erro ao salvar histórico de score",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			analyzer := analyzingmocks.NewMockAnalyzer(ctrl)
			repo := mocks.NewMockScoreHistoryRepository(ctrl)
			tt.setup(analyzer, repo)

			service := NewScoreSnapshotSyncService(analyzer, repo, scoreSyncConfig())
			service.generateID = tt.generateID

			err := service.RunSync(context.Background())

			status := service.GetStatus()
			assert.Equal(t, false, status["sync_running"])
			assert.Equal(t, "7d", status["period"])

			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				assert.Contains(t, status["last_sync_error"], tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.NotContains(t, status, "last_sync_error")
		})
	}
}

func TestScoreSnapshotSyncService_IgnoresConcurrentRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyzer := analyzingmocks.NewMockAnalyzer(ctrl)
	repo := mocks.NewMockScoreHistoryRepository(ctrl)

	service := NewScoreSnapshotSyncService(analyzer, repo, scoreSyncConfig())
	require.True(t, service.state.begin(time.Now()))

	err := service.RunSync(context.Background())

	assert.ErrorIs(t, err, ErrSyncAlreadyRunning)
	assert.Equal(t, true, service.GetStatus()["sync_running"])
}

func TestScoreSnapshotSyncService_StartDisabled(t *testing.T) {
	cfg := scoreSyncConfig()
	cfg.ScoreSnapshotSync.Enabled = false

	service := NewScoreSnapshotSyncService(nil, nil, cfg)

	require.NoError(t, service.Start(context.Background()))
	assert.Equal(t, 0, len(service.scheduler.Jobs()))
}

func TestScoreSnapshotSyncService_StartInvalidCron(t *testing.T) {
	cfg := scoreSyncConfig()
	cfg.ScoreSnapshotSync.CronSchedule = "todo dia"

	service := NewScoreSnapshotSyncService(nil, nil, cfg)

	err := service.Start(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "erro ao agendar histórico de score")
}
