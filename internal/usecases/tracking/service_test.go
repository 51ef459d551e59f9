package tracking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/realestate-seo-api/infrastructure/repository/mocks"
	"github.com/vfg2006/realestate-seo-api/internal/domain"
	"github.com/vfg2006/realestate-seo-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 3, 15, 1, 30, 0, 0, time.UTC)

func stringPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

func intPtr(i int) *int {
	return &i
}

func TestTrackEvent(t *testing.T) {
	ts := time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		input        domain.EventInput
		setup        func(repo *mocks.MockEventRepository)
		expectedCode string
		validate     func(t *testing.T, event *domain.Event)
	}{
		{
			name: "Evento válido é normalizado e gravado",
			input: domain.EventInput{
				Event:     stringPtr(" PAGE_VIEW "),
				Timestamp: &ts,
				SessionID: stringPtr("sess-1"),
				Referrer:  stringPtr(" https://google.com "),
				PageURL:   stringPtr("/imoveis/10"),
			},
			setup: func(repo *mocks.MockEventRepository) {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, event *domain.Event) error {
					event.ID = 42
					return nil
				})
			},
			validate: func(t *testing.T, event *domain.Event) {
				assert.Equal(t, int64(42), event.ID)
				assert.Equal(t, domain.EventTypePageView, event.Event)
				assert.Equal(t, "https://google.com", event.Referrer)
				assert.Equal(t, ts, event.Timestamp)
			},
		},
		{
			name: "Sem timestamp usa o instante atual",
			input: domain.EventInput{
				Event:     stringPtr("conversion"),
				SessionID: stringPtr("sess-2"),
			},
			setup: func(repo *mocks.MockEventRepository) {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, event *domain.Event) {
				assert.Equal(t, fixedNow, event.Timestamp)
				assert.Empty(t, event.Referrer)
			},
		},
		{
			name:         "Sem tipo de evento",
			input:        domain.EventInput{SessionID: stringPtr("sess-3")},
			setup:        func(repo *mocks.MockEventRepository) {},
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:         "Sem sessão",
			input:        domain.EventInput{Event: stringPtr("page_view"), SessionID: stringPtr("   ")},
			setup:        func(repo *mocks.MockEventRepository) {},
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:  "Erro ao gravar",
			input: domain.EventInput{Event: stringPtr("page_view"), SessionID: stringPtr("sess-4")},
			setup: func(repo *mocks.MockEventRepository) {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("conexão recusada"))
			},
			expectedCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockEventRepository(ctrl)
			tt.setup(repo)

			service := NewService(nil, repo, nil, nil).WithClock(func() time.Time { return fixedNow })

			event, err := service.TrackEvent(context.Background(), tt.input)

			if tt.expectedCode != "" {
				var trackingErr *TrackingError
				require.ErrorAs(t, err, &trackingErr)
				assert.Equal(t, tt.expectedCode, trackingErr.Code)
				assert.Nil(t, event)
				return
			}

			require.NoError(t, err)
			tt.validate(t, event)
		})
	}
}

func TestRecordMonitoring(t *testing.T) {
	tests := []struct {
		name          string
		input         domain.MonitoringSnapshotInput
		expectSave    bool
		expectedField string
	}{
		{
			name: "Snapshot completo",
			input: domain.MonitoringSnapshotInput{
				URL:                  stringPtr("https://imoveis.example.com"),
				PageSpeedDesktop:     floatPtr(91),
				PageSpeedMobile:      floatPtr(72),
				LCP:                  floatPtr(2.4),
				CLS:                  floatPtr(0.08),
				MobileUsabilityScore: floatPtr(95),
			},
			expectSave: true,
		},
		{
			name:          "Page speed acima de 100",
			input:         domain.MonitoringSnapshotInput{PageSpeedMobile: floatPtr(101)},
			expectedField: "page_speed_mobile",
		},
		{
			name:          "Autoridade de domínio negativa",
			input:         domain.MonitoringSnapshotInput{DomainAuthority: floatPtr(-1)},
			expectedField: "domain_authority",
		},
		{
			name:          "TTFB negativo",
			input:         domain.MonitoringSnapshotInput{TTFB: floatPtr(-20)},
			expectedField: "ttfb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockMonitoringRepository(ctrl)
			if tt.expectSave {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			}

			service := NewService(nil, nil, repo, nil).WithClock(func() time.Time { return fixedNow })

			snapshot, err := service.RecordMonitoring(context.Background(), tt.input)

			if tt.expectedField != "" {
				var trackingErr *TrackingError
				require.ErrorAs(t, err, &trackingErr)
				assert.Equal(t, apiErrors.ErrInvalidFormat, trackingErr.Code)
				assert.Equal(t, tt.expectedField, trackingErr.Field)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, fixedNow, snapshot.Timestamp)
			assert.Equal(t, float64(0), snapshot.FID)
		})
	}
}

func TestRecordKeywordRankings(t *testing.T) {
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Lote válido com data padrão no fuso configurado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockKeywordRankingRepository(ctrl)

		repo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, rankings []domain.KeywordRanking) error {
			require.Len(t, rankings, 2)
			// 01:30 UTC ainda é dia 14 em São Paulo
			assert.Equal(t, "2024-03-14", rankings[0].Date.Format(time.DateOnly))
			assert.Equal(t, day, rankings[1].Date)
			assert.Equal(t, 0, rankings[1].SearchVolume)
			return nil
		})

		service := NewService(nil, nil, nil, repo).WithClock(func() time.Time { return fixedNow })
		service.location = saoPaulo

		saved, err := service.RecordKeywordRankings(context.Background(), []domain.KeywordRankingInput{
			{Keyword: stringPtr("apartamento centro"), Position: intPtr(4), SearchVolume: intPtr(300), URL: stringPtr("/imoveis/1")},
			{Keyword: stringPtr("casa com quintal"), Date: &day},
		})

		require.NoError(t, err)
		assert.Equal(t, 2, saved)
	})

	t.Run("Linhas repetidas no lote mantêm a última", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockKeywordRankingRepository(ctrl)

		repo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, rankings []domain.KeywordRanking) error {
			require.Len(t, rankings, 1)
			assert.Equal(t, 2, rankings[0].Position)
			return nil
		})

		service := NewService(nil, nil, nil, repo).WithClock(func() time.Time { return fixedNow })

		saved, err := service.RecordKeywordRankings(context.Background(), []domain.KeywordRankingInput{
			{Keyword: stringPtr("cobertura"), Position: intPtr(5), URL: stringPtr("/imoveis/7"), Date: &day},
			{Keyword: stringPtr("cobertura"), Position: intPtr(2), URL: stringPtr("/imoveis/7"), Date: &day},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, saved)
	})

	validationCases := []struct {
		name         string
		inputs       []domain.KeywordRankingInput
		expectedErr  error
		expectedCode string
	}{
		{
			name:         "Lote vazio",
			inputs:       nil,
			expectedErr:  ErrEmptyBatch,
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:         "Lote acima do limite",
			inputs:       make([]domain.KeywordRankingInput, maxRankingBatch+1),
			expectedErr:  ErrBatchTooLarge,
			expectedCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:         "Palavra-chave em branco",
			inputs:       []domain.KeywordRankingInput{{Keyword: stringPtr(" ")}},
			expectedErr:  ErrKeywordRequired,
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:         "Posição negativa",
			inputs:       []domain.KeywordRankingInput{{Keyword: stringPtr("loft"), Position: intPtr(-1)}},
			expectedErr:  ErrInvalidPosition,
			expectedCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:         "Volume negativo",
			inputs:       []domain.KeywordRankingInput{{Keyword: stringPtr("loft"), SearchVolume: intPtr(-5)}},
			expectedErr:  ErrInvalidSearchVolume,
			expectedCode: apiErrors.ErrInvalidFormat,
		},
	}

	for _, tt := range validationCases {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockKeywordRankingRepository(ctrl)

			service := NewService(nil, nil, nil, repo).WithClock(func() time.Time { return fixedNow })

			saved, err := service.RecordKeywordRankings(context.Background(), tt.inputs)

			require.ErrorIs(t, err, tt.expectedErr)
			var trackingErr *TrackingError
			require.ErrorAs(t, err, &trackingErr)
			assert.Equal(t, tt.expectedCode, trackingErr.Code)
			assert.Equal(t, 0, saved)
		})
	}

	t.Run("Erro ao gravar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockKeywordRankingRepository(ctrl)
		repo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(errors.New("deadlock"))

		service := NewService(nil, nil, nil, repo).WithClock(func() time.Time { return fixedNow })

		_, err := service.RecordKeywordRankings(context.Background(), []domain.KeywordRankingInput{
			{Keyword: stringPtr("studio")},
		})

		require.ErrorIs(t, err, ErrSaveRankings)
		assert.Contains(t, err.Error(), "deadlock")
	})
}
