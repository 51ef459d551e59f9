package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/realestate-seo-api/internal/domain"
)

func TestResolvePeriod(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name           string
		token          string
		expectedPeriod domain.Period
		expectedDays   int
	}{
		{name: "Período de 7 dias", token: "7d", expectedPeriod: domain.Period7Days, expectedDays: 7},
		{name: "Período de 30 dias", token: "30d", expectedPeriod: domain.Period30Days, expectedDays: 30},
		{name: "Período de 90 dias", token: "90d", expectedPeriod: domain.Period90Days, expectedDays: 90},
		{name: "Token vazio cai no padrão", token: "", expectedPeriod: domain.Period30Days, expectedDays: 30},
		{name: "Token desconhecido cai no padrão", token: "365d", expectedPeriod: domain.Period30Days, expectedDays: 30},
		{name: "Token com letra maiúscula não é reconhecido", token: "7D", expectedPeriod: domain.Period30Days, expectedDays: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ResolvePeriod(tt.token, now)

			assert.Equal(t, tt.expectedPeriod, result.Period)
			assert.Equal(t, now, result.EndDate)
			assert.Equal(t, now.Add(-time.Duration(tt.expectedDays)*24*time.Hour), result.StartDate)
			assert.Equal(t, time.Duration(tt.expectedDays)*24*time.Hour, result.EndDate.Sub(result.StartDate))
			assert.Equal(t, tt.expectedDays, result.Days())
		})
	}
}

func TestResolvePeriodAcrossDaylightSaving(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata indisponível: %v", err)
	}

	// 10/03/2024 é o início do horário de verão em Nova York
	now := time.Date(2024, 3, 12, 12, 0, 0, 0, newYork)

	tests := []struct {
		name         string
		token        string
		expectedDays int
	}{
		{name: "7 dias cruzando o horário de verão", token: "7d", expectedDays: 7},
		{name: "30 dias cruzando o horário de verão", token: "30d", expectedDays: 30},
		{name: "90 dias cruzando dois ajustes", token: "90d", expectedDays: 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ResolvePeriod(tt.token, now)

			assert.Equal(t, time.Duration(tt.expectedDays)*24*time.Hour, result.EndDate.Sub(result.StartDate))
			assert.Equal(t, tt.expectedDays, result.Days())
		})
	}
}
