package domain

import "time"

// Period é a janela de análise aceita pelos endpoints de SEO
type Period string

const (
	Period7Days  Period = "7d"
	Period30Days Period = "30d"
	Period90Days Period = "90d"

	DefaultPeriod = Period30Days
)

var periodDays = map[Period]int{
	Period7Days:  7,
	Period30Days: 30,
	Period90Days: 90,
}

// Days retorna a quantidade de dias do período; períodos desconhecidos valem 30 dias
func (p Period) Days() int {
	if days, ok := periodDays[p]; ok {
		return days
	}
	return periodDays[DefaultPeriod]
}

func (p Period) IsValid() bool {
	_, ok := periodDays[p]
	return ok
}

// DateRange é o intervalo [StartDate, EndDate] resolvido para um período
type DateRange struct {
	Period    Period
	StartDate time.Time
	EndDate   time.Time
}

func (r DateRange) Days() int {
	return r.Period.Days()
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.StartDate) && !t.After(r.EndDate)
}
