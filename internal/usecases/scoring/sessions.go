package scoring

import (
	"time"

	"github.com/vfg2006/realestate-seo-api/internal/domain"
	"github.com/vfg2006/realestate-seo-api/pkg/utils"
)

type session struct {
	start     time.Time
	end       time.Time
	pageViews int
}

// CalculateSessionMetrics calcula duração média, taxa de rejeição e taxa de conversão.
//
// As sessões são formadas apenas por eventos page_view. O início e o fim de cada
// sessão são o primeiro e o último evento encontrados na ordem de iteração, e não
// os extremos cronológicos: com entrada fora de ordem a duração pode ficar distorcida.
func CalculateSessionMetrics(events []domain.Event) domain.SessionMetrics {
	sessions := make(map[string]*session)
	visitors := make(map[string]struct{})
	pageViews, conversions := 0, 0

	for _, event := range events {
		visitors[event.SessionID] = struct{}{}

		if event.IsConversion() {
			conversions++
			continue
		}

		if !event.IsPageView() {
			continue
		}

		pageViews++

		s, ok := sessions[event.SessionID]
		if !ok {
			sessions[event.SessionID] = &session{
				start:     event.Timestamp,
				end:       event.Timestamp,
				pageViews: 1,
			}
			continue
		}

		s.end = event.Timestamp
		s.pageViews++
	}

	metrics := domain.SessionMetrics{
		TotalSessions:  len(sessions),
		PageViews:      pageViews,
		Conversions:    conversions,
		UniqueVisitors: len(visitors),
	}

	if len(sessions) > 0 {
		var totalDuration float64
		bounces := 0

		for _, s := range sessions {
			totalDuration += s.end.Sub(s.start).Seconds()
			if s.pageViews == 1 {
				bounces++
			}
		}

		metrics.AverageSessionDuration = utils.RoundWithTwoDecimalPlace(totalDuration / float64(len(sessions)))
		metrics.BounceRate = utils.RoundWithTwoDecimalPlace(float64(bounces) / float64(len(sessions)) * 100)
	}

	if pageViews > 0 {
		metrics.ConversionRate = utils.RoundWithTwoDecimalPlace(float64(conversions) / float64(pageViews) * 100)
	}

	return metrics
}
