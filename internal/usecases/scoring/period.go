// Package scoring reúne as funções puras de agregação e pontuação de SEO.
// Nenhuma função deste pacote faz I/O ou consulta o relógio: o instante de
// referência é sempre recebido por parâmetro.
package scoring

import (
	"strings"
	"time"

	"github.com/vfg2006/realestate-seo-api/internal/domain"
)

// ResolvePeriod converte o token recebido na query string em um intervalo de datas.
// Tokens vazios ou desconhecidos caem silenciosamente no período padrão de 30 dias.
// A janela tem sempre dias de 24h, mesmo quando cruza uma mudança de horário de verão.
func ResolvePeriod(token string, now time.Time) domain.DateRange {
	period := domain.Period(strings.TrimSpace(token))
	if !period.IsValid() {
		period = domain.DefaultPeriod
	}

	return domain.DateRange{
		Period:    period,
		StartDate: now.Add(-time.Duration(period.Days()) * 24 * time.Hour),
		EndDate:   now,
	}
}
