package scoring

import (
	"sort"

	"github.com/vfg2006/realestate-seo-api/internal/domain"
	"github.com/vfg2006/realestate-seo-api/pkg/utils"
)

// TopKeywords agrupa as observações por palavra-chave mantendo a melhor posição
// e o maior volume de busca, ordena pela posição e corta no limite informado.
// Palavras-chave sem posição (0) perdem para qualquer posição real e vão para o fim.
func TopKeywords(rankings []domain.KeywordRanking, limit int) []domain.TopKeyword {
	collapsed := make(map[string]*domain.TopKeyword)
	order := make([]string, 0)

	for _, ranking := range rankings {
		current, ok := collapsed[ranking.Keyword]
		if !ok {
			collapsed[ranking.Keyword] = &domain.TopKeyword{
				Keyword:  ranking.Keyword,
				Position: ranking.Position,
				Traffic:  ranking.SearchVolume,
			}
			order = append(order, ranking.Keyword)
			continue
		}

		if betterPosition(ranking.Position, current.Position) {
			current.Position = ranking.Position
		}
		if ranking.SearchVolume > current.Traffic {
			current.Traffic = ranking.SearchVolume
		}
	}

	keywords := make([]domain.TopKeyword, 0, len(order))
	for _, keyword := range order {
		keywords = append(keywords, *collapsed[keyword])
	}

	sort.SliceStable(keywords, func(i, j int) bool {
		return betterPosition(keywords[i].Position, keywords[j].Position)
	})

	if limit > 0 && len(keywords) > limit {
		keywords = keywords[:limit]
	}

	return keywords
}

// CalculateRankingChanges compara, para cada palavra-chave com pelo menos duas
// observações, a mais recente com a anterior. As observações são ordenadas por
// data decrescente antes da comparação, independente da ordem da consulta.
func CalculateRankingChanges(rankings []domain.KeywordRanking) domain.RankingChanges {
	grouped := make(map[string][]domain.KeywordRanking)
	for _, ranking := range rankings {
		grouped[ranking.Keyword] = append(grouped[ranking.Keyword], ranking)
	}

	changes := domain.RankingChanges{}
	for _, rows := range grouped {
		if len(rows) < 2 {
			continue
		}

		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Date.After(rows[j].Date)
		})

		latest, previous := rows[0].Position, rows[1].Position
		switch {
		case latest < previous:
			changes.Improved++
		case latest > previous:
			changes.Declined++
		default:
			changes.Stable++
		}
	}

	return changes
}

// AveragePosition é a média das posições ranqueadas (position > 0)
func AveragePosition(rankings []domain.KeywordRanking) float64 {
	total, count := 0, 0
	for _, ranking := range rankings {
		if ranking.IsRanked() {
			total += ranking.Position
			count++
		}
	}

	if count == 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(float64(total) / float64(count))
}

// CountKeywords retorna a quantidade de palavras-chave distintas
func CountKeywords(rankings []domain.KeywordRanking) int {
	keywords := make(map[string]struct{})
	for _, ranking := range rankings {
		keywords[ranking.Keyword] = struct{}{}
	}
	return len(keywords)
}

// IndexedPages conta as URLs distintas com alguma palavra-chave ranqueada,
// limitado ao total de páginas publicadas quando este é conhecido.
func IndexedPages(rankings []domain.KeywordRanking, totalPages int) int {
	urls := make(map[string]struct{})
	for _, ranking := range rankings {
		if ranking.IsRanked() && ranking.URL != "" {
			urls[ranking.URL] = struct{}{}
		}
	}

	indexed := len(urls)
	if totalPages > 0 && indexed > totalPages {
		return totalPages
	}
	return indexed
}

func betterPosition(candidate, current int) bool {
	if candidate <= 0 {
		return false
	}
	if current <= 0 {
		return true
	}
	return candidate < current
}
