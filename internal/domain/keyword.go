package domain

import "time"

// KeywordRanking é a observação da posição de uma palavra-chave em uma data.
// Position 0 significa que a palavra-chave não está ranqueada.
type KeywordRanking struct {
	ID           int64     `json:"id,omitempty"`
	Keyword      string    `json:"keyword"`
	Position     int       `json:"position"`
	SearchVolume int       `json:"searchVolume"`
	Date         time.Time `json:"date"`
	URL          string    `json:"url"`
}

type KeywordRankingInput struct {
	ID           *int64     `json:"id,omitempty"`
	Keyword      *string    `json:"keyword"`
	Position     *int       `json:"position"`
	SearchVolume *int       `json:"search_volume"`
	Date         *time.Time `json:"date"`
	URL          *string    `json:"url"`
}

func (in KeywordRankingInput) Coerce() KeywordRanking {
	ranking := KeywordRanking{
		Keyword:      stringOrEmpty(in.Keyword),
		Position:     intOrZero(in.Position),
		SearchVolume: intOrZero(in.SearchVolume),
		URL:          stringOrEmpty(in.URL),
	}

	if in.ID != nil {
		ranking.ID = *in.ID
	}

	if in.Date != nil {
		ranking.Date = *in.Date
	}

	return ranking
}

func (k KeywordRanking) IsRanked() bool {
	return k.Position > 0
}

type TopKeyword struct {
	Keyword  string `json:"keyword"`
	Position int    `json:"position"`
	Traffic  int    `json:"traffic"`
}

// RankingChanges contabiliza a variação de posição entre as duas observações mais recentes
type RankingChanges struct {
	Improved int `json:"improved"`
	Declined int `json:"declined"`
	Stable   int `json:"stable"`
}
