package domain

import "time"

const (
	GradeAPlus = "A+"
	GradeA     = "A"
	GradeB     = "B"
	GradeC     = "C"
	GradeD     = "D"
	GradeF     = "F"
)

// ScoreBreakdown detalha a contribuição de cada dimensão para o score de SEO
type ScoreBreakdown struct {
	Indexing        float64 `json:"indexing"`
	DomainAuthority float64 `json:"domainAuthority"`
	Performance     float64 `json:"performance"`
	Traffic         float64 `json:"traffic"`
	Keywords        float64 `json:"keywords"`
	IssuePenalty    float64 `json:"issuePenalty"`
}

type SEOScore struct {
	Score     int            `json:"score"`
	Grade     string         `json:"grade"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// ScoreSnapshot é o score de SEO calculado e persistido diariamente pelo agendador
type ScoreSnapshot struct {
	ID        string         `json:"id"`
	Date      time.Time      `json:"date"`
	Period    Period         `json:"period"`
	Score     int            `json:"score"`
	Grade     string         `json:"grade"`
	Breakdown ScoreBreakdown `json:"breakdown"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type ScoreHistoryResponse struct {
	Days      int             `json:"days"`
	Snapshots []ScoreSnapshot `json:"snapshots"`
}
