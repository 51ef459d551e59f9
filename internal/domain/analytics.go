package domain

type AnalyticsResponse struct {
	Period    Period          `json:"period"`
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
	Traffic   TrafficSummary  `json:"traffic"`
	Keywords  KeywordSummary  `json:"keywords"`
	Trends    AnalyticsTrends `json:"trends"`
}

// TrafficSources são contagens independentes por origem; um mesmo evento pode
// aparecer em mais de uma origem e a soma não corresponde ao total de eventos.
type TrafficSources struct {
	Organic  int `json:"organic"`
	Direct   int `json:"direct"`
	Social   int `json:"social"`
	Referral int `json:"referral"`
}

type SessionMetrics struct {
	TotalSessions          int     `json:"totalSessions"`
	PageViews              int     `json:"pageViews"`
	Conversions            int     `json:"conversions"`
	UniqueVisitors         int     `json:"uniqueVisitors"`
	AverageSessionDuration float64 `json:"averageSessionDuration"`
	BounceRate             float64 `json:"bounceRate"`
	ConversionRate         float64 `json:"conversionRate"`
}

type TrafficSummary struct {
	SessionMetrics
	Sources TrafficSources `json:"sources"`
}

type KeywordSummary struct {
	TotalKeywords   int            `json:"totalKeywords"`
	AveragePosition float64        `json:"averagePosition"`
	TopKeywords     []TopKeyword   `json:"topKeywords"`
	RankingChanges  RankingChanges `json:"rankingChanges"`
}

type TrendPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type AnalyticsTrends struct {
	Traffic         []TrendPoint `json:"traffic"`
	Conversions     []TrendPoint `json:"conversions"`
	KeywordPosition []TrendPoint `json:"keywordPosition"`
}
