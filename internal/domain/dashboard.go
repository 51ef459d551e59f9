package domain

type DashboardResponse struct {
	Overview    DashboardOverview    `json:"overview"`
	Performance DashboardPerformance `json:"performance"`
	Content     DashboardContent     `json:"content"`
	Issues      []IssueItem          `json:"issues"`
	LastUpdated string               `json:"lastUpdated"`
}

type DashboardOverview struct {
	TotalPages      int      `json:"totalPages"`
	IndexedPages    int      `json:"indexedPages"`
	OrganicTraffic  int      `json:"organicTraffic"`
	AverageRanking  float64  `json:"averageRanking"`
	DomainAuthority float64  `json:"domainAuthority"`
	SEOScore        SEOScore `json:"seoScore"`
}

type DashboardPerformance struct {
	PageSpeed       int           `json:"pageSpeed"`
	MobileUsability int           `json:"mobileUsability"`
	CoreWebVitals   CoreWebVitals `json:"coreWebVitals"`
}

type CoreWebVitals struct {
	LCP float64 `json:"lcp"`
	FID float64 `json:"fid"`
	CLS float64 `json:"cls"`
}

type DashboardContent struct {
	TopPerformingPages []PageViews  `json:"topPerformingPages"`
	TopKeywords        []TopKeyword `json:"topKeywords"`
}

// PageViews é a quantidade de visualizações de uma URL no período
type PageViews struct {
	URL   string `json:"url"`
	Views int    `json:"views"`
}
