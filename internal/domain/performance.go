package domain

// VitalTier é a faixa de classificação de uma métrica de Web Vitals
type VitalTier string

const (
	VitalTierGood             VitalTier = "good"
	VitalTierNeedsImprovement VitalTier = "needs-improvement"
	VitalTierPoor             VitalTier = "poor"
)

type PerformanceResponse struct {
	Period          Period                  `json:"period"`
	LastChecked     string                  `json:"lastChecked,omitempty"`
	Scores          PerformanceScores       `json:"scores"`
	Metrics         PerformanceMetrics      `json:"metrics"`
	Vitals          VitalsClassification    `json:"vitals"`
	Trend           []PerformanceTrendPoint `json:"trend"`
	Recommendations []IssueItem             `json:"recommendations"`
}

type PerformanceScores struct {
	Overall         int `json:"overall"`
	CoreWebVitals   int `json:"coreWebVitals"`
	PageSpeed       int `json:"pageSpeed"`
	MobileUsability int `json:"mobileUsability"`
}

type PerformanceMetrics struct {
	URL              string  `json:"url,omitempty"`
	PageSpeedDesktop float64 `json:"pageSpeedDesktop"`
	PageSpeedMobile  float64 `json:"pageSpeedMobile"`
	LCP              float64 `json:"lcp"`
	FID              float64 `json:"fid"`
	CLS              float64 `json:"cls"`
	FCP              float64 `json:"fcp"`
	TTFB             float64 `json:"ttfb"`
	MobileUsability  float64 `json:"mobileUsability"`
}

type VitalsClassification struct {
	LCP  VitalTier `json:"lcp"`
	FID  VitalTier `json:"fid"`
	CLS  VitalTier `json:"cls"`
	FCP  VitalTier `json:"fcp"`
	TTFB VitalTier `json:"ttfb"`
}

// PerformanceTrendPoint é a média diária das medições; dias sem medição não aparecem
type PerformanceTrendPoint struct {
	Date             string  `json:"date"`
	PageSpeedDesktop float64 `json:"pageSpeedDesktop"`
	PageSpeedMobile  float64 `json:"pageSpeedMobile"`
	LCP              float64 `json:"lcp"`
	FID              float64 `json:"fid"`
	CLS              float64 `json:"cls"`
	Samples          int     `json:"samples"`
}
