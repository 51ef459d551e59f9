package domain

import "time"

// MonitoringSnapshot é uma medição de performance de uma página em um instante
type MonitoringSnapshot struct {
	ID                   int64     `json:"id,omitempty"`
	Timestamp            time.Time `json:"timestamp"`
	URL                  string    `json:"url"`
	PageSpeedDesktop     float64   `json:"pageSpeedDesktop"`
	PageSpeedMobile      float64   `json:"pageSpeedMobile"`
	LCP                  float64   `json:"lcp"`  // segundos
	FID                  float64   `json:"fid"`  // milissegundos
	CLS                  float64   `json:"cls"`  // sem unidade
	FCP                  float64   `json:"fcp"`  // segundos
	TTFB                 float64   `json:"ttfb"` // milissegundos
	MobileUsabilityScore float64   `json:"mobileUsabilityScore"`
	DomainAuthority      float64   `json:"domainAuthority"`
}

type MonitoringSnapshotInput struct {
	ID                   *int64     `json:"id,omitempty"`
	Timestamp            *time.Time `json:"timestamp"`
	URL                  *string    `json:"url"`
	PageSpeedDesktop     *float64   `json:"page_speed_desktop"`
	PageSpeedMobile      *float64   `json:"page_speed_mobile"`
	LCP                  *float64   `json:"lcp"`
	FID                  *float64   `json:"fid"`
	CLS                  *float64   `json:"cls"`
	FCP                  *float64   `json:"fcp"`
	TTFB                 *float64   `json:"ttfb"`
	MobileUsabilityScore *float64   `json:"mobile_usability_score"`
	DomainAuthority      *float64   `json:"domain_authority"`
}

// Coerce converte a entrada em MonitoringSnapshot; métricas ausentes viram 0
func (in MonitoringSnapshotInput) Coerce() MonitoringSnapshot {
	snapshot := MonitoringSnapshot{
		URL:                  stringOrEmpty(in.URL),
		PageSpeedDesktop:     floatOrZero(in.PageSpeedDesktop),
		PageSpeedMobile:      floatOrZero(in.PageSpeedMobile),
		LCP:                  floatOrZero(in.LCP),
		FID:                  floatOrZero(in.FID),
		CLS:                  floatOrZero(in.CLS),
		FCP:                  floatOrZero(in.FCP),
		TTFB:                 floatOrZero(in.TTFB),
		MobileUsabilityScore: floatOrZero(in.MobileUsabilityScore),
		DomainAuthority:      floatOrZero(in.DomainAuthority),
	}

	if in.ID != nil {
		snapshot.ID = *in.ID
	}

	if in.Timestamp != nil {
		snapshot.Timestamp = *in.Timestamp
	}

	return snapshot
}

// LatestSnapshot retorna o snapshot com o maior timestamp, ou nil se a lista estiver vazia
func LatestSnapshot(snapshots []MonitoringSnapshot) *MonitoringSnapshot {
	var latest *MonitoringSnapshot
	for i := range snapshots {
		if latest == nil || snapshots[i].Timestamp.After(latest.Timestamp) {
			latest = &snapshots[i]
		}
	}
	return latest
}
