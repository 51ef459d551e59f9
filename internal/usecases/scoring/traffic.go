package scoring

import (
	"sort"
	"strings"

	"github.com/vfg2006/realestate-seo-api/internal/domain"
)

const directReferrer = "direct"

var (
	searchEngineMarkers = []string{"google", "bing", "yahoo", "duckduckgo", "baidu", "yandex"}
	socialMarkers       = []string{"facebook", "twitter", "instagram", "linkedin", "youtube", "pinterest", "tiktok"}
)

func IsOrganic(referrer string) bool {
	return containsAny(referrer, searchEngineMarkers)
}

func IsSocial(referrer string) bool {
	return containsAny(referrer, socialMarkers)
}

func IsDirect(referrer string) bool {
	return referrer == "" || strings.EqualFold(referrer, directReferrer)
}

func IsReferral(referrer string) bool {
	return !IsDirect(referrer) && !IsOrganic(referrer) && !IsSocial(referrer)
}

// ClassifyTraffic conta os eventos de cada origem. Cada origem é um filtro
// independente sobre o conjunto inteiro: um referrer que contém marcadores de
// busca e de rede social entra em organic e em social.
func ClassifyTraffic(events []domain.Event) domain.TrafficSources {
	sources := domain.TrafficSources{}

	for _, event := range events {
		if IsOrganic(event.Referrer) {
			sources.Organic++
		}
		if IsDirect(event.Referrer) {
			sources.Direct++
		}
		if IsSocial(event.Referrer) {
			sources.Social++
		}
		if IsReferral(event.Referrer) {
			sources.Referral++
		}
	}

	return sources
}

// TopPages agrupa as visualizações por URL e retorna as mais acessadas
func TopPages(events []domain.Event, limit int) []domain.PageViews {
	views := make(map[string]int)
	order := make([]string, 0)

	for _, event := range events {
		if !event.IsPageView() || event.PageURL == "" {
			continue
		}
		if _, seen := views[event.PageURL]; !seen {
			order = append(order, event.PageURL)
		}
		views[event.PageURL]++
	}

	pages := make([]domain.PageViews, 0, len(order))
	for _, url := range order {
		pages = append(pages, domain.PageViews{URL: url, Views: views[url]})
	}

	sort.SliceStable(pages, func(i, j int) bool {
		if pages[i].Views != pages[j].Views {
			return pages[i].Views > pages[j].Views
		}
		return pages[i].URL < pages[j].URL
	})

	if limit > 0 && len(pages) > limit {
		pages = pages[:limit]
	}

	return pages
}

func containsAny(referrer string, markers []string) bool {
	if referrer == "" {
		return false
	}

	lower := strings.ToLower(referrer)
	for _, marker := range markers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
