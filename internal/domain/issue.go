package domain

import "time"

const (
	IssuePriorityHigh   = "high"
	IssuePriorityMedium = "medium"
	IssuePriorityLow    = "low"

	IssueStatusOpen     = "open"
	IssueStatusResolved = "resolved"
)

// SEOIssue é um problema de SEO registrado para uma URL
type SEOIssue struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	URL       string    `json:"url"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// IssueItem é a forma exposta de um problema no dashboard
type IssueItem struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	URL      string `json:"url"`
	Priority string `json:"priority"`
}

func (i SEOIssue) ToItem() IssueItem {
	return IssueItem{
		Type:     i.Type,
		Message:  i.Message,
		URL:      i.URL,
		Priority: i.Priority,
	}
}

// CountIssuesByPriority conta os problemas de uma determinada prioridade
func CountIssuesByPriority(issues []IssueItem, priority string) int {
	count := 0
	for _, issue := range issues {
		if issue.Priority == priority {
			count++
		}
	}
	return count
}
