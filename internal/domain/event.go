package domain

import "time"

const (
	EventTypePageView   = "page_view"
	EventTypeConversion = "conversion"
)

// Event representa uma interação registrada pelo tracking do site
type Event struct {
	ID        int64     `json:"id,omitempty"`
	Event     string    `json:"event"`
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"sessionId"`
	Referrer  string    `json:"referrer,omitempty"`
	PageURL   string    `json:"pageUrl,omitempty"`
}

// EventInput é a forma crua de um evento, vinda do banco ou do corpo da requisição.
// Campos ausentes permanecem nil até passarem por Coerce.
type EventInput struct {
	ID        *int64     `json:"id,omitempty"`
	Event     *string    `json:"event"`
	Timestamp *time.Time `json:"timestamp"`
	SessionID *string    `json:"session_id"`
	Referrer  *string    `json:"referrer"`
	PageURL   *string    `json:"page_url"`
}

// Coerce converte a entrada em Event aplicando os valores padrão
func (in EventInput) Coerce() Event {
	event := Event{
		Event:     stringOrEmpty(in.Event),
		SessionID: stringOrEmpty(in.SessionID),
		Referrer:  stringOrEmpty(in.Referrer),
		PageURL:   stringOrEmpty(in.PageURL),
	}

	if in.ID != nil {
		event.ID = *in.ID
	}

	if in.Timestamp != nil {
		event.Timestamp = *in.Timestamp
	}

	return event
}

func (e Event) IsPageView() bool {
	return e.Event == EventTypePageView
}

func (e Event) IsConversion() bool {
	return e.Event == EventTypeConversion
}

// FilterEventsByType retorna apenas os eventos do tipo informado, preservando a ordem
func FilterEventsByType(events []Event, eventType string) []Event {
	filtered := make([]Event, 0, len(events))
	for _, event := range events {
		if event.Event == eventType {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func intOrZero(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
