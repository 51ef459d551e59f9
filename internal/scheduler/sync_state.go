package scheduler

import (
	"sync"
	"time"
)

// syncState controla a execução de um job: no máximo uma execução por vez
type syncState struct {
	mu              sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastError       string
}

// begin marca o início da execução; retorna false se já houver uma em andamento
func (s *syncState) begin(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return false
	}
	s.running = true
	s.lastStartedAt = now
	return true
}

func (s *syncState) finish(now time.Time, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = false
	s.lastCompletedAt = now
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
}

func (s *syncState) isRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *syncState) status(cron string, enabled bool) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := map[string]any{
		"sync_running":           s.running,
		"sync_cron":              cron,
		"sync_enabled":           enabled,
		"last_sync_started_at":   s.lastStartedAt,
		"last_sync_completed_at": s.lastCompletedAt,
	}
	if s.lastError != "" {
		status["last_sync_error"] = s.lastError
	}
	return status
}
