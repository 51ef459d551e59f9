package tracking

import (
	"errors"
	"fmt"

	"github.com/vfg2006/realestate-seo-api/pkg/apiErrors"
)

// Erros específicos do registro de dados de SEO
var (
	// Erros de validação
	ErrEventTypeRequired   = errors.New("event type is required")
	ErrSessionIDRequired   = errors.New("session id is required")
	ErrInvalidScore        = errors.New("score must be between 0 and 100")
	ErrNegativeMetric      = errors.New("metric cannot be negative")
	ErrKeywordRequired     = errors.New("keyword is required")
	ErrInvalidPosition     = errors.New("position cannot be negative")
	ErrInvalidSearchVolume = errors.New("search volume cannot be negative")
	ErrEmptyBatch          = errors.New("at least one keyword ranking is required")
	ErrBatchTooLarge       = errors.New("keyword ranking batch is too large")

	// Erros de banco de dados
	ErrSaveEvent      = errors.New("error saving event")
	ErrSaveMonitoring = errors.New("error saving monitoring snapshot")
	ErrSaveRankings   = errors.New("error saving keyword rankings")
)

// TrackingError é um erro com o código de API correspondente
type TrackingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Field   string // Campo inválido (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *TrackingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *TrackingError) Unwrap() error {
	return e.Err
}

func newValidationError(err error, field string) *TrackingError {
	return &TrackingError{
		Err:   err,
		Code:  apiErrors.ErrInvalidFormat,
		Field: field,
	}
}

func newMissingFieldError(err error, field string) *TrackingError {
	return &TrackingError{
		Err:   err,
		Code:  apiErrors.ErrMissingRequiredData,
		Field: field,
	}
}

func newDatabaseError(err error, cause error) *TrackingError {
	return &TrackingError{
		Err:     err,
		Code:    apiErrors.ErrDatabaseOperation,
		Details: cause.Error(),
	}
}
