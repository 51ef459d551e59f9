package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de roteamento (3000-3999)
	ErrNotFound         = "ROUTE_001" // Rota não encontrada
	ErrMethodNotAllowed = "ROUTE_002" // Método não permitido

	// Erros de limite de uso (4000-4999)
	ErrTooManyRequests = "RATE_001" // Limite de requisições excedido

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

// Mensagens genéricas; detalhes internos nunca são expostos em erros 5xx
var defaultMessages = map[string]string{
	ErrInvalidRequest:      "Requisição inválida",
	ErrMissingRequiredData: "Dados obrigatórios ausentes",
	ErrInvalidFormat:       "Formato de dados inválido",
	ErrNotFound:            "Recurso não encontrado",
	ErrMethodNotAllowed:    "Método não permitido",
	ErrTooManyRequests:     "Limite de requisições excedido",
	ErrInternalServer:      "Erro interno no servidor",
	ErrDatabaseOperation:   "Erro interno no servidor",
	ErrExternalService:     "Erro em serviço externo",
	ErrCommunication:       "Serviço temporariamente indisponível",
}

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrNotFound:            http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrTooManyRequests:     http.StatusTooManyRequests,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrCommunication:       http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Error   string `json:"error"`             // Mensagem exibida ao cliente
	Code    string `json:"code"`              // Código de erro para o cliente
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP do código; códigos desconhecidos valem 500
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP.
// Mensagem vazia usa a mensagem genérica do código.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status := StatusFor(code)
	if _, known := httpStatusMap[code]; !known {
		code = ErrInternalServer
	}

	if message == "" || status >= http.StatusInternalServerError {
		message = defaultMessages[code]
	}

	apiErr := APIError{
		Error:   message,
		Code:    code,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// WriteInternalError responde 500 com a mensagem genérica
func WriteInternalError(w http.ResponseWriter) {
	WriteError(w, ErrInternalServer, "", nil)
}
