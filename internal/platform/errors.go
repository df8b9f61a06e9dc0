package platform

import (
	"fmt"
	"strings"
)

// Códigos de erro do contrato de plataforma
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeAuth             = "AUTH_ERROR"
	CodeAPI              = "API_ERROR"
	CodeConfig           = "CONFIG_ERROR"
	CodeNotSupported     = "NOT_SUPPORTED"
	CodePlatformNotFound = "PLATFORM_NOT_FOUND"
	CodeAggregate        = "AGGREGATE_ERROR"
	CodeUnknown          = "UNKNOWN_ERROR"
)

// Error é o erro estruturado compartilhado por todos os adaptadores
type Error struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	// Status carrega o código HTTP quando o erro veio de uma resposta do fornecedor
	Status int `json:"status,omitempty"`
}

func (e *Error) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, strings.Join(e.Details, "; "))
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidationError cria um erro de validação listando todas as chaves ausentes
func NewValidationError(missing ...string) *Error {
	return &Error{
		Code:    CodeValidation,
		Message: "credenciais/configurações obrigatórias ausentes",
		Details: missing,
	}
}

// NewAuthError cria um erro de autenticação
func NewAuthError(format string, args ...any) *Error {
	return &Error{
		Code:    CodeAuth,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewAPIError cria um erro a partir de uma resposta não-2xx do fornecedor
func NewAPIError(status int, body string) *Error {
	return &Error{
		Code:    CodeAPI,
		Message: fmt.Sprintf("resposta inesperada da API do fornecedor (status %d)", status),
		Details: []string{body},
		Status:  status,
	}
}

// NewConfigError cria um erro de configuração incompleta
func NewConfigError(format string, args ...any) *Error {
	return &Error{
		Code:    CodeConfig,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewNotSupportedError sinaliza uma operação que o fornecedor não oferece.
// É um resultado explícito, nunca um sucesso fabricado.
func NewNotSupportedError(operation string) *Error {
	return &Error{
		Code:    CodeNotSupported,
		Message: fmt.Sprintf("operação %q não suportada por esta plataforma", operation),
	}
}

// NewRefreshUnsupportedError sinaliza que a plataforma exige o reenvio manual
// de uma nova credencial: é um estado terminal deliberado, não uma omissão.
func NewRefreshUnsupportedError() *Error {
	return &Error{
		Code:    CodeAuth,
		Message: "renovação de credencial não suportada; é necessário submeter uma nova chave manualmente",
	}
}

// Normalize converte qualquer erro para a forma estruturada {code, message, details}.
// Erros desconhecidos recebem o código UNKNOWN_ERROR.
func Normalize(err error) *Error {
	if err == nil {
		return nil
	}
	if perr, ok := err.(*Error); ok {
		return perr
	}
	return &Error{
		Code:    CodeUnknown,
		Message: err.Error(),
	}
}
