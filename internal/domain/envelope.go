package domain

import (
	"time"
)

// ResponseMetadata acompanha toda resposta de adaptador
type ResponseMetadata struct {
	Timestamp time.Time    `json:"timestamp"`
	Platform  PlatformKind `json:"platform"`
}

// Pagination carrega o cursor de paginação do fornecedor, quando houver
type Pagination struct {
	Cursor  string `json:"cursor,omitempty"`
	HasNext bool   `json:"has_next"`
}

// ResponseError é a forma normalizada de erro dentro de um envelope
type ResponseError struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// ResponseEnvelope é o contrato uniforme de resposta entre adaptadores,
// orquestrador e chamadores externos. Success=false sempre vem acompanhado
// de Error preenchido; Data pode conter resultados parciais mesmo quando
// Success=false.
type ResponseEnvelope[T any] struct {
	Success    bool             `json:"success"`
	Data       []T              `json:"data"`
	Pagination *Pagination      `json:"pagination,omitempty"`
	Error      *ResponseError   `json:"error,omitempty"`
	Metadata   ResponseMetadata `json:"metadata"`
}
