package domain

import (
	"time"
)

// ReportConfig descreve um job de exportação solicitado pelo chamador.
// O ciclo de vida pertence ao chamador/fornecedor; o núcleo apenas repassa.
type ReportConfig struct {
	ID         string            `json:"id"`
	Platform   PlatformKind      `json:"platform"`
	Type       string            `json:"type"`
	Schedule   string            `json:"schedule,omitempty"`
	Filters    map[string]string `json:"filters,omitempty"`
	Recipients []string          `json:"recipients,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}
