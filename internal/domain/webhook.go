package domain

import (
	"encoding/json"
	"time"
)

// LeadWebhookConfig são os parâmetros para assinar notificações de leads
// em plataformas que suportam webhooks
type LeadWebhookConfig struct {
	CallbackURL string   `json:"callback_url"`
	VerifyToken string   `json:"verify_token,omitempty"`
	Fields      []string `json:"fields,omitempty"`
}

// WebhookEvent é um evento de webhook recebido de uma plataforma
type WebhookEvent struct {
	ID         string          `json:"id"`
	Platform   PlatformKind    `json:"platform"`
	Type       string          `json:"type"`
	ReceivedAt time.Time       `json:"received_at"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}
