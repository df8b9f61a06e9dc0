package domain

import (
	"time"
)

// PlatformKind identifica uma plataforma de anúncios/analytics suportada
type PlatformKind string

const (
	PlatformMeta            PlatformKind = "meta"
	PlatformGoogleAds       PlatformKind = "google_ads"
	PlatformGoogleAnalytics PlatformKind = "google_analytics"
	PlatformGA4             PlatformKind = "ga4"
	PlatformTikTok          PlatformKind = "tiktok"
	PlatformKwai            PlatformKind = "kwai"

	// Plataformas conhecidas pelo produto mas ainda sem adaptador próprio.
	// A factory as reporta explicitamente como não implementadas em vez de
	// aliasá-las em outro adaptador.
	PlatformLinkedIn  PlatformKind = "linkedin"
	PlatformPinterest PlatformKind = "pinterest"
	PlatformSnapchat  PlatformKind = "snapchat"
	PlatformWhatsApp  PlatformKind = "whatsapp"
)

func (k PlatformKind) String() string {
	return string(k)
}

// RateLimitHint são os limites divulgados pelo fornecedor, apenas informativos
type RateLimitHint struct {
	MaxRequests   int `json:"max_requests"`
	WindowSeconds int `json:"window_seconds"`
}

// PlatformConfig contém as configurações de conexão de uma plataforma.
// O ID é imutável após a construção; os merges feitos pela factory nunca
// descartam id/enabled.
type PlatformConfig struct {
	ID               PlatformKind      `json:"id"`
	Name             string            `json:"name"`
	Enabled          *bool             `json:"enabled,omitempty"`
	Color            string            `json:"color"`
	BaseURL          string            `json:"base_url"`
	TokenURL         string            `json:"token_url,omitempty"`
	Scopes           []string          `json:"scopes,omitempty"`
	Credentials      map[string]string `json:"credentials,omitempty"`
	DefaultAccountID string            `json:"default_account_id,omitempty"`
	RateLimit        RateLimitHint     `json:"rate_limit"`
}

// Bool devolve um ponteiro para o valor, para distinguir "não informado"
// de "explicitamente falso" nos merges de configuração
func Bool(v bool) *bool {
	return &v
}

// IsEnabled lê o flag tratando ausência como desabilitado
func (c PlatformConfig) IsEnabled() bool {
	return c.Enabled != nil && *c.Enabled
}

// Credential retorna o valor de uma credencial, vazio quando ausente
func (c PlatformConfig) Credential(key string) string {
	if c.Credentials == nil {
		return ""
	}
	return c.Credentials[key]
}

// PlatformAuth é o estado de credencial corrente de um adaptador.
// Vive apenas dentro da instância do adaptador, nunca é persistido.
type PlatformAuth struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Expired indica se o token de acesso já passou da validade conhecida.
// Um ExpiresAt zerado significa validade desconhecida e é tratado como válido.
func (a *PlatformAuth) Expired() bool {
	if a == nil || a.AccessToken == "" {
		return true
	}
	if a.ExpiresAt.IsZero() {
		return false
	}
	return time.Now().After(a.ExpiresAt)
}

// RateLimitInfo são os números de quota reportados pelo fornecedor
type RateLimitInfo struct {
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	Reset     time.Time `json:"reset"`
}

// AccountInfo representa uma conta de anúncios/propriedade descoberta na plataforma
type AccountInfo struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Currency string       `json:"currency,omitempty"`
	Timezone string       `json:"timezone,omitempty"`
	Status   string       `json:"status,omitempty"`
	Platform PlatformKind `json:"platform"`
}
