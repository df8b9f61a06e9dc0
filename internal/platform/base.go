package platform

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
)

// Base concentra o comportamento compartilhado por todos os adaptadores:
// guarda de configuração, estado de autenticação, status de sincronização e
// os defaults de operações que a maioria dos fornecedores não oferece.
// Os adaptadores compõem via embedding e sobrescrevem o que o fornecedor
// realmente suporta.
type Base struct {
	mu            sync.RWMutex
	cfg           domain.PlatformConfig
	auth          *domain.PlatformAuth
	client        *Client
	syncStatus    domain.SyncStatus
	requiredCreds []string
}

// NewBase cria o núcleo compartilhado de um adaptador. required são as
// chaves de credencial obrigatórias desta plataforma.
func NewBase(cfg domain.PlatformConfig, client *Client, required ...string) *Base {
	if client == nil {
		client = NewClient(0)
	}
	return &Base{
		cfg:    cfg,
		client: client,
		syncStatus: domain.SyncStatus{
			Platform: cfg.ID,
			Status:   domain.SyncPending,
		},
		requiredCreds: required,
	}
}

func (b *Base) Kind() domain.PlatformKind {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cfg.ID
}

func (b *Base) Config() domain.PlatformConfig {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cfg
}

// UpdateConfig substitui a configuração preservando a identidade da
// plataforma. O ID é imutável após a construção.
func (b *Base) UpdateConfig(cfg domain.PlatformConfig) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if cfg.ID != "" && cfg.ID != b.cfg.ID {
		return NewConfigError("o id da plataforma é imutável: %s", b.cfg.ID)
	}

	cfg.ID = b.cfg.ID
	b.cfg = cfg
	return nil
}

// Auth retorna o estado de credencial corrente, nil quando não autenticado
func (b *Base) Auth() *domain.PlatformAuth {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.auth
}

// SetAuth substitui o estado de credencial do adaptador
func (b *Base) SetAuth(auth *domain.PlatformAuth) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.auth = auth
}

// Client expõe o cliente HTTP autenticado compartilhado
func (b *Base) Client() *Client {
	return b.client
}

// ValidateCredentials verifica todas as chaves obrigatórias de uma vez,
// reportando o conjunto completo de ausências em um único erro
func (b *Base) ValidateCredentials() error {
	return b.RequireCredentials(b.requiredCreds...)
}

// RequireCredentials falha com um ValidationError listando TODAS as chaves
// ausentes, não apenas a primeira
func (b *Base) RequireCredentials(keys ...string) error {
	cfg := b.Config()

	missing := make([]string, 0, len(keys))
	for _, key := range keys {
		if cfg.Credential(key) == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return NewValidationError(missing...)
	}
	return nil
}

// ResolveAccountID resolve o identificador de conta a partir dos parâmetros
// da chamada, caindo para a conta padrão configurada quando ausente
func (b *Base) ResolveAccountID(params domain.QueryParams) (string, error) {
	if params.AccountID != "" {
		return params.AccountID, nil
	}

	cfg := b.Config()
	if cfg.DefaultAccountID != "" {
		return cfg.DefaultAccountID, nil
	}

	return "", NewConfigError("nenhum account_id informado e a plataforma %s não tem conta padrão configurada", cfg.ID)
}

// GetSyncStatus retorna o resultado da última sincronização
func (b *Base) GetSyncStatus() domain.SyncStatus {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.syncStatus
}

// RunSync executa fn marcando IN_PROGRESS durante a execução e grava
// exatamente um SyncStatus ao final, sobrescrevendo o anterior
func (b *Base) RunSync(ctx context.Context, fn func(ctx context.Context) (int, error)) domain.SyncStatus {
	kind := b.Kind()

	b.mu.Lock()
	b.syncStatus = domain.SyncStatus{
		Platform: kind,
		LastSync: time.Now(),
		Status:   domain.SyncInProgress,
	}
	b.mu.Unlock()

	processed, err := fn(ctx)

	status := domain.SyncStatus{
		Platform:         kind,
		LastSync:         time.Now(),
		Status:           domain.SyncSuccess,
		RecordsProcessed: processed,
	}
	if err != nil {
		status.Status = domain.SyncError
		status.Error = Normalize(err).Message
	}

	b.mu.Lock()
	b.syncStatus = status
	b.mu.Unlock()

	return status
}

// GetRateLimitInfo default deriva números apenas informativos das dicas de
// configuração; adaptadores sobrescrevem quando o fornecedor reporta quota real
func (b *Base) GetRateLimitInfo(_ context.Context) domain.RateLimitInfo {
	cfg := b.Config()

	window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
	return domain.RateLimitInfo{
		Limit:     cfg.RateLimit.MaxRequests,
		Remaining: cfg.RateLimit.MaxRequests,
		Reset:     time.Now().Add(window),
	}
}

// Defaults de webhook: resultado explícito de não-suportado, nunca um
// sucesso fabricado sem chamada ao fornecedor

func (b *Base) SetupLeadWebhook(_ context.Context, _ domain.LeadWebhookConfig) error {
	return NewNotSupportedError("setup_lead_webhook")
}

func (b *Base) RemoveLeadWebhook(_ context.Context) error {
	return NewNotSupportedError("remove_lead_webhook")
}

func (b *Base) GetWebhookEvents(_ context.Context) domain.ResponseEnvelope[domain.WebhookEvent] {
	return Failure[domain.WebhookEvent](b.Kind(), NewNotSupportedError("get_webhook_events"))
}

// Defaults de relatório, idem

func (b *Base) CreateReport(_ context.Context, _ domain.ReportConfig) (domain.ReportConfig, error) {
	return domain.ReportConfig{}, NewNotSupportedError("create_report")
}

func (b *Base) GetReport(_ context.Context, _ string) (domain.ReportConfig, bool) {
	return domain.ReportConfig{}, false
}

func (b *Base) DeleteReport(_ context.Context, _ string) error {
	return NewNotSupportedError("delete_report")
}

// Success monta o envelope de sucesso carimbando timestamp e plataforma
func Success[T any](kind domain.PlatformKind, data []T, pagination *domain.Pagination) domain.ResponseEnvelope[T] {
	if data == nil {
		data = []T{}
	}
	return domain.ResponseEnvelope[T]{
		Success:    true,
		Data:       data,
		Pagination: pagination,
		Metadata: domain.ResponseMetadata{
			Timestamp: time.Now(),
			Platform:  kind,
		},
	}
}

// Failure monta o envelope de erro normalizando valores desconhecidos para
// a forma {code, message, details}
func Failure[T any](kind domain.PlatformKind, err error) domain.ResponseEnvelope[T] {
	perr := Normalize(err)
	return domain.ResponseEnvelope[T]{
		Success: false,
		Data:    []T{},
		Error: &domain.ResponseError{
			Code:    perr.Code,
			Message: perr.Message,
			Details: perr.Details,
		},
		Metadata: domain.ResponseMetadata{
			Timestamp: time.Now(),
			Platform:  kind,
		},
	}
}

// PartialFailure monta um envelope de falha que ainda carrega os dados que
// foram obtidos antes do erro
func PartialFailure[T any](kind domain.PlatformKind, data []T, err error) domain.ResponseEnvelope[T] {
	env := Failure[T](kind, err)
	if data != nil {
		env.Data = data
	}
	return env
}
