package platform

import (
	"context"

	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
)

// TrackingPlatform é o contrato de capacidades que todo adaptador de
// plataforma implementa. As leituras em lote nunca retornam erro Go: falhas
// são comunicadas pelo envelope. Leituras de item único retornam o registro e
// um booleano de presença, engolindo qualquer falha. Authenticate e
// RefreshAuth propagam erros ao chamador.
type TrackingPlatform interface {
	// Identidade e configuração
	Kind() domain.PlatformKind
	Config() domain.PlatformConfig
	UpdateConfig(cfg domain.PlatformConfig) error

	// Autenticação
	Authenticate(ctx context.Context) error
	RefreshAuth(ctx context.Context) error
	ValidateAuth(ctx context.Context) bool

	// Leituras em lote
	GetCampaigns(ctx context.Context, params domain.QueryParams) domain.ResponseEnvelope[domain.CampaignData]
	GetAds(ctx context.Context, params domain.QueryParams) domain.ResponseEnvelope[domain.AdData]
	GetLeads(ctx context.Context, params domain.QueryParams) domain.ResponseEnvelope[domain.LeadData]
	GetMetrics(ctx context.Context, params domain.QueryParams) domain.ResponseEnvelope[domain.TrackingMetrics]

	// Leituras de item único
	GetCampaignByID(ctx context.Context, id string, params domain.QueryParams) (domain.CampaignData, bool)
	GetAdByID(ctx context.Context, id string, params domain.QueryParams) (domain.AdData, bool)
	GetLeadByID(ctx context.Context, id string, params domain.QueryParams) (domain.LeadData, bool)

	// Descoberta de contas
	GetAccounts(ctx context.Context) domain.ResponseEnvelope[domain.AccountInfo]
	GetAccountInfo(ctx context.Context, accountID string) (domain.AccountInfo, bool)

	// Webhooks de leads
	SetupLeadWebhook(ctx context.Context, cfg domain.LeadWebhookConfig) error
	RemoveLeadWebhook(ctx context.Context) error
	GetWebhookEvents(ctx context.Context) domain.ResponseEnvelope[domain.WebhookEvent]

	// Sincronização
	SyncData(ctx context.Context, params domain.QueryParams) domain.SyncStatus
	GetSyncStatus() domain.SyncStatus

	// Relatórios
	CreateReport(ctx context.Context, cfg domain.ReportConfig) (domain.ReportConfig, error)
	GetReport(ctx context.Context, id string) (domain.ReportConfig, bool)
	DeleteReport(ctx context.Context, id string) error

	// Utilitários
	TestConnection(ctx context.Context) bool
	GetRateLimitInfo(ctx context.Context) domain.RateLimitInfo
	ValidateCredentials() error
}
