package tracking

import (
	"context"

	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
	"github.com/Gabryellzs/blecks-david-sub000/internal/platform"
	"github.com/Gabryellzs/blecks-david-sub000/internal/platform/factory"
)

// PlatformManager gerencia o ciclo de vida dos adaptadores registrados no serviço
type PlatformManager interface {
	// AddPlatform constrói e registra o adaptador de uma plataforma. A sonda de
	// conexão é apenas informativa: falha de sonda não rejeita o registro.
	AddPlatform(ctx context.Context, kind domain.PlatformKind, overrides domain.PlatformConfig) error

	// RemovePlatform descarta o adaptador de uma plataforma registrada
	RemovePlatform(kind domain.PlatformKind) error

	// Platform retorna o adaptador de uma plataforma registrada
	Platform(kind domain.PlatformKind) (platform.TrackingPlatform, bool)

	// Platforms lista as configurações das plataformas registradas em ordem estável
	Platforms() []domain.PlatformConfig

	// AvailableKinds lista as plataformas que a factory sabe construir
	AvailableKinds() []domain.PlatformKind

	// Defaults expõe a configuração padrão de uma plataforma da factory
	Defaults(kind domain.PlatformKind) (domain.PlatformConfig, bool)

	// ValidateConfig valida uma configuração contra os requisitos da plataforma
	ValidateConfig(kind domain.PlatformKind, overrides domain.PlatformConfig) factory.ValidationResult
}

// Aggregator executa operações em leque sobre todas as plataformas registradas.
// Os merges são determinísticos: resultados em ordem de plataforma, e um erro
// por plataforma que falhou no formato "<plataforma>: <mensagem>".
type Aggregator interface {
	GetAllCampaigns(ctx context.Context, params domain.QueryParams) domain.ResponseEnvelope[domain.CampaignData]
	GetAllAds(ctx context.Context, params domain.QueryParams) domain.ResponseEnvelope[domain.AdData]
	GetAllLeads(ctx context.Context, params domain.QueryParams) domain.ResponseEnvelope[domain.LeadData]

	// GetAllMetrics consolida as métricas de todas as plataformas em um único
	// TrackingMetrics com derivadas recalculadas sobre os totais
	GetAllMetrics(ctx context.Context, params domain.QueryParams) domain.ResponseEnvelope[domain.TrackingMetrics]

	// SyncAllPlatforms sempre retorna exatamente um status por plataforma registrada
	SyncAllPlatforms(ctx context.Context, params domain.QueryParams) []domain.SyncStatus
	GetAllSyncStatus() []domain.SyncStatus

	TestAllConnections(ctx context.Context) map[domain.PlatformKind]bool
	GetAllRateLimitInfo(ctx context.Context) map[domain.PlatformKind]domain.RateLimitInfo

	// GetPlatformCampaigns despacha a leitura para uma única plataforma; uma
	// plataforma não registrada vira um envelope PLATFORM_NOT_FOUND
	GetPlatformCampaigns(ctx context.Context, kind domain.PlatformKind, params domain.QueryParams) domain.ResponseEnvelope[domain.CampaignData]
	GetPlatformAds(ctx context.Context, kind domain.PlatformKind, params domain.QueryParams) domain.ResponseEnvelope[domain.AdData]
	GetPlatformLeads(ctx context.Context, kind domain.PlatformKind, params domain.QueryParams) domain.ResponseEnvelope[domain.LeadData]
	GetPlatformMetrics(ctx context.Context, kind domain.PlatformKind, params domain.QueryParams) domain.ResponseEnvelope[domain.TrackingMetrics]
}

// Tracker é o contrato completo do serviço de rastreamento
type Tracker interface {
	PlatformManager
	Aggregator
}
