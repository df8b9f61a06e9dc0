package tracking

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
	"github.com/Gabryellzs/blecks-david-sub000/internal/platform"
	"github.com/Gabryellzs/blecks-david-sub000/internal/platform/factory"
	"github.com/Gabryellzs/blecks-david-sub000/pkg/metrics"
)

// PlatformAll identifica respostas agregadas de todas as plataformas
const PlatformAll = domain.PlatformKind("all")

// Service orquestra os adaptadores registrados: despacha leituras em leque,
// agrega resultados de forma determinística e reduz falhas parciais a um
// único erro agregado sem descartar os dados das plataformas que responderam
type Service struct {
	mu       sync.RWMutex
	factory  *factory.Factory
	adapters map[domain.PlatformKind]platform.TrackingPlatform
}

// NewService cria o serviço de rastreamento sobre uma factory de adaptadores
func NewService(f *factory.Factory) Tracker {
	return &Service{
		factory:  f,
		adapters: make(map[domain.PlatformKind]platform.TrackingPlatform),
	}
}

// AddPlatform constrói o adaptador via factory e o registra. A sonda de
// conexão roda após o registro e só gera log: indisponibilidade momentânea do
// fornecedor não pode impedir a configuração da plataforma.
func (s *Service) AddPlatform(ctx context.Context, kind domain.PlatformKind, overrides domain.PlatformConfig) error {
	adapter, err := s.factory.CreateTrackingPlatform(kind, overrides)
	if err != nil {
		logrus.WithError(err).WithField("platform", kind).Error("tracking: falha ao construir adaptador")
		return err
	}

	s.mu.Lock()
	s.adapters[kind] = adapter
	s.mu.Unlock()

	if ok := adapter.TestConnection(ctx); !ok {
		logrus.WithField("platform", kind).Warn("tracking: sonda de conexão falhou após o registro")
	}

	logrus.WithField("platform", kind).Info("tracking: plataforma registrada")
	return nil
}

func (s *Service) RemovePlatform(kind domain.PlatformKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.adapters[kind]; !ok {
		return &platform.Error{
			Code:    platform.CodePlatformNotFound,
			Message: fmt.Sprintf("plataforma %s não está registrada", kind),
		}
	}

	delete(s.adapters, kind)
	return nil
}

func (s *Service) Platform(kind domain.PlatformKind) (platform.TrackingPlatform, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	adapter, ok := s.adapters[kind]
	return adapter, ok
}

func (s *Service) Platforms() []domain.PlatformConfig {
	adapters := s.sortedAdapters()

	configs := make([]domain.PlatformConfig, 0, len(adapters))
	for _, adapter := range adapters {
		configs = append(configs, adapter.Config())
	}
	return configs
}

func (s *Service) AvailableKinds() []domain.PlatformKind {
	return s.factory.Kinds()
}

func (s *Service) Defaults(kind domain.PlatformKind) (domain.PlatformConfig, bool) {
	return s.factory.Defaults(kind)
}

func (s *Service) ValidateConfig(kind domain.PlatformKind, overrides domain.PlatformConfig) factory.ValidationResult {
	cfg, err := s.factory.Resolve(kind, overrides)
	if err != nil {
		return factory.ValidationResult{Errors: []string{err.Error()}}
	}
	return s.factory.ValidateConfig(kind, cfg)
}

// sortedAdapters tira um snapshot dos adaptadores em ordem de plataforma.
// Toda operação em leque itera sobre esse snapshot: o resultado final é
// determinístico mesmo com execução concorrente.
func (s *Service) sortedAdapters() []platform.TrackingPlatform {
	s.mu.RLock()
	defer s.mu.RUnlock()

	kinds := make([]domain.PlatformKind, 0, len(s.adapters))
	for kind := range s.adapters {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	adapters := make([]platform.TrackingPlatform, 0, len(kinds))
	for _, kind := range kinds {
		adapters = append(adapters, s.adapters[kind])
	}
	return adapters
}

// fanOut despacha fn para todos os adaptadores em paralelo e funde os
// envelopes na ordem do snapshot. Um pânico dentro de um adaptador é reduzido
// a uma falha daquela plataforma, nunca derruba o leque inteiro.
func fanOut[T any](ctx context.Context, adapters []platform.TrackingPlatform, fn func(ctx context.Context, p platform.TrackingPlatform) domain.ResponseEnvelope[T]) domain.ResponseEnvelope[T] {
	results := make([]domain.ResponseEnvelope[T], len(adapters))

	var wg sync.WaitGroup
	for i, adapter := range adapters {
		wg.Add(1)
		go func(i int, adapter platform.TrackingPlatform) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					logrus.WithField("platform", adapter.Kind()).Errorf("tracking: pânico no adaptador: %v", r)
					results[i] = platform.Failure[T](adapter.Kind(), fmt.Errorf("pânico no adaptador: %v", r))
				}
			}()
			results[i] = fn(ctx, adapter)
		}(i, adapter)
	}
	wg.Wait()

	return mergeEnvelopes(results)
}

// mergeEnvelopes funde os envelopes individuais em um agregado: dados na
// ordem das plataformas, um detalhe de erro por plataforma que falhou no
// formato "<plataforma>: <mensagem>", e sucesso apenas quando nenhuma falhou
func mergeEnvelopes[T any](results []domain.ResponseEnvelope[T]) domain.ResponseEnvelope[T] {
	merged := domain.ResponseEnvelope[T]{
		Success: true,
		Data:    []T{},
		Metadata: domain.ResponseMetadata{
			Timestamp: time.Now(),
			Platform:  PlatformAll,
		},
	}

	var details []string
	for _, env := range results {
		merged.Data = append(merged.Data, env.Data...)
		if !env.Success {
			message := "falha desconhecida"
			if env.Error != nil {
				message = env.Error.Message
			}
			details = append(details, fmt.Sprintf("%s: %s", env.Metadata.Platform, message))
		}
	}

	if len(details) > 0 {
		merged.Success = false
		merged.Error = &domain.ResponseError{
			Code:    platform.CodeAggregate,
			Message: fmt.Sprintf("%d plataforma(s) falharam durante a agregação", len(details)),
			Details: details,
		}
	}

	return merged
}

func (s *Service) GetAllCampaigns(ctx context.Context, params domain.QueryParams) domain.ResponseEnvelope[domain.CampaignData] {
	return fanOut(ctx, s.sortedAdapters(), func(ctx context.Context, p platform.TrackingPlatform) domain.ResponseEnvelope[domain.CampaignData] {
		return p.GetCampaigns(ctx, params)
	})
}

func (s *Service) GetAllAds(ctx context.Context, params domain.QueryParams) domain.ResponseEnvelope[domain.AdData] {
	return fanOut(ctx, s.sortedAdapters(), func(ctx context.Context, p platform.TrackingPlatform) domain.ResponseEnvelope[domain.AdData] {
		return p.GetAds(ctx, params)
	})
}

func (s *Service) GetAllLeads(ctx context.Context, params domain.QueryParams) domain.ResponseEnvelope[domain.LeadData] {
	return fanOut(ctx, s.sortedAdapters(), func(ctx context.Context, p platform.TrackingPlatform) domain.ResponseEnvelope[domain.LeadData] {
		return p.GetLeads(ctx, params)
	})
}

// GetAllMetrics agrega as métricas de todas as plataformas e responde com um
// único registro consolidado, com as derivadas recalculadas sobre os totais
// em vez de médias de médias
func (s *Service) GetAllMetrics(ctx context.Context, params domain.QueryParams) domain.ResponseEnvelope[domain.TrackingMetrics] {
	env := fanOut(ctx, s.sortedAdapters(), func(ctx context.Context, p platform.TrackingPlatform) domain.ResponseEnvelope[domain.TrackingMetrics] {
		return p.GetMetrics(ctx, params)
	})

	consolidated := platform.Consolidate(env.Data)
	consolidated.Platform = PlatformAll
	env.Data = []domain.TrackingMetrics{consolidated}

	return env
}

// SyncAllPlatforms dispara a sincronização em todas as plataformas e retorna
// exatamente um status por plataforma registrada, em ordem de plataforma
func (s *Service) SyncAllPlatforms(ctx context.Context, params domain.QueryParams) []domain.SyncStatus {
	adapters := s.sortedAdapters()
	statuses := make([]domain.SyncStatus, len(adapters))

	var wg sync.WaitGroup
	for i, adapter := range adapters {
		wg.Add(1)
		go func(i int, adapter platform.TrackingPlatform) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					logrus.WithField("platform", adapter.Kind()).Errorf("tracking: pânico durante sincronização: %v", r)
					statuses[i] = domain.SyncStatus{
						Platform: adapter.Kind(),
						LastSync: time.Now(),
						Status:   domain.SyncError,
						Error:    fmt.Sprintf("pânico durante sincronização: %v", r),
					}
				}
			}()
			statuses[i] = adapter.SyncData(ctx, params)
		}(i, adapter)
	}
	wg.Wait()

	for _, status := range statuses {
		metrics.ObserveSyncRun(status.Platform.String(), string(status.Status))
	}

	return statuses
}

func (s *Service) GetAllSyncStatus() []domain.SyncStatus {
	adapters := s.sortedAdapters()
	statuses := make([]domain.SyncStatus, 0, len(adapters))
	for _, adapter := range adapters {
		statuses = append(statuses, adapter.GetSyncStatus())
	}
	return statuses
}

func (s *Service) TestAllConnections(ctx context.Context) map[domain.PlatformKind]bool {
	adapters := s.sortedAdapters()
	out := make(map[domain.PlatformKind]bool, len(adapters))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, adapter := range adapters {
		wg.Add(1)
		go func(adapter platform.TrackingPlatform) {
			defer wg.Done()
			ok := adapter.TestConnection(ctx)
			mu.Lock()
			out[adapter.Kind()] = ok
			mu.Unlock()
		}(adapter)
	}
	wg.Wait()

	return out
}

// GetAllRateLimitInfo coleta os números de quota de cada plataforma; um
// adaptador que não consegue reportar degrada para quota esgotada agora, em
// vez de sumir do mapa
func (s *Service) GetAllRateLimitInfo(ctx context.Context) map[domain.PlatformKind]domain.RateLimitInfo {
	adapters := s.sortedAdapters()
	out := make(map[domain.PlatformKind]domain.RateLimitInfo, len(adapters))

	for _, adapter := range adapters {
		info := func() (info domain.RateLimitInfo) {
			defer func() {
				if r := recover(); r != nil {
					info = domain.RateLimitInfo{Remaining: 0, Reset: time.Now()}
				}
			}()
			return adapter.GetRateLimitInfo(ctx)
		}()
		out[adapter.Kind()] = info
	}

	return out
}

func (s *Service) GetPlatformCampaigns(ctx context.Context, kind domain.PlatformKind, params domain.QueryParams) domain.ResponseEnvelope[domain.CampaignData] {
	adapter, ok := s.Platform(kind)
	if !ok {
		return platform.Failure[domain.CampaignData](kind, s.notRegistered(kind))
	}
	return adapter.GetCampaigns(ctx, params)
}

func (s *Service) GetPlatformAds(ctx context.Context, kind domain.PlatformKind, params domain.QueryParams) domain.ResponseEnvelope[domain.AdData] {
	adapter, ok := s.Platform(kind)
	if !ok {
		return platform.Failure[domain.AdData](kind, s.notRegistered(kind))
	}
	return adapter.GetAds(ctx, params)
}

func (s *Service) GetPlatformLeads(ctx context.Context, kind domain.PlatformKind, params domain.QueryParams) domain.ResponseEnvelope[domain.LeadData] {
	adapter, ok := s.Platform(kind)
	if !ok {
		return platform.Failure[domain.LeadData](kind, s.notRegistered(kind))
	}
	return adapter.GetLeads(ctx, params)
}

func (s *Service) GetPlatformMetrics(ctx context.Context, kind domain.PlatformKind, params domain.QueryParams) domain.ResponseEnvelope[domain.TrackingMetrics] {
	adapter, ok := s.Platform(kind)
	if !ok {
		return platform.Failure[domain.TrackingMetrics](kind, s.notRegistered(kind))
	}
	return adapter.GetMetrics(ctx, params)
}

func (s *Service) notRegistered(kind domain.PlatformKind) *platform.Error {
	return &platform.Error{
		Code:    platform.CodePlatformNotFound,
		Message: fmt.Sprintf("plataforma %s não está registrada", kind),
	}
}
