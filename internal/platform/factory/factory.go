// Package factory constrói adaptadores de plataforma a partir de descritores
// registrados por instância. Cada serviço recebe sua própria factory: não há
// registro global mutável compartilhado entre testes e servidores.
package factory

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"

	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
	"github.com/Gabryellzs/blecks-david-sub000/internal/platform"
	"github.com/Gabryellzs/blecks-david-sub000/internal/platform/analytics"
	"github.com/Gabryellzs/blecks-david-sub000/internal/platform/apikey"
	"github.com/Gabryellzs/blecks-david-sub000/internal/platform/googleads"
	"github.com/Gabryellzs/blecks-david-sub000/internal/platform/meta"
)

// BuildFunc constrói um adaptador concreto a partir da configuração final
type BuildFunc func(cfg domain.PlatformConfig, client *platform.Client) (platform.TrackingPlatform, error)

// Descriptor descreve uma plataforma registrada: seus defaults de conexão,
// as credenciais obrigatórias e o construtor do adaptador
type Descriptor struct {
	Defaults            domain.PlatformConfig
	RequiredCredentials []string
	Build               BuildFunc
}

// ValidationResult é o resultado agregado de ValidateConfig: em vez de parar
// no primeiro problema, lista todos de uma vez
type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors,omitempty"`
}

type Factory struct {
	client   *platform.Client
	registry map[domain.PlatformKind]Descriptor
}

// NewFactory cria uma factory com todas as plataformas suportadas registradas
func NewFactory(client *platform.Client) *Factory {
	if client == nil {
		client = platform.NewClient(0)
	}

	f := &Factory{
		client:   client,
		registry: make(map[domain.PlatformKind]Descriptor),
	}

	f.Register(domain.PlatformMeta, Descriptor{
		Defaults: domain.PlatformConfig{
			ID:      domain.PlatformMeta,
			Name:    "Meta Ads",
			Enabled: domain.Bool(true),
			Color:   "#1877F2",
			BaseURL: "https://graph.facebook.com/v19.0",
			Scopes:  []string{"ads_read", "leads_retrieval"},
			RateLimit: domain.RateLimitHint{
				MaxRequests:   200,
				WindowSeconds: 3600,
			},
		},
		RequiredCredentials: []string{meta.CredAccessToken},
		Build:               meta.New,
	})

	f.Register(domain.PlatformGoogleAds, Descriptor{
		Defaults: domain.PlatformConfig{
			ID:       domain.PlatformGoogleAds,
			Name:     "Google Ads",
			Enabled:  domain.Bool(true),
			Color:    "#4285F4",
			BaseURL:  "https://googleads.googleapis.com/v16",
			TokenURL: "https://oauth2.googleapis.com/token",
			Scopes:   []string{"https://www.googleapis.com/auth/adwords"},
			RateLimit: domain.RateLimitHint{
				MaxRequests:   15000,
				WindowSeconds: 86400,
			},
		},
		RequiredCredentials: []string{
			googleads.CredClientID,
			googleads.CredClientSecret,
			googleads.CredDeveloperToken,
			googleads.CredRefreshToken,
		},
		Build: googleads.New,
	})

	f.Register(domain.PlatformGoogleAnalytics, Descriptor{
		Defaults: domain.PlatformConfig{
			ID:       domain.PlatformGoogleAnalytics,
			Name:     "Google Analytics",
			Enabled:  domain.Bool(true),
			Color:    "#E37400",
			BaseURL:  "https://analyticsdata.googleapis.com/v1beta",
			TokenURL: "https://oauth2.googleapis.com/token",
			Scopes:   []string{"https://www.googleapis.com/auth/analytics.readonly"},
			RateLimit: domain.RateLimitHint{
				MaxRequests:   2000,
				WindowSeconds: 3600,
			},
		},
		RequiredCredentials: []string{
			analytics.CredClientID,
			analytics.CredClientSecret,
			analytics.CredRefreshToken,
			analytics.CredPropertyID,
		},
		Build: analytics.New,
	})

	// GA4 compartilha o adaptador de analytics; muda apenas a identidade
	ga4 := f.registry[domain.PlatformGoogleAnalytics]
	ga4.Defaults.ID = domain.PlatformGA4
	ga4.Defaults.Name = "Google Analytics 4"
	f.Register(domain.PlatformGA4, ga4)

	f.Register(domain.PlatformTikTok, Descriptor{
		Defaults: domain.PlatformConfig{
			ID:      domain.PlatformTikTok,
			Name:    "TikTok Ads",
			Enabled: domain.Bool(true),
			Color:   "#010101",
			BaseURL: "https://business-api.tiktok.com",
			RateLimit: domain.RateLimitHint{
				MaxRequests:   600,
				WindowSeconds: 60,
			},
		},
		RequiredCredentials: []string{apikey.CredAPIKey},
		Build: func(cfg domain.PlatformConfig, client *platform.Client) (platform.TrackingPlatform, error) {
			return apikey.New(cfg, client, apikey.TikTokProfile())
		},
	})

	f.Register(domain.PlatformKwai, Descriptor{
		Defaults: domain.PlatformConfig{
			ID:      domain.PlatformKwai,
			Name:    "Kwai Ads",
			Enabled: domain.Bool(true),
			Color:   "#FF7D00",
			BaseURL: "https://developers.kwai.com",
			RateLimit: domain.RateLimitHint{
				MaxRequests:   300,
				WindowSeconds: 60,
			},
		},
		RequiredCredentials: []string{apikey.CredAPIKey},
		Build: func(cfg domain.PlatformConfig, client *platform.Client) (platform.TrackingPlatform, error) {
			return apikey.New(cfg, client, apikey.KwaiProfile())
		},
	})

	return f
}

// Register adiciona ou substitui o descritor de uma plataforma
func (f *Factory) Register(kind domain.PlatformKind, desc Descriptor) {
	f.registry[kind] = desc
}

// Kinds lista as plataformas registradas em ordem determinística
func (f *Factory) Kinds() []domain.PlatformKind {
	kinds := make([]domain.PlatformKind, 0, len(f.registry))
	for kind := range f.registry {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Defaults retorna a configuração padrão de uma plataforma registrada
func (f *Factory) Defaults(kind domain.PlatformKind) (domain.PlatformConfig, bool) {
	desc, ok := f.registry[kind]
	if !ok {
		return domain.PlatformConfig{}, false
	}
	return desc.Defaults, true
}

// Resolve monta a configuração final de uma plataforma: defaults do descritor
// sobrepostos pelos overrides do chamador. ID e enabled nunca são descartados.
func (f *Factory) Resolve(kind domain.PlatformKind, overrides domain.PlatformConfig) (domain.PlatformConfig, error) {
	desc, ok := f.registry[kind]
	if !ok {
		return domain.PlatformConfig{}, f.unknownKind(kind)
	}

	cfg := desc.Defaults
	if overrides.Enabled != nil {
		cfg.Enabled = overrides.Enabled
	}

	if overrides.Name != "" {
		cfg.Name = overrides.Name
	}
	if overrides.Color != "" {
		cfg.Color = overrides.Color
	}
	if overrides.BaseURL != "" {
		cfg.BaseURL = overrides.BaseURL
	}
	if overrides.TokenURL != "" {
		cfg.TokenURL = overrides.TokenURL
	}
	if len(overrides.Scopes) > 0 {
		cfg.Scopes = overrides.Scopes
	}
	if overrides.DefaultAccountID != "" {
		cfg.DefaultAccountID = overrides.DefaultAccountID
	}
	if overrides.RateLimit.MaxRequests > 0 {
		cfg.RateLimit = overrides.RateLimit
	}

	if len(overrides.Credentials) > 0 {
		merged := make(map[string]string, len(cfg.Credentials)+len(overrides.Credentials))
		for k, v := range cfg.Credentials {
			merged[k] = v
		}
		for k, v := range overrides.Credentials {
			merged[k] = v
		}
		cfg.Credentials = merged
	}

	cfg.ID = kind
	return cfg, nil
}

// ValidateConfig verifica uma configuração resolvida contra os requisitos da
// plataforma, acumulando todos os problemas encontrados
func (f *Factory) ValidateConfig(kind domain.PlatformKind, cfg domain.PlatformConfig) ValidationResult {
	desc, ok := f.registry[kind]
	if !ok {
		return ValidationResult{Errors: []string{f.unknownKind(kind).Error()}}
	}

	var problems []string
	if cfg.Name == "" {
		problems = append(problems, "name é obrigatório")
	}
	if cfg.BaseURL == "" {
		problems = append(problems, "base_url é obrigatório")
	}
	for _, key := range desc.RequiredCredentials {
		if cfg.Credential(key) == "" {
			problems = append(problems, fmt.Sprintf("credencial %q é obrigatória para %s", key, kind))
		}
	}

	return ValidationResult{
		IsValid: len(problems) == 0,
		Errors:  problems,
	}
}

// CreateTrackingPlatform resolve, valida e constrói o adaptador de uma
// plataforma. Problemas de validação viram um único erro agregado.
func (f *Factory) CreateTrackingPlatform(kind domain.PlatformKind, overrides domain.PlatformConfig) (platform.TrackingPlatform, error) {
	cfg, err := f.Resolve(kind, overrides)
	if err != nil {
		return nil, err
	}

	if result := f.ValidateConfig(kind, cfg); !result.IsValid {
		return nil, &platform.Error{
			Code:    platform.CodeValidation,
			Message: fmt.Sprintf("configuração inválida para a plataforma %s", kind),
			Details: result.Errors,
		}
	}

	desc := f.registry[kind]
	if cfg.RateLimit.MaxRequests > 0 && cfg.RateLimit.WindowSeconds > 0 {
		perSecond := float64(cfg.RateLimit.MaxRequests) / float64(cfg.RateLimit.WindowSeconds)
		f.client.SetRateLimit(kind, perSecond, cfg.RateLimit.MaxRequests)
	}

	adapter, err := desc.Build(cfg, f.client)
	if err != nil {
		return nil, errors.Wrapf(err, "construindo adaptador %s", kind)
	}
	return adapter, nil
}

func (f *Factory) unknownKind(kind domain.PlatformKind) *platform.Error {
	switch kind {
	case domain.PlatformLinkedIn, domain.PlatformPinterest, domain.PlatformSnapchat, domain.PlatformWhatsApp:
		return &platform.Error{
			Code:    platform.CodePlatformNotFound,
			Message: fmt.Sprintf("a plataforma %s é conhecida mas ainda não tem adaptador implementado", kind),
		}
	default:
		return &platform.Error{
			Code:    platform.CodePlatformNotFound,
			Message: fmt.Sprintf("plataforma desconhecida: %s", kind),
		}
	}
}
