package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
	"github.com/Gabryellzs/blecks-david-sub000/internal/platform"
	"github.com/Gabryellzs/blecks-david-sub000/internal/platform/factory"
	"github.com/Gabryellzs/blecks-david-sub000/internal/usecases/tracking"
)

// stubTracker implementa apenas o que cada teste exercita; chamadas não
// previstas estouram pelo Tracker embutido nulo
type stubTracker struct {
	tracking.Tracker

	campaignsEnv domain.ResponseEnvelope[domain.CampaignData]
	adsEnv       domain.ResponseEnvelope[domain.AdData]
	leadsEnv     domain.ResponseEnvelope[domain.LeadData]
	metricsEnv   domain.ResponseEnvelope[domain.TrackingMetrics]
	platforms    []domain.PlatformConfig
	addErr       error
	lastParams   domain.QueryParams
	lastKind     domain.PlatformKind
}

func (s *stubTracker) GetAllCampaigns(ctx context.Context, params domain.QueryParams) domain.ResponseEnvelope[domain.CampaignData] {
	s.lastParams = params
	return s.campaignsEnv
}

func (s *stubTracker) GetAllMetrics(ctx context.Context, params domain.QueryParams) domain.ResponseEnvelope[domain.TrackingMetrics] {
	s.lastParams = params
	return s.metricsEnv
}

func (s *stubTracker) GetPlatformAds(ctx context.Context, kind domain.PlatformKind, params domain.QueryParams) domain.ResponseEnvelope[domain.AdData] {
	s.lastKind = kind
	s.lastParams = params
	return s.adsEnv
}

func (s *stubTracker) GetPlatformLeads(ctx context.Context, kind domain.PlatformKind, params domain.QueryParams) domain.ResponseEnvelope[domain.LeadData] {
	s.lastKind = kind
	s.lastParams = params
	return s.leadsEnv
}

func (s *stubTracker) Platforms() []domain.PlatformConfig {
	return s.platforms
}

func (s *stubTracker) AddPlatform(ctx context.Context, kind domain.PlatformKind, overrides domain.PlatformConfig) error {
	return s.addErr
}

func (s *stubTracker) ValidateConfig(kind domain.PlatformKind, overrides domain.PlatformConfig) factory.ValidationResult {
	return factory.ValidationResult{IsValid: true}
}

func TestGetAllCampaigns(t *testing.T) {
	t.Run("Sucesso - envelope serializado com status 200", func(t *testing.T) {
		service := &stubTracker{
			campaignsEnv: platform.Success(domain.PlatformMeta, []domain.CampaignData{
				{ID: "c1", Name: "Campanha"},
			}, nil),
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/tracking/campaigns?start_date=2026-08-01&end_date=2026-08-31", nil)
		recorder := httptest.NewRecorder()

		GetAllCampaigns(service).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var env domain.ResponseEnvelope[domain.CampaignData]
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&env))
		assert.True(t, env.Success)
		require.Len(t, env.Data, 1)
		assert.Equal(t, "c1", env.Data[0].ID)

		// Janela repassada ao serviço
		assert.Equal(t, "2026-08-01", service.lastParams.StartDate.Format("2006-01-02"))
		assert.Equal(t, "2026-08-31", service.lastParams.EndDate.Format("2006-01-02"))
	})

	t.Run("Falha agregada - status HTTP derivado do código e dados parciais no corpo", func(t *testing.T) {
		service := &stubTracker{
			campaignsEnv: domain.ResponseEnvelope[domain.CampaignData]{
				Success: false,
				Data:    []domain.CampaignData{{ID: "c_meta"}},
				Error: &domain.ResponseError{
					Code:    platform.CodeAggregate,
					Message: "1 plataforma(s) falharam durante a agregação",
					Details: []string{"kwai: chave rejeitada"},
				},
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/tracking/campaigns", nil)
		recorder := httptest.NewRecorder()

		GetAllCampaigns(service).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadGateway, recorder.Code)

		var env domain.ResponseEnvelope[domain.CampaignData]
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&env))
		assert.False(t, env.Success)
		require.Len(t, env.Data, 1)
		require.NotNil(t, env.Error)
		assert.Equal(t, []string{"kwai: chave rejeitada"}, env.Error.Details)
	})

	t.Run("Data inválida - 400 sem chamar o serviço", func(t *testing.T) {
		service := &stubTracker{}

		req := httptest.NewRequest(http.MethodGet, "/v1/tracking/campaigns?start_date=31-08-2026", nil)
		recorder := httptest.NewRecorder()

		GetAllCampaigns(service).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestGetPlatformAdsAndLeads(t *testing.T) {
	withPlatformID := func(req *http.Request, id string) *http.Request {
		params := httprouter.Params{{Key: "id", Value: id}}
		return req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, params))
	}

	t.Run("Anúncios de uma plataforma - envelope serializado com status 200", func(t *testing.T) {
		service := &stubTracker{
			adsEnv: platform.Success(domain.PlatformMeta, []domain.AdData{{ID: "a1"}}, nil),
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/tracking/platforms/meta/ads?start_date=2026-08-01&end_date=2026-08-31", nil)
		req = withPlatformID(req, "meta")
		recorder := httptest.NewRecorder()

		GetPlatformAds(service).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, domain.PlatformMeta, service.lastKind)

		var env domain.ResponseEnvelope[domain.AdData]
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&env))
		assert.True(t, env.Success)
		require.Len(t, env.Data, 1)
	})

	t.Run("Leads de plataforma não registrada - status 404", func(t *testing.T) {
		service := &stubTracker{
			leadsEnv: platform.Failure[domain.LeadData](domain.PlatformKwai, &platform.Error{
				Code:    platform.CodePlatformNotFound,
				Message: "plataforma kwai não está registrada",
			}),
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/tracking/platforms/kwai/leads?start_date=2026-08-01&end_date=2026-08-31", nil)
		req = withPlatformID(req, "kwai")
		recorder := httptest.NewRecorder()

		GetPlatformLeads(service).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestGetAllMetrics(t *testing.T) {
	service := &stubTracker{
		metricsEnv: platform.Success(tracking.PlatformAll, []domain.TrackingMetrics{
			{TotalSpend: 400, Platform: tracking.PlatformAll},
		}, nil),
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/tracking/metrics?start_date=2026-08-01&end_date=2026-08-31", nil)
	recorder := httptest.NewRecorder()

	GetAllMetrics(service).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var env domain.ResponseEnvelope[domain.TrackingMetrics]
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&env))
	require.Len(t, env.Data, 1)
	assert.Equal(t, tracking.PlatformAll, env.Data[0].Platform)
	assert.Equal(t, 400.0, env.Data[0].TotalSpend)
}

func TestListPlatforms(t *testing.T) {
	service := &stubTracker{
		platforms: []domain.PlatformConfig{
			{
				ID:   domain.PlatformMeta,
				Name: "Meta Ads",
				Credentials: map[string]string{
					"access_token": "segredo-super-sensível",
					"client_id":    "",
				},
			},
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/platforms", nil)
	recorder := httptest.NewRecorder()

	ListPlatforms(service).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "segredo-super-sensível")

	var configs []domain.PlatformConfig
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&configs))
	require.Len(t, configs, 1)
	// Valores mascarados, chaves preservadas
	assert.Equal(t, "********", configs[0].Credentials["access_token"])
	assert.Equal(t, "", configs[0].Credentials["client_id"])
}

func TestAddPlatform(t *testing.T) {
	t.Run("Registro com sucesso - 201", func(t *testing.T) {
		service := &stubTracker{}

		body := `{"kind":"tiktok","config":{"enabled":true,"credentials":{"api_key":"k"}}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/platforms", strings.NewReader(body))
		recorder := httptest.NewRecorder()

		AddPlatform(service).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("Kind ausente - 400", func(t *testing.T) {
		service := &stubTracker{}

		req := httptest.NewRequest(http.MethodPost, "/v1/platforms", strings.NewReader(`{"config":{}}`))
		recorder := httptest.NewRecorder()

		AddPlatform(service).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Erro de validação do serviço vira o status do código do contrato", func(t *testing.T) {
		service := &stubTracker{
			addErr: &platform.Error{
				Code:    platform.CodeValidation,
				Message: "configuração inválida para a plataforma google_ads",
				Details: []string{`credencial "client_id" é obrigatória para google_ads`},
			},
		}

		body := `{"kind":"google_ads","config":{"enabled":true}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/platforms", strings.NewReader(body))
		recorder := httptest.NewRecorder()

		AddPlatform(service).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Plataforma desconhecida - 404", func(t *testing.T) {
		service := &stubTracker{
			addErr: &platform.Error{
				Code:    platform.CodePlatformNotFound,
				Message: "plataforma desconhecida: orkut",
			},
		}

		body := `{"kind":"orkut","config":{}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/platforms", strings.NewReader(body))
		recorder := httptest.NewRecorder()

		AddPlatform(service).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("Corpo inválido - 400", func(t *testing.T) {
		service := &stubTracker{}

		req := httptest.NewRequest(http.MethodPost, "/v1/platforms", strings.NewReader("{nao-e-json"))
		recorder := httptest.NewRecorder()

		AddPlatform(service).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
