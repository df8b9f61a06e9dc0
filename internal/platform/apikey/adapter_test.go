package apikey

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
	"github.com/Gabryellzs/blecks-david-sub000/internal/platform"
)

func newTestAdapter(t *testing.T, baseURL string, profile Profile) *Adapter {
	t.Helper()

	adapter, err := New(domain.PlatformConfig{
		ID:      domain.PlatformTikTok,
		Name:    "TikTok Ads",
		Enabled: domain.Bool(true),
		BaseURL: baseURL,
		Credentials: map[string]string{
			CredAPIKey:      "key_123",
			"advertiser_id": "adv_1",
		},
		DefaultAccountID: "adv_1",
	}, platform.NewClient(0), profile)
	require.NoError(t, err)

	return adapter.(*Adapter)
}

func windowParams() domain.QueryParams {
	end := time.Now()
	return domain.QueryParams{
		StartDate: end.AddDate(0, 0, -7),
		EndDate:   end,
	}
}

func TestAdapter_Authenticate(t *testing.T) {
	t.Run("Embrulha a chave como bearer com validade fixa", func(t *testing.T) {
		adapter := newTestAdapter(t, "http://vendor.local", TikTokProfile())

		err := adapter.Authenticate(context.Background())

		require.NoError(t, err)
		auth := adapter.Auth()
		require.NotNil(t, auth)
		assert.Equal(t, "key_123", auth.AccessToken)
		assert.Equal(t, "bearer", auth.TokenType)
		assert.WithinDuration(t, time.Now().Add(24*time.Hour), auth.ExpiresAt, time.Minute)
	})

	t.Run("Sem api_key - AUTH_ERROR", func(t *testing.T) {
		adapter, err := New(domain.PlatformConfig{
			ID: domain.PlatformKwai,
		}, platform.NewClient(0), KwaiProfile())
		require.NoError(t, err)

		err = adapter.Authenticate(context.Background())

		require.Error(t, err)
		assert.Equal(t, platform.CodeAuth, platform.Normalize(err).Code)
	})
}

func TestAdapter_RefreshAuth(t *testing.T) {
	adapter := newTestAdapter(t, "http://vendor.local", TikTokProfile())

	err := adapter.RefreshAuth(context.Background())

	// Chave estática: renovação é um estado terminal deliberado
	require.Error(t, err)
	perr := platform.Normalize(err)
	assert.Equal(t, platform.CodeAuth, perr.Code)
	assert.Contains(t, perr.Message, "manualmente")
}

func TestAdapter_GetCampaigns(t *testing.T) {
	t.Run("Sem janela de datas - VALIDATION_ERROR sem chamar o fornecedor", func(t *testing.T) {
		adapter := newTestAdapter(t, "http://vendor.local", TikTokProfile())

		env := adapter.GetCampaigns(context.Background(), domain.QueryParams{})

		assert.False(t, env.Success)
		require.NotNil(t, env.Error)
		assert.Equal(t, platform.CodeValidation, env.Error.Code)
		assert.ElementsMatch(t, []string{"start_date", "end_date"}, env.Error.Details)
	})

	t.Run("Resposta do fornecedor é mapeada para o modelo canônico", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/open_api/v1.3/campaign/get/", r.URL.Path)
			assert.Equal(t, "adv_1", r.URL.Query().Get("advertiser_id"))
			assert.Equal(t, "Bearer key_123", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"code": 0,
				"message": "OK",
				"data": {
					"list": [
						{
							"campaign_id": 1700000001,
							"campaign_name": "Campanha de verão",
							"operation_status": "ENABLE",
							"objective_type": "TRAFFIC",
							"spend": "100.50",
							"impressions": "1000",
							"clicks": 50,
							"reach": "500"
						},
						{
							"campaign_id": 1700000002,
							"campaign_name": "Campanha pausada",
							"operation_status": "DISABLE"
						}
					]
				}
			}`))
		}))
		defer server.Close()

		adapter := newTestAdapter(t, server.URL, TikTokProfile())

		env := adapter.GetCampaigns(context.Background(), windowParams())

		require.True(t, env.Success, "esperava sucesso, obteve: %+v", env.Error)
		require.Len(t, env.Data, 2)

		first := env.Data[0]
		assert.Equal(t, "1700000001", first.ID)
		assert.Equal(t, "Campanha de verão", first.Name)
		assert.Equal(t, domain.StatusActive, first.Status)
		assert.Equal(t, "TRAFFIC", first.Objective)
		assert.Equal(t, domain.PlatformTikTok, first.Platform)
		assert.InDelta(t, 100.50, first.Spend, 0.0001)
		assert.Equal(t, int64(1000), first.Impressions)
		assert.Equal(t, int64(50), first.Clicks)
		assert.InDelta(t, 5.0, first.CTR, 0.0001)
		assert.NotEmpty(t, first.Raw)

		second := env.Data[1]
		assert.Equal(t, domain.StatusPaused, second.Status)
	})

	t.Run("Status desconhecido do fornecedor cai para PENDING", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code":0,"message":"OK","data":{"list":[{"campaign_id":"c1","campaign_name":"X","operation_status":"ALGO_NOVO"}]}}`))
		}))
		defer server.Close()

		adapter := newTestAdapter(t, server.URL, TikTokProfile())

		env := adapter.GetCampaigns(context.Background(), windowParams())

		require.True(t, env.Success)
		require.Len(t, env.Data, 1)
		assert.Equal(t, domain.StatusPending, env.Data[0].Status)
	})

	t.Run("Código de negócio não-zero - API_ERROR com a mensagem do fornecedor", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code":40105,"message":"Invalid access token","data":{}}`))
		}))
		defer server.Close()

		adapter := newTestAdapter(t, server.URL, TikTokProfile())

		env := adapter.GetCampaigns(context.Background(), windowParams())

		assert.False(t, env.Success)
		require.NotNil(t, env.Error)
		assert.Equal(t, platform.CodeAPI, env.Error.Code)
		assert.Equal(t, "Invalid access token", env.Error.Message)
	})

	t.Run("Resposta HTTP não-2xx - API_ERROR com status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("bad gateway"))
		}))
		defer server.Close()

		adapter := newTestAdapter(t, server.URL, TikTokProfile())

		env := adapter.GetCampaigns(context.Background(), windowParams())

		assert.False(t, env.Success)
		require.NotNil(t, env.Error)
		assert.Equal(t, platform.CodeAPI, env.Error.Code)
	})
}

func TestAdapter_GetMetrics(t *testing.T) {
	t.Run("Agrega as linhas do relatório em um único registro de métricas", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/open_api/v1.3/report/integrated/get/", r.URL.Path)
			assert.NotEmpty(t, r.URL.Query().Get("start_date"))
			assert.NotEmpty(t, r.URL.Query().Get("end_date"))

			w.Write([]byte(`{
				"code": 0,
				"message": "OK",
				"data": {
					"list": [
						{"spend": "100", "impressions": "1000", "clicks": "40", "reach": "500", "conversions": "5"},
						{"spend": "200", "impressions": "3000", "clicks": "160", "reach": "1500", "conversions": "15"}
					]
				}
			}`))
		}))
		defer server.Close()

		adapter := newTestAdapter(t, server.URL, TikTokProfile())

		env := adapter.GetMetrics(context.Background(), windowParams())

		require.True(t, env.Success)
		require.Len(t, env.Data, 1)
		m := env.Data[0]
		assert.Equal(t, domain.PlatformTikTok, m.Platform)
		assert.Equal(t, 300.0, m.TotalSpend)
		assert.Equal(t, int64(4000), m.TotalImpressions)
		assert.Equal(t, int64(200), m.TotalClicks)
		assert.Equal(t, int64(20), m.TotalLeads)
		assert.InDelta(t, 5.0, m.CTR, 0.0001)
		assert.InDelta(t, 1.5, m.CPC, 0.0001)
	})

	t.Run("Sem janela de datas - VALIDATION_ERROR", func(t *testing.T) {
		adapter := newTestAdapter(t, "http://vendor.local", TikTokProfile())

		env := adapter.GetMetrics(context.Background(), domain.QueryParams{})

		assert.False(t, env.Success)
		assert.Equal(t, platform.CodeValidation, env.Error.Code)
	})
}

func TestAdapter_GetLeads(t *testing.T) {
	adapter := newTestAdapter(t, "http://vendor.local", TikTokProfile())

	env := adapter.GetLeads(context.Background(), domain.QueryParams{})

	// A família não expõe leads: vazio com sucesso, não falha
	assert.True(t, env.Success)
	assert.NotNil(t, env.Data)
	assert.Empty(t, env.Data)
}

func TestAdapter_GetCampaignByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":0,"message":"OK","data":{"list":[
			{"campaign_id":"c1","campaign_name":"Primeira","operation_status":"ENABLE"},
			{"campaign_id":"c2","campaign_name":"Segunda","operation_status":"DISABLE"}
		]}}`))
	}))
	defer server.Close()

	adapter := newTestAdapter(t, server.URL, TikTokProfile())

	t.Run("Encontra a campanha pelo id", func(t *testing.T) {
		campaign, found := adapter.GetCampaignByID(context.Background(), "c2", domain.QueryParams{})

		require.True(t, found)
		assert.Equal(t, "Segunda", campaign.Name)
		assert.Equal(t, domain.StatusPaused, campaign.Status)
	})

	t.Run("Id inexistente retorna ausência, não erro", func(t *testing.T) {
		_, found := adapter.GetCampaignByID(context.Background(), "c99", domain.QueryParams{})
		assert.False(t, found)
	})
}

func TestAdapter_GetAccounts(t *testing.T) {
	t.Run("Conta padrão configurada vira a única conta descoberta", func(t *testing.T) {
		adapter := newTestAdapter(t, "http://vendor.local", KwaiProfile())

		env := adapter.GetAccounts(context.Background())

		require.True(t, env.Success)
		require.Len(t, env.Data, 1)
		assert.Equal(t, "adv_1", env.Data[0].ID)
	})

	t.Run("Sem conta padrão - CONFIG_ERROR", func(t *testing.T) {
		adapter, err := New(domain.PlatformConfig{
			ID:          domain.PlatformKwai,
			Credentials: map[string]string{CredAPIKey: "k"},
		}, platform.NewClient(0), KwaiProfile())
		require.NoError(t, err)

		env := adapter.GetAccounts(context.Background())

		assert.False(t, env.Success)
		assert.Equal(t, platform.CodeConfig, env.Error.Code)
	})
}

func TestAdapter_SyncData(t *testing.T) {
	t.Run("Conta campanhas e anúncios processados", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/open_api/v1.3/campaign/get/":
				w.Write([]byte(`{"code":0,"message":"OK","data":{"list":[
					{"campaign_id":"c1","campaign_name":"A","operation_status":"ENABLE"},
					{"campaign_id":"c2","campaign_name":"B","operation_status":"ENABLE"}
				]}}`))
			case "/open_api/v1.3/ad/get/":
				w.Write([]byte(`{"code":0,"message":"OK","data":{"list":[
					{"ad_id":"a1","ad_name":"Anúncio","campaign_id":"c1","operation_status":"ENABLE"}
				]}}`))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		adapter := newTestAdapter(t, server.URL, TikTokProfile())

		status := adapter.SyncData(context.Background(), windowParams())

		assert.Equal(t, domain.SyncSuccess, status.Status)
		assert.Equal(t, 3, status.RecordsProcessed)
		assert.Equal(t, domain.PlatformTikTok, status.Platform)
	})

	t.Run("Falha do fornecedor vira status de erro", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code":500,"message":"internal error","data":{}}`))
		}))
		defer server.Close()

		adapter := newTestAdapter(t, server.URL, TikTokProfile())

		status := adapter.SyncData(context.Background(), windowParams())

		assert.Equal(t, domain.SyncError, status.Status)
		assert.NotEmpty(t, status.Error)
	})
}
