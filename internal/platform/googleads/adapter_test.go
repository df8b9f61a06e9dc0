package googleads

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

func newTestAdapter(t *testing.T, baseURL string, extraCreds map[string]string) *Adapter {
	t.Helper()

	creds := map[string]string{
		CredClientID:       "cid_123",
		CredClientSecret:   "secret_123",
		CredDeveloperToken: "dev_tok_123",
		CredRefreshToken:   "refresh_123",
		CredAccessToken:    "access_123",
	}
	for k, v := range extraCreds {
		creds[k] = v
	}

	adapter, err := New(domain.PlatformConfig{
		ID:               domain.PlatformGoogleAds,
		Name:             "Google Ads",
		Enabled:          domain.Bool(true),
		BaseURL:          baseURL,
		Credentials:      creds,
		DefaultAccountID: "1234567890",
	}, platform.NewClient(0))
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

func TestAdapter_GetCampaigns(t *testing.T) {
	t.Run("Toda chamada carrega developer-token e bearer", func(t *testing.T) {
		var gotDeveloperToken, gotAuthorization, gotLoginCustomerID string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotDeveloperToken = r.Header.Get("developer-token")
			gotAuthorization = r.Header.Get("Authorization")
			gotLoginCustomerID = r.Header.Get("login-customer-id")

			assert.Equal(t, "/customers/1234567890/googleAds:search", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"results": [
					{"campaign": {"id": "c1", "name": "Campanha de busca", "status": "ENABLED"}},
					{"campaign": {"id": "c2", "name": "Campanha pausada", "status": "PAUSED"}}
				]
			}`))
		}))
		defer server.Close()

		adapter := newTestAdapter(t, server.URL, nil)
		require.NoError(t, adapter.Authenticate(context.Background()))

		env := adapter.GetCampaigns(context.Background(), windowParams())

		assert.True(t, env.Success)
		require.Len(t, env.Data, 2)
		assert.Equal(t, domain.StatusActive, env.Data[0].Status)
		assert.Equal(t, domain.StatusPaused, env.Data[1].Status)

		assert.Equal(t, "dev_tok_123", gotDeveloperToken)
		assert.Equal(t, "Bearer access_123", gotAuthorization)
		assert.Empty(t, gotLoginCustomerID)
	})

	t.Run("login-customer-id é enviado quando configurado", func(t *testing.T) {
		var gotLoginCustomerID string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotLoginCustomerID = r.Header.Get("login-customer-id")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"results": []}`))
		}))
		defer server.Close()

		adapter := newTestAdapter(t, server.URL, map[string]string{"login_customer_id": "9876543210"})
		require.NoError(t, adapter.Authenticate(context.Background()))

		env := adapter.GetCampaigns(context.Background(), windowParams())

		assert.True(t, env.Success)
		assert.Equal(t, "9876543210", gotLoginCustomerID)
	})

	t.Run("Sem janela de datas - VALIDATION_ERROR sem chamar o fornecedor", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("o fornecedor não deveria ser chamado")
		}))
		defer server.Close()

		adapter := newTestAdapter(t, server.URL, nil)
		require.NoError(t, adapter.Authenticate(context.Background()))

		env := adapter.GetCampaigns(context.Background(), domain.QueryParams{})

		assert.False(t, env.Success)
		require.NotNil(t, env.Error)
		assert.Equal(t, platform.CodeValidation, env.Error.Code)
	})
}
