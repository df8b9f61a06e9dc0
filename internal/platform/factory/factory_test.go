package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
	"github.com/Gabryellzs/blecks-david-sub000/internal/platform"
)

func TestFactory_Kinds(t *testing.T) {
	f := NewFactory(nil)

	kinds := f.Kinds()

	assert.Equal(t, []domain.PlatformKind{
		domain.PlatformGA4,
		domain.PlatformGoogleAds,
		domain.PlatformGoogleAnalytics,
		domain.PlatformKwai,
		domain.PlatformMeta,
		domain.PlatformTikTok,
	}, kinds)
}

func TestFactory_Resolve(t *testing.T) {
	f := NewFactory(nil)

	t.Run("Overrides sobrepõem os defaults sem apagar o restante", func(t *testing.T) {
		cfg, err := f.Resolve(domain.PlatformMeta, domain.PlatformConfig{
			Enabled: domain.Bool(true),
			BaseURL: "https://graph.facebook.com/v20.0",
			Credentials: map[string]string{
				"access_token": "tok_123",
			},
		})

		require.NoError(t, err)
		assert.Equal(t, domain.PlatformMeta, cfg.ID)
		assert.Equal(t, "Meta Ads", cfg.Name)
		assert.Equal(t, "https://graph.facebook.com/v20.0", cfg.BaseURL)
		assert.Equal(t, "tok_123", cfg.Credential("access_token"))
		assert.True(t, cfg.IsEnabled())
	})

	t.Run("Overrides vazios preservam o enabled dos defaults", func(t *testing.T) {
		cfg, err := f.Resolve(domain.PlatformMeta, domain.PlatformConfig{})

		require.NoError(t, err)
		assert.True(t, cfg.IsEnabled())
	})

	t.Run("Enabled explícito em falso é respeitado", func(t *testing.T) {
		cfg, err := f.Resolve(domain.PlatformMeta, domain.PlatformConfig{Enabled: domain.Bool(false)})

		require.NoError(t, err)
		assert.False(t, cfg.IsEnabled())
	})

	t.Run("ID não pode ser trocado via overrides", func(t *testing.T) {
		cfg, err := f.Resolve(domain.PlatformTikTok, domain.PlatformConfig{
			ID: domain.PlatformMeta,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.PlatformTikTok, cfg.ID)
	})

	t.Run("GA4 compartilha o adaptador de analytics mas mantém identidade própria", func(t *testing.T) {
		cfg, err := f.Resolve(domain.PlatformGA4, domain.PlatformConfig{Enabled: domain.Bool(true)})

		require.NoError(t, err)
		assert.Equal(t, domain.PlatformGA4, cfg.ID)
		assert.Equal(t, "Google Analytics 4", cfg.Name)
		assert.Equal(t, "https://analyticsdata.googleapis.com/v1beta", cfg.BaseURL)
	})

	t.Run("Plataforma desconhecida - PLATFORM_NOT_FOUND", func(t *testing.T) {
		_, err := f.Resolve(domain.PlatformKind("orkut"), domain.PlatformConfig{})

		require.Error(t, err)
		assert.Equal(t, platform.CodePlatformNotFound, platform.Normalize(err).Code)
	})

	t.Run("Plataforma conhecida sem adaptador - mensagem distingue do desconhecido", func(t *testing.T) {
		_, err := f.Resolve(domain.PlatformLinkedIn, domain.PlatformConfig{})

		require.Error(t, err)
		perr := platform.Normalize(err)
		assert.Equal(t, platform.CodePlatformNotFound, perr.Code)
		assert.Contains(t, perr.Message, "ainda não tem adaptador")
	})
}

func TestFactory_ValidateConfig(t *testing.T) {
	f := NewFactory(nil)

	tests := []struct {
		name       string
		kind       domain.PlatformKind
		cfg        domain.PlatformConfig
		wantValid  bool
		wantErrors int
	}{
		{
			name: "Configuração completa é válida",
			kind: domain.PlatformMeta,
			cfg: domain.PlatformConfig{
				Name:    "Meta Ads",
				BaseURL: "https://graph.facebook.com/v19.0",
				Credentials: map[string]string{
					"access_token": "tok",
				},
			},
			wantValid: true,
		},
		{
			name:       "Configuração vazia acumula todos os problemas de uma vez",
			kind:       domain.PlatformGoogleAds,
			cfg:        domain.PlatformConfig{},
			wantValid:  false,
			wantErrors: 6, // name, base_url e 4 credenciais
		},
		{
			name: "Credencial ausente aparece nominalmente",
			kind: domain.PlatformTikTok,
			cfg: domain.PlatformConfig{
				Name:    "TikTok Ads",
				BaseURL: "https://business-api.tiktok.com",
			},
			wantValid:  false,
			wantErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := f.ValidateConfig(tt.kind, tt.cfg)

			assert.Equal(t, tt.wantValid, result.IsValid)
			assert.Len(t, result.Errors, tt.wantErrors)
		})
	}
}

func TestFactory_CreateTrackingPlatform(t *testing.T) {
	f := NewFactory(platform.NewClient(0))

	t.Run("Cria o adaptador com defaults resolvidos e credenciais do chamador", func(t *testing.T) {
		adapter, err := f.CreateTrackingPlatform(domain.PlatformTikTok, domain.PlatformConfig{
			Enabled: domain.Bool(true),
			Credentials: map[string]string{
				"api_key":       "key_123",
				"advertiser_id": "adv_1",
			},
		})

		require.NoError(t, err)
		assert.Equal(t, domain.PlatformTikTok, adapter.Kind())
		assert.Equal(t, "https://business-api.tiktok.com", adapter.Config().BaseURL)
	})

	t.Run("Credenciais ausentes viram um único erro agregado de validação", func(t *testing.T) {
		_, err := f.CreateTrackingPlatform(domain.PlatformGoogleAds, domain.PlatformConfig{Enabled: domain.Bool(true)})

		require.Error(t, err)
		perr := platform.Normalize(err)
		assert.Equal(t, platform.CodeValidation, perr.Code)
		assert.Len(t, perr.Details, 4)
	})

	t.Run("Plataforma desconhecida propaga PLATFORM_NOT_FOUND", func(t *testing.T) {
		_, err := f.CreateTrackingPlatform(domain.PlatformKind("myspace"), domain.PlatformConfig{})

		require.Error(t, err)
		assert.Equal(t, platform.CodePlatformNotFound, platform.Normalize(err).Code)
	})
}
