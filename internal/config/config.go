package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Meta         Meta         `mapstructure:",squash"`
	GoogleAds    GoogleAds    `mapstructure:",squash"`
	Analytics    Analytics    `mapstructure:",squash"`
	TikTok       TikTok       `mapstructure:",squash"`
	Kwai         Kwai         `mapstructure:",squash"`
	TrackingSync TrackingSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	SecretKey         string        `mapstructure:"secret_key"`
	AdminEmail        string        `mapstructure:"auth_admin_email"`
	AdminPasswordHash string        `mapstructure:"auth_admin_password_hash"`
	TokenTTL          time.Duration `mapstructure:"auth_token_ttl"`
}

type Meta struct {
	Enabled     bool   `mapstructure:"meta_enabled"`
	BaseURL     string `mapstructure:"meta_base_url"`
	AccessToken string `mapstructure:"meta_access_token"`
	AppID       string `mapstructure:"meta_app_id"`
	AppSecret   string `mapstructure:"meta_app_secret"`
	AdAccountID string `mapstructure:"meta_ad_account_id"`
}

type GoogleAds struct {
	Enabled        bool   `mapstructure:"google_ads_enabled"`
	ClientID       string `mapstructure:"google_ads_client_id"`
	ClientSecret   string `mapstructure:"google_ads_client_secret"`
	DeveloperToken string `mapstructure:"google_ads_developer_token"`
	RefreshToken   string `mapstructure:"google_ads_refresh_token"`
	CustomerID     string `mapstructure:"google_ads_customer_id"`
}

type Analytics struct {
	Enabled      bool   `mapstructure:"analytics_enabled"`
	ClientID     string `mapstructure:"analytics_client_id"`
	ClientSecret string `mapstructure:"analytics_client_secret"`
	RefreshToken string `mapstructure:"analytics_refresh_token"`
	PropertyID   string `mapstructure:"analytics_property_id"`
	UseGA4       bool   `mapstructure:"analytics_use_ga4"`
}

type TikTok struct {
	Enabled      bool   `mapstructure:"tiktok_enabled"`
	APIKey       string `mapstructure:"tiktok_api_key"`
	AdvertiserID string `mapstructure:"tiktok_advertiser_id"`
}

type Kwai struct {
	Enabled   bool   `mapstructure:"kwai_enabled"`
	APIKey    string `mapstructure:"kwai_api_key"`
	AccountID string `mapstructure:"kwai_account_id"`
}

type TrackingSync struct {
	CronSchedule string `mapstructure:"tracking_sync_cron"`
	LookbackDays int    `mapstructure:"tracking_sync_lookback_days"`
	Enabled      bool   `mapstructure:"tracking_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/tracking")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_ADMIN_EMAIL", "")
	viper.SetDefault("AUTH_ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("META_ENABLED", false)
	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com/v19.0")
	viper.SetDefault("META_ACCESS_TOKEN", "")
	viper.SetDefault("META_APP_ID", "")
	viper.SetDefault("META_APP_SECRET", "")
	viper.SetDefault("META_AD_ACCOUNT_ID", "")

	viper.SetDefault("GOOGLE_ADS_ENABLED", false)
	viper.SetDefault("GOOGLE_ADS_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_REFRESH_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_CUSTOMER_ID", "")

	viper.SetDefault("ANALYTICS_ENABLED", false)
	viper.SetDefault("ANALYTICS_CLIENT_ID", "")
	viper.SetDefault("ANALYTICS_CLIENT_SECRET", "")
	viper.SetDefault("ANALYTICS_REFRESH_TOKEN", "")
	viper.SetDefault("ANALYTICS_PROPERTY_ID", "")
	viper.SetDefault("ANALYTICS_USE_GA4", true)

	viper.SetDefault("TIKTOK_ENABLED", false)
	viper.SetDefault("TIKTOK_API_KEY", "")
	viper.SetDefault("TIKTOK_ADVERTISER_ID", "")

	viper.SetDefault("KWAI_ENABLED", false)
	viper.SetDefault("KWAI_API_KEY", "")
	viper.SetDefault("KWAI_ACCOUNT_ID", "")

	// Defaults para sincronização periódica de plataformas
	viper.SetDefault("TRACKING_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("TRACKING_SYNC_LOOKBACK_DAYS", 7)  // 7 dias para buscar dados
	viper.SetDefault("TRACKING_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// PlatformSeed é uma plataforma habilitada na configuração, pronta para ser
// registrada no serviço de rastreamento
type PlatformSeed struct {
	Kind      domain.PlatformKind
	Overrides domain.PlatformConfig
}

// PlatformSeeds traduz os blocos de configuração em overrides de plataforma.
// Apenas plataformas habilitadas entram na lista.
func (c *Config) PlatformSeeds() []PlatformSeed {
	var seeds []PlatformSeed

	if c.Meta.Enabled {
		seeds = append(seeds, PlatformSeed{
			Kind: domain.PlatformMeta,
			Overrides: domain.PlatformConfig{
				Enabled: domain.Bool(true),
				BaseURL: c.Meta.BaseURL,
				Credentials: map[string]string{
					"access_token":  c.Meta.AccessToken,
					"client_id":     c.Meta.AppID,
					"client_secret": c.Meta.AppSecret,
				},
				DefaultAccountID: c.Meta.AdAccountID,
			},
		})
	}

	if c.GoogleAds.Enabled {
		seeds = append(seeds, PlatformSeed{
			Kind: domain.PlatformGoogleAds,
			Overrides: domain.PlatformConfig{
				Enabled: domain.Bool(true),
				Credentials: map[string]string{
					"client_id":       c.GoogleAds.ClientID,
					"client_secret":   c.GoogleAds.ClientSecret,
					"developer_token": c.GoogleAds.DeveloperToken,
					"refresh_token":   c.GoogleAds.RefreshToken,
				},
				DefaultAccountID: c.GoogleAds.CustomerID,
			},
		})
	}

	if c.Analytics.Enabled {
		kind := domain.PlatformGoogleAnalytics
		if c.Analytics.UseGA4 {
			kind = domain.PlatformGA4
		}
		seeds = append(seeds, PlatformSeed{
			Kind: kind,
			Overrides: domain.PlatformConfig{
				Enabled: domain.Bool(true),
				Credentials: map[string]string{
					"client_id":     c.Analytics.ClientID,
					"client_secret": c.Analytics.ClientSecret,
					"refresh_token": c.Analytics.RefreshToken,
					"property_id":   c.Analytics.PropertyID,
				},
				DefaultAccountID: c.Analytics.PropertyID,
			},
		})
	}

	if c.TikTok.Enabled {
		seeds = append(seeds, PlatformSeed{
			Kind: domain.PlatformTikTok,
			Overrides: domain.PlatformConfig{
				Enabled: domain.Bool(true),
				Credentials: map[string]string{
					"api_key": c.TikTok.APIKey,
				},
				DefaultAccountID: c.TikTok.AdvertiserID,
			},
		})
	}

	if c.Kwai.Enabled {
		seeds = append(seeds, PlatformSeed{
			Kind: domain.PlatformKwai,
			Overrides: domain.PlatformConfig{
				Enabled: domain.Bool(true),
				Credentials: map[string]string{
					"api_key": c.Kwai.APIKey,
				},
				DefaultAccountID: c.Kwai.AccountID,
			},
		})
	}

	return seeds
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
