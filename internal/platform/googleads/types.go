package googleads

import (
	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
)

// Chaves de credencial exigidas pelo adaptador Google Ads
const (
	CredClientID       = "client_id"
	CredClientSecret   = "client_secret"
	CredDeveloperToken = "developer_token"
	CredRefreshToken   = "refresh_token"
	// CredAccessToken é opcional: quando presente, é adotado diretamente
	CredAccessToken = "access_token"
)

// statusTable traduz os status da API do Google Ads para o enum canônico,
// com PENDING para valores não mapeados
var statusTable = map[string]domain.RecordStatus{
	"ENABLED":     domain.StatusActive,
	"PAUSED":      domain.StatusPaused,
	"REMOVED":     domain.StatusDeleted,
	"UNKNOWN":     domain.StatusPending,
	"UNSPECIFIED": domain.StatusPending,
}

func mapStatus(vendor string) domain.RecordStatus {
	if st, ok := statusTable[vendor]; ok {
		return st
	}
	return domain.StatusPending
}

type searchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
	PageSize  int    `json:"pageSize,omitempty"`
}

type campaignResource struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	// AdvertisingChannelType faz as vezes de objetivo no Google Ads
	AdvertisingChannelType string `json:"advertisingChannelType,omitempty"`
}

type adGroupAdResource struct {
	Ad struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Type string `json:"type"`
	} `json:"ad"`
	Status string `json:"status"`
}

type metricsResource struct {
	CostMicros  string  `json:"costMicros,omitempty"`
	Impressions string  `json:"impressions,omitempty"`
	Clicks      string  `json:"clicks,omitempty"`
	Conversions float64 `json:"conversions,omitempty"`
}

type searchResult struct {
	Campaign  *campaignResource  `json:"campaign,omitempty"`
	AdGroupAd *adGroupAdResource `json:"adGroupAd,omitempty"`
	Metrics   *metricsResource   `json:"metrics,omitempty"`
}

type searchResponse struct {
	Results       []searchResult `json:"results"`
	NextPageToken string         `json:"nextPageToken,omitempty"`
}

type accessibleCustomersResponse struct {
	ResourceNames []string `json:"resourceNames"`
}
