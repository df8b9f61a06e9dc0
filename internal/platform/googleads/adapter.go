// Package googleads implementa o adaptador da família OAuth2 com refresh
// token de longa duração. A máquina de estados é
// Unauthenticated → Authenticated → Expired → Authenticated (via refresh).
package googleads

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
	"github.com/Gabryellzs/blecks-david-sub000/internal/platform"
)

type Adapter struct {
	*platform.Base
}

// New cria o adaptador Google Ads a partir da configuração da plataforma
func New(cfg domain.PlatformConfig, client *platform.Client) (platform.TrackingPlatform, error) {
	return &Adapter{
		Base: platform.NewBase(cfg, client, CredClientID, CredClientSecret, CredDeveloperToken, CredRefreshToken),
	}, nil
}

// Authenticate adota um access token fornecido diretamente ou, na ausência
// dele, dispara a troca do refresh token
func (a *Adapter) Authenticate(ctx context.Context) error {
	cfg := a.Config()

	if token := cfg.Credential(CredAccessToken); token != "" {
		a.SetAuth(&domain.PlatformAuth{
			AccessToken:  token,
			RefreshToken: cfg.Credential(CredRefreshToken),
			TokenType:    "bearer",
		})
		return nil
	}

	if cfg.Credential(CredRefreshToken) == "" {
		return platform.NewAuthError("google_ads exige um access token ou um refresh token nas credenciais")
	}

	return a.RefreshAuth(ctx)
}

// RefreshAuth troca o refresh token por um novo access token com expiração
// absoluta, preservando o refresh token original
func (a *Adapter) RefreshAuth(ctx context.Context) error {
	cfg := a.Config()

	refreshToken := cfg.Credential(CredRefreshToken)
	if current := a.Auth(); current != nil && current.RefreshToken != "" {
		refreshToken = current.RefreshToken
	}

	resp, err := platform.ExchangeRefreshToken(
		ctx,
		cfg.TokenURL,
		cfg.Credential(CredClientID),
		cfg.Credential(CredClientSecret),
		refreshToken,
	)
	if err != nil {
		return err
	}

	a.SetAuth(&domain.PlatformAuth{
		AccessToken:  resp.AccessToken,
		RefreshToken: refreshToken,
		TokenType:    resp.TokenType,
		ExpiresAt:    platform.ExpiryFromSeconds(resp.ExpiresIn),
	})

	logrus.WithField("platform", a.Kind()).Debug("google_ads: access token renovado via refresh token")

	return nil
}

// ValidateAuth faz uma chamada autenticada barata e engole qualquer erro
func (a *Adapter) ValidateAuth(ctx context.Context) bool {
	_, err := a.call(ctx, http.MethodGet, "/customers:listAccessibleCustomers", nil)
	return err == nil
}

func (a *Adapter) TestConnection(ctx context.Context) bool {
	return a.ValidateAuth(ctx)
}

// ensureAuth renova o token proativamente quando expirado
func (a *Adapter) ensureAuth(ctx context.Context) error {
	auth := a.Auth()
	if auth == nil || auth.AccessToken == "" {
		return a.Authenticate(ctx)
	}
	if auth.Expired() {
		return a.RefreshAuth(ctx)
	}
	return nil
}

// call envia a requisição carregando o developer-token exigido em toda
// chamada à API do Google Ads
func (a *Adapter) call(ctx context.Context, method, path string, body any) ([]byte, error) {
	cfg := a.Config()

	headers := http.Header{}
	headers.Set("developer-token", cfg.Credential("developer_token"))
	if loginCustomerID := cfg.Credential("login_customer_id"); loginCustomerID != "" {
		headers.Set("login-customer-id", loginCustomerID)
	}

	return a.Client().CallWithHeaders(ctx, a.Kind(), a.Auth(), cfg.BaseURL, method, path, nil, headers, body)
}

// search executa uma consulta GAQL no endpoint googleAds:search do cliente
func (a *Adapter) search(ctx context.Context, customerID, query, pageToken string, pageSize int) (*searchResponse, error) {
	if err := a.ensureAuth(ctx); err != nil {
		return nil, err
	}

	req := searchRequest{Query: query, PageToken: pageToken, PageSize: pageSize}
	body, err := a.call(ctx, http.MethodPost, "/customers/"+customerID+"/googleAds:search", req)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *Adapter) GetCampaigns(ctx context.Context, params domain.QueryParams) domain.ResponseEnvelope[domain.CampaignData] {
	customerID, err := a.ResolveAccountID(params)
	if err != nil {
		return platform.Failure[domain.CampaignData](a.Kind(), err)
	}
	if !params.HasWindow() {
		return platform.Failure[domain.CampaignData](a.Kind(), platform.NewValidationError("start_date", "end_date"))
	}

	query := fmt.Sprintf(
		`SELECT campaign.id, campaign.name, campaign.status, campaign.advertising_channel_type, campaign.start_date, campaign.end_date, metrics.cost_micros, metrics.impressions, metrics.clicks, metrics.conversions FROM campaign WHERE segments.date BETWEEN '%s' AND '%s'`,
		params.StartDate.Format(time.DateOnly),
		params.EndDate.Format(time.DateOnly),
	)

	resp, err := a.search(ctx, customerID, query, params.Cursor, params.PageSize)
	if err != nil {
		return platform.Failure[domain.CampaignData](a.Kind(), err)
	}

	campaigns := make([]domain.CampaignData, 0, len(resp.Results))
	for _, result := range resp.Results {
		if result.Campaign == nil {
			continue
		}
		campaigns = append(campaigns, a.mapCampaign(result))
	}

	return platform.Success(a.Kind(), campaigns, paginationFrom(resp.NextPageToken))
}

func (a *Adapter) mapCampaign(result searchResult) domain.CampaignData {
	raw, _ := json.Marshal(result)

	campaign := domain.CampaignData{
		ID:        result.Campaign.ID,
		Name:      result.Campaign.Name,
		Status:    mapStatus(result.Campaign.Status),
		Objective: result.Campaign.AdvertisingChannelType,
		StartDate: parseDate(result.Campaign.StartDate),
		EndDate:   parseDate(result.Campaign.EndDate),
		UpdatedAt: time.Now(),
		Platform:  a.Kind(),
		Raw:       raw,
	}

	if result.Metrics != nil {
		sample := sampleFrom(result.Metrics)
		campaign.Spend = sample.Spend
		campaign.Impressions = sample.Impressions
		campaign.Clicks = sample.Clicks

		derived := platform.Aggregate([]domain.MetricSample{sample})
		campaign.CTR = derived.CTR
		campaign.CPC = derived.CPC
		campaign.CPM = derived.CPM
	}

	return campaign
}

func (a *Adapter) GetAds(ctx context.Context, params domain.QueryParams) domain.ResponseEnvelope[domain.AdData] {
	customerID, err := a.ResolveAccountID(params)
	if err != nil {
		return platform.Failure[domain.AdData](a.Kind(), err)
	}
	if !params.HasWindow() {
		return platform.Failure[domain.AdData](a.Kind(), platform.NewValidationError("start_date", "end_date"))
	}

	query := fmt.Sprintf(
		`SELECT ad_group_ad.ad.id, ad_group_ad.ad.name, ad_group_ad.ad.type, ad_group_ad.status, campaign.id, metrics.cost_micros, metrics.impressions, metrics.clicks FROM ad_group_ad WHERE segments.date BETWEEN '%s' AND '%s'`,
		params.StartDate.Format(time.DateOnly),
		params.EndDate.Format(time.DateOnly),
	)
	if params.CampaignID != "" {
		query += " AND campaign.id = " + params.CampaignID
	}

	resp, err := a.search(ctx, customerID, query, params.Cursor, params.PageSize)
	if err != nil {
		return platform.Failure[domain.AdData](a.Kind(), err)
	}

	ads := make([]domain.AdData, 0, len(resp.Results))
	for _, result := range resp.Results {
		if result.AdGroupAd == nil {
			continue
		}

		raw, _ := json.Marshal(result)
		ad := domain.AdData{
			ID:        result.AdGroupAd.Ad.ID,
			Name:      result.AdGroupAd.Ad.Name,
			Type:      result.AdGroupAd.Ad.Type,
			Status:    mapStatus(result.AdGroupAd.Status),
			UpdatedAt: time.Now(),
			Platform:  a.Kind(),
			Raw:       raw,
		}
		if result.Campaign != nil {
			ad.CampaignID = result.Campaign.ID
		}
		if result.Metrics != nil {
			sample := sampleFrom(result.Metrics)
			ad.Spend = sample.Spend
			ad.Impressions = sample.Impressions
			ad.Clicks = sample.Clicks

			derived := platform.Aggregate([]domain.MetricSample{sample})
			ad.CTR = derived.CTR
			ad.CPC = derived.CPC
			ad.CPM = derived.CPM
		}

		ads = append(ads, ad)
	}

	return platform.Success(a.Kind(), ads, paginationFrom(resp.NextPageToken))
}

// GetLeads: o Google Ads não expõe um endpoint nativo de leads nesta camada;
// o resultado é vazio, não uma falha
func (a *Adapter) GetLeads(_ context.Context, _ domain.QueryParams) domain.ResponseEnvelope[domain.LeadData] {
	return platform.Success(a.Kind(), []domain.LeadData{}, nil)
}

func (a *Adapter) GetLeadByID(_ context.Context, _ string, _ domain.QueryParams) (domain.LeadData, bool) {
	return domain.LeadData{}, false
}

func (a *Adapter) GetMetrics(ctx context.Context, params domain.QueryParams) domain.ResponseEnvelope[domain.TrackingMetrics] {
	customerID, err := a.ResolveAccountID(params)
	if err != nil {
		return platform.Failure[domain.TrackingMetrics](a.Kind(), err)
	}
	if !params.HasWindow() {
		return platform.Failure[domain.TrackingMetrics](a.Kind(), platform.NewValidationError("start_date", "end_date"))
	}

	query := fmt.Sprintf(
		`SELECT metrics.cost_micros, metrics.impressions, metrics.clicks, metrics.conversions FROM customer WHERE segments.date BETWEEN '%s' AND '%s'`,
		params.StartDate.Format(time.DateOnly),
		params.EndDate.Format(time.DateOnly),
	)

	resp, err := a.search(ctx, customerID, query, "", 0)
	if err != nil {
		return platform.Failure[domain.TrackingMetrics](a.Kind(), err)
	}

	samples := make([]domain.MetricSample, 0, len(resp.Results))
	for _, result := range resp.Results {
		if result.Metrics == nil {
			continue
		}
		samples = append(samples, sampleFrom(result.Metrics))
	}

	aggregated := platform.Aggregate(samples)
	aggregated.Platform = a.Kind()

	return platform.Success(a.Kind(), []domain.TrackingMetrics{aggregated}, nil)
}

func (a *Adapter) GetCampaignByID(ctx context.Context, id string, params domain.QueryParams) (domain.CampaignData, bool) {
	customerID, err := a.ResolveAccountID(params)
	if err != nil {
		return domain.CampaignData{}, false
	}

	query := fmt.Sprintf(
		`SELECT campaign.id, campaign.name, campaign.status, campaign.advertising_channel_type, campaign.start_date, campaign.end_date FROM campaign WHERE campaign.id = %s`,
		id,
	)

	resp, err := a.search(ctx, customerID, query, "", 0)
	if err != nil || len(resp.Results) == 0 || resp.Results[0].Campaign == nil {
		return domain.CampaignData{}, false
	}

	return a.mapCampaign(resp.Results[0]), true
}

func (a *Adapter) GetAdByID(ctx context.Context, id string, params domain.QueryParams) (domain.AdData, bool) {
	customerID, err := a.ResolveAccountID(params)
	if err != nil {
		return domain.AdData{}, false
	}

	query := fmt.Sprintf(
		`SELECT ad_group_ad.ad.id, ad_group_ad.ad.name, ad_group_ad.ad.type, ad_group_ad.status, campaign.id FROM ad_group_ad WHERE ad_group_ad.ad.id = %s`,
		id,
	)

	resp, err := a.search(ctx, customerID, query, "", 0)
	if err != nil || len(resp.Results) == 0 || resp.Results[0].AdGroupAd == nil {
		return domain.AdData{}, false
	}

	result := resp.Results[0]
	raw, _ := json.Marshal(result)

	ad := domain.AdData{
		ID:        result.AdGroupAd.Ad.ID,
		Name:      result.AdGroupAd.Ad.Name,
		Type:      result.AdGroupAd.Ad.Type,
		Status:    mapStatus(result.AdGroupAd.Status),
		UpdatedAt: time.Now(),
		Platform:  a.Kind(),
		Raw:       raw,
	}
	if result.Campaign != nil {
		ad.CampaignID = result.Campaign.ID
	}
	return ad, true
}

func (a *Adapter) GetAccounts(ctx context.Context) domain.ResponseEnvelope[domain.AccountInfo] {
	if err := a.ensureAuth(ctx); err != nil {
		return platform.Failure[domain.AccountInfo](a.Kind(), err)
	}

	body, err := a.call(ctx, http.MethodGet, "/customers:listAccessibleCustomers", nil)
	if err != nil {
		return platform.Failure[domain.AccountInfo](a.Kind(), err)
	}

	var resp accessibleCustomersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return platform.Failure[domain.AccountInfo](a.Kind(), err)
	}

	accounts := make([]domain.AccountInfo, 0, len(resp.ResourceNames))
	for _, resource := range resp.ResourceNames {
		accounts = append(accounts, domain.AccountInfo{
			ID:       strings.TrimPrefix(resource, "customers/"),
			Name:     resource,
			Platform: a.Kind(),
		})
	}

	return platform.Success(a.Kind(), accounts, nil)
}

func (a *Adapter) GetAccountInfo(ctx context.Context, accountID string) (domain.AccountInfo, bool) {
	env := a.GetAccounts(ctx)
	if !env.Success {
		return domain.AccountInfo{}, false
	}

	for _, account := range env.Data {
		if account.ID == accountID {
			return account, true
		}
	}
	return domain.AccountInfo{}, false
}

// SyncData atualiza campanhas e anúncios dentro da janela pedida
func (a *Adapter) SyncData(ctx context.Context, params domain.QueryParams) domain.SyncStatus {
	return a.RunSync(ctx, func(ctx context.Context) (int, error) {
		processed := 0

		campaigns := a.GetCampaigns(ctx, params)
		if !campaigns.Success {
			return processed, envelopeErr(campaigns.Error)
		}
		processed += len(campaigns.Data)

		ads := a.GetAds(ctx, params)
		if !ads.Success {
			return processed, envelopeErr(ads.Error)
		}
		processed += len(ads.Data)

		return processed, nil
	})
}

func envelopeErr(respErr *domain.ResponseError) error {
	if respErr == nil {
		return platform.NewAuthError("falha sem detalhe de erro")
	}
	return &platform.Error{
		Code:    respErr.Code,
		Message: respErr.Message,
		Details: respErr.Details,
	}
}

func sampleFrom(m *metricsResource) domain.MetricSample {
	costMicros, _ := strconv.ParseInt(m.CostMicros, 10, 64)
	impressions, _ := strconv.ParseInt(m.Impressions, 10, 64)
	clicks, _ := strconv.ParseInt(m.Clicks, 10, 64)

	return domain.MetricSample{
		Spend:       float64(costMicros) / 1e6,
		Impressions: impressions,
		Clicks:      clicks,
		Leads:       int64(m.Conversions),
	}
}

func paginationFrom(nextPageToken string) *domain.Pagination {
	if nextPageToken == "" {
		return nil
	}
	return &domain.Pagination{Cursor: nextPageToken, HasNext: true}
}

func parseDate(v string) *time.Time {
	if v == "" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return nil
	}
	return &t
}
