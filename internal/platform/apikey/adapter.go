// Package apikey implementa a família de adaptadores de chave estática:
// plataformas sem suporte a refresh token (TikTok Ads, Kwai Ads). A chave é
// embrulhada como credencial bearer com validade curta e fixa, e a renovação
// é um estado terminal deliberado que exige nova submissão manual.
package apikey

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
	"github.com/Gabryellzs/blecks-david-sub000/internal/platform"
)

// CredAPIKey é a única credencial obrigatória da família
const CredAPIKey = "api_key"

// keyValidityWindow é a validade fixa atribuída à credencial embrulhada
const keyValidityWindow = 24 * time.Hour

// Profile parametriza o adaptador para um fornecedor concreto da família
type Profile struct {
	CampaignPath  string
	AdPath        string
	ReportPath    string
	AdvertiserKey string
	SuccessCode   int
	StatusTable   map[string]domain.RecordStatus
}

type Adapter struct {
	*platform.Base
	profile Profile
}

// New cria um adaptador de chave estática com o perfil do fornecedor
func New(cfg domain.PlatformConfig, client *platform.Client, profile Profile) (platform.TrackingPlatform, error) {
	return &Adapter{
		Base:    platform.NewBase(cfg, client, CredAPIKey),
		profile: profile,
	}, nil
}

// Authenticate embrulha a chave de API como credencial bearer com validade
// curta e fixa
func (a *Adapter) Authenticate(_ context.Context) error {
	key := a.Config().Credential(CredAPIKey)
	if key == "" {
		return platform.NewAuthError("%s exige uma api_key nas credenciais", a.Kind())
	}

	a.SetAuth(&domain.PlatformAuth{
		AccessToken: key,
		TokenType:   "bearer",
		ExpiresAt:   time.Now().Add(keyValidityWindow),
	})

	return nil
}

// RefreshAuth falha imediatamente: a plataforma não emite novas credenciais
// por troca; é necessário submeter uma nova chave manualmente
func (a *Adapter) RefreshAuth(_ context.Context) error {
	return platform.NewRefreshUnsupportedError()
}

func (a *Adapter) ValidateAuth(ctx context.Context) bool {
	_, err := a.listCampaigns(ctx, domain.QueryParams{AccountID: a.Config().DefaultAccountID})
	return err == nil
}

func (a *Adapter) TestConnection(ctx context.Context) bool {
	return a.ValidateAuth(ctx)
}

func (a *Adapter) mapStatus(vendor string) domain.RecordStatus {
	if st, ok := a.profile.StatusTable[vendor]; ok {
		return st
	}
	return domain.StatusPending
}

func (a *Adapter) call(ctx context.Context, path string, query url.Values) (*vendorResponse, error) {
	if auth := a.Auth(); auth == nil || auth.AccessToken == "" {
		if err := a.Authenticate(ctx); err != nil {
			return nil, err
		}
	}

	body, err := a.Client().Call(ctx, a.Kind(), a.Auth(), a.Config().BaseURL, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}

	var resp vendorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}

	if resp.Code != a.profile.SuccessCode {
		return nil, &platform.Error{
			Code:    platform.CodeAPI,
			Message: resp.Message,
			Details: []string{path},
		}
	}

	return &resp, nil
}

func (a *Adapter) listCampaigns(ctx context.Context, params domain.QueryParams) ([]campaignRow, error) {
	advertiserID, err := a.ResolveAccountID(params)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set(a.profile.AdvertiserKey, advertiserID)
	if params.Cursor != "" {
		query.Set("page", params.Cursor)
	}

	resp, err := a.call(ctx, a.profile.CampaignPath, query)
	if err != nil {
		return nil, err
	}

	var rows []campaignRow
	if err := json.Unmarshal(resp.Data.List, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (a *Adapter) GetCampaigns(ctx context.Context, params domain.QueryParams) domain.ResponseEnvelope[domain.CampaignData] {
	if !params.HasWindow() {
		return platform.Failure[domain.CampaignData](a.Kind(), platform.NewValidationError("start_date", "end_date"))
	}

	rows, err := a.listCampaigns(ctx, params)
	if err != nil {
		return platform.Failure[domain.CampaignData](a.Kind(), err)
	}

	campaigns := make([]domain.CampaignData, 0, len(rows))
	for _, row := range rows {
		campaigns = append(campaigns, a.mapCampaign(row))
	}

	return platform.Success(a.Kind(), campaigns, nil)
}

func (a *Adapter) mapCampaign(row campaignRow) domain.CampaignData {
	raw, _ := json.Marshal(row)

	campaign := domain.CampaignData{
		ID:        row.CampaignID.String(),
		Name:      row.CampaignName,
		Status:    a.mapStatus(row.OperationStatus),
		Objective: row.ObjectiveType,
		UpdatedAt: time.Now(),
		Platform:  a.Kind(),
		Raw:       raw,
	}

	sample := row.sample()
	campaign.Spend = sample.Spend
	campaign.Impressions = sample.Impressions
	campaign.Clicks = sample.Clicks
	campaign.Reach = sample.Reach

	derived := platform.Aggregate([]domain.MetricSample{sample})
	campaign.CTR = derived.CTR
	campaign.CPC = derived.CPC
	campaign.CPM = derived.CPM
	campaign.Frequency = derived.Frequency

	return campaign
}

func (a *Adapter) GetAds(ctx context.Context, params domain.QueryParams) domain.ResponseEnvelope[domain.AdData] {
	if !params.HasWindow() {
		return platform.Failure[domain.AdData](a.Kind(), platform.NewValidationError("start_date", "end_date"))
	}

	advertiserID, err := a.ResolveAccountID(params)
	if err != nil {
		return platform.Failure[domain.AdData](a.Kind(), err)
	}

	query := url.Values{}
	query.Set(a.profile.AdvertiserKey, advertiserID)
	if params.CampaignID != "" {
		query.Set("campaign_id", params.CampaignID)
	}

	resp, err := a.call(ctx, a.profile.AdPath, query)
	if err != nil {
		return platform.Failure[domain.AdData](a.Kind(), err)
	}

	var rows []adRow
	if err := json.Unmarshal(resp.Data.List, &rows); err != nil {
		return platform.Failure[domain.AdData](a.Kind(), err)
	}

	ads := make([]domain.AdData, 0, len(rows))
	for _, row := range rows {
		raw, _ := json.Marshal(row)

		ad := domain.AdData{
			ID:         row.AdID.String(),
			CampaignID: row.CampaignID.String(),
			Name:       row.AdName,
			Status:     a.mapStatus(row.OperationStatus),
			UpdatedAt:  time.Now(),
			Platform:   a.Kind(),
			Raw:        raw,
		}

		sample := row.sample()
		ad.Spend = sample.Spend
		ad.Impressions = sample.Impressions
		ad.Clicks = sample.Clicks

		derived := platform.Aggregate([]domain.MetricSample{sample})
		ad.CTR = derived.CTR
		ad.CPC = derived.CPC
		ad.CPM = derived.CPM

		ads = append(ads, ad)
	}

	return platform.Success(a.Kind(), ads, nil)
}

// GetLeads: a família não expõe endpoint de leads nesta camada; vazio, não falha
func (a *Adapter) GetLeads(_ context.Context, _ domain.QueryParams) domain.ResponseEnvelope[domain.LeadData] {
	return platform.Success(a.Kind(), []domain.LeadData{}, nil)
}

func (a *Adapter) GetLeadByID(_ context.Context, _ string, _ domain.QueryParams) (domain.LeadData, bool) {
	return domain.LeadData{}, false
}

func (a *Adapter) GetMetrics(ctx context.Context, params domain.QueryParams) domain.ResponseEnvelope[domain.TrackingMetrics] {
	if !params.HasWindow() {
		return platform.Failure[domain.TrackingMetrics](a.Kind(), platform.NewValidationError("start_date", "end_date"))
	}

	advertiserID, err := a.ResolveAccountID(params)
	if err != nil {
		return platform.Failure[domain.TrackingMetrics](a.Kind(), err)
	}

	query := url.Values{}
	query.Set(a.profile.AdvertiserKey, advertiserID)
	query.Set("start_date", params.StartDate.Format(time.DateOnly))
	query.Set("end_date", params.EndDate.Format(time.DateOnly))

	resp, err := a.call(ctx, a.profile.ReportPath, query)
	if err != nil {
		return platform.Failure[domain.TrackingMetrics](a.Kind(), err)
	}

	var rows []reportRow
	if err := json.Unmarshal(resp.Data.List, &rows); err != nil {
		return platform.Failure[domain.TrackingMetrics](a.Kind(), err)
	}

	samples := make([]domain.MetricSample, 0, len(rows))
	for _, row := range rows {
		samples = append(samples, row.sample())
	}

	aggregated := platform.Aggregate(samples)
	aggregated.Platform = a.Kind()

	return platform.Success(a.Kind(), []domain.TrackingMetrics{aggregated}, nil)
}

func (a *Adapter) GetCampaignByID(ctx context.Context, id string, params domain.QueryParams) (domain.CampaignData, bool) {
	rows, err := a.listCampaigns(ctx, params)
	if err != nil {
		return domain.CampaignData{}, false
	}

	for _, row := range rows {
		if row.CampaignID.String() == id {
			return a.mapCampaign(row), true
		}
	}
	return domain.CampaignData{}, false
}

func (a *Adapter) GetAdByID(ctx context.Context, id string, params domain.QueryParams) (domain.AdData, bool) {
	env := a.GetAds(ctx, withWindowFallback(params))
	if !env.Success {
		return domain.AdData{}, false
	}

	for _, ad := range env.Data {
		if ad.ID == id {
			return ad, true
		}
	}
	return domain.AdData{}, false
}

func (a *Adapter) GetAccounts(_ context.Context) domain.ResponseEnvelope[domain.AccountInfo] {
	cfg := a.Config()
	if cfg.DefaultAccountID == "" {
		return platform.Failure[domain.AccountInfo](a.Kind(), platform.NewConfigError("%s sem conta de anunciante configurada", cfg.ID))
	}

	return platform.Success(a.Kind(), []domain.AccountInfo{{
		ID:       cfg.DefaultAccountID,
		Name:     cfg.Name,
		Platform: cfg.ID,
	}}, nil)
}

func (a *Adapter) GetAccountInfo(_ context.Context, accountID string) (domain.AccountInfo, bool) {
	cfg := a.Config()
	if accountID == "" || accountID != cfg.DefaultAccountID {
		return domain.AccountInfo{}, false
	}

	return domain.AccountInfo{
		ID:       accountID,
		Name:     cfg.Name,
		Platform: cfg.ID,
	}, true
}

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

// withWindowFallback garante uma janela mínima para buscas auxiliares
func withWindowFallback(params domain.QueryParams) domain.QueryParams {
	if params.HasWindow() {
		return params
	}
	params.EndDate = time.Now()
	params.StartDate = params.EndDate.AddDate(0, 0, -7)
	return params
}
