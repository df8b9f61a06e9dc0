// Package analytics implementa o adaptador de plataformas de analytics
// (Google Analytics Universal e GA4), também da família OAuth2 com refresh
// token. Diferente das plataformas de anúncios, a leitura é um relatório
// tabular (dimensões + métricas + janela de datas) e "leads" são aproximados
// como eventos de conversão.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
	"github.com/Gabryellzs/blecks-david-sub000/internal/platform"
)

// Chaves de credencial exigidas pelo adaptador de analytics
const (
	CredClientID     = "client_id"
	CredClientSecret = "client_secret"
	CredRefreshToken = "refresh_token"
	CredAccessToken  = "access_token"
	CredPropertyID   = "property_id"
)

type Adapter struct {
	*platform.Base
}

// New cria o adaptador de analytics; serve tanto google_analytics quanto ga4,
// variando apenas defaults de endpoint definidos na factory
func New(cfg domain.PlatformConfig, client *platform.Client) (platform.TrackingPlatform, error) {
	return &Adapter{
		Base: platform.NewBase(cfg, client, CredClientID, CredClientSecret, CredRefreshToken, CredPropertyID),
	}, nil
}

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
		return platform.NewAuthError("%s exige um access token ou um refresh token nas credenciais", cfg.ID)
	}

	return a.RefreshAuth(ctx)
}

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

	return nil
}

func (a *Adapter) ValidateAuth(ctx context.Context) bool {
	propertyID, err := a.propertyID(domain.QueryParams{})
	if err != nil {
		return false
	}

	body := reportRequest{
		DateRanges: []dateRange{{StartDate: "yesterday", EndDate: "today"}},
		Metrics:    []namedField{{Name: "sessions"}},
		Limit:      1,
	}

	_, callErr := a.Client().Call(ctx, a.Kind(), a.Auth(), a.Config().BaseURL, http.MethodPost, "/properties/"+propertyID+":runReport", nil, body)
	return callErr == nil
}

func (a *Adapter) TestConnection(ctx context.Context) bool {
	return a.ValidateAuth(ctx)
}

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

// propertyID resolve a propriedade/vista a consultar: parâmetro da chamada,
// credencial property_id ou conta padrão, nesta ordem
func (a *Adapter) propertyID(params domain.QueryParams) (string, error) {
	if params.AccountID != "" {
		return params.AccountID, nil
	}

	cfg := a.Config()
	if id := cfg.Credential(CredPropertyID); id != "" {
		return id, nil
	}
	if cfg.DefaultAccountID != "" {
		return cfg.DefaultAccountID, nil
	}

	return "", platform.NewConfigError("nenhuma propriedade informada e %s não tem property_id configurado", cfg.ID)
}

func (a *Adapter) runReport(ctx context.Context, propertyID string, req reportRequest) (*reportResponse, error) {
	if err := a.ensureAuth(ctx); err != nil {
		return nil, err
	}

	body, err := a.Client().Call(ctx, a.Kind(), a.Auth(), a.Config().BaseURL, http.MethodPost, "/properties/"+propertyID+":runReport", nil, req)
	if err != nil {
		return nil, err
	}

	var resp reportResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetCampaigns deriva registros de campanha do tráfego observado, agrupado
// pela dimensão de campanha da sessão. Campanhas observadas estão por
// definição ativas no período.
func (a *Adapter) GetCampaigns(ctx context.Context, params domain.QueryParams) domain.ResponseEnvelope[domain.CampaignData] {
	propertyID, err := a.propertyID(params)
	if err != nil {
		return platform.Failure[domain.CampaignData](a.Kind(), err)
	}
	if !params.HasWindow() {
		return platform.Failure[domain.CampaignData](a.Kind(), platform.NewValidationError("start_date", "end_date"))
	}

	req := reportRequest{
		DateRanges: []dateRange{window(params)},
		Dimensions: []namedField{{Name: "sessionCampaignId"}, {Name: "sessionCampaignName"}},
		Metrics:    []namedField{{Name: "sessions"}, {Name: "advertiserAdClicks"}, {Name: "advertiserAdCost"}, {Name: "advertiserAdImpressions"}},
	}

	resp, err := a.runReport(ctx, propertyID, req)
	if err != nil {
		return platform.Failure[domain.CampaignData](a.Kind(), err)
	}

	campaigns := make([]domain.CampaignData, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		if len(row.DimensionValues) < 2 || len(row.MetricValues) < 4 {
			continue
		}

		raw, _ := json.Marshal(row)
		clicks := metricInt(row, 1)
		spend := metricFloat(row, 2)
		impressions := metricInt(row, 3)

		campaign := domain.CampaignData{
			ID:          row.DimensionValues[0].Value,
			Name:        row.DimensionValues[1].Value,
			Status:      domain.StatusActive,
			Spend:       spend,
			Impressions: impressions,
			Clicks:      clicks,
			UpdatedAt:   time.Now(),
			Platform:    a.Kind(),
			Raw:         raw,
		}

		derived := platform.Aggregate([]domain.MetricSample{{
			Spend:       spend,
			Impressions: impressions,
			Clicks:      clicks,
		}})
		campaign.CTR = derived.CTR
		campaign.CPC = derived.CPC
		campaign.CPM = derived.CPM

		campaigns = append(campaigns, campaign)
	}

	return platform.Success(a.Kind(), campaigns, nil)
}

// GetAds: analytics não tem entidade de anúncio; resultado vazio, não falha
func (a *Adapter) GetAds(_ context.Context, _ domain.QueryParams) domain.ResponseEnvelope[domain.AdData] {
	return platform.Success(a.Kind(), []domain.AdData{}, nil)
}

func (a *Adapter) GetAdByID(_ context.Context, _ string, _ domain.QueryParams) (domain.AdData, bool) {
	return domain.AdData{}, false
}

// GetLeads aproxima leads como eventos de conversão, mapeados para o formato
// canônico de lead com status fixo NEW
func (a *Adapter) GetLeads(ctx context.Context, params domain.QueryParams) domain.ResponseEnvelope[domain.LeadData] {
	propertyID, err := a.propertyID(params)
	if err != nil {
		return platform.Failure[domain.LeadData](a.Kind(), err)
	}
	if !params.HasWindow() {
		return platform.Failure[domain.LeadData](a.Kind(), platform.NewValidationError("start_date", "end_date"))
	}

	req := reportRequest{
		DateRanges: []dateRange{window(params)},
		Dimensions: []namedField{{Name: "eventName"}, {Name: "sessionCampaignId"}, {Name: "date"}},
		Metrics:    []namedField{{Name: "keyEvents"}},
		DimensionFilter: &filterExpression{
			Filter: &dimensionFilter{
				FieldName: "isKeyEvent",
				StringFilter: &stringFilter{
					MatchType: "EXACT",
					Value:     "true",
				},
			},
		},
	}

	resp, err := a.runReport(ctx, propertyID, req)
	if err != nil {
		return platform.Failure[domain.LeadData](a.Kind(), err)
	}

	leads := make([]domain.LeadData, 0, len(resp.Rows))
	for i, row := range resp.Rows {
		if len(row.DimensionValues) < 3 {
			continue
		}

		raw, _ := json.Marshal(row)
		leads = append(leads, domain.LeadData{
			ID:         fmt.Sprintf("%s-%s-%d", row.DimensionValues[2].Value, row.DimensionValues[0].Value, i),
			CampaignID: row.DimensionValues[1].Value,
			Name:       row.DimensionValues[0].Value,
			Status:     domain.LeadStatusNew,
			CreatedAt:  parseReportDate(row.DimensionValues[2].Value),
			Platform:   a.Kind(),
			Raw:        raw,
		})
	}

	return platform.Success(a.Kind(), leads, nil)
}

func (a *Adapter) GetLeadByID(_ context.Context, _ string, _ domain.QueryParams) (domain.LeadData, bool) {
	return domain.LeadData{}, false
}

func (a *Adapter) GetMetrics(ctx context.Context, params domain.QueryParams) domain.ResponseEnvelope[domain.TrackingMetrics] {
	propertyID, err := a.propertyID(params)
	if err != nil {
		return platform.Failure[domain.TrackingMetrics](a.Kind(), err)
	}
	if !params.HasWindow() {
		return platform.Failure[domain.TrackingMetrics](a.Kind(), platform.NewValidationError("start_date", "end_date"))
	}

	req := reportRequest{
		DateRanges: []dateRange{window(params)},
		Metrics: []namedField{
			{Name: "advertiserAdCost"},
			{Name: "advertiserAdImpressions"},
			{Name: "advertiserAdClicks"},
			{Name: "totalUsers"},
			{Name: "keyEvents"},
		},
	}

	resp, err := a.runReport(ctx, propertyID, req)
	if err != nil {
		return platform.Failure[domain.TrackingMetrics](a.Kind(), err)
	}

	samples := make([]domain.MetricSample, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		if len(row.MetricValues) < 5 {
			continue
		}
		samples = append(samples, domain.MetricSample{
			Spend:       metricFloat(row, 0),
			Impressions: metricInt(row, 1),
			Clicks:      metricInt(row, 2),
			Reach:       metricInt(row, 3),
			Leads:       metricInt(row, 4),
		})
	}

	aggregated := platform.Aggregate(samples)
	aggregated.Platform = a.Kind()

	return platform.Success(a.Kind(), []domain.TrackingMetrics{aggregated}, nil)
}

func (a *Adapter) GetCampaignByID(ctx context.Context, id string, params domain.QueryParams) (domain.CampaignData, bool) {
	env := a.GetCampaigns(ctx, params)
	if !env.Success {
		return domain.CampaignData{}, false
	}

	for _, campaign := range env.Data {
		if campaign.ID == id {
			return campaign, true
		}
	}
	return domain.CampaignData{}, false
}

func (a *Adapter) GetAccounts(ctx context.Context) domain.ResponseEnvelope[domain.AccountInfo] {
	propertyID, err := a.propertyID(domain.QueryParams{})
	if err != nil {
		return platform.Failure[domain.AccountInfo](a.Kind(), err)
	}

	// A camada de dados do GA enxerga apenas a propriedade configurada
	return platform.Success(a.Kind(), []domain.AccountInfo{{
		ID:       propertyID,
		Name:     a.Config().Name,
		Platform: a.Kind(),
	}}, nil)
}

func (a *Adapter) GetAccountInfo(_ context.Context, accountID string) (domain.AccountInfo, bool) {
	propertyID, err := a.propertyID(domain.QueryParams{})
	if err != nil || accountID != propertyID {
		return domain.AccountInfo{}, false
	}

	return domain.AccountInfo{
		ID:       propertyID,
		Name:     a.Config().Name,
		Platform: a.Kind(),
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

		leads := a.GetLeads(ctx, params)
		if !leads.Success {
			return processed, envelopeErr(leads.Error)
		}
		processed += len(leads.Data)

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

func window(params domain.QueryParams) dateRange {
	return dateRange{
		StartDate: params.StartDate.Format(time.DateOnly),
		EndDate:   params.EndDate.Format(time.DateOnly),
	}
}

func metricFloat(row reportRow, idx int) float64 {
	if idx >= len(row.MetricValues) {
		return 0
	}
	f, err := strconv.ParseFloat(row.MetricValues[idx].Value, 64)
	if err != nil {
		logrus.WithField("value", row.MetricValues[idx].Value).Debug("analytics: non-numeric metric value")
		return 0
	}
	return f
}

func metricInt(row reportRow, idx int) int64 {
	return int64(metricFloat(row, idx))
}

// parseReportDate aceita o formato AAAAMMDD dos relatórios do GA
func parseReportDate(v string) time.Time {
	if t, err := time.Parse("20060102", v); err == nil {
		return t
	}
	return time.Now()
}
