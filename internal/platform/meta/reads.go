package meta

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
	"github.com/Gabryellzs/blecks-david-sub000/internal/platform"
)

func (a *Adapter) GetCampaigns(ctx context.Context, params domain.QueryParams) domain.ResponseEnvelope[domain.CampaignData] {
	accountID, err := a.ResolveAccountID(params)
	if err != nil {
		return platform.Failure[domain.CampaignData](a.Kind(), err)
	}
	if !params.HasWindow() {
		return platform.Failure[domain.CampaignData](a.Kind(), platform.NewValidationError("start_date", "end_date"))
	}

	query := url.Values{}
	query.Set("fields", "id,name,status,objective,start_time,stop_time")
	if params.Cursor != "" {
		query.Set("after", params.Cursor)
	}

	body, err := a.Client().Call(ctx, a.Kind(), a.Auth(), a.Config().BaseURL, http.MethodGet, "/act_"+accountID+"/campaigns", query, nil)
	if err != nil {
		return platform.Failure[domain.CampaignData](a.Kind(), err)
	}

	var resp campaignsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return platform.Failure[domain.CampaignData](a.Kind(), err)
	}

	insights, err := a.fetchInsights(ctx, accountID, "campaign", params)
	if err != nil {
		// Métricas indisponíveis não invalidam a listagem: devolve as
		// campanhas já obtidas sinalizando a falha parcial
		campaigns := a.mapCampaigns(resp.Data, nil)
		return platform.PartialFailure(a.Kind(), campaigns, err)
	}

	byCampaign := make(map[string]insightRow, len(insights))
	for _, row := range insights {
		byCampaign[row.CampaignID] = row
	}

	return platform.Success(a.Kind(), a.mapCampaigns(resp.Data, byCampaign), paginationFrom(resp.Paging))
}

func (a *Adapter) mapCampaigns(rows []campaignRow, insights map[string]insightRow) []domain.CampaignData {
	campaigns := make([]domain.CampaignData, 0, len(rows))

	for _, row := range rows {
		raw, _ := json.Marshal(row)

		campaign := domain.CampaignData{
			ID:        row.ID,
			Name:      row.Name,
			Status:    mapStatus(row.Status),
			Objective: row.Objective,
			StartDate: parseGraphTime(row.StartTime),
			EndDate:   parseGraphTime(row.StopTime),
			UpdatedAt: time.Now(),
			Platform:  a.Kind(),
			Raw:       raw,
		}

		if insight, ok := insights[row.ID]; ok {
			applyInsight(&campaign, insight)
		}

		campaigns = append(campaigns, campaign)
	}

	return campaigns
}

func (a *Adapter) GetAds(ctx context.Context, params domain.QueryParams) domain.ResponseEnvelope[domain.AdData] {
	accountID, err := a.ResolveAccountID(params)
	if err != nil {
		return platform.Failure[domain.AdData](a.Kind(), err)
	}
	if !params.HasWindow() {
		return platform.Failure[domain.AdData](a.Kind(), platform.NewValidationError("start_date", "end_date"))
	}

	query := url.Values{}
	query.Set("fields", "id,name,status,campaign_id")
	if params.CampaignID != "" {
		query.Set("filtering", `[{"field":"campaign.id","operator":"EQUAL","value":"`+params.CampaignID+`"}]`)
	}

	body, err := a.Client().Call(ctx, a.Kind(), a.Auth(), a.Config().BaseURL, http.MethodGet, "/act_"+accountID+"/ads", query, nil)
	if err != nil {
		return platform.Failure[domain.AdData](a.Kind(), err)
	}

	var resp adsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return platform.Failure[domain.AdData](a.Kind(), err)
	}

	insights, err := a.fetchInsights(ctx, accountID, "ad", params)
	if err != nil {
		return platform.PartialFailure(a.Kind(), a.mapAds(resp.Data, nil), err)
	}

	byAd := make(map[string]insightRow, len(insights))
	for _, row := range insights {
		byAd[row.AdID] = row
	}

	return platform.Success(a.Kind(), a.mapAds(resp.Data, byAd), paginationFrom(resp.Paging))
}

func (a *Adapter) mapAds(rows []adRow, insights map[string]insightRow) []domain.AdData {
	ads := make([]domain.AdData, 0, len(rows))

	for _, row := range rows {
		raw, _ := json.Marshal(row)

		ad := domain.AdData{
			ID:         row.ID,
			CampaignID: row.CampaignID,
			Name:       row.Name,
			Status:     mapStatus(row.Status),
			UpdatedAt:  time.Now(),
			Platform:   a.Kind(),
			Raw:        raw,
		}

		if insight, ok := insights[row.ID]; ok {
			sample := insight.sample()
			ad.Spend = sample.Spend
			ad.Impressions = sample.Impressions
			ad.Clicks = sample.Clicks
			ad.Reach = sample.Reach
			ad.Frequency = parseFloat(insight.Frequency)
			derived := platform.Aggregate([]domain.MetricSample{sample})
			ad.CTR = derived.CTR
			ad.CPC = derived.CPC
			ad.CPM = derived.CPM
		}

		ads = append(ads, ad)
	}

	return ads
}

func (a *Adapter) GetMetrics(ctx context.Context, params domain.QueryParams) domain.ResponseEnvelope[domain.TrackingMetrics] {
	accountID, err := a.ResolveAccountID(params)
	if err != nil {
		return platform.Failure[domain.TrackingMetrics](a.Kind(), err)
	}
	if !params.HasWindow() {
		return platform.Failure[domain.TrackingMetrics](a.Kind(), platform.NewValidationError("start_date", "end_date"))
	}

	rows, err := a.fetchInsights(ctx, accountID, "account", params)
	if err != nil {
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

// fetchInsights consulta o endpoint de insights no nível pedido (account,
// campaign ou ad) dentro da janela de datas
func (a *Adapter) fetchInsights(ctx context.Context, accountID, level string, params domain.QueryParams) ([]insightRow, error) {
	fields := "spend,impressions,clicks,reach,frequency,actions"
	if level == "campaign" {
		fields = "campaign_id," + fields
	} else if level == "ad" {
		fields = "ad_id," + fields
	}

	query := url.Values{}
	query.Set("level", level)
	query.Set("fields", fields)
	query.Set("time_range", timeRangeQuery(params))

	body, err := a.Client().Call(ctx, a.Kind(), a.Auth(), a.Config().BaseURL, http.MethodGet, "/act_"+accountID+"/insights", query, nil)
	if err != nil {
		return nil, err
	}

	var resp insightsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// GetCampaignByID devolve a campanha ou ausência; qualquer falha vira ausência
func (a *Adapter) GetCampaignByID(ctx context.Context, id string, _ domain.QueryParams) (domain.CampaignData, bool) {
	query := url.Values{}
	query.Set("fields", "id,name,status,objective,start_time,stop_time")

	body, err := a.Client().Call(ctx, a.Kind(), a.Auth(), a.Config().BaseURL, http.MethodGet, "/"+id, query, nil)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform":    a.Kind(),
			"campaign_id": id,
			"error":       err.Error(),
		}).Debug("meta: campaign lookup failed")
		return domain.CampaignData{}, false
	}

	var row campaignRow
	if err := json.Unmarshal(body, &row); err != nil {
		return domain.CampaignData{}, false
	}

	campaigns := a.mapCampaigns([]campaignRow{row}, nil)
	if len(campaigns) == 0 {
		return domain.CampaignData{}, false
	}
	return campaigns[0], true
}

func (a *Adapter) GetAdByID(ctx context.Context, id string, _ domain.QueryParams) (domain.AdData, bool) {
	query := url.Values{}
	query.Set("fields", "id,name,status,campaign_id")

	body, err := a.Client().Call(ctx, a.Kind(), a.Auth(), a.Config().BaseURL, http.MethodGet, "/"+id, query, nil)
	if err != nil {
		return domain.AdData{}, false
	}

	var row adRow
	if err := json.Unmarshal(body, &row); err != nil {
		return domain.AdData{}, false
	}

	ads := a.mapAds([]adRow{row}, nil)
	if len(ads) == 0 {
		return domain.AdData{}, false
	}
	return ads[0], true
}

func applyInsight(campaign *domain.CampaignData, insight insightRow) {
	sample := insight.sample()
	campaign.Spend = sample.Spend
	campaign.Impressions = sample.Impressions
	campaign.Clicks = sample.Clicks
	campaign.Reach = sample.Reach
	campaign.Frequency = parseFloat(insight.Frequency)

	derived := platform.Aggregate([]domain.MetricSample{sample})
	campaign.CTR = derived.CTR
	campaign.CPC = derived.CPC
	campaign.CPM = derived.CPM
}

func paginationFrom(p paging) *domain.Pagination {
	if p.Cursors.After == "" {
		return nil
	}
	return &domain.Pagination{
		Cursor:  p.Cursors.After,
		HasNext: p.Next != "",
	}
}

// parseGraphTime aceita o formato de data do Graph API
func parseGraphTime(v string) *time.Time {
	if v == "" {
		return nil
	}

	for _, layout := range []string{"2006-01-02T15:04:05-0700", time.RFC3339} {
		if t, err := time.Parse(layout, v); err == nil {
			return &t
		}
	}
	return nil
}
