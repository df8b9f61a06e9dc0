package meta

import (
	"strconv"

	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
)

// Chaves de credencial exigidas pelo adaptador Meta
const (
	CredAccessToken  = "access_token"
	CredClientID     = "client_id"
	CredClientSecret = "client_secret"
)

// statusTable traduz o vocabulário de status do Graph API para o enum
// canônico. Valores não mapeados caem em PENDING.
var statusTable = map[string]domain.RecordStatus{
	"ACTIVE":      domain.StatusActive,
	"PAUSED":      domain.StatusPaused,
	"ARCHIVED":    domain.StatusArchived,
	"DELETED":     domain.StatusDeleted,
	"IN_PROCESS":  domain.StatusPending,
	"WITH_ISSUES": domain.StatusPending,
}

func mapStatus(vendor string) domain.RecordStatus {
	if st, ok := statusTable[vendor]; ok {
		return st
	}
	return domain.StatusPending
}

type paging struct {
	Cursors struct {
		Before string `json:"before"`
		After  string `json:"after"`
	} `json:"cursors"`
	Next string `json:"next,omitempty"`
}

type campaignRow struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Objective string `json:"objective,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	StopTime  string `json:"stop_time,omitempty"`
}

type campaignsResponse struct {
	Data   []campaignRow `json:"data"`
	Paging paging        `json:"paging"`
}

type adRow struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	CampaignID string `json:"campaign_id,omitempty"`
}

type adsResponse struct {
	Data   []adRow `json:"data"`
	Paging paging  `json:"paging"`
}

type action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// insightRow espelha o formato do Graph API, que serializa números como strings
type insightRow struct {
	CampaignID  string   `json:"campaign_id,omitempty"`
	AdID        string   `json:"ad_id,omitempty"`
	Spend       string   `json:"spend"`
	Impressions string   `json:"impressions"`
	Clicks      string   `json:"clicks"`
	Reach       string   `json:"reach"`
	Frequency   string   `json:"frequency"`
	Actions     []action `json:"actions,omitempty"`
}

type insightsResponse struct {
	Data   []insightRow `json:"data"`
	Paging paging       `json:"paging"`
}

func (r insightRow) sample() domain.MetricSample {
	return domain.MetricSample{
		Spend:       parseFloat(r.Spend),
		Impressions: parseInt(r.Impressions),
		Clicks:      parseInt(r.Clicks),
		Reach:       parseInt(r.Reach),
		Leads:       r.leads(),
	}
}

func (r insightRow) leads() int64 {
	for _, a := range r.Actions {
		if a.ActionType == "lead" {
			return parseInt(a.Value)
		}
	}
	return 0
}

type leadForm struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type leadFormsResponse struct {
	Data []leadForm `json:"data"`
}

type fieldData struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type leadRow struct {
	ID          string      `json:"id"`
	CreatedTime string      `json:"created_time"`
	FieldData   []fieldData `json:"field_data"`
}

type leadsResponse struct {
	Data []leadRow `json:"data"`
}

type accountRow struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AccountStatus int    `json:"account_status"`
	Currency      string `json:"currency"`
	Timezone      string `json:"timezone_name"`
}

type accountsResponse struct {
	Data []accountRow `json:"data"`
}

func parseFloat(v string) float64 {
	f, _ := strconv.ParseFloat(v, 64)
	return f
}

func parseInt(v string) int64 {
	i, _ := strconv.ParseInt(v, 10, 64)
	return i
}
