package apikey

import (
	"encoding/json"

	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
)

// vendorResponse é o envelope comum dos fornecedores da família: código de
// status próprio, mensagem e um bloco data com a lista paginada
type vendorResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    vendorData      `json:"data"`
	ReqID   string          `json:"request_id,omitempty"`
	Extra   json.RawMessage `json:"-"`
}

type vendorData struct {
	List     json.RawMessage `json:"list"`
	PageInfo *vendorPage     `json:"page_info,omitempty"`
}

type vendorPage struct {
	Page        int `json:"page"`
	TotalPage   int `json:"total_page"`
	TotalNumber int `json:"total_number"`
}

type campaignRow struct {
	CampaignID      json.Number `json:"campaign_id"`
	CampaignName    string      `json:"campaign_name"`
	OperationStatus string      `json:"operation_status"`
	ObjectiveType   string      `json:"objective_type,omitempty"`
	Budget          json.Number `json:"budget,omitempty"`
	Spend           json.Number `json:"spend,omitempty"`
	Impressions     json.Number `json:"impressions,omitempty"`
	Clicks          json.Number `json:"clicks,omitempty"`
	Reach           json.Number `json:"reach,omitempty"`
}

func (r campaignRow) sample() domain.MetricSample {
	return domain.MetricSample{
		Spend:       numberFloat(r.Spend),
		Impressions: numberInt(r.Impressions),
		Clicks:      numberInt(r.Clicks),
		Reach:       numberInt(r.Reach),
	}
}

type adRow struct {
	AdID            json.Number `json:"ad_id"`
	AdName          string      `json:"ad_name"`
	CampaignID      json.Number `json:"campaign_id"`
	OperationStatus string      `json:"operation_status"`
	Spend           json.Number `json:"spend,omitempty"`
	Impressions     json.Number `json:"impressions,omitempty"`
	Clicks          json.Number `json:"clicks,omitempty"`
}

func (r adRow) sample() domain.MetricSample {
	return domain.MetricSample{
		Spend:       numberFloat(r.Spend),
		Impressions: numberInt(r.Impressions),
		Clicks:      numberInt(r.Clicks),
	}
}

type reportRow struct {
	Spend       json.Number `json:"spend"`
	Impressions json.Number `json:"impressions"`
	Clicks      json.Number `json:"clicks"`
	Reach       json.Number `json:"reach"`
	Conversions json.Number `json:"conversions"`
}

func (r reportRow) sample() domain.MetricSample {
	return domain.MetricSample{
		Spend:       numberFloat(r.Spend),
		Impressions: numberInt(r.Impressions),
		Clicks:      numberInt(r.Clicks),
		Reach:       numberInt(r.Reach),
		Leads:       numberInt(r.Conversions),
	}
}

// Os fornecedores da família serializam métricas ora como número, ora como
// string; json.Number absorve as duas formas
func numberFloat(n json.Number) float64 {
	v, _ := n.Float64()
	return v
}

func numberInt(n json.Number) int64 {
	if v, err := n.Int64(); err == nil {
		return v
	}
	v, _ := n.Float64()
	return int64(v)
}
