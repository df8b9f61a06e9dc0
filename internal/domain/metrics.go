package domain

// MetricSample é a tupla numérica bruta extraída de um registro do fornecedor,
// insumo da agregação de métricas
type MetricSample struct {
	Spend       float64 `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Reach       int64   `json:"reach"`
	Leads       int64   `json:"leads"`
}

// TrackingMetrics são os KPIs agregados sobre um conjunto de registros.
// Toda média derivada vale 0 quando o denominador é 0, nunca NaN/Inf.
type TrackingMetrics struct {
	TotalSpend       float64      `json:"total_spend"`
	TotalImpressions int64        `json:"total_impressions"`
	TotalClicks      int64        `json:"total_clicks"`
	TotalReach       int64        `json:"total_reach"`
	TotalLeads       int64        `json:"total_leads"`
	CTR              float64      `json:"ctr"`
	CPC              float64      `json:"cpc"`
	CPM              float64      `json:"cpm"`
	Frequency        float64      `json:"frequency"`
	LeadCost         float64      `json:"lead_cost"`
	ConversionRate   float64      `json:"conversion_rate"`
	Platform         PlatformKind `json:"platform,omitempty"`
}

func (m TrackingMetrics) PlatformKind() PlatformKind { return m.Platform }

// Sample reduz as métricas agregadas de volta para a tupla bruta,
// permitindo consolidar métricas de várias plataformas com a mesma matemática
func (m TrackingMetrics) Sample() MetricSample {
	return MetricSample{
		Spend:       m.TotalSpend,
		Impressions: m.TotalImpressions,
		Clicks:      m.TotalClicks,
		Reach:       m.TotalReach,
		Leads:       m.TotalLeads,
	}
}
