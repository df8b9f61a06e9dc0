package platform

import (
	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
	"github.com/Gabryellzs/blecks-david-sub000/pkg/utils"
)

// Aggregate soma as tuplas brutas e deriva as médias de desempenho.
// Cada média é protegida contra denominador zero: o resultado é sempre um
// número, nunca NaN/Inf. Lista vazia produz métricas zeradas, não erro.
func Aggregate(samples []domain.MetricSample) domain.TrackingMetrics {
	var out domain.TrackingMetrics

	for _, s := range samples {
		out.TotalSpend += s.Spend
		out.TotalImpressions += s.Impressions
		out.TotalClicks += s.Clicks
		out.TotalReach += s.Reach
		out.TotalLeads += s.Leads
	}

	out.CTR = utils.RoundWithTwoDecimalPlace(safeDiv(float64(out.TotalClicks), float64(out.TotalImpressions)) * 100)
	out.CPC = utils.RoundWithTwoDecimalPlace(safeDiv(out.TotalSpend, float64(out.TotalClicks)))
	out.CPM = utils.RoundWithTwoDecimalPlace(safeDiv(out.TotalSpend, float64(out.TotalImpressions)) * 1000)
	out.Frequency = utils.RoundWithTwoDecimalPlace(safeDiv(float64(out.TotalImpressions), float64(out.TotalReach)))
	out.LeadCost = utils.RoundWithTwoDecimalPlace(safeDiv(out.TotalSpend, float64(out.TotalLeads)))
	out.ConversionRate = utils.RoundWithTwoDecimalPlace(safeDiv(float64(out.TotalLeads), float64(out.TotalClicks)) * 100)

	return out
}

// Consolidate combina métricas já agregadas de várias plataformas em um único
// registro, aplicando a mesma soma/derivação sobre as tuplas reduzidas
func Consolidate(all []domain.TrackingMetrics) domain.TrackingMetrics {
	samples := make([]domain.MetricSample, 0, len(all))
	for _, m := range all {
		samples = append(samples, m.Sample())
	}
	return Aggregate(samples)
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
