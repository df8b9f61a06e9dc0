package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		samples  []domain.MetricSample
		validate func(t *testing.T, result domain.TrackingMetrics)
	}{
		{
			name:    "Lista vazia - deve retornar métricas zeradas sem erro",
			samples: nil,
			validate: func(t *testing.T, result domain.TrackingMetrics) {
				assert.Equal(t, 0.0, result.TotalSpend)
				assert.Equal(t, int64(0), result.TotalImpressions)
				assert.Equal(t, 0.0, result.CTR)
				assert.Equal(t, 0.0, result.CPC)
				assert.Equal(t, 0.0, result.CPM)
				assert.Equal(t, 0.0, result.Frequency)
			},
		},
		{
			name: "Amostra única - deve derivar todas as médias",
			samples: []domain.MetricSample{
				{Spend: 100, Impressions: 1000, Clicks: 50, Reach: 500, Leads: 10},
			},
			validate: func(t *testing.T, result domain.TrackingMetrics) {
				assert.Equal(t, 100.0, result.TotalSpend)
				assert.Equal(t, int64(1000), result.TotalImpressions)
				assert.Equal(t, int64(50), result.TotalClicks)
				assert.Equal(t, int64(500), result.TotalReach)
				assert.Equal(t, int64(10), result.TotalLeads)
				assert.InDelta(t, 5.0, result.CTR, 0.0001)     // 50/1000 * 100
				assert.InDelta(t, 2.0, result.CPC, 0.0001)     // 100/50
				assert.InDelta(t, 100.0, result.CPM, 0.0001)   // 100/1000 * 1000
				assert.InDelta(t, 2.0, result.Frequency, 0.0001)
				assert.InDelta(t, 10.0, result.LeadCost, 0.0001)
				assert.InDelta(t, 20.0, result.ConversionRate, 0.0001) // 10/50 * 100
			},
		},
		{
			name: "Várias amostras - médias derivadas dos totais, não das amostras",
			samples: []domain.MetricSample{
				{Spend: 100, Impressions: 1000, Clicks: 50, Reach: 500, Leads: 10},
				{Spend: 200, Impressions: 3000, Clicks: 150, Reach: 1500, Leads: 20},
			},
			validate: func(t *testing.T, result domain.TrackingMetrics) {
				assert.Equal(t, 300.0, result.TotalSpend)
				assert.Equal(t, int64(4000), result.TotalImpressions)
				assert.Equal(t, int64(200), result.TotalClicks)
				assert.InDelta(t, 5.0, result.CTR, 0.0001)   // 200/4000 * 100
				assert.InDelta(t, 1.5, result.CPC, 0.0001)   // 300/200
				assert.InDelta(t, 75.0, result.CPM, 0.0001)  // 300/4000 * 1000
				assert.InDelta(t, 2.0, result.Frequency, 0.0001)
			},
		},
		{
			name: "Denominadores zerados - médias valem 0, nunca NaN ou Inf",
			samples: []domain.MetricSample{
				{Spend: 50, Impressions: 0, Clicks: 0, Reach: 0, Leads: 0},
			},
			validate: func(t *testing.T, result domain.TrackingMetrics) {
				assert.Equal(t, 50.0, result.TotalSpend)
				assert.Equal(t, 0.0, result.CTR)
				assert.Equal(t, 0.0, result.CPC)
				assert.Equal(t, 0.0, result.CPM)
				assert.Equal(t, 0.0, result.Frequency)
				assert.Equal(t, 0.0, result.LeadCost)
				assert.Equal(t, 0.0, result.ConversionRate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Aggregate(tt.samples))
		})
	}
}

func TestConsolidate(t *testing.T) {
	t.Run("Consolidação de várias plataformas - usa a mesma matemática da agregação", func(t *testing.T) {
		meta := Aggregate([]domain.MetricSample{
			{Spend: 100, Impressions: 1000, Clicks: 50, Reach: 500, Leads: 5},
		})
		tiktok := Aggregate([]domain.MetricSample{
			{Spend: 300, Impressions: 3000, Clicks: 150, Reach: 1500, Leads: 15},
		})

		result := Consolidate([]domain.TrackingMetrics{meta, tiktok})

		assert.Equal(t, 400.0, result.TotalSpend)
		assert.Equal(t, int64(4000), result.TotalImpressions)
		assert.Equal(t, int64(200), result.TotalClicks)
		assert.Equal(t, int64(2000), result.TotalReach)
		assert.Equal(t, int64(20), result.TotalLeads)
		assert.InDelta(t, 5.0, result.CTR, 0.0001)
		assert.InDelta(t, 2.0, result.CPC, 0.0001)
	})

	t.Run("Consolidação de lista vazia - métricas zeradas", func(t *testing.T) {
		result := Consolidate(nil)
		assert.Equal(t, 0.0, result.TotalSpend)
		assert.Equal(t, 0.0, result.CTR)
	})
}

func TestSafeDiv(t *testing.T) {
	assert.Equal(t, 0.0, safeDiv(10, 0))
	assert.Equal(t, 2.5, safeDiv(5, 2))
	assert.Equal(t, 0.0, safeDiv(0, 0))
}
