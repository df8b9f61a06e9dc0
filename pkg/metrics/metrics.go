package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total de requisições HTTP recebidas",
		},
		[]string{"method", "path", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duração das requisições HTTP em segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	vendorAPICalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendor_api_calls_total",
			Help: "Total de chamadas às APIs dos fornecedores de tracking",
		},
		[]string{"platform", "outcome"},
	)

	vendorAPIDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vendor_api_call_duration_seconds",
			Help:    "Duração das chamadas às APIs dos fornecedores em segundos",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"platform"},
	)

	syncRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracking_sync_runs_total",
			Help: "Total de sincronizações executadas por plataforma",
		},
		[]string{"platform", "status"},
	)
)

// ObserveHTTPRequest registra uma requisição HTTP concluída
func ObserveHTTPRequest(method, path, statusCode string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveVendorCall registra uma chamada a um fornecedor
func ObserveVendorCall(platform, outcome string, duration time.Duration) {
	vendorAPICalls.WithLabelValues(platform, outcome).Inc()
	vendorAPIDuration.WithLabelValues(platform).Observe(duration.Seconds())
}

// ObserveSyncRun registra o resultado de uma sincronização
func ObserveSyncRun(platform, status string) {
	syncRuns.WithLabelValues(platform, status).Inc()
}
