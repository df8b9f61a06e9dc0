package handler

import (
	"net/http"

	"github.com/Gabryellzs/blecks-david-sub000/internal/usecases/tracking"
	"github.com/Gabryellzs/blecks-david-sub000/pkg/apiErrors"
	"github.com/Gabryellzs/blecks-david-sub000/pkg/log"
)

// TriggerSync dispara uma sincronização imediata de todas as plataformas e
// responde com um status por plataforma
func TriggerSync(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params, err := queryParamsFromRequest(r)
		if err != nil {
			logger.WithError(err).Warn("sync: invalid query parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		logger.Info("sync: manual synchronization triggered")
		statuses := service.SyncAllPlatforms(r.Context(), params)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(statuses)
	})
}

// GetSyncStatus responde com o resultado da última sincronização de cada plataforma
func GetSyncStatus(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		statuses := service.GetAllSyncStatus()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(statuses)
	})
}

// TestConnections sonda a conectividade de todas as plataformas registradas
func TestConnections(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		results := service.TestAllConnections(r.Context())

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(results)
	})
}

// GetRateLimits responde com os números de quota de todas as plataformas
func GetRateLimits(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limits := service.GetAllRateLimitInfo(r.Context())

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(limits)
	})
}
