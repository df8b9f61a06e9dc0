package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
	"github.com/Gabryellzs/blecks-david-sub000/internal/usecases/tracking"
	"github.com/Gabryellzs/blecks-david-sub000/pkg/apiErrors"
	"github.com/Gabryellzs/blecks-david-sub000/pkg/log"
	"github.com/Gabryellzs/blecks-david-sub000/pkg/utils"
)

// queryParamsFromRequest monta os parâmetros de consulta a partir da URL.
// Datas inválidas são rejeitadas aqui; janelas ausentes são decisão de cada
// adaptador.
func queryParamsFromRequest(r *http.Request) (domain.QueryParams, error) {
	var params domain.QueryParams

	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return params, err
	}
	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return params, err
	}

	params.StartDate = *startDate
	params.EndDate = *endDate
	params.AccountID = r.URL.Query().Get("account_id")
	params.CampaignID = r.URL.Query().Get("campaign_id")
	params.AdID = r.URL.Query().Get("ad_id")
	params.Cursor = r.URL.Query().Get("cursor")

	if pageSize := r.URL.Query().Get("page_size"); pageSize != "" {
		size, err := strconv.Atoi(pageSize)
		if err != nil {
			return params, err
		}
		params.PageSize = size
	}

	return params, nil
}

func GetAllCampaigns(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params, err := queryParamsFromRequest(r)
		if err != nil {
			logger.WithError(err).Warn("tracking: invalid query parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		env := service.GetAllCampaigns(r.Context(), params)
		writeEnvelope(w, env, logger, "campaigns")
	})
}

func GetAllAds(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params, err := queryParamsFromRequest(r)
		if err != nil {
			logger.WithError(err).Warn("tracking: invalid query parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		env := service.GetAllAds(r.Context(), params)
		writeEnvelope(w, env, logger, "ads")
	})
}

func GetAllLeads(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params, err := queryParamsFromRequest(r)
		if err != nil {
			logger.WithError(err).Warn("tracking: invalid query parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		env := service.GetAllLeads(r.Context(), params)
		writeEnvelope(w, env, logger, "leads")
	})
}

func GetAllMetrics(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params, err := queryParamsFromRequest(r)
		if err != nil {
			logger.WithError(err).Warn("tracking: invalid query parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		env := service.GetAllMetrics(r.Context(), params)
		writeEnvelope(w, env, logger, "metrics")
	})
}

// GetPlatformCampaigns despacha a leitura de campanhas para uma única plataforma
func GetPlatformCampaigns(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		kind := domain.PlatformKind(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		params, err := queryParamsFromRequest(r)
		if err != nil {
			logger.WithError(err).Warn("tracking: invalid query parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		env := service.GetPlatformCampaigns(r.Context(), kind, params)
		writeEnvelope(w, env, logger, "campaigns")
	})
}

// GetPlatformAds despacha a leitura de anúncios para uma única plataforma
func GetPlatformAds(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		kind := domain.PlatformKind(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		params, err := queryParamsFromRequest(r)
		if err != nil {
			logger.WithError(err).Warn("tracking: invalid query parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		env := service.GetPlatformAds(r.Context(), kind, params)
		writeEnvelope(w, env, logger, "ads")
	})
}

// GetPlatformLeads despacha a leitura de leads para uma única plataforma
func GetPlatformLeads(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		kind := domain.PlatformKind(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		params, err := queryParamsFromRequest(r)
		if err != nil {
			logger.WithError(err).Warn("tracking: invalid query parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		env := service.GetPlatformLeads(r.Context(), kind, params)
		writeEnvelope(w, env, logger, "leads")
	})
}

// GetPlatformMetrics despacha a leitura de métricas para uma única plataforma
func GetPlatformMetrics(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		kind := domain.PlatformKind(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		params, err := queryParamsFromRequest(r)
		if err != nil {
			logger.WithError(err).Warn("tracking: invalid query parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		env := service.GetPlatformMetrics(r.Context(), kind, params)
		writeEnvelope(w, env, logger, "metrics")
	})
}

// writeEnvelope serializa um envelope de resposta. Envelopes de falha mantêm
// o corpo completo (inclusive dados parciais) e o status HTTP vem do código
// de erro agregado.
func writeEnvelope[T any](w http.ResponseWriter, env domain.ResponseEnvelope[T], logger log.Logger, resource string) {
	w.Header().Set("Content-Type", "application/json")

	if !env.Success && env.Error != nil {
		logger.WithFields(log.Fields{
			"resource": resource,
			"error":    env.Error.Message,
		}).Warn("tracking: aggregation finished with failures")
		w.WriteHeader(apiErrors.HTTPStatus(env.Error.Code))
	}

	if err := json.NewEncoder(w).Encode(env); err != nil {
		logger.WithError(err).Error("tracking: failed to encode response")
	}
}
