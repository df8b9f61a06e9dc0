package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Gabryellzs/blecks-david-sub000/internal/api/handler/router"
	"github.com/Gabryellzs/blecks-david-sub000/internal/usecases/authenticating"
	"github.com/Gabryellzs/blecks-david-sub000/internal/usecases/tracking"
	"github.com/Gabryellzs/blecks-david-sub000/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Platforms(service tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/platforms",
			Method:      http.MethodGet,
			Handler:     ListPlatforms(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/platforms/available",
			Method:      http.MethodGet,
			Handler:     AvailablePlatforms(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/platforms/validate",
			Method:      http.MethodPost,
			Handler:     ValidatePlatformConfig(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/platforms",
			Method:      http.MethodPost,
			Handler:     AddPlatform(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/platforms/:id",
			Method:      http.MethodDelete,
			Handler:     RemovePlatform(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Tracking(service tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/tracking/campaigns",
			Method:      http.MethodGet,
			Handler:     GetAllCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tracking/ads",
			Method:      http.MethodGet,
			Handler:     GetAllAds(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tracking/leads",
			Method:      http.MethodGet,
			Handler:     GetAllLeads(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tracking/metrics",
			Method:      http.MethodGet,
			Handler:     GetAllMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tracking/platforms/:id/campaigns",
			Method:      http.MethodGet,
			Handler:     GetPlatformCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tracking/platforms/:id/ads",
			Method:      http.MethodGet,
			Handler:     GetPlatformAds(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tracking/platforms/:id/leads",
			Method:      http.MethodGet,
			Handler:     GetPlatformLeads(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tracking/platforms/:id/metrics",
			Method:      http.MethodGet,
			Handler:     GetPlatformMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Sync(service tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sync",
			Method:      http.MethodPost,
			Handler:     TriggerSync(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/sync/status",
			Method:      http.MethodGet,
			Handler:     GetSyncStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/connections",
			Method:      http.MethodGet,
			Handler:     TestConnections(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/rate-limits",
			Method:      http.MethodGet,
			Handler:     GetRateLimits(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}
