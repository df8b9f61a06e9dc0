package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
	"github.com/Gabryellzs/blecks-david-sub000/internal/platform"
	"github.com/Gabryellzs/blecks-david-sub000/internal/usecases/tracking"
	"github.com/Gabryellzs/blecks-david-sub000/pkg/apiErrors"
)

// AddPlatformRequest é o corpo aceito para registrar uma plataforma
type AddPlatformRequest struct {
	Kind   domain.PlatformKind   `json:"kind"`
	Config domain.PlatformConfig `json:"config"`
}

// ListPlatforms lista as plataformas registradas com credenciais mascaradas
func ListPlatforms(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		configs := service.Platforms()

		masked := make([]domain.PlatformConfig, 0, len(configs))
		for _, cfg := range configs {
			masked = append(masked, maskCredentials(cfg))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(masked)
	})
}

// AvailablePlatforms lista as plataformas que a factory sabe construir, com
// seus defaults de conexão
func AvailablePlatforms(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kinds := service.AvailableKinds()

		defaults := make(map[domain.PlatformKind]domain.PlatformConfig, len(kinds))
		for _, kind := range kinds {
			if cfg, ok := service.Defaults(kind); ok {
				defaults[kind] = maskCredentials(cfg)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"kinds":    kinds,
			"defaults": defaults,
		})
	})
}

// ValidatePlatformConfig valida uma configuração sem registrar a plataforma
func ValidatePlatformConfig(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req AddPlatformRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result := service.ValidateConfig(req.Kind, req.Config)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	})
}

// AddPlatform registra uma nova plataforma no serviço de rastreamento
func AddPlatform(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req AddPlatformRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Kind == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O campo kind é obrigatório", nil)
			return
		}

		if err := service.AddPlatform(r.Context(), req.Kind, req.Config); err != nil {
			logrus.WithError(err).WithField("platform", req.Kind).Error("platforms: failed to register platform")
			writePlatformError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"registered": req.Kind,
		})
	})
}

// RemovePlatform descarta o adaptador de uma plataforma registrada
func RemovePlatform(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kind := domain.PlatformKind(httprouter.ParamsFromContext(r.Context()).ByName("id"))

		if err := service.RemovePlatform(kind); err != nil {
			writePlatformError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// maskCredentials substitui os valores de credencial por um marcador fixo,
// preservando as chaves para o chamador saber o que está configurado
func maskCredentials(cfg domain.PlatformConfig) domain.PlatformConfig {
	if len(cfg.Credentials) == 0 {
		return cfg
	}

	masked := make(map[string]string, len(cfg.Credentials))
	for key, value := range cfg.Credentials {
		if value == "" {
			masked[key] = ""
			continue
		}
		masked[key] = "********"
	}
	cfg.Credentials = masked
	return cfg
}

// writePlatformError traduz um erro do contrato de plataforma para a resposta HTTP
func writePlatformError(w http.ResponseWriter, err error) {
	perr := platform.Normalize(err)
	apiErrors.WriteError(w, perr.Code, perr.Message, perr.Details)
}
