package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
)

func requestWithClaims(claims *domain.Claims) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/v1/platforms", nil)
	if claims == nil {
		return req
	}
	ctx := context.WithValue(req.Context(), ContextKeyUser, claims)
	return req.WithContext(ctx)
}

func TestRoleMiddleware(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		middleware func(http.Handler) http.Handler
		claims     *domain.Claims
		wantStatus int
	}{
		{
			name:       "Admin acessa rota restrita a admin",
			middleware: AdminOnly(),
			claims:     &domain.Claims{UserEmail: "admin@blecks.com", UserRole: domain.RoleAdmin},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Viewer é barrado em rota restrita a admin",
			middleware: AdminOnly(),
			claims:     &domain.Claims{UserEmail: "viewer@blecks.com", UserRole: domain.RoleViewer},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "Viewer acessa rota aberta a todos os papéis",
			middleware: AllRoles(),
			claims:     &domain.Claims{UserEmail: "viewer@blecks.com", UserRole: domain.RoleViewer},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Requisição sem claims no contexto é rejeitada",
			middleware: AllRoles(),
			claims:     nil,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Papel desconhecido é barrado",
			middleware: AllRoles(),
			claims:     &domain.Claims{UserEmail: "x@blecks.com", UserRole: "intruso"},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			tt.middleware(okHandler).ServeHTTP(recorder, requestWithClaims(tt.claims))

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
