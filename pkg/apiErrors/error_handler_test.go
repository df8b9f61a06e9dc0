package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gabryellzs/blecks-david-sub000/internal/platform"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrInsufficientPrivilege, http.StatusForbidden},
		{ErrMissingRequiredData, http.StatusBadRequest},
		{ErrInternalServer, http.StatusInternalServerError},
		{platform.CodeValidation, http.StatusBadRequest},
		{platform.CodeAuth, http.StatusUnauthorized},
		{platform.CodeAPI, http.StatusBadGateway},
		{platform.CodeNotSupported, http.StatusNotImplemented},
		{platform.CodePlatformNotFound, http.StatusNotFound},
		{platform.CodeAggregate, http.StatusBadGateway},
		{"CODIGO_DESCONHECIDO", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.code))
		})
	}
}

func TestWriteError(t *testing.T) {
	recorder := httptest.NewRecorder()

	WriteError(recorder, platform.CodePlatformNotFound, "plataforma não registrada", []string{"kwai"})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.Equal(t, platform.CodePlatformNotFound, body.Code)
	assert.Equal(t, "plataforma não registrada", body.Message)
}
