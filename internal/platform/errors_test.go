package platform

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantNil  bool
	}{
		{
			name:    "Erro nil retorna nil",
			err:     nil,
			wantNil: true,
		},
		{
			name:     "Erro estruturado passa inalterado",
			err:      NewAuthError("token expirado"),
			wantCode: CodeAuth,
		},
		{
			name:     "Erro comum recebe UNKNOWN_ERROR",
			err:      errors.New("falha inesperada"),
			wantCode: CodeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.err)

			if tt.wantNil {
				assert.Nil(t, result)
				return
			}

			assert.Equal(t, tt.wantCode, result.Code)
			assert.NotEmpty(t, result.Message)
		})
	}
}

func TestError_Error(t *testing.T) {
	t.Run("Mensagem com detalhes inclui as chaves ausentes", func(t *testing.T) {
		err := NewValidationError("client_id", "client_secret")
		assert.Contains(t, err.Error(), CodeValidation)
		assert.Contains(t, err.Error(), "client_id; client_secret")
	})

	t.Run("Mensagem sem detalhes mostra código e texto", func(t *testing.T) {
		err := NewConfigError("base_url ausente")
		assert.Equal(t, "CONFIG_ERROR: base_url ausente", err.Error())
	})
}

func TestNewAPIError(t *testing.T) {
	err := NewAPIError(429, `{"error":"rate limited"}`)

	assert.Equal(t, CodeAPI, err.Code)
	assert.Equal(t, 429, err.Status)
	assert.Contains(t, err.Message, "429")
	assert.Equal(t, []string{`{"error":"rate limited"}`}, err.Details)
}

func TestNewRefreshUnsupportedError(t *testing.T) {
	err := NewRefreshUnsupportedError()

	// Chave estática exige reenvio manual; o código é de autenticação
	assert.Equal(t, CodeAuth, err.Code)
	assert.Contains(t, err.Message, "manualmente")
}
