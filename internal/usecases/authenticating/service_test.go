package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Gabryellzs/blecks-david-sub000/internal/config"
	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
)

func newTestConfig(t *testing.T, password string) *config.Config {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &config.Config{
		Auth: config.Auth{
			SecretKey:         "segredo-de-teste",
			AdminEmail:        "admin@blecks.com",
			AdminPasswordHash: string(hash),
			TokenTTL:          time.Hour,
		},
	}
}

func TestService_LoginUser(t *testing.T) {
	cfg := newTestConfig(t, "senha123")
	service := NewService(cfg)

	tests := []struct {
		name      string
		email     string
		password  string
		wantErr   error
		wantToken bool
	}{
		{
			name:      "Login com credenciais corretas retorna token",
			email:     "admin@blecks.com",
			password:  "senha123",
			wantToken: true,
		},
		{
			name:      "Email com maiúsculas e espaços é normalizado",
			email:     "  Admin@Blecks.com ",
			password:  "senha123",
			wantToken: true,
		},
		{
			name:     "Senha incorreta - credenciais inválidas",
			email:    "admin@blecks.com",
			password: "senha-errada",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "Email desconhecido - credenciais inválidas",
			email:    "outro@blecks.com",
			password: "senha123",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "Email vazio - dados obrigatórios ausentes",
			email:    "",
			password: "senha123",
			wantErr:  ErrMissingRequiredData,
		},
		{
			name:     "Senha vazia - dados obrigatórios ausentes",
			email:    "admin@blecks.com",
			password: "",
			wantErr:  ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.LoginUser(tt.email, tt.password)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}

	t.Run("Administrador não configurado - erro de configuração", func(t *testing.T) {
		service := NewService(&config.Config{})

		_, err := service.LoginUser("admin@blecks.com", "senha123")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}

func TestService_ValidateToken(t *testing.T) {
	cfg := newTestConfig(t, "senha123")
	service := NewService(cfg)

	t.Run("Token emitido pelo login é válido e carrega as claims", func(t *testing.T) {
		token, err := service.LoginUser("admin@blecks.com", "senha123")
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, "admin@blecks.com", claims.UserEmail)
		assert.Equal(t, domain.RoleAdmin, claims.UserRole)
		assert.NotNil(t, claims.ExpiresAt)
	})

	t.Run("Token expirado - ErrExpiredToken", func(t *testing.T) {
		claims := domain.Claims{
			UserEmail: "admin@blecks.com",
			UserRole:  domain.RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Auth.SecretKey))
		require.NoError(t, err)

		_, err = service.ValidateToken(token)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Token assinado com outro segredo é rejeitado", func(t *testing.T) {
		token, err := generateJWT("admin@blecks.com", domain.RoleAdmin, "outro-segredo", time.Hour)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)

		assert.Error(t, err)
	})

	t.Run("String arbitrária é rejeitada", func(t *testing.T) {
		_, err := service.ValidateToken("nao-e-um-jwt")
		assert.Error(t, err)
	})
}

func TestHandleEmail(t *testing.T) {
	assert.Equal(t, "admin@blecks.com", handleEmail("  Admin@Blecks.COM  "))
	assert.Equal(t, "admin@blecks.com", handleEmail("admin @blecks.com"))
}
