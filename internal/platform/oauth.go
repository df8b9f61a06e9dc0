package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// TokenResponse é a resposta JSON de um endpoint de token OAuth
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

var tokenHTTPClient = &http.Client{Timeout: 30 * time.Second}

// ExchangeRefreshToken troca um refresh token de longa duração por um novo
// access token no endpoint de token do fornecedor (grant_type=refresh_token,
// corpo form-encoded). O refresh token original é preservado pelo chamador.
func ExchangeRefreshToken(ctx context.Context, tokenURL, clientID, clientSecret, refreshToken string) (*TokenResponse, error) {
	if refreshToken == "" {
		return nil, NewAuthError("refresh token vazio")
	}
	if tokenURL == "" {
		return nil, NewConfigError("token_url não configurada")
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("client_id", clientID)
	form.Set("client_secret", clientSecret)
	form.Set("refresh_token", refreshToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar requisição de token: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return doTokenRequest(req)
}

// ExchangeLongLivedToken troca um token de curta duração por um de longa
// duração no estilo do Graph API (grant_type=fb_exchange_token)
func ExchangeLongLivedToken(ctx context.Context, baseURL, clientID, clientSecret, shortLivedToken string) (*TokenResponse, error) {
	if shortLivedToken == "" {
		return nil, NewAuthError("token de acesso vazio")
	}
	if baseURL == "" {
		return nil, NewConfigError("base_url não configurada")
	}

	params := url.Values{}
	params.Set("grant_type", "fb_exchange_token")
	params.Set("client_id", clientID)
	params.Set("client_secret", clientSecret)
	params.Set("fb_exchange_token", shortLivedToken)

	endpoint := strings.TrimSuffix(baseURL, "/") + "/oauth/access_token?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar requisição de token: %w", err)
	}

	return doTokenRequest(req)
}

func doTokenRequest(req *http.Request) (*TokenResponse, error) {
	resp, err := tokenHTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao chamar endpoint de token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta do endpoint de token: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"url":    req.URL.Host,
		}).Error("Erro ao trocar token")
		return nil, NewAuthError("falha na troca de token (status %d): %s", resp.StatusCode, string(body))
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta de token: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, NewAuthError("o endpoint de token retornou um access token vazio")
	}

	return &tokenResp, nil
}

// ExpiryFromSeconds calcula a expiração absoluta do token com uma margem de
// segurança para renovar antes do vencimento real, como o vencimento nunca é
// exato nos fornecedores
func ExpiryFromSeconds(expiresIn int64) time.Time {
	const buffer = int64(5 * 60)

	safe := expiresIn - buffer
	if safe <= 0 {
		safe = expiresIn / 2
	}

	return time.Now().Add(time.Duration(safe) * time.Second)
}
