package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
	"github.com/Gabryellzs/blecks-david-sub000/pkg/metrics"
)

const defaultCallTimeout = 30 * time.Second

// maxErrorBodyBytes limita o trecho do corpo carregado em erros de API
const maxErrorBodyBytes = 2048

// Client é o cliente HTTP autenticado compartilhado pelos adaptadores.
// Opcionalmente aplica um limitador de requisições por plataforma; os números
// de quota reportados pelos fornecedores continuam apenas informativos.
type Client struct {
	httpClient *http.Client

	mu       sync.Mutex
	limiters map[domain.PlatformKind]*rate.Limiter
}

// NewClient cria um cliente com timeout por chamada. Zero usa o padrão.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		limiters:   make(map[domain.PlatformKind]*rate.Limiter),
	}
}

// SetRateLimit habilita um limitador local de requisições para uma
// plataforma. É um recurso opcional de quem compõe o serviço, externo ao
// contrato dos adaptadores.
func (c *Client) SetRateLimit(kind domain.PlatformKind, perSecond float64, burst int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.limiters[kind] = rate.NewLimiter(rate.Limit(perSecond), burst)
}

func (c *Client) limiter(kind domain.PlatformKind) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.limiters[kind]
}

// Call executa uma chamada autenticada ao fornecedor: exige token de acesso
// corrente, resolve a URL base, anexa bearer + JSON e trata qualquer resposta
// não-2xx como erro de API carregando o status HTTP.
func (c *Client) Call(
	ctx context.Context,
	kind domain.PlatformKind,
	auth *domain.PlatformAuth,
	baseURL, method, path string,
	query url.Values,
	body any,
) ([]byte, error) {
	return c.CallWithHeaders(ctx, kind, auth, baseURL, method, path, query, nil, body)
}

// CallWithHeaders é a variante de Call para fornecedores que exigem
// cabeçalhos próprios além do bearer (ex.: developer-token do Google Ads)
func (c *Client) CallWithHeaders(
	ctx context.Context,
	kind domain.PlatformKind,
	auth *domain.PlatformAuth,
	baseURL, method, path string,
	query url.Values,
	headers http.Header,
	body any,
) ([]byte, error) {
	if auth == nil || auth.AccessToken == "" {
		return nil, NewAuthError("plataforma %s sem token de acesso; chame Authenticate antes", kind)
	}
	if baseURL == "" {
		return nil, NewConfigError("plataforma %s sem base_url configurada", kind)
	}

	if limiter := c.limiter(kind); limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return nil, errors.Wrap(err, "aguardando limitador de requisições")
		}
	}

	endpoint := strings.TrimSuffix(baseURL, "/") + path
	if len(query) > 0 {
		endpoint = endpoint + "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "serializando corpo da requisição")
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "criando requisição")
	}
	req.Header.Set("Authorization", "Bearer "+auth.AccessToken)
	req.Header.Set("Content-Type", "application/json")
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveVendorCall(kind.String(), "network_error", time.Since(start))
		return nil, errors.Wrapf(err, "chamando %s %s", method, path)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ObserveVendorCall(kind.String(), "read_error", time.Since(start))
		return nil, errors.Wrap(err, "lendo resposta do fornecedor")
	}

	metrics.ObserveVendorCall(kind.String(), resp.Status, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt := string(respBody)
		if len(excerpt) > maxErrorBodyBytes {
			excerpt = excerpt[:maxErrorBodyBytes]
		}

		logrus.WithFields(logrus.Fields{
			"platform": kind,
			"method":   method,
			"path":     path,
			"status":   resp.StatusCode,
		}).Warn("Resposta de erro da API do fornecedor")

		return nil, NewAPIError(resp.StatusCode, excerpt)
	}

	return respBody, nil
}
