// Package meta implementa o adaptador da família de token pré-emitido: a
// dança de autorização OAuth acontece fora desta camada e o adaptador recebe
// um access token já obtido, podendo apenas trocá-lo por um de longa duração.
package meta

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
	"github.com/Gabryellzs/blecks-david-sub000/internal/platform"
)

type Adapter struct {
	*platform.Base
	reports *reportStore
}

// New cria o adaptador Meta a partir da configuração da plataforma
func New(cfg domain.PlatformConfig, client *platform.Client) (platform.TrackingPlatform, error) {
	return &Adapter{
		Base:    platform.NewBase(cfg, client, CredAccessToken, CredClientID, CredClientSecret),
		reports: newReportStore(),
	}, nil
}

// Authenticate exige um access token já obtido pelo chamador. Este adaptador
// não executa o fluxo OAuth interativo.
func (a *Adapter) Authenticate(_ context.Context) error {
	token := a.Config().Credential(CredAccessToken)
	if token == "" {
		return platform.NewAuthError("meta exige um access token pré-emitido; nenhum encontrado nas credenciais")
	}

	a.SetAuth(&domain.PlatformAuth{
		AccessToken: token,
		TokenType:   "bearer",
	})

	return nil
}

// RefreshAuth troca o token de curta duração por um de longa duração via
// fb_exchange_token, mantendo o mesmo "slot" de token
func (a *Adapter) RefreshAuth(ctx context.Context) error {
	cfg := a.Config()

	current := a.Auth()
	token := cfg.Credential(CredAccessToken)
	if current != nil && current.AccessToken != "" {
		token = current.AccessToken
	}

	resp, err := platform.ExchangeLongLivedToken(
		ctx,
		cfg.BaseURL,
		cfg.Credential(CredClientID),
		cfg.Credential(CredClientSecret),
		token,
	)
	if err != nil {
		return err
	}

	a.SetAuth(&domain.PlatformAuth{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
		ExpiresAt:   platform.ExpiryFromSeconds(resp.ExpiresIn),
	})

	logrus.WithField("platform", a.Kind()).Info("Token de longa duração do Meta renovado")

	return nil
}

// ValidateAuth faz uma chamada barata autenticada e reduz qualquer falha a false
func (a *Adapter) ValidateAuth(ctx context.Context) bool {
	query := url.Values{}
	query.Set("fields", "id,name")

	_, err := a.Client().Call(ctx, a.Kind(), a.Auth(), a.Config().BaseURL, http.MethodGet, "/me", query, nil)
	return err == nil
}

func (a *Adapter) TestConnection(ctx context.Context) bool {
	return a.ValidateAuth(ctx)
}

func (a *Adapter) GetAccounts(ctx context.Context) domain.ResponseEnvelope[domain.AccountInfo] {
	query := url.Values{}
	query.Set("fields", "id,name,account_status,currency,timezone_name")

	body, err := a.Client().Call(ctx, a.Kind(), a.Auth(), a.Config().BaseURL, http.MethodGet, "/me/adaccounts", query, nil)
	if err != nil {
		return platform.Failure[domain.AccountInfo](a.Kind(), err)
	}

	var resp accountsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return platform.Failure[domain.AccountInfo](a.Kind(), err)
	}

	accounts := make([]domain.AccountInfo, 0, len(resp.Data))
	for _, row := range resp.Data {
		accounts = append(accounts, a.mapAccount(row))
	}

	return platform.Success(a.Kind(), accounts, nil)
}

func (a *Adapter) GetAccountInfo(ctx context.Context, accountID string) (domain.AccountInfo, bool) {
	query := url.Values{}
	query.Set("fields", "id,name,account_status,currency,timezone_name")

	body, err := a.Client().Call(ctx, a.Kind(), a.Auth(), a.Config().BaseURL, http.MethodGet, "/act_"+accountID, query, nil)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform":   a.Kind(),
			"account_id": accountID,
			"error":      err.Error(),
		}).Debug("meta: account lookup failed")
		return domain.AccountInfo{}, false
	}

	var row accountRow
	if err := json.Unmarshal(body, &row); err != nil {
		return domain.AccountInfo{}, false
	}

	return a.mapAccount(row), true
}

func (a *Adapter) mapAccount(row accountRow) domain.AccountInfo {
	status := "DISABLED"
	if row.AccountStatus == 1 {
		status = "ACTIVE"
	}

	return domain.AccountInfo{
		ID:       row.ID,
		Name:     row.Name,
		Currency: row.Currency,
		Timezone: row.Timezone,
		Status:   status,
		Platform: a.Kind(),
	}
}

// SyncData atualiza campanhas, anúncios e leads da conta padrão e grava um
// único SyncStatus, sobrescrevendo o anterior
func (a *Adapter) SyncData(ctx context.Context, params domain.QueryParams) domain.SyncStatus {
	return a.RunSync(ctx, func(ctx context.Context) (int, error) {
		processed := 0

		campaigns := a.GetCampaigns(ctx, params)
		if !campaigns.Success {
			return processed, envelopeErr(campaigns.Error)
		}
		processed += len(campaigns.Data)

		ads := a.GetAds(ctx, params)
		if !ads.Success {
			return processed, envelopeErr(ads.Error)
		}
		processed += len(ads.Data)

		leads := a.GetLeads(ctx, params)
		if !leads.Success {
			return processed, envelopeErr(leads.Error)
		}
		processed += len(leads.Data)

		return processed, nil
	})
}

func envelopeErr(respErr *domain.ResponseError) error {
	if respErr == nil {
		return platform.NewAuthError("falha sem detalhe de erro")
	}
	return &platform.Error{
		Code:    respErr.Code,
		Message: respErr.Message,
		Details: respErr.Details,
	}
}

// timeRangeQuery monta o parâmetro time_range do Graph API
func timeRangeQuery(params domain.QueryParams) string {
	window := map[string]string{
		"since": params.StartDate.Format(time.DateOnly),
		"until": params.EndDate.Format(time.DateOnly),
	}
	raw, _ := json.Marshal(window)
	return string(raw)
}
