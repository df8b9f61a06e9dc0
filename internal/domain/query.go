package domain

import (
	"time"
)

// QueryParams é a janela/filtro de uma requisição de leitura.
// StartDate e EndDate são obrigatórios para qualquer leitura; a ausência de
// AccountID cai para a conta padrão configurada no adaptador.
type QueryParams struct {
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	AccountID  string    `json:"account_id,omitempty"`
	CampaignID string    `json:"campaign_id,omitempty"`
	AdID       string    `json:"ad_id,omitempty"`
	Cursor     string    `json:"cursor,omitempty"`
	PageSize   int       `json:"page_size,omitempty"`
	Dimensions []string  `json:"dimensions,omitempty"`
	Metrics    []string  `json:"metrics,omitempty"`
}

// HasWindow indica se o período obrigatório de leitura foi informado
func (q QueryParams) HasWindow() bool {
	return !q.StartDate.IsZero() && !q.EndDate.IsZero()
}
