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

// GetLeads percorre os formulários de lead da conta e coleta os leads de
// cada um. Formulários individuais com falha são registrados e pulados; a
// listagem segue com o que foi obtido.
func (a *Adapter) GetLeads(ctx context.Context, params domain.QueryParams) domain.ResponseEnvelope[domain.LeadData] {
	accountID, err := a.ResolveAccountID(params)
	if err != nil {
		return platform.Failure[domain.LeadData](a.Kind(), err)
	}

	query := url.Values{}
	query.Set("fields", "id,name")

	body, err := a.Client().Call(ctx, a.Kind(), a.Auth(), a.Config().BaseURL, http.MethodGet, "/act_"+accountID+"/leadgen_forms", query, nil)
	if err != nil {
		return platform.Failure[domain.LeadData](a.Kind(), err)
	}

	var forms leadFormsResponse
	if err := json.Unmarshal(body, &forms); err != nil {
		return platform.Failure[domain.LeadData](a.Kind(), err)
	}

	leads := make([]domain.LeadData, 0)
	for _, form := range forms.Data {
		formLeads, err := a.fetchFormLeads(ctx, form.ID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"platform": a.Kind(),
				"form_id":  form.ID,
				"error":    err.Error(),
			}).Warn("meta: failed to fetch leads for form, skipping")
			continue
		}
		leads = append(leads, formLeads...)
	}

	return platform.Success(a.Kind(), leads, nil)
}

func (a *Adapter) fetchFormLeads(ctx context.Context, formID string) ([]domain.LeadData, error) {
	query := url.Values{}
	query.Set("fields", "id,created_time,field_data")

	body, err := a.Client().Call(ctx, a.Kind(), a.Auth(), a.Config().BaseURL, http.MethodGet, "/"+formID+"/leads", query, nil)
	if err != nil {
		return nil, err
	}

	var resp leadsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}

	leads := make([]domain.LeadData, 0, len(resp.Data))
	for _, row := range resp.Data {
		leads = append(leads, a.mapLead(row))
	}
	return leads, nil
}

func (a *Adapter) mapLead(row leadRow) domain.LeadData {
	raw, _ := json.Marshal(row)

	lead := domain.LeadData{
		ID:       row.ID,
		Status:   domain.LeadStatusNew,
		Platform: a.Kind(),
		Raw:      raw,
	}

	if t := parseGraphTime(row.CreatedTime); t != nil {
		lead.CreatedAt = *t
	} else {
		lead.CreatedAt = time.Now()
	}

	for _, field := range row.FieldData {
		if len(field.Values) == 0 {
			continue
		}
		switch field.Name {
		case "full_name", "name":
			lead.Name = field.Values[0]
		case "email":
			lead.Email = field.Values[0]
		case "phone_number", "phone":
			lead.Phone = field.Values[0]
		}
	}

	return lead
}

func (a *Adapter) GetLeadByID(ctx context.Context, id string, _ domain.QueryParams) (domain.LeadData, bool) {
	query := url.Values{}
	query.Set("fields", "id,created_time,field_data")

	body, err := a.Client().Call(ctx, a.Kind(), a.Auth(), a.Config().BaseURL, http.MethodGet, "/"+id, query, nil)
	if err != nil {
		return domain.LeadData{}, false
	}

	var row leadRow
	if err := json.Unmarshal(body, &row); err != nil {
		return domain.LeadData{}, false
	}

	return a.mapLead(row), true
}

// SetupLeadWebhook assina as notificações de leadgen no app configurado
func (a *Adapter) SetupLeadWebhook(ctx context.Context, cfg domain.LeadWebhookConfig) error {
	appID := a.Config().Credential(CredClientID)
	if appID == "" {
		return platform.NewConfigError("client_id necessário para assinar webhooks de lead")
	}

	payload := map[string]any{
		"object":       "page",
		"callback_url": cfg.CallbackURL,
		"verify_token": cfg.VerifyToken,
		"fields":       cfg.Fields,
	}
	if len(cfg.Fields) == 0 {
		payload["fields"] = []string{"leadgen"}
	}

	_, err := a.Client().Call(ctx, a.Kind(), a.Auth(), a.Config().BaseURL, http.MethodPost, "/"+appID+"/subscriptions", nil, payload)
	return err
}

func (a *Adapter) RemoveLeadWebhook(ctx context.Context) error {
	appID := a.Config().Credential(CredClientID)
	if appID == "" {
		return platform.NewConfigError("client_id necessário para remover webhooks de lead")
	}

	query := url.Values{}
	query.Set("object", "page")

	_, err := a.Client().Call(ctx, a.Kind(), a.Auth(), a.Config().BaseURL, http.MethodDelete, "/"+appID+"/subscriptions", query, nil)
	return err
}
