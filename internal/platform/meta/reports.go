package meta

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
	"github.com/Gabryellzs/blecks-david-sub000/internal/platform"
	"github.com/Gabryellzs/blecks-david-sub000/pkg/utils"
)

// reportStore guarda as configurações de relatório do adaptador. O Graph API
// não tem um registro de relatórios agendados nesta camada, então a agenda
// vive na instância e é resolvida contra /insights no momento da execução.
type reportStore struct {
	mu      sync.RWMutex
	reports map[string]domain.ReportConfig
}

func newReportStore() *reportStore {
	return &reportStore{reports: make(map[string]domain.ReportConfig)}
}

// CreateReport registra uma configuração de relatório de insights. O tipo é
// obrigatório; o ID é gerado aqui e devolvido ao chamador.
func (a *Adapter) CreateReport(_ context.Context, cfg domain.ReportConfig) (domain.ReportConfig, error) {
	if cfg.Type == "" {
		return domain.ReportConfig{}, platform.NewValidationError("type")
	}

	cfg.ID = utils.NewID()
	cfg.Platform = a.Kind()
	cfg.CreatedAt = time.Now()

	a.reports.mu.Lock()
	a.reports.reports[cfg.ID] = cfg
	a.reports.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"report_id": cfg.ID,
		"type":      cfg.Type,
	}).Info("meta: report registered")

	return cfg, nil
}

func (a *Adapter) GetReport(_ context.Context, id string) (domain.ReportConfig, bool) {
	a.reports.mu.RLock()
	defer a.reports.mu.RUnlock()

	cfg, ok := a.reports.reports[id]
	return cfg, ok
}

func (a *Adapter) DeleteReport(_ context.Context, id string) error {
	a.reports.mu.Lock()
	defer a.reports.mu.Unlock()

	if _, ok := a.reports.reports[id]; !ok {
		return &platform.Error{
			Code:    platform.CodePlatformNotFound,
			Message: "relatório não encontrado: " + id,
		}
	}

	delete(a.reports.reports, id)
	return nil
}
