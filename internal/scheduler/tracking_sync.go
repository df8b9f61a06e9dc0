package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/Gabryellzs/blecks-david-sub000/infrastructure/repository"
	"github.com/Gabryellzs/blecks-david-sub000/internal/config"
	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
)

// TrackingSyncConfig representa a configuração do agendador de sincronização
type TrackingSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// Syncer é o recorte do serviço de rastreamento que o agendador consome
type Syncer interface {
	SyncAllPlatforms(ctx context.Context, params domain.QueryParams) []domain.SyncStatus
	GetPlatformMetrics(ctx context.Context, kind domain.PlatformKind, params domain.QueryParams) domain.ResponseEnvelope[domain.TrackingMetrics]
}

// TrackingSyncService gerencia o agendamento e execução da sincronização
// periódica de todas as plataformas registradas
type TrackingSyncService struct {
	scheduler           *gocron.Scheduler
	config              TrackingSyncConfig
	tracker             Syncer
	syncStatusRepo      repository.SyncStatusRepository
	snapshotRepo        repository.MetricsSnapshotRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewTrackingSyncService cria uma nova instância do serviço de sincronização
func NewTrackingSyncService(
	tracker Syncer,
	syncStatusRepo repository.SyncStatusRepository,
	snapshotRepo repository.MetricsSnapshotRepository,
	appConfig *config.Config,
) *TrackingSyncService {
	// Criar a configuração com base na config global
	syncConfig := TrackingSyncConfig{
		CronSchedule: appConfig.TrackingSync.CronSchedule,
		LookbackDays: appConfig.TrackingSync.LookbackDays,
		SyncEnabled:  appConfig.TrackingSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de plataformas carregada")

	return &TrackingSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		tracker:        tracker,
		syncStatusRepo: syncStatusRepo,
		snapshotRepo:   snapshotRepo,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *TrackingSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização periódica de plataformas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de plataformas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.SyncAllPlatforms(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de plataformas: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de plataformas")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncAllPlatforms dispara uma rodada completa de sincronização, persistindo o
// status de cada plataforma e um snapshot diário das métricas agregadas.
// Rodadas sobrepostas são ignoradas.
func (s *TrackingSyncService) SyncAllPlatforms(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de plataformas já em andamento, ignorando")
		return
	}
	startTime := time.Now()
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização periódica de todas as plataformas")

	params := domain.QueryParams{
		StartDate: startTime.AddDate(0, 0, -s.config.LookbackDays),
		EndDate:   startTime,
	}

	statuses := s.tracker.SyncAllPlatforms(ctx, params)

	succeeded := 0
	for i := range statuses {
		status := statuses[i]
		if status.Status == domain.SyncSuccess {
			succeeded++
		}

		if err := s.syncStatusRepo.SaveOrUpdate(&status); err != nil {
			logrus.WithError(err).WithField("platform", status.Platform).Error("Erro ao persistir status de sincronização")
			continue
		}

		s.snapshotPlatformMetrics(ctx, status.Platform, params)
	}

	logrus.WithFields(logrus.Fields{
		"platforms": len(statuses),
		"succeeded": succeeded,
		"elapsed":   time.Since(startTime).String(),
	}).Info("Sincronização periódica de plataformas concluída")
}

// snapshotPlatformMetrics grava o retrato diário das métricas de uma plataforma
func (s *TrackingSyncService) snapshotPlatformMetrics(ctx context.Context, kind domain.PlatformKind, params domain.QueryParams) {
	env := s.tracker.GetPlatformMetrics(ctx, kind, params)
	if !env.Success || len(env.Data) == 0 {
		logrus.WithField("platform", kind).Warn("Métricas indisponíveis para snapshot, pulando")
		return
	}

	metrics := env.Data[0]
	if err := s.snapshotRepo.SaveOrUpdate(kind, time.Now(), &metrics); err != nil {
		logrus.WithError(err).WithField("platform", kind).Error("Erro ao persistir snapshot de métricas")
	}
}

// IsRunning indica se há uma rodada de sincronização em andamento
func (s *TrackingSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// LastRun retorna o início e o fim da última rodada de sincronização.
// Zero quando nenhuma rodada rodou (ou ainda não terminou).
func (s *TrackingSyncService) LastRun() (startedAt, completedAt time.Time) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.lastSyncStartedAt, s.lastSyncCompletedAt
}
