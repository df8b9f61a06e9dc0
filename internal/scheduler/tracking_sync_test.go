package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Gabryellzs/blecks-david-sub000/infrastructure/repository/mocks"
	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
	"github.com/Gabryellzs/blecks-david-sub000/internal/platform"
)

// fakeSyncer responde com resultados pré-definidos e registra as janelas pedidas
type fakeSyncer struct {
	mu       sync.Mutex
	statuses []domain.SyncStatus
	metrics  map[domain.PlatformKind]domain.ResponseEnvelope[domain.TrackingMetrics]
	calls    []domain.QueryParams
}

func (f *fakeSyncer) SyncAllPlatforms(ctx context.Context, params domain.QueryParams) []domain.SyncStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, params)
	return f.statuses
}

func (f *fakeSyncer) GetPlatformMetrics(ctx context.Context, kind domain.PlatformKind, params domain.QueryParams) domain.ResponseEnvelope[domain.TrackingMetrics] {
	if env, ok := f.metrics[kind]; ok {
		return env
	}
	return platform.Failure[domain.TrackingMetrics](kind, platform.NewAPIError(500, "sem métricas"))
}

func newTestSyncService(tracker Syncer, statusRepo *mocks.MockSyncStatusRepository, snapshotRepo *mocks.MockMetricsSnapshotRepository) *TrackingSyncService {
	return &TrackingSyncService{
		config: TrackingSyncConfig{
			CronSchedule: "0 3 * * *",
			LookbackDays: 7,
			SyncEnabled:  true,
		},
		tracker:        tracker,
		syncStatusRepo: statusRepo,
		snapshotRepo:   snapshotRepo,
	}
}

func TestTrackingSyncService_SyncAllPlatforms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Persiste um status por plataforma e o snapshot das que têm métricas", func(t *testing.T) {
		statusRepo := mocks.NewMockSyncStatusRepository(ctrl)
		snapshotRepo := mocks.NewMockMetricsSnapshotRepository(ctrl)

		tracker := &fakeSyncer{
			statuses: []domain.SyncStatus{
				{Platform: domain.PlatformMeta, Status: domain.SyncSuccess, RecordsProcessed: 12},
				{Platform: domain.PlatformTikTok, Status: domain.SyncError, Error: "timeout"},
			},
			metrics: map[domain.PlatformKind]domain.ResponseEnvelope[domain.TrackingMetrics]{
				domain.PlatformMeta: platform.Success(domain.PlatformMeta, []domain.TrackingMetrics{
					{TotalSpend: 100, Platform: domain.PlatformMeta},
				}, nil),
			},
		}

		statusRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(status *domain.SyncStatus) error {
				assert.Contains(t, []domain.PlatformKind{domain.PlatformMeta, domain.PlatformTikTok}, status.Platform)
				return nil
			}).
			Times(2)

		// Só o meta tem métricas disponíveis; o tiktok é pulado sem erro
		snapshotRepo.EXPECT().
			SaveOrUpdate(domain.PlatformMeta, gomock.Any(), gomock.Any()).
			DoAndReturn(func(kind domain.PlatformKind, date time.Time, metrics *domain.TrackingMetrics) error {
				assert.Equal(t, 100.0, metrics.TotalSpend)
				return nil
			})

		service := newTestSyncService(tracker, statusRepo, snapshotRepo)

		service.SyncAllPlatforms(context.Background())

		require.Len(t, tracker.calls, 1)
		window := tracker.calls[0]
		assert.WithinDuration(t, time.Now(), window.EndDate, time.Minute)
		assert.WithinDuration(t, time.Now().AddDate(0, 0, -7), window.StartDate, time.Minute)
		assert.False(t, service.IsRunning())

		startedAt, completedAt := service.LastRun()
		assert.WithinDuration(t, time.Now(), startedAt, time.Minute)
		assert.WithinDuration(t, time.Now(), completedAt, time.Minute)
		assert.False(t, completedAt.Before(startedAt))
	})

	t.Run("Falha ao persistir status não grava snapshot daquela plataforma", func(t *testing.T) {
		statusRepo := mocks.NewMockSyncStatusRepository(ctrl)
		snapshotRepo := mocks.NewMockMetricsSnapshotRepository(ctrl)

		tracker := &fakeSyncer{
			statuses: []domain.SyncStatus{
				{Platform: domain.PlatformMeta, Status: domain.SyncSuccess},
			},
			metrics: map[domain.PlatformKind]domain.ResponseEnvelope[domain.TrackingMetrics]{
				domain.PlatformMeta: platform.Success(domain.PlatformMeta, []domain.TrackingMetrics{{}}, nil),
			},
		}

		statusRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			Return(assert.AnError)

		service := newTestSyncService(tracker, statusRepo, snapshotRepo)

		service.SyncAllPlatforms(context.Background())
	})

	t.Run("Rodada sobreposta é ignorada", func(t *testing.T) {
		statusRepo := mocks.NewMockSyncStatusRepository(ctrl)
		snapshotRepo := mocks.NewMockMetricsSnapshotRepository(ctrl)

		tracker := &fakeSyncer{}
		service := newTestSyncService(tracker, statusRepo, snapshotRepo)

		service.syncMutex.Lock()
		service.syncRunning = true
		service.syncMutex.Unlock()

		service.SyncAllPlatforms(context.Background())

		assert.Empty(t, tracker.calls)
	})
}
